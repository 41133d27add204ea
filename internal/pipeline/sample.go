package pipeline

import "github.com/psharma/contractguard/internal/model"

// SampleContract returns a built-in demonstration contract in the requested
// language (English for anything that is not Hindi). Useful for trying the
// analyzer without a document at hand.
func SampleContract(language model.Language) string {
	if language == model.LangHindi {
		return sampleHindi
	}
	return sampleEnglish
}

const sampleEnglish = `SERVICE AGREEMENT

1. Liability Limitation
The Company's total liability under this Agreement shall be limited to the amount paid by Client in the preceding 12 months, regardless of the nature or cause of action.

2. Indemnification Clause
Client agrees to indemnify, defend, and hold harmless the Company from any claims, damages, or expenses arising from Client's use of the services.

3. Automatic Renewal
This Agreement shall automatically renew for successive one-year terms unless Client provides written notice of non-renewal at least 90 days prior to the end of the current term.

4. Intellectual Property Assignment
All work product, deliverables, and intellectual property created during the term of this Agreement shall be the exclusive property of the Company.

5. Non-Compete Provision
Client agrees not to engage in any business that competes with Company's services for a period of 2 years following termination of this Agreement.

6. Payment Terms
All payments are non-refundable. Client shall pay the full annual fee in advance within 15 days of invoice date.

7. Modification Rights
Company reserves the right to modify the terms of this Agreement at any time at its sole discretion without prior notice to Client.

8. Arbitration
Any dispute arising under this Agreement shall be resolved through binding arbitration in accordance with the rules of the American Arbitration Association.`

const sampleHindi = `सेवा समझौता

1. दायित्व सीमा
इस समझौते के तहत कंपनी की कुल देयता पिछले 12 महीनों में ग्राहक द्वारा भुगतान की गई राशि तक सीमित होगी।

2. क्षतिपूर्ति खंड
ग्राहक सेवाओं के उपयोग से उत्पन्न किसी भी दावे, क्षति या खर्च से कंपनी को क्षतिपूर्ति, बचाव और हानि रहित रखने के लिए सहमत है।

3. स्वचालित नवीनीकरण
यह समझौता लगातार एक वर्ष की अवधि के लिए स्वचालित रूप से नवीनीकृत होगा जब तक कि ग्राहक वर्तमान अवधि के समाप्त होने से कम से कम 90 दिन पहले गैर-नवीनीकरण की लिखित सूचना प्रदान नहीं करता।

4. बौद्धिक संपदा हस्तांतरण
इस समझौते की अवधि के दौरान बनाए गए सभी कार्य उत्पाद, डिलीवरेबल्स और बौद्धिक संपदा कंपनी की विशेष संपत्ति होगी।

5. भुगतान शर्तें
सभी भुगतान गैर-वापसी योग्य हैं। ग्राहक को चालान तिथि के 15 दिनों के भीतर पूर्ण वार्षिक शुल्क का अग्रिम भुगतान करना होगा।`
