package explain

import (
	"fmt"

	"github.com/psharma/contractguard/internal/model"
)

// Template is a fixed explanation record for one risk category
type Template struct {
	Meaning     string
	Risk        string
	WhoBenefits string
	Action      string
}

// englishTemplates covers every category in the closed set
var englishTemplates = map[model.RiskCategory]Template{
	model.RiskLiabilityCap: {
		Meaning:     "The company limits how much they'll pay if something goes wrong",
		Risk:        "If they cause ₹10 lakh in damages, you might only recover ₹50,000",
		WhoBenefits: "The service provider/vendor",
		Action:      "Negotiate for higher liability caps or remove this limitation entirely",
	},
	model.RiskIndemnification: {
		Meaning:     "You agree to pay their legal costs if someone sues them",
		Risk:        "You could pay crores in legal fees for their mistakes or actions",
		WhoBenefits: "The other party (they get legal protection at your expense)",
		Action:      "Request 'mutual indemnification' where both parties protect each other equally",
	},
	model.RiskAutomaticRenewal: {
		Meaning:     "Contract renews automatically unless you cancel in advance",
		Risk:        "You might get locked into another year and charged automatically",
		WhoBenefits: "The vendor (guaranteed recurring revenue)",
		Action:      "Request advance notice (60-90 days) and opt-in renewal instead",
	},
	model.RiskTerminationFee: {
		Meaning:     "You must pay a penalty to end the contract early",
		Risk:        "Early exit could cost thousands in penalties",
		WhoBenefits: "The service provider",
		Action:      "Negotiate lower penalties or pro-rated refunds for unused services",
	},
	model.RiskIPTransfer: {
		Meaning:     "All work you create or contribute becomes their property",
		Risk:        "You lose ownership of your ideas, designs, or innovations",
		WhoBenefits: "The company (they own everything)",
		Action:      "Retain ownership or negotiate shared IP rights",
	},
	model.RiskNonCompete: {
		Meaning:     "You cannot work for competitors or start similar business",
		Risk:        "Limits your career options and business opportunities",
		WhoBenefits: "Your employer/client",
		Action:      "Limit scope (geography, time, specific roles) or remove entirely",
	},
	model.RiskArbitrationClause: {
		Meaning:     "Disputes must go to private arbitration, not court",
		Risk:        "You lose right to jury trial and public court proceedings",
		WhoBenefits: "Usually the company (arbitration often favors repeat users)",
		Action:      "Request mutual arbitration agreement or remove this clause",
	},
	model.RiskUnilateralChanges: {
		Meaning:     "They can change terms anytime without your consent",
		Risk:        "Prices, services, or conditions can change at their discretion",
		WhoBenefits: "The service provider",
		Action:      "Require written notice and right to terminate if changes are unfavorable",
	},
	model.RiskLimitedWarranty: {
		Meaning:     "Product/service sold 'as is' with no guarantees",
		Risk:        "No recourse if product is defective or doesn't work",
		WhoBenefits: "The seller",
		Action:      "Request specific warranties or money-back guarantee",
	},
	model.RiskDataRights: {
		Meaning:     "Company can use your data for any purpose indefinitely",
		Risk:        "Your personal or business data could be sold or misused",
		WhoBenefits: "The company (monetizes your data)",
		Action:      "Limit data usage to specific purposes and request deletion rights",
	},
	model.RiskJurisdiction: {
		Meaning:     "Legal disputes must be filed in a specific court/location",
		Risk:        "You may have to travel far or hire distant lawyers",
		WhoBenefits: "The party who chose the jurisdiction",
		Action:      "Negotiate neutral jurisdiction or your home jurisdiction",
	},
	model.RiskConfidentialityBurden: {
		Meaning:     "You must keep information secret forever",
		Risk:        "Permanent obligation that limits your future opportunities",
		WhoBenefits: "The other party",
		Action:      "Set time limits (2-5 years) and define what's actually confidential",
	},
	model.RiskPaymentTerms: {
		Meaning:     "Payment is non-refundable and due upfront",
		Risk:        "You lose money even if service isn't delivered",
		WhoBenefits: "The vendor",
		Action:      "Negotiate refund policy or milestone-based payments",
	},
	model.RiskForceMajeureAbuse: {
		Meaning:     "Company can suspend service for broadly defined reasons",
		Risk:        "Service interruptions without refunds or remedies",
		WhoBenefits: "The service provider",
		Action:      "Narrow the definition and ensure refunds for extended outages",
	},
	model.RiskAssignmentRights: {
		Meaning:     "Company can transfer contract to another party without your approval",
		Risk:        "You might end up dealing with unknown third party",
		WhoBenefits: "The original company",
		Action:      "Require your consent before contract assignment",
	},
}

// hindiTemplates is the documented subset with full Hindi records; every other
// category falls back to the generic Hindi explanation
var hindiTemplates = map[model.RiskCategory]Template{
	model.RiskLiabilityCap: {
		Meaning:     "कंपनी अपनी जिम्मेदारी को सीमित करती है",
		Risk:        "₹10 लाख का नुकसान होने पर भी आपको केवल ₹50,000 मिल सकते हैं",
		WhoBenefits: "सेवा प्रदाता",
		Action:      "उच्च सीमा के लिए बातचीत करें या इसे हटाएं",
	},
	model.RiskIndemnification: {
		Meaning:     "आप उनकी कानूनी लागत चुकाने के लिए सहमत हैं",
		Risk:        "उनकी गलतियों के लिए आपको करोड़ों रुपये चुकाने पड़ सकते हैं",
		WhoBenefits: "दूसरी पार्टी",
		Action:      "'पारस्परिक क्षतिपूर्ति' का अनुरोध करें",
	},
}

// genericEnglish is used when the category has no template record
var genericEnglish = Template{
	Meaning:     "This clause contains potential risks that should be reviewed carefully.",
	Risk:        "Could impact your rights, obligations, or financial exposure.",
	WhoBenefits: "Typically favors the party that drafted the contract.",
	Action:      "Consult with a legal professional for detailed analysis.",
}

// genericHindi is the Hindi counterpart of genericEnglish
var genericHindi = Template{
	Meaning:     "इस खंड में संभावित जोखिम हैं जिनकी सावधानीपूर्वक समीक्षा की जानी चाहिए।",
	Risk:        "आपके अधिकारों या वित्तीय दायित्व को प्रभावित कर सकता है।",
	WhoBenefits: "आमतौर पर अनुबंध तैयार करने वाली पार्टी को।",
	Action:      "विस्तृत विश्लेषण के लिए कानूनी पेशेवर से परामर्श लें।",
}

// TemplateExplanation returns the static explanation for a category in the
// requested language. An empty category yields the generic
// consult-a-professional text. Never fails.
func TemplateExplanation(category model.RiskCategory, language model.Language) string {
	if language == model.LangHindi {
		tpl, ok := hindiTemplates[category]
		if !ok {
			tpl = genericHindi
		}
		return formatHindi(tpl)
	}

	tpl, ok := englishTemplates[category]
	if !ok {
		tpl = genericEnglish
	}
	return formatEnglish(tpl)
}

func formatEnglish(tpl Template) string {
	return fmt.Sprintf(`**Meaning:** %s

**Risk:** %s

**Who Benefits:** %s

**Recommendation:** %s`, tpl.Meaning, tpl.Risk, tpl.WhoBenefits, tpl.Action)
}

func formatHindi(tpl Template) string {
	return fmt.Sprintf(`**अर्थ:** %s

**जोखिम:** %s

**लाभ:** %s

**सिफारिश:** %s`, tpl.Meaning, tpl.Risk, tpl.WhoBenefits, tpl.Action)
}
