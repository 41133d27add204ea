package split

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/psharma/contractguard/internal/model"
)

// minClauseRunes is the trimmed length below which a segment is treated as a
// header or noise rather than a clause.
const minClauseRunes = 50

// clauseDelimiter matches structural clause markers at the start of a line.
// Every alternative requires a preceding line break so mid-sentence text like
// "see Section 4" never triggers a split.
var clauseDelimiter = regexp.MustCompile(
	`\n\d+\.\s+` + // 1. 2. 3.
		`|\n\d+\)\s+` + // 1) 2) 3)
		`|\n[A-Z]\.\s+` + // A. B. C.
		`|\n[A-Z]\)\s+` + // A) B) C)
		`|\nSection\s+\d+` + // Section 1
		`|\nArticle\s+\d+` + // Article 1
		`|\nClause\s+\d+` + // Clause 1
		`|\n[क-ह]\.\s+` + // Hindi: क. ख. ग.
		`|\nधारा\s+\d+` + // Hindi: धारा 1
		`|\nअनुच्छेद\s+\d+`, // Hindi: अनुच्छेद 1
)

// Splitter splits raw contract text into ordered clauses
type Splitter struct{}

// NewSplitter creates a new splitter
func NewSplitter() *Splitter {
	return &Splitter{}
}

// Split splits contract text into individual clauses.
// Works for both English and Hindi. Pure function; segments shorter than the
// minimum clause length are discarded as headers. If structural markers yield
// fewer than 2 clauses, the text is re-split on paragraph breaks instead.
// A degenerate result (0 or 1 clauses) is returned as-is; treating the whole
// document as a single clause is the caller's decision.
func (s *Splitter) Split(text string) []model.Clause {
	segments := clauseDelimiter.Split(text, -1)
	clauses := filterSegments(segments)

	// No structural markers found: fall back to paragraph boundaries
	if len(clauses) < 2 {
		paragraphs := strings.Split(text, "\n\n")
		clauses = filterSegments(paragraphs)
	}

	return clauses
}

// filterSegments trims segments and keeps only substantial ones, in source order
func filterSegments(segments []string) []model.Clause {
	var clauses []model.Clause
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if utf8.RuneCountInString(seg) > minClauseRunes {
			clauses = append(clauses, model.Clause{
				Text:  seg,
				Index: len(clauses),
			})
		}
	}
	return clauses
}
