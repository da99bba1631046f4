package style

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	"github.com/leapstack-labs/contentlint/pkg/prose"
)

func init() {
	lint.Register(VagueThis)
}

// VagueThis flags a sentence that opens with a bare "This" plus a linking verb.
var VagueThis = lint.RuleDef{
	ID:          "vague-this",
	Name:        "style.vague_this",
	Group:       "style",
	Description: "Flag sentences opening with a bare 'This is', 'This means' and similar.",
	Severity:    lint.SeverityWarn,
	Check:       checkVagueThis,
	Rationale:   "A bare 'This' makes the reader work out what the referent is. When the previous sentence made several points, the referent is ambiguous.",
	BadExample:  "The cache was cold. This means requests were slow.",
	GoodExample: "The cache was cold. The cold cache made requests slow.",
	Fix:         "Follow 'This' with the noun it refers to.",
}

var vagueThisPatterns = []string{
	`\bThis\s+(is|means|suggests|indicates|shows|implies)\b`,
	`\bThis\s+can\b`,
	`\bThis\s+will\b`,
}

// lookbehindRunes is how far back a sentence start is searched for.
const lookbehindRunes = 5

func checkVagueThis(doc *core.Document, _ map[string]any) ([]lint.Finding, error) {
	var findings []lint.Finding
	for _, p := range vagueThisPatterns {
		spans, err := prose.FindAll(doc.Text, p)
		if err != nil {
			return nil, err
		}
		for _, sp := range spans {
			if !atSentenceStart(doc.Text, sp.Start) {
				continue
			}
			phrase := sp.Text(doc.Text)
			findings = append(findings, lint.AtSpan(doc, core.SeverityWarn, fmt.Sprintf("Vague 'this' at sentence start: '%s'", phrase), sp).
				With("phrase", phrase))
		}
	}
	return findings, nil
}

// atSentenceStart reports whether the few characters before offset are blank
// or end a sentence.
func atSentenceStart(text string, offset int) bool {
	from := offset
	for n := 0; n < lookbehindRunes && from > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(text[:from])
		from -= size
	}
	preceding := strings.TrimSpace(text[from:offset])
	return preceding == "" || strings.HasSuffix(preceding, ".")
}
