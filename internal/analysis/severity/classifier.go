package severity

import "strings"

// Bucket is the severity class a status or priority string maps to.
type Bucket string

const (
	Positive Bucket = "positive"
	Warning  Bucket = "warning"
	Critical Bucket = "critical"
	Neutral  Bucket = "neutral"
)

type rule struct {
	terms  []string
	bucket Bucket
}

// ruleTable is evaluated in order and the first matching rule wins, so
// positive-outcome vocabulary is checked before warning terms and warning
// terms before critical ones. "Compliant - Pending L2" therefore lands on
// Positive via "compliant" rather than Warning via "pending".
var ruleTable = []rule{
	{
		terms:  []string{"on time", "completed", "approved", "resolved", "passed", "compliant", "on track"},
		bucket: Positive,
	},
	{
		terms:  []string{"at risk", "pending", "in progress", "awaiting", "escalated", "medium"},
		bucket: Warning,
	},
	{
		terms:  []string{"breach", "overdue", "critical", "alert", "violation", "high"},
		bucket: Critical,
	},
}

// Classify maps a free-text status or priority to a severity bucket using
// case-insensitive substring matching. Total over any input; unmatched text,
// including the empty string, is Neutral.
func Classify(text string) Bucket {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Neutral
	}

	for _, r := range ruleTable {
		for _, term := range r.terms {
			if strings.Contains(normalized, term) {
				return r.bucket
			}
		}
	}
	return Neutral
}
