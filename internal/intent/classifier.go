package intent

import "strings"

// Classifier scores text against a keyword table.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	table Table
}

// NewClassifier creates a classifier over the given table.
// A nil table falls back to DefaultTable.
func NewClassifier(table Table) *Classifier {
	if table == nil {
		table = DefaultTable
	}
	return &Classifier{table: table}
}

// Score returns the number of triggers of each rule found in text.
// Rules with zero hits are omitted.
func (c *Classifier) Score(text string) map[Label]int {
	lower := strings.ToLower(text)
	scores := make(map[Label]int)
	for _, rule := range c.table {
		hits := countHits(lower, rule.Triggers)
		if hits > 0 {
			scores[rule.Label] += hits
		}
	}
	return scores
}

// Classify returns the label with the most trigger hits.
// Ties go to the rule declared first; no hits yields Unknown.
func (c *Classifier) Classify(text string) Label {
	lower := strings.ToLower(text)

	best := Unknown
	bestHits := 0
	for _, rule := range c.table {
		// Strict comparison keeps the first maximal rule.
		if hits := countHits(lower, rule.Triggers); hits > bestHits {
			best = rule.Label
			bestHits = hits
		}
	}
	return best
}

func countHits(lower string, triggers []string) int {
	hits := 0
	for _, t := range triggers {
		if t != "" && strings.Contains(lower, t) {
			hits++
		}
	}
	return hits
}
