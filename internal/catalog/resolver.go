package catalog

import (
	"regexp"
	"strings"

	"github.com/findmyprof/findmyprof-go/internal/stringutil"
)

// DefaultMinScore is the lowest TokenSortRatio accepted as a name match.
const DefaultMinScore = 60

var honorificRe = regexp.MustCompile(`(?i)\b(prof|professor|dr|doctor|ms|mr|mrs)\b\.?\s*`)

// StripHonorifics removes titles such as "Prof." or "Dr" wherever they appear
// as whole words, then trims surrounding space.
func StripHonorifics(query string) string {
	return strings.TrimSpace(honorificRe.ReplaceAllString(query, ""))
}

// ResolveByName fuzzy-matches query against every person's name and returns
// the best one if its score reaches minScore. Equal scores keep the person
// that comes first in the snapshot. The returned person must not be modified.
func (s *Snapshot) ResolveByName(query string, minScore int) (*Person, int, bool) {
	cleaned := StripHonorifics(query)
	if cleaned == "" || len(s.persons) == 0 {
		return nil, 0, false
	}

	best, bestScore := -1, -1
	for i := range s.persons {
		if score := TokenSortRatio(cleaned, s.persons[i].Name); score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 || bestScore < minScore {
		return nil, bestScore, false
	}
	return &s.persons[best], bestScore, true
}

// ResolveBySubject returns every (person, subject) pair whose subject code or
// name contains query, ignoring case and diacritics. Pairs follow snapshot
// order, then each person's subject order. An empty query matches nothing.
func (s *Snapshot) ResolveBySubject(query string) []Match {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}

	var matches []Match
	for i := range s.persons {
		p := &s.persons[i]
		for j := range p.Subjects {
			sub := &p.Subjects[j]
			if stringutil.ContainsFold(sub.Code, q) || stringutil.ContainsFold(sub.Name, q) {
				matches = append(matches, Match{Person: p, Subject: sub})
			}
		}
	}
	return matches
}
