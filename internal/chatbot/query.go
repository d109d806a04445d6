package chatbot

import (
	"strings"

	"github.com/findmyprof/findmyprof-go/internal/intent"
	"github.com/findmyprof/findmyprof-go/internal/stringutil"
)

// fillerWords are dropped when reducing a message to the name or subject it
// mentions. Single-word intent triggers are added at init.
var fillerWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		a an the of for to in on at by with from and or
		i me my we you your he him his she her they them their it its
		is are was were be am do does did can could would will should
		what whats who whos whom which where when how why
		s please pls thanks tell show give get need want know
		any some all list see look looking let lets
		office hours classes rooms emails files materials
		number details`) {
		fillerWords[w] = struct{}{}
	}
	for _, rule := range intent.DefaultTable {
		if !rule.Label.IsEntityBacked() && rule.Label != intent.Subject {
			continue
		}
		for _, trigger := range rule.Triggers {
			if !strings.Contains(trigger, " ") {
				fillerWords[trigger] = struct{}{}
			}
		}
	}
}

// stripFiller returns the words of text that are not filler, in order,
// joined by single spaces. Possessive "'s" and punctuation are dropped.
//
// Example:
//
//	stripFiller("What is Juan Santos's schedule?") returns "Juan Santos"
func stripFiller(text string) string {
	tokens := stringutil.Tokens(text)
	kept := tokens[:0]
	for _, tok := range tokens {
		if _, filler := fillerWords[stringutil.Fold(tok)]; filler {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// queries returns the raw message followed by its filler-stripped form when
// that differs and is not empty.
func queries(text string) []string {
	raw := strings.TrimSpace(text)
	out := []string{raw}
	if cleaned := stripFiller(raw); cleaned != "" && cleaned != raw {
		out = append(out, cleaned)
	}
	return out
}
