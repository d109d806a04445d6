package sentiment

import (
	"strings"
	"unicode"
)

// negationFactor scales the polarity of a word preceded by a negator.
const negationFactor = -0.5

// Analyzer derives an emotion from text.
// It holds only read-only tables and is safe for concurrent use.
type Analyzer struct {
	lexicon   Lexicon
	overrides []Override
}

// NewAnalyzer creates an analyzer with the default lexicon and override table.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		lexicon:   DefaultLexicon,
		overrides: DefaultOverrides,
	}
}

// NewAnalyzerWith creates an analyzer with custom tables.
func NewAnalyzerWith(lex Lexicon, overrides []Override) *Analyzer {
	return &Analyzer{lexicon: lex, overrides: overrides}
}

// Analyze scores text and returns its emotion. It never fails: empty or
// whitespace-only input yields Neutral with zero scores.
func (a *Analyzer) Analyze(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Emotion: Neutral, Glyph: Neutral.Glyph()}
	}

	polarity, subjectivity := a.Score(text)
	emotion := bucket(polarity)
	if e, ok := a.override(strings.ToLower(text)); ok {
		emotion = e
	}

	return Result{
		Polarity:     polarity,
		Subjectivity: subjectivity,
		Emotion:      emotion,
		Glyph:        emotion.Glyph(),
	}
}

// Score returns the averaged polarity in [-1,1] and subjectivity in [0,1]
// over all lexicon words found in text. Text without scored words is 0,0.
func (a *Analyzer) Score(text string) (polarity, subjectivity float64) {
	tokens := tokenize(text)

	var sumP, sumS float64
	scored := 0
	for i, tok := range tokens {
		entry, ok := a.lexicon.Words[tok]
		if !ok {
			continue
		}
		p, s := entry.Polarity, entry.Subjectivity

		if i > 0 {
			prev := tokens[i-1]
			if mult, ok := a.lexicon.Intensifiers[prev]; ok {
				p *= mult
				s *= mult
			}
			if a.negated(tokens, i) {
				p *= negationFactor
			}
		}

		sumP += p
		sumS += s
		scored++
	}

	if scored == 0 {
		return 0, 0
	}
	return clamp(sumP/float64(scored), -1, 1), clamp(sumS/float64(scored), 0, 1)
}

// negated reports whether a negator appears within the two tokens before i,
// so both "not good" and "not very good" flip.
func (a *Analyzer) negated(tokens []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-2; j-- {
		if a.lexicon.Negators[tokens[j]] {
			return true
		}
	}
	return false
}

func (a *Analyzer) override(lower string) (Emotion, bool) {
	for _, o := range a.overrides {
		for _, kw := range o.Keywords {
			if strings.Contains(lower, kw) {
				return o.Emotion, true
			}
		}
	}
	return "", false
}

// tokenize lowercases text and splits it into words, keeping apostrophes
// inside words so contractions like "don't" survive.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '’'
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
