// Package main checks the chatbot's built-in content tables for consistency:
// intents, reply pools, emotion overrides and the sentiment lexicon.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/findmyprof/findmyprof-go/internal/intent"
	"github.com/findmyprof/findmyprof-go/internal/responder"
	"github.com/findmyprof/findmyprof-go/internal/sentiment"
)

// Verification results
type verifyResult struct {
	name    string
	passed  bool
	message string
}

// minPoolVariants is the fewest reply variants a simple intent may have.
const minPoolVariants = 3

func main() {
	fmt.Println("🔍 FindMyProf - Content Consistency Verification Tool")
	fmt.Println("=====================================================")

	results := []verifyResult{}
	results = append(results, verifyKeywordTable(intent.DefaultTable)...)
	results = append(results, verifyPools(responder.DefaultPools)...)
	results = append(results, verifyOverrides(sentiment.DefaultOverrides)...)
	results = append(results, verifyLexicon(sentiment.DefaultLexicon)...)
	results = append(results, verifySamples()...)

	fmt.Println("\n📊 Verification Results:")
	fmt.Println("========================")

	passedCount := 0
	failedCount := 0

	for _, result := range results {
		status := "❌"
		if result.passed {
			status = "✅"
			passedCount++
		} else {
			failedCount++
		}
		fmt.Printf("%s %s: %s\n", status, result.name, result.message)
	}

	fmt.Printf("\n📈 Summary: %d passed, %d failed\n", passedCount, failedCount)

	if failedCount > 0 {
		os.Exit(1)
	}
}

// verifyKeywordTable checks that every classifiable intent has exactly one
// rule, that no rule is empty, and that triggers are lowercase.
func verifyKeywordTable(table intent.Table) []verifyResult {
	results := []verifyResult{}

	seen := make(map[intent.Label]int)
	for _, rule := range table {
		seen[rule.Label]++
	}

	missing := []string{}
	for _, label := range intent.All {
		if label == intent.Unknown {
			continue
		}
		if seen[label] == 0 {
			missing = append(missing, label.String())
		}
	}
	results = append(results, check("Keyword Table Coverage", len(missing) == 0,
		"Every intent except unknown has a rule", fmt.Sprintf("Missing rules: %v", missing)))

	duplicated := []string{}
	invalid := []string{}
	for label, n := range seen {
		if n > 1 {
			duplicated = append(duplicated, label.String())
		}
		if !label.Valid() || label == intent.Unknown {
			invalid = append(invalid, label.String())
		}
	}
	results = append(results, check("Keyword Table Uniqueness", len(duplicated) == 0,
		"One rule per intent", fmt.Sprintf("Duplicated rules: %v", duplicated)))
	results = append(results, check("Keyword Table Labels", len(invalid) == 0,
		"All rule labels are declared", fmt.Sprintf("Undeclared labels: %v", invalid)))

	badTriggers := []string{}
	for _, rule := range table {
		if len(rule.Triggers) == 0 {
			badTriggers = append(badTriggers, rule.Label.String()+": no triggers")
		}
		for _, trigger := range rule.Triggers {
			if trigger == "" || trigger != strings.ToLower(trigger) {
				badTriggers = append(badTriggers, fmt.Sprintf("%s: %q", rule.Label, trigger))
			}
		}
	}
	results = append(results, check("Keyword Triggers", len(badTriggers) == 0,
		"All triggers are non-empty lowercase", fmt.Sprintf("Bad triggers: %v", badTriggers)))

	return results
}

// verifyPools checks that every simple intent has enough reply variants and,
// except farewell, follow-up suggestions.
func verifyPools(pools map[intent.Label]responder.Pool) []verifyResult {
	results := []verifyResult{}

	for _, label := range intent.All {
		if !label.IsSimple() {
			continue
		}
		pool, ok := pools[label]
		if !ok {
			results = append(results, verifyResult{
				name:    "Reply Pool: " + label.String(),
				passed:  false,
				message: "No pool configured",
			})
			continue
		}

		problems := []string{}
		if len(pool.Messages) < minPoolVariants {
			problems = append(problems, fmt.Sprintf("%d variants, want at least %d", len(pool.Messages), minPoolVariants))
		}
		for i, msg := range pool.Messages {
			if strings.TrimSpace(msg) == "" {
				problems = append(problems, fmt.Sprintf("variant %d is blank", i))
			}
		}
		if label != intent.Farewell && len(pool.Suggestions) == 0 {
			problems = append(problems, "no suggestions")
		}

		results = append(results, check("Reply Pool: "+label.String(), len(problems) == 0,
			fmt.Sprintf("%d variants, %d suggestions", len(pool.Messages), len(pool.Suggestions)),
			strings.Join(problems, "; ")))
	}

	extra := []string{}
	for label := range pools {
		if !label.IsSimple() {
			extra = append(extra, label.String())
		}
	}
	results = append(results, check("Reply Pools Scope", len(extra) == 0,
		"Pools exist only for simple intents", fmt.Sprintf("Pools for non-simple intents: %v", extra)))

	return results
}

// verifyOverrides checks that override emotions are declared and keywords
// are lowercase.
func verifyOverrides(overrides []sentiment.Override) []verifyResult {
	results := []verifyResult{}

	problems := []string{}
	for _, o := range overrides {
		if !o.Emotion.Valid() {
			problems = append(problems, fmt.Sprintf("undeclared emotion %q", o.Emotion))
			continue
		}
		if len(o.Keywords) == 0 {
			problems = append(problems, o.Emotion.String()+": no keywords")
		}
		for _, kw := range o.Keywords {
			if kw == "" || kw != strings.ToLower(kw) {
				problems = append(problems, fmt.Sprintf("%s: %q", o.Emotion, kw))
			}
		}
	}
	results = append(results, check("Emotion Overrides", len(problems) == 0,
		fmt.Sprintf("%d override sets valid", len(overrides)), strings.Join(problems, "; ")))

	return results
}

// verifyLexicon checks score ranges: polarity in [-1, 1], subjectivity in
// [0, 1] and positive intensifier multipliers.
func verifyLexicon(lex sentiment.Lexicon) []verifyResult {
	results := []verifyResult{}

	outOfRange := []string{}
	for word, e := range lex.Words {
		if e.Polarity < -1 || e.Polarity > 1 || e.Subjectivity < 0 || e.Subjectivity > 1 {
			outOfRange = append(outOfRange, word)
		}
	}
	results = append(results, check("Lexicon Ranges", len(outOfRange) == 0,
		fmt.Sprintf("%d words in range", len(lex.Words)), fmt.Sprintf("Out of range: %v", outOfRange)))

	badIntensifiers := []string{}
	for word, mult := range lex.Intensifiers {
		if mult <= 0 {
			badIntensifiers = append(badIntensifiers, word)
		}
	}
	results = append(results, check("Lexicon Intensifiers", len(badIntensifiers) == 0,
		fmt.Sprintf("%d intensifiers positive", len(lex.Intensifiers)),
		fmt.Sprintf("Non-positive multipliers: %v", badIntensifiers)))

	return results
}

// verifySamples runs reference messages through the default classifier and
// analyzer.
func verifySamples() []verifyResult {
	results := []verifyResult{}
	classifier := intent.NewClassifier(nil)
	analyzer := sentiment.NewAnalyzer()

	intents := []struct {
		text string
		want intent.Label
	}{
		{"hello", intent.Greeting},
		{"Find Prof. Santos", intent.ProfessorSearch},
		{"I love you", intent.LoveDeclaration},
		{"", intent.Unknown},
	}
	for _, s := range intents {
		got := classifier.Classify(s.text)
		results = append(results, check(fmt.Sprintf("Sample Intent %q", s.text), got == s.want,
			"classified as "+got.String(), fmt.Sprintf("got %s, want %s", got, s.want)))
	}

	emotions := []struct {
		text string
		want sentiment.Emotion
	}{
		{"thank you", sentiment.Grateful},
		{"I love you", sentiment.Loving},
	}
	for _, s := range emotions {
		got := analyzer.Analyze(s.text).Emotion
		results = append(results, check(fmt.Sprintf("Sample Emotion %q", s.text), got == s.want,
			"detected "+got.String(), fmt.Sprintf("got %s, want %s", got, s.want)))
	}

	return results
}

func check(name string, passed bool, okMsg, failMsg string) verifyResult {
	msg := okMsg
	if !passed {
		msg = failMsg
	}
	return verifyResult{name: name, passed: passed, message: msg}
}
