// Package responder turns a classified intent, an optional resolved
// professor and the user's emotion into the chatbot's reply.
package responder

import (
	"fmt"
	"strings"

	"github.com/findmyprof/findmyprof-go/internal/catalog"
	"github.com/findmyprof/findmyprof-go/internal/intent"
	"github.com/findmyprof/findmyprof-go/internal/sentiment"
)

// Result is a complete chatbot reply.
type Result struct {
	Intent      intent.Label         `json:"intent"`
	Message     string               `json:"message"`
	Data        any                  `json:"data"`
	Attachments []catalog.Attachment `json:"attachments"`
	ImageURL    *string              `json:"image_url"` // nil unless a single professor with a photo
	Emotion     sentiment.Result     `json:"emotion"`
	Suggestions []string             `json:"suggestions"`
}

// Input carries everything a reply may draw on. Person is nil when name
// resolution failed; Matches is only read for the subject intent.
type Input struct {
	Intent      intent.Label
	Emotion     sentiment.Result
	Person      *catalog.Person
	Attachments []catalog.Attachment
	Matches     []catalog.Match
}

// Generator composes replies from phrase pools and templates.
// It is safe for concurrent use as long as its Rand is.
type Generator struct {
	pools    map[intent.Label]Pool
	openings map[sentiment.Emotion]string
	rand     Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the source used to pick phrase variants.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rand = r }
}

// WithPools replaces the simple-intent phrase pools.
func WithPools(pools map[intent.Label]Pool) Option {
	return func(g *Generator) { g.pools = pools }
}

// NewGenerator creates a generator with the default pools and a runtime
// seeded random source.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		pools:    DefaultPools,
		openings: openings,
		rand:     NewRand(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the reply for in.Intent. It panics on a label that is not
// part of the intent enumeration.
func (g *Generator) Generate(in Input) Result {
	switch {
	case in.Intent.IsSimple():
		return g.Simple(in.Intent, in.Emotion)
	case in.Intent.IsEntityBacked():
		if in.Person == nil {
			return g.PersonNotFound(in.Intent, in.Emotion)
		}
		return g.Person(in.Intent, in.Person, in.Attachments, in.Emotion)
	case in.Intent == intent.Subject:
		return g.Subject(in.Matches, in.Emotion)
	case in.Intent == intent.Unknown:
		return g.Unknown(in.Emotion)
	default:
		panic(fmt.Sprintf("responder: unhandled intent %q", in.Intent))
	}
}

// Simple answers an intent that needs no catalog lookup with a random
// variant from its pool. Help is additionally wrapped with the emotion opening.
func (g *Generator) Simple(label intent.Label, emo sentiment.Result) Result {
	pool, ok := g.pools[label]
	if !ok || len(pool.Messages) == 0 {
		panic(fmt.Sprintf("responder: no phrase pool for intent %q", label))
	}

	msg := withGlyph(pool.Messages[g.rand.IntN(len(pool.Messages))], emo.Glyph)
	if label == intent.Help {
		msg = g.WithEmotionOpening(msg, emo)
	}

	return Result{
		Intent:      label,
		Message:     msg,
		Emotion:     emo,
		Suggestions: cloneSuggestions(pool.Suggestions),
	}
}

// Person answers an entity-backed intent about a resolved professor.
func (g *Generator) Person(label intent.Label, p *catalog.Person, files []catalog.Attachment, emo sentiment.Result) Result {
	var msg string
	opening := true

	switch label {
	case intent.Schedule:
		msg = formatScheduleReply(p)
	case intent.Classroom:
		msg = formatClassroomReply(p)
	case intent.Contact:
		msg = formatContactReply(p)
	case intent.Attachment:
		if len(files) == 0 {
			msg = fmt.Sprintf("No attachments found for %s.", p.Name)
			opening = false
		} else {
			msg = formatAttachmentReply(p, files)
		}
	default:
		msg = formatProfileReply(p)
	}

	if opening {
		msg = g.WithEmotionOpening(msg, emo)
	}
	if len(files) == 0 {
		files = nil
	}

	return Result{
		Intent:      label,
		Message:     msg,
		Data:        p,
		Attachments: files,
		ImageURL:    imageURL(p),
		Emotion:     emo,
		Suggestions: []string{
			p.Name + "'s schedule",
			"Contact " + p.Name,
			"Find another prof",
		},
	}
}

// PersonNotFound answers an entity-backed intent whose name did not resolve.
// The classified intent is kept.
func (g *Generator) PersonNotFound(label intent.Label, emo sentiment.Result) Result {
	return Result{
		Intent:      label,
		Message:     fmt.Sprintf("Hmm, couldn't find that professor %s. Try another name?", emo.Glyph),
		Emotion:     emo,
		Suggestions: []string{"List all professors", "Search by subject"},
	}
}

// Subject answers a subject search.
func (g *Generator) Subject(matches []catalog.Match, emo sentiment.Result) Result {
	if len(matches) == 0 {
		return Result{
			Intent:      intent.Subject,
			Message:     fmt.Sprintf("Couldn't find that subject %s. Try a different search?", emo.Glyph),
			Emotion:     emo,
			Suggestions: []string{"Search by professor", "View all subjects"},
		}
	}

	res := Result{
		Intent:      intent.Subject,
		Message:     g.WithEmotionOpening(formatSubjectReply(matches), emo),
		Data:        matches,
		Emotion:     emo,
		Suggestions: []string{matches[0].Person.Name + "'s schedule"},
	}
	if len(matches) == 1 {
		res.ImageURL = imageURL(matches[0].Person)
	}
	return res
}

// Unknown is the fallback reply listing example questions.
func (g *Generator) Unknown(emo sentiment.Result) Result {
	msg := fmt.Sprintf("Not sure what you're asking %s. Try:\n\n"+
		"'Find Prof. [name]'\n'Who teaches [subject]?'\n'Show [prof]'s schedule'", emo.Glyph)
	return Result{
		Intent:      intent.Unknown,
		Message:     msg,
		Emotion:     emo,
		Suggestions: []string{"Help", "Find a professor", "Search subjects"},
	}
}

// WithEmotionOpening prefixes base with the opening sentence configured for
// the emotion and a blank line. Emotions without an opening leave base as is.
func (g *Generator) WithEmotionOpening(base string, emo sentiment.Result) string {
	opening, ok := g.openings[emo.Emotion]
	if !ok {
		return base
	}
	return withGlyph(opening, emo.Glyph) + "\n\n" + base
}

func withGlyph(tmpl, glyph string) string {
	return strings.ReplaceAll(tmpl, GlyphPlaceholder, glyph)
}

func imageURL(p *catalog.Person) *string {
	if p.ImageURL == "" {
		return nil
	}
	u := p.ImageURL
	return &u
}

func cloneSuggestions(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
