// Package chatbot wires classification, sentiment, catalog resolution and
// reply generation into a single message-processing engine.
package chatbot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/findmyprof/findmyprof-go/internal/catalog"
	"github.com/findmyprof/findmyprof-go/internal/ctxutil"
	"github.com/findmyprof/findmyprof-go/internal/intent"
	"github.com/findmyprof/findmyprof-go/internal/logger"
	"github.com/findmyprof/findmyprof-go/internal/metrics"
	"github.com/findmyprof/findmyprof-go/internal/responder"
	"github.com/findmyprof/findmyprof-go/internal/sentiment"
	"github.com/findmyprof/findmyprof-go/internal/sentry"
)

// URLSigner turns a stored attachment path into a time-limited download URL.
type URLSigner interface {
	PresignURL(ctx context.Context, key string) (string, error)
}

// Config holds the engine's collaborators. Rows and Attachments are
// required; everything else falls back to a default.
type Config struct {
	Rows        catalog.RowSource
	Attachments catalog.AttachmentSource
	Signer      URLSigner // optional
	Classifier  *intent.Classifier
	Analyzer    *sentiment.Analyzer
	Generator   *responder.Generator
	MinScore    int              // fuzzy name threshold, DefaultMinScore when zero
	Logger      *logger.Logger   // optional
	Metrics     *metrics.Metrics // optional
}

// turn is the per-message state handed to a handler.
type turn struct {
	text    string
	label   intent.Label
	emotion sentiment.Result
	snap    *catalog.Snapshot
}

type handlerFunc func(ctx context.Context, t turn) responder.Result

// Engine answers chat messages against the current catalog snapshot.
// It is safe for concurrent use; ReloadCatalog may run alongside
// ProcessMessage calls.
type Engine struct {
	store       *catalog.Store
	attachments catalog.AttachmentSource
	signer      URLSigner
	classifier  *intent.Classifier
	analyzer    *sentiment.Analyzer
	generator   *responder.Generator
	minScore    int
	log         *logger.Logger
	metrics     *metrics.Metrics
	handlers    map[intent.Label]handlerFunc
}

// New creates an engine with an empty catalog. Call ReloadCatalog to load it.
func New(cfg Config) (*Engine, error) {
	if cfg.Rows == nil {
		return nil, fmt.Errorf("chatbot: row source is required")
	}
	if cfg.Attachments == nil {
		return nil, fmt.Errorf("chatbot: attachment source is required")
	}

	e := &Engine{
		store:       catalog.NewStore(cfg.Rows),
		attachments: cfg.Attachments,
		signer:      cfg.Signer,
		classifier:  cfg.Classifier,
		analyzer:    cfg.Analyzer,
		generator:   cfg.Generator,
		minScore:    cfg.MinScore,
		log:         cfg.Logger,
		metrics:     cfg.Metrics,
	}
	if e.classifier == nil {
		e.classifier = intent.NewClassifier(nil)
	}
	if e.analyzer == nil {
		e.analyzer = sentiment.NewAnalyzer()
	}
	if e.generator == nil {
		e.generator = responder.NewGenerator()
	}
	if e.minScore <= 0 {
		e.minScore = catalog.DefaultMinScore
	}
	if e.log == nil {
		e.log = logger.New("info")
	}
	e.log = e.log.WithModule("chatbot")
	e.handlers = e.buildHandlers()

	return e, nil
}

// buildHandlers maps every label to its handler. A label without a handler
// is a programming error and panics here rather than at request time.
func (e *Engine) buildHandlers() map[intent.Label]handlerFunc {
	handlers := make(map[intent.Label]handlerFunc, len(intent.All))
	for _, label := range intent.All {
		switch {
		case label.IsSimple():
			handlers[label] = e.handleSimple
		case label.IsEntityBacked():
			handlers[label] = e.handlePerson
		case label == intent.Subject:
			handlers[label] = e.handleSubject
		case label == intent.Unknown:
			handlers[label] = e.handleUnknown
		default:
			panic(fmt.Sprintf("chatbot: no handler for intent %q", label))
		}
	}
	return handlers
}

// ProcessMessage classifies text, detects its emotion and builds the reply.
// It never fails: collaborator errors degrade to "not found" style replies.
// sessionID identifies the conversation for logging only.
func (e *Engine) ProcessMessage(ctx context.Context, text, sessionID string) responder.Result {
	start := time.Now()
	if sessionID != "" && ctxutil.GetSessionID(ctx) == "" {
		ctx = ctxutil.WithSessionID(ctx, sessionID)
	}

	t := turn{
		text:    text,
		label:   e.classifier.Classify(text),
		emotion: e.analyzer.Analyze(text),
		snap:    e.store.Snapshot(),
	}

	handler, ok := e.handlers[t.label]
	if !ok {
		panic(fmt.Sprintf("chatbot: no handler for intent %q", t.label))
	}
	res := handler(ctx, t)
	res.Emotion = t.emotion

	e.log.DebugContext(ctx, "Message processed",
		"intent", t.label,
		"emotion", t.emotion.Emotion,
		"polarity", t.emotion.Polarity,
	)
	if e.metrics != nil {
		e.metrics.RecordMessage(t.label.String(), t.emotion.Emotion.String(), time.Since(start).Seconds())
	}
	return res
}

func (e *Engine) handleSimple(_ context.Context, t turn) responder.Result {
	return e.generator.Simple(t.label, t.emotion)
}

func (e *Engine) handleUnknown(_ context.Context, t turn) responder.Result {
	return e.generator.Unknown(t.emotion)
}

func (e *Engine) handlePerson(ctx context.Context, t turn) responder.Result {
	person, score := e.resolvePerson(t.snap, t.text)
	e.recordResolution("professor", person != nil)
	if person == nil {
		e.log.DebugContext(ctx, "No professor matched", "best_score", score)
		return e.generator.PersonNotFound(t.label, t.emotion)
	}

	var files []catalog.Attachment
	if t.label == intent.Attachment {
		files = e.fetchAttachments(ctx, person.ID)
	}
	return e.generator.Person(t.label, person, files, t.emotion)
}

func (e *Engine) handleSubject(_ context.Context, t turn) responder.Result {
	var matches []catalog.Match
	for _, q := range queries(t.text) {
		if matches = t.snap.ResolveBySubject(q); len(matches) > 0 {
			break
		}
	}
	e.recordResolution("subject", len(matches) > 0)
	return e.generator.Subject(matches, t.emotion)
}

// resolvePerson tries each candidate query and keeps the highest scoring
// match. On equal scores the earlier query wins. The best score is returned
// even when nothing passed the threshold.
func (e *Engine) resolvePerson(snap *catalog.Snapshot, text string) (*catalog.Person, int) {
	var best *catalog.Person
	bestScore := 0
	for _, q := range queries(text) {
		p, score, ok := snap.ResolveByName(q, e.minScore)
		if score > bestScore {
			bestScore = score
			if ok {
				best = p
			}
		}
	}
	return best, bestScore
}

// fetchAttachments returns the person's files, or nil when the source fails.
// Download URLs are presigned when a signer is configured.
func (e *Engine) fetchAttachments(ctx context.Context, personID int64) []catalog.Attachment {
	files, err := e.attachments.FetchAttachments(ctx, personID)
	if err != nil {
		e.log.WithError(err).WarnContext(ctx, "Attachment fetch failed", "professor_id", personID)
		sentry.CaptureError(ctx, "attachments", err)
		e.recordAttachmentFetch("error")
		return nil
	}
	e.recordAttachmentFetch("success")

	if e.signer == nil {
		return files
	}
	for i := range files {
		if files[i].FilePath == "" {
			continue
		}
		url, err := e.signer.PresignURL(ctx, files[i].FilePath)
		if err != nil {
			e.log.WithError(err).WarnContext(ctx, "Attachment presign failed", "file_path", files[i].FilePath)
			continue
		}
		files[i].URL = url
	}
	return files
}

// ReloadCatalog rebuilds the catalog from the row source and swaps it in,
// returning the number of professors now loaded.
//
// A failing row source counts as an empty feed: the failure is logged and
// reported, an empty catalog is published and (0, nil) is returned. Only a
// cancelled ctx is returned as an error, with the catalog left untouched.
func (e *Engine) ReloadCatalog(ctx context.Context) (int, error) {
	snap, err := e.store.Reload(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return snap.Len(), err
		}
		e.log.WithError(err).ErrorContext(ctx, "Catalog feed failed, serving an empty catalog")
		sentry.CaptureError(ctx, "catalog", err)
		snap = catalog.Build(nil)
		e.store.Swap(snap)
		if e.metrics != nil {
			e.metrics.RecordCatalogFeedError()
		}
	} else {
		e.log.InfoContext(ctx, "Catalog reloaded", "professors_loaded", snap.Len())
	}
	if e.metrics != nil {
		e.metrics.SetCatalogPersons(snap.Len())
	}
	return snap.Len(), nil
}

// CatalogSize returns the number of professors in the active catalog.
func (e *Engine) CatalogSize() int {
	return e.store.Snapshot().Len()
}

// CatalogBuiltAt returns when the active catalog was built; zero before the
// first successful reload.
func (e *Engine) CatalogBuiltAt() time.Time {
	return e.store.Snapshot().BuiltAt()
}

func (e *Engine) recordResolution(kind string, found bool) {
	if e.metrics != nil {
		e.metrics.RecordResolution(kind, found)
	}
}

func (e *Engine) recordAttachmentFetch(status string) {
	if e.metrics != nil {
		e.metrics.RecordAttachmentFetch(status)
	}
}
