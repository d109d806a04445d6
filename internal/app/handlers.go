package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/findmyprof/findmyprof-go/internal/buildinfo"
	"github.com/findmyprof/findmyprof-go/internal/config"
	"github.com/findmyprof/findmyprof-go/internal/ctxutil"
	domerrors "github.com/findmyprof/findmyprof-go/internal/errors"
	"github.com/findmyprof/findmyprof-go/internal/storage"
	"github.com/gin-gonic/gin"
)

// chatRequest is the body of POST /chat.
type chatRequest struct {
	Message   *string `json:"message"`
	SessionID string  `json:"session_id"`
}

// defaultSessionID is used when the client sends no session_id.
const defaultSessionID = "default"

const maxSearchLimit = 50

func (a *Application) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "FindMyProf Chatbot API",
		"version": buildinfo.Release(),
		"status":  "running",
	})
}

// validate checks the message and returns the trimmed text.
func (r chatRequest) validate(maxLen int) (string, error) {
	if r.Message == nil {
		return "", domerrors.NewValidationError("message", "Message is required")
	}
	text := strings.TrimSpace(*r.Message)
	if text == "" {
		return "", domerrors.NewValidationError("message", "Message is required")
	}
	if utf8.RuneCountInString(text) > maxLen {
		return "", domerrors.NewValidationError("message", fmt.Sprintf("Message must be at most %d characters", maxLen))
	}
	return text, nil
}

func (a *Application) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.metrics.RecordHTTPError("validation", "/chat")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required", "success": false})
		return
	}

	text, err := req.validate(a.cfg.Chat.MaxMessageLength)
	if err != nil {
		a.metrics.RecordHTTPError("validation", "/chat")
		var ve *domerrors.ValidationError
		msg := err.Error()
		if errors.As(err, &ve) {
			msg = ve.Message
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "success": false})
		return
	}

	// session_id is client supplied, so the per-IP limiter bounds callers
	// that rotate it.
	ipKey := "ip:" + c.ClientIP()
	sessionID := strings.TrimSpace(req.SessionID)
	limitKey := sessionID
	if sessionID == "" {
		sessionID = defaultSessionID
		limitKey = ipKey
	}
	refill := a.cfg.Chat.RateRefill
	allowed := a.chatLimiter.Allow(limitKey)
	if allowed && !a.chatIPLimiter.Allow(ipKey) {
		allowed = false
		refill = a.cfg.Chat.IPRateRefill
	}
	if !allowed {
		a.metrics.RecordHTTPError("rate_limit", "/chat")
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(refill)))
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":   "Too many messages, please slow down",
			"success": false,
		})
		return
	}

	c.Request = c.Request.WithContext(ctxutil.WithSessionID(c.Request.Context(), sessionID))
	ctx, cancel := context.WithTimeout(c.Request.Context(), config.ChatRequest)
	defer cancel()

	res := a.engine.ProcessMessage(ctx, text, sessionID)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"response":    res.Message,
		"intent":      res.Intent,
		"emotion":     res.Emotion,
		"data":        res.Data,
		"attachments": res.Attachments,
		"image_url":   res.ImageURL,
		"suggestions": res.Suggestions,
	})
}

// retryAfterSeconds estimates when one token refilling at rate per second
// will be available again.
func retryAfterSeconds(rate float64) int {
	if rate <= 0 {
		return 60
	}
	return max(1, int(1/rate+0.5))
}

// reloadData rebuilds the catalog. The rebuild runs on a context detached
// from the request so a disconnecting client cannot leave it half done.
func (a *Application) reloadData(c *gin.Context) {
	if !a.reloadLimiter.Allow() {
		a.metrics.RecordHTTPError("rate_limit", "/reload-data")
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":   domerrors.ErrRateLimitExceeded.Error(),
			"success": false,
		})
		return
	}

	ctx := ctxutil.PreserveTracing(c.Request.Context())
	n, err := a.reloadCatalog(ctx, "api")
	if err != nil {
		wrapped := domerrors.NewWrapper("api", "reload_data").
			Wrap(fmt.Errorf("%w: %w", domerrors.ErrCatalogUnavailable, err), "Failed to reload data")
		a.logger.WithError(wrapped).Error("Catalog reload via API failed")
		a.metrics.RecordHTTPError("reload", "/reload-data")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":             domerrors.GetUserMessage(wrapped),
			"success":           false,
			"professors_loaded": n,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"message":           "Data reloaded successfully",
		"professors_loaded": n,
	})
}

func (a *Application) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"professors_loaded": a.engine.CatalogSize(),
	})
}

// searchProfessors serves a plain directory search for clients that want
// results without going through the chat flow.
func (a *Application) searchProfessors(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSearchLimit {
			a.metrics.RecordHTTPError("validation", "/professors/search")
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   fmt.Sprintf("limit must be between 1 and %d", maxSearchLimit),
				"success": false,
			})
			return
		}
		limit = n
	}

	professors, err := a.db.SearchProfessors(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		var ve *domerrors.ValidationError
		if errors.As(err, &ve) {
			a.metrics.RecordHTTPError("validation", "/professors/search")
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "success": false})
			return
		}
		a.metrics.RecordHTTPError("database", "/professors/search")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed", "success": false})
		return
	}
	if professors == nil {
		professors = []storage.Professor{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(professors),
		"professors": professors,
	})
}

func (a *Application) livenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

// readinessCheck reports ready once the database answers and a catalog has
// been loaded at least once.
func (a *Application) readinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.WithError(err).Warn("Readiness check failed: database unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "database unavailable",
		})
		return
	}

	if !a.catalogReady.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "catalog not loaded",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"database": "connected",
		"catalog": gin.H{
			"professors": a.engine.CatalogSize(),
			"built_at":   a.engine.CatalogBuiltAt().UTC().Format(time.RFC3339),
		},
	})
}

const readinessTimeout = 3 * time.Second
