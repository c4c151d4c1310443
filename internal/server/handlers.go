// internal/server/handlers.go
package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/database"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/logger"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/metrics"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/validation"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/engine"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/report"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/reportcache"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/store"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// adminDocuments maps URL slugs to store document names.
var adminDocuments = map[string]string{
	"effort-template":   store.DocTemplate,
	"tier-thresholds":   store.DocTiers,
	"role-catalog":      store.DocRoles,
	"allocation-matrix": store.DocMatrix,
	"scoping-taxonomy":  store.DocTaxonomy,
}

type handlers struct {
	service *engine.Service
	configs *store.ConfigStore
	reports *reportcache.Cache
	pg      *database.PostgresClient
	redis   *database.RedisClient
	log     logger.Logger
}

// respondError maps an error onto the HTTP response. Server-side failures
// (Inconsistent, Unavailable, or anything outside the taxonomy) are logged
// at error level with a correlation token; the token is returned to the
// client instead of any internal detail.
func (h *handlers) respondError(c *gin.Context, err error) {
	e := errors.As(err)
	if e == nil {
		correlation := h.logFailure(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":       "internal error",
			"correlation": correlation,
		})
		return
	}
	if e.Code == errors.CodeInconsistent || e.Code == errors.CodeUnavailable {
		correlation := h.logFailure(c, err)
		c.JSON(errors.HTTPStatus(e.Code), gin.H{
			"error":       e.Message,
			"correlation": correlation,
		})
		return
	}
	c.JSON(errors.HTTPStatus(e.Code), gin.H{"error": e.Message})
}

func (h *handlers) logFailure(c *gin.Context, err error) string {
	correlation := uuid.NewString()
	fields := map[string]interface{}{
		"correlation": correlation,
		"path":        c.FullPath(),
	}
	if id := c.Param("id"); id != "" {
		fields["submissionId"] = id
	}
	h.log.WithError(err).Error("request failed", fields)
	return correlation
}

func (h *handlers) health(c *gin.Context) {
	status := gin.H{"status": "ok"}
	code := http.StatusOK

	if h.pg != nil {
		if err := h.pg.Ping(c.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["postgres"] = err.Error()
			code = http.StatusServiceUnavailable
		}
	}
	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()); err != nil {
			// reports re-render without the cache
			status["redis"] = err.Error()
		}
	}
	c.JSON(code, status)
}

func (h *handlers) submit(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.respondError(c, errors.NewValidationFailed("unreadable request body"))
		return
	}
	if err := validation.ValidateJSON(validation.SubmitPayloadSchema, body); err != nil {
		h.respondError(c, errors.NewValidationFailed(err.Error()))
		return
	}

	var payload models.SubmitPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.respondError(c, errors.NewValidationFailedf("malformed payload: %v", err))
		return
	}

	outcome, err := h.service.Submit(c.Request.Context(), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submission_id": outcome.SubmissionID,
		"result":        outcome.Result,
	})
}

func (h *handlers) result(c *gin.Context) {
	raw, err := h.service.GetResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	// stored bytes pass through untouched
	c.Data(http.StatusOK, "application/json", raw)
}

func (h *handlers) history(c *gin.Context) {
	entries, err := h.service.History(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": entries})
}

func (h *handlers) download(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if cached := h.reports.Get(ctx, id); cached != nil {
		metrics.ReportsRendered.WithLabelValues("hit").Inc()
		h.sendReport(c, id, cached)
		return
	}

	rec, err := h.service.GetRecord(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var catalog *models.RoleCatalog
	if snap, err := h.configs.Snapshot(ctx); err == nil {
		catalog = snap.Roles
	}

	doc, err := report.Render(rec, catalog)
	if err != nil {
		h.respondError(c, err)
		return
	}
	metrics.ReportsRendered.WithLabelValues("miss").Inc()
	h.reports.Put(ctx, id, doc)
	h.sendReport(c, id, doc)
}

func (h *handlers) sendReport(c *gin.Context, id string, doc []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+report.Filename(id)+`"`)
	c.Data(http.StatusOK, docxContentType, doc)
}

func (h *handlers) roles(c *gin.Context) {
	snap, err := h.configs.Snapshot(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": snap.Roles.Roles})
}

func (h *handlers) getConfigDocument(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := h.configs.GetDocument(c.Request.Context(), name)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"name":      doc.Name,
			"version":   doc.Version,
			"updatedAt": doc.UpdatedAt,
			"document":  doc.Body,
		})
	}
}

func (h *handlers) putConfigDocument(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil || len(body) == 0 {
			h.respondError(c, errors.NewValidationFailed("request body is required"))
			return
		}
		doc, err := h.configs.PutDocument(c.Request.Context(), name, body)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"name":      doc.Name,
			"version":   doc.Version,
			"updatedAt": doc.UpdatedAt,
		})
	}
}
