// Package handler is the JSON API shell over the pricing and migration
// engines. It owns request decoding, validation, response metadata, and error
// mapping; all calculation happens in the pure engine packages.
package handler

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"quote-engine/internal/migration"
	"quote-engine/internal/model"
	"quote-engine/internal/pricing"
	"quote-engine/internal/rateregistry"
)

// Handler routes engine requests. Safe for concurrent use; the engines hold
// no state and the validator is concurrency-safe.
type Handler struct {
	log      *logrus.Logger
	validate *validator.Validate
}

func New(log *logrus.Logger) *Handler {
	return &Handler{
		log:      log,
		validate: validator.New(),
	}
}

// Route dispatches by path. Every endpoint is POST-only.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	if !ctx.IsPost() {
		h.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	switch path {
	case "/v1/pricing/calculate":
		h.handleCalculate(ctx, start)
	case "/v1/pricing/finalize":
		h.handleFinalize(ctx, start)
	case "/v1/schemes/validate":
		h.handleValidate(ctx, start)
	case "/v1/schemes/migrate":
		h.handleMigrate(ctx, start)
	case "/v1/schemes/rollback":
		h.handleRollback(ctx, start)
	default:
		h.writeError(ctx, fasthttp.StatusNotFound, "unknown path: "+path)
	}

	h.log.WithFields(logrus.Fields{
		"path":       path,
		"status":     ctx.Response.StatusCode(),
		"durationMs": time.Since(start).Milliseconds(),
	}).Info("request handled")
}

func (h *Handler) handleCalculate(ctx *fasthttp.RequestCtx, start time.Time) {
	var req model.CalculateRequest
	if !h.decode(ctx, &req) {
		return
	}

	rules := req.Rules.Merge(rateregistry.RuleOverrides(req.ContractorID))

	base, err := pricing.Calculate(req.Model, rules, req.Measurements)
	if err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	normalized, _ := model.NormalizeModel(req.Model)
	resp := model.CalculateResponse{
		Metadata:    h.metadata(req.TenantID, start, model.OutcomeSuccess),
		Model:       normalized,
		BasePricing: base,
	}
	if req.Settings != nil {
		final := pricing.ApplyMarkupsAndTax(base, *req.Settings)
		resp.Final = &final
	}

	h.writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) handleFinalize(ctx *fasthttp.RequestCtx, start time.Time) {
	var req model.FinalizeRequest
	if !h.decode(ctx, &req) {
		return
	}

	h.writeJSON(ctx, fasthttp.StatusOK, model.FinalizeResponse{
		Metadata: h.metadata(req.TenantID, start, model.OutcomeSuccess),
		Final:    pricing.ApplyMarkupsAndTax(req.BasePricing, req.Settings),
	})
}

func (h *Handler) handleValidate(ctx *fasthttp.RequestCtx, start time.Time) {
	var req model.SchemeChangeRequest
	if !h.decode(ctx, &req) {
		return
	}

	report, err := migration.ValidateCompatibility(req.Data, req.FromScheme, req.ToScheme)
	if err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(ctx, fasthttp.StatusOK, model.ValidateResponse{
		Metadata: h.metadata(req.TenantID, start, model.OutcomeSuccess),
		Report:   report,
	})
}

func (h *Handler) handleMigrate(ctx *fasthttp.RequestCtx, start time.Time) {
	var req model.SchemeChangeRequest
	if !h.decode(ctx, &req) {
		return
	}

	// Snapshot before any transformation; the caller persists it to be able
	// to restore.
	rollback := migration.CreateRollback(req.Data, req.FromScheme)

	result, err := migration.Migrate(req.Data, req.FromScheme, req.ToScheme)
	if err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(ctx, fasthttp.StatusOK, model.MigrateResponse{
		Metadata: h.metadata(req.TenantID, start, model.OutcomeSuccess),
		Result:   result,
		Rollback: rollback,
	})
}

func (h *Handler) handleRollback(ctx *fasthttp.RequestCtx, start time.Time) {
	var req model.RollbackRequest
	if !h.decode(ctx, &req) {
		return
	}

	restored, err := migration.Rollback(req.Snapshot)
	if err != nil {
		if errors.Is(err, model.ErrNoRollbackAvailable) {
			h.writeError(ctx, fasthttp.StatusNotFound, "nothing to restore: "+err.Error())
			return
		}
		h.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(ctx, fasthttp.StatusOK, model.RollbackResponse{
		Metadata: h.metadata(req.TenantID, start, model.OutcomeSuccess),
		Restored: restored,
	})
}

// decode unmarshals and validates the request body, writing the error
// response itself when the body is unusable.
func (h *Handler) decode(ctx *fasthttp.RequestCtx, req any) bool {
	if err := json.Unmarshal(ctx.PostBody(), req); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "invalid request: "+err.Error())
		return false
	}
	return true
}

func (h *Handler) metadata(tenantID string, start time.Time, outcome string) model.CalculationMetadata {
	now := time.Now().UTC()
	return model.CalculationMetadata{
		CalculationID: uuid.New().String(),
		TenantID:      tenantID,
		StartedAt:     start.UTC().Format(time.RFC3339),
		CompletedAt:   now.Format(time.RFC3339),
		DurationMs:    time.Since(start).Milliseconds(),
		Outcome:       outcome,
	}
}

func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		h.log.WithError(err).Error("failed to encode response")
	}
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	if status >= fasthttp.StatusInternalServerError {
		h.log.WithField("status", status).Error(message)
	} else {
		h.log.WithField("status", status).Warn(message)
	}
	h.writeJSON(ctx, status, model.ErrorResponse{Status: status, Message: message})
}
