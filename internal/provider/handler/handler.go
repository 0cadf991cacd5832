package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sumbandila/internal/provider/models"
	"sumbandila/pkg/platform/httputil"
	"sumbandila/pkg/platform/middleware/request"
)

// Service looks up provider records.
type Service interface {
	Verify(ctx context.Context, providerType, providerIdentifier string) (*models.VerifyResult, error)
}

// Handler serves the provider registry.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/verify", h.HandleVerify)
}

// HandleVerify implements POST /verify.
//
// Input: { "provider_type": "education", "provider_identifier": "COLL-1234", "country": "ZA" }
// Output: { "status": "found", "result": { ... } } or { "status": "not_found", "result": { "registered": false } }
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.VerifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.Verify(ctx, req.ProviderType, req.ProviderIdentifier)
	if err != nil {
		h.logger.ErrorContext(ctx, "provider verification failed",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "provider verified",
		"status", res.Status,
		"country", req.Country,
		"request_id", requestID,
	)
	httputil.WriteJSON(w, http.StatusOK, res)
}
