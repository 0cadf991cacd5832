package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sumbandila/internal/certificate/models"
	"sumbandila/internal/platform/privacy"
	"sumbandila/pkg/platform/httputil"
	"sumbandila/pkg/platform/middleware/request"
)

const onlineStatus = "Global Education Verification Registry is Online"

// Service verifies certificates against the registry.
type Service interface {
	Verify(ctx context.Context, certificateNumber string) (*models.Certificate, error)
	VerifyBulk(ctx context.Context, numbers []string) *models.BulkAck
}

// Handler serves the certificate registry.
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
	r.Get("/", h.HandleOnline)
	r.Get("/verify/{cert_number}", h.HandleVerify)
	r.Post("/verify/bulk", h.HandleVerifyBulk)
}

func (h *Handler) HandleOnline(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, &models.OnlineBanner{Status: onlineStatus})
}

// HandleVerify implements GET /verify/{cert_number}: 200 with the record,
// 404 when unknown, 410 when revoked.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)
	number := chi.URLParam(r, "cert_number")

	cert, err := h.service.Verify(ctx, number)
	if err != nil {
		h.logger.InfoContext(ctx, "certificate not verified",
			"error", err,
			"certificate_hash", privacy.HashIdentifier(number),
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, models.NewVerificationResponse(cert))
}

// HandleVerifyBulk implements POST /verify/bulk. The body is a JSON array of
// certificate numbers; only an acknowledgement is returned.
func (h *Handler) HandleVerifyBulk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.BulkRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	ack := h.service.VerifyBulk(ctx, *req)
	h.logger.InfoContext(ctx, "bulk verification received",
		"documents", len(*req),
		"request_id", requestID,
	)
	httputil.WriteJSON(w, http.StatusOK, ack)
}
