package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sumbandila/internal/auth/models"
	"sumbandila/pkg/platform/httputil"
	"sumbandila/pkg/platform/middleware/auth"
	"sumbandila/pkg/platform/middleware/request"
)

// Service defines the interface for signup, token issuance and token checks.
type Service interface {
	Signup(ctx context.Context, name, phone, password string) error
	Authenticate(ctx context.Context, phone, password string) (*models.TokenResult, error)
	VerifySubject(ctx context.Context, token string) (string, error)
}

// Handler serves the token issuer endpoints.
type Handler struct {
	auth   Service
	logger *slog.Logger
}

// New creates a new auth Handler with the given service and logger.
func New(auth Service, logger *slog.Logger) *Handler {
	return &Handler{
		auth:   auth,
		logger: logger,
	}
}

// Register registers the auth routes with the chi router. /me is guarded by
// a bearer token checked through the same Service.
func (h *Handler) Register(r chi.Router) {
	r.Post("/signup", h.HandleSignup)
	r.Post("/token", h.HandleToken)
	r.With(auth.RequireAuth(h.auth, h.logger)).Get("/me", h.HandleMe)
}

// HandleSignup implements POST /signup.
//
// Input: { "name": "Thandi", "phone": "+27820000001", "password": "..." }
// Output: { "status": "ok" }
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.SignupRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.auth.Signup(ctx, req.Name, req.Phone, req.Password); err != nil {
		h.logger.WarnContext(ctx, "signup failed",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "user signed up",
		"request_id", requestID,
	)
	httputil.WriteJSON(w, http.StatusOK, &models.SignupResponse{Status: "ok"})
}

// HandleToken implements POST /token with a form-encoded username and password.
func (h *Handler) HandleToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeFormAndPrepare[models.TokenRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.auth.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "token request failed",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	httputil.WriteJSON(w, http.StatusOK, res)
}

// HandleMe echoes the subject of the presented bearer token.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, &models.MeResponse{User: auth.GetSubject(r.Context())})
}
