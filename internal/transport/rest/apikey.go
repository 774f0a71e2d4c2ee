package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/internal/service/apikey"
)

type apiKeyService interface {
	Create(ctx context.Context, input apikey.CreateInput) (*apikey.CreateResult, error)
	List(ctx context.Context, projectID int64) ([]domain.APIKey, error)
	Delete(ctx context.Context, projectID, keyID int64) error
}

// APIKeyHandler serves /projects/{id}/api-keys endpoints.
type APIKeyHandler struct {
	svc apiKeyService
	log *slog.Logger
}

// NewAPIKeyHandler creates an APIKeyHandler.
func NewAPIKeyHandler(svc apiKeyService, logger *slog.Logger) *APIKeyHandler {
	return &APIKeyHandler{svc: svc, log: logger.With("handler", "apikey")}
}

type createAPIKeyRequest struct {
	Description string     `json:"description"`
	Scopes      []string   `json:"scopes"`
	ExpiresAt   *time.Time `json:"expiresAt"`
}

type apiKeyResponse struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	Scopes      []string   `json:"scopes"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	LastUsedAt  *time.Time `json:"lastUsedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	// Key is the raw secret, present only in the create response.
	Key string `json:"key,omitempty"`
}

// Create handles POST /projects/{id}/api-keys.
func (h *APIKeyHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req createAPIKeyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	scopes := make([]domain.Scope, len(req.Scopes))
	for i, s := range req.Scopes {
		scopes[i] = domain.Scope(s)
	}

	result, err := h.svc.Create(r.Context(), apikey.CreateInput{
		ProjectID:   projectID,
		Description: req.Description,
		Scopes:      scopes,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := toAPIKeyResponse(result.Key)
	out.Key = result.RawKey
	writeJSON(w, http.StatusCreated, out)
}

// List handles GET /projects/{id}/api-keys.
func (h *APIKeyHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	keys, err := h.svc.List(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]apiKeyResponse, len(keys))
	for i := range keys {
		out[i] = toAPIKeyResponse(&keys[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /projects/{id}/api-keys/{keyId}.
func (h *APIKeyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	keyID, err := pathID(r, "keyId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), projectID, keyID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toAPIKeyResponse(k *domain.APIKey) apiKeyResponse {
	scopes := make([]string, len(k.Scopes))
	for i, s := range k.Scopes {
		scopes[i] = s.String()
	}
	return apiKeyResponse{
		ID:          k.ID,
		Description: k.Description,
		Scopes:      scopes,
		ExpiresAt:   k.ExpiresAt,
		LastUsedAt:  k.LastUsedAt,
		CreatedAt:   k.CreatedAt,
	}
}
