package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/internal/service/key"
)

type keyService interface {
	Create(ctx context.Context, input key.CreateInput) (*domain.KeyWithTranslations, error)
	Rename(ctx context.Context, input key.RenameInput) (*domain.Key, error)
	Delete(ctx context.Context, projectID, keyID int64) error
	List(ctx context.Context, input key.ListInput) (*key.ListResult, error)
}

// KeyHandler serves /projects/{id}/keys endpoints.
type KeyHandler struct {
	svc keyService
	log *slog.Logger
}

// NewKeyHandler creates a KeyHandler.
func NewKeyHandler(svc keyService, logger *slog.Logger) *KeyHandler {
	return &KeyHandler{svc: svc, log: logger.With("handler", "key")}
}

type createKeyRequest struct {
	Name         string            `json:"name"`
	Translations map[string]string `json:"translations"`
}

type renameKeyRequest struct {
	Name string `json:"name"`
}

type keyResponse struct {
	ID           int64                          `json:"id"`
	Name         string                         `json:"name"`
	CreatedAt    time.Time                      `json:"createdAt"`
	Translations map[string]translationResponse `json:"translations,omitempty"`
}

type keyListResponse struct {
	Items []keyResponse `json:"items"`
	Total int           `json:"total"`
}

// Create handles POST /projects/{id}/keys.
func (h *KeyHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req createKeyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	k, err := h.svc.Create(r.Context(), key.CreateInput{
		ProjectID:    projectID,
		Name:         req.Name,
		Translations: req.Translations,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toKeyResponse(k))
}

// List handles GET /projects/{id}/keys?search=&sort=&limit=&offset=.
func (h *KeyHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), key.ListInput{
		ProjectID: projectID,
		Search:    optionalString(r, "search"),
		SortOrder: r.URL.Query().Get("sort"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := keyListResponse{Items: make([]keyResponse, len(result.Keys)), Total: result.Total}
	for i := range result.Keys {
		out.Items[i] = toKeyResponse(&result.Keys[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Rename handles PATCH /projects/{id}/keys/{keyId}.
func (h *KeyHandler) Rename(w http.ResponseWriter, r *http.Request) {
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
	var req renameKeyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	k, err := h.svc.Rename(r.Context(), key.RenameInput{ProjectID: projectID, KeyID: keyID, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, keyResponse{ID: k.ID, Name: k.Name, CreatedAt: k.CreatedAt})
}

// Delete handles DELETE /projects/{id}/keys/{keyId}.
func (h *KeyHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func toKeyResponse(k *domain.KeyWithTranslations) keyResponse {
	out := keyResponse{ID: k.ID, Name: k.Name, CreatedAt: k.CreatedAt}
	if len(k.Translations) > 0 {
		out.Translations = make(map[string]translationResponse, len(k.Translations))
		for tag, t := range k.Translations {
			out.Translations[tag] = toTranslationResponse(&t)
		}
	}
	return out
}
