package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/internal/service/language"
)

type languageService interface {
	Create(ctx context.Context, input language.CreateInput) (*domain.Language, error)
	List(ctx context.Context, projectID int64) ([]domain.Language, error)
	Update(ctx context.Context, input language.UpdateInput) (*domain.Language, error)
	Delete(ctx context.Context, projectID, languageID int64) error
}

// LanguageHandler serves /projects/{id}/languages endpoints.
type LanguageHandler struct {
	svc languageService
	log *slog.Logger
}

// NewLanguageHandler creates a LanguageHandler.
func NewLanguageHandler(svc languageService, logger *slog.Logger) *LanguageHandler {
	return &LanguageHandler{svc: svc, log: logger.With("handler", "language")}
}

type languageRequest struct {
	Tag          *string `json:"tag"`
	Name         *string `json:"name"`
	OriginalName *string `json:"originalName"`
	FlagEmoji    *string `json:"flagEmoji"`
}

type languageResponse struct {
	ID           int64   `json:"id"`
	Tag          string  `json:"tag"`
	Name         string  `json:"name"`
	OriginalName *string `json:"originalName,omitempty"`
	FlagEmoji    *string `json:"flagEmoji,omitempty"`
}

// Create handles POST /projects/{id}/languages.
func (h *LanguageHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req languageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := language.CreateInput{
		ProjectID:    projectID,
		Name:         req.Name,
		OriginalName: req.OriginalName,
		FlagEmoji:    req.FlagEmoji,
	}
	if req.Tag != nil {
		input.Tag = *req.Tag
	}

	lang, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLanguageResponse(lang))
}

// List handles GET /projects/{id}/languages.
func (h *LanguageHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	langs, err := h.svc.List(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]languageResponse, len(langs))
	for i := range langs {
		out[i] = toLanguageResponse(&langs[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PATCH /projects/{id}/languages/{languageId}.
func (h *LanguageHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	languageID, err := pathID(r, "languageId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req languageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lang, err := h.svc.Update(r.Context(), language.UpdateInput{
		ProjectID:    projectID,
		LanguageID:   languageID,
		Tag:          req.Tag,
		Name:         req.Name,
		OriginalName: req.OriginalName,
		FlagEmoji:    req.FlagEmoji,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLanguageResponse(lang))
}

// Delete handles DELETE /projects/{id}/languages/{languageId}.
func (h *LanguageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	languageID, err := pathID(r, "languageId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), projectID, languageID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toLanguageResponse(l *domain.Language) languageResponse {
	return languageResponse{
		ID:           l.ID,
		Tag:          l.Tag,
		Name:         l.Name,
		OriginalName: l.OriginalName,
		FlagEmoji:    l.FlagEmoji,
	}
}
