package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/internal/service/translation"
)

type translationService interface {
	Set(ctx context.Context, input translation.SetInput) (map[string]domain.Translation, error)
	SetState(ctx context.Context, input translation.SetStateInput) (*domain.Translation, error)
	ListByLanguage(ctx context.Context, projectID int64, tag string) ([]domain.Translation, error)
}

// TranslationHandler serves /projects/{id}/translations endpoints.
type TranslationHandler struct {
	svc translationService
	log *slog.Logger
}

// NewTranslationHandler creates a TranslationHandler.
func NewTranslationHandler(svc translationService, logger *slog.Logger) *TranslationHandler {
	return &TranslationHandler{svc: svc, log: logger.With("handler", "translation")}
}

type setTranslationsRequest struct {
	KeyID        int64             `json:"keyId"`
	Translations map[string]string `json:"translations"`
}

type setStateRequest struct {
	KeyID       int64  `json:"keyId"`
	LanguageTag string `json:"languageTag"`
	State       string `json:"state"`
}

type translationResponse struct {
	ID         int64     `json:"id"`
	KeyID      int64     `json:"keyId"`
	LanguageID int64     `json:"languageId"`
	Text       *string   `json:"text"`
	State      string    `json:"state"`
	Auto       bool      `json:"auto"`
	MTProvider *string   `json:"mtProvider,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Set handles PUT /projects/{id}/translations.
func (h *TranslationHandler) Set(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req setTranslationsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	saved, err := h.svc.Set(r.Context(), translation.SetInput{
		ProjectID: projectID,
		KeyID:     req.KeyID,
		Texts:     req.Translations,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make(map[string]translationResponse, len(saved))
	for tag, t := range saved {
		out[tag] = toTranslationResponse(&t)
	}
	writeJSON(w, http.StatusOK, out)
}

// SetState handles PUT /projects/{id}/translations/state.
func (h *TranslationHandler) SetState(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req setStateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.SetState(r.Context(), translation.SetStateInput{
		ProjectID:   projectID,
		KeyID:       req.KeyID,
		LanguageTag: req.LanguageTag,
		State:       domain.TranslationState(req.State),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTranslationResponse(t))
}

// List handles GET /projects/{id}/translations?language=.
func (h *TranslationHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	tag := r.URL.Query().Get("language")
	if tag == "" {
		handleError(h.log, w, r, domain.NewValidationError("language", "required"))
		return
	}

	trs, err := h.svc.ListByLanguage(r.Context(), projectID, tag)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]translationResponse, len(trs))
	for i := range trs {
		out[i] = toTranslationResponse(&trs[i])
	}
	writeJSON(w, http.StatusOK, out)
}

func toTranslationResponse(t *domain.Translation) translationResponse {
	return translationResponse{
		ID:         t.ID,
		KeyID:      t.KeyID,
		LanguageID: t.LanguageID,
		Text:       t.Text,
		State:      t.State.String(),
		Auto:       t.Auto,
		MTProvider: t.MTProvider,
		UpdatedAt:  t.UpdatedAt,
	}
}
