package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/localize-backend/internal/activity"
	feed "github.com/heartmarshall/localize-backend/internal/service/activity"
	"github.com/heartmarshall/localize-backend/internal/transport/dataloader"
)

type activityService interface {
	List(ctx context.Context, input feed.ListInput) (*feed.Page, error)
	Get(ctx context.Context, projectID, revisionID int64) (*activity.Activity, error)
}

// ActivityHandler serves the project activity feed.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

type activityPageResponse struct {
	Items []activity.Activity `json:"items"`
	Page  int                 `json:"page"`
	Size  int                 `json:"size"`
	Total int                 `json:"total"`
}

// List handles GET /projects/{id}/activity?page=&size=.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	page, err := queryInt(r, "page", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	size, err := queryInt(r, "size", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), feed.ListInput{ProjectID: projectID, Page: page, Size: size})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := result.Items
	if items == nil {
		items = []activity.Activity{}
	}
	h.fillLanguages(r, items)

	writeJSON(w, http.StatusOK, activityPageResponse{
		Items: items,
		Page:  result.Page,
		Size:  result.Size,
		Total: result.Total,
	})
}

// Get handles GET /projects/{id}/activity/{revisionId}.
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	revisionID, err := pathID(r, "revisionId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.Get(r.Context(), projectID, revisionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := []activity.Activity{*a}
	h.fillLanguages(r, items)
	writeJSON(w, http.StatusOK, items[0])
}

// fillLanguages completes language references from the request loaders.
// Failures leave the references as recorded.
func (h *ActivityHandler) fillLanguages(r *http.Request, items []activity.Activity) {
	loaders := dataloader.FromContext(r.Context())
	if loaders == nil {
		return
	}
	if err := loaders.FillLanguageRefs(r.Context(), items); err != nil {
		h.log.WarnContext(r.Context(), "fill language references", slog.String("error", err.Error()))
	}
}
