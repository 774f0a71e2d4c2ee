package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/internal/service/exporter"
	"github.com/heartmarshall/localize-backend/internal/service/importer"
	"github.com/heartmarshall/localize-backend/pkg/keytree"
)

type importService interface {
	Import(ctx context.Context, input importer.Input) (*importer.Result, error)
}

type exportService interface {
	Export(ctx context.Context, input exporter.Input) (*exporter.Document, error)
}

// TransferHandler serves translation file import and export.
type TransferHandler struct {
	importer importService
	exporter exportService
	maxBytes int64
	log      *slog.Logger
}

// NewTransferHandler creates a TransferHandler. Import bodies larger than
// maxBytes are rejected before parsing.
func NewTransferHandler(imp importService, exp exportService, maxBytes int64, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{
		importer: imp,
		exporter: exp,
		maxBytes: maxBytes,
		log:      logger.With("handler", "transfer"),
	}
}

type importResponse struct {
	LanguageID      int64 `json:"languageId"`
	LanguageCreated bool  `json:"languageCreated"`
	Entries         int   `json:"entries"`
	KeysCreated     int   `json:"keysCreated"`
	Translated      int   `json:"translated"`
	Unchanged       int   `json:"unchanged"`
	Skipped         int   `json:"skipped"`
}

// Import handles POST /projects/{id}/import?language=&format=&override=.
// The request body is the raw document; the format defaults from Content-Type.
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	format, err := requestFormat(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	override, err := queryBool(r, "override")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		handleError(h.log, w, r, domain.NewValidationError("file", "unreadable body"))
		return
	}

	result, err := h.importer.Import(r.Context(), importer.Input{
		ProjectID:   projectID,
		LanguageTag: r.URL.Query().Get("language"),
		Format:      format,
		Data:        data,
		Override:    override,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{
		LanguageID:      result.LanguageID,
		LanguageCreated: result.LanguageCreated,
		Entries:         result.Entries,
		KeysCreated:     result.KeysCreated,
		Translated:      result.Translated,
		Unchanged:       result.Unchanged,
		Skipped:         result.Skipped,
	})
}

// Export handles GET /projects/{id}/export/{tag}?format=&nested=.
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	format := keytree.FormatJSON
	if raw := r.URL.Query().Get("format"); raw != "" {
		if format, err = keytree.ParseFormat(raw); err != nil {
			handleError(h.log, w, r, domain.NewValidationError("format", "must be json or yaml"))
			return
		}
	}
	nested, err := queryBool(r, "nested")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	doc, err := h.exporter.Export(r.Context(), exporter.Input{
		ProjectID:   projectID,
		LanguageTag: r.PathValue("tag"),
		Format:      format,
		Nested:      nested != nil && *nested,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType(doc.Format))
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": fmt.Sprintf("%s.%s", doc.LanguageTag, doc.Format)}))
	w.Header().Set("X-Entry-Count", strconv.Itoa(doc.Entries))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Data) //nolint:errcheck
}

// requestFormat picks the import format from ?format= or the Content-Type.
func requestFormat(r *http.Request) (keytree.Format, error) {
	if raw := r.URL.Query().Get("format"); raw != "" {
		f, err := keytree.ParseFormat(raw)
		if err != nil {
			return "", domain.NewValidationError("format", "must be json or yaml")
		}
		return f, nil
	}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return keytree.FormatYAML, nil
	}
	return keytree.FormatJSON, nil
}

func contentType(f keytree.Format) string {
	if f == keytree.FormatYAML {
		return "application/yaml; charset=utf-8"
	}
	return "application/json; charset=utf-8"
}
