package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/localize-backend/internal/config"
	"github.com/heartmarshall/localize-backend/internal/transport/dataloader"
	"github.com/heartmarshall/localize-backend/internal/transport/middleware"
	"github.com/heartmarshall/localize-backend/internal/transport/rest"
)

// NewRouter registers every HTTP endpoint and wraps the mux in the
// middleware chain. Auth endpoints are rate limited per client.
func NewRouter(
	svc *Services,
	health *rest.HealthHandler,
	limiter *middleware.RateLimiter,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	authH := rest.NewAuthHandler(svc.Auth, logger)
	projectH := rest.NewProjectHandler(svc.Project, logger)
	languageH := rest.NewLanguageHandler(svc.Language, logger)
	keyH := rest.NewKeyHandler(svc.Key, logger)
	translationH := rest.NewTranslationHandler(svc.Translation, logger)
	apiKeyH := rest.NewAPIKeyHandler(svc.APIKey, logger)
	transferH := rest.NewTransferHandler(svc.Importer, svc.Exporter, cfg.Import.MaxFileBytes+1, logger)
	activityH := rest.NewActivityHandler(svc.Activity, logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	authLimit := limiter.Limit(cfg.Server.AuthRateLimit)
	mux.Handle("POST /auth/register", middleware.Route(authH.Register, authLimit))
	mux.Handle("POST /auth/login", middleware.Route(authH.Login, authLimit))
	mux.HandleFunc("GET /auth/me", authH.Me)

	mux.HandleFunc("POST /projects", projectH.Create)
	mux.HandleFunc("GET /projects", projectH.List)
	mux.HandleFunc("GET /projects/{id}", projectH.Get)
	mux.HandleFunc("PATCH /projects/{id}", projectH.Update)
	mux.HandleFunc("DELETE /projects/{id}", projectH.Delete)

	mux.HandleFunc("POST /projects/{id}/languages", languageH.Create)
	mux.HandleFunc("GET /projects/{id}/languages", languageH.List)
	mux.HandleFunc("PATCH /projects/{id}/languages/{languageId}", languageH.Update)
	mux.HandleFunc("DELETE /projects/{id}/languages/{languageId}", languageH.Delete)

	mux.HandleFunc("POST /projects/{id}/keys", keyH.Create)
	mux.HandleFunc("GET /projects/{id}/keys", keyH.List)
	mux.HandleFunc("PATCH /projects/{id}/keys/{keyId}", keyH.Rename)
	mux.HandleFunc("DELETE /projects/{id}/keys/{keyId}", keyH.Delete)

	mux.HandleFunc("PUT /projects/{id}/translations", translationH.Set)
	mux.HandleFunc("GET /projects/{id}/translations", translationH.List)
	mux.HandleFunc("PUT /projects/{id}/translations/state", translationH.SetState)

	mux.HandleFunc("POST /projects/{id}/api-keys", apiKeyH.Create)
	mux.HandleFunc("GET /projects/{id}/api-keys", apiKeyH.List)
	mux.HandleFunc("DELETE /projects/{id}/api-keys/{keyId}", apiKeyH.Delete)

	importLimit := limiter.LimitBy("import", cfg.Server.ImportRateLimit, middleware.CallerKey)
	mux.Handle("POST /projects/{id}/import", middleware.Route(transferH.Import, importLimit))
	mux.HandleFunc("GET /projects/{id}/export/{tag}", transferH.Export)

	mux.HandleFunc("GET /projects/{id}/activity", activityH.List)
	mux.HandleFunc("GET /projects/{id}/activity/{revisionId}", activityH.Get)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svc.Auth, svc.APIKey),
		middleware.Logger(logger),
		dataloader.Middleware(svc.Loaders),
	)(mux)
}
