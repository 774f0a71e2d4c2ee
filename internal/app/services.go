package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/localize-backend/internal/activity"
	"github.com/heartmarshall/localize-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/localize-backend/internal/adapter/postgres/activity"
	apikeyrepo "github.com/heartmarshall/localize-backend/internal/adapter/postgres/apikey"
	keyrepo "github.com/heartmarshall/localize-backend/internal/adapter/postgres/key"
	languagerepo "github.com/heartmarshall/localize-backend/internal/adapter/postgres/language"
	projectrepo "github.com/heartmarshall/localize-backend/internal/adapter/postgres/project"
	translationrepo "github.com/heartmarshall/localize-backend/internal/adapter/postgres/translation"
	userrepo "github.com/heartmarshall/localize-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/localize-backend/internal/auth"
	"github.com/heartmarshall/localize-backend/internal/config"
	feed "github.com/heartmarshall/localize-backend/internal/service/activity"
	"github.com/heartmarshall/localize-backend/internal/service/apikey"
	authsvc "github.com/heartmarshall/localize-backend/internal/service/auth"
	"github.com/heartmarshall/localize-backend/internal/service/exporter"
	"github.com/heartmarshall/localize-backend/internal/service/importer"
	"github.com/heartmarshall/localize-backend/internal/service/key"
	"github.com/heartmarshall/localize-backend/internal/service/language"
	"github.com/heartmarshall/localize-backend/internal/service/project"
	"github.com/heartmarshall/localize-backend/internal/service/translation"
	"github.com/heartmarshall/localize-backend/internal/transport/dataloader"
)

// Services is the wired service layer shared by the HTTP server and localectl.
type Services struct {
	Auth        *authsvc.Service
	Project     *project.Service
	Language    *language.Service
	Key         *key.Service
	Translation *translation.Service
	APIKey      *apikey.Service
	Importer    *importer.Service
	Exporter    *exporter.Service
	Activity    *feed.Service

	// Loaders are the repositories behind per-request DataLoaders.
	Loaders *dataloader.Repos
}

// NewServices builds repositories and services on top of the pool.
func NewServices(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) *Services {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	projects := projectrepo.New(pool)
	languages := languagerepo.New(pool)
	keys := keyrepo.New(pool)
	translations := translationrepo.New(pool)
	apiKeys := apikeyrepo.New(pool)
	revisions := activityrepo.New(pool, cfg.Activity.MaxEntitiesPerClass)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	assembler := activity.NewAssembler(activity.DefaultRegistry())

	projectSvc := project.NewService(logger, projects, languages, revisions, txm)

	return &Services{
		Auth:        authsvc.NewService(logger, users, txm, jwtManager, cfg.Auth),
		Project:     projectSvc,
		Language:    language.NewService(logger, languages, projectSvc, revisions, txm),
		Key:         key.NewService(logger, keys, languages, translations, projectSvc, revisions, txm),
		Translation: translation.NewService(logger, translations, keys, languages, projectSvc, revisions, txm),
		APIKey:      apikey.NewService(logger, apiKeys, projectSvc, cfg.Auth.APIKeyPrefix),
		Importer:    importer.NewService(logger, languages, keys, translations, projectSvc, revisions, txm, cfg.Import),
		Exporter:    exporter.NewService(logger, languages, keys, translations, projectSvc, cfg.Import.KeySeparator),
		Activity:    feed.NewService(logger, revisions, projectSvc, assembler, cfg.Activity),
		Loaders:     &dataloader.Repos{Language: languages},
	}
}
