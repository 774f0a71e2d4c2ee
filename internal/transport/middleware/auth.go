package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/pkg/ctxutil"
)

// APIKeyHeader carries a raw project API key.
const APIKeyHeader = "X-API-Key"

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (int64, error)
}

type apiKeyAuthenticator interface {
	Authenticate(ctx context.Context, raw string) (*domain.APIKey, error)
}

// Auth resolves the caller from a Bearer JWT or an X-API-Key header.
// Requests carrying neither pass through anonymously; invalid credentials get 401.
func Auth(validator tokenValidator, apiKeys apiKeyAuthenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw := strings.TrimSpace(r.Header.Get(APIKeyHeader)); raw != "" {
				key, err := apiKeys.Authenticate(r.Context(), raw)
				if err != nil {
					writeError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				next.ServeHTTP(w, r.WithContext(withAPIKey(r.Context(), key)))
				return
			}

			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func withAPIKey(ctx context.Context, key *domain.APIKey) context.Context {
	scopes := make([]string, len(key.Scopes))
	for i, s := range key.Scopes {
		scopes[i] = s.String()
	}
	ctx = ctxutil.WithAPIKey(ctx, ctxutil.APIKeyAccess{
		KeyID:     key.ID,
		ProjectID: key.ProjectID,
		Scopes:    scopes,
	})
	// Revisions made through a key are authored by the key's creator.
	return ctxutil.WithUserID(ctx, key.UserID)
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
