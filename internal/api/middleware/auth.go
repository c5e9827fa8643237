package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/internal/integrations/authservice"
)

const (
	msgMissingToken = "требуется аутентификация"
	msgInvalidToken = "недействительный токен"
)

// TokenVerifier проверяет bearer-токен и возвращает профиль пользователя
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*authservice.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth аутентифицирует запрос по заголовку Authorization
// Токен повторно проверяется auth-сервисом на каждом запросе:
// идентичность пользователя никогда не берётся из тела или параметров.
// Профиль кладётся в контекст запроса и доступен через ProfileFromContext
func Auth(verifier TokenVerifier, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Warn("Auth: missing bearer token, path=%s", r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			profile, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, authservice.ErrUnauthenticated) {
					logger.Warn("Auth: invalid token, path=%s", r.URL.Path)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				logger.Error("Auth: token verification failed, path=%s: %v", r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := WithProfile(r.Context(), &domain.Profile{
				ID:       profile.ID,
				TenantID: profile.TenantID,
				FullName: profile.FullName,
				Role:     profile.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken извлекает токен из заголовка Authorization
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
