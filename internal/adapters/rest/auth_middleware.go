package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/srinugalla/the-slice-x/internal/contextkeys"
	"github.com/srinugalla/the-slice-x/internal/core/domain"
	"github.com/srinugalla/the-slice-x/internal/core/port"
	usecases_port "github.com/srinugalla/the-slice-x/internal/core/port/usecases_port"
)

type contextKey string

const identityKey = contextKey("identity")

type AuthMiddleware struct {
	authenticateUC usecases_port.AuthenticateCallerUseCasePort
	metrics        port.MetricsPort
}

func NewAuthMiddleware(authenticateUC usecases_port.AuthenticateCallerUseCasePort, metrics port.MetricsPort) *AuthMiddleware {
	return &AuthMiddleware{authenticateUC: authenticateUC, metrics: metrics}
}

// Authenticate пропускает запрос дальше только с валидным bearer-токеном.
// Тело запроса до этого момента не читается.
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
			"middleware": "Authenticate",
		})

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			logger.Warn("Missing or malformed Authorization header", nil)
			am.reject(w)
			return
		}

		identity, err := am.authenticateUC.Execute(r.Context(), token)
		if err != nil {
			am.reject(w)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (am *AuthMiddleware) reject(w http.ResponseWriter) {
	if am.metrics != nil {
		am.metrics.ObserveReveal(port.KindUnknown, port.OutcomeUnauthorized)
	}
	WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
}

// bearerToken извлекает токен из "Bearer <token>". Схема без учета регистра.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// IdentityFromContext возвращает пользователя, положенного AuthMiddleware.
func IdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*domain.Identity)
	return identity, ok && identity != nil
}
