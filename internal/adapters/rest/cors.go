package rest

import (
	"net/http"

	"github.com/go-chi/cors"
)

// allowedHeaders - заголовки, которые браузер может прислать в запросе.
const allowedHeaders = "authorization, apikey, content-type"

// corsMiddleware разрешает любой origin. Preflight не обрабатывается здесь,
// а передается в PreflightMiddleware.
func corsMiddleware() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodPost, http.MethodGet, http.MethodOptions},
		AllowedHeaders:     []string{"Authorization", "Apikey", "Content-Type", "X-Trace-ID"},
		ExposedHeaders:     []string{"X-Trace-ID"},
		AllowCredentials:   false,
		MaxAge:             300,
		OptionsPassthrough: true,
	})
}

// PreflightMiddleware отвечает на любой OPTIONS пустым 200 без аутентификации
// и без чтения тела.
func PreflightMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", allowedHeaders)
		w.WriteHeader(http.StatusOK)
	})
}
