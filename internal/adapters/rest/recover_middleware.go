package rest

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/srinugalla/the-slice-x/internal/contextkeys"
	"github.com/srinugalla/the-slice-x/internal/core/port"
)

// RecoverMiddleware превращает панику в 500 {"error":"Server error"}.
// http.ErrAbortHandler пробрасывается дальше, как в chi middleware.Recoverer.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger := contextkeys.LoggerFromContext(r.Context())
			logger.Error("Panic recovered", fmt.Errorf("%v", rvr), port.Fields{
				"stack": string(debug.Stack()),
			})

			if r.Header.Get("Connection") != "Upgrade" {
				WriteJSONError(w, http.StatusInternalServerError, "Server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
