package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
)

// Recovery восстанавливается после panic и возвращает 500 ошибку
func Recovery(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error("Panic recovered", map[string]interface{}{
						"error":       err,
						"stack":       string(debug.Stack()),
						"method":      r.Method,
						"path":        r.URL.Path,
						"remote_addr": r.RemoteAddr,
					})

					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte("error interno del servidor"))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
