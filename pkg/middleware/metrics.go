package middleware

import (
	"net/http"
	"time"
)

// HTTPObserver recebe o resultado de cada requisição instrumentada
type HTTPObserver interface {
	ObserveHTTPRequest(route, method string, statusCode int, duration time.Duration)
}

// Instrument mede a rota informada. Usa o path registrado (não o da URL) como label.
func Instrument(observer HTTPObserver, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if observer == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			observer.ObserveHTTPRequest(route, r.Method, lrw.statusCode, time.Since(startTime))
		})
	}
}
