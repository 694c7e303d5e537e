// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recoverer turns a panic anywhere below it in the chain into a logged
// 500 response. A malformed content document or template must never
// take the whole storefront down with it.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logPanic(r, rec)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func logPanic(r *http.Request, rec any) {
	slog.Error("panic recovered",
		"error", rec,
		"method", r.Method,
		"path", r.URL.Path,
		"remote", r.RemoteAddr,
		"stack", string(debug.Stack()),
	)
}
