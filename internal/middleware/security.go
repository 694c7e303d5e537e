// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// secureHeaderSet is applied to every response. The storefront serves
// no embedded third-party content, so the policy can be strict: no
// MIME sniffing, no cross-origin framing, no sensor or tracking
// permissions, and a trimmed Referer.
var secureHeaderSet = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "SAMEORIGIN",
	"X-XSS-Protection":       "0", // legacy filter off; the templates escape everything
	"Referrer-Policy":        "strict-origin-when-cross-origin",
	"Permissions-Policy":     "camera=(), microphone=(), geolocation=(), interest-cohort=()",
}

// SecureHeaders adds the baseline security headers to every response.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for name, value := range secureHeaderSet {
			h.Set(name, value)
		}
		next.ServeHTTP(w, r)
	})
}
