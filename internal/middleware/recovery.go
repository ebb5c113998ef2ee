// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recoverer converts a panic in next into a 500 failure envelope. The
// connection-abort sentinel is re-raised so net/http can drop the
// connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && err == http.ErrAbortHandler {
				panic(rec)
			}
			slog.Log(r.Context(), slog.LevelError, "handler panicked",
				slog.String("panic", fmt.Sprint(rec)),
				slog.String("route", r.Method+" "+r.URL.Path),
				slog.String("request_id", w.Header().Get(RequestIDHeader)),
				slog.String("stack", string(debug.Stack())),
			)
			WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		}()
		next.ServeHTTP(w, r)
	})
}
