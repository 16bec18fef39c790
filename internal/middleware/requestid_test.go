// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/wayfinder/internal/logging"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "generated when missing", incoming: "", wantSame: false},
		{name: "upstream id reused", incoming: "edge-1234", wantSame: true},
		{name: "oversized id replaced", incoming: strings.Repeat("x", 200), wantSame: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ctxID, chiID, corrID string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxID = GetRequestID(r.Context())
				chiID = chimiddleware.GetReqID(r.Context())
				corrID = logging.CorrelationIDFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/points/popular", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			header := rec.Header().Get(RequestIDHeader)
			if header == "" {
				t.Fatal("response is missing X-Request-ID")
			}
			if header != ctxID {
				t.Errorf("header %q != context %q", header, ctxID)
			}
			if chiID != ctxID {
				t.Errorf("chi request id %q != %q", chiID, ctxID)
			}
			if corrID == "" {
				t.Error("correlation id not set")
			}
			if tt.wantSame && header != tt.incoming {
				t.Errorf("request id = %q, want %q", header, tt.incoming)
			}
			if !tt.wantSame && len(header) != 36 {
				t.Errorf("generated request id %q is not a UUID", header)
			}
		})
	}
}
