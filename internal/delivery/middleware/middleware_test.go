package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "gtfstrigger/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing"},
		{name: "caller id kept", incoming: "abc-123", keep: true},
		{name: "oversized id replaced", incoming: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			e.Use(NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process)

			var seen string
			e.GET("/", func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, seen)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.Use(CORS())
	e.GET("/settings", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	t.Run("plain request", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/settings", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "Content-Type,Authorization", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
		assert.Equal(t, "OPTIONS,POST,GET,DELETE,PUT", rec.Header().Get(echo.HeaderAccessControlAllowMethods))
	})

	t.Run("preflight without origin", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/settings", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})
}
