package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/listkeeper/internal/server/token"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	tokenString, err := tokens.Issue("owner-123", "alice")
	require.NoError(t, err)

	var gotOwnerID string
	handler := AuthMiddleware(testLogger(), tokens)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotOwnerID = OwnerID(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sync/task/full", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "owner-123", gotOwnerID)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)

	expired := token.NewManager("test-secret", -time.Minute)
	expiredToken, err := expired.Issue("owner-123", "alice")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.token"},
		{name: "expired token", header: "Bearer " + expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := AuthMiddleware(testLogger(), tokens)(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					called = true
				}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/sync/task/full", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called)
		})
	}
}

func TestOwnerID_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, OwnerID(req.Context()))
}
