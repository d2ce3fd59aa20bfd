package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubValidator accepts a single known token and rejects everything else.
type stubValidator struct {
	token  string
	userID uuid.UUID
}

type stubClaims struct{ userID uuid.UUID }

func (c *stubClaims) GetUserID() uuid.UUID { return c.userID }

func (v *stubValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	if tokenString != v.token {
		return nil, fmt.Errorf("invalid token")
	}
	return &stubClaims{userID: v.userID}, nil
}

func authTestHandler(t *testing.T, wantUserID uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := GetUserID(r)
		require.NoError(t, err)
		assert.Equal(t, wantUserID, userID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	mw := AuthMiddleware(&stubValidator{token: "good-token", userID: userID})

	req := httptest.NewRequest("DELETE", "/runs/abc", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	mw(authTestHandler(t, userID)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	userID := uuid.New()
	mw := AuthMiddleware(&stubValidator{token: "good-token", userID: userID})

	req := httptest.NewRequest("DELETE", "/runs/abc", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()

	mw(authTestHandler(t, userID)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	mw := AuthMiddleware(&stubValidator{token: "good-token", userID: uuid.New()})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic good-token",
		"no token":       "Bearer",
		"bad token":      "Bearer stolen-token",
	}

	for name, header := range cases {
		req := httptest.NewRequest("DELETE", "/runs/abc", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()

		mw(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
	}
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	_, err := GetUserID(req)

	assert.Error(t, err)
}
