package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avelasco/gymtrack/internal/jwt"
)

type fakeTokener struct {
	token    string
	tokenErr error
	claims   *jwt.Claims
	claimErr error
}

func (f *fakeTokener) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	return f.token, f.tokenErr
}

func (f *fakeTokener) GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error) {
	return f.claims, f.claimErr
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name         string
		tokener      *fakeTokener
		expectedCode int
		expectNext   bool
	}{
		{
			name: "valid token",
			tokener: &fakeTokener{
				token:  "sometoken",
				claims: &jwt.Claims{UserID: userID, Email: "a@x.com", IsAdmin: true},
			},
			expectedCode: http.StatusOK,
			expectNext:   true,
		},
		{
			name:         "missing token",
			tokener:      &fakeTokener{tokenErr: jwt.ErrMissingToken},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid token",
			tokener:      &fakeTokener{token: "bad", claimErr: errors.New("signature invalid")},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				principal := PrincipalFromContext(r.Context())
				assert.NotNil(t, principal)
				assert.Equal(t, userID, principal.UserID)
				assert.Equal(t, "a@x.com", principal.Email)
				assert.True(t, principal.IsAdmin)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tt.tokener)(next)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}

func TestPrincipalFromContext_Empty(t *testing.T) {
	assert.Nil(t, PrincipalFromContext(context.Background()))
}
