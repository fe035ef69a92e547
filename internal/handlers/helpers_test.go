package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"

	"github.com/avelasco/gymtrack/internal/jwt"
	"github.com/avelasco/gymtrack/internal/middlewares"
)

// authedRequest builds a request carrying the given principal, as the auth
// middleware would have left it.
func authedRequest(method, target string, body []byte, claims *jwt.Claims) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(middlewares.ContextWithPrincipal(req.Context(), claims))
}

func memberClaims(userID uuid.UUID) *jwt.Claims {
	return &jwt.Claims{UserID: userID, Email: "ana@example.com", Name: "Ana", IsAdmin: false}
}

func adminClaims(userID uuid.UUID) *jwt.Claims {
	return &jwt.Claims{UserID: userID, Email: "admin@example.com", Name: "Admin", IsAdmin: true}
}
