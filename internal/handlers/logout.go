package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avelasco/gymtrack/internal/jwt"
)

// NewLogoutHandler returns an HTTP handler that clears the credential cookie.
// @Summary User logout
// @Description Clears the credential cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Cookie cleared"
// @Router /logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Logout exitoso",
		})
	}
}
