// internal/app/features/auth/routes.go
package auth

import "github.com/go-chi/chi/v5"

// Routes registers the public account endpoints on r.
func Routes(r chi.Router, h *Handler) {
	r.Post("/register", h.Register)
	r.Put("/verify", h.Verify)
	r.Post("/login", h.Login)
	r.Post("/recover", h.CreateRecoverCode)
	r.Patch("/recover", h.RecoverPassword)
}
