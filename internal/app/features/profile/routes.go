// internal/app/features/profile/routes.go
package profile

import "github.com/go-chi/chi/v5"

// Routes registers the authenticated account endpoints on r. The caller
// is responsible for putting r behind the session middleware.
func Routes(r chi.Router, h *Handler) {
	r.Get("/profile", h.Get)
	r.Patch("/", h.Update)
	r.Delete("/", h.Delete)
	r.Patch("/company", h.UpdateCompany)
	r.Patch("/logo", h.UploadLogo)
}
