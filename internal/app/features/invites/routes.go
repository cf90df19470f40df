// internal/app/features/invites/routes.go
package invites

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Patch("/", h.Invite)
	r.Patch("/accept", h.Accept)
	r.Patch("/reject", h.Reject)
	return r
}
