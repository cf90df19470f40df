// internal/app/features/invites/handler.go
//
// Package invites implements the partner invitation protocol. An account
// invites another by email; the invitee sees the invitation on its
// received list and either accepts, which links the inviter as a partner
// of the invitee's company, or rejects, which just drops the entry. The
// received list is authoritative; the inviter's sent mirror is cleaned
// up best-effort.
package invites

import (
	"go.uber.org/zap"

	accountstore "github.com/amayorga/partnerbase/internal/app/store/accounts"
)

// Handler owns the invitation endpoints.
type Handler struct {
	Store *accountstore.Store
	Log   *zap.Logger
}

// NewHandler constructs an invites Handler.
func NewHandler(store *accountstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}
