// internal/app/features/invites/invite.go
package invites

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/amayorga/partnerbase/internal/app/policy/invitepolicy"
	"github.com/amayorga/partnerbase/internal/app/system/httperr"
	"github.com/amayorga/partnerbase/internal/app/system/normalize"
	"github.com/amayorga/partnerbase/internal/app/system/session"
	"github.com/amayorga/partnerbase/internal/app/system/timeouts"
	"github.com/amayorga/partnerbase/internal/app/system/webjson"
	"github.com/amayorga/partnerbase/internal/domain/models"
)

type inviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Invite sends a partner invitation to the account registered under the
// given email. The invitee's received list gets an entry naming the
// inviter; the inviter keeps a sent mirror naming the invitee. Repeat
// invitations queue up and are consumed one at a time.
// PATCH /api/user/invite
func (h *Handler) Invite(w http.ResponseWriter, r *http.Request) {
	inviter, ok := session.CurrentAccount(r)
	if !ok {
		httperr.Write(w, h.Log, httperr.New(httperr.KindUnauthorized, httperr.CodeNotToken))
		return
	}

	var req inviteRequest
	if err := webjson.Decode(r, &req); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}
	req.Email = normalize.Email(req.Email)
	req.Role = normalize.Role(req.Role)

	if !invitepolicy.ValidRole(req.Role) || req.Email == "" || req.Email == inviter.Email {
		httperr.Write(w, h.Log, httperr.New(httperr.KindBadRequest, httperr.CodeValidationError))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "send invitation")
	defer cancel()

	invitee, err := h.Store.GetByEmail(ctx, req.Email)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}
	if invitee == nil {
		httperr.Write(w, h.Log, httperr.New(httperr.KindNotFound, httperr.CodeUserNotExists))
		return
	}

	received := models.Invitation{
		AccountID: inviter.ID,
		Email:     inviter.Email,
		Role:      req.Role,
		Status:    models.InvitationPending,
	}
	if err := h.Store.PushInvitation(ctx, invitee.ID, received); err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}

	sent := models.Invitation{
		AccountID: invitee.ID,
		Email:     invitee.Email,
		Role:      req.Role,
		Status:    models.InvitationPending,
	}
	if err := h.Store.PushSentInvitation(ctx, inviter.ID, sent); err != nil {
		// The received entry already landed; the mirror is advisory, so
		// log and keep going.
		h.Log.Warn("recording sent invitation mirror",
			zap.String("inviter_id", inviter.ID.Hex()),
			zap.Error(err),
		)
	}

	updated, err := h.Store.GetByID(ctx, inviter.ID)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}
	if updated == nil {
		httperr.Write(w, h.Log, httperr.New(httperr.KindNotFound, httperr.CodeUserNotFound))
		return
	}

	h.Log.Info("invitation sent",
		zap.String("inviter_id", inviter.ID.Hex()),
		zap.String("invitee_id", invitee.ID.Hex()),
		zap.String("role", req.Role),
	)
	webjson.Respond(w, http.StatusOK, updated)
}
