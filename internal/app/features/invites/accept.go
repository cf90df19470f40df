// internal/app/features/invites/accept.go
package invites

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/amayorga/partnerbase/internal/app/policy/invitepolicy"
	"github.com/amayorga/partnerbase/internal/app/system/httperr"
	"github.com/amayorga/partnerbase/internal/app/system/session"
	"github.com/amayorga/partnerbase/internal/app/system/timeouts"
	"github.com/amayorga/partnerbase/internal/app/system/webjson"
	"github.com/amayorga/partnerbase/internal/domain/models"
)

type resolveRequest struct {
	AccountID string `json:"accountId"`
}

// Accept consumes the oldest pending invitation from the given inviter
// and links the inviter as a partner of the current account's company.
// The inviter's sent mirror is not touched here; the received list is
// the authoritative record.
// PATCH /api/user/invite/accept
func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	acct, ok := session.CurrentAccount(r)
	if !ok {
		httperr.Write(w, h.Log, httperr.New(httperr.KindUnauthorized, httperr.CodeNotToken))
		return
	}

	var req resolveRequest
	if err := webjson.Decode(r, &req); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}
	inviterID, err := primitive.ObjectIDFromHex(req.AccountID)
	if err != nil {
		httperr.Write(w, h.Log, httperr.New(httperr.KindBadRequest, httperr.CodeValidationError))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "accept invitation")
	defer cancel()

	// Reload to see invitations that arrived after the token was issued.
	current, err := h.Store.GetByID(ctx, acct.ID)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}
	if current == nil {
		httperr.Write(w, h.Log, httperr.New(httperr.KindNotFound, httperr.CodeUserNotFound))
		return
	}

	i := invitepolicy.FirstPendingFrom(current.Invitations, inviterID)
	if i < 0 {
		httperr.Write(w, h.Log, httperr.New(httperr.KindNotFound, httperr.CodeInvitationNotExists))
		return
	}
	role := current.Invitations[i].Role

	remaining := invitepolicy.RemoveAt(current.Invitations, i)
	if err := h.Store.ReplaceInvitations(ctx, current.ID, remaining); err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}

	if !invitepolicy.HasPartner(current.Company, inviterID) {
		partner := models.Partner{AccountID: inviterID, Role: role}
		if err := h.Store.PushPartner(ctx, current.ID, partner); err != nil {
			httperr.Write(w, h.Log, httperr.Wrap(err))
			return
		}
	}

	updated, err := h.Store.GetByID(ctx, current.ID)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}
	if updated == nil {
		httperr.Write(w, h.Log, httperr.New(httperr.KindNotFound, httperr.CodeUserNotFound))
		return
	}

	h.Log.Info("invitation accepted",
		zap.String("account_id", current.ID.Hex()),
		zap.String("inviter_id", inviterID.Hex()),
		zap.String("role", role),
	)
	webjson.Respond(w, http.StatusOK, updated)
}
