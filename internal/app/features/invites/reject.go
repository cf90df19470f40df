// internal/app/features/invites/reject.go
package invites

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/amayorga/partnerbase/internal/app/policy/invitepolicy"
	"github.com/amayorga/partnerbase/internal/app/system/httperr"
	"github.com/amayorga/partnerbase/internal/app/system/session"
	"github.com/amayorga/partnerbase/internal/app/system/timeouts"
	"github.com/amayorga/partnerbase/internal/app/system/webjson"
)

// Reject drops the oldest pending invitation from the given inviter
// without creating a partner link, and best-effort removes the matching
// entry from the inviter's sent mirror.
// PATCH /api/user/invite/reject
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "reject invitation")
	defer cancel()

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
		httperr.Write(w, h.Log, httperr.New(httperr.KindNotFound, httperr.CodeInvitationNotFound))
		return
	}

	remaining := invitepolicy.RemoveAt(current.Invitations, i)
	if err := h.Store.ReplaceInvitations(ctx, current.ID, remaining); err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}

	h.cleanSentMirror(ctx, inviterID, current.ID)

	updated, err := h.Store.GetByID(ctx, current.ID)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}
	if updated == nil {
		httperr.Write(w, h.Log, httperr.New(httperr.KindNotFound, httperr.CodeUserNotFound))
		return
	}

	h.Log.Info("invitation rejected",
		zap.String("account_id", current.ID.Hex()),
		zap.String("inviter_id", inviterID.Hex()),
	)
	webjson.Respond(w, http.StatusOK, updated)
}

// cleanSentMirror removes one pending sent-mirror entry pointing at the
// rejecting account. Failures are logged only; the mirror is advisory.
func (h *Handler) cleanSentMirror(ctx context.Context, inviterID, rejecterID primitive.ObjectID) {
	inviter, err := h.Store.GetByID(ctx, inviterID)
	if err != nil || inviter == nil {
		h.Log.Warn("loading inviter for mirror cleanup",
			zap.String("inviter_id", inviterID.Hex()),
			zap.Error(err),
		)
		return
	}

	i := invitepolicy.FirstPendingFrom(inviter.SentInvitations, rejecterID)
	if i < 0 {
		return
	}
	remaining := invitepolicy.RemoveAt(inviter.SentInvitations, i)
	if err := h.Store.ReplaceSentInvitations(ctx, inviter.ID, remaining); err != nil {
		h.Log.Warn("cleaning sent invitation mirror",
			zap.String("inviter_id", inviterID.Hex()),
			zap.Error(err),
		)
	}
}
