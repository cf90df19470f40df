// internal/app/features/profile/profile.go
package profile

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/amayorga/partnerbase/internal/app/policy/patchpolicy"
	"github.com/amayorga/partnerbase/internal/app/system/httperr"
	"github.com/amayorga/partnerbase/internal/app/system/normalize"
	"github.com/amayorga/partnerbase/internal/app/system/session"
	"github.com/amayorga/partnerbase/internal/app/system/timeouts"
	"github.com/amayorga/partnerbase/internal/app/system/webjson"
)

// Get returns the authenticated account.
// GET /api/user/profile
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	acct, ok := session.CurrentAccount(r)
	if !ok {
		httperr.Write(w, h.Log, httperr.New(httperr.KindUnauthorized, httperr.CodeNotToken))
		return
	}
	webjson.Respond(w, http.StatusOK, acct)
}

// Update applies a partial profile patch. Absent fields stay untouched;
// present fields are sanitized before they reach the store.
// PATCH /api/user
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	acct, ok := session.CurrentAccount(r)
	if !ok {
		httperr.Write(w, h.Log, httperr.New(httperr.KindUnauthorized, httperr.CodeNotToken))
		return
	}

	var patch patchpolicy.ProfilePatch
	if err := webjson.Decode(r, &patch); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update profile")
	defer cancel()

	if h.Patch.CleanProfile(&patch) {
		fields := bson.M{}
		if patch.FirstName != nil {
			fields["first_name"] = normalize.Name(*patch.FirstName)
		}
		if patch.LastName != nil {
			fields["last_name"] = normalize.Name(*patch.LastName)
		}
		if patch.Logo != nil {
			fields["logo"] = *patch.Logo
		}
		if patch.Description != nil {
			fields["description"] = *patch.Description
		}
		if patch.Phone != nil {
			fields["phone"] = *patch.Phone
		}
		if err := h.Store.UpdateProfile(ctx, acct.ID, fields); err != nil {
			httperr.Write(w, h.Log, httperr.Wrap(err))
			return
		}
	}

	updated, err := h.Store.GetByID(ctx, acct.ID)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}
	if updated == nil {
		httperr.Write(w, h.Log, httperr.New(httperr.KindNotFound, httperr.CodeUserNotFound))
		return
	}

	h.Log.Info("profile updated", zap.String("account_id", acct.ID.Hex()))
	webjson.Respond(w, http.StatusOK, updated)
}

// Delete removes the account. Soft deletion (the default) hides the
// account but keeps the email reserved; ?soft=false removes the
// document for good.
// DELETE /api/user
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	acct, ok := session.CurrentAccount(r)
	if !ok {
		httperr.Write(w, h.Log, httperr.New(httperr.KindUnauthorized, httperr.CodeNotToken))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete account")
	defer cancel()

	soft := normalize.QueryParam(r.URL.Query().Get("soft")) != "false"
	if soft {
		if err := h.Store.SoftDelete(ctx, acct.ID); err != nil {
			httperr.Write(w, h.Log, httperr.Wrap(err))
			return
		}
		h.Log.Info("account soft-deleted", zap.String("account_id", acct.ID.Hex()))
		webjson.Message(w, http.StatusOK, "USER_DELETED_SOFT")
		return
	}

	if err := h.Store.HardDelete(ctx, acct.ID); err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}
	h.Log.Info("account deleted", zap.String("account_id", acct.ID.Hex()))
	webjson.Message(w, http.StatusOK, "USER_DELETED")
}
