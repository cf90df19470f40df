// internal/app/features/auth/login.go
package auth

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/amayorga/partnerbase/internal/app/system/authutil"
	"github.com/amayorga/partnerbase/internal/app/system/httperr"
	"github.com/amayorga/partnerbase/internal/app/system/timeouts"
	"github.com/amayorga/partnerbase/internal/app/system/webjson"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks credentials against a verified account and issues a
// session token. Failed attempts count toward the lockout window and
// are recorded before the failure is returned.
// POST /api/user/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := webjson.Decode(r, &req); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "login")
	defer cancel()

	acct, err := h.Store.GetByEmail(ctx, req.Email)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}
	if acct == nil {
		httperr.Write(w, h.Log, httperr.New(httperr.KindNotFound, httperr.CodeUserNotExists))
		return
	}
	if !acct.AccountStatus.Validated {
		httperr.Write(w, h.Log, httperr.New(httperr.KindUnauthorized, httperr.CodeEmailNotValidated))
		return
	}

	now := time.Now().UTC()
	st := &acct.AccountStatus

	if h.Creds.IsLocked(st, now) {
		h.Log.Warn("login blocked by lockout", zap.String("account_id", acct.ID.Hex()))
		httperr.Write(w, h.Log, httperr.New(httperr.KindTooMany, httperr.CodeTooManyAttempts))
		return
	}

	if !authutil.CheckPassword(req.Password, acct.Password) {
		// Record the failure before returning it. This write also
		// persists a lazy counter reset performed by IsLocked.
		h.Creds.RecordFailure(st, now)
		if err := h.Store.SetLoginAttempts(ctx, acct.ID, st.LoginAttempts, st.LastLoginAttempt); err != nil {
			h.Log.Warn("persisting failed login attempt", zap.Error(err))
		}
		httperr.Write(w, h.Log, httperr.New(httperr.KindUnauthorized, httperr.CodeInvalidPassword))
		return
	}

	h.Creds.Reset(st)
	if err := h.Store.SetLoginAttempts(ctx, acct.ID, 0, nil); err != nil {
		h.Log.Warn("resetting login attempts", zap.Error(err))
	}

	token, err := h.issueToken(acct.ID)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}

	h.Log.Info("login succeeded", zap.String("account_id", acct.ID.Hex()))
	webjson.Respond(w, http.StatusOK, sessionResponse{Token: token, Account: acct})
}
