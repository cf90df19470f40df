// internal/app/features/auth/recover.go
package auth

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/amayorga/partnerbase/internal/app/system/authutil"
	"github.com/amayorga/partnerbase/internal/app/system/httperr"
	"github.com/amayorga/partnerbase/internal/app/system/mailer"
	"github.com/amayorga/partnerbase/internal/app/system/timeouts"
	"github.com/amayorga/partnerbase/internal/app/system/webjson"
)

type recoverCreateRequest struct {
	Email string `json:"email"`
}

type recoverApplyRequest struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Password string `json:"password"`
}

// CreateRecoverCode issues a password-reset code and emails it. The
// reset pair is independent of the verification pair, so requesting a
// reset never invalidates a pending email verification.
// POST /api/user/recover
func (h *Handler) CreateRecoverCode(w http.ResponseWriter, r *http.Request) {
	var req recoverCreateRequest
	if err := webjson.Decode(r, &req); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create recover code")
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

	code, expiresAt := h.Codes.Generate(time.Now().UTC())
	if err := h.Store.SetResetCode(ctx, acct.ID, code, expiresAt); err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}

	h.sendCodeEmail(ctx, acct.Email, mailer.BuildRecoveryEmail(mailer.CodeEmailData{
		SiteName:  h.SiteName,
		Code:      code,
		ExpiresIn: h.expiresIn(),
	}))

	h.Log.Info("recover code created", zap.String("account_id", acct.ID.Hex()))
	webjson.Message(w, http.StatusOK, "RECOVER_CODE_CREATED")
}

// RecoverPassword consumes a valid reset code and replaces the password.
// The write also clears the code pair and any lockout counters so the
// fresh credentials work immediately.
// PATCH /api/user/recover
func (h *Handler) RecoverPassword(w http.ResponseWriter, r *http.Request) {
	var req recoverApplyRequest
	if err := webjson.Decode(r, &req); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}
	if err := authutil.ValidatePassword(req.Password); err != nil {
		httperr.Write(w, h.Log, httperr.New(httperr.KindBadRequest, httperr.CodeValidationError))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "recover password")
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
	if !h.Codes.IsValid(acct.AccountStatus.PasswordResetCode, acct.AccountStatus.PasswordResetExpiration, req.Code, time.Now().UTC()) {
		httperr.Write(w, h.Log, httperr.New(httperr.KindBadRequest, httperr.CodeInvalidOrExpiredCode))
		return
	}

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}
	if err := h.Store.SetPassword(ctx, acct.ID, hash); err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}

	h.Log.Info("password updated via recovery", zap.String("account_id", acct.ID.Hex()))
	webjson.Message(w, http.StatusOK, "PASSWORD_UPDATED")
}
