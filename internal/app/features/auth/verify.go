// internal/app/features/auth/verify.go
package auth

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/amayorga/partnerbase/internal/app/system/httperr"
	"github.com/amayorga/partnerbase/internal/app/system/timeouts"
	"github.com/amayorga/partnerbase/internal/app/system/webjson"
)

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// Verify confirms control of an email address with the emailed code and
// activates the account. One-shot: once validated, further attempts fail.
// PUT /api/user/verify
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := webjson.Decode(r, &req); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "verify email")
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
	if acct.AccountStatus.Validated {
		httperr.Write(w, h.Log, httperr.New(httperr.KindConflict, httperr.CodeEmailAlreadyValidated))
		return
	}
	if !h.Codes.IsValid(acct.AccountStatus.VerificationCode, acct.AccountStatus.CodeExpiration, req.Code, time.Now().UTC()) {
		httperr.Write(w, h.Log, httperr.New(httperr.KindBadRequest, httperr.CodeInvalidOrExpiredCode))
		return
	}

	if err := h.Store.SetValidated(ctx, acct.ID); err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}

	h.Log.Info("email validated", zap.String("account_id", acct.ID.Hex()))
	webjson.Message(w, http.StatusOK, "EMAIL_VALIDATED")
}
