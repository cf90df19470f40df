// internal/app/features/auth/register.go
package auth

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	accountstore "github.com/amayorga/partnerbase/internal/app/store/accounts"
	"github.com/amayorga/partnerbase/internal/app/system/authutil"
	"github.com/amayorga/partnerbase/internal/app/system/httperr"
	"github.com/amayorga/partnerbase/internal/app/system/mailer"
	"github.com/amayorga/partnerbase/internal/app/system/normalize"
	"github.com/amayorga/partnerbase/internal/app/system/timeouts"
	"github.com/amayorga/partnerbase/internal/app/system/webjson"
	"github.com/amayorga/partnerbase/internal/domain/models"
)

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type sessionResponse struct {
	Token   string          `json:"token"`
	Account *models.Account `json:"user"`
}

// Register creates an unverified account and emails a verification code.
// Re-registering an address that never completed verification overwrites
// the pending record instead of failing; a verified or soft-deleted
// account keeps the email reserved.
// POST /api/user/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := webjson.Decode(r, &req); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	req.FirstName = normalize.Name(req.FirstName)
	req.LastName = normalize.Name(req.LastName)
	req.Email = normalize.Email(req.Email)

	if req.FirstName == "" || req.LastName == "" || !authutil.IsValidEmail(req.Email) {
		httperr.Write(w, h.Log, httperr.New(httperr.KindBadRequest, httperr.CodeValidationError))
		return
	}
	if err := authutil.ValidatePassword(req.Password); err != nil {
		httperr.Write(w, h.Log, httperr.New(httperr.KindBadRequest, httperr.CodeValidationError))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "register account")
	defer cancel()

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}

	now := time.Now().UTC()
	code, expiresAt := h.Codes.Generate(now)

	acct := models.Account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hash,
		AccountStatus: models.AccountStatus{
			Active:           true,
			VerificationCode: code,
			CodeExpiration:   &expiresAt,
		},
	}

	existing, err := h.Store.GetByEmailAnyState(ctx, req.Email)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}

	switch {
	case existing == nil:
		acct, err = h.Store.Create(ctx, acct)
		if err != nil {
			if err == accountstore.ErrDuplicateEmail {
				httperr.Write(w, h.Log, httperr.New(httperr.KindConflict, httperr.CodeEmailAlreadyExists))
				return
			}
			httperr.Write(w, h.Log, httperr.Wrap(err))
			return
		}

	case existing.Deleted || existing.AccountStatus.Validated:
		httperr.Write(w, h.Log, httperr.New(httperr.KindConflict, httperr.CodeEmailAlreadyExists))
		return

	default:
		// Pending verification: collapse duplicate sign-ups into one
		// resettable record, keeping any invitations it accumulated.
		if err := h.Store.OverwriteUnverified(ctx, existing.ID, acct); err != nil {
			httperr.Write(w, h.Log, httperr.Wrap(err))
			return
		}
		acct.ID = existing.ID
		acct.Invitations = existing.Invitations
		acct.SentInvitations = existing.SentInvitations
		acct.CreatedAt = existing.CreatedAt
		acct.UpdatedAt = now
	}

	h.sendCodeEmail(ctx, acct.Email, mailer.BuildVerificationEmail(mailer.CodeEmailData{
		SiteName:  h.SiteName,
		Code:      code,
		ExpiresIn: h.expiresIn(),
	}))

	token, err := h.issueToken(acct.ID)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}

	h.Log.Info("account registered", zap.String("account_id", acct.ID.Hex()))

	webjson.Respond(w, http.StatusOK, sessionResponse{Token: token, Account: &acct})
}
