// internal/app/features/profile/company.go
package profile

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/amayorga/partnerbase/internal/app/policy/patchpolicy"
	accountstore "github.com/amayorga/partnerbase/internal/app/store/accounts"
	"github.com/amayorga/partnerbase/internal/app/system/httperr"
	"github.com/amayorga/partnerbase/internal/app/system/session"
	"github.com/amayorga/partnerbase/internal/app/system/timeouts"
	"github.com/amayorga/partnerbase/internal/app/system/webjson"
	"github.com/amayorga/partnerbase/internal/domain/models"
)

// UpdateCompany replaces the company block on the account. Name and CIF
// are unique across live accounts; collisions conflict before any write.
// Existing partner links survive the replacement.
// PATCH /api/user/company
func (h *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	acct, ok := session.CurrentAccount(r)
	if !ok {
		httperr.Write(w, h.Log, httperr.New(httperr.KindUnauthorized, httperr.CodeNotToken))
		return
	}

	var patch patchpolicy.CompanyPatch
	if err := webjson.Decode(r, &patch); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}
	h.Patch.CleanCompany(&patch)

	if patch.Name == "" || patch.CIF == "" {
		httperr.Write(w, h.Log, httperr.New(httperr.KindBadRequest, httperr.CodeValidationError))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update company")
	defer cancel()

	taken, err := h.Store.CompanyNameExists(ctx, patch.Name, acct.ID)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}
	if taken {
		httperr.Write(w, h.Log, httperr.New(httperr.KindConflict, httperr.CodeCompanyNameExists))
		return
	}

	taken, err = h.Store.CompanyCIFExists(ctx, patch.CIF, acct.ID)
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}
	if taken {
		httperr.Write(w, h.Log, httperr.New(httperr.KindConflict, httperr.CodeCompanyCIFExists))
		return
	}

	company := models.Company{Name: patch.Name, CIF: patch.CIF}
	if patch.Address != nil {
		company.Address = &models.Address{
			Street: patch.Address.Street,
			Number: patch.Address.Number,
			Postal: patch.Address.Postal,
			City:   patch.Address.City,
		}
	}

	if err := h.Store.ReplaceCompany(ctx, acct.ID, company); err != nil {
		// The pre-checks race with concurrent writes; the unique indexes
		// are the real arbiter.
		if errors.Is(err, accountstore.ErrDuplicateCompanyName) {
			httperr.Write(w, h.Log, httperr.New(httperr.KindConflict, httperr.CodeCompanyNameExists))
			return
		}
		if errors.Is(err, accountstore.ErrDuplicateCompanyCIF) {
			httperr.Write(w, h.Log, httperr.New(httperr.KindConflict, httperr.CodeCompanyCIFExists))
			return
		}
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
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

	h.Log.Info("company updated",
		zap.String("account_id", acct.ID.Hex()),
		zap.String("company", company.Name),
	)
	webjson.Respond(w, http.StatusOK, updated)
}
