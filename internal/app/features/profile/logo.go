// internal/app/features/profile/logo.go
package profile

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/amayorga/partnerbase/internal/app/system/filestore"
	"github.com/amayorga/partnerbase/internal/app/system/httperr"
	"github.com/amayorga/partnerbase/internal/app/system/session"
	"github.com/amayorga/partnerbase/internal/app/system/timeouts"
	"github.com/amayorga/partnerbase/internal/app/system/webjson"
)

// maxLogoBytes caps logo uploads at 5 MiB.
const maxLogoBytes = 5 << 20

// UploadLogo accepts a multipart form with an "image" part, stores it,
// and saves the resulting URL on the account.
// PATCH /api/user/logo
func (h *Handler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	acct, ok := session.CurrentAccount(r)
	if !ok {
		httperr.Write(w, h.Log, httperr.New(httperr.KindUnauthorized, httperr.CodeNotToken))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxLogoBytes)
	if err := r.ParseMultipartForm(maxLogoBytes); err != nil {
		httperr.Write(w, h.Log, httperr.New(httperr.KindBadRequest, httperr.CodeValidationError))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httperr.Write(w, h.Log, httperr.New(httperr.KindBadRequest, httperr.CodeValidationError))
		return
	}
	defer file.Close()

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "upload logo")
	defer cancel()

	info, err := filestore.Upload(ctx, h.Files, header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		httperr.Write(w, h.Log, httperr.Wrap(err))
		return
	}

	url := h.Files.URL(info.Path)
	if err := h.Store.SetLogo(ctx, acct.ID, url); err != nil {
		// The account write failed, so the stored file is orphaned.
		if derr := h.Files.Delete(ctx, info.Path); derr != nil {
			h.Log.Warn("removing orphaned logo", zap.String("path", info.Path), zap.Error(derr))
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

	h.Log.Info("logo uploaded",
		zap.String("account_id", acct.ID.Hex()),
		zap.String("path", info.Path),
		zap.Int64("size", info.Size),
	)
	webjson.Respond(w, http.StatusOK, updated)
}
