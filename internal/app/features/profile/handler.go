// internal/app/features/profile/handler.go
package profile

import (
	"go.uber.org/zap"

	"github.com/amayorga/partnerbase/internal/app/policy/patchpolicy"
	accountstore "github.com/amayorga/partnerbase/internal/app/store/accounts"
	"github.com/amayorga/partnerbase/internal/app/system/filestore"
)

// Handler owns the authenticated account surface: profile reads and
// patches, the company block, logo upload, and account deletion.
type Handler struct {
	Store *accountstore.Store
	Patch patchpolicy.Policy
	Files filestore.Store
	Log   *zap.Logger
}

// NewHandler constructs a profile Handler.
func NewHandler(store *accountstore.Store, patch patchpolicy.Policy, files filestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Patch: patch,
		Files: files,
		Log:   logger,
	}
}
