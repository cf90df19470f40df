// internal/app/features/auth/handler.go
package auth

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/amayorga/partnerbase/internal/app/policy/codepolicy"
	"github.com/amayorga/partnerbase/internal/app/policy/credentialpolicy"
	accountstore "github.com/amayorga/partnerbase/internal/app/store/accounts"
	"github.com/amayorga/partnerbase/internal/app/system/mailer"
	"github.com/amayorga/partnerbase/internal/app/system/tokens"
)

// DefaultRole is the role claim issued to every account token; the
// service has no privileged roles beyond the partner tags on companies.
const DefaultRole = "user"

// Handler owns the unauthenticated account flows: registration, email
// verification, login, and password recovery.
type Handler struct {
	Store    *accountstore.Store
	Tokens   *tokens.Manager
	Codes    codepolicy.Policy
	Creds    credentialpolicy.Policy
	Mail     *mailer.Mailer
	SiteName string
	Log      *zap.Logger
}

// NewHandler constructs an auth Handler.
func NewHandler(store *accountstore.Store, tm *tokens.Manager, codes codepolicy.Policy, creds credentialpolicy.Policy, mail *mailer.Mailer, siteName string, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    store,
		Tokens:   tm,
		Codes:    codes,
		Creds:    creds,
		Mail:     mail,
		SiteName: siteName,
		Log:      logger,
	}
}

func (h *Handler) expiresIn() string {
	return fmt.Sprintf("%d minutes", int(h.Codes.Expiry().Minutes()))
}

// sendCodeEmail delivers a code email on a log-only side channel: a mail
// failure never fails the request that generated the code.
func (h *Handler) sendCodeEmail(ctx context.Context, to string, e mailer.Email) {
	e.To = to
	if err := h.Mail.Send(ctx, e); err != nil {
		h.Log.Warn("code email delivery failed",
			zap.String("to", to),
			zap.Error(err),
		)
	}
}

func (h *Handler) issueToken(id primitive.ObjectID) (string, error) {
	return h.Tokens.Issue(id, DefaultRole, time.Now().UTC())
}
