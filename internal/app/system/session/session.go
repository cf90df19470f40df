// internal/app/system/session/session.go
//
// Package session authenticates API requests from a bearer token and
// injects the resolved account into the request context.
package session

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/amayorga/partnerbase/internal/app/system/httperr"
	"github.com/amayorga/partnerbase/internal/app/system/tokens"
	"github.com/amayorga/partnerbase/internal/domain/models"
)

// AccountLoader resolves a live account by id. Soft-deleted accounts are
// not found.
type AccountLoader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
}

type ctxKey string

const currentAccountKey ctxKey = "currentAccount"

// CurrentAccount returns the authenticated account injected by Require.
func CurrentAccount(r *http.Request) (*models.Account, bool) {
	a, ok := r.Context().Value(currentAccountKey).(*models.Account)
	return a, ok
}

// WithTestAccount injects an account into the request context. Test use
// only; the production path always goes through Require.
func WithTestAccount(r *http.Request, a *models.Account) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentAccountKey, a))
}

// Middleware verifies bearer tokens and resolves the current account.
type Middleware struct {
	Tokens   *tokens.Manager
	Accounts AccountLoader
	Log      *zap.Logger
}

// Require rejects requests without a valid token for a live account.
// A failed lookup never reveals whether the token or the account is the
// problem beyond the stable error codes.
func (m *Middleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := tokens.FromHeader(r.Header.Get("Authorization"))
		if err != nil {
			httperr.Write(w, m.Log, httperr.New(httperr.KindUnauthorized, httperr.CodeNotToken))
			return
		}

		claims, err := m.Tokens.Verify(raw)
		if err != nil {
			httperr.Write(w, m.Log, httperr.New(httperr.KindUnauthorized, httperr.CodeErrorIDToken))
			return
		}
		id, err := primitive.ObjectIDFromHex(claims.AccountID)
		if err != nil {
			httperr.Write(w, m.Log, httperr.New(httperr.KindUnauthorized, httperr.CodeErrorIDToken))
			return
		}

		acct, err := m.Accounts.GetByID(r.Context(), id)
		if err != nil {
			httperr.Write(w, m.Log, err)
			return
		}
		if acct == nil {
			httperr.Write(w, m.Log, httperr.New(httperr.KindNotFound, httperr.CodeUserNotFound))
			return
		}
		if !acct.AccountStatus.Validated {
			httperr.Write(w, m.Log, httperr.New(httperr.KindUnauthorized, httperr.CodeEmailNotValidated))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), currentAccountKey, acct)))
	})
}
