package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amayorga/partnerbase/internal/app/system/authutil"
	"github.com/amayorga/partnerbase/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateAccount creates an unverified account with the given email and a
// known password ("secret123").
func (f *Fixtures) CreateAccount(ctx context.Context, firstName, lastName, email string) models.Account {
	f.t.Helper()
	return f.insertAccount(ctx, firstName, lastName, email, false)
}

// CreateValidatedAccount creates an account that has completed email
// verification and can log in.
func (f *Fixtures) CreateValidatedAccount(ctx context.Context, firstName, lastName, email string) models.Account {
	f.t.Helper()
	return f.insertAccount(ctx, firstName, lastName, email, true)
}

// CreateAccountWithCompany creates a validated account carrying a company
// block.
func (f *Fixtures) CreateAccountWithCompany(ctx context.Context, email, companyName, cif string) models.Account {
	f.t.Helper()

	acct := f.insertAccount(ctx, "Owner", "Of "+companyName, email, true)
	acct.Company = &models.Company{Name: companyName, CIF: cif}
	if _, err := f.db.Collection("accounts").ReplaceOne(ctx, map[string]any{"_id": acct.ID}, acct); err != nil {
		f.t.Fatalf("failed to attach company to test account: %v", err)
	}
	return acct
}

func (f *Fixtures) insertAccount(ctx context.Context, firstName, lastName, email string, validated bool) models.Account {
	f.t.Helper()

	hash, err := authutil.HashPassword("secret123")
	if err != nil {
		f.t.Fatalf("hashing fixture password: %v", err)
	}

	now := time.Now().UTC()
	acct := models.Account{
		ID:        primitive.NewObjectID(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hash,
		AccountStatus: models.AccountStatus{
			Validated: validated,
			Active:    validated,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("accounts").InsertOne(ctx, acct); err != nil {
		f.t.Fatalf("failed to create test account: %v", err)
	}
	return acct
}
