package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/amayorga/partnerbase/internal/app/system/session"
	"github.com/amayorga/partnerbase/internal/app/system/tokens"
	"github.com/amayorga/partnerbase/internal/domain/models"
)

type fakeLoader struct {
	accounts map[primitive.ObjectID]*models.Account
}

func (f *fakeLoader) GetByID(_ context.Context, id primitive.ObjectID) (*models.Account, error) {
	return f.accounts[id], nil
}

func newMiddleware(accounts ...*models.Account) (*session.Middleware, *tokens.Manager) {
	loader := &fakeLoader{accounts: map[primitive.ObjectID]*models.Account{}}
	for _, a := range accounts {
		loader.accounts[a.ID] = a
	}
	tm := tokens.NewManager("test-secret", time.Hour)
	return &session.Middleware{Tokens: tm, Accounts: loader, Log: zap.NewNop()}, tm
}

func passthrough(t *testing.T, wantAccount primitive.ObjectID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acct, ok := session.CurrentAccount(r)
		if !ok {
			t.Error("expected account in context")
			return
		}
		if acct.ID != wantAccount {
			t.Errorf("account in context: got %s, want %s", acct.ID.Hex(), wantAccount.Hex())
		}
		w.WriteHeader(http.StatusOK)
	})
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	return body["error"]
}

func TestRequire_ValidToken(t *testing.T) {
	acct := &models.Account{
		ID:            primitive.NewObjectID(),
		AccountStatus: models.AccountStatus{Validated: true, Active: true},
	}
	mw, tm := newMiddleware(acct)

	tok, err := tm.Issue(acct.ID, "user", time.Now())
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()

	mw.Require(passthrough(t, acct.ID)).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestRequire_MissingToken(t *testing.T) {
	mw, _ := newMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()

	mw.Require(http.NotFoundHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
	if code := errorCode(t, rec); code != "NOT_TOKEN" {
		t.Errorf("error: got %q, want NOT_TOKEN", code)
	}
}

func TestRequire_BadToken(t *testing.T) {
	mw, _ := newMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	mw.Require(http.NotFoundHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
	if code := errorCode(t, rec); code != "ERROR_ID_TOKEN" {
		t.Errorf("error: got %q, want ERROR_ID_TOKEN", code)
	}
}

func TestRequire_AccountGone(t *testing.T) {
	mw, tm := newMiddleware() // loader knows no accounts

	tok, err := tm.Issue(primitive.NewObjectID(), "user", time.Now())
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()

	mw.Require(http.NotFoundHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
	if code := errorCode(t, rec); code != "USER_NOT_FOUND" {
		t.Errorf("error: got %q, want USER_NOT_FOUND", code)
	}
}

func TestRequire_UnvalidatedAccount(t *testing.T) {
	acct := &models.Account{
		ID:            primitive.NewObjectID(),
		AccountStatus: models.AccountStatus{Validated: false},
	}
	mw, tm := newMiddleware(acct)

	tok, err := tm.Issue(acct.ID, "user", time.Now())
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()

	mw.Require(http.NotFoundHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
	if code := errorCode(t, rec); code != "EMAIL_NOT_VALIDATED" {
		t.Errorf("error: got %q, want EMAIL_NOT_VALIDATED", code)
	}
}
