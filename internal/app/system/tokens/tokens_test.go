package tokens_test

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amayorga/partnerbase/internal/app/system/tokens"
)

func TestIssueAndVerify(t *testing.T) {
	m := tokens.NewManager("test-secret", time.Hour)
	id := primitive.NewObjectID()

	tok, err := m.Issue(id, "admin", time.Now())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.AccountID != id.Hex() {
		t.Errorf("AccountID: got %q, want %q", claims.AccountID, id.Hex())
	}
	if claims.Role != "admin" {
		t.Errorf("Role: got %q, want %q", claims.Role, "admin")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := tokens.NewManager("secret-a", time.Hour).Issue(primitive.NewObjectID(), "user", time.Now())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := tokens.NewManager("secret-b", time.Hour).Verify(tok); err != tokens.ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := tokens.NewManager("test-secret", time.Minute)

	tok, err := m.Issue(primitive.NewObjectID(), "user", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := m.Verify(tok); err != tokens.ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	m := tokens.NewManager("test-secret", time.Hour)
	if _, err := m.Verify("not.a.token"); err != tokens.ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestFromHeader(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", false},
		{"bare token", "abc.def.ghi", "abc.def.ghi", false},
		{"empty", "", "", true},
		{"scheme only", "Bearer   ", "", true},
		{"scheme only lowercase", "bearer", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tokens.FromHeader(tc.header)
			if tc.wantErr {
				if err != tokens.ErrNoToken {
					t.Errorf("expected ErrNoToken, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromHeader failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("token: got %q, want %q", got, tc.want)
			}
		})
	}
}
