package codepolicy_test

import (
	"testing"
	"time"

	"github.com/amayorga/partnerbase/internal/app/policy/codepolicy"
)

func TestGenerate_Range(t *testing.T) {
	p := codepolicy.New(0)
	now := time.Now()

	for i := 0; i < 200; i++ {
		code, exp := p.Generate(now)
		if len(code) != 4 {
			t.Fatalf("code %q: want 4 digits", code)
		}
		if code[0] == '0' {
			t.Fatalf("code %q: leading zero, want value in [1000, 9999]", code)
		}
		if !exp.Equal(now.Add(codepolicy.DefaultExpiry)) {
			t.Fatalf("expiry: got %v, want %v", exp, now.Add(codepolicy.DefaultExpiry))
		}
	}
}

func TestIsValid(t *testing.T) {
	p := codepolicy.New(5 * time.Minute)
	now := time.Now()
	future := now.Add(2 * time.Minute)
	past := now.Add(-time.Second)

	cases := []struct {
		name      string
		stored    string
		expiresAt *time.Time
		supplied  string
		want      bool
	}{
		{"match before expiry", "1234", &future, "1234", true},
		{"wrong code", "1234", &future, "4321", false},
		{"expired", "1234", &past, "1234", false},
		{"expires exactly now", "1234", &now, "1234", false},
		{"no stored code", "", &future, "", false},
		{"no expiry", "1234", nil, "1234", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.IsValid(tc.stored, tc.expiresAt, tc.supplied, now); got != tc.want {
				t.Errorf("IsValid: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNew_CustomExpiry(t *testing.T) {
	p := codepolicy.New(10 * time.Minute)
	if p.Expiry() != 10*time.Minute {
		t.Errorf("Expiry: got %v, want 10m", p.Expiry())
	}
	if codepolicy.New(-1).Expiry() != codepolicy.DefaultExpiry {
		t.Error("expected negative expiry to fall back to the default")
	}
}
