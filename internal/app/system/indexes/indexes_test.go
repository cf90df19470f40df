package indexes_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/amayorga/partnerbase/internal/app/system/indexes"
	"github.com/amayorga/partnerbase/internal/testutil"
)

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// EnsureAll should succeed on a clean database
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// First call
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}

	// Second call should also succeed (idempotent)
	err = indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesAccountIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	cur, err := db.Collection("accounts").Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	indexNames := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			indexNames[name] = true
		}
	}

	expectedIndexes := []string{
		"uniq_accounts_email",
		"uniq_accounts_company_name",
		"uniq_accounts_company_cif",
		"idx_accounts_invitations_account",
	}

	for _, name := range expectedIndexes {
		if !indexNames[name] {
			t.Errorf("expected index %q to exist on accounts collection", name)
		}
	}
}

func TestEnsureAll_UniqueEmailEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err = db.Collection("accounts").InsertOne(ctx, bson.M{"email": "dup@example.com"})
	if err != nil {
		t.Fatalf("Insert account failed: %v", err)
	}

	_, err = db.Collection("accounts").InsertOne(ctx, bson.M{"email": "dup@example.com"})
	if err == nil {
		t.Error("expected duplicate key error for unique index on accounts.email")
	}
}

func TestEnsureAll_CompanyUniquenessIgnoresMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Two accounts without a company block must not collide on the partial
	// unique indexes.
	_, err = db.Collection("accounts").InsertOne(ctx, bson.M{"email": "a@example.com"})
	if err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	_, err = db.Collection("accounts").InsertOne(ctx, bson.M{"email": "b@example.com"})
	if err != nil {
		t.Errorf("expected accounts without company to coexist, got %v", err)
	}

	// Duplicate company names do collide.
	_, err = db.Collection("accounts").InsertOne(ctx, bson.M{"email": "c@example.com", "company": bson.M{"name": "Acme"}})
	if err != nil {
		t.Fatalf("insert with company failed: %v", err)
	}
	_, err = db.Collection("accounts").InsertOne(ctx, bson.M{"email": "d@example.com", "company": bson.M{"name": "Acme"}})
	if err == nil {
		t.Error("expected duplicate key error for unique index on company.name")
	}
}
