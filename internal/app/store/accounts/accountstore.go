// internal/app/store/accounts/accountstore.go
package accountstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amayorga/partnerbase/internal/app/system/normalize"
	"github.com/amayorga/partnerbase/internal/domain/models"
)

// Sentinel errors surfaced to the service layer. Unique-index violations
// are translated here so handlers never see raw driver errors.
var (
	ErrDuplicateEmail       = errors.New("an account with this email already exists")
	ErrDuplicateCompanyName = errors.New("a company with this name already exists")
	ErrDuplicateCompanyCIF  = errors.New("a company with this cif already exists")
)

// Store wraps the accounts collection. Live lookups exclude soft-deleted
// records; audit paths use the AnyState variants.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("accounts")}
}

// live is the filter fragment excluding soft-deleted accounts.
func live() bson.M {
	return bson.M{"deleted": bson.M{"$ne": true}}
}

// GetByID loads a live account by ObjectID. Returns (nil, nil) when the
// account does not exist or is soft-deleted.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	f := live()
	f["_id"] = id
	var a models.Account
	if err := s.c.FindOne(ctx, f).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetByIDAnyState loads an account by ObjectID regardless of deletion
// state. Audit paths use this; request handling never does.
func (s *Store) GetByIDAnyState(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	var a models.Account
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetByEmail looks up a live account by normalized email. Returns
// (nil, nil) when absent.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	f := live()
	f["email"] = normalize.Email(email)
	var a models.Account
	if err := s.c.FindOne(ctx, f).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetByEmailAnyState looks up an account by email regardless of deletion
// state. Registration uses it so a soft-deleted account still reserves
// its email.
func (s *Store) GetByEmailAnyState(ctx context.Context, email string) (*models.Account, error) {
	var a models.Account
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts a new account after normalizing its identity fields.
func (s *Store) Create(ctx context.Context, a models.Account) (models.Account, error) {
	a.ID = primitive.NewObjectID()
	a.FirstName = normalize.Name(a.FirstName)
	a.LastName = normalize.Name(a.LastName)
	a.Email = normalize.Email(a.Email)

	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Account{}, ErrDuplicateEmail
		}
		return models.Account{}, err
	}
	return a, nil
}

// OverwriteUnverified replaces the credentials, name, and verification
// state of an existing unverified account while preserving its identity
// and invitation lists. Used when someone re-registers before verifying.
func (s *Store) OverwriteUnverified(ctx context.Context, id primitive.ObjectID, a models.Account) error {
	update := bson.M{"$set": bson.M{
		"first_name":     normalize.Name(a.FirstName),
		"last_name":      normalize.Name(a.LastName),
		"password":       a.Password,
		"account_status": a.AccountStatus,
		"updated_at":     time.Now().UTC(),
	}}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CompanyNameExists reports whether another live account already uses the
// company name.
func (s *Store) CompanyNameExists(ctx context.Context, name string, excludeID primitive.ObjectID) (bool, error) {
	f := live()
	f["company.name"] = normalize.Name(name)
	f["_id"] = bson.M{"$ne": excludeID}
	return s.exists(ctx, f)
}

// CompanyCIFExists reports whether another live account already uses the
// company CIF.
func (s *Store) CompanyCIFExists(ctx context.Context, cif string, excludeID primitive.ObjectID) (bool, error) {
	f := live()
	f["company.cif"] = normalize.CIF(cif)
	f["_id"] = bson.M{"$ne": excludeID}
	return s.exists(ctx, f)
}

func (s *Store) exists(ctx context.Context, filter bson.M) (bool, error) {
	err := s.c.FindOne(ctx, filter).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}
