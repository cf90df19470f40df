// internal/app/store/accounts/lifecycle.go
package accountstore

import (
	"context"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amayorga/partnerbase/internal/app/system/normalize"
	"github.com/amayorga/partnerbase/internal/domain/models"
)

// SetValidated marks the email verified and clears the verification code
// pair in the same write.
func (s *Store) SetValidated(ctx context.Context, id primitive.ObjectID) error {
	return s.updateOne(ctx, id, bson.M{
		"$set": bson.M{
			"account_status.validated": true,
			"account_status.active":    true,
			"updated_at":               time.Now().UTC(),
		},
		"$unset": bson.M{
			"account_status.verification_code": "",
			"account_status.code_expiration":   "",
		},
	})
}

// SetResetCode stores a fresh password recovery code pair.
func (s *Store) SetResetCode(ctx context.Context, id primitive.ObjectID, code string, expiresAt time.Time) error {
	return s.updateOne(ctx, id, bson.M{
		"$set": bson.M{
			"account_status.password_reset_code":       code,
			"account_status.password_reset_expiration": expiresAt,
			"updated_at":                               time.Now().UTC(),
		},
	})
}

// SetPassword replaces the password digest, clears the recovery code pair,
// and resets the lockout counters in one write.
func (s *Store) SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	return s.updateOne(ctx, id, bson.M{
		"$set": bson.M{
			"password":                      hash,
			"account_status.login_attempts": 0,
			"updated_at":                    time.Now().UTC(),
		},
		"$unset": bson.M{
			"account_status.password_reset_code":       "",
			"account_status.password_reset_expiration": "",
			"account_status.last_login_attempt":        "",
		},
	})
}

// SetLoginAttempts persists the lockout counters after an evaluation.
// A nil last clears the timestamp.
func (s *Store) SetLoginAttempts(ctx context.Context, id primitive.ObjectID, attempts int, last *time.Time) error {
	update := bson.M{"$set": bson.M{"account_status.login_attempts": attempts}}
	if last != nil {
		update["$set"].(bson.M)["account_status.last_login_attempt"] = *last
	} else {
		update["$unset"] = bson.M{"account_status.last_login_attempt": ""}
	}
	return s.updateOne(ctx, id, update)
}

// UpdateProfile applies a partial $set of patchable profile fields.
// fields must already be normalized and sanitized.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now().UTC()
	return s.updateOne(ctx, id, bson.M{"$set": fields})
}

// ReplaceCompany overwrites the company block, preserving any existing
// partner links.
func (s *Store) ReplaceCompany(ctx context.Context, id primitive.ObjectID, c models.Company) error {
	c.Name = normalize.Name(c.Name)
	c.CIF = normalize.CIF(c.CIF)
	err := s.updateOne(ctx, id, bson.M{"$set": bson.M{
		"company.name":    c.Name,
		"company.cif":     c.CIF,
		"company.address": c.Address,
		"updated_at":      time.Now().UTC(),
	}})
	if wafflemongo.IsDup(err) {
		// The duplicate-key message names the violated index.
		if strings.Contains(err.Error(), "uniq_accounts_company_cif") {
			return ErrDuplicateCompanyCIF
		}
		return ErrDuplicateCompanyName
	}
	return err
}

// SetLogo stores the logo URL.
func (s *Store) SetLogo(ctx context.Context, id primitive.ObjectID, url string) error {
	return s.updateOne(ctx, id, bson.M{"$set": bson.M{
		"logo":       url,
		"updated_at": time.Now().UTC(),
	}})
}

// SoftDelete marks the account deleted, hiding it from live lookups.
func (s *Store) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now().UTC()
	return s.updateOne(ctx, id, bson.M{"$set": bson.M{
		"deleted":    true,
		"deleted_at": now,
		"updated_at": now,
	}})
}

// HardDelete removes the account document permanently.
func (s *Store) HardDelete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *Store) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
