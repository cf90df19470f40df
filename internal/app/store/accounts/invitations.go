// internal/app/store/accounts/invitations.go
package accountstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amayorga/partnerbase/internal/domain/models"
)

// PushInvitation appends an entry to the received-invitations list.
func (s *Store) PushInvitation(ctx context.Context, id primitive.ObjectID, inv models.Invitation) error {
	return s.updateOne(ctx, id, bson.M{
		"$push": bson.M{"invitations": inv},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

// PushSentInvitation appends an entry to the sent-invitations mirror.
func (s *Store) PushSentInvitation(ctx context.Context, id primitive.ObjectID, inv models.Invitation) error {
	return s.updateOne(ctx, id, bson.M{
		"$push": bson.M{"sent_invitations": inv},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

// ReplaceInvitations overwrites the received-invitations list. Consuming
// exactly one entry of possibly-duplicated invitations is done by loading
// the document, dropping one entry, and writing the rebuilt list back;
// a $pull would remove every matching entry.
func (s *Store) ReplaceInvitations(ctx context.Context, id primitive.ObjectID, invs []models.Invitation) error {
	return s.updateOne(ctx, id, bson.M{"$set": bson.M{
		"invitations": invs,
		"updated_at":  time.Now().UTC(),
	}})
}

// ReplaceSentInvitations overwrites the sent-invitations mirror.
func (s *Store) ReplaceSentInvitations(ctx context.Context, id primitive.ObjectID, invs []models.Invitation) error {
	return s.updateOne(ctx, id, bson.M{"$set": bson.M{
		"sent_invitations": invs,
		"updated_at":       time.Now().UTC(),
	}})
}

// PushPartner appends a partner link to the company block.
func (s *Store) PushPartner(ctx context.Context, id primitive.ObjectID, p models.Partner) error {
	return s.updateOne(ctx, id, bson.M{
		"$push": bson.M{"company.partners": p},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}
