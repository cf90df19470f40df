// Package invitepolicy holds the rules for the partner invitation lists.
//
// Accepting or rejecting consumes exactly one pending entry, the oldest
// one from that inviter; duplicate invitations from the same inviter stay
// queued and are consumed one at a time.
package invitepolicy

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amayorga/partnerbase/internal/domain/models"
)

// ValidRole reports whether role is one of the partner roles an
// invitation may carry.
func ValidRole(role string) bool {
	switch role {
	case models.PartnerRoleInvited, models.PartnerRoleAdmin, models.PartnerRoleUser:
		return true
	}
	return false
}

// FirstPendingFrom returns the index of the oldest pending invitation sent
// by inviterID, or -1 when there is none. Lists keep insertion order, so
// the first match is the oldest.
func FirstPendingFrom(invs []models.Invitation, inviterID primitive.ObjectID) int {
	for i, inv := range invs {
		if inv.Status == models.InvitationPending && inv.AccountID == inviterID {
			return i
		}
	}
	return -1
}

// RemoveAt returns a copy of invs without the entry at index i, keeping
// the order of the rest. An out-of-range index returns invs unchanged.
func RemoveAt(invs []models.Invitation, i int) []models.Invitation {
	if i < 0 || i >= len(invs) {
		return invs
	}
	out := make([]models.Invitation, 0, len(invs)-1)
	out = append(out, invs[:i]...)
	return append(out, invs[i+1:]...)
}

// HasPartner reports whether the company already links accountID as a
// partner.
func HasPartner(c *models.Company, accountID primitive.ObjectID) bool {
	if c == nil {
		return false
	}
	for _, p := range c.Partners {
		if p.AccountID == accountID {
			return true
		}
	}
	return false
}
