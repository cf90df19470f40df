package invitepolicy_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amayorga/partnerbase/internal/app/policy/invitepolicy"
	"github.com/amayorga/partnerbase/internal/domain/models"
)

func TestValidRole(t *testing.T) {
	for _, role := range []string{models.PartnerRoleInvited, models.PartnerRoleAdmin, models.PartnerRoleUser} {
		if !invitepolicy.ValidRole(role) {
			t.Errorf("ValidRole(%q) = false, want true", role)
		}
	}
	if invitepolicy.ValidRole("owner") {
		t.Error(`ValidRole("owner") = true, want false`)
	}
	if invitepolicy.ValidRole("") {
		t.Error(`ValidRole("") = true, want false`)
	}
}

func TestFirstPendingFrom_OldestWins(t *testing.T) {
	inviter := primitive.NewObjectID()
	other := primitive.NewObjectID()

	invs := []models.Invitation{
		{AccountID: other, Status: models.InvitationPending},
		{AccountID: inviter, Status: models.InvitationRejected},
		{AccountID: inviter, Status: models.InvitationPending, Role: models.PartnerRoleAdmin},
		{AccountID: inviter, Status: models.InvitationPending, Role: models.PartnerRoleUser},
	}

	got := invitepolicy.FirstPendingFrom(invs, inviter)
	if got != 2 {
		t.Fatalf("FirstPendingFrom: got index %d, want 2", got)
	}
}

func TestFirstPendingFrom_None(t *testing.T) {
	inviter := primitive.NewObjectID()

	invs := []models.Invitation{
		{AccountID: inviter, Status: models.InvitationAccepted},
	}
	if got := invitepolicy.FirstPendingFrom(invs, inviter); got != -1 {
		t.Errorf("FirstPendingFrom: got %d, want -1", got)
	}
	if got := invitepolicy.FirstPendingFrom(nil, inviter); got != -1 {
		t.Errorf("FirstPendingFrom(nil): got %d, want -1", got)
	}
}

func TestRemoveAt(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	invs := []models.Invitation{{AccountID: a}, {AccountID: b}, {AccountID: c}}

	got := invitepolicy.RemoveAt(invs, 1)
	if len(got) != 2 || got[0].AccountID != a || got[1].AccountID != c {
		t.Errorf("RemoveAt(1): got %v", got)
	}

	// Removing one of two identical entries keeps the other.
	dupes := []models.Invitation{{AccountID: a, Status: models.InvitationPending}, {AccountID: a, Status: models.InvitationPending}}
	if got := invitepolicy.RemoveAt(dupes, 0); len(got) != 1 {
		t.Errorf("RemoveAt on duplicates: got %d entries, want 1", len(got))
	}

	if got := invitepolicy.RemoveAt(invs, 5); len(got) != 3 {
		t.Error("out-of-range index must leave the list unchanged")
	}
}

func TestHasPartner(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	company := &models.Company{Partners: []models.Partner{{AccountID: a, Role: models.PartnerRoleAdmin}}}
	if !invitepolicy.HasPartner(company, a) {
		t.Error("expected existing partner to be found")
	}
	if invitepolicy.HasPartner(company, b) {
		t.Error("expected unknown id to be absent")
	}
	if invitepolicy.HasPartner(nil, a) {
		t.Error("nil company has no partners")
	}
}
