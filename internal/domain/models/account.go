// internal/domain/models/account.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invitation statuses.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationRejected = "rejected"
)

// Partner roles.
const (
	PartnerRoleInvited = "invited"
	PartnerRoleAdmin   = "admin"
	PartnerRoleUser    = "user"
)

// Account is a registered user of the service.
//
// The password digest is never serialized outward; soft-deleted accounts
// keep their document but are excluded from normal lookups.
type Account struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"first_name" json:"firstName"`
	LastName  string             `bson:"last_name" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`

	AccountStatus AccountStatus `bson:"account_status" json:"accountStatus"`

	Company *Company `bson:"company,omitempty" json:"company,omitempty"`

	// Invitations holds invitations this account has received;
	// SentInvitations mirrors the ones it has sent. The received side is
	// authoritative for the pending state.
	Invitations     []Invitation `bson:"invitations,omitempty" json:"invitations,omitempty"`
	SentInvitations []Invitation `bson:"sent_invitations,omitempty" json:"sentInvitations,omitempty"`

	Logo        string `bson:"logo,omitempty" json:"logo,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`

	Deleted   bool       `bson:"deleted,omitempty" json:"-"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// AccountStatus carries the verification, recovery, and lockout state of
// an account. A code field and its expiration are always set or cleared
// together.
type AccountStatus struct {
	Validated bool `bson:"validated" json:"validated"`
	Active    bool `bson:"active" json:"active"`

	VerificationCode string     `bson:"verification_code,omitempty" json:"-"`
	CodeExpiration   *time.Time `bson:"code_expiration,omitempty" json:"-"`

	PasswordResetCode       string     `bson:"password_reset_code,omitempty" json:"-"`
	PasswordResetExpiration *time.Time `bson:"password_reset_expiration,omitempty" json:"-"`

	LoginAttempts    int        `bson:"login_attempts" json:"-"`
	LastLoginAttempt *time.Time `bson:"last_login_attempt,omitempty" json:"-"`
}

// Company is the optional company block on an account. Name and CIF are
// globally unique across accounts when present.
type Company struct {
	Name     string    `bson:"name,omitempty" json:"name,omitempty"`
	CIF      string    `bson:"cif,omitempty" json:"cif,omitempty"`
	Address  *Address  `bson:"address,omitempty" json:"address,omitempty"`
	Partners []Partner `bson:"partners,omitempty" json:"partners,omitempty"`
}

// Address is a company street address.
type Address struct {
	Street string `bson:"street,omitempty" json:"street,omitempty"`
	Number int    `bson:"number,omitempty" json:"number,omitempty"`
	Postal int    `bson:"postal,omitempty" json:"postal,omitempty"`
	City   string `bson:"city,omitempty" json:"city,omitempty"`
}

// Partner links another account into a company via an accepted invitation.
type Partner struct {
	AccountID primitive.ObjectID `bson:"account_id" json:"accountId"`
	Role      string             `bson:"role" json:"role"`
}

// Invitation is one entry of a received or sent invitation list. On the
// received side AccountID/Email identify the inviter; on the sent mirror
// they identify the invitee.
type Invitation struct {
	AccountID primitive.ObjectID `bson:"account_id" json:"accountId"`
	Email     string             `bson:"email" json:"email"`
	Role      string             `bson:"role" json:"role"`
	Status    string             `bson:"status" json:"status"`
}
