// Package patchpolicy decides which fields a profile patch may touch and
// scrubs the free-form text it carries.
//
// Credentials and verification state are never patchable through the
// profile surface; they move only through their dedicated flows.
package patchpolicy

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ProfilePatch is the set of profile fields an authenticated account may
// change on itself. Nil pointers mean "leave unchanged".
type ProfilePatch struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Logo        *string `json:"logo"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
}

// CompanyPatch is the company block an account owner may replace.
type CompanyPatch struct {
	Name    string        `json:"name"`
	CIF     string        `json:"cif"`
	Address *AddressPatch `json:"address"`
}

// AddressPatch mirrors the company address fields.
type AddressPatch struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Postal int    `json:"postal"`
	City   string `json:"city"`
}

// Policy sanitizes patch input before it reaches the store.
type Policy struct {
	strip *bluemonday.Policy
}

// New returns a Policy that strips all markup from text fields.
func New() Policy {
	return Policy{strip: bluemonday.StrictPolicy()}
}

// CleanProfile sanitizes every set field of a profile patch in place and
// reports whether the patch changes anything at all.
func (p Policy) CleanProfile(patch *ProfilePatch) bool {
	any := false
	for _, f := range []*string{patch.FirstName, patch.LastName, patch.Logo, patch.Description, patch.Phone} {
		if f == nil {
			continue
		}
		*f = p.cleanText(*f)
		any = true
	}
	return any
}

// CleanCompany sanitizes the text fields of a company patch in place.
func (p Policy) CleanCompany(patch *CompanyPatch) {
	patch.Name = p.cleanText(patch.Name)
	patch.CIF = p.cleanText(patch.CIF)
	if patch.Address != nil {
		patch.Address.Street = p.cleanText(patch.Address.Street)
		patch.Address.City = p.cleanText(patch.Address.City)
	}
}

func (p Policy) cleanText(s string) string {
	return strings.TrimSpace(p.strip.Sanitize(s))
}
