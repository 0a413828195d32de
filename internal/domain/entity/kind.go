// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// AccountKind discriminates the two account variants stored in the
// accounts table. Resolution from a session token is a single indexed
// lookup; the kind is carried in the token claims and on the row.
type AccountKind string

const (
	// KindUser indicates a buyer/viewer account.
	KindUser AccountKind = "user"
	// KindPartner indicates a content-creator/seller account.
	KindPartner AccountKind = "partner"
)

// String returns the string representation of the AccountKind.
func (k AccountKind) String() string {
	return string(k)
}

// IsValid checks if the AccountKind is a known value.
func (k AccountKind) IsValid() bool {
	switch k {
	case KindUser, KindPartner:
		return true
	default:
		return false
	}
}
