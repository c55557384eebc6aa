package entity

import "time"

// AnonymousProvider is the provider id of anonymous sign-ins
const AnonymousProvider = "anonymous"

// Identity is an authenticated caller resolved from a bearer token
type Identity struct {
	UserID    string
	Email     string
	Provider  string
	Anonymous bool
}

// IdentityRecord is an entry of the identity provider's user directory
type IdentityRecord struct {
	UserID      string
	Email       string
	ProviderIDs []string
	CreatedAt   time.Time
}

// IsAnonymous reports whether the record has no email and no non-anonymous provider
func (r IdentityRecord) IsAnonymous() bool {
	if r.Email != "" {
		return false
	}
	for _, p := range r.ProviderIDs {
		if p != AnonymousProvider {
			return false
		}
	}
	return true
}
