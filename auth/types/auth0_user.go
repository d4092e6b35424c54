package types

import "strings"

// Auth0Profile - user info from the Auth0 userinfo endpoint, plus the
// fields the callback derives or merges in before the profile is written
// into cookies.
type Auth0Profile struct {
	Sub           string `json:"sub"`            // `provider|localid` subject
	Email         string `json:"email"`          // User's email address
	EmailVerified bool   `json:"email_verified"` // Whether email is verified
	Name          string `json:"name"`           // Full name
	Nickname      string `json:"nickname"`       // Provider nickname
	Picture       string `json:"picture"`        // Profile picture URL

	// Derived, never returned by Auth0.
	Identities        []Identity `json:"identities,omitempty"`
	ConnectedPlatform string     `json:"connectedPlatform,omitempty"`
	ConnectedUsername string     `json:"connectedUsername,omitempty"`

	// Merged from the internal token exchange when it succeeds.
	Username string `json:"username,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type Identity struct {
	Provider string `json:"provider"`
	UserID   string `json:"user_id"`
}

// DeriveIdentities splits a `provider|localid` subject into an identities
// list for known providers. Unrecognized prefixes yield an empty list.
func DeriveIdentities(sub string) []Identity {
	provider, localID, ok := strings.Cut(sub, "|")
	if !ok || localID == "" || !IsKnownProvider(provider) {
		return []Identity{}
	}
	return []Identity{{Provider: provider, UserID: localID}}
}

// PlatformName turns a connection hint like "facebook" into the display
// name stored on a linked profile.
func PlatformName(connection string) string {
	if connection == "" {
		return ""
	}
	return strings.ToUpper(connection[:1]) + connection[1:]
}

// EmailLocalPart is the derived username for linked accounts.
func EmailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// HasCompleteProfile reports whether onboarding can be skipped: both the
// internal username and a phone number must be present.
func (p Auth0Profile) HasCompleteProfile() bool {
	return p.Username != "" && p.Phone != ""
}
