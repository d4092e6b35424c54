package types

type ProviderName int

const (
	LinkedinProvider = iota
	GoogleOAuth2Provider
	FacebookProvider
)

var Providers = map[ProviderName]string{
	LinkedinProvider:     "linkedin",
	GoogleOAuth2Provider: "google-oauth2",
	FacebookProvider:     "facebook",
}

func (prov ProviderName) String() string {
	return Providers[prov]
}

// IsKnownProvider reports whether a `provider|localid` subject prefix belongs
// to a provider we derive identities for.
func IsKnownProvider(name string) bool {
	for _, p := range Providers {
		if p == name {
			return true
		}
	}
	return false
}
