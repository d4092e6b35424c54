package types_test

import (
	"testing"

	"github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/stretchr/testify/assert"
)

func TestDeriveIdentities(t *testing.T) {
	cases := []struct {
		sub  string
		want []types.Identity
	}{
		{"google-oauth2|12345", []types.Identity{{Provider: "google-oauth2", UserID: "12345"}}},
		{"linkedin|abc", []types.Identity{{Provider: "linkedin", UserID: "abc"}}},
		{"facebook|999", []types.Identity{{Provider: "facebook", UserID: "999"}}},
		{"twitter|42", []types.Identity{}},
		{"auth0|local", []types.Identity{}},
		{"no-separator", []types.Identity{}},
		{"google-oauth2|", []types.Identity{}},
		{"", []types.Identity{}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, types.DeriveIdentities(tc.sub), "sub %q", tc.sub)
	}
}

func TestPlatformName(t *testing.T) {
	assert.Equal(t, "Facebook", types.PlatformName("facebook"))
	assert.Equal(t, "Linkedin", types.PlatformName("linkedin"))
	assert.Empty(t, types.PlatformName(""))
}

func TestEmailLocalPart(t *testing.T) {
	assert.Equal(t, "a", types.EmailLocalPart("a@b.com"))
	assert.Equal(t, "no-at-sign", types.EmailLocalPart("no-at-sign"))
}

func TestHasCompleteProfile(t *testing.T) {
	assert.True(t, types.Auth0Profile{Username: "u", Phone: "+123"}.HasCompleteProfile())
	assert.False(t, types.Auth0Profile{Username: "u"}.HasCompleteProfile())
	assert.False(t, types.Auth0Profile{Phone: "+123"}.HasCompleteProfile())
	assert.False(t, types.Auth0Profile{}.HasCompleteProfile())
}
