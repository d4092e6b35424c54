package types_test

import (
	"encoding/base64"
	"testing"

	"github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/stretchr/testify/assert"
)

func TestStateRoundTrip(t *testing.T) {
	st := types.AuthState{ReturnTo: "/connected-accounts", Connection: "facebook"}

	decoded := types.DecodeState(st.Encode())

	assert.Equal(t, st, decoded)
}

func TestDecodeState_Empty(t *testing.T) {
	st := types.DecodeState("")

	assert.Equal(t, "/", st.ReturnTo)
	assert.Empty(t, st.Connection)
}

func TestDecodeState_MalformedFallsBack(t *testing.T) {
	cases := []string{
		"not-base64!!!",
		base64.StdEncoding.EncodeToString([]byte("not json")),
		base64.StdEncoding.EncodeToString([]byte(`[1,2,3]`)),
	}

	for _, raw := range cases {
		st := types.DecodeState(raw)
		assert.Equal(t, types.DefaultState(), st, "input %q", raw)
	}
}

func TestDecodeState_EmptyReturnToDefaults(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString([]byte(`{"connection":"linkedin"}`))

	st := types.DecodeState(raw)

	assert.Equal(t, "/", st.ReturnTo)
	assert.Equal(t, "linkedin", st.Connection)
}

func TestDecodeState_URLEncoding(t *testing.T) {
	raw := base64.URLEncoding.EncodeToString([]byte(`{"returnTo":"/events"}`))

	st := types.DecodeState(raw)

	assert.Equal(t, "/events", st.ReturnTo)
}
