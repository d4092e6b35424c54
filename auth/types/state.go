package types

import (
	"encoding/base64"
	"encoding/json"
)

// AuthState is round-tripped through the identity provider in the `state`
// query parameter as base64-encoded JSON. It is created by the sign-in
// initiator and consumed exactly once by the callback.
type AuthState struct {
	ReturnTo   string `json:"returnTo"`
	Connection string `json:"connection,omitempty"`
}

func DefaultState() AuthState {
	return AuthState{ReturnTo: "/"}
}

func (s AuthState) Encode() string {
	raw, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// DecodeState never fails: a missing or malformed state falls back to the
// default so a mangled redirect still signs the user in.
func DecodeState(raw string) AuthState {
	if raw == "" {
		return DefaultState()
	}

	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		decoded, err = base64.URLEncoding.DecodeString(raw)
	}
	if err != nil {
		return DefaultState()
	}

	var s AuthState
	if err := json.Unmarshal(decoded, &s); err != nil {
		return DefaultState()
	}
	if s.ReturnTo == "" {
		s.ReturnTo = "/"
	}
	return s
}
