package auth

import "errors"

// CallbackCode tags every failure site of the OAuth callback. Each site
// produces its tag directly rather than classifying error messages after
// the fact, so the signin error keys stay stable.
type CallbackCode string

const (
	CodeMissing             CallbackCode = "no_code"
	CodeTokenExchangeFailed CallbackCode = "token_exchange_failed"
	CodeUserInfoFailed      CallbackCode = "user_info_failed"
	CodeNetworkError        CallbackCode = "network_error"
	CodeTokenParseError     CallbackCode = "token_parse_error"
	CodeRedirectError       CallbackCode = "redirect_error"
	CodeCallbackFailed      CallbackCode = "callback_failed"
)

type CallbackError struct {
	Code CallbackCode
	Err  error
}

func (e *CallbackError) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Err.Error()
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}

func NewCallbackError(code CallbackCode, err error) *CallbackError {
	return &CallbackError{Code: code, Err: err}
}

// ClassifyCallback maps any error to its tag, falling back to the catch-all
// for errors raised outside the tagged sites.
func ClassifyCallback(err error) CallbackCode {
	var cbErr *CallbackError
	if errors.As(err, &cbErr) {
		return cbErr.Code
	}
	return CodeCallbackFailed
}
