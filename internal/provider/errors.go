package provider

import (
	"errors"
	"fmt"
)

// ErrorKind classifies catalog-reported failures.
type ErrorKind int

const (
	KindGeneric ErrorKind = iota
	KindUnauthorized
	KindNoSession
	KindDownloadLimitReached
	KindInvalidIMDBID
	KindUnknownUserAgent
	KindDisabledUserAgent
	KindServiceUnavailable
	KindConfiguration
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNoSession:
		return "no session"
	case KindDownloadLimitReached:
		return "download limit reached"
	case KindInvalidIMDBID:
		return "invalid imdb id"
	case KindUnknownUserAgent:
		return "unknown user agent"
	case KindDisabledUserAgent:
		return "disabled user agent"
	case KindServiceUnavailable:
		return "service unavailable"
	case KindConfiguration:
		return "configuration"
	default:
		return "provider error"
	}
}

// Error is a failure reported by a catalog. AuthFailure marks the kinds that
// invalidate the session, as data rather than a type hierarchy.
type Error struct {
	Provider    string
	Kind        ErrorKind
	AuthFailure bool
	Status      string
	Err         error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	if e.Status != "" {
		msg += ": " + e.Status
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an Error, deriving AuthFailure from the kind.
func NewError(providerName string, kind ErrorKind, status string) *Error {
	auth := false
	switch kind {
	case KindUnauthorized, KindNoSession, KindUnknownUserAgent, KindDisabledUserAgent:
		auth = true
	}
	return &Error{Provider: providerName, Kind: kind, AuthFailure: auth, Status: status}
}

// IsAuthFailure reports whether err is a catalog authentication failure.
func IsAuthFailure(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.AuthFailure
}
