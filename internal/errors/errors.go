package errors

import (
	"errors"
	"fmt"
)

var (
	// Exchange errors
	ErrTransport         = errors.New("token exchange transport failure")
	ErrMalformedResponse = errors.New("malformed token response")
	ErrUnexpectedStatus  = errors.New("unexpected token response status")

	// Lifecycle errors
	ErrNoToken         = errors.New("no token acquired yet")
	ErrStartup         = errors.New("initial token login failed")
	ErrShortLivedToken = errors.New("token lifetime shorter than renewal margin")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Mark wraps cause with a sentinel so callers can match either one.
func Mark(sentinel, cause error, format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w: %w", append(args, sentinel, cause)...)
}
