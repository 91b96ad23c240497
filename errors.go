package sml

import "github.com/pkg/errors"

// WrapLexFailure wraps a Result's Failure with a stack trace, leaving the
// original *LexError (and its verbatim message text) reachable via
// errors.Cause. Tokens itself never wraps its own error — callers that
// want a traced error opt in here at the module boundary, per the ambient
// error-handling convention this module carries regardless of which
// feature Non-goals exclude.
func WrapLexFailure(r Result) error {
	if r.Failure == nil {
		return nil
	}
	return errors.WithStack(r.Failure)
}
