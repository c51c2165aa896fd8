package webvtt

import "errors"

// ErrMalformed reports a WebVTT grammar violation. Every syntax error
// returned by this package wraps it, so callers can separate bad input
// from I/O failures with errors.Is(err, ErrMalformed).
//
// After any error from Init or Parse the parser state is undefined;
// there is no recovery or resynchronization.
var ErrMalformed = errors.New("malformed webvtt")
