package urlcodec

import (
	"errors"
	"fmt"
)

// MalformedURLError reports a URL that does not parse against the codec's
// domain and format. No partial scheme accompanies it.
type MalformedURLError struct {
	URL    string // The rejected input
	Reason string // What was wrong with it
	Err    error  // Underlying decode error, if any
}

func (e *MalformedURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("urlcodec: malformed url %q: %s: %v", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("urlcodec: malformed url %q: %s", e.URL, e.Reason)
}

func (e *MalformedURLError) Unwrap() error {
	return e.Err
}

func newMalformed(raw, reason string) *MalformedURLError {
	return &MalformedURLError{URL: raw, Reason: reason}
}

// IsMalformedURL checks if an error is a *MalformedURLError.
func IsMalformedURL(err error) bool {
	var malformed *MalformedURLError
	return errors.As(err, &malformed)
}
