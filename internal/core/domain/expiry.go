package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedExpiry is returned when an expiry timestamp cannot be
// parsed or lacks an explicit UTC offset.
var ErrMalformedExpiry = errors.New("malformed expiry timestamp")

// ExpiryValid reports whether a mandate expiry is still in the future
// relative to now. Validity is exclusive at the far end: a mandate is
// valid while now < expiry, so expiry == now is already invalid.
// Expired is a false return, not an error; only an unparseable
// timestamp yields ErrMalformedExpiry.
func ExpiryValid(expiry string, now time.Time) (bool, error) {
	t, err := time.Parse(time.RFC3339, expiry)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrMalformedExpiry, expiry)
	}
	return now.Before(t), nil
}
