package instance

import "errors"

// ErrMalformed wraps every instance-file parse failure (§7
// InstanceMalformed): a missing header, a non-integer k/n/c, a
// wrong-length authorization row, or a constraint line naming an
// out-of-range step or user id.
var ErrMalformed = errors.New("instance: malformed input")
