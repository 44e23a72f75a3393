package errorutil

import "errors"

// ErrNotAvailable represents situations in which a platform accessor has no
// value to report for an individual attribute. The device information record
// absorbs it by substituting the documented placeholder.
var ErrNotAvailable = errors.New("attribute not available")
