package review

import "errors"

// ErrReferenceMissing is returned by repositories when the product or user
// vanished between the existence checks and the insert.
var ErrReferenceMissing = errors.New("review references a missing product or user")
