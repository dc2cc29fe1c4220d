package authz

import "errors"

// ErrNotFound is returned by stores when a user has no admin role record.
var ErrNotFound = errors.New("authz: admin role not found")
