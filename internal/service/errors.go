package service

import "errors"

// ErrAdminRequired is returned by catalog mutations when the service was
// constructed without the admin capability. The capability is an explicit
// boolean handed in by the caller, standing in for the external
// authorization collaborator.
var ErrAdminRequired = errors.New("admin capability required")
