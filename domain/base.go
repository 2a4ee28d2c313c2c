package domain

import "errors"

// ErrNotFound is the absence signal shared by every repository: a point
// read whose row does not exist returns it instead of a zero-value row.
var ErrNotFound = errors.New("record not found")

// ErrNotAuthenticated is returned by the auth collaborator when no user is
// signed in.
var ErrNotAuthenticated = errors.New("no authenticated user")
