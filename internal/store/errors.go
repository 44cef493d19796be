// Package store implements process-lifetime in-memory persistence for
// all entities. Each entity type gets its own store with a guarded map
// and a monotonic id counter starting at 1; ids are never reused.
// State is rebuilt from scratch on every process start.
//
// Sentinel errors let handlers distinguish a missing record from an
// internal failure and map each to the right HTTP status.
package store

import "errors"

// ErrBookingNotFound is returned when a booking id has no record.
var ErrBookingNotFound = errors.New("booking not found")

// ErrMessageNotFound is returned when a contact message id has no record.
var ErrMessageNotFound = errors.New("contact message not found")

// ErrCocktailNotFound is returned when a cocktail id has no record.
var ErrCocktailNotFound = errors.New("cocktail not found")

// ErrUserNotFound is returned when a user id or username has no record.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameTaken is returned when registering a username that
// already exists. Handlers should translate this into HTTP 409.
var ErrUsernameTaken = errors.New("username already exists")

// ErrTokenNotFound is returned when a refresh token hash is unknown,
// expired or revoked. All three cases look identical to the caller.
var ErrTokenNotFound = errors.New("refresh token not found")
