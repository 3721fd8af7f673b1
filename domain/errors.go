package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the acting user does not own the item
	ErrForbidden = errors.New("you are not allowed to modify this item")
	// ErrUnauthorized will throw if the request carries no valid identity
	ErrUnauthorized = errors.New("user not authenticated")
	// ErrCacheMiss is returned by cache adapters when the key is absent
	ErrCacheMiss = errors.New("cache miss")

	// ErrAlreadyLiked will throw if the user already likes the item
	ErrAlreadyLiked = errors.New("you have already liked this item")
	// ErrNotLiked will throw if the user has not liked the item yet
	ErrNotLiked = errors.New("you have not liked this item yet")

	// ErrPersistenceConflict will throw if the store detected a concurrent write.
	// The caller may retry with fresh state.
	ErrPersistenceConflict = errors.New("concurrent modification, please retry")
	// ErrPersistenceUnavailable will throw if the store can not be reached
	ErrPersistenceUnavailable = errors.New("storage temporarily unavailable")
)

// InvalidField wraps ErrBadParamInput with the name of the failing field.
func InvalidField(field string) error {
	return fmt.Errorf("%w: %s", ErrBadParamInput, field)
}
