package domain

import "errors"

var (
	// ErrInternalServerError will throw if any internal server error happens
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item does not exist
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the stored item already exists
	ErrConflict = errors.New("your item already exists")
	// ErrBadParamInput will throw if the given param is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrAuthentication will throw if the credential is missing or invalid
	ErrAuthentication = errors.New("authentication failed")
	// ErrForbidden will throw if the caller is authenticated but not permitted
	ErrForbidden = errors.New("you are not allowed to perform this action")
)
