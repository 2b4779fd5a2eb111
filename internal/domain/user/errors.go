package user

import "errors"

var (
	ErrAdminNotFound          = errors.New("admin not found")
	ErrAdminEmailExists       = errors.New("admin email already registered")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrNotResourceOwner       = errors.New("access restricted to the account owner")
)
