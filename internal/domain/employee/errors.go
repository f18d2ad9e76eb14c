package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrAvatarDelete     = errors.New("unable to delete employee avatar")
)
