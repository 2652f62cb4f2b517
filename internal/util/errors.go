package util

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrPermissionDenied = errors.New("permission denied")
	ErrClassNotFound    = errors.New("class not found")
	ErrContentNotFound  = errors.New("content not found")
	ErrStudentNotFound  = errors.New("student not found")
	ErrShareNotFound    = errors.New("share not found")
	ErrCodeTaken        = errors.New("class code already in use")
)
