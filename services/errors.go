package services

import "errors"

// error กลางที่ controller ใช้ map เป็น HTTP status
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMenuItemNotFound   = errors.New("one or more menu items do not exist")
	ErrParentNotFound     = errors.New("parent company order not found")
)
