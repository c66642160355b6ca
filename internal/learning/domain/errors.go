package domain

import "errors"

var (
	ErrStudentNameRequired = errors.New("student name is required")
	ErrNegativeScore       = errors.New("scores cannot be negative")
)
