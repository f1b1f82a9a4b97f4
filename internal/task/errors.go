package task

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidStatus = errors.New("invalid task status")
	ErrEmptyTask     = errors.New("task needs a title or a text")
)
