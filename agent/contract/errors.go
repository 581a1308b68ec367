package contract

import "errors"

var (
	ErrModelInvoke     = errors.New("model invoke failed")
	ErrSchemaViolation = errors.New("model response violates schema")
	ErrValidation      = errors.New("validation failed")
	ErrToolNotFound    = errors.New("tool not found")
	ErrStepLimit       = errors.New("graph step limit exceeded")
	ErrInvalidQuestion = errors.New("question is empty")
)
