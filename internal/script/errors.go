package script

import "errors"

var (
	// ErrInvalidScript reports a document that fails structural validation.
	ErrInvalidScript = errors.New("script: invalid script")
	// ErrHandleOutOfRange reports a vertex handle outside [0, len(values)).
	ErrHandleOutOfRange = errors.New("script: vertex handle out of range")
	// ErrExpectationFailed reports an outcome that differs from the
	// operation's expect field.
	ErrExpectationFailed = errors.New("script: expectation failed")
	// ErrOracleMismatch reports an outcome that differs from the naive
	// reference forest.
	ErrOracleMismatch = errors.New("script: oracle mismatch")
)
