package server

import "errors"

// Server-specific errors
var (
	ErrServerNotRunning     = errors.New("server is not running")
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrRejected             = errors.New("update rejected by policy")
	ErrBinaryOnly           = errors.New("only binary frames are accepted")
)
