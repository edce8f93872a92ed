package client

import (
	"errors"
	"fmt"

	"github.com/zeusync/numsafe/pkg/validation"
)

var (
	ErrClientClosed   = errors.New("client is closed")
	ErrInvalidConfig  = errors.New("invalid client configuration")
	ErrUnexpectedType = errors.New("unexpected reply message type")
	ErrServer         = errors.New("server error")
	ErrRejected       = errors.New("update rejected")
)

// RejectedError is returned by Send when the server policy refused the update.
type RejectedError struct {
	Status validation.Status
}

func (e *RejectedError) Error() string { return fmt.Sprintf("%s: %s", ErrRejected, e.Status) }

func (e *RejectedError) Unwrap() error { return ErrRejected }
