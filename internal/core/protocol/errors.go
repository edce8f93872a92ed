package protocol

import "errors"

// Frame errors
var (
	ErrShortFrame   = errors.New("protocol: frame too short")
	ErrUnknownKind  = errors.New("protocol: unknown update kind")
	ErrTrailingData = errors.New("protocol: trailing bytes after payload")
	ErrNilEntity    = errors.New("protocol: entity id is nil")
)
