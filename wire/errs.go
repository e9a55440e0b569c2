package wire

import (
	"errors"

	"github.com/signadot/bsexp-format/go-bsexp/vli"
)

var (
	// ErrTruncatedInput reports that a read ran past the end of the
	// buffer.
	ErrTruncatedInput = vli.ErrTruncatedInput

	// ErrInvalidReference reports a reference whose index is out of
	// range for its pool, or a node referencing its own index or
	// higher.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrCorrupt reports unused bytes left inside a pool buffer.
	ErrCorrupt = errors.New("corrupt input")
)
