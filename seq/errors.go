package seq

import (
	"errors"

	"github.com/charmingruby/sequence/internal/validate"
)

// ErrEmptySequence is returned by First and Last when there is no element.
var ErrEmptySequence = errors.New("seq: sequence contains no elements")

// ErrInvalidArgument is matched by the panic value raised when a required
// capability (predicate, mapping, action, discriminator) is nil.
var ErrInvalidArgument = validate.ErrInvalidArgument

// ArgumentError names the nil argument. It is the panic value of operations
// handed a nil capability.
type ArgumentError = validate.ArgumentError
