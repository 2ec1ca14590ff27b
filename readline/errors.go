package readline

import (
	"errors"
	"fmt"
)

var ErrInterrupt = errors.New("Interrupt")

// DecodeError is returned when the terminal input is not valid UTF-8.
type DecodeError struct {
	Byte byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid utf-8 input byte %#02x", e.Byte)
}
