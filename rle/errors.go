package rle

import (
	"fmt"
)

// DigitError is returned by Encode when the input contains a decimal digit.
type DigitError struct {
	Offset int
	Digit  rune
}

func (e DigitError) Error() string {
	return fmt.Sprintf("cannot encode digit %q at offset %d", e.Digit, e.Offset)
}

// FormatError is returned by Parse for input that is not a canonical
// encoding, and by Encode for invalid UTF-8. Offset is in bytes.
type FormatError struct {
	Offset int
	Reason string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("malformed encoding at offset %d: %s", e.Offset, e.Reason)
}

// LengthError is returned by Encode for input longer than MaxDecodedLength
// symbols.
type LengthError struct {
	Length int
}

func (e LengthError) Error() string {
	return fmt.Sprintf("input of %d symbols exceeds %d", e.Length, MaxDecodedLength)
}
