package hamming

import (
	"fmt"
)

// BitError is returned for a character other than '0' or '1'.
type BitError struct {
	Offset int
	Char   byte
}

func (e BitError) Error() string {
	return fmt.Sprintf("invalid bit %q at offset %d", e.Char, e.Offset)
}

// LengthError is returned when a length cannot belong to a Hamming codeword.
type LengthError struct {
	Length int
}

func (e LengthError) Error() string {
	return fmt.Sprintf("%d is not a valid codeword length", e.Length)
}

// PositionError is returned by Flip for a position outside the word.
type PositionError struct {
	Pos    int
	Length int
}

func (e PositionError) Error() string {
	return fmt.Sprintf("position %d outside word of length %d", e.Pos, e.Length)
}
