// Package hamming implements single-error-correcting Hamming codes over bit
// strings written with the characters '0' and '1'.
//
// Positions in a codeword are numbered from 1 starting at the left. Position i
// holds a parity bit iff i is a power of two. The parity bit at position 2^k
// is the XOR of every position whose index has bit k set, so for a valid
// codeword the XOR of the indices of all set bits is zero, and after a single
// flip it equals the index of the flipped bit.
package hamming

import (
	"errors"
	"math/bits"
)

// MaxParityBits bounds the search in ParityBits. It allows up to 1013 data
// bits per codeword.
const MaxParityBits = 10

// MaxDataBits is the most data bits MaxParityBits can protect.
const MaxDataBits = 1<<MaxParityBits - MaxParityBits - 1

var ErrTooManyParityBits = errors.New("data needs more than 10 parity bits")

// ErrUncorrectable is returned when the syndrome points outside the word,
// which can only happen when more than one bit was flipped.
var ErrUncorrectable = errors.New("syndrome points outside the codeword")

func isParityPosition(i int) bool {
	return i&(i-1) == 0
}

func checkBits(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return BitError{i, s[i]}
		}
	}
	return nil
}

// ParityBits returns the smallest p with 2^p >= m+p+1, the number of parity
// bits needed to protect m data bits.
func ParityBits(m int) (int, error) {
	if m < 0 {
		return 0, LengthError{m}
	}
	if m > MaxDataBits {
		return 0, ErrTooManyParityBits
	}
	for p := 0; p <= MaxParityBits; p++ {
		if 1<<p >= m+p+1 {
			return p, nil
		}
	}
	return 0, ErrTooManyParityBits
}

// DataBits returns the number of data bits carried by a codeword of n bits.
// It fails unless n = m + ParityBits(m) for some m.
func DataBits(n int) (int, error) {
	if n < 0 {
		return 0, LengthError{n}
	}
	p := bits.Len(uint(n)) // number of powers of two in [1, n]
	m := n - p
	pm, err := ParityBits(m)
	if err != nil {
		return 0, err
	}
	if pm != p {
		return 0, LengthError{n}
	}
	return m, nil
}

// Encode interleaves parity bits into data.
func Encode(data string) (string, error) {
	if err := checkBits(data); err != nil {
		return "", err
	}
	p, err := ParityBits(len(data))
	if err != nil {
		return "", err
	}
	n := len(data) + p
	word := make([]byte, n)
	d := 0
	for i := 1; i <= n; i++ {
		if isParityPosition(i) {
			word[i-1] = '0'
		} else {
			word[i-1] = data[d]
			d++
		}
	}
	for k := 0; k < p; k++ {
		pos := 1 << k
		var v byte
		for j := 1; j <= n; j++ {
			if j&pos != 0 {
				v ^= word[j-1] - '0'
			}
		}
		word[pos-1] = '0' + v
	}
	return string(word), nil
}

// Syndrome returns the XOR of the positions of all set bits of word. It is 0
// for a valid codeword and the position of the flipped bit after a single
// error.
func Syndrome(word string) (int, error) {
	if err := checkBits(word); err != nil {
		return 0, err
	}
	s := 0
	for j := 1; j <= len(word); j++ {
		if word[j-1] == '1' {
			s ^= j
		}
	}
	return s, nil
}

// Correct flips the bit the syndrome points at, if any, and returns the
// corrected word with the flipped position (0 if the word was consistent).
func Correct(word string) (string, int, error) {
	s, err := Syndrome(word)
	if err != nil {
		return "", 0, err
	}
	if s == 0 {
		return word, 0, nil
	}
	if s > len(word) {
		return "", 0, ErrUncorrectable
	}
	fixed, err := Flip(word, s)
	return fixed, s, err
}

// Extract drops the parity positions of word.
func Extract(word string) (string, error) {
	if err := checkBits(word); err != nil {
		return "", err
	}
	m, err := DataBits(len(word))
	if err != nil {
		return "", err
	}
	data := make([]byte, 0, m)
	for i := 1; i <= len(word); i++ {
		if !isParityPosition(i) {
			data = append(data, word[i-1])
		}
	}
	return string(data), nil
}

// Flip inverts the bit at 1-based position pos.
func Flip(word string, pos int) (string, error) {
	if pos < 1 || pos > len(word) {
		return "", PositionError{pos, len(word)}
	}
	b := []byte(word)
	switch b[pos-1] {
	case '0':
		b[pos-1] = '1'
	case '1':
		b[pos-1] = '0'
	default:
		return "", BitError{pos - 1, b[pos-1]}
	}
	return string(b), nil
}
