// Package rle implements run-length encoding of symbol strings. A run of n
// equal symbols is written as the symbol followed by n in decimal, and the
// count is omitted when n is 1, so "AABCCCDEEEE" becomes "A2BC3DE4".
package rle

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Run is a maximal block of equal symbols.
type Run struct {
	Symbol rune
	Length int
}

// MaxDecodedLength caps the number of symbols Decode produces, so a short
// input cannot claim an arbitrarily long run.
const MaxDecodedLength = 1 << 24

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Runs splits s into maximal runs.
func Runs(s string) []Run {
	var runs []Run
	for _, r := range s {
		if n := len(runs); n > 0 && runs[n-1].Symbol == r {
			runs[n-1].Length += 1
		} else {
			runs = append(runs, Run{r, 1})
		}
	}
	return runs
}

// Format renders runs in the encoded form. It does not check whether the runs
// are maximal or whether a symbol is a digit.
func Format(runs []Run) string {
	b := strings.Builder{}
	for _, r := range runs {
		b.WriteRune(r.Symbol)
		if r.Length > 1 {
			b.WriteString(strconv.Itoa(r.Length))
		}
	}
	return b.String()
}

// Encode run-length encodes s. Strings containing decimal digits are
// rejected because the output could not be decoded unambiguously, as are
// invalid UTF-8 and strings longer than MaxDecodedLength symbols.
func Encode(s string) (string, error) {
	n := 0
	for i, r := range s {
		if r == utf8.RuneError {
			if _, w := utf8.DecodeRuneInString(s[i:]); w == 1 {
				return "", FormatError{i, "invalid UTF-8"}
			}
		}
		if isDigit(r) {
			return "", DigitError{i, r}
		}
		n++
	}
	if n > MaxDecodedLength {
		return "", LengthError{n}
	}
	return Format(Runs(s)), nil
}

// Parse reads an encoded string back into runs. Only canonical encodings are
// accepted, i.e. those that Encode could have produced.
func Parse(e string) ([]Run, error) {
	var runs []Run
	total := 0
	i := 0
	for i < len(e) {
		sym, w := utf8.DecodeRuneInString(e[i:])
		if sym == utf8.RuneError && w == 1 {
			return nil, FormatError{i, "invalid UTF-8"}
		}
		if isDigit(sym) {
			return nil, FormatError{i, "count without a symbol"}
		}
		if n := len(runs); n > 0 && runs[n-1].Symbol == sym {
			return nil, FormatError{i, "symbol repeats the previous run"}
		}
		i += w
		j := i
		for j < len(e) && isDigit(rune(e[j])) {
			j++
		}
		length := 1
		if j > i {
			if e[i] == '0' {
				return nil, FormatError{i, "count has a leading zero"}
			}
			var err error
			length, err = strconv.Atoi(e[i:j])
			if err != nil {
				return nil, FormatError{i, "count out of range"}
			}
			if length < 2 {
				return nil, FormatError{i, "explicit count below 2"}
			}
		}
		if length > MaxDecodedLength-total {
			return nil, FormatError{i, "count too large"}
		}
		total += length
		runs = append(runs, Run{sym, length})
		i = j
	}
	return runs, nil
}

// Expand is the inverse of Runs.
func Expand(runs []Run) string {
	b := strings.Builder{}
	for _, r := range runs {
		for k := 0; k < r.Length; k++ {
			b.WriteRune(r.Symbol)
		}
	}
	return b.String()
}

// Decode reverses Encode.
func Decode(e string) (string, error) {
	runs, err := Parse(e)
	if err != nil {
		return "", err
	}
	return Expand(runs), nil
}

// Ratio returns the length of the encoding of s divided by the length of s,
// both counted in symbols. An empty s has ratio 1.
func Ratio(s string) (float64, error) {
	e, err := Encode(s)
	if err != nil {
		return 0, err
	}
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 1, nil
	}
	return float64(utf8.RuneCountInString(e)) / float64(n), nil
}
