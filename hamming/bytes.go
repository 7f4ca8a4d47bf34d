package hamming

import (
	"fmt"
)

// nibbleWords holds the Hamming(7,4) codeword of every 4-bit value.
var nibbleWords [16]string

func init() {
	for v := 0; v < 16; v++ {
		w, err := Encode(fmt.Sprintf("%04b", v))
		if err != nil {
			panic(err)
		}
		nibbleWords[v] = w
	}
}

// EncodeBytes frames payload as Hamming(7,4) codewords, two per byte, high
// nibble first.
func EncodeBytes(payload []byte) []string {
	words := make([]string, 0, len(payload)*2)
	for _, b := range payload {
		words = append(words, nibbleWords[b>>4], nibbleWords[b&0x0f])
	}
	return words
}

func decodeNibble(word string) (byte, bool, error) {
	if len(word) != 7 {
		return 0, false, LengthError{len(word)}
	}
	fixed, pos, err := Correct(word)
	if err != nil {
		return 0, false, err
	}
	data, err := Extract(fixed)
	if err != nil {
		return 0, false, err
	}
	var v byte
	for i := 0; i < len(data); i++ {
		v = v<<1 | (data[i] - '0')
	}
	return v, pos != 0, nil
}

// DecodeBytes reverses EncodeBytes, correcting up to one flipped bit per
// codeword. It also returns how many codewords needed a correction.
func DecodeBytes(words []string) ([]byte, int, error) {
	if len(words)%2 != 0 {
		return nil, 0, fmt.Errorf("odd number of codewords: %d", len(words))
	}
	payload := make([]byte, 0, len(words)/2)
	corrected := 0
	for i := 0; i < len(words); i += 2 {
		hi, fixedHi, err := decodeNibble(words[i])
		if err != nil {
			return nil, corrected, fmt.Errorf("codeword %d: %w", i, err)
		}
		lo, fixedLo, err := decodeNibble(words[i+1])
		if err != nil {
			return nil, corrected, fmt.Errorf("codeword %d: %w", i+1, err)
		}
		if fixedHi {
			corrected += 1
		}
		if fixedLo {
			corrected += 1
		}
		payload = append(payload, hi<<4|lo)
	}
	return payload, corrected, nil
}
