package hamming

import (
	"math/rand"
)

// Channel is a binary channel that flips at most one bit per transmitted
// word, with probability FlipProb.
type Channel struct {
	Rand     *rand.Rand
	FlipProb float64
}

// Transmit returns the received word and the flipped position, 0 if the word
// went through intact. word must be a bit string.
func (c *Channel) Transmit(word string) (string, int) {
	if len(word) == 0 || c.Rand.Float64() >= c.FlipProb {
		return word, 0
	}
	pos := c.Rand.Intn(len(word)) + 1
	received, err := Flip(word, pos)
	if err != nil {
		panic(err)
	}
	return received, pos
}

// TransmitAll sends every word through the channel and returns the received
// words with the number of flips.
func (c *Channel) TransmitAll(words []string) ([]string, int) {
	res := make([]string, len(words))
	flips := 0
	for i, w := range words {
		var pos int
		res[i], pos = c.Transmit(w)
		if pos != 0 {
			flips += 1
		}
	}
	return res, flips
}
