package uniuri

import (
	"crypto/rand"
)

const (
	// StdLen is the default identifier length.
	StdLen = 16

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256
)

// IDChars are the characters allowed in generated identifiers. Lower case
// letters and digits are valid in html ids and css selectors alike.
var IDChars = []byte("abcdefghijklmnopqrstuvwxyz0123456789")

// New returns a random identifier of StdLen characters.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a random identifier of the given length.
func NewLen(length int) string {
	return NewLenChars(length, IDChars)
}

// NewLenChars returns a random string of the given length made of chars.
// chars must hold between 2 and 256 entries.
func NewLenChars(length int, chars []byte) string {
	if length <= 0 {
		return ""
	}

	clen := len(chars)
	if clen < 2 || clen > byteRange {
		panic("uniuri: wrong charset length for NewLenChars")
	}

	// bytes at or above limit would favour the first characters of the set
	limit := byteRange - (byteRange % clen)
	out := make([]byte, 0, length)
	buf := make([]byte, length+length/2+1)

	for {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			if int(rb) >= limit {
				continue
			}

			out = append(out, chars[int(rb)%clen])
			if len(out) == length {
				return string(out)
			}
		}
	}
}
