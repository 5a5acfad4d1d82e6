package datablock

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

const (
	// NameLength is the number of characters in a block token.
	NameLength = 8

	// NamePrefix marks a data block in gnuplot expressions.
	NamePrefix = "$"

	letters  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphanum = letters + "0123456789"
)

// NewName returns a fresh block name such as "$aB3dE9xQ".
//
// The token is drawn from the entropy of a ULID seeded by crypto/rand. Its
// first character is always a letter because gnuplot reads "$1" as a column
// reference. Collisions are not checked.
func NewName() string {
	entropy := ulid.MustNew(ulid.Now(), rand.Reader).Entropy()

	name := make([]byte, 0, len(NamePrefix)+NameLength)
	name = append(name, NamePrefix...)
	name = append(name, letters[int(entropy[0])%len(letters)])

	for _, b := range entropy[1:NameLength] {
		name = append(name, alphanum[int(b)%len(alphanum)])
	}

	return string(name)
}
