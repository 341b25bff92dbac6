package testmail

import "math/rand"

// tagAlphabet is the character set tags are drawn from.
const tagAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newTag returns a random tag of the given length. Tags only namespace
// test inboxes, so math/rand is enough; collisions are tolerable and
// cryptographic strength is not a goal.
func newTag(length int) string {
	if length < 1 {
		length = 1
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = tagAlphabet[rand.Intn(len(tagAlphabet))]
	}
	return string(b)
}
