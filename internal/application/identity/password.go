package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// passwordAlphabet excludes characters that are easy to misread in a
// mail client: 0/O, 1/l.
const passwordAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHIJKLMNPQRSTUVWXYZ23456789"

// GeneratedPasswordLength is the length of server-generated passwords
const GeneratedPasswordLength = 10

// GeneratePassword returns a readable random password drawn uniformly
// from the unambiguous alphabet
func GeneratePassword() (string, error) {
	max := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, GeneratedPasswordLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
