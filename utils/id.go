package utils

import (
	"crypto/rand"
	"math/big"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// IDLength is the length of booking, expense and review codes.
const IDLength = 6

// GenerateID returns a short uppercase base-36 code such as "K3Z9QA".
func GenerateID() string {
	return GenerateRandomString(IDLength)
}

// GenerateRandomString returns n characters drawn from [0-9A-Z].
func GenerateRandomString(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(idAlphabet)))
	for i := range out {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("failed to read random bytes")
		}
		out[i] = idAlphabet[v.Int64()]
	}
	return string(out)
}
