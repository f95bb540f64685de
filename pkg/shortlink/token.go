package shortlink

import (
	"math/rand"

	"foodgram/domain"
)

// TokenGenerator returns a candidate short link token.
type TokenGenerator func() string

// RandomToken draws domain.ShortLinkLength characters uniformly from
// domain.ShortLinkAlphabet.
func RandomToken() string {
	b := make([]byte, domain.ShortLinkLength)
	for i := range b {
		b[i] = domain.ShortLinkAlphabet[rand.Intn(len(domain.ShortLinkAlphabet))]
	}
	return string(b)
}
