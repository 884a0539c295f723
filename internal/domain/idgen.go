package domain

import "math/rand/v2"

// BookingRefFunc mints booking references. The application injects one so the
// generator can be swapped for a deterministic implementation.
type BookingRefFunc func() string

const (
	bookingRefPrefix = "BK-"
	refAlphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	refSuffixLength  = 6
)

// NewBookingRef returns a reference like "BK-1A2B3C": a fixed prefix plus a
// random base-36 suffix. Uniqueness is probabilistic, which is enough at the
// scale this system operates on.
func NewBookingRef() string {
	suffix := make([]byte, refSuffixLength)
	for i := range suffix {
		suffix[i] = refAlphabet[rand.IntN(len(refAlphabet))]
	}

	return bookingRefPrefix + string(suffix)
}
