package domain

import (
	"regexp"
	"testing"
)

var bookingRefRgx = regexp.MustCompile(`^BK-[0-9A-Z]{6}$`)

func TestNewBookingRef(t *testing.T) {
	for i := 0; i < 100; i++ {
		ref := NewBookingRef()
		if !bookingRefRgx.MatchString(ref) {
			t.Fatalf("NewBookingRef() = %q, want format BK-XXXXXX over [0-9A-Z]", ref)
		}
	}
}
