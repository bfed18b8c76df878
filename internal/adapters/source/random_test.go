package source

import (
	"bytes"
	"testing"
)

func TestRandReadStaysWithinBuffer(t *testing.T) {
	s := NewRand(1)
	buf := make([]byte, 64)

	sawZero := false
	for i := 0; i < 500; i++ {
		for j := range buf {
			buf[j] = 0
		}
		n, err := s.Read(buf)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if n < 0 || n >= len(buf)+1 {
			t.Fatalf("read length %d outside [0,%d]", n, len(buf))
		}
		if n == 0 {
			sawZero = true
			continue
		}
		for _, b := range buf[:n] {
			if !bytes.ContainsRune([]byte(charset), rune(b)) {
				t.Fatalf("unexpected byte %q in payload", b)
			}
		}
	}
	if !sawZero {
		t.Logf("no zero-length read in 500 iterations; seed dependent, not a failure")
	}
}

func TestRandReadEmptyBuffer(t *testing.T) {
	s := NewRand(1)
	n, err := s.Read(nil)
	if err != nil || n != 0 {
		t.Fatalf("expected (0, nil) for empty buffer, got (%d, %v)", n, err)
	}
}
