package source

import (
	"io"
	"unicode/utf8"
)

// chunkSize is the size of reads from the underlying reader.
const chunkSize = 4096

// RuneReader hands out bytes of an underlying reader in chunks that end on
// rune boundaries. A multi-byte sequence split between two reads of the
// underlying reader is held back until it is complete, so a consumer that
// decodes every chunk on its own sees the same runes as a consumer of the
// whole input.
type RuneReader struct {
	r       io.Reader
	pending []byte
	chunk   []byte
	err     error
}

// NewRuneReader wraps r.
func NewRuneReader(r io.Reader) *RuneReader {
	return &RuneReader{r: r, chunk: make([]byte, chunkSize)}
}

// Read implements io.Reader.
func (rr *RuneReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		// After the underlying reader failed nothing can complete a
		// trailing sequence, so it is passed on as is.
		ready := len(rr.pending)
		if rr.err == nil {
			ready = completePrefix(rr.pending)
		}
		if ready > 0 {
			n := fit(rr.pending[:ready], len(p))
			copy(p, rr.pending[:n])
			rr.pending = rr.pending[n:]
			return n, nil
		}
		if rr.err != nil {
			return 0, rr.err
		}

		n, err := rr.r.Read(rr.chunk)
		rr.pending = append(rr.pending, rr.chunk[:n]...)
		rr.err = err
	}
}

// completePrefix returns the length of the longest prefix of b that does
// not end inside an incomplete rune.
func completePrefix(b []byte) int {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		if utf8.FullRune(b[i:]) {
			return len(b)
		}
		return i
	}
	// No rune start in the tail: invalid bytes, nothing to wait for
	return len(b)
}

// fit returns how many bytes of b fit in limit without splitting a rune.
// A limit smaller than the first rune still gets limit bytes.
func fit(b []byte, limit int) int {
	if len(b) <= limit {
		return len(b)
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(b[cut]) {
		cut--
	}
	if cut == 0 {
		return limit
	}
	return cut
}
