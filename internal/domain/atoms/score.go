// Package atoms scores 4-byte search anchors the way a scanning engine
// selects them: every candidate window of a pattern is rated for how
// selective it is as a fast pre-filter, and the best window wins.
package atoms

import "bytes"

// AtomLength is the fixed anchor size the scorer evaluates.
const AtomLength = 4

// Atom is the best-scoring window found in a pattern. Score is in [0,100].
type Atom struct {
	Bytes [AtomLength]byte `json:"bytes"`
	Score int              `json:"score"`
}

// Config is the immutable pattern data the scorer is built with, injected
// at construction so tests can substitute smaller fixtures.
type Config struct {
	// BadPatterns are 4-byte fillers that make terrible anchors. An atom
	// containing one takes a single heavy penalty.
	BadPatterns [][]byte
	// CommonSequences are short byte markers (file-format magic, protocol
	// fragments) frequent enough in benign data to weaken an anchor.
	CommonSequences [][]byte
}

// DefaultConfig returns the built-in pattern tables.
func DefaultConfig() Config {
	return Config{
		BadPatterns: [][]byte{
			{0x00, 0x00, 0x00, 0x00},
			{0x90, 0x90, 0x90, 0x90},
			{0xCC, 0xCC, 0xCC, 0xCC},
			{0xFF, 0xFF, 0xFF, 0xFF},
			{0x20, 0x20, 0x20, 0x20},
		},
		CommonSequences: [][]byte{
			[]byte("MZ\x90"),
			[]byte("\x7fELF"),
			[]byte("PK\x03\x04"),
			[]byte("\x89PNG"),
			[]byte("%PDF"),
			[]byte("\xff\xd8\xff"),
			[]byte("\xd0\xcf\x11\xe0"),
			[]byte("\xca\xfe\xba\xbe"),
			[]byte("http"),
			[]byte("HTTP"),
			[]byte("www."),
		},
	}
}

// Scorer rates candidate atoms. It holds no mutable state and is safe for
// concurrent use.
type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Best scores every valid 4-byte window of the byte sequence and returns
// the maximum-scoring one. Windows touching a wildcard offset are skipped.
// Ties break in favor of the earliest window. Returns false when the
// sequence has no valid window.
func (s *Scorer) Best(data []byte, wildcards map[int]bool) (Atom, bool) {
	if len(data) < AtomLength {
		return Atom{}, false
	}

	best := Atom{Score: -1}
	found := false
	for i := 0; i+AtomLength <= len(data); i++ {
		if wildcards[i] || wildcards[i+1] || wildcards[i+2] || wildcards[i+3] {
			continue
		}
		score := s.scoreWindow(data[i : i+AtomLength])
		// A later equal score never replaces the current best.
		if score > best.Score {
			copy(best.Bytes[:], data[i:i+AtomLength])
			best.Score = score
			found = true
		}
	}
	if !found {
		return Atom{}, false
	}
	return best, true
}

// scoreWindow rates one 4-byte window. Penalties are cumulative but each
// rule fires at most once; the score starts at 100 and never drops
// below 0.
func (s *Scorer) scoreWindow(w []byte) int {
	score := 100

	switch distinctBytes(w) {
	case 1:
		score -= 80
	case 2:
		score -= 40
	}

	for _, b := range w {
		if b == 0x00 {
			score -= 15
		}
	}

	for _, bad := range s.cfg.BadPatterns {
		if bytes.Contains(w, bad) {
			score -= 60
			break
		}
	}

	for _, seq := range s.cfg.CommonSequences {
		if bytes.Contains(w, seq) {
			score -= 30
			break
		}
	}

	if allPrintable(w) {
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	return score
}

func distinctBytes(w []byte) int {
	var seen [256]bool
	n := 0
	for _, b := range w {
		if !seen[b] {
			seen[b] = true
			n++
		}
	}
	return n
}

func allPrintable(w []byte) bool {
	for _, b := range w {
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}
