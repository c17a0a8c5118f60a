package rulesrc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaraqc/yaraqc/internal/domain/rulesrc"
)

func TestDecodeHex(t *testing.T) {
	p := rulesrc.DecodeHex("41 ?? 42 43")
	assert.Equal(t, []byte{0x41, 0x00, 0x42, 0x43}, p.Bytes)
	assert.Equal(t, map[int]bool{1: true}, p.Wildcards)
	assert.Equal(t, 3, p.ConcreteBytes())
}

func TestDecodeHex_NibbleWildcards(t *testing.T) {
	p := rulesrc.DecodeHex("4? ?A FF")
	assert.Len(t, p.Bytes, 3)
	assert.True(t, p.Wildcards[0])
	assert.True(t, p.Wildcards[1])
	assert.False(t, p.Wildcards[2])
	assert.Equal(t, byte(0xFF), p.Bytes[2])
}

func TestDecodeHex_JumpsAndAlternationsSkipped(t *testing.T) {
	// Jump and alternation tokens do not advance the position counter,
	// so the decoded length under-counts the true matched length.
	p := rulesrc.DecodeHex("4D 5A [4-6] 50 ( 45 | 4C ) 00")
	assert.Equal(t, []byte{0x4D, 0x5A, 0x50, 0x45, 0x4C, 0x00}, p.Bytes)
	assert.Empty(t, p.Wildcards)
}

func TestDecodeHex_CaseInsensitiveDigits(t *testing.T) {
	p := rulesrc.DecodeHex("de AD be EF")
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, p.Bytes)
}

func TestDecodeHex_Empty(t *testing.T) {
	p := rulesrc.DecodeHex("")
	assert.Empty(t, p.Bytes)
	assert.Empty(t, p.Wildcards)
}

func TestWildcardDensity(t *testing.T) {
	p := rulesrc.DecodeHex("41 ?? ?? ??")
	assert.InDelta(t, 0.75, p.WildcardDensity(), 0.001)
	assert.Equal(t, 0, p.LeadingWildcards())

	p = rulesrc.DecodeHex("?? ?? 41 42")
	assert.Equal(t, 2, p.LeadingWildcards())
}

func TestLeadsWithWildcard(t *testing.T) {
	assert.True(t, rulesrc.LeadsWithWildcard("?? 41 42"))
	assert.False(t, rulesrc.LeadsWithWildcard("41 ?? 42"))
	assert.False(t, rulesrc.LeadsWithWildcard(""))
}
