package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardRefRoundTrip(t *testing.T) {
	ref := EncodeCardRef("3", "0007")
	assert.Equal(t, "3-0007", ref)

	deckID, cardID, ok := ParseCardRef(ref)
	assert.True(t, ok)
	assert.Equal(t, "3", deckID)
	assert.Equal(t, "0007", cardID)
}

func TestParseCardRefMalformed(t *testing.T) {
	for _, ref := range []string{"", "30007", "3-00-07", "-", "3-", "-0007", "a-b-c-d"} {
		_, _, ok := ParseCardRef(ref)
		assert.False(t, ok, "ref %q should not parse", ref)
	}
}

func TestResumeIndex(t *testing.T) {
	cards := []string{"0001", "0004", "0007"}

	// Same deck, card present: resume at its index.
	assert.Equal(t, 2, ResumeIndex("3", cards, "3-0007"))

	// Different deck: start at the top.
	assert.Equal(t, 0, ResumeIndex("5", cards, "3-0007"))

	// Card removed since the reference was stored.
	assert.Equal(t, 0, ResumeIndex("3", cards, "3-0099"))

	// No stored reference or garbage.
	assert.Equal(t, 0, ResumeIndex("3", cards, ""))
	assert.Equal(t, 0, ResumeIndex("3", cards, "not a ref"))
}
