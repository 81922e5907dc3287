package client

import "strings"

// A stored flashcard reference is "<deckID>-<cardID>". The format breaks
// if either id itself contains a hyphen; callers get "no resume point"
// rather than a wrong split in the ambiguous cases that produce more than
// two parts.

// EncodeCardRef builds the composite reference persisted as the
// last-viewed flashcard.
func EncodeCardRef(deckID, cardID string) string {
	return deckID + "-" + cardID
}

// ParseCardRef splits a stored reference. ok is false unless the value
// splits into exactly two non-empty hyphen-delimited parts.
func ParseCardRef(ref string) (deckID, cardID string, ok bool) {
	parts := strings.Split(ref, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// ResumeIndex decides where to open a deck given the stored reference and
// the deck's ordered card ids. Deck mismatch, an unparseable reference or
// a card that no longer exists all fall back to the first card. Decks are
// small, so the scan is linear.
func ResumeIndex(deckID string, cardIDs []string, storedRef string) int {
	if storedRef == "" {
		return 0
	}
	refDeck, refCard, ok := ParseCardRef(storedRef)
	if !ok || refDeck != deckID {
		return 0
	}
	for i, id := range cardIDs {
		if id == refCard {
			return i
		}
	}
	return 0
}
