package client

import (
	"context"
	"fmt"
	"sync"
)

// EngineState is the sync engine's position in its load lifecycle.
type EngineState int

const (
	// StateEmpty: no identity, no working copy.
	StateEmpty EngineState = iota
	// StateLoading: identity present, remote fetch in flight.
	StateLoading
	// StateReady: fetch completed (successfully or not); the working copy
	// is authoritative for display.
	StateReady
)

// SyncEngine keeps one user's last-viewed lesson and flashcard consistent
// between the UI and the backend. Reads are synchronous against a local
// working copy; writes are optimistic and rolled back to the pre-mutation
// snapshot if the network call fails.
//
// Lesson and flashcard updates are independent: each field carries its own
// generation counter, and a response only applies (confirmation or
// rollback) while its generation is still the latest issued for that
// field. Superseded responses are discarded.
//
// One engine instance per session. The last-loaded identity is engine
// state, never process-global.
type SyncEngine struct {
	endpoint ProgressEndpoint

	mu       sync.Mutex
	state    EngineState
	userID   string // identity whose data is loaded or loading
	progress Progress

	loadGen      uint64
	lessonGen    uint64
	flashcardGen uint64
}

// NewSyncEngine wires the engine to an identity source and endpoint. The
// engine starts Empty and follows identity transitions from there.
func NewSyncEngine(identity *IdentityContext, endpoint ProgressEndpoint) *SyncEngine {
	e := &SyncEngine{endpoint: endpoint}
	identity.OnChange(func(userID string) {
		e.SetIdentity(context.Background(), userID)
	})
	if id := identity.UserID(); id != "" {
		e.SetIdentity(context.Background(), id)
	}
	return e
}

// SetIdentity reacts to a login, logout or identity switch.
//
// A repeated call for the identity already loaded (or loading) is
// suppressed: no second fetch is issued, so a stale re-fetch can never
// clobber an in-flight optimistic mutation. A new identity clears the
// previous working copy before anything is fetched. Loss of identity
// clears the working copy and stops there.
//
// A failed fetch still lands in StateReady with empty fields: a user with
// a degraded network silently starts fresh instead of being blocked on an
// error state.
func (e *SyncEngine) SetIdentity(ctx context.Context, userID string) {
	e.mu.Lock()
	if userID != "" && userID == e.userID {
		e.mu.Unlock()
		return
	}

	// Invalidate any in-flight responses belonging to the old session.
	// The load generation also covers logout/re-login as the same user:
	// a fetch stalled from the previous session must not apply in the
	// new one.
	e.loadGen++
	e.lessonGen++
	e.flashcardGen++
	e.progress = Progress{}
	e.userID = userID

	if userID == "" {
		e.state = StateEmpty
		e.mu.Unlock()
		return
	}
	e.state = StateLoading
	gen := e.loadGen
	e.mu.Unlock()

	progress, err := e.endpoint.Fetch(ctx, userID)

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.loadGen {
		// A later identity transition superseded this load.
		return
	}
	if err == nil {
		e.progress = progress
	}
	e.state = StateReady
}

// Progress returns the current working copy. Never blocks on the network.
func (e *SyncEngine) Progress() Progress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.progress
}

// State reports the engine's current lifecycle state.
func (e *SyncEngine) State() EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// UpdateLastLesson optimistically records the lesson as last viewed and
// persists it. On failure the working copy is rolled back to the value it
// held before this call, and ErrMutationFailed is returned so the UI can
// surface it.
func (e *SyncEngine) UpdateLastLesson(ctx context.Context, lessonID string) error {
	e.mu.Lock()
	if e.state != StateReady || e.userID == "" {
		e.mu.Unlock()
		return ErrNotAuthenticated
	}

	snapshot := e.progress.LastLessonID
	value := lessonID
	e.progress.LastLessonID = &value
	e.lessonGen++
	gen := e.lessonGen
	userID := e.userID
	e.mu.Unlock()

	err := e.endpoint.Update(ctx, userID, &value, nil)

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.lessonGen || e.userID != userID {
		// Superseded by a newer mutation or an identity change; whatever
		// this response says no longer applies.
		return nil
	}
	if err != nil {
		e.progress.LastLessonID = snapshot
		return fmt.Errorf("%w: %v", ErrMutationFailed, err)
	}
	return nil
}

// UpdateLastFlashcard records the card as last viewed, persisting the
// composite "<deckID>-<cardID>" reference. Same optimistic protocol and
// rollback contract as UpdateLastLesson, on the flashcard field.
func (e *SyncEngine) UpdateLastFlashcard(ctx context.Context, cardID, deckID string) error {
	e.mu.Lock()
	if e.state != StateReady || e.userID == "" {
		e.mu.Unlock()
		return ErrNotAuthenticated
	}

	snapshot := e.progress.LastFlashcardID
	value := EncodeCardRef(deckID, cardID)
	e.progress.LastFlashcardID = &value
	e.flashcardGen++
	gen := e.flashcardGen
	userID := e.userID
	e.mu.Unlock()

	err := e.endpoint.Update(ctx, userID, nil, &value)

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.flashcardGen || e.userID != userID {
		return nil
	}
	if err != nil {
		e.progress.LastFlashcardID = snapshot
		return fmt.Errorf("%w: %v", ErrMutationFailed, err)
	}
	return nil
}
