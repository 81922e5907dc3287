package client

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type updateCall struct {
	userID      string
	lessonID    *string
	flashcardID *string
}

type fakeEndpoint struct {
	mu          sync.Mutex
	fetchCalls  int
	fetchResult map[string]Progress
	fetchErr    error
	fetchFn     func(userID string) (Progress, error)
	updates     []updateCall
	updateFn    func(call updateCall) error
}

func newFakeEndpoint() *fakeEndpoint {
	return &fakeEndpoint{fetchResult: map[string]Progress{}}
}

func (f *fakeEndpoint) Fetch(_ context.Context, userID string) (Progress, error) {
	f.mu.Lock()
	f.fetchCalls++
	result, err := f.fetchResult[userID], f.fetchErr
	fn := f.fetchFn
	f.mu.Unlock()
	if fn != nil {
		return fn(userID)
	}
	return result, err
}

func (f *fakeEndpoint) Update(_ context.Context, userID string, lessonID, flashcardID *string) error {
	call := updateCall{userID: userID, lessonID: lessonID, flashcardID: flashcardID}
	f.mu.Lock()
	f.updates = append(f.updates, call)
	fn := f.updateFn
	f.mu.Unlock()
	if fn != nil {
		return fn(call)
	}
	return nil
}

func (f *fakeEndpoint) FetchCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCalls
}

func strptr(s string) *string { return &s }

func newReadyEngine(t *testing.T, fe *fakeEndpoint, userID string) *SyncEngine {
	t.Helper()
	engine := NewSyncEngine(NewIdentityContext(), fe)
	engine.SetIdentity(context.Background(), userID)
	assert.Equal(t, StateReady, engine.State())
	return engine
}

func TestLoadOncePerIdentity(t *testing.T) {
	fe := newFakeEndpoint()
	fe.fetchResult["7"] = Progress{LastLessonID: strptr("L1")}

	engine := newReadyEngine(t, fe, "7")
	engine.SetIdentity(context.Background(), "7")
	engine.SetIdentity(context.Background(), "7")

	assert.Equal(t, 1, fe.FetchCalls())
	assert.Equal(t, "L1", *engine.Progress().LastLessonID)
}

func TestFailedLoadStartsFresh(t *testing.T) {
	fe := newFakeEndpoint()
	fe.fetchErr = errors.New("network down")

	engine := newReadyEngine(t, fe, "7")

	progress := engine.Progress()
	assert.Nil(t, progress.LastLessonID)
	assert.Nil(t, progress.LastFlashcardID)
}

func TestUpdateWithoutIdentity(t *testing.T) {
	fe := newFakeEndpoint()
	engine := NewSyncEngine(NewIdentityContext(), fe)

	err := engine.UpdateLastLesson(context.Background(), "L1")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	err = engine.UpdateLastFlashcard(context.Background(), "0001", "3")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	assert.Empty(t, fe.updates)
}

func TestFieldIndependence(t *testing.T) {
	fe := newFakeEndpoint()
	engine := newReadyEngine(t, fe, "7")

	assert.NoError(t, engine.UpdateLastFlashcard(context.Background(), "0007", "3"))
	assert.NoError(t, engine.UpdateLastLesson(context.Background(), "L2"))

	progress := engine.Progress()
	assert.Equal(t, "L2", *progress.LastLessonID)
	assert.Equal(t, "3-0007", *progress.LastFlashcardID)

	// Each update carried only its own field.
	assert.Nil(t, fe.updates[0].lessonID)
	assert.Equal(t, "3-0007", *fe.updates[0].flashcardID)
	assert.Equal(t, "L2", *fe.updates[1].lessonID)
	assert.Nil(t, fe.updates[1].flashcardID)
}

func TestRollbackToPreviousValue(t *testing.T) {
	fe := newFakeEndpoint()
	fe.fetchResult["7"] = Progress{LastLessonID: strptr("L1")}
	engine := newReadyEngine(t, fe, "7")

	fe.updateFn = func(updateCall) error { return errors.New("boom") }

	err := engine.UpdateLastLesson(context.Background(), "L2")
	assert.ErrorIs(t, err, ErrMutationFailed)

	// Rolled back to the last confirmed value, not cleared.
	assert.Equal(t, "L1", *engine.Progress().LastLessonID)
}

func TestFlashcardRollbackToPreviousValue(t *testing.T) {
	fe := newFakeEndpoint()
	fe.fetchResult["7"] = Progress{LastFlashcardID: strptr("3-0001")}
	engine := newReadyEngine(t, fe, "7")

	fe.updateFn = func(updateCall) error { return errors.New("boom") }

	err := engine.UpdateLastFlashcard(context.Background(), "0002", "3")
	assert.ErrorIs(t, err, ErrMutationFailed)
	assert.Equal(t, "3-0001", *engine.Progress().LastFlashcardID)
}

func TestStaleFailureDoesNotRollBack(t *testing.T) {
	fe := newFakeEndpoint()
	engine := newReadyEngine(t, fe, "7")

	started := make(chan struct{})
	release := make(chan error)
	fe.updateFn = func(call updateCall) error {
		if call.lessonID != nil && *call.lessonID == "L1" {
			started <- struct{}{}
			return <-release
		}
		return nil
	}

	firstDone := make(chan error)
	go func() {
		firstDone <- engine.UpdateLastLesson(context.Background(), "L1")
	}()
	<-started

	// A newer mutation succeeds while the first is still in flight.
	assert.NoError(t, engine.UpdateLastLesson(context.Background(), "L2"))

	// The first request now fails late; its result is superseded.
	release <- errors.New("timeout")
	assert.NoError(t, <-firstDone)

	assert.Equal(t, "L2", *engine.Progress().LastLessonID)
}

func TestStaleLoadDoesNotClobberNewSession(t *testing.T) {
	fe := newFakeEndpoint()

	started := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	var calls int
	fe.fetchFn = func(string) (Progress, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			started <- struct{}{}
			<-release
			return Progress{LastLessonID: strptr("OLD")}, nil
		}
		return Progress{}, nil
	}

	engine := NewSyncEngine(NewIdentityContext(), fe)

	firstDone := make(chan struct{})
	go func() {
		engine.SetIdentity(context.Background(), "7")
		close(firstDone)
	}()
	<-started

	// Logout and log back in as the same user while the first session's
	// fetch is still in flight.
	engine.SetIdentity(context.Background(), "")
	engine.SetIdentity(context.Background(), "7")
	assert.Equal(t, StateReady, engine.State())

	// A mutation confirmed in the new session...
	assert.NoError(t, engine.UpdateLastLesson(context.Background(), "L5"))

	// ...must survive the old session's fetch finally landing.
	close(release)
	<-firstDone

	assert.Equal(t, "L5", *engine.Progress().LastLessonID)
}

func TestLogoutClearsWorkingCopy(t *testing.T) {
	fe := newFakeEndpoint()
	fe.fetchResult["7"] = Progress{
		LastLessonID:    strptr("L1"),
		LastFlashcardID: strptr("3-0007"),
	}
	engine := newReadyEngine(t, fe, "7")

	engine.SetIdentity(context.Background(), "")

	assert.Equal(t, StateEmpty, engine.State())
	progress := engine.Progress()
	assert.Nil(t, progress.LastLessonID)
	assert.Nil(t, progress.LastFlashcardID)
}

func TestIdentitySwitchLoadsNewUser(t *testing.T) {
	fe := newFakeEndpoint()
	fe.fetchResult["7"] = Progress{LastLessonID: strptr("L1")}
	fe.fetchResult["8"] = Progress{LastLessonID: strptr("L9")}
	engine := newReadyEngine(t, fe, "7")

	engine.SetIdentity(context.Background(), "8")

	assert.Equal(t, 2, fe.FetchCalls())
	assert.Equal(t, "L9", *engine.Progress().LastLessonID)
}

func TestEngineFollowsIdentityContext(t *testing.T) {
	fe := newFakeEndpoint()
	fe.fetchResult["7"] = Progress{LastLessonID: strptr("L1")}

	identity := NewIdentityContext()
	engine := NewSyncEngine(identity, fe)
	assert.Equal(t, StateEmpty, engine.State())

	identity.SetUserID("7")
	assert.Equal(t, StateReady, engine.State())
	assert.Equal(t, "L1", *engine.Progress().LastLessonID)

	identity.SetUserID("")
	assert.Equal(t, StateEmpty, engine.State())
}
