package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Progress is the wire shape of a user's last-viewed state. Nil means the
// field has never been set.
type Progress struct {
	LastLessonID    *string `json:"lastLessonId"`
	LastFlashcardID *string `json:"lastFlashcardId"`
}

// ProgressEndpoint is the network boundary the sync engine talks to.
type ProgressEndpoint interface {
	Fetch(ctx context.Context, userID string) (Progress, error)
	Update(ctx context.Context, userID string, lessonID, flashcardID *string) error
}

// HTTPEndpoint talks to the backend's progress routes over JSON.
type HTTPEndpoint struct {
	BaseURL string
	Token   string // JWT sent in the Authorization header
	Client  *http.Client
}

func NewHTTPEndpoint(baseURL, token string) *HTTPEndpoint {
	return &HTTPEndpoint{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (e *HTTPEndpoint) Fetch(ctx context.Context, userID string) (Progress, error) {
	url := fmt.Sprintf("%s/api/progress/%s", e.BaseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Progress{}, err
	}
	req.Header.Set("Authorization", e.Token)

	resp, err := e.Client.Do(req)
	if err != nil {
		return Progress{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Progress{}, fmt.Errorf("fetch progress: unexpected status %d", resp.StatusCode)
	}

	var progress Progress
	if err := json.NewDecoder(resp.Body).Decode(&progress); err != nil {
		return Progress{}, err
	}
	return progress, nil
}

func (e *HTTPEndpoint) Update(ctx context.Context, userID string, lessonID, flashcardID *string) error {
	body, err := json.Marshal(map[string]interface{}{
		"userId":      userID,
		"lessonId":    lessonID,
		"flashcardId": flashcardID,
	})
	if err != nil {
		return err
	}

	url := e.BaseURL + "/api/progress/update-last-learning"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", e.Token)

	resp, err := e.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("update progress: unexpected status %d", resp.StatusCode)
	}
	return nil
}
