package api

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

// ListLogs returns the current snapshot of an attempt's unified log
// entries, in emission order.
func (c *Client) ListLogs(ctx context.Context, attemptID uuid.UUID) ([]models.UnifiedLogEntry, error) {
	var entries []models.UnifiedLogEntry
	if err := c.get(ctx, "/api/task-attempts/"+attemptID.String()+"/logs", nil, &entries); err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return entries, nil
}

// StreamLogs subscribes to an attempt's server-sent log stream.
// Entries arrive on the returned channel in transport order and are
// never resequenced. Both channels close when the stream ends; errs
// delivers at most one error. Cancel ctx to stop the stream.
func (c *Client) StreamLogs(ctx context.Context, attemptID uuid.UUID) (<-chan models.UnifiedLogEntry, <-chan error, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/task-attempts/"+attemptID.String()+"/logs/stream", nil, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	token, err := c.token(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("authenticate: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("open log stream: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, nil, &Error{StatusCode: resp.StatusCode, Message: "log stream rejected"}
	}

	entries := make(chan models.UnifiedLogEntry)
	errs := make(chan error, 1)

	go func() {
		defer close(entries)
		defer close(errs)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			data, ok := strings.CutPrefix(scanner.Text(), "data: ")
			if !ok {
				continue // event names, comments, blank separators
			}
			var entry models.UnifiedLogEntry
			if err := json.Unmarshal([]byte(data), &entry); err != nil {
				errs <- fmt.Errorf("decode log entry: %w", err)
				return
			}
			select {
			case entries <- entry:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			errs <- fmt.Errorf("log stream: %w", err)
		}
	}()

	return entries, errs, nil
}
