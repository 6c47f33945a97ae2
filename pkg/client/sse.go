package client

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rclab/rclab/pkg/events"
)

// SubscribeEvents opens the server's SSE stream and delivers events on
// the returned channel. The channel closes when ctx is canceled or the
// connection drops; callers that want to stay subscribed across
// reconnects wrap this in their own retry loop.
func (c *Client) SubscribeEvents(ctx context.Context) <-chan events.Event {
	ch := make(chan events.Event, 16)

	go func() {
		defer close(ch)

		req, err := http.NewRequestWithContext(ctx, "GET", "http://"+c.address+"/api/v1/events", nil)
		if err != nil {
			logrus.Errorf("failed to create events request: %v", err)
			return
		}
		req.Header.Set("Accept", "text/event-stream")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logrus.Errorf("failed to open event stream: %v", err)
			return
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logrus.Errorf("failed to close event stream: %v", err)
			}
		}()

		if resp.StatusCode != http.StatusOK {
			logrus.Errorf("event stream returned status %d", resp.StatusCode)
			return
		}

		// Minimal SSE framing: "event:" and "data:" lines, a blank line
		// terminates one event.
		var name string
		var data []byte
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "event:"):
				name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
			case strings.HasPrefix(line, "data:"):
				data = append(data, strings.TrimSpace(strings.TrimPrefix(line, "data:"))...)
			case line == "":
				if name == "" && len(data) == 0 {
					continue
				}
				ev := events.Event{Name: name, Data: json.RawMessage(data)}
				select {
				case ch <- ev:
				case <-ctx.Done():
					return
				}
				name, data = "", nil
			}
		}
	}()

	return ch
}
