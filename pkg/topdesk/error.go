package topdesk

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error is returned when the TOPdesk API responds with a non-2xx status.
type Error struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *Error) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("topdesk: %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("topdesk: %s", e.Status)
}

func newError(resp *http.Response) error {
	// the body is diagnostic only, cap it to keep errors loggable
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &Error{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(body)),
	}
}
