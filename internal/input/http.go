package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var ErrMissingSession = errors.New("missing session token")

// StatusError is returned when the puzzle server answers with anything but 200.
type StatusError struct {
	Day        int
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch day %d: unexpected status %d: %s", e.Day, e.StatusCode, e.Body)
}

// HTTPSource downloads inputs from the puzzle site. Each Fetch is a single
// request; failures are returned as-is.
type HTTPSource struct {
	BaseURL string
	Year    int
	Session string
	Client  *http.Client
	logger  *zerolog.Logger
}

func NewHTTPSource(baseURL string, year int, session string, logger *zerolog.Logger) *HTTPSource {
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Year:    year,
		Session: session,
		Client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func (s *HTTPSource) URL(day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", s.BaseURL, s.Year, day)
}

func (s *HTTPSource) Fetch(ctx context.Context, day int) (string, error) {
	if s.Session == "" {
		return "", ErrMissingSession
	}

	url := s.URL(day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: strings.TrimSpace(s.Session)})
	req.Header.Set("User-Agent", "github.com/povarna/advent-of-code-2022")

	start := time.Now()
	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch day %d: %w", day, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read day %d response: %w", day, err)
	}

	s.logger.Debug().
		Int("day", day).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Fetched puzzle input")

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Day: day, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if len(body) == 0 {
		return "", fmt.Errorf("%w: day %d", ErrEmptyInput, day)
	}

	return string(body), nil
}
