// Package wordapi fetches random words from the RapidAPI random-words service.
package wordapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/verte-zerg/termkit/internal/model"
)

// ErrRemoteFetchFailed wraps every failure to obtain a word.
var ErrRemoteFetchFailed = errors.New("remote word fetch failed")

const (
	headerAPIKey  = "x-rapidapi-key"
	headerAPIHost = "x-rapidapi-host"
	maxErrorBody  = 512
)

// Client calls the word endpoint with RapidAPI credentials.
type Client struct {
	baseURL    string
	apiKey     string
	host       string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a word client. A zero timeout leaves the transport default.
func NewClient(baseURL, apiKey, host string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		host:       host,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type wordResponse struct {
	Word          string `json:"word"`
	Definition    string `json:"definition"`
	Pronunciation string `json:"pronunciation"`
}

// FetchRandomWord performs a single GET and returns the first word in the response.
func (c *Client) FetchRandomWord(ctx context.Context) (model.WordRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, http.NoBody)
	if err != nil {
		return model.WordRecord{}, fmt.Errorf("%w: create request: %v", ErrRemoteFetchFailed, err)
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerAPIHost, c.host)

	c.logger.Debug("fetching random word", "url", c.baseURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.WordRecord{}, fmt.Errorf("%w: %v", ErrRemoteFetchFailed, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return model.WordRecord{}, fmt.Errorf("%w: status %d: %s", ErrRemoteFetchFailed, resp.StatusCode, body)
	}

	var words []wordResponse
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return model.WordRecord{}, fmt.Errorf("%w: decode response: %v", ErrRemoteFetchFailed, err)
	}
	if len(words) == 0 || words[0].Word == "" {
		return model.WordRecord{}, fmt.Errorf("%w: response contained no word", ErrRemoteFetchFailed)
	}

	w := words[0]
	c.logger.Debug("fetched random word", "length", len([]rune(w.Word)))
	return model.WordRecord{
		Spelling:      w.Word,
		Definition:    w.Definition,
		Pronunciation: w.Pronunciation,
	}, nil
}
