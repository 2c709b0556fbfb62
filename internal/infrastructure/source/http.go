package source

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/infrastructure/jsoncodec"
	"github.com/bnema/clonecfg/internal/logging"
)

const (
	defaultHTTPTimeout = 15 * time.Second

	// Remote configurations are small; anything larger is rejected.
	maxBodySize = 16 * 1024 * 1024
)

// StatusError is returned for a non-2xx response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to load configuration (status: %d)", e.StatusCode)
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHeaders adds request headers, e.g. an API key.
func WithHeaders(headers map[string]string) HTTPOption {
	return func(s *HTTPSource) {
		for k, v := range headers {
			s.headers[k] = v
		}
	}
}

// WithTimeout sets the per-request client timeout.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSource) {
		if d > 0 {
			s.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		s.client = c
	}
}

// HTTPSource fetches a configuration document with GET.
type HTTPSource struct {
	url       string
	headers   map[string]string
	client    *http.Client
	randInt63 func(n int64) int64
	sleep     func(ctx context.Context, d time.Duration) error
}

// NewHTTPSource creates a source for url.
func NewHTTPSource(url string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		url:       url,
		headers:   make(map[string]string),
		client:    &http.Client{Timeout: defaultHTTPTimeout},
		randInt63: rand.Int63n,
		sleep:     waitForBackoff,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the URL.
func (s *HTTPSource) Location() string {
	return s.url
}

// Load fetches and decodes the document. Transient failures are retried;
// any final non-2xx status yields a *StatusError.
func (s *HTTPSource) Load(ctx context.Context) (*entity.Configuration, error) {
	log := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	resp, err := doRequestWithRetry(ctx, s.client, req, s.sleep, s.randInt63)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch configuration: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Debug().Err(cerr).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(data) > maxBodySize {
		return nil, fmt.Errorf("configuration exceeds %d bytes", maxBodySize)
	}

	log.Debug().Str("url", s.url).Int("bytes", len(data)).Msg("fetched remote configuration")
	return jsoncodec.DecodeConfiguration(jsoncodec.UnwrapEnvelope(data))
}
