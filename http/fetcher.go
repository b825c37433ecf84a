// Package http provides the aidedd.org page fetcher and spell filter
// resolver over net/http.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/spellcards"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Default aidedd.org endpoints.
const (
	DefaultSpellURL  = "https://www.aidedd.org/dnd/sorts.php"
	DefaultItemURL   = "https://www.aidedd.org/dnd/om.php"
	DefaultFeatURL   = "https://www.aidedd.org/dnd/dons.php"
	DefaultFilterURL = "https://www.aidedd.org/dnd-filters/sorts.php"
)

// DefaultUserAgent identifies the scraper to the site.
const DefaultUserAgent = "spellcards/1.0 (+https://github.com/fwojciec/spellcards)"

// Ensure Fetcher implements spellcards.Fetcher at compile time.
var _ spellcards.Fetcher = (*Fetcher)(nil)

// settings holds the configuration shared by Fetcher and FilterResolver.
type settings struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   spellcards.HostLimiter
	baseURLs  map[spellcards.Kind]string
	filterURL string
}

// Option configures a Fetcher or FilterResolver.
type Option func(*settings)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
// Ignored when a client is set with WithClient.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.timeout = d
	}
}

// WithClient sets the HTTP client used for requests.
func WithClient(c *http.Client) Option {
	return func(s *settings) {
		s.client = c
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(s *settings) {
		s.userAgent = ua
	}
}

// WithLimiter rate limits requests per host.
func WithLimiter(l spellcards.HostLimiter) Option {
	return func(s *settings) {
		s.limiter = l
	}
}

// WithBaseURLs overrides the page endpoint of the given kinds.
func WithBaseURLs(urls map[spellcards.Kind]string) Option {
	return func(s *settings) {
		for kind, u := range urls {
			s.baseURLs[kind] = u
		}
	}
}

// WithFilterURL overrides the spell filter endpoint.
func WithFilterURL(u string) Option {
	return func(s *settings) {
		s.filterURL = u
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		baseURLs: map[spellcards.Kind]string{
			spellcards.KindSpell: DefaultSpellURL,
			spellcards.KindItem:  DefaultItemURL,
			spellcards.KindFeat:  DefaultFeatURL,
		},
		filterURL: DefaultFilterURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: s.timeout}
	}
	return s
}

// do sends req after waiting for the host limiter and returns the body of
// a 2xx response. Other statuses yield a *spellcards.RequestError.
func (s *settings) do(req *http.Request) (string, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(req.Context(), req.URL.Host); err != nil {
			return "", err
		}
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &spellcards.RequestError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Fetcher retrieves entity pages with plain GET requests. The site is
// static, so no JavaScript rendering is needed.
type Fetcher struct {
	*settings
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	return &Fetcher{settings: newSettings(opts)}
}

// Fetch retrieves the page of id. French pages are addressed with the vf
// query parameter and English pages with vo.
func (f *Fetcher) Fetch(ctx context.Context, kind spellcards.Kind, id spellcards.Identifier) (string, error) {
	u, err := f.PageURL(kind, id)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	return f.do(req)
}

// PageURL returns the address of the page of id.
func (f *Fetcher) PageURL(kind spellcards.Kind, id spellcards.Identifier) (string, error) {
	base, ok := f.baseURLs[kind]
	if !ok {
		return "", spellcards.Errorf(spellcards.EINVALID, "no endpoint for kind %q", kind)
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid %s endpoint %q: %w", kind, base, err)
	}
	q := u.Query()
	q.Set(queryParam(id.Lang), id.Slug)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func queryParam(lang spellcards.Language) string {
	if lang == spellcards.French {
		return "vf"
	}
	return "vo"
}
