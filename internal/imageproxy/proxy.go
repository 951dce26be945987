package imageproxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	// ErrInvalidFileID marks a file id that fails the shape check.
	ErrInvalidFileID = errors.New("invalid file id")

	// ErrUpstreamUnavailable marks a failed upstream fetch. There is no
	// placeholder fallback for images.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

const (
	// DefaultBaseURL is the Drive direct-content endpoint.
	DefaultBaseURL = "https://drive.google.com/uc"

	// DefaultTTL is how long fetched images stay cached. Eviction is by
	// expiry only; there is no invalidation API.
	DefaultTTL = time.Hour

	cacheSweepInterval = 10 * time.Minute
	fetchTimeout       = 30 * time.Second

	// Drive serves some requests differently without a browser UA.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

var fileIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Image is one proxied file.
type Image struct {
	Body        []byte
	ContentType string
}

// Proxy fetches Drive files by id and serves them to the frontend, which
// cannot load them directly because of CORS. Successful fetches are cached
// per file id. Concurrent misses on the same id may fetch twice; both
// writes store the same bytes, so the cache stays consistent either way.
type Proxy struct {
	baseURL string
	client  *http.Client
	cache   *cache.Cache
}

// New creates a proxy. baseURL is a struct field so tests can point it at a
// local server.
func New(baseURL string, ttl time.Duration) *Proxy {
	return &Proxy{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: fetchTimeout,
		},
		cache: cache.New(ttl, cacheSweepInterval),
	}
}

// Fetch returns the image for a file id, from cache when fresh.
func (p *Proxy) Fetch(ctx context.Context, fileID string) (*Image, error) {
	if !fileIDPattern.MatchString(fileID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFileID, fileID)
	}

	if cached, ok := p.cache.Get(fileID); ok {
		return cached.(*Image), nil
	}

	img, err := p.fetchUpstream(ctx, fileID)
	if err != nil {
		return nil, err
	}
	p.cache.Set(fileID, img, cache.DefaultExpiration)
	return img, nil
}

func (p *Proxy) fetchUpstream(ctx context.Context, fileID string) (*Image, error) {
	url := fmt.Sprintf("%s?export=view&id=%s", p.baseURL, fileID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream returned %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		// Drive occasionally answers with HTML wrappers; the frontend
		// only ever asks for images.
		contentType = "image/jpeg"
	}

	return &Image{Body: body, ContentType: contentType}, nil
}
