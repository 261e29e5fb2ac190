package image

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tokoaplikasi/avatar-api/internal/model/avatar"
)

var (
	ErrNotFound = errors.New("avatar not found")
	ErrUpstream = errors.New("upstream fetch failed")
)

// Proxy fetches avatar image bytes from the remote file server and relays
// them. Lookup is exact-match only; the listing fallback of the query
// service does not apply here.
type Proxy struct {
	store  avatar.Store
	client *http.Client
}

// NewProxy builds a Proxy with a bounded fetch timeout.
func NewProxy(store avatar.Store, timeout time.Duration) *Proxy {
	return &Proxy{
		store:  store,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch resolves name against the catalog index and performs one outbound
// GET for its image. The request context cancels the fetch. Network errors
// and non-2xx upstream responses both surface as ErrUpstream.
func (p *Proxy) Fetch(ctx context.Context, name string) ([]byte, error) {
	a, ok := p.store.FindByName(name)
	if !ok {
		return nil, ErrNotFound
	}

	fetchID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.ImageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[image] fetch=%s avatar=%q error: %v", fetchID, a.Name, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[image] fetch=%s avatar=%q upstream status %d", fetchID, a.Name, resp.StatusCode)
		return nil, fmt.Errorf("%w: upstream status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[image] fetch=%s avatar=%q read error: %v", fetchID, a.Name, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return body, nil
}
