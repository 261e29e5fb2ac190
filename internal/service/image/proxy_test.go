package image_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokoaplikasi/avatar-api/internal/model/avatar"
	"github.com/tokoaplikasi/avatar-api/internal/service/image"
)

func newProxy(upstreamURL string) *image.Proxy {
	store := avatar.NewMemoryStore([]avatar.Avatar{
		{Name: "Abraham Baker", ImageURL: upstreamURL + "/Abraham%20Baker.png"},
	})
	return image.NewProxy(store, 2*time.Second)
}

func TestFetchRelaysBody(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer upstream.Close()

	proxy := newProxy(upstream.URL)

	body, err := proxy.Fetch(context.Background(), "ABRAHAM BAKER")
	require.NoError(t, err)
	assert.Equal(t, payload, body)
}

func TestFetchUnknownName(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called for unknown names")
	}))
	defer upstream.Close()

	proxy := newProxy(upstream.URL)

	_, err := proxy.Fetch(context.Background(), "doesnotexist")
	assert.ErrorIs(t, err, image.ErrNotFound)
}

func TestFetchNoPartialMatch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called for partial names")
	}))
	defer upstream.Close()

	proxy := newProxy(upstream.URL)

	// The query service falls back to substring matching; the proxy must not.
	_, err := proxy.Fetch(context.Background(), "Abraham")
	assert.ErrorIs(t, err, image.ErrNotFound)
}

func TestFetchUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer upstream.Close()

	proxy := newProxy(upstream.URL)

	_, err := proxy.Fetch(context.Background(), "Abraham Baker")
	assert.ErrorIs(t, err, image.ErrUpstream)
}

func TestFetchUpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	proxy := newProxy(upstream.URL)

	_, err := proxy.Fetch(context.Background(), "Abraham Baker")
	assert.ErrorIs(t, err, image.ErrUpstream)
}

func TestFetchHonorsContextCancellation(t *testing.T) {
	release := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer upstream.Close()
	defer close(release)

	proxy := newProxy(upstream.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := proxy.Fetch(ctx, "Abraham Baker")
	assert.ErrorIs(t, err, image.ErrUpstream)
}
