package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTMLBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/old":
			http.Redirect(w, r, "/article", http.StatusMovedPermanently)
		case "/article":
			_, _ = io.WriteString(w, "<html><body><p>hello</p></body></html>")
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	f := NewFetcher(5 * time.Second)

	page, err := f.GetHTMLBytes(context.Background(), srv.URL+"/old")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/article", page.URL)
	assert.Contains(t, string(page.HTML), "<p>hello</p>")

	_, err = f.GetHTMLBytes(context.Background(), srv.URL+"/missing")
	assert.ErrorContains(t, err, "status code: 404")
}
