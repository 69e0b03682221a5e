package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_Exposition(t *testing.T) {
	r := NewPrometheusRecorder()
	r.PagesGenerated(12)
	r.PagesSkipped(3)
	r.BuildCompleted(250*time.Millisecond, true)
	r.BuildCompleted(10*time.Millisecond, false)
	r.SitemapUpdated()

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := string(body)
	require.Contains(t, out, "vdpbuilder_pages_generated_total 12")
	require.Contains(t, out, "vdpbuilder_pages_skipped_total 3")
	require.Contains(t, out, `vdpbuilder_builds_total{outcome="success"} 1`)
	require.Contains(t, out, `vdpbuilder_builds_total{outcome="failure"} 1`)
	require.Contains(t, out, "vdpbuilder_sitemap_updates_total 1")
}

func TestNoopRecorder_Implements(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.PagesGenerated(1)
	r.PagesSkipped(1)
	r.BuildCompleted(time.Second, true)
	r.SitemapUpdated()
}
