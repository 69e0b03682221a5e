// Package metrics records build observability signals.
//
// Components take a Recorder through dependency injection and default to
// NoopRecorder, so metrics cost nothing unless a real recorder is
// wired in (the serve and watch commands install the Prometheus one).
package metrics

import "time"

// Recorder receives pipeline events.
type Recorder interface {
	// PagesGenerated counts pages written in a run.
	PagesGenerated(n int)
	// PagesSkipped counts pages left untouched because their content was
	// unchanged.
	PagesSkipped(n int)
	// BuildCompleted records one pipeline run.
	BuildCompleted(d time.Duration, success bool)
	// SitemapUpdated counts successful sitemap merges.
	SitemapUpdated()
}

// NoopRecorder is the default Recorder; every method does nothing.
type NoopRecorder struct{}

func (NoopRecorder) PagesGenerated(int)                 {}
func (NoopRecorder) PagesSkipped(int)                   {}
func (NoopRecorder) BuildCompleted(time.Duration, bool) {}
func (NoopRecorder) SitemapUpdated()                    {}
