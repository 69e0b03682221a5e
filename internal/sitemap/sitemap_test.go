package sitemap

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

const namespacedSitemap = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/</loc><lastmod>2025-01-01</lastmod><changefreq>daily</changefreq><priority>1.0</priority></url>
  <url><loc>https://example.com/vdp/OLD1/Used-2015-Ford-Focus/</loc><lastmod>2025-01-01</lastmod></url>
  <url><loc>https://example.com/vdp/OLD2/Used-2016-Honda-Civic/</loc><lastmod>2025-01-01</lastmod></url>
</urlset>
`

type parsedSet struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []struct {
		Loc        string `xml:"loc"`
		Lastmod    string `xml:"lastmod"`
		Changefreq string `xml:"changefreq"`
		Priority   string `xml:"priority"`
	} `xml:"url"`
}

func TestMerge_ReplacesOnlyVDPEntries(t *testing.T) {
	doc, err := Parse([]byte(namespacedSitemap))
	require.NoError(t, err)
	require.Equal(t, 3, doc.Len())
	require.Equal(t, "http://www.sitemaps.org/schemas/sitemap/0.9", doc.Namespace)

	newURLs := []string{
		"https://example.com/vdp/A1/Used-2017-Chevrolet-Silverado/",
		"https://example.com/vdp/B2/Used-2019-Ford-F-150/",
		"https://example.com/vdp/C3/Used-2020-Toyota-Tacoma/",
	}
	out := doc.Merge(newURLs, today)

	var set parsedSet
	require.NoError(t, xml.Unmarshal(out, &set))
	require.Len(t, set.URLs, 4, "1 preserved + 3 new")

	// Preserved entry first, untouched.
	require.Equal(t, "https://example.com/", set.URLs[0].Loc)
	require.Equal(t, "2025-01-01", set.URLs[0].Lastmod)
	require.Equal(t, "daily", set.URLs[0].Changefreq)
	require.Equal(t, "1.0", set.URLs[0].Priority)

	// New entries follow in generation order with today's date.
	for i, u := range newURLs {
		got := set.URLs[i+1]
		require.Equal(t, u, got.Loc)
		require.Equal(t, "2026-03-14", got.Lastmod)
		require.Equal(t, ChangeFreq, got.Changefreq)
		require.Equal(t, Priority, got.Priority)
	}

	// Namespace declaration survives.
	require.Contains(t, string(out), `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
}

func TestMerge_PreservedEntryIsByteIdentical(t *testing.T) {
	doc, err := Parse([]byte(namespacedSitemap))
	require.NoError(t, err)
	out := string(doc.Merge(nil, today))
	require.Contains(t, out,
		"<loc>https://example.com/</loc><lastmod>2025-01-01</lastmod><changefreq>daily</changefreq><priority>1.0</priority>")
}

func TestParse_WithoutNamespace(t *testing.T) {
	doc, err := Parse([]byte(`<?xml version="1.0"?><urlset><url><loc>https://a/</loc></url></urlset>`))
	require.NoError(t, err)
	require.Empty(t, doc.Namespace)

	out := string(doc.Merge([]string{"https://a/vdp/X/slug/"}, today))
	require.True(t, strings.HasPrefix(strings.SplitN(out, "\n", 2)[1], "<urlset>"), "no xmlns fabricated: %s", out)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`<urlset><url>`))
	require.Error(t, err)

	_, err = Parse([]byte(`<sitemapindex></sitemapindex>`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "want urlset")
}

func TestParse_PrefixedNamespaceRejected(t *testing.T) {
	prefixed := `<?xml version="1.0" encoding="UTF-8"?>
<sm:urlset xmlns:sm="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sm:url><sm:loc>https://example.com/</sm:loc></sm:url>
</sm:urlset>
`
	// Preserved entries would keep their sm: prefixes while the emitted
	// root declares no such prefix, so this document cannot be merged.
	_, err := Parse([]byte(prefixed))
	require.Error(t, err)
	require.Contains(t, err.Error(), "prefix")

	dir := t.TempDir()
	path := filepath.Join(dir, "sitemap.xml")
	require.NoError(t, os.WriteFile(path, []byte(prefixed), 0o644))
	err = Update(path, []string{"https://example.com/vdp/X/slug/"}, today)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoSitemap)

	after, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	require.Equal(t, prefixed, string(after), "prefixed sitemap left untouched")
}

func TestMerge_EscapesURLs(t *testing.T) {
	doc := &Document{}
	out := string(doc.Merge([]string{"https://example.com/vdp/X/a&b/"}, today))
	require.Contains(t, out, "a&amp;b")
}

func TestUpdate_MissingFileIsDistinctNoOp(t *testing.T) {
	err := Update(filepath.Join(t.TempDir(), "sitemap.xml"), []string{"https://a/vdp/X/"}, today)
	require.ErrorIs(t, err, ErrNoSitemap)
}

func TestUpdate_MalformedFileLeftUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sitemap.xml")
	garbage := []byte("<urlset><url></oops>")
	require.NoError(t, os.WriteFile(path, garbage, 0o644))

	err := Update(path, []string{"https://a/vdp/X/"}, today)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoSitemap)

	after, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	require.Equal(t, garbage, after, "failed update must not modify the file")

	entries, readDirErr := os.ReadDir(dir)
	require.NoError(t, readDirErr)
	require.Len(t, entries, 1, "no temp files left behind")
}

func TestUpdate_RewritesInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sitemap.xml")
	require.NoError(t, os.WriteFile(path, []byte(namespacedSitemap), 0o644))

	urls := []string{"https://example.com/vdp/NEW/Used-2022-Ram-1500/"}
	require.NoError(t, Update(path, urls, today))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var set parsedSet
	require.NoError(t, xml.Unmarshal(data, &set))
	require.Len(t, set.URLs, 2)
	require.Equal(t, "https://example.com/", set.URLs[0].Loc)
	require.Equal(t, urls[0], set.URLs[1].Loc)

	// Idempotent for a fixed date: a second run produces identical bytes.
	require.NoError(t, Update(path, urls, today))
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, data, again)
}
