// Package sitemap merges generated vehicle-page URLs into an existing
// sitemap.xml.
//
// The merge is a set replacement scoped to /vdp/ entries: every <url>
// whose <loc> contains "/vdp/" is dropped and the current run's URLs are
// appended, while all other entries pass through byte-for-byte in their
// original order. The document's namespace declaration (or its absence)
// is reused as-is; a document binding its namespace to a prefix is
// rejected rather than re-emitted without the prefix's declaration.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Fixed values stamped on every generated entry.
const (
	ChangeFreq = "weekly"
	Priority   = "0.6"
)

// ErrNoSitemap signals that no sitemap file exists. Callers treat this
// as a no-op, not a failure; a sitemap is never fabricated.
var ErrNoSitemap = errors.New("sitemap file does not exist")

// Document is a parsed sitemap ready for merging.
type Document struct {
	// Namespace is the default xmlns of the root element, empty when the
	// document declares none.
	Namespace string
	entries   []entry
}

// entry is one <url> element. Raw holds the element's inner XML
// verbatim so preserved entries survive the round trip untouched.
type entry struct {
	loc string
	raw string
}

type urlsetXML struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []struct {
		Loc   string `xml:"loc"`
		Inner string `xml:",innerxml"`
	} `xml:"url"`
}

// Parse decodes an existing sitemap document.
func Parse(data []byte) (*Document, error) {
	var set urlsetXML
	if err := xml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse sitemap: %w", err)
	}
	if set.XMLName.Local != "urlset" {
		return nil, fmt.Errorf("parse sitemap: root element is %q, want urlset", set.XMLName.Local)
	}
	// Preserved entries are re-emitted verbatim, so a document that binds
	// its namespace to a prefix cannot be merged without unbinding the
	// prefixes inside them. Refuse it rather than emit ill-formed XML.
	if set.XMLName.Space != "" && !hasDefaultNamespace(data, set.XMLName.Space) {
		return nil, fmt.Errorf("parse sitemap: urlset binds namespace %q to a prefix", set.XMLName.Space)
	}
	doc := &Document{Namespace: set.XMLName.Space}
	for _, u := range set.URLs {
		doc.entries = append(doc.entries, entry{loc: strings.TrimSpace(u.Loc), raw: u.Inner})
	}
	return doc, nil
}

// hasDefaultNamespace reports whether the root element declares space
// through a default xmlns attribute rather than an xmlns:prefix one.
func hasDefaultNamespace(data []byte, space string) bool {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		for _, a := range se.Attr {
			if a.Name.Space == "" && a.Name.Local == "xmlns" && a.Value == space {
				return true
			}
		}
		return false
	}
}

// Merge replaces the document's /vdp/ entries with urls (in order) and
// serializes the result. Each new entry carries today's date, the fixed
// change frequency and the fixed priority.
func (d *Document) Merge(urls []string, today time.Time) []byte {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if d.Namespace != "" {
		fmt.Fprintf(&buf, "<urlset xmlns=%q>\n", d.Namespace)
	} else {
		buf.WriteString("<urlset>\n")
	}
	for _, e := range d.entries {
		if strings.Contains(e.loc, "/vdp/") {
			continue
		}
		buf.WriteString("  <url>")
		buf.WriteString(e.raw)
		buf.WriteString("</url>\n")
	}
	date := today.Format("2006-01-02")
	for _, u := range urls {
		buf.WriteString("  <url><loc>")
		_ = xml.EscapeText(&buf, []byte(u))
		buf.WriteString("</loc><lastmod>")
		buf.WriteString(date)
		buf.WriteString("</lastmod><changefreq>")
		buf.WriteString(ChangeFreq)
		buf.WriteString("</changefreq><priority>")
		buf.WriteString(Priority)
		buf.WriteString("</priority></url>\n")
	}
	buf.WriteString("</urlset>\n")
	return buf.Bytes()
}

// Len returns the number of entries currently in the document.
func (d *Document) Len() int { return len(d.entries) }

// Update merges urls into the sitemap at path. A missing file returns
// ErrNoSitemap (a no-op for callers). The write is atomic: the updated
// document lands via temp file + rename, so a failed update never leaves
// a partial sitemap behind.
func Update(path string, urls []string, today time.Time) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoSitemap
		}
		return fmt.Errorf("read sitemap %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return err
	}
	return writeAtomic(path, doc.Merge(urls, today))
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp sitemap: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp sitemap: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp sitemap: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod temp sitemap: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace sitemap: %w", err)
	}
	return nil
}
