// Package render produces the standalone HTML document for one vehicle.
//
// Every vehicle field is optional; absent fields render a visible
// placeholder rather than an empty layout. The document embeds a
// schema.org Car/Offer/AutoDealer JSON-LD block for search engines.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/bellsfork/vdpbuilder/internal/config"
	"github.com/bellsfork/vdpbuilder/internal/inventory"
)

// Placeholder shown for absent vehicle fields.
const Placeholder = "—"

// Renderer renders vehicle detail pages for one dealership site.
type Renderer struct {
	dealer      config.DealerConfig
	assetPrefix string
	tmpl        *template.Template
	md          goldmark.Markdown
	sanitize    *bluemonday.Policy
}

// New creates a Renderer. assetPrefix is the relative path from a
// generated page back to the site root.
func New(dealer config.DealerConfig, assetPrefix string) (*Renderer, error) {
	tmpl, err := template.New("vdp").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Renderer{
		dealer:      dealer,
		assetPrefix: assetPrefix,
		tmpl:        tmpl,
		md:          goldmark.New(),
		sanitize:    bluemonday.UGCPolicy(),
	}, nil
}

type image struct {
	Src    string
	Index  int
	Number int
	Active bool
}

type pageData struct {
	Title       string
	FullTitle   string
	Year        string
	Make        string
	Model       string
	Trim        string
	VIN         string
	Stock       string
	PriceStr    string
	MilesStr    string
	MilesShort  string
	Trans       string
	Engine      string
	Drive       string
	Fuel        string
	ExtColor    string
	IntColor    string
	BodyType    string
	Badge       string
	Description template.HTML
	Features    []string
	Images      []image
	PageURL     string
	AssetPrefix string
	Dealer      config.DealerConfig
	Schema      template.JS
}

// Render produces the full HTML document for a vehicle published at
// pageURL. Output is deterministic for a given record.
func (r *Renderer) Render(v *inventory.Vehicle, pageURL string) ([]byte, error) {
	title := joinNonEmpty(v.Year.String(), v.Make.String(), v.Model.String())
	fullTitle := joinNonEmpty(title, v.Trim.String())

	d := pageData{
		Title:       title,
		FullTitle:   fullTitle,
		Year:        orPlaceholder(v.Year.String()),
		Make:        orPlaceholder(v.Make.String()),
		Model:       orPlaceholder(v.Model.String()),
		Trim:        v.Trim.String(),
		VIN:         v.VIN.String(),
		Stock:       firstOr(Placeholder, v.StockNumber.String(), v.VIN.String()),
		PriceStr:    FormatPrice(v.Price),
		MilesStr:    FormatMileage(v.Mileage),
		MilesShort:  FormatInt(v.Mileage),
		Trans:       orPlaceholder(v.Transmission.String()),
		Engine:      firstOr(Placeholder, v.Engine.String(), v.EngineSpecs.String()),
		Drive:       firstOr(Placeholder, v.Drive.String(), v.Drivetrain.String()),
		Fuel:        firstOr(Placeholder, v.Fuel.String(), v.FuelType.String()),
		ExtColor:    firstOr(Placeholder, v.ExteriorColor.String(), v.Color.String()),
		IntColor:    orPlaceholder(v.InteriorColor.String()),
		BodyType:    firstOr(Placeholder, v.Type.String(), v.BodyStyle.String()),
		Badge:       v.Badge.String(),
		Description: r.describeHTML(v.Description.String()),
		Features:    v.Features,
		PageURL:     pageURL,
		AssetPrefix: r.assetPrefix,
		Dealer:      r.dealer,
	}

	for i, img := range v.Images {
		d.Images = append(d.Images, image{
			Src:    r.assetPrefix + "assets/vehicles/" + img,
			Index:  i,
			Number: i + 1,
			Active: i == 0,
		})
	}

	schema, err := r.schemaJSON(v, fullTitle, pageURL)
	if err != nil {
		return nil, err
	}
	d.Schema = template.JS(schema)

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("render page for %s: %w", fullTitle, err)
	}
	return buf.Bytes(), nil
}

// describeHTML renders the description as markdown and sanitizes the
// result. Plain text passes through as a paragraph.
func (r *Renderer) describeHTML(desc string) template.HTML {
	if desc == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(desc), &buf); err != nil {
		// Fall back to escaped plain text on a conversion failure.
		return template.HTML("<p>" + template.HTMLEscapeString(desc) + "</p>")
	}
	return template.HTML(r.sanitize.SanitizeBytes(buf.Bytes()))
}

// parseAmount parses a feed number into a whole amount. ParseFloat
// accepts "NaN" and "Inf", which convert to garbage int64 values, so
// anything non-finite (or beyond int64) is rejected here.
func parseAmount(s string) (int64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// FormatPrice renders a feed price as "$24,995", or "Call for Price"
// when absent or unparsable.
func FormatPrice(t inventory.Text) string {
	n, ok := parseAmount(t.String())
	if !ok {
		return "Call for Price"
	}
	return "$" + humanize.Comma(n)
}

// FormatInt renders a feed number with thousands grouping, or the
// placeholder when absent or unparsable.
func FormatInt(t inventory.Text) string {
	n, ok := parseAmount(t.String())
	if !ok {
		return Placeholder
	}
	return humanize.Comma(n)
}

// FormatMileage renders "88,123 miles", or "Mileage N/A" when the field
// is absent or zero.
func FormatMileage(t inventory.Text) string {
	s := t.String()
	if s == "" || s == "0" {
		return "Mileage N/A"
	}
	return FormatInt(t) + " miles"
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

func firstOr(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return fallback
}
