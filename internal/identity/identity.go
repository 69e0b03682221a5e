// Package identity derives the stable page identifier and the SEO slug
// for a vehicle record.
//
// The identifier addresses the output directory and must never leak the
// VIN; the slug is cosmetic and carries no uniqueness guarantee.
package identity

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/bellsfork/vdpbuilder/internal/inventory"
)

// Locality is the dealership location rendered into every slug.
type Locality struct {
	City  string
	State string
	Zip   string
}

// VehicleID derives the stable, non-sensitive identifier for a record.
//
// A natural identifier (vehicleId, then stockNumber, then id) is used
// when present, reduced to its ASCII letters and digits with case kept.
// Otherwise the identifier is "v" + the first 10 hex chars of
// SHA-1(seed), where the seed is the VIN when present and the canonical
// field concatenation year|make|model|trim|price|mileage|dateAdded when
// not. The VIN is only ever hash input; it never appears in the output.
func VehicleID(v *inventory.Vehicle) string {
	if natural := inventory.First(v.VehicleID, v.StockNumber, v.ID); natural != "" {
		if id := stripNonAlnum(natural); id != "" {
			return id
		}
	}
	return FallbackID(v)
}

// FallbackID computes the hashed identifier used when no usable natural
// identifier exists.
func FallbackID(v *inventory.Vehicle) string {
	seed := v.VIN.String()
	if seed == "" {
		seed = strings.Join([]string{
			v.Year.String(),
			v.Make.String(),
			v.Model.String(),
			v.Trim.String(),
			v.Price.String(),
			v.Mileage.String(),
			v.DateAdded.String(),
		}, "|")
	}
	sum := sha1.Sum([]byte(seed))
	return "v" + hex.EncodeToString(sum[:])[:10]
}

// SlugTail builds the hyphen-joined descriptive URL fragment:
// Used-<year>-<make>-<model>-<trim>-for-sale-in-<city>-<state>-<zip>.
// Absent fields are skipped; the result never has leading, trailing or
// doubled hyphens. An all-absent record yields "".
func SlugTail(v *inventory.Vehicle, loc Locality) string {
	parts := []string{
		"Used",
		v.Year.String(),
		v.Make.String(),
		v.Model.String(),
		v.Trim.String(),
		fmt.Sprintf("for-sale-in-%s-%s-%s", loc.City, loc.State, loc.Zip),
	}
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := slugToken(p); s != "" {
			clean = append(clean, s)
		}
	}
	return strings.Join(clean, "-")
}

// foldDiacritics strips combining marks so "Citroën" slugs as "Citroen"
// rather than dropping the letter.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func slugToken(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if folded, _, err := transform.String(foldDiacritics, s); err == nil {
		s = folded
	}
	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := false
	for _, r := range s {
		if isAlnum(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func stripNonAlnum(s string) string {
	return strings.Map(func(r rune) rune {
		if isAlnum(r) {
			return r
		}
		return -1
	}, s)
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
