package render

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bellsfork/vdpbuilder/internal/inventory"
)

// schemaJSON builds the schema.org Car JSON-LD block. The required keys
// (name, url, vehicleIdentificationNumber, mileageFromOdometer,
// offers.price, offers.priceCurrency, seller.address) are always
// present, with empty/zero fallbacks; keys whose value would be nil are
// dropped.
func (r *Renderer) schemaJSON(v *inventory.Vehicle, fullTitle, pageURL string) ([]byte, error) {
	desc := v.Description.String()
	if desc == "" {
		desc = fmt.Sprintf("Used %s for sale in %s, %s %s.",
			fullTitle, r.dealer.City, r.dealer.State, r.dealer.Zip)
	}

	var mileage any = 0
	if f, err := strconv.ParseFloat(v.Mileage.String(), 64); err == nil {
		mileage = int64(f)
	}

	price := ""
	if _, err := strconv.ParseFloat(v.Price.String(), 64); err == nil {
		price = v.Price.String()
	}

	schema := map[string]any{
		"@context":                    "https://schema.org",
		"@type":                       "Car",
		"name":                        fullTitle,
		"url":                         pageURL,
		"description":                 desc,
		"vehicleIdentificationNumber": v.VIN.String(),
		"productionDate":              v.Year.String(),
		"mileageFromOdometer": map[string]any{
			"@type":    "QuantitativeValue",
			"value":    mileage,
			"unitCode": "SMI",
		},
		"vehicleTransmission":     v.Transmission.String(),
		"driveWheelConfiguration": inventory.First(v.Drive, v.Drivetrain),
		"fuelType":                inventory.First(v.Fuel, v.FuelType),
		"color":                   inventory.First(v.ExteriorColor, v.Color),
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         price,
			"priceCurrency": "USD",
			"availability":  "https://schema.org/InStock",
			"url":           pageURL,
		},
		"seller": map[string]any{
			"@type":     "AutoDealer",
			"name":      r.dealer.Name,
			"telephone": r.dealer.Phone,
			"address": map[string]any{
				"@type":           "PostalAddress",
				"streetAddress":   r.dealer.Street,
				"addressLocality": r.dealer.City,
				"addressRegion":   r.dealer.State,
				"postalCode":      r.dealer.Zip,
				"addressCountry":  "US",
			},
		},
	}
	if !v.Make.IsZero() {
		schema["manufacturer"] = map[string]any{"@type": "Organization", "name": v.Make.String()}
	}
	if !v.Model.IsZero() {
		schema["model"] = v.Model.String()
	}

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema block: %w", err)
	}
	return out, nil
}
