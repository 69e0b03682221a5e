package identity

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bellsfork/vdpbuilder/internal/inventory"
)

var greenville = Locality{City: "Greenville", State: "NC", Zip: "27858"}

func TestVehicleID_NaturalIdentifier(t *testing.T) {
	v := &inventory.Vehicle{
		Year: "2017", Make: "Chevrolet", Model: "Silverado", Trim: "LTZ",
		StockNumber: "D2601",
	}
	require.Equal(t, "D2601", VehicleID(v))
}

func TestVehicleID_StripsPunctuationPreservesCase(t *testing.T) {
	v := &inventory.Vehicle{VehicleID: "Ab-12.3_c"}
	require.Equal(t, "Ab123c", VehicleID(v))
}

func TestVehicleID_Priority(t *testing.T) {
	v := &inventory.Vehicle{VehicleID: "VID1", StockNumber: "STK2", ID: "ID3"}
	require.Equal(t, "VID1", VehicleID(v))
	v.VehicleID = ""
	require.Equal(t, "STK2", VehicleID(v))
	v.StockNumber = ""
	require.Equal(t, "ID3", VehicleID(v))
}

func TestVehicleID_AllPunctuationNaturalIDFallsThroughToHash(t *testing.T) {
	v := &inventory.Vehicle{StockNumber: "---", VIN: "1FTFW1E5XKFA12345"}
	id := VehicleID(v)
	require.Regexp(t, regexp.MustCompile(`^v[0-9a-f]{10}$`), id)
}

func TestVehicleID_VINHashIsStableAndNeverLeaksVIN(t *testing.T) {
	vin := "1FTFW1E5XKFA12345"
	v := &inventory.Vehicle{VIN: inventory.Text(vin)}

	first := VehicleID(v)
	second := VehicleID(v)
	require.Equal(t, first, second)
	require.NotEqual(t, vin, first)
	require.NotContains(t, first, vin)
	require.Regexp(t, regexp.MustCompile(`^v[0-9a-f]{10}$`), first)
}

func TestVehicleID_DescriptiveSeedWhenNoVIN(t *testing.T) {
	a := &inventory.Vehicle{Year: "2019", Make: "Ford", Model: "F-150", Price: "31000"}
	b := &inventory.Vehicle{Year: "2019", Make: "Ford", Model: "F-150", Price: "31000"}
	c := &inventory.Vehicle{Year: "2019", Make: "Ford", Model: "F-150", Price: "32000"}

	require.Equal(t, VehicleID(a), VehicleID(b), "identical descriptive fields collide by design")
	require.NotEqual(t, VehicleID(a), VehicleID(c))
}

func TestSlugTail_FullRecord(t *testing.T) {
	v := &inventory.Vehicle{Year: "2017", Make: "Chevrolet", Model: "Silverado", Trim: "LTZ"}
	require.Equal(t,
		"Used-2017-Chevrolet-Silverado-LTZ-for-sale-in-Greenville-NC-27858",
		SlugTail(v, greenville))
}

func TestSlugTail_CollapsesSeparatorRuns(t *testing.T) {
	v := &inventory.Vehicle{Year: "2021", Make: " Mercedes-Benz ", Model: "C 300 / 4MATIC", Trim: "  "}
	got := SlugTail(v, greenville)
	require.Equal(t, "Used-2021-Mercedes-Benz-C-300-4MATIC-for-sale-in-Greenville-NC-27858", got)
	require.NotContains(t, got, "--")
	require.False(t, strings.HasPrefix(got, "-"))
	require.False(t, strings.HasSuffix(got, "-"))
}

func TestSlugTail_FoldsDiacritics(t *testing.T) {
	v := &inventory.Vehicle{Year: "2015", Make: "Citroën", Model: "C4"}
	require.Equal(t, "Used-2015-Citroen-C4-for-sale-in-Greenville-NC-27858", SlugTail(v, greenville))
}

func TestSlugTail_AllFieldsAbsent(t *testing.T) {
	got := SlugTail(&inventory.Vehicle{}, Locality{})
	// Only the location literal survives, reduced to its fixed words.
	require.Equal(t, "Used-for-sale-in", got)
	require.NotContains(t, got, "--")
}
