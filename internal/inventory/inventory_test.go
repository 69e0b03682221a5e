package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_ToleratesMixedScalarTypes(t *testing.T) {
	data := []byte(`{"vehicles":[
		{"year":2017,"make":"Chevrolet","model":"Silverado","price":"24995","mileage":88123.0},
		{"year":"2020","stockNumber":12345,"features":"One Owner"}
	]}`)

	vehicles, err := Parse(data, "inventory.json")
	require.NoError(t, err)
	require.Len(t, vehicles, 2)

	require.Equal(t, "2017", vehicles[0].Year.String())
	require.Equal(t, "24995", vehicles[0].Price.String())
	require.Equal(t, "88123", vehicles[0].Mileage.String())

	require.Equal(t, "2020", vehicles[1].Year.String())
	require.Equal(t, "12345", vehicles[1].StockNumber.String())
	require.Equal(t, []string{"One Owner"}, []string(vehicles[1].Features))
}

func TestParse_MissingVehiclesField(t *testing.T) {
	_, err := Parse([]byte(`{"cars":[]}`), "inventory.json")
	require.Error(t, err)
	require.Contains(t, err.Error(), `missing "vehicles"`)
}

func TestParse_VehiclesNotAList(t *testing.T) {
	_, err := Parse([]byte(`{"vehicles":{"oops":true}}`), "inventory.json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a list")
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"vehicles": [`), "inventory.json")
	require.Error(t, err)
}

func TestSelect_FilterPolicies(t *testing.T) {
	vehicles := []Vehicle{
		{StockNumber: "A1"},                      // no status: available
		{StockNumber: "A2", Status: "Available"}, // case-insensitive
		{StockNumber: "A3", Status: "sold"},
	}

	require.Len(t, Select(vehicles, false), 3, "default policy passes everything")

	filtered := Select(vehicles, true)
	require.Len(t, filtered, 2)
	require.Equal(t, "A1", filtered[0].StockNumber.String())
	require.Equal(t, "A2", filtered[1].StockNumber.String())
}

func TestFirst(t *testing.T) {
	v := Vehicle{StockNumber: "D2601", ID: "999"}
	require.Equal(t, "D2601", First(v.VehicleID, v.StockNumber, v.ID))
	require.Equal(t, "", First(Text(""), Text("   ")))
}
