package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCmd_FlagsOnly(t *testing.T) {
	dir := t.TempDir()
	invPath := filepath.Join(dir, "inventory.json")
	feed := `{"vehicles":[{"year":2017,"make":"Chevrolet","model":"Silverado","trim":"LTZ","stockNumber":"D2601"}]}`
	require.NoError(t, os.WriteFile(invPath, []byte(feed), 0o644))

	root := &CLI{Config: filepath.Join(dir, "missing.yaml")}
	cmd := &BuildCmd{
		Inventory: invPath,
		Out:       dir,
		SiteURL:   "https://example-motors.com",
		City:      "Greenville",
		State:     "NC",
		Zip:       "27858",
	}
	require.NoError(t, cmd.Run(&Global{}, root))

	require.FileExists(t, filepath.Join(dir,
		"vdp", "D2601", "Used-2017-Chevrolet-Silverado-LTZ-for-sale-in-Greenville-NC-27858", "index.html"))
}

func TestBuildCmd_FailsOnMissingInventory(t *testing.T) {
	dir := t.TempDir()
	root := &CLI{Config: filepath.Join(dir, "missing.yaml")}
	cmd := &BuildCmd{Inventory: filepath.Join(dir, "absent.json"), Out: dir}
	require.Error(t, cmd.Run(&Global{}, root))
}

func TestInitCmd_WritesConfig(t *testing.T) {
	dir := t.TempDir()
	root := &CLI{Config: filepath.Join(dir, "config.yaml")}
	require.NoError(t, (&InitCmd{}).Run(&Global{}, root))
	require.FileExists(t, root.Config)

	// A build can now load the generated config.
	_, err := loadConfig(root)
	require.NoError(t, err)
}
