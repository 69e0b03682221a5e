package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration for a dealership site build.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Dealer    DealerConfig    `yaml:"dealer"`
	Inventory InventoryConfig `yaml:"inventory"`
	Output    OutputConfig    `yaml:"output"`
	Sitemap   SitemapConfig   `yaml:"sitemap"`
	State     StateConfig     `yaml:"state,omitempty"`
}

// SiteConfig describes the published site the generated pages belong to.
type SiteConfig struct {
	BaseURL string `yaml:"base_url"`
	// AssetPrefix is the relative prefix from a generated page back to the
	// site root. Pages live three levels deep (vdp/<id>/<slug>/).
	AssetPrefix string `yaml:"asset_prefix,omitempty"`
}

// DealerConfig carries the dealership identity rendered into every page
// and into the schema.org seller block.
type DealerConfig struct {
	Name   string `yaml:"name"`
	Phone  string `yaml:"phone,omitempty"`
	Street string `yaml:"street,omitempty"`
	City   string `yaml:"city"`
	State  string `yaml:"state"`
	Zip    string `yaml:"zip"`
}

// InventoryConfig selects the inventory feed and the record filter policy.
//
// FilterStatus selects between the two selection policies this generator
// has shipped with: when false (the default) every record in the feed is
// processed; when true only records whose status is "available" or empty
// pass.
type InventoryConfig struct {
	Path         string `yaml:"path"`
	FilterStatus bool   `yaml:"filter_status,omitempty"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// SitemapConfig controls the sitemap merge step, which runs by default.
type SitemapConfig struct {
	Skip bool   `yaml:"skip,omitempty"`
	Path string `yaml:"path,omitempty"` // defaults to <output>/sitemap.xml
}

// StateConfig enables the incremental page-hash store. An empty path
// disables it.
type StateConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	// Load .env if present; existing process env wins.
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment variables from .env")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields with the values the original site
// shipped with.
func (c *Config) ApplyDefaults() {
	if c.Inventory.Path == "" {
		c.Inventory.Path = "inventory.json"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "."
	}
	if c.Site.AssetPrefix == "" {
		c.Site.AssetPrefix = "../../../"
	}
	if c.Site.BaseURL == "" {
		c.Site.BaseURL = "https://bellsforkautoandtruck.com"
	}
	c.Site.BaseURL = strings.TrimRight(c.Site.BaseURL, "/")
	if c.Dealer.Name == "" {
		c.Dealer.Name = "Bells Fork Auto & Truck"
	}
	if c.Dealer.City == "" {
		c.Dealer.City = "Greenville"
	}
	if c.Dealer.State == "" {
		c.Dealer.State = "NC"
	}
	if c.Dealer.Zip == "" {
		c.Dealer.Zip = "27858"
	}
}

// Validate checks invariants that would otherwise surface mid-build.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Site.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("site.base_url must be an absolute URL, got %q", c.Site.BaseURL)
	}
	return nil
}

// SitemapPath resolves the sitemap file location for this configuration.
func (c *Config) SitemapPath() string {
	if c.Sitemap.Path != "" {
		return c.Sitemap.Path
	}
	return filepath.Join(c.Output.Directory, "sitemap.xml")
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Config{
		Site: SiteConfig{BaseURL: "https://example-motors.com"},
		Dealer: DealerConfig{
			Name:   "Example Motors",
			Phone:  "+1-555-000-0000",
			Street: "100 Main St",
			City:   "Greenville",
			State:  "NC",
			Zip:    "27858",
		},
		Inventory: InventoryConfig{Path: "inventory.json"},
		Output:    OutputConfig{Directory: "."},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
