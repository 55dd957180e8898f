// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// UserAgent overrides the browser User-Agent sent with the page fetch.
	// Empty keeps the built-in desktop browser string.
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// OutputFormat selects how a Resolution is rendered.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// CiteConfig holds settings for a single resolve-and-cite run.
type CiteConfig struct {
	HTTPConfig `yaml:",inline"`

	// Style is the default citation style (default "apa").
	Style string `json:"style" yaml:"style"`

	// ResolverBase is the DOI resolver prefix (default "https://doi.org/").
	ResolverBase string `json:"resolver" yaml:"resolver"`

	// Format selects the report format: text, yaml, or json.
	Format OutputFormat `json:"format" yaml:"format"`

	// Explain includes the aggregated candidate table in the report.
	Explain bool `json:"explain" yaml:"explain"`
}
