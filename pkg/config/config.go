// Package config holds renderer configuration: the user-visible section
// labels and document-level presentation settings. Configuration loads
// from YAML so deployments can relabel sections without rebuilding.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full renderer configuration.
type Config struct {
	// Title is the document title for page-level output.
	Title string `yaml:"title" json:"title"`

	// Theme selects the stylesheet variant: "light", "dark", or "auto".
	Theme string `yaml:"theme" json:"theme"`

	// Labels are the fixed strings rendered around audit content.
	Labels Labels `yaml:"labels" json:"labels"`
}

// Labels are the fixed UI strings. Every field has a compiled-in default;
// a YAML file overrides only the fields it names.
type Labels struct {
	// PassedAudits heads the collapsed section of passing audits.
	PassedAudits string `yaml:"passed_audits" json:"passed_audits"`

	// NotApplicable heads the collapsed section of audits that did not
	// apply to the page.
	NotApplicable string `yaml:"not_applicable" json:"not_applicable"`

	// ManualChecks heads the section of checks the reader performs
	// themselves.
	ManualChecks string `yaml:"manual_checks" json:"manual_checks"`

	// ErrorBadge is the badge text on an errored audit.
	ErrorBadge string `yaml:"error_badge" json:"error_badge"`

	// MissingAuditInfo is the tooltip for an errored audit that carries
	// no error message of its own.
	MissingAuditInfo string `yaml:"missing_audit_info" json:"missing_audit_info"`

	// ScoreUnavailable is the tooltip on a gauge with no score.
	ScoreUnavailable string `yaml:"score_unavailable" json:"score_unavailable"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		Title: "Audit report",
		Theme: "auto",
		Labels: Labels{
			PassedAudits:     "Passed audits",
			NotApplicable:    "Not applicable",
			ManualChecks:     "Additional items to manually check",
			ErrorBadge:       "Error!",
			MissingAuditInfo: "Report error: no audit information",
			ScoreUnavailable: "The score is unavailable for this category",
		},
	}
}

// Load reads a YAML config file and merges it over the defaults. An
// empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values that have a closed domain.
func (c *Config) Validate() error {
	switch c.Theme {
	case "light", "dark", "auto":
		return nil
	default:
		return fmt.Errorf("config: unknown theme %q (want light, dark, or auto)", c.Theme)
	}
}
