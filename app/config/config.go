// Package config loads the scrape profile: search terms, active sources, per-source settings,
// background schedule and the system conditions required for scheduled runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

//go:generate go run ./internal/schema ../../profile-schema.json

// AllSources lists every supported job board
var AllSources = []string{"remoteok", "remotive", "jobicy", "arbeitnow"}

// DefaultSchedule is the background scrape schedule, twice a day
const DefaultSchedule = "@every 12h"

// Config is the scrape profile
type Config struct {
	SearchTerms []string          `yaml:"search_terms" json:"search_terms,omitempty" jsonschema:"description=case-insensitive terms jobs must match; empty for all jobs"`
	Sources     []string          `yaml:"sources" json:"sources,omitempty" validate:"dive,oneof=remoteok remotive jobicy arbeitnow" jsonschema:"description=active sources; empty for all"`
	Schedule    string            `yaml:"schedule" json:"schedule,omitempty" jsonschema:"description=background scrape schedule in cron format,example=@every 12h"`
	Remotive    RemotiveConfig    `yaml:"remotive" json:"remotive,omitempty"`
	Jobicy      JobicyConfig      `yaml:"jobicy" json:"jobicy,omitempty"`
	Arbeitnow   ArbeitnowConfig   `yaml:"arbeitnow" json:"arbeitnow,omitempty"`
	Conditions  *ConditionsConfig `yaml:"conditions,omitempty" json:"conditions,omitempty" jsonschema:"description=system conditions required to run a scheduled scrape"`
}

// RemotiveConfig defines remotive.com specific settings
type RemotiveConfig struct {
	Category string `yaml:"category" json:"category,omitempty" validate:"omitempty,oneof=data software-dev devops product marketing business all" jsonschema:"enum=data,enum=software-dev,enum=devops,enum=product,enum=marketing,enum=business,enum=all"`
}

// JobicyConfig defines jobicy.com specific settings
type JobicyConfig struct {
	Geo      string `yaml:"geo" json:"geo,omitempty" jsonschema:"description=region filter like usa or europe; empty for all"`
	Industry string `yaml:"industry" json:"industry,omitempty"`
	Count    int    `yaml:"count" json:"count,omitempty" validate:"omitempty,min=1,max=100" jsonschema:"minimum=1,maximum=100"`
}

// ArbeitnowConfig defines arbeitnow.com specific settings
type ArbeitnowConfig struct {
	MaxPages int `yaml:"max_pages" json:"max_pages,omitempty" validate:"omitempty,min=1,max=10" jsonschema:"minimum=1,maximum=10"`
}

// ConditionsConfig defines thresholds checked before a scheduled scrape
type ConditionsConfig struct {
	CPUBelow     *int     `yaml:"cpu_below,omitempty" json:"cpu_below,omitempty" validate:"omitempty,min=1,max=100" jsonschema:"minimum=1,maximum=100"`
	MemoryBelow  *int     `yaml:"memory_below,omitempty" json:"memory_below,omitempty" validate:"omitempty,min=1,max=100" jsonschema:"minimum=1,maximum=100"`
	LoadAvgBelow *float64 `yaml:"load_avg_below,omitempty" json:"load_avg_below,omitempty" validate:"omitempty,gt=0"`
}

// Default returns the profile used when no config file is given
func Default() *Config {
	res := &Config{
		SearchTerms: []string{"data analyst", "business intelligence", "bi engineer", "analytics engineer",
			"power bi", "data engineer", "analytics"},
	}
	res.setDefaults()
	return res
}

// Load reads and validates the profile from a yaml file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from trusted config
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	res := &Config{}
	if err := yaml.Unmarshal(data, res); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	res.setDefaults()
	if err := res.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return res, nil
}

// Validate checks field constraints and the schedule format
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on %q", e.Namespace(), e.Tag()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}
	if _, err := cron.ParseStandard(c.Schedule); err != nil {
		return fmt.Errorf("can't parse schedule %q: %w", c.Schedule, err)
	}
	return nil
}

// ActiveSources returns configured sources or all of them if none set
func (c *Config) ActiveSources() []string {
	if len(c.Sources) == 0 {
		return append([]string{}, AllSources...)
	}
	return c.Sources
}

// NextRun returns the next scheduled scrape time after from
func (c *Config) NextRun(from time.Time) time.Time {
	sched, err := cron.ParseStandard(c.Schedule)
	if err != nil {
		return time.Time{}
	}
	return sched.Next(from)
}

func (c *Config) setDefaults() {
	if c.Schedule == "" {
		c.Schedule = DefaultSchedule
	}
	if c.Remotive.Category == "" {
		c.Remotive.Category = "data"
	}
	if c.Jobicy.Count == 0 {
		c.Jobicy.Count = 50
	}
	if c.Arbeitnow.MaxPages == 0 {
		c.Arbeitnow.MaxPages = 3
	}
	terms := make([]string, 0, len(c.SearchTerms))
	for _, t := range c.SearchTerms {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	c.SearchTerms = terms
}
