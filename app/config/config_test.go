package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "jobfeed.yml")
	require.NoError(t, os.WriteFile(fname, []byte(content), 0o600))
	return fname
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Contains(t, cfg.SearchTerms, "data analyst")
	assert.Equal(t, DefaultSchedule, cfg.Schedule)
	assert.Equal(t, "data", cfg.Remotive.Category)
	assert.Equal(t, 50, cfg.Jobicy.Count)
	assert.Equal(t, 3, cfg.Arbeitnow.MaxPages)
	assert.Equal(t, AllSources, cfg.ActiveSources())
	assert.Nil(t, cfg.Conditions)
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		fname := writeConfig(t, `
search_terms: ["golang", "  ", " backend "]
sources: [remoteok, jobicy]
schedule: "0 */6 * * *"
remotive:
  category: software-dev
jobicy:
  geo: europe
  count: 20
arbeitnow:
  max_pages: 5
conditions:
  load_avg_below: 2.5
  cpu_below: 80
`)
		cfg, err := Load(fname)
		require.NoError(t, err)
		assert.Equal(t, []string{"golang", "backend"}, cfg.SearchTerms)
		assert.Equal(t, []string{"remoteok", "jobicy"}, cfg.ActiveSources())
		assert.Equal(t, "0 */6 * * *", cfg.Schedule)
		assert.Equal(t, "software-dev", cfg.Remotive.Category)
		assert.Equal(t, "europe", cfg.Jobicy.Geo)
		assert.Equal(t, 20, cfg.Jobicy.Count)
		assert.Equal(t, 5, cfg.Arbeitnow.MaxPages)
		require.NotNil(t, cfg.Conditions)
		require.NotNil(t, cfg.Conditions.LoadAvgBelow)
		assert.InDelta(t, 2.5, *cfg.Conditions.LoadAvgBelow, 0.001)
		require.NotNil(t, cfg.Conditions.CPUBelow)
		assert.Equal(t, 80, *cfg.Conditions.CPUBelow)
		assert.Nil(t, cfg.Conditions.MemoryBelow)
	})

	t.Run("empty file gets defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "search_terms: []\n"))
		require.NoError(t, err)
		assert.Empty(t, cfg.SearchTerms)
		assert.Equal(t, DefaultSchedule, cfg.Schedule)
	})

	tbl := []struct {
		name    string
		content string
		errText string
	}{
		{"unknown source", "sources: [linkedin]", "Sources[0]"},
		{"bad category", "remotive:\n  category: sales", "Category"},
		{"jobicy count too big", "jobicy:\n  count: 500", "Count"},
		{"bad schedule", "schedule: \"every day\"", "can't parse schedule"},
		{"bad threshold", "conditions:\n  cpu_below: 150", "CPUBelow"},
		{"broken yaml", "sources: [remoteok", "failed to parse config"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/no/such/file.yml")
		require.Error(t, err)
	})
}

func TestConfig_NextRun(t *testing.T) {
	cfg := Default()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, from.Add(12*time.Hour), cfg.NextRun(from))

	cfg.Schedule = "bad"
	assert.True(t, cfg.NextRun(from).IsZero())
}

func TestProfileSchema_UpToDate(t *testing.T) {
	type defs struct {
		Defs map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
		} `json:"$defs"`
	}
	propNames := func(d defs) map[string][]string {
		res := map[string][]string{}
		for name, def := range d.Defs {
			keys := make([]string, 0, len(def.Properties))
			for k := range def.Properties {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			res[name] = keys
		}
		return res
	}

	data, err := os.ReadFile("../../profile-schema.json")
	require.NoError(t, err, "run go generate ./app/config")
	var committed defs
	require.NoError(t, json.Unmarshal(data, &committed))

	reflected, err := json.Marshal(jsonschema.Reflect(&Config{}))
	require.NoError(t, err)
	var actual defs
	require.NoError(t, json.Unmarshal(reflected, &actual))

	assert.Equal(t, propNames(actual), propNames(committed), "profile-schema.json is stale, run go generate ./app/config")
	assert.Contains(t, propNames(committed)["Config"], "search_terms")
}
