// Package config resolves the directory layout and clone settings used
// by the corpus commands. Values come from an optional YAML file, then
// PAIRS_* environment variables, then built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every path the corpus commands read or write.
type Config struct {
	// ProjectMetadataDir holds metadata files that describe several
	// program pairs drawn from one project.
	ProjectMetadataDir string `yaml:"project_metadata_dir"`

	// IndividualMetadataDir holds metadata files that each describe a
	// single program pair.
	IndividualMetadataDir string `yaml:"individual_metadata_dir"`

	// DemoMetadataDir holds the reduced metadata set used by demo runs.
	DemoMetadataDir string `yaml:"demo_metadata_dir"`

	// PairsDir is where staged program pairs are written.
	PairsDir string `yaml:"pairs_dir"`

	// ClonesDir caches cloned repositories between runs.
	ClonesDir string `yaml:"clones_dir"`

	// CloneDepth is the git history depth used for fresh clones.
	CloneDepth int `yaml:"clone_depth"`
}

// MetadataDirs returns the directories scanned for pair metadata, in
// processing order.
func (c *Config) MetadataDirs() []string {
	return []string{c.ProjectMetadataDir, c.IndividualMetadataDir}
}

// PairDir returns the staging directory for a named program pair.
func (c *Config) PairDir(name string) string {
	return filepath.Join(c.PairsDir, name)
}

// CloneDir returns the cache location for one repository clone,
// grouped by language so same-named repos never collide.
func (c *Config) CloneDir(language, repository string) string {
	return filepath.Join(c.ClonesDir, language, repository)
}

func (c *Config) applyDefaults() {
	if c.ProjectMetadataDir == "" {
		c.ProjectMetadataDir = filepath.Join("metadata", "projects")
	}
	if c.IndividualMetadataDir == "" {
		c.IndividualMetadataDir = filepath.Join("metadata", "individual")
	}
	if c.DemoMetadataDir == "" {
		c.DemoMetadataDir = filepath.Join("metadata", "demo")
	}
	if c.PairsDir == "" {
		c.PairsDir = "program_pairs"
	}
	if c.ClonesDir == "" {
		c.ClonesDir = "repository_clones"
	}
	if c.CloneDepth == 0 {
		c.CloneDepth = 1
	}
}

func (c *Config) applyEnvOverrides() {
	overrides := map[string]*string{
		"PAIRS_PROJECT_METADATA_DIR":    &c.ProjectMetadataDir,
		"PAIRS_INDIVIDUAL_METADATA_DIR": &c.IndividualMetadataDir,
		"PAIRS_DEMO_METADATA_DIR":       &c.DemoMetadataDir,
		"PAIRS_PROGRAM_PAIRS_DIR":       &c.PairsDir,
		"PAIRS_CLONES_DIR":              &c.ClonesDir,
	}
	for key, field := range overrides {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*field = v
		}
	}
	if v := strings.TrimSpace(os.Getenv("PAIRS_CLONE_DEPTH")); v != "" {
		if depth, err := strconv.Atoi(v); err == nil && depth > 0 {
			c.CloneDepth = depth
		}
	}
}

// Load builds a Config. When path is non-empty it must name a readable
// YAML file; an empty path skips the file and uses environment
// overrides and defaults alone. A .env file in the working directory
// is honored before the environment is read.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return cfg, nil
}
