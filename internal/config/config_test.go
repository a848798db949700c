package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reelsite.yml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if len(cfg.Site.Projects) != 6 {
		t.Errorf("expected 6 default projects, got %d", len(cfg.Site.Projects))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
site:
  studio: Night Owl VFX
  projects:
    - title: Only One
      video_url: /videos/one.mp4
      index: 3
      featured: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Site.Studio != "Night Owl VFX" {
		t.Errorf("expected studio override, got %q", cfg.Site.Studio)
	}
	if cfg.Site.Artist != "Srijan" {
		t.Errorf("expected default artist kept, got %q", cfg.Site.Artist)
	}
	if len(cfg.Site.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(cfg.Site.Projects))
	}
	p := cfg.Site.Projects[0]
	if p.Index != 3 || !p.Featured || p.VideoURL != "/videos/one.mp4" {
		t.Errorf("unexpected project %+v", p)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("REELSITE_SERVER__PORT", "7070")
	t.Setenv("REELSITE_STORAGE__BUCKET", "showreels")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("expected env port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Bucket != "showreels" {
		t.Errorf("expected env bucket, got %q", cfg.Storage.Bucket)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"missing base url", func(c *Config) { c.Server.BaseURL = "" }, "base_url"},
		{"bad log format", func(c *Config) { c.Server.LogFormat = "xml" }, "log_format"},
		{"storage without endpoint", func(c *Config) { c.Storage.Enabled = true }, "storage.endpoint"},
		{"storage without bucket", func(c *Config) {
			c.Storage.Enabled = true
			c.Storage.Endpoint = "http://localhost:9000"
			c.Storage.Bucket = ""
		}, "storage.bucket"},
		{"unknown protocol", func(c *Config) { c.Site.EmbedProtocol = "flash" }, "embed_protocol"},
		{"duplicate index", func(c *Config) { c.Site.Projects[1].Index = 0 }, "duplicate project index"},
		{"long meta title", func(c *Config) { c.Site.Metadata.Title = strings.Repeat("a", 71) }, "site.metadata.title"},
		{"long project title", func(c *Config) { c.Site.Projects[2].Title = strings.Repeat("a", 201) }, "site.projects[2]: project title"},
		{"long tagline", func(c *Config) { c.Site.Tagline = strings.Repeat("a", 301) }, "site.tagline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reelsite.yml")
	cfg := DefaultConfig()
	cfg.Site.Studio = "Saved Studio"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Site.Studio != "Saved Studio" {
		t.Errorf("expected saved studio, got %q", loaded.Site.Studio)
	}
}

func TestLoadProjectsReplaceDefaults(t *testing.T) {
	path := writeConfig(t, `
site:
  projects:
    - title: Fresh
      index: 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Site.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(cfg.Site.Projects))
	}
	if cfg.Site.Projects[0].Description != "" {
		t.Errorf("expected no description carried over from defaults, got %q", cfg.Site.Projects[0].Description)
	}
}
