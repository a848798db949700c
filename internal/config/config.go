package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/framemaker/reelsite/internal/embed"
	"github.com/framemaker/reelsite/internal/portfolio"
	"github.com/framemaker/reelsite/internal/validate"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const EnvPrefix = "REELSITE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (REELSITE_SERVER__PORT -> server.port).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// A configured project list replaces the stock one rather than merging into it.
	if k.Exists("site.projects") {
		cfg.Site.Projects = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Server.BaseURL == "" {
		return fmt.Errorf("server.base_url is required")
	}
	switch c.Server.LogFormat {
	case "", "json", "text":
	default:
		return fmt.Errorf("invalid server.log_format %q: must be json or text", c.Server.LogFormat)
	}

	if c.Storage.Enabled {
		if c.Storage.Endpoint == "" {
			return fmt.Errorf("storage.endpoint is required when storage is enabled")
		}
		if c.Storage.Bucket == "" {
			return fmt.Errorf("storage.bucket is required when storage is enabled")
		}
	}

	if _, err := embed.ProtocolByName(c.Site.EmbedProtocol); err != nil {
		return fmt.Errorf("site.embed_protocol: %w", err)
	}

	if _, err := portfolio.NewCatalog(c.Site.Projects); err != nil {
		return fmt.Errorf("site.projects: %w", err)
	}

	return c.Site.validateContent()
}

func (s SiteConfig) validateContent() error {
	checks := []struct {
		field string
		msg   string
	}{
		{"site.brand", validate.Brand(s.Brand)},
		{"site.tagline", validate.Tagline(s.Tagline)},
		{"site.about", validate.About(s.About)},
		{"site.contact.blurb", validate.ContactBlurb(s.Contact.Blurb)},
		{"site.metadata.title", validate.MetaTitle(s.Metadata.Title)},
		{"site.metadata.description", validate.MetaDescription(s.Metadata.Description)},
		{"site.metadata.canonical_url", validate.URL(s.Metadata.CanonicalURL)},
		{"site.metadata.image.alt", validate.ImageAlt(s.Metadata.Image.Alt)},
	}
	for _, c := range checks {
		if c.msg != "" {
			return fmt.Errorf("%s: %s", c.field, c.msg)
		}
	}

	for i, p := range s.Projects {
		for _, msg := range []string{
			validate.ProjectTitle(p.Title),
			validate.ProjectDescription(p.Description),
			validate.URL(p.VideoURL),
			validate.URL(p.DetailsURL),
		} {
			if msg != "" {
				return fmt.Errorf("site.projects[%d]: %s", i, msg)
			}
		}
	}
	return nil
}
