package config

import "github.com/framemaker/reelsite/internal/portfolio"

// Config is the top-level reelsite configuration, corresponding to reelsite.yml.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Storage StorageConfig `yaml:"storage" koanf:"storage"`
	GeoIPDB string        `yaml:"geoip_db" koanf:"geoip_db"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
}

type ServerConfig struct {
	Port           int      `yaml:"port" koanf:"port"`
	BaseURL        string   `yaml:"base_url" koanf:"base_url"`
	VideosDir      string   `yaml:"videos_dir" koanf:"videos_dir"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	EmbedHosts     []string `yaml:"embed_hosts" koanf:"embed_hosts"`
	LogFormat      string   `yaml:"log_format" koanf:"log_format"`
	EnableDocs     bool     `yaml:"enable_docs" koanf:"enable_docs"`
}

// StorageConfig points video locators at an S3-compatible bucket. When
// disabled, locators are served from VideosDir.
type StorageConfig struct {
	Enabled        bool   `yaml:"enabled" koanf:"enabled"`
	Endpoint       string `yaml:"endpoint" koanf:"endpoint"`
	PublicEndpoint string `yaml:"public_endpoint" koanf:"public_endpoint"`
	Bucket         string `yaml:"bucket" koanf:"bucket"`
	AccessKey      string `yaml:"access_key" koanf:"access_key"`
	SecretKey      string `yaml:"secret_key" koanf:"secret_key"`
	Region         string `yaml:"region" koanf:"region"`
}

type SiteConfig struct {
	Brand         string              `yaml:"brand" koanf:"brand"`
	Studio        string              `yaml:"studio" koanf:"studio"`
	Artist        string              `yaml:"artist" koanf:"artist"`
	Tagline       string              `yaml:"tagline" koanf:"tagline"`
	HeroVideo     string              `yaml:"hero_video" koanf:"hero_video"`
	About         string              `yaml:"about" koanf:"about"`
	AboutImage    string              `yaml:"about_image" koanf:"about_image"`
	EmbedProtocol string              `yaml:"embed_protocol" koanf:"embed_protocol"`
	Contact       ContactConfig       `yaml:"contact" koanf:"contact"`
	Metadata      portfolio.Metadata  `yaml:"metadata" koanf:"metadata"`
	Projects      []portfolio.Project `yaml:"projects" koanf:"projects"`
}

type ContactConfig struct {
	Blurb    string `yaml:"blurb" koanf:"blurb"`
	Email    string `yaml:"email" koanf:"email"`
	LinkedIn string `yaml:"linkedin" koanf:"linkedin"`
}
