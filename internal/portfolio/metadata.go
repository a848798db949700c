package portfolio

// Metadata is the page-level SEO configuration, emitted once per render.
type Metadata struct {
	Title        string `json:"title" koanf:"title" yaml:"title"`
	Description  string `json:"description" koanf:"description" yaml:"description"`
	CanonicalURL string `json:"canonicalUrl" koanf:"canonical_url" yaml:"canonical_url"`
	Image        Image  `json:"image" koanf:"image" yaml:"image"`
}

type Image struct {
	URL    string `json:"url" koanf:"url" yaml:"url"`
	Width  int    `json:"width" koanf:"width" yaml:"width"`
	Height int    `json:"height" koanf:"height" yaml:"height"`
	Alt    string `json:"alt" koanf:"alt" yaml:"alt"`
}
