package config

import "github.com/framemaker/reelsite/internal/portfolio"

const defaultAbout = `I am a highly skilled and creative VFX artist with 5 years of experience in the
industry. I have a strong passion for visual storytelling and a keen eye for detail.
My expertise includes compositing, 3D modeling, animation, simulations.

I have worked on a variety of projects, including films, commercials, video games,
and I am always eager to take on new challenges and push the boundaries of what is
possible with VFX at The Frame Maker Studio.
`

// DefaultConfig returns a Config populated with the stock site content.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      8080,
			BaseURL:   "http://localhost:8080",
			VideosDir: "public/videos",
			EmbedHosts: []string{
				"https://www.youtube.com",
				"https://player.vimeo.com",
			},
			LogFormat: "json",
		},
		Storage: StorageConfig{
			Bucket: "reelsite",
			Region: "eu-central-1",
		},
		Site: SiteConfig{
			Brand:         "Srijan VFX",
			Studio:        "The Frame Maker Studio",
			Artist:        "Srijan",
			Tagline:       "A VFX Artist Passionate About Creating Stunning Visual Effects at The Frame Maker Studio.",
			HeroVideo:     portfolio.VideoPaths[1],
			About:         defaultAbout,
			AboutImage:    "https://placehold.co/600x400/000/fff/png?text=VFX+Artist",
			EmbedProtocol: "youtube",
			Contact: ContactConfig{
				Blurb:    "I am available for freelance projects and collaborations. Feel free to reach out to me via email or connect with me on social media.",
				Email:    "your.email@example.com",
				LinkedIn: "https://www.linkedin.com/in/yourprofile",
			},
			Metadata: portfolio.DefaultMetadata(),
			Projects: portfolio.DefaultProjects(),
		},
	}
}
