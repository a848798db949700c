package portfolio

// VideoPaths is the ordered list of showreel locators served from the public videos folder.
var VideoPaths = []string{
	"/videos/car.mp4",
	"/videos/compositing_showreel.mp4",
	"/videos/eye_hole_cg.mov",
	"/videos/face_touchup.mp4",
	"/videos/reel.mp4",
	"/videos/srk_zero.mp4",
}

func DefaultProjects() []Project {
	return []Project{
		{
			Title:       "Project 1: Sci-Fi Environment",
			Description: "Changing the car color and environment in a sci-fi setting.",
			VideoURL:    VideoPaths[0],
			DetailsURL:  "#",
			Index:       0,
			Featured:    true,
		},
		{
			Title:       "Project 2: Character Animation",
			Description: "Compositing showreel showcasing character animation and effects.",
			VideoURL:    VideoPaths[1],
			DetailsURL:  "#",
			Index:       1,
			Featured:    true,
		},
		{
			Title:       "Project 3: Face Eye Hole CG",
			Description: "Eye hole CG for face touchup and product visualization.",
			VideoURL:    VideoPaths[2],
			DetailsURL:  "#",
			Index:       2,
			Featured:    true,
		},
		{
			Title:       "Project 4: Additional Project",
			Description: "Another project to showcase my skills.",
			VideoURL:    VideoPaths[3],
			DetailsURL:  "#",
			Index:       3,
			Featured:    true,
		},
		{
			Title:       "Project 5: Reel Showcase",
			Description: "Editing video reel showcasing various projects.",
			VideoURL:    VideoPaths[4],
			DetailsURL:  "#",
			Index:       4,
			Featured:    true,
		},
		{
			Title:       "Project 6: Character Animation",
			Description: "SRK Zero CG Animation",
			VideoURL:    VideoPaths[5],
			DetailsURL:  "#",
			Index:       5,
			Featured:    true,
		},
	}
}

func DefaultMetadata() Metadata {
	return Metadata{
		Title:        "Srijan VFX Portfolio",
		Description:  "Showcasing stunning visual effects projects by Srijan VFX. Explore our VFX artistry in films, commercials, and more.",
		CanonicalURL: "https://srijanvfx.com",
		Image: Image{
			URL:    "https://placehold.co/1200x630/000/fff/png?text=Srijan+VFX+Portfolio",
			Width:  1200,
			Height: 630,
			Alt:    "Srijan VFX Portfolio",
		},
	}
}
