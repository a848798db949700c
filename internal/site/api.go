package site

import (
	"net/http"

	"github.com/framemaker/reelsite/internal/httputil"
	"github.com/framemaker/reelsite/internal/navigation"
	"github.com/framemaker/reelsite/internal/portfolio"
	"github.com/framemaker/reelsite/internal/validate"
)

type projectResponse struct {
	portfolio.Project
	EmbedURL string `json:"embedUrl"`
}

type projectsResponse struct {
	Projects []projectResponse `json:"projects"`
}

type sectionResponse struct {
	ID    navigation.SectionID `json:"id"`
	Label string               `json:"label"`
}

type siteResponse struct {
	Metadata         portfolio.Metadata `json:"metadata"`
	Studio           string             `json:"studio"`
	Sections         []sectionResponse  `json:"sections"`
	InitialState     navigation.State   `json:"initialState"`
	ActivationOffset float64            `json:"activationOffset"`
	EmbedProtocol    string             `json:"embedProtocol"`
	Limits           map[string]int     `json:"limits"`
}

// ListProjects returns the featured projects in index order.
func (s *Site) ListProjects(w http.ResponseWriter, r *http.Request) {
	featured := s.catalog.Featured()
	resp := projectsResponse{Projects: make([]projectResponse, 0, len(featured))}
	for _, p := range featured {
		resp.Projects = append(resp.Projects, projectResponse{Project: p, EmbedURL: EmbedURL(p)})
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (s *Site) Info(w http.ResponseWriter, r *http.Request) {
	var sections []sectionResponse
	for _, sec := range navigation.Sections() {
		sections = append(sections, sectionResponse{ID: sec.ID, Label: sec.Label})
	}
	httputil.WriteJSON(w, http.StatusOK, siteResponse{
		Metadata:         s.content.Metadata,
		Studio:           s.content.Studio,
		Sections:         sections,
		InitialState:     navigation.DefaultState(),
		ActivationOffset: navigation.ActivationOffset,
		EmbedProtocol:    s.protocol.Name(),
		Limits:           validate.FieldLimits(),
	})
}
