// Package site renders the portfolio page and the self-hosted embed player.
package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/framemaker/reelsite/internal/config"
	"github.com/framemaker/reelsite/internal/embed"
	"github.com/framemaker/reelsite/internal/media"
	"github.com/framemaker/reelsite/internal/navigation"
	"github.com/framemaker/reelsite/internal/portfolio"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type Site struct {
	content   config.SiteConfig
	catalog   *portfolio.Catalog
	aboutHTML template.HTML
	protocol  embed.Protocol
	resolver  media.Resolver
	now       func() time.Time
}

func New(cfg config.SiteConfig, resolver media.Resolver) (*Site, error) {
	catalog, err := portfolio.NewCatalog(cfg.Projects)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	protocol, err := embed.ProtocolByName(cfg.EmbedProtocol)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var about bytes.Buffer
	if err := md.Convert([]byte(cfg.About), &about); err != nil {
		return nil, fmt.Errorf("render about section: %w", err)
	}

	if resolver == nil {
		resolver = media.StaticResolver{}
	}

	return &Site{
		content:   cfg,
		catalog:   catalog,
		aboutHTML: template.HTML(about.String()),
		protocol:  protocol,
		resolver:  resolver,
		now:       time.Now,
	}, nil
}

func (s *Site) Catalog() *portfolio.Catalog { return s.catalog }

type navLink struct {
	ID     string
	Label  string
	Active bool
}

type projectCard struct {
	portfolio.Project
	EmbedURL       string
	OverlayVisible bool
}

type pageData struct {
	Nonce            string
	Meta             portfolio.Metadata
	Brand            string
	Studio           string
	Artist           string
	Tagline          string
	HeroVideo        string
	AboutHTML        template.HTML
	AboutImage       string
	Contact          config.ContactConfig
	Nav              []navLink
	MobileMenuOpen   bool
	Cards            []projectCard
	PlayCommand      string
	PauseCommand     string
	ActivationOffset float64
	Year             int
}

// EmbedURL is the iframe source for a project: remote embeds are used
// directly, local videos go through the self-hosted player.
func EmbedURL(p portfolio.Project) string {
	if media.IsRemote(p.VideoURL) {
		return p.VideoURL
	}
	return "/embed/" + strconv.Itoa(p.Index)
}

// StaticEmbedPath is where a static build writes the player page for a local
// project, relative to the output root.
func StaticEmbedPath(p portfolio.Project) string {
	return "embed/" + strconv.Itoa(p.Index) + ".html"
}

func staticEmbedURL(p portfolio.Project) string {
	if media.IsRemote(p.VideoURL) {
		return p.VideoURL
	}
	return "/" + StaticEmbedPath(p)
}

// Cards render before any script runs, so every overlay starts in the
// player's initial state.
const initialPlayerState = embed.Paused

func (s *Site) buildPage(ctx context.Context, nonce string, embedURL func(portfolio.Project) string) (pageData, error) {
	play, err := s.protocol.Encode(embed.ActionPlay)
	if err != nil {
		return pageData{}, fmt.Errorf("encode play command: %w", err)
	}
	pause, err := s.protocol.Encode(embed.ActionPause)
	if err != nil {
		return pageData{}, fmt.Errorf("encode pause command: %w", err)
	}

	state := navigation.DefaultState()
	var nav []navLink
	for _, sec := range navigation.Sections() {
		nav = append(nav, navLink{
			ID:     string(sec.ID),
			Label:  sec.Label,
			Active: sec.ID == state.ActiveSection,
		})
	}

	var cards []projectCard
	for _, p := range s.catalog.Featured() {
		cards = append(cards, projectCard{
			Project:        p,
			EmbedURL:       embedURL(p),
			OverlayVisible: initialPlayerState.OverlayVisible(),
		})
	}

	return pageData{
		Nonce:            nonce,
		Meta:             s.content.Metadata,
		Brand:            s.content.Brand,
		Studio:           s.content.Studio,
		Artist:           s.content.Artist,
		Tagline:          s.content.Tagline,
		HeroVideo:        s.resolver.Resolve(ctx, s.content.HeroVideo),
		AboutHTML:        s.aboutHTML,
		AboutImage:       s.content.AboutImage,
		Contact:          s.content.Contact,
		Nav:              nav,
		MobileMenuOpen:   state.MobileMenuOpen,
		Cards:            cards,
		PlayCommand:      string(play),
		PauseCommand:     string(pause),
		ActivationOffset: navigation.ActivationOffset,
		Year:             s.now().Year(),
	}, nil
}

// Render writes the full page for the server, with players at /embed/{index}.
func (s *Site) Render(ctx context.Context, w io.Writer, nonce string) error {
	return s.render(ctx, w, nonce, EmbedURL)
}

// RenderStatic writes the page for hosting without the server: local players
// point at the files RenderStaticEmbed produces under StaticEmbedPath. No CSP
// applies, so the nonce is empty.
func (s *Site) RenderStatic(ctx context.Context, w io.Writer) error {
	return s.render(ctx, w, "", staticEmbedURL)
}

func (s *Site) render(ctx context.Context, w io.Writer, nonce string, embedURL func(portfolio.Project) string) error {
	data, err := s.buildPage(ctx, nonce, embedURL)
	if err != nil {
		return err
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

// StaticEmbeds lists the featured projects that need a player page in a
// static build. Remote embeds are framed directly.
func (s *Site) StaticEmbeds() []portfolio.Project {
	var out []portfolio.Project
	for _, p := range s.catalog.Featured() {
		if !media.IsRemote(p.VideoURL) {
			out = append(out, p)
		}
	}
	return out
}

// RenderStaticEmbed writes the self-hosted player page for p.
func (s *Site) RenderStaticEmbed(ctx context.Context, w io.Writer, p portfolio.Project) error {
	if err := embedPageTemplate.Execute(w, s.embedData(ctx, p, "")); err != nil {
		return fmt.Errorf("execute embed template: %w", err)
	}
	return nil
}
