package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/framemaker/reelsite/internal/media"
	"github.com/framemaker/reelsite/internal/site"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	var (
		outDir    string
		assetBase string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the portfolio as a static site",
		Long: `Writes index.html, one embed/<index>.html player per local project and,
unless --asset-base points at an external host, a copy of the videos directory.
The output is meant to be served from the site root.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			s, err := site.New(cfg.Site, media.StaticResolver{BaseURL: assetBase})
			if err != nil {
				return fmt.Errorf("building site: %w", err)
			}

			var videosDir string
			if assetBase == "" {
				videosDir = cfg.Server.VideosDir
			}
			n, err := renderStatic(cmd.Context(), s, outDir, videosDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d players)\n", outDir, n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "dist", "output directory")
	cmd.Flags().StringVar(&assetBase, "asset-base", "", "URL prefix for video locators; empty serves them from the output")
	return cmd
}

// renderStatic writes the page and its players under outDir and copies
// videosDir to outDir/videos when it exists. It returns the number of
// player pages written.
func renderStatic(ctx context.Context, s *site.Site, outDir, videosDir string) (int, error) {
	var page bytes.Buffer
	if err := s.RenderStatic(ctx, &page); err != nil {
		return 0, fmt.Errorf("rendering page: %w", err)
	}
	if err := writeFile(filepath.Join(outDir, "index.html"), page.Bytes()); err != nil {
		return 0, err
	}

	embeds := s.StaticEmbeds()
	for _, p := range embeds {
		var buf bytes.Buffer
		if err := s.RenderStaticEmbed(ctx, &buf, p); err != nil {
			return 0, fmt.Errorf("rendering player %d: %w", p.Index, err)
		}
		if err := writeFile(filepath.Join(outDir, filepath.FromSlash(site.StaticEmbedPath(p))), buf.Bytes()); err != nil {
			return 0, err
		}
	}

	if videosDir != "" {
		if info, err := os.Stat(videosDir); err == nil && info.IsDir() {
			if err := copyTree(videosDir, filepath.Join(outDir, "videos")); err != nil {
				return 0, err
			}
		}
	}
	return len(embeds), nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(p, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
