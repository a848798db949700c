package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/framemaker/reelsite/internal/media"
	"github.com/spf13/cobra"
)

type fileUploader interface {
	ObjectSize(ctx context.Context, key string) (int64, bool, error)
	UploadFile(ctx context.Context, key string, filePath string) error
}

type uploadResult struct {
	Uploaded int
	Skipped  int
}

func newUploadCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Push local showreel videos to the configured bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if !cfg.Storage.Enabled {
				return fmt.Errorf("storage is not enabled")
			}

			store, err := newStorage(cmd.Context(), cfg.Storage)
			if err != nil {
				return err
			}

			res, err := uploadDir(cmd.Context(), store, cfg.Server.VideosDir, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d videos to %s (%d unchanged)\n", res.Uploaded, store.Bucket(), res.Skipped)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "upload even when the stored object has the same size")
	return cmd
}

// uploadDir uploads every regular file under dir, keyed the same way the
// storage resolver derives keys from /videos/... locators. Files whose stored
// object already has the same size are skipped unless force is set.
func uploadDir(ctx context.Context, up fileUploader, dir string, force bool) (uploadResult, error) {
	var res uploadResult
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		key := media.ObjectKey(path.Join("/videos", filepath.ToSlash(rel)))

		if !force {
			info, err := d.Info()
			if err != nil {
				return err
			}
			size, exists, err := up.ObjectSize(ctx, key)
			if err != nil {
				return err
			}
			if exists && size == info.Size() {
				slog.Debug("video unchanged", "key", key)
				res.Skipped++
				return nil
			}
		}

		if err := up.UploadFile(ctx, key, p); err != nil {
			return fmt.Errorf("uploading %s: %w", p, err)
		}
		slog.Info("uploaded video", "key", key)
		res.Uploaded++
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("walking %s: %w", dir, err)
	}
	return res, nil
}
