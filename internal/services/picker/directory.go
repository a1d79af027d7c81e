// Package picker implements PictureSelectorService on top of a directory.
package picker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/x4fyr/paiman/internal/services"
)

var imageExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// Directory "picks" the most recently modified image in Dir.
// An empty directory yields no picture and no error.
type Directory struct {
	Dir string
	log *zap.Logger
}

// NewDirectory returns a picker over dir.
func NewDirectory(dir string, log *zap.Logger) *Directory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Directory{Dir: dir, log: log.Named("picker")}
}

var _ services.PictureSelectorService = (*Directory)(nil)

// PickPicture reads the newest image in the directory.
func (d *Directory) PickPicture(ctx context.Context) (*services.Picture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(d.Dir)
	if err != nil {
		return nil, fmt.Errorf("picker: list %s: %w", d.Dir, err)
	}

	var (
		best    string
		bestMod int64
	)
	for _, e := range entries {
		if e.IsDir() || !imageExt[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		mod := info.ModTime().UnixNano()
		if best == "" || mod > bestMod || (mod == bestMod && e.Name() > best) {
			best, bestMod = e.Name(), mod
		}
	}
	if best == "" {
		d.log.Info("no picture available", zap.String("dir", d.Dir))
		return nil, nil
	}

	data, err := os.ReadFile(filepath.Join(d.Dir, best))
	if err != nil {
		return nil, fmt.Errorf("picker: read %s: %w", best, err)
	}
	if len(data) == 0 {
		// Unreadable pictures count as no pick, the UI reports it.
		d.log.Warn("empty picture file", zap.String("file", best))
		return nil, nil
	}

	d.log.Debug("picture picked", zap.String("file", best), zap.Int("bytes", len(data)))
	return &services.Picture{Name: best, Data: data}, nil
}
