package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/OniDaito/crabseal/internal/colorizer"
	"github.com/OniDaito/crabseal/internal/colormap"
	cfg "github.com/OniDaito/crabseal/internal/config"
	"github.com/OniDaito/crabseal/internal/dump"
	"github.com/OniDaito/crabseal/internal/logger"
	p "github.com/OniDaito/crabseal/internal/progress"
	"github.com/OniDaito/crabseal/internal/video"
	"github.com/lucasb-eyer/go-colorful"
)

// Render colorizes the base array, overlays the optional mask and
// writes the result into outDir as <base name>.mp4. It returns the
// output path.
func (c *Core) Render(basePath, maskPath, outDir string) (string, error) {
	log := logger.Log.WithField("scope", "render")

	if _, err := os.Stat(basePath); err != nil {
		return "", fmt.Errorf("base array: %w", err)
	}

	p.Spinner("Loading base... ")
	base, err := dump.Load(basePath)
	if err != nil {
		return "", fmt.Errorf("loading base: %w", err)
	}
	log.Debugf("Base array %v, dtype %s", base.Shape, base.DType)

	colored, err := colorizer.Grayscale(base, colormap.Batlow)
	if err != nil {
		return "", err
	}

	if maskPath != "" {
		if _, err := os.Stat(maskPath); err != nil {
			return "", fmt.Errorf("mask array: %w", err)
		}

		p.Spinner("Loading mask... ")
		mask, err := dump.Load(maskPath)
		if err != nil {
			return "", fmt.Errorf("loading mask: %w", err)
		}
		log.Debugf("Mask array %v, dtype %s", mask.Shape, mask.DType)

		mask.Binarize()
		overlay := colorizer.Binary(mask, colorful.Color{R: cfg.MaskColorR, G: cfg.MaskColorG, B: cfg.MaskColorB})
		colored, err = colorizer.AddBlend(colored, overlay, cfg.MaskOpacity)
		if err != nil {
			return "", err
		}
	}

	out := filepath.Join(outDir, filepath.Base(basePath)+cfg.VideoSuffix)
	if err := video.Write(c.ctx, out, colored); err != nil {
		return "", err
	}
	return out, nil
}
