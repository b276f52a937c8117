package core

import (
	"fmt"
	"os"

	"github.com/OniDaito/crabseal/internal/dump"
	"github.com/OniDaito/crabseal/internal/logger"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Info logs the dump header and simple value statistics.
func (c *Core) Info(path string) error {
	log := logger.Log.WithField("scope", "info")

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("array: %w", err)
	}

	a, err := dump.Load(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	log.Infof("File:     %s", path)
	log.Infof("Shape:    %v", a.Shape)
	log.Infof("DType:    %s", a.DType)
	log.Infof("Elements: %d", a.Len())

	if len(a.Data) == 0 {
		return nil
	}
	log.Infof("Min:      %v", floats.Min(a.Data))
	log.Infof("Max:      %v", floats.Max(a.Data))
	log.Infof("Mean:     %v", stat.Mean(a.Data, nil))
	log.Infof("StdDev:   %v", stat.StdDev(a.Data, nil))
	return nil
}
