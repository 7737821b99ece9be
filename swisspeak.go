/*
Package swisspeak is a toolbox for ASCII raster grids: rendering grids as
color-coded images and back, block-downsampling, masking one grid by
another, and classifying every cell by whether a chosen peak dominates it.
*/
package swisspeak

import (
	"io"
	"log"

	"github.com/tools4origins/swisspeak/config"
)

// App ties the grid operations to a configuration and a logger.
type App struct {
	cfg    *config.Config
	logger *log.Logger
}

// New returns an App. A nil cfg means defaults; a nil logger discards all
// progress and warning output.
func New(cfg *config.Config, logger *log.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}
