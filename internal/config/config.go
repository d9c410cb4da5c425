// Package config loads render and viewer settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"mandelview/internal/geom"
)

type Config struct {
	Limit       int           `json:",default=255"`
	Workers     int           `json:",default=0"`
	RowsPerTask int           `json:",default=8"`
	Inside      int           `json:",default=255"`
	Timeout     time.Duration `json:",optional"`
	// Cutoff is how many iterations a point must survive to get a braille dot in the viewer.
	Cutoff   int    `json:",default=16"`
	SaveDims string `json:",default=1000x750"`
	Diag     bool   `json:",optional"`
	Log      logx.LogConf
}

// Load reads path, or returns defaults when path is empty.
func Load(path string) (Config, error) {
	var c Config
	var err error
	if path == "" {
		err = conf.FillDefault(&c)
	} else {
		err = conf.Load(path, &c)
	}
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Limit <= 0 {
		errs = append(errs, fmt.Errorf("limit must be positive, got %d", c.Limit))
	}
	if c.Inside < 0 || c.Inside > 255 {
		errs = append(errs, fmt.Errorf("inside must be in [0,255], got %d", c.Inside))
	}
	if c.Cutoff < 0 || c.Cutoff > 255 {
		errs = append(errs, fmt.Errorf("cutoff must be in [0,255], got %d", c.Cutoff))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	if _, ok := geom.ParseDims(c.SaveDims); !ok {
		errs = append(errs, fmt.Errorf("bad save dims %q", c.SaveDims))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Save returns SaveDims parsed. Validate must have passed.
func (c Config) Save() geom.Dims {
	d, _ := geom.ParseDims(c.SaveDims)
	return d
}
