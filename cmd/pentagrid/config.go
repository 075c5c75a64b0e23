package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/arloliu/pentagrid/errs"
	"github.com/arloliu/pentagrid/tiling"
)

// config holds the settings read from the environment.
type config struct {
	maxCells uint64
}

func loadConfig() (config, error) {
	cfg := config{maxCells: tiling.DefaultMaxEnumeration}

	if v := os.Getenv("PENTAGRID_MAX_CELLS"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n == 0 {
			return config{}, fmt.Errorf("%w: PENTAGRID_MAX_CELLS=%q is not a positive integer", errs.ErrInvalidOption, v)
		}
		cfg.maxCells = n
	}

	return cfg, nil
}
