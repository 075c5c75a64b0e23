package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/arloliu/pentagrid/cell"
	"github.com/arloliu/pentagrid/cellset"
	"github.com/arloliu/pentagrid/coord"
	"github.com/arloliu/pentagrid/errs"
	"github.com/arloliu/pentagrid/format"
	"github.com/arloliu/pentagrid/hexid"
	"github.com/arloliu/pentagrid/tiling"
)

// environment carries what every subcommand needs.
type environment struct {
	cfg    config
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
}

func newFlagSet(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	// Negative longitudes look like shorthand flags; stop at the first
	// positional argument.
	flagSet.SetInterspersed(false)

	return flagSet
}

func parseFlags(flagSet *pflag.FlagSet, args []string) error {
	if err := flagSet.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	return nil
}

func parseResolution(text string) (int, error) {
	r, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid resolution %q", errUsage, text)
	}

	return r, nil
}

// cellIDs prints every cell at a resolution, one hex identifier per line.
func (e *environment) cellIDs(args []string) error {
	flagSet := newFlagSet("cell-ids")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return fmt.Errorf("%w: cell-ids takes exactly one resolution", errUsage)
	}

	resolution, err := parseResolution(flagSet.Arg(0))
	if err != nil {
		return err
	}

	count, err := tiling.CellCount(resolution)
	if err != nil {
		return fmt.Errorf("generate cells for resolution %d: %w", resolution, err)
	}
	if count > e.cfg.maxCells {
		return fmt.Errorf("generate cells for resolution %d: %w: %d cells exceed PENTAGRID_MAX_CELLS=%d",
			resolution, errs.ErrTooManyCells, count, e.cfg.maxCells)
	}

	seq, err := tiling.ChildrenSeq(tiling.WorldCell, resolution)
	if err != nil {
		return fmt.Errorf("generate cells for resolution %d: %w", resolution, err)
	}

	w := bufio.NewWriter(e.stdout)
	line := make([]byte, 0, hexid.Width+1)
	for id := range seq {
		line = append(hexid.AppendHex(line[:0], id), '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	e.log.Debug("enumerated cells", "resolution", resolution, "count", count)

	return w.Flush()
}

// cellBoundaries prints "<hex>\t<lon>,<lat>;..." for every argument.
func (e *environment) cellBoundaries(args []string) error {
	flagSet := newFlagSet("cell-boundaries")
	open := flagSet.Bool("open", false, "do not repeat the first vertex")
	segments := flagSet.Int("segments", 1, "segments per edge")
	auto := flagSet.Bool("auto-segments", false, "choose segments from the resolution")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}
	if flagSet.NArg() == 0 {
		return fmt.Errorf("%w: cell-boundaries needs at least one cell", errUsage)
	}

	opts := []cell.BoundaryOption{cell.WithClosedRing(!*open), cell.WithSegments(*segments)}
	if *auto {
		opts = append(opts, cell.WithAutoSegments())
	}

	w := bufio.NewWriter(e.stdout)
	for _, text := range flagSet.Args() {
		id, err := hexid.HexToU64(text)
		if err != nil {
			return fmt.Errorf("invalid cell hex %s: %w", text, err)
		}

		ring, err := cell.CellToBoundary(id, opts...)
		if err != nil {
			return fmt.Errorf("compute boundary for %s: %w", text, err)
		}

		w.WriteString(hexid.U64ToHex(id))
		w.WriteByte('\t')
		for i, p := range ring {
			if i > 0 {
				w.WriteByte(';')
			}
			w.WriteString(strconv.FormatFloat(p.Lon, 'f', 15, 64))
			w.WriteByte(',')
			w.WriteString(strconv.FormatFloat(p.Lat, 'f', 15, 64))
		}
		w.WriteByte('\n')
	}

	return w.Flush()
}

// lonLatToCell prints the cell containing each "<lon>,<lat>" argument.
func (e *environment) lonLatToCell(args []string) error {
	flagSet := newFlagSet("lonlat-to-cell")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}
	if flagSet.NArg() < 2 {
		return fmt.Errorf("%w: lonlat-to-cell needs a resolution and at least one point", errUsage)
	}

	resolution, err := parseResolution(flagSet.Arg(0))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(e.stdout)
	for _, text := range flagSet.Args()[1:] {
		p, err := parseLonLat(text)
		if err != nil {
			return err
		}

		id, err := cell.LonLatToCell(p, resolution)
		if err != nil {
			return fmt.Errorf("lonlat-to-cell for lon=%v, lat=%v, resolution=%d: %w", p.Lon, p.Lat, resolution, err)
		}
		w.WriteString(hexid.U64ToHex(id))
		w.WriteByte('\n')
	}

	return w.Flush()
}

func parseLonLat(text string) (coord.LonLat, error) {
	lonText, latText, ok := strings.Cut(text, ",")
	if !ok {
		return coord.LonLat{}, fmt.Errorf("%w: invalid lon,lat pair %q", errUsage, text)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonText), 64)
	if err != nil {
		return coord.LonLat{}, fmt.Errorf("%w: invalid longitude %q", errUsage, lonText)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if err != nil {
		return coord.LonLat{}, fmt.Errorf("%w: invalid latitude %q", errUsage, latText)
	}

	return coord.New(lon, lat), nil
}

// encodeCells writes the descendants of --parent (the whole sphere by
// default) at a resolution as an encoded cell set.
func (e *environment) encodeCells(args []string) error {
	flagSet := newFlagSet("encode-cells")
	compression := flagSet.String("compression", "zstd", "payload codec: none, zstd, s2 or lz4")
	parentHex := flagSet.String("parent", "", "ancestor cell (default: whole sphere)")
	compact := flagSet.Bool("compact", false, "merge complete sibling sets before encoding")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return fmt.Errorf("%w: encode-cells takes exactly one resolution", errUsage)
	}

	resolution, err := parseResolution(flagSet.Arg(0))
	if err != nil {
		return err
	}
	ct, err := format.ParseCompressionType(*compression)
	if err != nil {
		return err
	}

	parent := tiling.WorldCell
	if *parentHex != "" {
		if parent, err = hexid.HexToU64(*parentHex); err != nil {
			return fmt.Errorf("invalid parent %s: %w", *parentHex, err)
		}
	}

	ids, err := tiling.Children(parent, resolution, tiling.WithLimit(e.cfg.maxCells))
	if err != nil {
		return fmt.Errorf("enumerate cells: %w", err)
	}
	if *compact {
		if ids, err = tiling.Compact(ids); err != nil {
			return err
		}
	}

	data, err := cellset.Encode(ids, cellset.WithCompression(ct))
	if err != nil {
		return err
	}
	e.log.Info("encoded cell set",
		"resolution", resolution,
		"cells", len(ids),
		"compression", ct.String(),
		"bytes", len(data))

	_, err = e.stdout.Write(data)

	return err
}

// decodeCells reads an encoded cell set from a file or stdin and prints its
// identifiers.
func (e *environment) decodeCells(args []string) error {
	flagSet := newFlagSet("decode-cells")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}
	if flagSet.NArg() > 1 {
		return fmt.Errorf("%w: decode-cells takes at most one file", errUsage)
	}

	var (
		data []byte
		err  error
	)
	if flagSet.NArg() == 1 {
		data, err = os.ReadFile(flagSet.Arg(0))
	} else {
		data, err = io.ReadAll(e.stdin)
	}
	if err != nil {
		return err
	}

	d, err := cellset.NewDecoder(data)
	if err != nil {
		return err
	}
	e.log.Debug("decoded cell set", "cells", d.Len(), "compression", d.Header().Compression.String())

	w := bufio.NewWriter(e.stdout)
	for id := range d.All() {
		w.WriteString(hexid.U64ToHex(id))
		w.WriteByte('\n')
	}

	return w.Flush()
}
