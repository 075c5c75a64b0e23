// pentagrid is the command-line harness for the grid. It prints cell
// identifiers, boundaries and point lookups as plain text so that results can
// be diffed against other implementations, and writes encoded cell sets.
//
// Usage:
//
//	pentagrid cell-ids <resolution>
//	pentagrid cell-boundaries [--open] [--segments n | --auto-segments] <cell_hex>...
//	pentagrid lonlat-to-cell <resolution> <lon,lat>...
//	pentagrid encode-cells [--compression name] [--parent cell_hex] [--compact] <resolution>
//	pentagrid decode-cells [file]
//
// Settings are read from the environment, optionally seeded from a .env file
// in the working directory: LOG_LEVEL, LOG_FORMAT and PENTAGRID_MAX_CELLS
// (the largest enumeration cell-ids and encode-cells will perform).
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/arloliu/pentagrid/internal/logger"
)

const usageText = `Usage:
  pentagrid cell-ids <resolution>
  pentagrid cell-boundaries [--open] [--segments n | --auto-segments] <cell_hex> [<cell_hex>...]
  pentagrid lonlat-to-cell <resolution> <lon,lat> [<lon,lat>...]
  pentagrid encode-cells [--compression none|zstd|s2|lz4] [--parent cell_hex] [--compact] <resolution>
  pentagrid decode-cells [file]
`

// errUsage marks argument errors; run prints the usage text for them.
var errUsage = errors.New("invalid arguments")

func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	log := logger.Setup(stderr)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Fprint(stderr, usageText)
		return fmt.Errorf("%w: missing command", errUsage)
	}

	env := &environment{
		cfg:    cfg,
		log:    log.With("command", args[0]),
		stdin:  stdin,
		stdout: stdout,
	}

	var cmdErr error
	switch args[0] {
	case "cell-ids":
		cmdErr = env.cellIDs(args[1:])
	case "cell-boundaries":
		cmdErr = env.cellBoundaries(args[1:])
	case "lonlat-to-cell":
		cmdErr = env.lonLatToCell(args[1:])
	case "encode-cells":
		cmdErr = env.encodeCells(args[1:])
	case "decode-cells":
		cmdErr = env.decodeCells(args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usageText)
		return nil
	default:
		cmdErr = fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	if errors.Is(cmdErr, errUsage) {
		fmt.Fprint(stderr, usageText)
	}

	return cmdErr
}
