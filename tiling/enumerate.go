package tiling

import (
	"fmt"
	"iter"

	"github.com/arloliu/pentagrid/errs"
	"github.com/arloliu/pentagrid/internal/options"
)

// DefaultMaxEnumeration is the largest number of identifiers Children will
// materialise unless overridden with WithLimit. At 8 bytes per identifier it
// caps a single result at 128MiB.
const DefaultMaxEnumeration = 1 << 24

type enumerateConfig struct {
	limit uint64
}

// EnumerateOption configures Children and Uncompact.
type EnumerateOption = options.Option[*enumerateConfig]

// WithLimit sets the maximum number of identifiers a call may return.
func WithLimit(n uint64) EnumerateOption {
	return options.New(func(c *enumerateConfig) error {
		if n == 0 {
			return fmt.Errorf("%w: enumeration limit must be positive", errs.ErrInvalidOption)
		}
		c.limit = n

		return nil
	})
}

func newEnumerateConfig(opts []EnumerateOption) (*enumerateConfig, error) {
	cfg := &enumerateConfig{limit: DefaultMaxEnumeration}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// CellCount returns the number of cells covering the sphere at a resolution.
func CellCount(resolution int) (uint64, error) {
	return ChildCount(WorldCell, resolution)
}

// ChildCount returns how many descendants ancestor has at resolution.
func ChildCount(ancestor uint64, resolution int) (uint64, error) {
	from, err := checkDescent(ancestor, resolution)
	if err != nil {
		return 0, err
	}

	return descendantCount(from, resolution), nil
}

// descendantCount counts cells at resolution to below a cell at resolution
// from (-1 for WorldCell).
func descendantCount(from, to int) uint64 {
	switch {
	case from == to:
		return 1
	case from == -1 && to == 0:
		return FaceCount
	case from == -1:
		return FaceCount * QuintantCount << (2 * uint(to-1))
	case from == 0:
		return QuintantCount << (2 * uint(to-1))
	default:
		return 1 << (2 * uint(to-from))
	}
}

// checkDescent validates an enumeration request and returns the ancestor's
// resolution.
func checkDescent(ancestor uint64, resolution int) (int, error) {
	from, err := Resolution(ancestor)
	if err != nil {
		return 0, err
	}
	if resolution < 0 || resolution > MaxResolution {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", errs.ErrInvalidResolution, resolution, MaxResolution)
	}
	if resolution < from {
		return 0, fmt.Errorf("%w: %d is coarser than ancestor resolution %d", errs.ErrInvalidResolution, resolution, from)
	}

	return from, nil
}

// Children returns every descendant of ancestor at resolution, in ascending
// identifier order. With WorldCell as ancestor it returns every cell on the
// sphere. A resolution equal to the ancestor's returns the ancestor itself.
//
// The result size is checked against the enumeration limit before anything
// is allocated; oversized requests fail with errs.ErrTooManyCells.
func Children(ancestor uint64, resolution int, opts ...EnumerateOption) ([]uint64, error) {
	cfg, err := newEnumerateConfig(opts)
	if err != nil {
		return nil, err
	}

	from, err := checkDescent(ancestor, resolution)
	if err != nil {
		return nil, err
	}

	count := descendantCount(from, resolution)
	if count > cfg.limit {
		return nil, fmt.Errorf("%w: %d cells at resolution %d exceed limit %d", errs.ErrTooManyCells, count, resolution, cfg.limit)
	}

	out := make([]uint64, 0, count)
	descend(ancestor, from, resolution, func(id uint64) bool {
		out = append(out, id)
		return true
	})

	return out, nil
}

// ChildrenSeq is the streaming form of Children. It has no size limit; the
// sequence is produced lazily in the same order.
func ChildrenSeq(ancestor uint64, resolution int) (iter.Seq[uint64], error) {
	from, err := checkDescent(ancestor, resolution)
	if err != nil {
		return nil, err
	}

	return func(yield func(uint64) bool) {
		descend(ancestor, from, resolution, yield)
	}, nil
}

// descend yields the descendants of a validated id at resolution to. It
// returns false if yield stopped the walk.
func descend(id uint64, from, to int, yield func(uint64) bool) bool {
	switch {
	case from == to:
		return yield(id)
	case from == -1:
		for _, face := range Res0Cells() {
			if !descend(face, 0, to, yield) {
				return false
			}
		}

		return true
	case from == 0:
		faceBits := id &^ (1 << res0Marker)
		for q := range uint64(QuintantCount) {
			quintant := faceBits | q<<quintantShift | 1<<markerBit(1)
			if !descend(quintant, 1, to, yield) {
				return false
			}
		}

		return true
	}

	// Descendants of a quad share its prefix: clear the marker and count
	// through the new digits in steps of one digit at the target depth.
	base := id &^ (1 << markerBit(from))
	step := uint64(1) << (markerBit(to) + 1)
	marker := uint64(1) << markerBit(to)
	n := uint64(1) << (2 * uint(to-from))
	for k := range n {
		if !yield(base | k*step | marker) {
			return false
		}
	}

	return true
}
