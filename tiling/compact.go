package tiling

import (
	"fmt"
	"slices"

	"github.com/arloliu/pentagrid/errs"
)

// Compact replaces every complete set of siblings with their parent,
// repeatedly, and drops cells already covered by a coarser cell in the input.
// The result covers exactly the same area as ids, sorted and without
// duplicates.
func Compact(ids []uint64) ([]uint64, error) {
	set := make(map[uint64]struct{}, len(ids))
	finest := 0
	for _, id := range ids {
		if id == WorldCell {
			return []uint64{WorldCell}, nil
		}
		c, err := Deserialize(id)
		if err != nil {
			return nil, err
		}
		set[id] = struct{}{}
		finest = max(finest, c.Resolution)
	}

	removeCovered(set)

	for r := finest; r >= 1; r-- {
		siblings := make(map[uint64]int)
		for id := range set {
			if resolutionOf(id) == r {
				siblings[parentOf(id, r, r-1)]++
			}
		}
		for parent, n := range siblings {
			if uint64(n) != descendantCount(r-1, r) {
				continue
			}
			descend(parent, r-1, r, func(child uint64) bool {
				delete(set, child)
				return true
			})
			set[parent] = struct{}{}
		}
	}

	out := make([]uint64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)

	return out, nil
}

// removeCovered deletes every cell whose ancestor is also in the set.
func removeCovered(set map[uint64]struct{}) {
	for id := range set {
		r := resolutionOf(id)
		for to := r - 1; to >= 0; to-- {
			if _, ok := set[parentOf(id, r, to)]; ok {
				delete(set, id)
				break
			}
		}
	}
}

// Uncompact expands every cell to its descendants at resolution. The result
// is sorted and free of duplicates. The enumeration limit applies to the
// total size.
func Uncompact(ids []uint64, resolution int, opts ...EnumerateOption) ([]uint64, error) {
	cfg, err := newEnumerateConfig(opts)
	if err != nil {
		return nil, err
	}

	var total uint64
	froms := make([]int, len(ids))
	for i, id := range ids {
		from, err := checkDescent(id, resolution)
		if err != nil {
			return nil, err
		}
		froms[i] = from
		n := descendantCount(from, resolution)
		if n > cfg.limit-total {
			return nil, fmt.Errorf("%w: uncompacting to resolution %d exceeds limit %d", errs.ErrTooManyCells, resolution, cfg.limit)
		}
		total += n
	}

	out := make([]uint64, 0, total)
	for i, id := range ids {
		descend(id, froms[i], resolution, func(child uint64) bool {
			out = append(out, child)
			return true
		})
	}
	slices.Sort(out)

	return slices.Compact(out), nil
}
