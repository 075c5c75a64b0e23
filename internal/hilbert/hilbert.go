// Package hilbert orders the quad subdivision of a quintant along a Hilbert
// curve.
//
// A path is a sequence of 2-bit digits, most significant first. Each digit
// selects one of the four children of a quad; the mapping between digits and
// child positions depends on an orientation state that is carried down the
// hierarchy, so a path prefix always names the same quad regardless of how
// deep the full path goes.
package hilbert

// MaxDepth is the deepest path that fits in a uint64 (two bits per level).
const MaxDepth = 32

const (
	swapMask   = 0x1
	invertMask = 0x2
)

// posToIJ maps (orientation, digit) to the child quadrant ij = i<<1 | j.
var posToIJ = [4][4]uint64{
	{0, 1, 3, 2}, // canonical: (0,0) (0,1) (1,1) (1,0)
	{0, 2, 3, 1}, // axes swapped
	{3, 2, 0, 1}, // bits inverted
	{3, 1, 0, 2}, // swapped and inverted
}

// ijToPos is the inverse of posToIJ.
var ijToPos = [4][4]uint64{
	{0, 1, 3, 2},
	{0, 3, 1, 2},
	{2, 3, 1, 0},
	{2, 1, 3, 0},
}

// posToOrientation is XORed into the orientation after taking a digit.
var posToOrientation = [4]uint64{swapMask, 0, 0, invertMask | swapMask}

// PathToIJ converts a depth-level path into quad indices (i, j), each in
// [0, 2^depth).
func PathToIJ(path uint64, depth int) (i, j uint64) {
	var orientation uint64
	for level := depth - 1; level >= 0; level-- {
		pos := (path >> (2 * uint(level))) & 3
		ij := posToIJ[orientation][pos]
		i = i<<1 | ij>>1
		j = j<<1 | ij&1
		orientation ^= posToOrientation[pos]
	}

	return i, j
}

// IJToPath converts quad indices (i, j) at the given depth into a path.
// Bits of i and j above depth are ignored.
func IJToPath(i, j uint64, depth int) uint64 {
	var orientation, path uint64
	for level := depth - 1; level >= 0; level-- {
		ij := ((i>>uint(level))&1)<<1 | (j>>uint(level))&1
		pos := ijToPos[orientation][ij]
		path = path<<2 | pos
		orientation ^= posToOrientation[pos]
	}

	return path
}
