package cell

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/arloliu/pentagrid/tiling"
)

// EarthRadius is the authalic radius of the spherical Earth model, in metres.
const EarthRadius = 6371007.2

// CellArea returns the area of a cell in square metres. Cell edges are
// geodesics, so the area is that of the spherical polygon through its corners.
func CellArea(id uint64) (float64, error) {
	sr, err := CellAreaSteradians(id)
	if err != nil {
		return 0, err
	}

	return sr * EarthRadius * EarthRadius, nil
}

// CellAreaSteradians returns the area of a cell on the unit sphere.
func CellAreaSteradians(id uint64) (float64, error) {
	c, err := tiling.Deserialize(id)
	if err != nil {
		return 0, err
	}

	return s2.LoopFromPoints(corners(c)).Area(), nil
}

// AverageCellArea returns the mean cell area at a resolution in square metres.
func AverageCellArea(resolution int) (float64, error) {
	count, err := tiling.CellCount(resolution)
	if err != nil {
		return 0, err
	}

	return 4 * math.Pi * EarthRadius * EarthRadius / float64(count), nil
}
