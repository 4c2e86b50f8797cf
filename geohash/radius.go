package geohash

import (
	"fmt"

	"geohash-service/geo"
)

// CellsWithinRadius enumerates the cells of the same precision as the center
// hash that lie within distanceKm of the center cell's centroid. A candidate
// qualifies when at least minPointsInRange of its five representative points
// (four corners plus centroid) are within the distance; minPointsInRange must
// be between 1 and 5. The center cell itself is always part of the result.
//
// The search is a brute-force grid expansion: it probes outward along the
// north, south and west axes to size a rectangular candidate grid (the east
// extent mirrors the west one), then filters the grid cell by cell. Cost
// grows with the ratio of radius to cell size, so it suits small radii at
// reasonable precisions, not continent-scale queries on coarse cells.
func CellsWithinRadius(hash string, distanceKm float64, minPointsInRange int) ([]string, error) {
	if minPointsInRange < 1 || minPointsInRange > 5 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMinPoints, minPointsInRange)
	}

	center, err := Decode(hash)
	if err != nil {
		return nil, err
	}
	origin := center.Centroid

	north, err := extent(hash, North, origin, distanceKm, minPointsInRange)
	if err != nil {
		return nil, err
	}
	south, err := extent(hash, South, origin, distanceKm, minPointsInRange)
	if err != nil {
		return nil, err
	}
	west, err := extent(hash, West, origin, distanceKm, minPointsInRange)
	if err != nil {
		return nil, err
	}

	// Walk to the grid's northwest corner, then sweep row by row southward,
	// each row west to east.
	rowStart := hash
	for i := 0; i < north; i++ {
		rowStart, _ = Neighbor(rowStart, North)
	}
	for i := 0; i < west; i++ {
		rowStart, _ = Neighbor(rowStart, West)
	}

	var cells []string
	for row := 0; row <= north+south; row++ {
		candidate := rowStart
		for col := 0; col <= 2*west; col++ {
			if candidate == hash {
				cells = append(cells, candidate)
			} else {
				count, err := pointsInRange(candidate, origin, distanceKm)
				if err != nil {
					return nil, err
				}
				if count >= minPointsInRange {
					cells = append(cells, candidate)
				}
			}
			if col < 2*west {
				candidate, _ = Neighbor(candidate, East)
			}
		}
		if row < north+south {
			rowStart, _ = Neighbor(rowStart, South)
		}
	}

	return cells, nil
}

// extent counts how many consecutive cells qualify when stepping outward
// from the center in one direction.
func extent(hash string, dir Direction, origin geo.Coordinate, distanceKm float64, minPoints int) (int, error) {
	steps := 0
	current := hash
	for {
		next, err := Neighbor(current, dir)
		if err != nil {
			return 0, err
		}
		count, err := pointsInRange(next, origin, distanceKm)
		if err != nil {
			return 0, err
		}
		if count < minPoints {
			return steps, nil
		}
		steps++
		current = next
	}
}

// pointsInRange decodes a cell and counts how many of its four corners and
// centroid lie within distanceKm of the origin.
func pointsInRange(hash string, origin geo.Coordinate, distanceKm float64) (int, error) {
	cell, err := Decode(hash)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, p := range [5]geo.Coordinate{
		cell.NorthWest, cell.NorthEast, cell.SouthWest, cell.SouthEast, cell.Centroid,
	} {
		if geo.DistanceKm(origin, p) <= distanceKm {
			count++
		}
	}
	return count, nil
}
