package geohash

import (
	"fmt"
	"strings"
)

// Direction is one of the eight compass directions a cell can be stepped in.
type Direction string

const (
	North     Direction = "n"
	South     Direction = "s"
	East      Direction = "e"
	West      Direction = "w"
	NorthEast Direction = "ne"
	NorthWest Direction = "nw"
	SouthEast Direction = "se"
	SouthWest Direction = "sw"
)

// The neighbor tables are permutations of the base-32 alphabet: the index of
// a cell's last character in the table for (direction, parity) is the
// alphabet index of the neighboring cell's last character. The border tables
// list the characters whose cell touches the parent's edge in that
// direction, so stepping past them carries into the parent cell. Row 0
// applies to even-length hashes, row 1 to odd-length ones; the odd row of
// each direction is the even row of the perpendicular axis because the bit
// interleaving flips axes every character.
var neighborTables = map[Direction][2]string{
	North: {"p0r21436x8zb9dcf5h7kjnmqesgutwvy", "bc01fg45238967deuvhjyznpkmstqrwx"},
	South: {"14365h7k9dcfesgujnmqp0r2twvyx8zb", "238967debc01fg45kmstqrwxuvhjyznp"},
	East:  {"bc01fg45238967deuvhjyznpkmstqrwx", "p0r21436x8zb9dcf5h7kjnmqesgutwvy"},
	West:  {"238967debc01fg45kmstqrwxuvhjyznp", "14365h7k9dcfesgujnmqp0r2twvyx8zb"},
}

var borderTables = map[Direction][2]string{
	North: {"prxz", "bcfguvyz"},
	South: {"028b", "0145hjnp"},
	East:  {"bcfguvyz", "prxz"},
	West:  {"0145hjnp", "028b"},
}

// Diagonal steps are compositions of two cardinal steps, vertical first.
var diagonals = map[Direction][2]Direction{
	NorthEast: {North, East},
	NorthWest: {North, West},
	SouthEast: {South, East},
	SouthWest: {South, West},
}

// Neighbor returns the geohash of the adjacent cell in the given direction.
// The result always has the same length as the input. Adjacency across the
// antimeridian and the poles is not handled; at those edges the carry simply
// stops at the top-level cell.
func Neighbor(hash string, dir Direction) (string, error) {
	if err := validate(hash); err != nil {
		return "", err
	}
	if steps, ok := diagonals[dir]; ok {
		return cardinalNeighbor(cardinalNeighbor(hash, steps[0]), steps[1]), nil
	}
	if _, ok := neighborTables[dir]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}
	return cardinalNeighbor(hash, dir), nil
}

// AllNeighbors returns the eight cells surrounding a hash, starting
// northwest and proceeding clockwise.
func AllNeighbors(hash string) ([]string, error) {
	order := [8]Direction{NorthWest, North, NorthEast, East, SouthEast, South, SouthWest, West}

	neighbors := make([]string, 0, len(order))
	for _, dir := range order {
		neighbor, err := Neighbor(hash, dir)
		if err != nil {
			return nil, err
		}
		neighbors = append(neighbors, neighbor)
	}
	return neighbors, nil
}

// cardinalNeighbor steps one cell in a cardinal direction. When the last
// character sits on the border of its parent cell the parent is stepped
// too, recursively; the recursion is bounded by the hash length.
func cardinalNeighbor(hash string, dir Direction) string {
	last := hash[len(hash)-1]
	parent := hash[:len(hash)-1]
	parity := len(hash) % 2

	if parent != "" && strings.IndexByte(borderTables[dir][parity], last) >= 0 {
		parent = cardinalNeighbor(parent, dir)
	}

	idx := strings.IndexByte(neighborTables[dir][parity], last)
	return parent + string(base32[idx])
}
