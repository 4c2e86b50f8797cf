package geohash

import (
	"errors"
	"fmt"
	"strings"

	"geohash-service/geo"
)

// base32 is the geohash alphabet: the 32 base-32 digits minus a, i, l and o,
// which are too easy to misread.
const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// DefaultPrecision is the hash length used when the caller does not pick one.
const DefaultPrecision = 8

// Bit weights of one base-32 character, most significant first.
var bitMasks = [5]int{16, 8, 4, 2, 1}

var (
	ErrInvalidPrecision     = errors.New("geohash: precision must be positive")
	ErrInvalidHashCharacter = errors.New("geohash: character outside the geohash alphabet")
	ErrEmptyHash            = errors.New("geohash: empty hash")
	ErrInvalidDirection     = errors.New("geohash: unknown direction")
	ErrInvalidMinPoints     = errors.New("geohash: min points in range must be between 1 and 5")
)

// Cell is the rectangular region a geohash string denotes, with its four
// corners and centroid in decimal degrees.
type Cell struct {
	NorthWest geo.Coordinate `json:"north_west"`
	NorthEast geo.Coordinate `json:"north_east"`
	SouthWest geo.Coordinate `json:"south_west"`
	SouthEast geo.Coordinate `json:"south_east"`
	Centroid  geo.Coordinate `json:"centroid"`
}

// interval is one axis of the shrinking bounding box, narrowed bit by bit.
type interval struct {
	lo, hi float64
}

func (iv *interval) mid() float64 {
	return (iv.lo + iv.hi) / 2
}

// refine narrows the interval to its lower half when the masked bit of cd is
// clear, or its upper half when it is set.
func (iv *interval) refine(cd, mask int) {
	if cd&mask == 0 {
		iv.hi = iv.mid()
	} else {
		iv.lo = iv.mid()
	}
}

func lonInterval() interval { return interval{-180, 180} }
func latInterval() interval { return interval{-90, 90} }

// Encode returns the geohash of a coordinate at the default precision.
func Encode(c geo.Coordinate) string {
	hash, _ := EncodeWithPrecision(c, DefaultPrecision)
	return hash
}

// EncodeWithPrecision returns the geohash of a coordinate with the given
// number of characters. Encoding never fails for coordinates inside the legal
// latitude/longitude domain and any positive precision.
func EncodeWithPrecision(c geo.Coordinate, precision int) (string, error) {
	if precision <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPrecision, precision)
	}

	lon := lonInterval()
	lat := latInterval()

	var sb strings.Builder
	sb.Grow(precision)

	even := true // longitude is decided first
	for sb.Len() < precision {
		cd := 0
		for _, mask := range bitMasks {
			if even {
				if mid := lon.mid(); c.Longitude > mid {
					cd |= mask
					lon.lo = mid
				} else {
					lon.hi = mid
				}
			} else {
				if mid := lat.mid(); c.Latitude > mid {
					cd |= mask
					lat.lo = mid
				} else {
					lat.hi = mid
				}
			}
			even = !even
		}
		sb.WriteByte(base32[cd])
	}

	return sb.String(), nil
}

// Decode returns the cell a geohash string denotes.
func Decode(hash string) (Cell, error) {
	if err := validate(hash); err != nil {
		return Cell{}, err
	}

	lon := lonInterval()
	lat := latInterval()

	even := true
	for i := 0; i < len(hash); i++ {
		cd := strings.IndexByte(base32, hash[i])
		for _, mask := range bitMasks {
			if even {
				lon.refine(cd, mask)
			} else {
				lat.refine(cd, mask)
			}
			even = !even
		}
	}

	return Cell{
		NorthWest: geo.Coordinate{Latitude: lat.hi, Longitude: lon.lo},
		NorthEast: geo.Coordinate{Latitude: lat.hi, Longitude: lon.hi},
		SouthWest: geo.Coordinate{Latitude: lat.lo, Longitude: lon.lo},
		SouthEast: geo.Coordinate{Latitude: lat.lo, Longitude: lon.hi},
		Centroid:  geo.Coordinate{Latitude: lat.mid(), Longitude: lon.mid()},
	}, nil
}

// validate rejects empty hashes and characters outside the alphabet before
// any interval arithmetic runs.
func validate(hash string) error {
	if hash == "" {
		return ErrEmptyHash
	}
	for i := 0; i < len(hash); i++ {
		if strings.IndexByte(base32, hash[i]) < 0 {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidHashCharacter, hash[i], i)
		}
	}
	return nil
}
