package geocode

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// NativeScale converts the search provider's fixed point WGS84 integers
// (mapx = lng * 1e7, mapy = lat * 1e7) to degrees.
const NativeScale = 1e7

var world = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// DecodeNative decodes provider-native coordinates. It reports false when
// either value is missing, unparsable or out of range.
func DecodeNative(mapX, mapY string) (orb.Point, bool) {
	mapX, mapY = strings.TrimSpace(mapX), strings.TrimSpace(mapY)
	if mapX == "" || mapY == "" {
		return orb.Point{}, false
	}
	x, err := strconv.ParseFloat(mapX, 64)
	if err != nil {
		return orb.Point{}, false
	}
	y, err := strconv.ParseFloat(mapY, 64)
	if err != nil {
		return orb.Point{}, false
	}
	p := orb.Point{x / NativeScale, y / NativeScale}
	return p, Valid(p)
}

// Valid reports whether p is a finite in-range lon/lat pair other than the
// (0, 0) placeholder providers emit for unknown locations.
func Valid(p orb.Point) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if p.Lon() == 0 && p.Lat() == 0 {
		return false
	}
	return world.Contains(p)
}
