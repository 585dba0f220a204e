package gis

import (
	"os"
	"strings"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadGeoJSONLayer reads a FeatureCollection file and normalizes every
// LineString / MultiLineString feature into LineGeometries. features with
// other geometry types are skipped.
func LoadGeoJSONLayer(filename string, kind pkg.EdgeKind, defaultName string) (*Layer, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrDataLoad, "failed to load layer file %s", filename)
	}
	return ParseGeoJSONLayer(data, kind, defaultName)
}

func ParseGeoJSONLayer(data []byte, kind pkg.EdgeKind, defaultName string) (*Layer, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrDataLoad, "failed to parse geojson layer")
	}

	layer := NewLayer(kind, defaultName)
	for _, f := range fc.Features {
		name := f.Properties.MustString("name", defaultName)
		if name == "" {
			name = defaultName
		}
		oneway := parseOneway(f.Properties.MustString("oneway", ""))

		switch geom := f.Geometry.(type) {
		case orb.LineString:
			layer.Add(NewLineGeometry(pointsFromLine(geom), name, oneway))
		case orb.MultiLineString:
			for _, line := range geom {
				layer.Add(NewLineGeometry(pointsFromLine(line), name, oneway))
			}
		}
	}
	return layer, nil
}

// LoadFeatureCollection reads a raw FeatureCollection, used for the buildings
// overlay which is passed through to the map ui untouched.
func LoadFeatureCollection(filename string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrDataLoad, "failed to load %s", filename)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrDataLoad, "failed to parse %s", filename)
	}
	return fc, nil
}

func pointsFromLine(line orb.LineString) []datastructure.Point {
	coords := make([]datastructure.Point, len(line))
	for i, p := range line {
		coords[i] = datastructure.NewPoint(p[0], p[1])
	}
	return coords
}

func parseOneway(value string) pkg.OnewayType {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1":
		return pkg.FORWARD_ONLY
	case "-1", "reverse":
		return pkg.BACKWARD_ONLY
	default:
		return pkg.BIDIRECTIONAL
	}
}
