package gis

import (
	"testing"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roadsGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "Obasanjo Way", "oneway": "yes"},
      "geometry": {
        "type": "LineString",
        "coordinates": [[7.3884, 8.9886], [7.3890, 8.9890], [7.3895, 8.9893]]
      }
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {
        "type": "MultiLineString",
        "coordinates": [
          [[7.3900, 8.9900], [7.3905, 8.9904]],
          [[7.3910, 8.9910], [7.3915, 8.9914]]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Fountain"},
      "geometry": {"type": "Point", "coordinates": [7.3884, 8.9886]}
    }
  ]
}`

func TestParseGeoJSONLayer(t *testing.T) {
	layer, err := ParseGeoJSONLayer([]byte(roadsGeoJSON), pkg.ROAD, pkg.DEFAULT_ROAD_NAME)
	require.NoError(t, err)

	// one LineString, two lines from the MultiLineString, Point skipped
	require.Equal(t, 3, layer.NumberOfGeometries())
	assert.Equal(t, pkg.ROAD, layer.Kind)

	named := layer.Geometries[0]
	assert.Equal(t, "Obasanjo Way", named.Name)
	assert.Equal(t, pkg.FORWARD_ONLY, named.Oneway)
	assert.Equal(t, []datastructure.Point{
		datastructure.NewPoint(7.3884, 8.9886),
		datastructure.NewPoint(7.3890, 8.9890),
		datastructure.NewPoint(7.3895, 8.9893),
	}, named.Coords)

	for _, geom := range layer.Geometries[1:] {
		assert.Equal(t, pkg.DEFAULT_ROAD_NAME, geom.Name)
		assert.Equal(t, pkg.BIDIRECTIONAL, geom.Oneway)
		assert.Len(t, geom.Coords, 2)
	}
}

func TestParseGeoJSONLayerMalformed(t *testing.T) {
	_, err := ParseGeoJSONLayer([]byte(`{"type": "FeatureCollection", "features": [`),
		pkg.ROAD, pkg.DEFAULT_ROAD_NAME)
	require.Error(t, err)
	assert.Equal(t, util.ErrDataLoad, util.ErrorCode(err))
}

func TestParseOneway(t *testing.T) {
	tests := []struct {
		value string
		want  pkg.OnewayType
	}{
		{"yes", pkg.FORWARD_ONLY},
		{"TRUE", pkg.FORWARD_ONLY},
		{"1", pkg.FORWARD_ONLY},
		{"-1", pkg.BACKWARD_ONLY},
		{"reverse", pkg.BACKWARD_ONLY},
		{"", pkg.BIDIRECTIONAL},
		{"no", pkg.BIDIRECTIONAL},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseOneway(tt.value), "oneway=%q", tt.value)
	}
}
