package gis

import (
	"testing"

	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	fixtureLat = 8.9886
	fixtureLon = 7.3884
)

// offsetPoint places a vertex at a known meter offset from the fixture origin.
func offsetPoint(bearing, distMeter float64) datastructure.Point {
	lat, lon := geo.GetDestinationPoint(fixtureLat, fixtureLon, bearing, distMeter)
	return datastructure.NewPoint(lon, lat)
}

// eastwardLine builds a line of evenly spaced vertices running due east,
// starting northOffsetMeter north of the fixture origin.
func eastwardLine(northOffsetMeter float64, spacingMeter float64, count int) []datastructure.Point {
	startLat, startLon := geo.GetDestinationPoint(fixtureLat, fixtureLon, 0, northOffsetMeter)
	coords := make([]datastructure.Point, count)
	for i := 0; i < count; i++ {
		lat, lon := geo.GetDestinationPoint(startLat, startLon, 90, float64(i)*spacingMeter)
		coords[i] = datastructure.NewPoint(lon, lat)
	}
	return coords
}

func testBuilder(t *testing.T) *GraphBuilder {
	t.Helper()
	return NewGraphBuilder(zap.NewNop(), DefaultBridgingConfig())
}

func TestBuildDrivingHonorsOneway(t *testing.T) {
	coords := eastwardLine(0, 100, 3)
	roads := NewLayer(pkg.ROAD, pkg.DEFAULT_ROAD_NAME)
	roads.Add(NewLineGeometry(coords, "Obasanjo Way", pkg.FORWARD_ONLY))

	g, err := testBuilder(t).BuildDriving(roads)
	require.NoError(t, err)

	_, forward := g.EdgeBetween(coords[0], coords[1])
	_, backward := g.EdgeBetween(coords[1], coords[0])
	assert.True(t, forward)
	assert.False(t, backward)
}

func TestBuildDrivingEdgeWeights(t *testing.T) {
	coords := eastwardLine(0, 150, 2)
	roads := NewLayer(pkg.ROAD, pkg.DEFAULT_ROAD_NAME)
	roads.Add(NewLineGeometry(coords, "Obasanjo Way", pkg.BIDIRECTIONAL))

	g, err := testBuilder(t).BuildDriving(roads)
	require.NoError(t, err)

	e, ok := g.EdgeBetween(coords[0], coords[1])
	require.True(t, ok)
	assert.InDelta(t, 150.0, e.Weight, 1.0)
	assert.Equal(t, "Obasanjo Way", e.Name)
	assert.Equal(t, pkg.ROAD, e.Kind)
}

func TestBuildDrivingEmptyLayer(t *testing.T) {
	roads := NewLayer(pkg.ROAD, pkg.DEFAULT_ROAD_NAME)

	_, err := testBuilder(t).BuildDriving(roads)
	require.Error(t, err)
	assert.Equal(t, util.ErrEmptyGraph, util.ErrorCode(err))
}

func TestBuildDrivingSkipsDegenerateSegments(t *testing.T) {
	p := offsetPoint(90, 10)
	roads := NewLayer(pkg.ROAD, pkg.DEFAULT_ROAD_NAME)
	roads.Add(NewLineGeometry([]datastructure.Point{p, p, offsetPoint(90, 60)}, "Loop", pkg.BIDIRECTIONAL))

	g, err := testBuilder(t).BuildDriving(roads)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumberOfVertices())
	assert.Equal(t, 1, g.NumberOfEdges())
}

func TestBuildWalkingIgnoresOneway(t *testing.T) {
	coords := eastwardLine(0, 100, 2)
	roads := NewLayer(pkg.ROAD, pkg.DEFAULT_ROAD_NAME)
	roads.Add(NewLineGeometry(coords, "Obasanjo Way", pkg.FORWARD_ONLY))
	footpaths := NewLayer(pkg.FOOTPATH, pkg.DEFAULT_FOOTPATH_NAME)

	g, err := testBuilder(t).BuildWalking(roads, footpaths)
	require.NoError(t, err)

	_, forward := g.EdgeBetween(coords[0], coords[1])
	_, backward := g.EdgeBetween(coords[1], coords[0])
	assert.True(t, forward)
	assert.True(t, backward)
}

func TestBuildWalkingBridgesNearbyIslands(t *testing.T) {
	// a road running east and a footpath 20m north of it. the footpath's
	// west end is within the 30m footpath to road threshold, so bridging
	// must fuse the two islands into one component.
	road := eastwardLine(0, 100, 3)
	path := eastwardLine(20, 100, 3)

	roads := NewLayer(pkg.ROAD, pkg.DEFAULT_ROAD_NAME)
	roads.Add(NewLineGeometry(road, "Obasanjo Way", pkg.BIDIRECTIONAL))
	footpaths := NewLayer(pkg.FOOTPATH, pkg.DEFAULT_FOOTPATH_NAME)
	footpaths.Add(NewLineGeometry(path, "", pkg.BIDIRECTIONAL))

	g, err := testBuilder(t).BuildWalking(roads, footpaths)
	require.NoError(t, err)

	assert.True(t, g.IsConnected())
	e, ok := g.EdgeBetween(path[0], road[0])
	require.True(t, ok)
	assert.Equal(t, pkg.CONNECTION, e.Kind)
	assert.Equal(t, pkg.DEFAULT_FOOTPATH_NAME, e.Name)
	assert.InDelta(t, 20.0, e.Weight, 1.0)
}

func TestBuildWalkingLeavesDistantIslandsApart(t *testing.T) {
	// 50m exceeds every bridging threshold, so the islands stay separate.
	road := eastwardLine(0, 100, 3)
	path := eastwardLine(50, 100, 3)

	roads := NewLayer(pkg.ROAD, pkg.DEFAULT_ROAD_NAME)
	roads.Add(NewLineGeometry(road, "Obasanjo Way", pkg.BIDIRECTIONAL))
	footpaths := NewLayer(pkg.FOOTPATH, pkg.DEFAULT_FOOTPATH_NAME)
	footpaths.Add(NewLineGeometry(path, "", pkg.BIDIRECTIONAL))

	g, err := testBuilder(t).BuildWalking(roads, footpaths)
	require.NoError(t, err)

	assert.Equal(t, 2, g.NumberOfComponents())
	assert.False(t, g.SameComponent(road[0], path[0]))
}

func TestBuildGraphs(t *testing.T) {
	road := eastwardLine(0, 100, 3)
	path := eastwardLine(20, 100, 3)
	roads := NewLayer(pkg.ROAD, pkg.DEFAULT_ROAD_NAME)
	roads.Add(NewLineGeometry(road, "Obasanjo Way", pkg.FORWARD_ONLY))
	footpaths := NewLayer(pkg.FOOTPATH, pkg.DEFAULT_FOOTPATH_NAME)
	footpaths.Add(NewLineGeometry(path, "", pkg.BIDIRECTIONAL))

	graphs, err := BuildGraphs(zap.NewNop(), DefaultBridgingConfig(), roads, footpaths)
	require.NoError(t, err)

	// the footpath layer contributes to walking only
	assert.Equal(t, 3, graphs.Driving.NumberOfVertices())
	assert.Equal(t, 6, graphs.Walking.NumberOfVertices())
	assert.True(t, graphs.Walking.IsConnected())
}

func TestBuildWalkingBridgeKeepsExistingEdges(t *testing.T) {
	// two footpath vertices 35m apart already share a native edge. the 40m
	// footpath to footpath pass must not replace it with a Connection edge.
	coords := eastwardLine(0, 35, 2)
	roads := NewLayer(pkg.ROAD, pkg.DEFAULT_ROAD_NAME)
	footpaths := NewLayer(pkg.FOOTPATH, pkg.DEFAULT_FOOTPATH_NAME)
	footpaths.Add(NewLineGeometry(coords, "Quad Path", pkg.BIDIRECTIONAL))

	g, err := testBuilder(t).BuildWalking(roads, footpaths)
	require.NoError(t, err)

	e, ok := g.EdgeBetween(coords[0], coords[1])
	require.True(t, ok)
	assert.Equal(t, pkg.FOOTPATH, e.Kind)
	assert.Equal(t, "Quad Path", e.Name)
}
