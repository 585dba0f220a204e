package gis

import (
	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
)

// LineGeometry is one normalized polyline from a source layer: an ordered
// vertex sequence plus its label and oneway restriction.
type LineGeometry struct {
	Coords []datastructure.Point
	Name   string
	Oneway pkg.OnewayType
}

func NewLineGeometry(coords []datastructure.Point, name string, oneway pkg.OnewayType) LineGeometry {
	return LineGeometry{Coords: coords, Name: name, Oneway: oneway}
}

// Layer is one geometry set (roads or footpaths) feeding the graph builder.
type Layer struct {
	Geometries  []LineGeometry
	Kind        pkg.EdgeKind
	DefaultName string
}

func NewLayer(kind pkg.EdgeKind, defaultName string) *Layer {
	return &Layer{
		Kind:        kind,
		DefaultName: defaultName,
	}
}

func (l *Layer) Add(geom LineGeometry) {
	l.Geometries = append(l.Geometries, geom)
}

func (l *Layer) NumberOfGeometries() int {
	return len(l.Geometries)
}
