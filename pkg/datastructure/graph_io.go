package datastructure

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/campusnav/pkg"
	"github.com/lintang-b-s/campusnav/pkg/util"
)

// graph snapshots are versioned plain text inside a bzip2 stream. the header
// is checked on read so a stale or foreign file is rejected instead of being
// trusted blindly.
const (
	graphSnapshotMagic   = "campusnav-graph"
	graphSnapshotVersion = 1
)

func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)

	names := make([]string, 0, 16)
	nameID := make(map[string]int, 16)
	internName := func(name string) int {
		if id, ok := nameID[name]; ok {
			return id
		}
		id := len(names)
		nameID[name] = id
		names = append(names, name)
		return id
	}

	vertexID := make(map[Point]int, len(g.vertices))
	for i, v := range g.vertices {
		vertexID[v] = i
	}

	numArcs := 0
	for _, v := range g.vertices {
		numArcs += len(g.adj[v])
	}

	fmt.Fprintf(w, "%s %d\n", graphSnapshotMagic, graphSnapshotVersion)
	fmt.Fprintf(w, "%d %d %d\n", len(g.vertices), g.numEdges, numArcs)

	for _, v := range g.vertices {
		lonF := strconv.FormatFloat(v.Lon, 'f', -1, 64)
		latF := strconv.FormatFloat(v.Lat, 'f', -1, 64)
		fmt.Fprintf(w, "%s %s\n", lonF, latF)
	}

	for _, v := range g.vertices {
		for _, e := range g.adj[v] {
			weightF := strconv.FormatFloat(e.Weight, 'f', -1, 64)
			fmt.Fprintf(w, "%d %d %s %d %d\n",
				vertexID[v], vertexID[e.To], weightF, e.Kind, internName(e.Name))
		}
	}

	fmt.Fprintf(w, "%d\n", len(names))
	for _, name := range names {
		fmt.Fprintf(w, "%s\n", name)
	}

	return w.Flush()
}

func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(bz)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)

	readLine := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", util.WrapErrorf(nil, util.ErrBadParamInput,
				"graph snapshot %s truncated", filename)
		}
		return sc.Text(), nil
	}

	header, err := readLine()
	if err != nil {
		return nil, err
	}
	var version int
	var magic string
	if _, err := fmt.Sscanf(header, "%s %d", &magic, &version); err != nil ||
		magic != graphSnapshotMagic || version != graphSnapshotVersion {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"%s is not a campusnav graph snapshot (header %q)", filename, header)
	}

	counts, err := readLine()
	if err != nil {
		return nil, err
	}
	var numVertices, numEdges, numArcs int
	if _, err := fmt.Sscanf(counts, "%d %d %d", &numVertices, &numEdges, &numArcs); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput,
			"invalid graph snapshot counts %q", counts)
	}

	g := NewGraph()
	for i := 0; i < numVertices; i++ {
		line, err := readLine()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
				"invalid vertex line %q", line)
		}
		lon, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, err
		}
		lat, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, err
		}
		g.AddVertex(NewPoint(lon, lat))
	}

	type rawArc struct {
		from, to int
		weight   float64
		kind     pkg.EdgeKind
		nameID   int
	}
	arcs := make([]rawArc, numArcs)
	for i := 0; i < numArcs; i++ {
		line, err := readLine()
		if err != nil {
			return nil, err
		}
		var kind int
		a := &arcs[i]
		if _, err := fmt.Sscanf(line, "%d %d %g %d %d",
			&a.from, &a.to, &a.weight, &kind, &a.nameID); err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput,
				"invalid edge line %q", line)
		}
		a.kind = pkg.EdgeKind(kind)
	}

	namesCount, err := readLine()
	if err != nil {
		return nil, err
	}
	numNames, err := strconv.Atoi(strings.TrimSpace(namesCount))
	if err != nil {
		return nil, err
	}
	names := make([]string, numNames)
	for i := 0; i < numNames; i++ {
		if names[i], err = readLine(); err != nil {
			return nil, err
		}
	}

	for _, a := range arcs {
		if a.from < 0 || a.from >= numVertices || a.to < 0 || a.to >= numVertices ||
			a.nameID < 0 || a.nameID >= numNames {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
				"graph snapshot references out of range vertex or name")
		}
		from := g.vertices[a.from]
		to := g.vertices[a.to]
		// arcs were dumped from adjacency lists, so re-adding them directly
		// reproduces the exact adjacency, including one-way edges.
		g.adj[from] = append(g.adj[from], NewEdge(to, a.weight, names[a.nameID], a.kind))
	}
	g.numEdges = numEdges

	g.ComputeComponents()
	return g, nil
}
