// Package loader constructs Graph values from CSV input. It is construction
// glue only: the graph it hands back is immutable and there is no writer,
// persisting graphs is out of scope.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"go.uber.org/zap"
)

var (
	ErrBadEdgeRecord   = errors.New("loader: edge record must be from,to,weight")
	ErrBadVertexRecord = errors.New("loader: vertex record must be id[,label[,lat,lon]]")
)

type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadGraph reads an edge CSV (rows of from,to,weight) and an optional
// vertex CSV (rows of id[,label[,lat,lon]]) and builds a Graph. With an
// empty vertexPath the vertex set is inferred from the edge endpoints, in
// first-appearance order. Files ending in .bz2 are decompressed
// transparently. Every edge row goes through datastructure.NewEdge, so a
// negative weight fails the load, never a later search.
func (l *Loader) LoadGraph(edgePath, vertexPath string, directed bool) (*da.Graph, error) {
	edges, endpoints, err := l.readEdges(edgePath)
	if err != nil {
		return nil, err
	}

	var vertices []da.Vertex
	if vertexPath != "" {
		vertices, err = l.readVertices(vertexPath)
		if err != nil {
			return nil, err
		}
	} else {
		vertices = make([]da.Vertex, 0, len(endpoints))
		seen := make(map[string]struct{}, len(endpoints))
		for _, id := range endpoints {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			vertices = append(vertices, da.NewVertex(id, ""))
		}
	}

	g, err := da.NewGraph(vertices, edges, directed)
	if err != nil {
		return nil, err
	}

	l.logger.Info("graph loaded",
		zap.String("edgeFile", edgePath),
		zap.Int("vertices", g.NumberOfVertices()),
		zap.Int("edges", g.NumberOfEdges()),
		zap.Bool("directed", directed))

	return g, nil
}

func (l *Loader) readEdges(path string) ([]da.Edge, []string, error) {
	r, closeFn, err := openMaybeCompressed(path)
	if err != nil {
		return nil, nil, err
	}
	defer closeFn()

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	edges := make([]da.Edge, 0)
	endpoints := make([]string, 0)
	line := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("loader: %s: %w", path, err)
		}
		line++

		if line == 1 && isEdgeHeader(record) {
			continue
		}
		if len(record) < 3 {
			return nil, nil, fmt.Errorf("%w: %s line %d", ErrBadEdgeRecord, path, line)
		}

		weight, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s line %d: %v", ErrBadEdgeRecord, path, line, err)
		}

		edge, err := da.NewEdge(strings.TrimSpace(record[0]), strings.TrimSpace(record[1]), weight)
		if err != nil {
			return nil, nil, fmt.Errorf("loader: %s line %d: %w", path, line, err)
		}
		edges = append(edges, edge)
		endpoints = append(endpoints, edge.GetFrom(), edge.GetTo())
	}

	return edges, endpoints, nil
}

func (l *Loader) readVertices(path string) ([]da.Vertex, error) {
	r, closeFn, err := openMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	vertices := make([]da.Vertex, 0)
	line := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: %s: %w", path, err)
		}
		line++

		if line == 1 && isVertexHeader(record) {
			continue
		}
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			return nil, fmt.Errorf("%w: %s line %d", ErrBadVertexRecord, path, line)
		}

		id := strings.TrimSpace(record[0])
		label := ""
		if len(record) >= 2 {
			label = strings.TrimSpace(record[1])
		}

		switch {
		case len(record) >= 4:
			lat, errLat := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
			lon, errLon := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
			if errLat != nil || errLon != nil {
				return nil, fmt.Errorf("%w: %s line %d", ErrBadVertexRecord, path, line)
			}
			vertices = append(vertices, da.NewVertexWithCoordinates(id, label, lat, lon))
		default:
			vertices = append(vertices, da.NewVertex(id, label))
		}
	}

	return vertices, nil
}

func openMaybeCompressed(path string) (io.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: %w", err)
	}

	if !strings.HasSuffix(path, ".bz2") {
		return f, f.Close, nil
	}

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	closeFn := func() error {
		if err := bz.Close(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return bz, closeFn, nil
}

func isEdgeHeader(record []string) bool {
	if len(record) < 3 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	return err != nil
}

func isVertexHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "id")
}
