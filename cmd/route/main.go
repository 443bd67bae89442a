package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lintang-b-s/pathkit/pkg/engine"
	"github.com/lintang-b-s/pathkit/pkg/engine/routing"
	"github.com/lintang-b-s/pathkit/pkg/loader"
	"github.com/lintang-b-s/pathkit/pkg/logger"
)

var (
	edgeFile   = flag.String("edges", "", "edge CSV file (from,to,weight), .bz2 accepted")
	vertexFile = flag.String("vertices", "", "optional vertex CSV file (id[,label[,lat,lon]])")
	directed   = flag.Bool("directed", false, "treat edges as one-way arcs")
	algorithm  = flag.String("algorithm", "dijkstra", "dijkstra | bfs | astar | bidirectional")
	source     = flag.String("source", "", "source vertex id")
	target     = flag.String("target", "", "target vertex id")
)

func main() {
	flag.Parse()
	if *edgeFile == "" || *source == "" || *target == "" {
		log.Fatal("-edges, -source and -target are required")
	}

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zlog.Sync()

	alg, err := routing.ParseAlgorithm(*algorithm)
	if err != nil {
		log.Fatal(err)
	}

	graph, err := loader.NewLoader(zlog).LoadGraph(*edgeFile, *vertexFile, *directed)
	if err != nil {
		log.Fatalf("loading graph: %v", err)
	}

	eng := engine.NewEngine(graph, zlog)
	route, err := eng.Search(context.Background(), alg, *source, *target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(strings.Join(route.GetVertexIds(), " -> "))
	fmt.Printf("total distance: %g\n", route.GetTotalDistance())
}
