package main

import (
	"context"
	"flag"
	"log"

	pathkithttp "github.com/lintang-b-s/pathkit/pkg/http"
	"github.com/lintang-b-s/pathkit/pkg/http/usecases"
	"github.com/lintang-b-s/pathkit/pkg/loader"
	"github.com/lintang-b-s/pathkit/pkg/logger"
	"github.com/lintang-b-s/pathkit/pkg/spatialindex"
	"github.com/lintang-b-s/pathkit/pkg/util"

	"github.com/lintang-b-s/pathkit/pkg/engine"
	"go.uber.org/zap"
)

var (
	edgeFile     = flag.String("edges", "", "edge CSV file (from,to,weight), .bz2 accepted")
	vertexFile   = flag.String("vertices", "", "optional vertex CSV file (id[,label[,lat,lon]])")
	directed     = flag.Bool("directed", false, "treat edges as one-way arcs")
	configPath   = flag.String("config", "", "directory containing config.yaml")
	useRateLimit = flag.Bool("ratelimit", true, "enable the request rate limiter")
	snapRadiusKm = flag.Float64("snapradius", 0.5, "bounding-box radius in km for nearest-vertex snapping")
)

func main() {
	flag.Parse()
	if *edgeFile == "" {
		log.Fatal("-edges is required")
	}

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zlog.Sync()

	if *configPath != "" {
		if err := util.ReadConfig(*configPath); err != nil {
			zlog.Fatal("reading config", zap.Error(err))
		}
	}

	graph, err := loader.NewLoader(zlog).LoadGraph(*edgeFile, *vertexFile, *directed)
	if err != nil {
		zlog.Fatal("loading graph", zap.Error(err))
	}
	zlog.Info("graph loaded",
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))

	eng := engine.NewEngine(graph, zlog)

	spatialIndex := spatialindex.NewRtree()
	spatialIndex.Build(graph, *snapRadiusKm, zlog)

	routingService := usecases.NewRoutingService(zlog, eng, spatialIndex)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := pathkithttp.GracefulShutdown()
		zlog.Info("shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	server := pathkithttp.NewServer(zlog)
	if err := server.Use(ctx, *useRateLimit, routingService); err != nil {
		zlog.Error("server stopped", zap.Error(err))
	}
}
