// Package engine is the embedding facade: it owns a graph plus its routing
// engine and exposes single and batched searches to collaborators (CLI, HTTP
// service, embedders).
package engine

import (
	"context"

	"github.com/lintang-b-s/pathkit/pkg/concurrent"
	da "github.com/lintang-b-s/pathkit/pkg/datastructure"
	"github.com/lintang-b-s/pathkit/pkg/engine/routing"
	"go.uber.org/zap"
)

type Engine struct {
	routingEngine *routing.RoutingEngine
	logger        *zap.Logger
}

func NewEngine(graph *da.Graph, logger *zap.Logger) *Engine {
	return &Engine{
		routingEngine: routing.NewRoutingEngine(graph, logger),
		logger:        logger,
	}
}

func (e *Engine) GetRoutingEngine() *routing.RoutingEngine {
	return e.routingEngine
}

func (e *Engine) GetGraph() *da.Graph {
	return e.routingEngine.GetGraph()
}

func (e *Engine) Search(ctx context.Context, algorithm routing.Algorithm,
	sourceId, targetId string) (da.Route, error) {
	return e.routingEngine.Search(ctx, algorithm, sourceId, targetId)
}

func (e *Engine) SearchWithHeuristic(ctx context.Context, sourceId, targetId string,
	h routing.Heuristic) (da.Route, error) {
	return e.routingEngine.SearchWithHeuristic(ctx, sourceId, targetId, h)
}

type Query struct {
	SourceId string
	TargetId string
}

func NewQuery(sourceId, targetId string) Query {
	return Query{SourceId: sourceId, TargetId: targetId}
}

type BatchResult struct {
	Query Query
	Route da.Route
	Err   error
}

// BatchSearch runs the queries over the shared read-only graph on a worker
// pool. Each query owns its search state exclusively, so no locking is
// needed; results come back in input order.
func (e *Engine) BatchSearch(ctx context.Context, algorithm routing.Algorithm,
	queries []Query, numWorkers int) []BatchResult {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	type job struct {
		idx   int
		query Query
	}
	type indexedResult struct {
		idx    int
		result BatchResult
	}

	wp := concurrent.NewWorkerPool[job, indexedResult](numWorkers, len(queries))
	wp.Start(ctx, func(ctx context.Context, j job) indexedResult {
		route, err := e.routingEngine.Search(ctx, algorithm, j.query.SourceId, j.query.TargetId)
		return indexedResult{
			idx:    j.idx,
			result: BatchResult{Query: j.query, Route: route, Err: err},
		}
	})

	// the queue is sized to hold every job, AddJob never blocks here
	for i, q := range queries {
		wp.AddJob(job{idx: i, query: q})
	}
	wp.Close()
	wp.Wait()

	results := make([]BatchResult, len(queries))
	for r := range wp.CollectResults() {
		results[r.idx] = r.result
	}
	return results
}
