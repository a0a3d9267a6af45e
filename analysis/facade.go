package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphstat/community"
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/dispatch"
	"github.com/katalvlaran/graphstat/layout"
	"github.com/katalvlaran/graphstat/metrics"
	"github.com/katalvlaran/graphstat/registry"
	"github.com/katalvlaran/graphstat/scheduler"
)

// Analyze is the package's single public entry point. It normalises
// edges, builds the graph, validates the requested features and layout
// against the registries, submits independent work to a pool, and merges
// whatever comes back into a NodeId -> NodeStats table.
func Analyze(ctx context.Context, edges []EdgeInput, nodes []NodeInput, features []string, opts Options) (*AnalysisResult, error) {
	if opts.MaxIter <= 0 {
		opts.MaxIter = 100000
	}
	if opts.LouvainMaxIter <= 0 {
		opts.LouvainMaxIter = 100
	}
	if opts.Tol <= 0 {
		opts.Tol = 1e-6
	}
	if opts.Resolution <= 0 {
		opts.Resolution = 1.0
	}
	if opts.SmallThreshold <= 0 {
		opts.SmallThreshold = 500
	}

	normalized, err := normalizeEdges(edges)
	if err != nil {
		return nil, err
	}
	g, attrs, err := buildGraph(normalized, nodes)
	if err != nil {
		return nil, err
	}

	for _, f := range features {
		if !validFeatures[f] {
			return nil, fmt.Errorf("analysis: feature %q: %w", f, ErrUnknownFeature)
		}
	}

	effective := make(map[string]bool, len(features))
	order := make([]string, 0, len(features)+1)
	for _, f := range features {
		if !effective[f] {
			effective[f] = true
			order = append(order, f)
		}
	}
	if opts.Layout != nil {
		if _, err := registry.Layout(opts.Layout.Algorithm); err != nil {
			return nil, err
		}
		if opts.Layout.Algorithm == "spectral" && !effective[FeatureLaplacian] {
			effective[FeatureLaplacian] = true
			order = append(order, FeatureLaplacian)
		}
	}
	if effective[FeatureLaplacian] && opts.LaplacianMax > 0 && g.NumNodes() > opts.LaplacianMax {
		return nil, fmt.Errorf("analysis: n=%d exceeds laplacian ceiling=%d: %w", g.NumNodes(), opts.LaplacianMax, metrics.ErrGraphTooLarge)
	}

	poolOpts := scheduler.DefaultOptions()
	poolOpts.SmallThreshold = opts.SmallThreshold
	if opts.MaxWorkers > 0 {
		poolOpts.Workers = opts.MaxWorkers
	}
	pool := scheduler.NewPool(poolOpts)
	defer pool.Close()

	type featureOutcome struct {
		name   string
		value  any
		status scheduler.Status
		err    error
		dur    time.Duration
	}

	// Every requested feature is independent, so all of them are
	// submitted to the pool at once and joined here; this fan-out-then-join
	// is exactly what errgroup models, unlike the pool's own persistent
	// workers below. Each task gets its own serialized copy of g: workers
	// share nothing mutable, so a kernel rebuilds its graph from payload
	// rather than closing over the live g.
	payload := dispatch.Serialize(g)
	results := make([]featureOutcome, len(order))
	var eg errgroup.Group
	var submitMu sync.Mutex
	var firstSubmitErr error
	for i, name := range order {
		i, name := i, name
		eg.Go(func() error {
			start := time.Now()
			taskCtx, cancel := context.WithTimeout(ctx, opts.timeout())
			defer cancel()
			h, submitErr := pool.Submit(taskCtx, g.NumNodes(), kernelFor(name, payload, opts), nil)
			if submitErr != nil {
				submitMu.Lock()
				if firstSubmitErr == nil {
					firstSubmitErr = submitErr
				}
				submitMu.Unlock()
				return nil
			}
			res, waitErr := h.Wait(context.Background())
			o := featureOutcome{name: name, dur: time.Since(start)}
			if waitErr != nil {
				o.status = scheduler.StatusFailed
				o.err = waitErr
			} else {
				o.status = res.Status
				o.value = res.Value
				o.err = res.Err
			}
			results[i] = o
			return nil
		})
	}
	_ = eg.Wait()
	if firstSubmitErr != nil {
		return nil, firstSubmitErr
	}

	outcomes := make(map[string]featureOutcome, len(order))
	for _, o := range results {
		outcomes[o.name] = o
	}
	if opts.Strict {
		for _, name := range order {
			if o := outcomes[name]; o.err != nil {
				return nil, &StrictError{Feature: name, Cause: toFeatureError(o.err)}
			}
		}
	}

	result := &AnalysisResult{
		Errors:  map[string]FeatureError{},
		Timings: map[string]time.Duration{},
	}
	for name, o := range outcomes {
		result.Timings[name] = o.dur
		if o.err != nil {
			result.Errors[name] = toFeatureError(o.err)
		}
	}
	ids := g.NodeIDs()
	rows := make(map[core.NodeID]*NodeStats, len(ids))
	for _, id := range ids {
		rows[id] = &NodeStats{ID: id, Attrs: attrs[id]}
	}

	if o, ok := outcomes[FeatureDegree]; ok && o.value != nil {
		m := o.value.(map[core.NodeID]int)
		for id, v := range m {
			v := v
			rows[id].Degree = &v
		}
	}
	if o, ok := outcomes[FeatureEigen]; ok && o.value != nil {
		m := o.value.(map[core.NodeID]float64)
		for id, v := range m {
			v := v
			rows[id].Eigenvector = &v
		}
	}
	if o, ok := outcomes[FeatureBetween]; ok && o.value != nil {
		m := o.value.(map[core.NodeID]float64)
		for id, v := range m {
			v := v
			rows[id].Betweenness = &v
		}
	}
	var clusteringMap map[core.NodeID]float64
	if o, ok := outcomes[FeatureClustering]; ok && o.value != nil {
		clusteringMap = o.value.(map[core.NodeID]float64)
		for id, v := range clusteringMap {
			v := v
			rows[id].Clustering = &v
		}
	}
	if o, ok := outcomes[FeatureCliques]; ok && o.value != nil {
		cliques := o.value.([][]core.NodeID)
		counts := metrics.CliqueCounts(g, cliques)
		for id, v := range counts {
			v := v
			rows[id].Cliques = &v
		}
	}
	var laplacian *metrics.LaplacianCoords
	if o, ok := outcomes[FeatureLaplacian]; ok && o.value != nil {
		laplacian = o.value.(*metrics.LaplacianCoords)
		for id, x := range laplacian.X {
			x := x
			rows[id].LaplacianX = &x
		}
		for id, y := range laplacian.Y {
			y := y
			rows[id].LaplacianY = &y
		}
	}
	var communityResult *community.Result
	if o, ok := outcomes[FeatureModularity]; ok && o.value != nil {
		communityResult = o.value.(*community.Result)
		for id, c := range communityResult.Communities {
			c := c
			rows[id].Community = &c
		}
	}

	result.Nodes = make([]NodeStats, 0, len(ids))
	for _, id := range ids {
		result.Nodes = append(result.Nodes, *rows[id])
	}

	if opts.GraphStats {
		gs, err := computeGraphStats(g, clusteringMap, communityResult)
		if err != nil {
			return nil, err
		}
		result.Graph = gs
	}

	if opts.Layout != nil {
		lr, err := runLayout(ctx, pool, dispatch.Serialize(g), g.NumNodes(), *opts.Layout, laplacian, opts)
		if err != nil {
			result.Errors[opts.Layout.Algorithm] = toFeatureError(err)
			if opts.Strict {
				return nil, &StrictError{Feature: opts.Layout.Algorithm, Cause: toFeatureError(err)}
			}
		} else {
			result.Layout = lr
		}
	}

	if len(result.Errors) == 0 {
		result.Errors = nil
	}

	return result, nil
}

func computeGraphStats(g *core.Graph, clustering map[core.NodeID]float64, comm *community.Result) (*GraphStats, error) {
	if clustering == nil {
		var err error
		clustering, err = metrics.Clustering(g)
		if err != nil {
			return nil, err
		}
	}
	stats, err := metrics.ComputeGraphStats(g, clustering)
	if err != nil {
		return nil, err
	}
	out := &GraphStats{
		Density:                stats.Density,
		AverageClustering:      stats.AverageClustering,
		AverageDegree:          stats.AverageDegree,
		ConnectedComponents:    stats.ConnectedComponents,
		Diameter:               stats.Diameter,
		HasDiameter:            stats.HasDiameter,
		AverageShortestPath:    stats.AverageShortestPath,
		HasAverageShortestPath: stats.HasAverageShortestPath,
	}
	if comm != nil {
		out.NumCommunities = comm.NumCommunities
		out.Modularity = comm.Modularity
		out.HasCommunities = true
	}
	return out, nil
}

// runLayout dispatches the requested layout through the pool; spectral
// reuses the laplacian coordinates already computed as a dependency
// (resolved transparently in Analyze before any feature was submitted).
// The worker reconstructs its own graph from payload rather than touching
// the caller's live g.
func runLayout(ctx context.Context, pool *scheduler.Pool, payload dispatch.Payload, numNodes int, req LayoutRequest, laplacian *metrics.LaplacianCoords, opts Options) (layout.Result, error) {
	taskCtx, cancel := context.WithTimeout(ctx, opts.timeout())
	defer cancel()

	kernel := func(ctx context.Context, progress scheduler.ProgressFunc) (any, error) {
		g, err := dispatch.Deserialize(payload)
		if err != nil {
			return nil, fmt.Errorf("analysis: runLayout: %w", err)
		}
		switch req.Algorithm {
		case "random":
			return layout.Random(g, req.Options)
		case "circular":
			return layout.Circular(g, req.Options)
		case "spiral":
			return layout.Spiral(g, req.Options)
		case "shell":
			return layout.Shell(g, req.Options)
		case "bipartite":
			return layout.Bipartite(g, req.Options)
		case "multipartite":
			return layout.Multipartite(g, req.Options)
		case "bfs":
			return layout.BFS(g, req.Options)
		case "spectral":
			return layout.Spectral(g, laplacian, req.Options)
		case "force-directed":
			return layout.ForceDirected(g, req.Options)
		case "kamada-kawai":
			return layout.KamadaKawai(g, req.Options)
		default:
			return nil, fmt.Errorf("analysis: runLayout: %w", ErrUnknownFeature)
		}
	}

	h, err := pool.Submit(taskCtx, numNodes, kernel, nil)
	if err != nil {
		return nil, err
	}
	res, err := h.Wait(context.Background())
	if err != nil {
		return nil, err
	}
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Value.(layout.Result), nil
}

// kernelFor builds the scheduler.Kernel for one metrics/community feature.
// Every kernel deserializes its own graph from payload on entry: pooled
// tasks run concurrently and must not share a mutable *core.Graph.
func kernelFor(name string, payload dispatch.Payload, opts Options) scheduler.Kernel {
	switch name {
	case FeatureDegree:
		return func(ctx context.Context, progress scheduler.ProgressFunc) (any, error) {
			g, err := dispatch.Deserialize(payload)
			if err != nil {
				return nil, fmt.Errorf("analysis: kernelFor(%s): %w", name, err)
			}
			return metrics.Degree(g)
		}
	case FeatureEigen:
		return func(ctx context.Context, progress scheduler.ProgressFunc) (any, error) {
			g, err := dispatch.Deserialize(payload)
			if err != nil {
				return nil, fmt.Errorf("analysis: kernelFor(%s): %w", name, err)
			}
			eigOpts := metrics.EigenvectorOptions{Tol: opts.Tol, MaxIter: opts.MaxIter}
			return metrics.EigenvectorCentrality(ctx, g, eigOpts, metrics.ProgressFunc(progress))
		}
	case FeatureBetween:
		return func(ctx context.Context, progress scheduler.ProgressFunc) (any, error) {
			g, err := dispatch.Deserialize(payload)
			if err != nil {
				return nil, fmt.Errorf("analysis: kernelFor(%s): %w", name, err)
			}
			return metrics.Betweenness(ctx, g, metrics.ProgressFunc(progress))
		}
	case FeatureClustering:
		return func(ctx context.Context, progress scheduler.ProgressFunc) (any, error) {
			g, err := dispatch.Deserialize(payload)
			if err != nil {
				return nil, fmt.Errorf("analysis: kernelFor(%s): %w", name, err)
			}
			return metrics.Clustering(g)
		}
	case FeatureCliques:
		return func(ctx context.Context, progress scheduler.ProgressFunc) (any, error) {
			g, err := dispatch.Deserialize(payload)
			if err != nil {
				return nil, fmt.Errorf("analysis: kernelFor(%s): %w", name, err)
			}
			return metrics.MaximalCliques(ctx, g)
		}
	case FeatureLaplacian:
		return func(ctx context.Context, progress scheduler.ProgressFunc) (any, error) {
			g, err := dispatch.Deserialize(payload)
			if err != nil {
				return nil, fmt.Errorf("analysis: kernelFor(%s): %w", name, err)
			}
			return metrics.LaplacianEigenvectors(ctx, g, opts.LaplacianMax, metrics.ProgressFunc(progress))
		}
	case FeatureModularity:
		return func(ctx context.Context, progress scheduler.ProgressFunc) (any, error) {
			g, err := dispatch.Deserialize(payload)
			if err != nil {
				return nil, fmt.Errorf("analysis: kernelFor(%s): %w", name, err)
			}
			louvainOpts := community.Options{Resolution: opts.Resolution, Seed: opts.Seed, MaxIter: opts.LouvainMaxIter}
			return community.Louvain(ctx, g, louvainOpts, community.ProgressFunc(progress))
		}
	default:
		return func(ctx context.Context, progress scheduler.ProgressFunc) (any, error) {
			return nil, fmt.Errorf("analysis: kernelFor(%s): %w", name, ErrUnknownFeature)
		}
	}
}

func toFeatureError(err error) FeatureError {
	var crash *scheduler.WorkerCrashError
	switch {
	case errors.Is(err, scheduler.ErrTimedOut):
		return FeatureError{Kind: KindTimedOut, Message: err.Error()}
	case errors.Is(err, scheduler.ErrCancelled):
		return FeatureError{Kind: KindCancelled, Message: err.Error()}
	case errors.Is(err, scheduler.ErrPoolExhausted):
		return FeatureError{Kind: KindPoolExhausted, Message: err.Error()}
	case errors.As(err, &crash):
		return FeatureError{Kind: KindWorkerCrash, Message: err.Error()}
	case errors.Is(err, layout.ErrPreconditionUnmet):
		return FeatureError{Kind: KindLayoutPreconditionUnmet, Message: err.Error()}
	case errors.Is(err, metrics.ErrGraphTooLarge):
		return FeatureError{Kind: KindGraphTooLarge, Message: err.Error()}
	default:
		return FeatureError{Kind: KindWorkerCrash, Message: err.Error()}
	}
}
