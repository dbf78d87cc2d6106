package routechoice

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/routechoice/checkpoint"
	"github.com/katalvlaran/routechoice/choice"
	"github.com/katalvlaran/routechoice/demand"
	"github.com/katalvlaran/routechoice/enumerator"
	"github.com/katalvlaran/routechoice/loading"
	"github.com/katalvlaran/routechoice/netgraph"
	"github.com/katalvlaran/routechoice/pathfinder"
)

// scaleCutoffProb maps routechoice's caller-facing [0,1] "fraction of
// demand to drop below" knob onto choice.Config's [0.5, 1.0] binary-logit
// domain, per spec.md §4.5 item 2 / §9 Open Question (c).
func scaleCutoffProb(cutoffProb float64) float64 {
	return 0.5 + (1-cutoffProb)*0.5
}

// selectStrategy picks the route-enumeration back-end per cfg.BFSLE.
func selectStrategy(cfg Config) enumerator.Strategy {
	if cfg.BFSLE {
		return enumerator.BFSLE{}
	}
	return enumerator.LinkPenalisation{}
}

// selectSolver picks the path-finding back-end: A* with the haversine
// heuristic when requested and the graph carries coordinates, Dijkstra
// otherwise (spec.md §9 Open Question (b): A* ships fully wired).
func selectSolver(cfg Config, g *netgraph.Graph) pathfinder.Solver {
	if cfg.AStar && g.HasLatLon() {
		return pathfinder.AStarSolver{Heuristic: pathfinder.HaversineHeuristic}
	}
	return pathfinder.DijkstraSolver{}
}

func enumeratorConfig(cfg Config) enumerator.Config {
	return enumerator.Config{
		MaxRoutes: cfg.MaxRoutes,
		MaxDepth:  cfg.MaxDepth,
		MaxMisses: cfg.MaxMisses,
		Penalty:   cfg.Penalty,
	}
}

// partitionIndices splits [0, n) into cores contiguous chunks, as evenly
// as a remainder allows (spec.md §9: "static range partitioning over OD
// indices is acceptable; fairness is irrelevant").
func partitionIndices(n, cores int) [][]int {
	chunks := make([][]int, cores)
	base, rem := n/cores, n%cores
	next := 0
	for i := 0; i < cores; i++ {
		size := base
		if i < rem {
			size++
		}
		chunk := make([]int, size)
		for j := 0; j < size; j++ {
			chunk[j] = next
			next++
		}
		chunks[i] = chunk
	}
	return chunks
}

// resolveNode maps an external node ID to a compact index. If g carries
// no WithNodeMapping at all, external is interpreted as a compact index
// directly, so callers working in compact-index space from the start
// (the common case in tests and smaller deployments) can call Run without
// ever configuring a node mapping.
func resolveNode(g *netgraph.Graph, external int64) (int32, bool) {
	if g.HasNodeMapping() {
		return g.NodeIndex(external)
	}
	compact := int32(external)
	if int64(compact) != external || compact < 0 || compact >= g.NumNodes() {
		return 0, false
	}
	return compact, true
}

// externalIDs resolves a compact OD pair back to the external IDs a
// choice.Row reports, falling back to the compact indices themselves when
// g carries no WithNodeMapping.
func externalIDs(g *netgraph.Graph, od ODPair) (originID, destinationID int64) {
	if id, ok := g.ExternalNodeID(od.Origin); ok {
		originID = id
	} else {
		originID = int64(od.Origin)
	}
	if id, ok := g.ExternalNodeID(od.Destination); ok {
		destinationID = id
	} else {
		destinationID = int64(od.Destination)
	}
	return originID, destinationID
}

// demandValues reads every column's value at od out of dem into a single
// name -> value map, the shape loading.Accumulator.Accumulate consumes.
// Columns with no entry for this OD are simply absent (equivalent to 0).
func demandValues(dem *demand.Table, od ODPair, columns32, columns64 []string) map[string]float64 {
	values := make(map[string]float64, len(columns32)+len(columns64))
	for _, c := range columns32 {
		if v, ok := dem.Value32(c, od.Origin, od.Destination); ok {
			values[c] = float64(v)
		}
	}
	for _, c := range columns64 {
		if v, ok := dem.Value64(c, od.Origin, od.Destination); ok {
			values[c] = v
		}
	}
	return values
}

// Run is the single-OD convenience wrapper of spec.md §4.8
// (`run(origin, destination, demand=0, ...)`): it builds a one-entry
// demand.Table and delegates to Batched. It returns the first row of the
// OD's route set (nil if the set is empty: o == d, unreachable, or the
// OD was dropped at resolution) — callers that need every alternative
// route for an OD should call Batched directly and read Result.Rows.
func Run(g *netgraph.Graph, origin, destination int64, demandValue float64, cfg Config) (*choice.Row, []Warning, error) {
	oIdx, ok := resolveNode(g, origin)
	if !ok {
		return nil, nil, fmt.Errorf("%w: origin %d", ErrInvalidNode, origin)
	}
	dIdx, ok := resolveNode(g, destination)
	if !ok {
		return nil, nil, fmt.Errorf("%w: destination %d", ErrInvalidNode, destination)
	}

	dem := demand.NewTable()
	if err := dem.AddFrame64("demand", []int32{oIdx}, []int32{dIdx}, []float64{demandValue}); err != nil {
		return nil, nil, err
	}

	cfg.StoreResults = true
	result, warn, err := Batched(g, dem, cfg, nil)
	if err != nil {
		return nil, nil, err
	}
	if len(result.Rows) == 0 {
		return nil, warn, nil
	}
	row := result.Rows[0]
	return &row, warn, nil
}

// Batched is the Orchestrator's batch entry point (spec.md §4.8): it
// validates cfg and every OD in dem up front (failures surface
// synchronously with no partial state), fans out route enumeration, PSL
// scoring, and eager link-loading across cfg.Cores worker goroutines via
// golang.org/x/sync/errgroup, then reduces and, if w is non-nil, persists
// the result.
func Batched(g *netgraph.Graph, dem *demand.Table, cfg Config, w checkpoint.Writer) (*Result, []Warning, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, nil, err
	}
	if err := dem.Finalize(); err != nil {
		return nil, nil, err
	}

	rawPairs := dem.ODPairs()
	pairs, warn := dedupeODPairs(rawPairs)

	nNodes := g.NumNodes()
	for _, p := range pairs {
		if p[0] < 0 || p[0] >= nNodes || p[1] < 0 || p[1] >= nNodes {
			return nil, nil, fmt.Errorf("%w: OD (%d,%d)", ErrInvalidNode, p[0], p[1])
		}
	}

	result := &Result{storeResults: cfg.StoreResults}
	if len(pairs) == 0 {
		return result, warn, nil
	}

	cores := cfg.Cores
	if cores <= 0 {
		cores = runtime.GOMAXPROCS(0)
	}
	if cores > len(pairs) {
		cores = len(pairs)
	}

	strategy := selectStrategy(cfg)
	solver := selectSolver(cfg, g)
	enumCfg := enumeratorConfig(cfg)
	scaledCutoff := scaleCutoffProb(cfg.CutoffProb)

	columns32, columns64 := dem.ColumnNames32(), dem.ColumnNames64()
	allColumns := make([]string, 0, len(columns32)+len(columns64))
	allColumns = append(allColumns, columns32...)
	allColumns = append(allColumns, columns64...)

	needRows := cfg.StoreResults || w != nil

	chunks := partitionIndices(len(pairs), cores)
	workerRows := make([][]choice.Row, cores)
	workerWarnings := make([][]Warning, cores)
	accumulators := make([]*loading.Accumulator, cores)

	eg, ctx := errgroup.WithContext(context.Background())
	for workerIdx, chunk := range chunks {
		workerIdx, chunk := workerIdx, chunk
		eg.Go(func() error {
			return runWorker(ctx, workerWorkload{
				g:            g,
				dem:          dem,
				cfg:          cfg,
				strategy:     strategy,
				solver:       solver,
				enumCfg:      enumCfg,
				scaledCutoff: scaledCutoff,
				columns32:    columns32,
				columns64:    columns64,
				allColumns:   allColumns,
				pairs:        pairs,
				chunk:        chunk,
				workerIdx:    workerIdx,
				needRows:     needRows,
				rowsOut:      &workerRows[workerIdx],
				warningsOut:  &workerWarnings[workerIdx],
				accumulators: accumulators,
			})
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	var allRows []choice.Row
	for i := range workerRows {
		allRows = append(allRows, workerRows[i]...)
		warn = append(warn, workerWarnings[i]...)
	}

	if cfg.EagerLinkLoading {
		result.Loading = loading.Reduce(accumulators)
	}

	if w != nil {
		if err := w.WriteBatch(context.Background(), allRows); err != nil {
			return nil, warn, err
		}
		result.storeResults = false
		return result, warn, nil
	}

	if cfg.StoreResults {
		result.Rows = allRows
	}
	return result, warn, nil
}

// workerWorkload bundles the read-only, batch-wide state one worker
// goroutine needs; grouped into a struct rather than a long parameter
// list since runWorker is already reading several of dijkstra.Dijkstra's
// "one runner, several collaborators" shape's worth of fields.
type workerWorkload struct {
	g            *netgraph.Graph
	dem          *demand.Table
	cfg          Config
	strategy     enumerator.Strategy
	solver       pathfinder.Solver
	enumCfg      enumerator.Config
	scaledCutoff float64
	columns32    []string
	columns64    []string
	allColumns   []string
	pairs        [][2]int32
	chunk        []int
	workerIdx    int
	needRows     bool
	rowsOut      *[]choice.Row
	warningsOut  *[]Warning
	accumulators []*loading.Accumulator
}

// runWorker processes one worker's OD chunk sequentially, exactly
// spec.md §4.8's "Per-OD in parallel" steps 1-5: resolve, block, invoke
// the enumerator, compute PSL and loadings, unblock. All per-worker
// state (Workspace, Scratch, CostScratch, LCG, Accumulator) is allocated
// once here, before the loop, per spec.md §5.
func runWorker(ctx context.Context, wl workerWorkload) error {
	g := wl.g
	ws := g.NewWorkspace()
	pfScratch := pathfinder.NewScratch(g.NumNodes())
	costScratch := enumerator.NewCostScratch(g.NumLinks())
	rng := enumerator.DeriveLCG(wl.cfg.Seed, uint64(wl.workerIdx))

	var acc *loading.Accumulator
	if wl.cfg.EagerLinkLoading {
		acc = loading.NewAccumulator(int(g.NumNetworkLinks()), wl.allColumns, wl.cfg.SelectLinks)
		wl.accumulators[wl.workerIdx] = acc
	}

	var rows []choice.Row
	var warn []Warning

	for _, idx := range wl.chunk {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		p := wl.pairs[idx]
		od := ODPair{Origin: p[0], Destination: p[1]}
		if od.Origin == od.Destination {
			continue // spec.md §4.3 common contract: empty set, silent
		}

		blocked := g.BlockCentroidFlows()
		if blocked {
			ws.Block(od.Origin, od.Destination)
		}
		routeSet, err := wl.strategy.Enumerate(ws, wl.solver, pfScratch, costScratch, od.Origin, od.Destination, wl.enumCfg, rng)
		if blocked {
			ws.Unblock()
		}
		if err != nil {
			return err
		}

		var psl *choice.Result
		if wl.cfg.PathSizeLogit && routeSet.Len() > 0 {
			r, w, err := choice.Compute(routeSet.Routes, g, choice.Config{
				CutoffProb: wl.scaledCutoff,
				Beta:       wl.cfg.Beta,
			})
			if err != nil {
				return err
			}
			psl = r
			for _, ww := range w {
				odCopy := od
				warn = append(warn, Warning{Code: ww.Code, Message: ww.Message, OD: &odCopy})
			}
		}

		originID, destinationID := externalIDs(g, od)
		odRows := choice.BuildRows(originID, destinationID, routeSet.Routes, g, psl)
		if wl.cfg.Where != nil {
			filtered := odRows[:0]
			for _, row := range odRows {
				if wl.cfg.Where(row) {
					filtered = append(filtered, row)
				}
			}
			odRows = filtered
		}

		if wl.cfg.EagerLinkLoading && psl != nil {
			values := demandValues(wl.dem, od, wl.columns32, wl.columns64)
			for j, route := range routeSet.Routes {
				acc.Accumulate(originID, destinationID, route, psl.Probability[j], values, g, wl.cfg.SelectLinks)
			}
		}

		if wl.needRows {
			rows = append(rows, odRows...)
		}
	}

	*wl.rowsOut = rows
	*wl.warningsOut = warn
	return nil
}
