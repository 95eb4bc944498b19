// Package flyover plans full-coverage inspection flights for an aerial vehicle
// inside a mapped indoor space.
//
// What is flyover?
//
//	A grid planner and a small service around it:
//		• Grid: cell lattice over a usable-area rectangle, obstacle classification
//		• Graph: immutable 4-connected cell graph with physical edge lengths
//		• Shortest paths: Dijkstra with deterministic tie-breaking
//		• Coverage: one closed tour over every reachable cell (greedy nearest)
//		• Missions: runner payloads, status polling, progress tracking
//
// Packages:
//
//	core/      CellID, Graph, Builder and the shared sentinel errors
//	gridgraph/ GridGeometry, OccupancyClassifier, GraphBuilder, components
//	bfs/       hop-count traversal used for connectivity
//	dijkstra/  single-source shortest paths, path reconstruction, all-pairs table
//	coverage/  the closed coverage tour
//	snapshot/  {nodes, edges, meta} graph document and topology input
//	mission/   tracker, poller, playback, runner client, mission request
//
// Quick example, a 3×1 corridor planned from its first cell:
//
//	0_0 ── 1_0 ── 2_0
//
//	route, _ := coverage.Plan(g)
//	// route.Nodes:       [0_0 1_0 2_0 1_0 0_0]
//	// route.ReturnStart: 3
//
// The service (cmd/flyover) persists graphs and labels in sqlite and exposes
// the planner over HTTP.
package flyover
