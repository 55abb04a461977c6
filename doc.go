// Package trafficflow is the maximum-flow engine behind the traffic-network
// puzzle: given one-way roads with vehicle-per-minute capacities, how much
// traffic can travel from the source junction to the sink?
//
// What is inside:
//
//	core/    - string-labelled directed capacity graph and its immutable Snapshot
//	flow/    - Edmonds–Karp, Dinic and Ford–Fulkerson solvers, flow
//	           verification, and Compare, which runs Edmonds–Karp and Dinic
//	           side by side, times them and reports any disagreement
//	metrics/ - prometheus collectors for solver timings, divergences, verdicts
//	puzzle/  - rounds, a seeded round generator, TOML round files, grading
//	cmd/trafficflow - play one round from the terminal
//
// Quick example (three parallel routes, total 15):
//
//	      ┌── B(5) ──┐
//	  A ──┼── C(7) ──┼── T
//	      └── D(3) ──┘
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 5)
//	_ = g.AddEdge("B", "T", 5)
//	...
//	cmp, err := flow.Compare(g, "A", "T", flow.DefaultCompareOptions())
//	// cmp.MaxFlow == 15, cmp.Runs holds the Edmonds–Karp and Dinic timings.
//
//	go get github.com/katalvlaran/trafficflow
package trafficflow
