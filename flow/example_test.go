package flow_test

import (
	"fmt"

	"github.com/katalvlaran/trafficflow/core"
	"github.com/katalvlaran/trafficflow/flow"
)

// ExampleEdmondsKarp demonstrates Edmonds–Karp on a two-path network.
// Graph:
//
//	A→B(10)→D(10)
//	A→C(5)→D(5)
//
// Expected max-flow = 10 + 5 = 15
func ExampleEdmondsKarp() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 10)
	_ = g.AddEdge("B", "D", 10)
	_ = g.AddEdge("A", "C", 5)
	_ = g.AddEdge("C", "D", 5)

	res, _ := flow.EdmondsKarp(g, "A", "D", flow.DefaultOptions())
	fmt.Println(res.MaxFlow)
	// Output:
	// 15
}

// ExampleDinic demonstrates Dinic on a network with a cycle.
// Graph: A→B(10)→C(10)→A(10), C→D(5)
func ExampleDinic() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 10)
	_ = g.AddEdge("B", "C", 10)
	_ = g.AddEdge("C", "A", 10)
	_ = g.AddEdge("C", "D", 5)

	res, _ := flow.Dinic(g, "A", "D", flow.DefaultOptions())
	fmt.Println(res.MaxFlow)
	// Output:
	// 5
}

// ExampleCompare runs both solvers and reports the agreed value with timings.
func ExampleCompare() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 10)
	_ = g.AddEdge("B", "C", 5)

	cmp, err := flow.Compare(g, "A", "C", flow.DefaultCompareOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cmp.MaxFlow)
	for _, run := range cmp.Runs {
		fmt.Println(run.Algorithm, run.MaxFlow)
	}
	// Output:
	// 5
	// Edmonds-Karp 5
	// Dinic 5
}
