package flow

import "fmt"

// Verify checks that the flow assignment in res is a feasible flow of value
// res.MaxFlow:
//   - 0 ≤ flow ≤ capacity on every edge, and self-loops carry nothing;
//   - inflow equals outflow at every vertex other than source and sink;
//   - the source's net outflow and the sink's net inflow both equal MaxFlow.
//
// It returns nil or the first *InvariantError encountered.
//
// Complexity: O(V + E).
func (res *Result) Verify() error {
	fail := func(format string, args ...interface{}) error {
		return &InvariantError{Algorithm: res.Algorithm, Reason: fmt.Sprintf(format, args...)}
	}
	if res.MaxFlow < 0 {
		return fail("negative flow value %d", res.MaxFlow)
	}

	in := make(map[string]int64)
	out := make(map[string]int64)
	for _, ef := range res.Flows {
		if ef.Flow < 0 || ef.Flow > ef.Capacity {
			return fail("edge %q→%q carries %d of capacity %d", ef.From, ef.To, ef.Flow, ef.Capacity)
		}
		if ef.From == ef.To {
			if ef.Flow != 0 {
				return fail("self-loop on %q carries %d", ef.From, ef.Flow)
			}
			continue
		}
		out[ef.From] += ef.Flow
		in[ef.To] += ef.Flow
	}

	for v := range mergeKeys(in, out) {
		if v == res.Source || v == res.Sink {
			continue
		}
		if in[v] != out[v] {
			return fail("vertex %q: inflow %d != outflow %d", v, in[v], out[v])
		}
	}
	if res.Source == res.Sink {
		if res.MaxFlow != 0 {
			return fail("source equals sink but flow is %d", res.MaxFlow)
		}
		return nil
	}
	if net := out[res.Source] - in[res.Source]; net != res.MaxFlow {
		return fail("source %q net outflow %d != max flow %d", res.Source, net, res.MaxFlow)
	}
	if net := in[res.Sink] - out[res.Sink]; net != res.MaxFlow {
		return fail("sink %q net inflow %d != max flow %d", res.Sink, net, res.MaxFlow)
	}

	return nil
}

// mergeKeys returns the union of the key sets of a and b.
func mergeKeys(a, b map[string]int64) map[string]struct{} {
	keys := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}

	return keys
}
