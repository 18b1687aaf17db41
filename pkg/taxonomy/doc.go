// Package taxonomy provides a mutable WordNet-style concept DAG (synsets)
// and the graph surgery needed to carve it into benchmark class splits.
//
// # Overview
//
// A taxonomy is a directed acyclic graph of concept nodes ([Synset]) where a
// node may have multiple parents. The [Graph] owns every node record in a
// central table addressed by stable id; parent/child edges are stored as
// id sets, so structural surgery (isolation, collapsing, excision) is a pure
// index-set rewrite with no dangling references.
//
// # Basic Usage
//
// Build a graph from flat records with [NewFromRecords], or assemble one
// manually with [Graph.AddSynset] and [Graph.AddEdge]:
//
//	g := taxonomy.New()
//	g.AddSynset("n01", "entity")
//	g.AddSynset("n02", "animal")
//	g.AddEdge("n01", "n02")
//
// Use [Graph.Validate] to verify acyclicity and link symmetry before running
// transformations.
//
// # Graph Surgery
//
// The split pipeline relies on four in-place operations:
//
//   - [Graph.Ancestors] / [Graph.AncestorsOfSet]: strict ancestor closure
//   - [Graph.Isolate]: cut all edges leaving a node set
//   - [Graph.Excise]: fully detach a single node
//   - [Graph.Collapse]: remove single-child nodes until a fixed point
//
// [Graph.CloneSet] deep-copies an isolated node set into a fresh graph so a
// split's subsequent surgery never perturbs another split's universe.
//
// # Paths and Ancestors
//
// [Graph.UpwardPaths] enumerates every maximal parent-edge path from a node,
// [Graph.IsDescendant] answers reachability, and
// [Graph.LowestCommonAncestor] computes the closest common ancestor of two
// leaves under either the "longest" or "all" path policy.
//
// # Determinism
//
// Wherever iteration order is observable (frontier expansion, collapse
// passes, path enumeration), nodes are visited in ascending id order so runs
// reproduce exactly across machines.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Parallel split
// construction must operate on cloned universes, never on shared node
// identities.
package taxonomy
