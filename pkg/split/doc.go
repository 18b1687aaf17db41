// Package split partitions the leaf classes of a taxonomy into disjoint
// train/valid/test splits for few-shot-learning benchmarks.
//
// Unlike random class splitting, the partition respects taxonomic
// semantics: the validation and test classes are drawn from coherent
// sub-trees so that semantic leakage between splits is minimized.
//
// # Pipeline
//
// The full flow, orchestrated by [Builder.BuildSplits]:
//
//  1. [ProposeRoots] ranks nodes by spanned-leaf count and picks a valid
//     root and a distinct test root whose span sizes fall inside a margin
//     window around the desired split sizes.
//  2. [ClassSplits] assigns every leaf to exactly one split: leaves spanned
//     by the valid root go to valid, by the test root to test, overlap
//     leaves alternate deterministically between the two, and the rest
//     train.
//  3. Each split receives an independent clone of the sampling universe, so
//     per-split graph surgery never perturbs another split.
//  4. [CreateSamplingGraph] reduces each clone to the split's final
//     subgraph: ancestor closure, root-restricted for valid/test, isolated
//     and collapsed.
//
// All decisions with observable ordering (candidate ranking ties, overlap
// alternation) are deterministic by id, so independent runs over the same
// taxonomy reproduce identical splits.
package split
