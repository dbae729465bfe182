// Package solver implements the two requirement-to-LSA algorithms: Simple,
// which emits one locally-visible override per required next hop, and
// Merger, which classifies nodes, selects a shared forwarding address per
// group of attracted routers, and emits globally-visible phantom LSAs
// where it is safe to do so. Both operate per destination, independently,
// and never mutate the caller's graph or requirement DAGs.
package solver
