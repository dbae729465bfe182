// Package gadgets builds the nine validation topologies and requirement
// DAGs from tests/test_merger.py, for solver and validate's own test
// suites. It is never imported outside of tests.
package gadgets
