// Package validate reconstructs the forwarding graph a solver's output
// induces and checks it against the original requirement DAGs. It is a
// direct port of check_fwd_dags from tests/test_merger.py: production
// solvers never import it, only tests do.
package validate
