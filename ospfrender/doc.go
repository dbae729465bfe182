// Package ospfrender turns a solver's []lsa.LSA into the OSPF interface
// stanzas a router would advertise, the data shape
// fibbingnode/misc/mininetlib/iprouter.py assembles before handing it to
// Quagga. It performs no I/O: callers decide how (or whether) to publish
// the result.
package ospfrender
