// Package http implements the REST transport of go-snake-bench.
//
// It wires chi routes to the service layer and owns the cross-cutting
// request concerns: trace ids, access logging, CORS, compression and the
// session gate. Handlers resolve the caller identity once per request and
// pass it to services explicitly.
package http
