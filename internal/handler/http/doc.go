// Package http implements the REST transport of the address lookup server.
//
// It wires the chi router, the address search and version handlers, and the
// middleware chain: trace IDs, access logging, per-client rate limiting and
// response compression. Handlers translate service errors into the JSON
// envelope understood by the search widget.
package http
