// Package api defines the wire messages of the rentiful.v1 RPC services and
// the JSON codec they are exchanged with. Handlers and clients live in
// package apiconnect.
package api
