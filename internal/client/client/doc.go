// Package client talks to the finances gRPC backend on behalf of the CLI.
//
// GRPCClient manages the connection, attaches the access token to every
// call, transparently refreshes an expired access token once per call and
// maps gRPC status codes to the sentinel errors ErrUnauthorized,
// ErrUnavailable and ErrRejected.
package client
