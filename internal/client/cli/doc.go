// Package cli provides the interactive finances command-line client.
//
// It wires configuration and the gRPC transport into a small REPL. Before
// login the REPL offers account commands (register, activate, recover,
// reset, login); after login it adds contacts, invites, categories and
// releases.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
