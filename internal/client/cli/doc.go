// Package cli provides the interactive loyalty command-line client.
//
// It restores a saved session, then runs a REPL whose commands register or
// sign in against the auth server and query or change balances and the
// reward catalog on the reward server. Tokens refreshed along the way are
// written back to the session file.
package cli
