// Package cli provides the gophauth terminal client.
//
// The cobra command tree exposes register, login, whoami and logout as
// subcommands. Run without a subcommand the client starts an interactive
// shell offering the same commands. The session token is cached locally
// between runs.
package cli
