// Package commands defines the palette CLI and wires dependencies for subcommands.
//
// Commands
//
//   - random    Fetch a random base colour and show its related colours
//   - show      Show the related colours and contrast of a hex colour
//   - save      Add a colour to the saved palette
//   - remove    Remove a colour from the saved palette
//   - list      Print the saved palette
//   - serve     Run the HTTP API and the metrics endpoint
//   - hash-key  Print a bcrypt hash for API_KEY_HASH
//
// # Implementation
//
// The root command loads configuration and builds the store, palette, hexbot
// client and session before any subcommand runs. Subcommands share that
// state through appCtx.
package commands
