// Package app wires the cmdtree components into a runnable application.
//
// NewApplication loads config.yaml from the configuration directory,
// initializes logging and builds the Services:
//
//   - the roster of known users
//   - the metrics collector
//   - the console platform that owns the top-level command names
//   - the registry holding the built-in command set
//
// The resulting Application runs the interactive console, executes single
// lines for scripting, and answers completion requests for shell
// integration.
package app
