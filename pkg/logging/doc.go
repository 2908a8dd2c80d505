// Package logging provides subsystem-tagged structured logging for cmdtree,
// built on the standard slog package.
//
// Every record carries a "subsystem" attribute naming the component that
// produced it ("Registry", "Console", "Roster", ...), and error records carry
// an additional "error" attribute.
//
// # Modes
//
//   - ModeCLI: plain slog text records, used by one-shot commands.
//   - ModeConsole: text records without timestamps, used while the
//     interactive console owns the terminal. The console re-initializes the
//     logger with the line editor's writer so records do not corrupt the prompt.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Registry", "registered %s", path)
//	logging.Error("Roster", err, "failed to reload %s", file)
//
// Calls made before initialization are dropped, except warnings and errors
// which are written to stderr.
package logging
