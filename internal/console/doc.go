// Package console is the interactive host of cmdtree registries.
//
// A Console implements cmdtree.Platform: registries attach themselves to it
// for each declared top-level name, and the console routes raw input lines
// to the registry owning the line's first token. Completion of a partially
// typed line goes the same way, with the position derived from whether the
// line ends in whitespace.
//
// The REPL wraps a Console in a readline line editor with history and tab
// completion. Each REPL runs for one Session, the cmdtree.Caller that
// receives command output and remembers the selected context.
//
// MessageErrorHandler renders recovered dispatch failures through
// text/template message templates with sprig functions.
package console
