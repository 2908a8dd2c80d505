// Package config loads the cmdtree configuration.
//
// Configuration lives in a single directory, ~/.config/cmdtree by default or
// the directory given with --config-path. The directory holds config.yaml and,
// by default, the roster file read by the console:
//
//	logLevel: info
//	console:
//	  prompt: "cmdtree> "
//	  errorPrefix: "error: "
//	  color: true
//	  commands: [help, say, msg, calc, context, roster, tree, exit]
//	  contexts: [default, staging]
//	  rosterFile: roster.yaml
//	  messages:
//	    notFound: '{{ .Prefix }}Candidates: {{ .Candidates | join ", " }}'
//	registry:
//	  collisions: reject   # or replace
//	  aliases: resolve     # or ignore
//	metrics:
//	  address: ":9464"
//
// Values missing from the file keep their defaults. A malformed or invalid
// file is reported as a ConfigurationError carrying the file, line (when
// known) and suggestions.
package config
