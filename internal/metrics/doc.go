// Package metrics counts command dispatches and completions with the
// prometheus client and serves them over HTTP.
//
// A registry is instrumented in two places. Its error handler is wrapped
// with InstrumentErrorHandler so recovered failures are attributed, and the
// registry itself is wrapped with Instrument, which is what the console
// calls:
//
//	collector := metrics.New()
//	registry := cmdtree.NewRegistry(cmdtree.WithErrorHandler(
//		collector.InstrumentErrorHandler(cmdtree.DefaultErrorHandler{}),
//	))
//	dispatcher := collector.Instrument(registry)
package metrics
