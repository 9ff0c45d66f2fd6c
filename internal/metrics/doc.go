// Package metrics provides observability hooks for route table generation.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so generation code never checks for nil:
//
//	gen := pageset.NewGenerator(opts) // NoopRecorder
//	gen := pageset.NewGenerator(opts, pageset.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// The CLI has no HTTP surface, so a Prometheus registry is exported by writing
// it to a node_exporter textfile with WriteTextfile.
package metrics
