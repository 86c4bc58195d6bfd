// Package metrics records configuration load and validation outcomes.
//
// Components receive a Recorder through dependency injection. NoopRecorder is
// the default; the watch command swaps in a PrometheusRecorder and serves it
// over HTTP:
//
//	reg := prom.NewRegistry()
//	recorder := metrics.NewPrometheusRecorder(reg)
//	http.Handle("/metrics", metrics.HTTPHandler(reg))
package metrics
