package metrics

import "time"

// Stage names a step of a configuration run.
type Stage string

const (
	StageLoad     Stage = "load"
	StageValidate Stage = "validate"
)

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFatal   ResultLabel = "fatal"
)

// Recorder defines observability hooks for configuration runs. All methods
// must be safe to call on the NoopRecorder.
type Recorder interface {
	ObserveStageDuration(stage Stage, d time.Duration)
	IncStageResult(stage Stage, result ResultLabel)
	IncFailure(stage Stage, category string)
	SetLastSuccess(t time.Time)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(Stage, time.Duration) {}
func (NoopRecorder) IncStageResult(Stage, ResultLabel) {}
func (NoopRecorder) IncFailure(Stage, string) {}
func (NoopRecorder) SetLastSuccess(time.Time) {}
