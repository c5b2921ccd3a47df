package relay

import "errors"

// Stage is the position of a single request in the relay pipeline.
type Stage string

const (
	StageValidating Stage = "validating"
	StageFetching   Stage = "fetching"
	StageInvoking   Stage = "invoking"
	StageCompleted  Stage = "completed"
	StageErrored    Stage = "errored"
)

// FailedStage reports the stage an error originated from, or "" for errors outside the taxonomy.
func FailedStage(err error) Stage {
	var (
		validationErr *ValidationError
		fetchErr      *FetchError
		invocationErr *InvocationError
		extractionErr *ExtractionError
	)
	switch {
	case errors.As(err, &validationErr):
		return StageValidating
	case errors.As(err, &fetchErr):
		return StageFetching
	case errors.As(err, &invocationErr), errors.As(err, &extractionErr):
		return StageInvoking
	}
	return ""
}
