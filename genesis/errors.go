package genesis

import "errors"

var (
	// ErrMissingRuntimeArtifact is returned when no compiled runtime is
	// available. No network can start without it.
	ErrMissingRuntimeArtifact = errors.New("missing runtime artifact")

	// ErrInconsistent is returned by Document.Validate.
	ErrInconsistent = errors.New("inconsistent genesis document")
)
