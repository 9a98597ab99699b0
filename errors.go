package surgereport

import "errors"

// Sentinel errors for library operations.
var (
	ErrEngineUnavailable = errors.New("document engine unavailable")
	ErrChartRender       = errors.New("chart rendering failed")
	ErrDocumentBuild     = errors.New("document build failed")

	// Chart spec validation errors.
	ErrNoSeries         = errors.New("chart has no series")
	ErrUnknownChartKind = errors.New("unknown chart kind")
)
