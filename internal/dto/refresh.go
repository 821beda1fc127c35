package dto

// RefreshResult summarises one run of the refresh pipeline.
type RefreshResult struct {
	NewComments    int
	NewExtractions int
	Banks          int
	Changed        bool
	Stamped        bool
	LastUpdated    float64
}
