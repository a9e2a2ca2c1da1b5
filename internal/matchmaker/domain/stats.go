package domain

// Stats are the landing page and dashboard counters.
type Stats struct {
	ProfileCount     int
	MatchCount       int
	ConnectedCount   int
	TeamRequestCount int

	// Degraded names counters that could not be read and were reported as 0.
	Degraded []string
}
