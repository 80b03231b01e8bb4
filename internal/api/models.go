package api

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// SolveBody is the body of a solve call; the day comes from the path.
type SolveBody struct {
	Input string `json:"input,omitempty" description:"raw puzzle input; fetched when empty"`
}
