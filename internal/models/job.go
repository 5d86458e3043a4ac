package models

// JobSpec is one entry of the static job catalog.
type JobSpec struct {
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
}

type MatchResult struct {
	Title string `json:"title"`
	Score int    `json:"score"`
}
