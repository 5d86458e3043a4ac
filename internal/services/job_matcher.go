package services

import (
	"sort"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

const DefaultTopK = 5

// DefaultJobCatalog is the fixed set of titles resumes are matched against.
var DefaultJobCatalog = []models.JobSpec{
	{Title: "Software Developer", Keywords: []string{"python", "java", "api", "flask", "backend"}},
	{Title: "Data Scientist", Keywords: []string{"machine learning", "pandas", "numpy", "statistics", "data"}},
	{Title: "Frontend Engineer", Keywords: []string{"react", "html", "css", "javascript", "frontend"}},
	{Title: "Backend Developer", Keywords: []string{"django", "node", "express", "sql", "server"}},
	{Title: "DevOps Engineer", Keywords: []string{"docker", "aws", "ci/cd", "kubernetes", "infrastructure"}},
	{Title: "AI Engineer", Keywords: []string{"deep learning", "neural networks", "tensorflow", "vision"}},
}

type JobMatcher interface {
	// Match returns up to topK job titles with at least one keyword hit.
	Match(resumeText string, topK int) []string
	// Scores returns every catalog entry with its keyword hit count, ranked.
	Scores(resumeText string) []models.MatchResult
}

type jobMatcher struct {
	catalog []models.JobSpec
}

func NewJobMatcher(catalog []models.JobSpec) JobMatcher {
	return &jobMatcher{catalog: catalog}
}

// Scores counts, per job, the keywords found as substrings of the lower-cased
// text. Results are ordered by score descending, then title descending.
func (m *jobMatcher) Scores(resumeText string) []models.MatchResult {
	lower := strings.ToLower(resumeText)

	results := make([]models.MatchResult, 0, len(m.catalog))
	for _, job := range m.catalog {
		score := 0
		for _, kw := range job.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		results = append(results, models.MatchResult{Title: job.Title, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Title > results[j].Title
	})

	return results
}

func (m *jobMatcher) Match(resumeText string, topK int) []string {
	titles := []string{}
	if topK <= 0 {
		return titles
	}

	for _, result := range m.Scores(resumeText) {
		if result.Score == 0 {
			break
		}
		titles = append(titles, result.Title)
		if len(titles) == topK {
			break
		}
	}

	return titles
}
