package models

const DefaultRole = "General"

type UploadResponse struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

type ResumeTextRequest struct {
	ResumeText string `json:"resume_text"`
	Role       string `json:"role"`
}

// RoleOrDefault falls back to DefaultRole for a blank role.
func (r ResumeTextRequest) RoleOrDefault() string {
	if r.Role == "" {
		return DefaultRole
	}
	return r.Role
}

type ScoreResponse struct {
	Score int `json:"score"`
}

type MatchResponse struct {
	Matches []string `json:"matches"`
}
