package analysis

import "time"

// Sentiment labels.
const (
	SentimentPositive         = "Positive"
	SentimentNeutral          = "Neutral"
	SentimentNeedsImprovement = "Needs Improvement"
)

// Tone labels. "Professional" is the model's habitual answer and is accepted
// as a fourth value alongside the prompt's own enum.
const (
	ToneFormal         = "Formal"
	ToneConversational = "Conversational"
	ToneMixed          = "Mixed"
	ToneProfessional   = "Professional"
)

// Experience-level labels.
const (
	LevelEntry     = "Entry"
	LevelMid       = "Mid"
	LevelSenior    = "Senior"
	LevelExecutive = "Executive"
)

// Analysis is one stored resume analysis. JSON field names are the public
// wire contract and match the persisted columns; every field is non-empty in
// a stored record.
type Analysis struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	ResumeTitle      string    `json:"resume_title"`
	Summary          string    `json:"summary_text"`
	JobRoles         []string  `json:"job_roles"`
	SoftSkills       []string  `json:"soft_skills"`
	TechnicalSkills  []string  `json:"technical_skills"`
	Sentiment        string    `json:"sentiment"`
	Tone             string    `json:"tone"`
	SuggestedJobs    []string  `json:"suggested_jobs"`
	ImprovementAreas []string  `json:"improvement_areas"`
	ExperienceLevel  string    `json:"experience_level"`
	CreatedAt        time.Time `json:"created_at"`
}
