package analysis

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Content is the schema-conformant body of an analysis, before ownership and
// persistence metadata are attached.
type Content struct {
	Summary          string
	JobRoles         []string
	SoftSkills       []string
	TechnicalSkills  []string
	Sentiment        string
	Tone             string
	SuggestedJobs    []string
	ImprovementAreas []string
	ExperienceLevel  string
}

// Fixed defaults substituted for any field the model left absent or empty.
// These are user-visible on model failure and must not drift.
const defaultSummary = "Professional with diverse skills and experience."

var (
	defaultJobRoles         = []string{"Software Engineer", "Project Manager", "Data Analyst"}
	defaultSoftSkills       = []string{"Communication", "Teamwork", "Problem-solving", "Leadership"}
	defaultTechnicalSkills  = []string{"Various technologies"}
	defaultSuggestedJobs    = []string{"Software Developer", "Technical Lead"}
	defaultImprovementAreas = []string{"Add more specific achievements", "Include quantifiable results"}
)

// keywordVocabulary drives the heuristic fallback: raw model prose is scanned
// case-insensitively and matching entries are emitted verbatim.
var keywordVocabulary = []struct {
	match string
	emit  string
}{
	{"python", "Python"},
	{"javascript", "JavaScript"},
	{"leadership", "Leadership"},
	{"communication", "Communication"},
}

// Normalize turns raw model output into a complete Content value. It never
// fails: a JSON object embedded anywhere in the output is parsed when
// possible, a keyword heuristic covers everything else, and a completion
// pass overwrites any remaining empty field with its fixed default.
func Normalize(modelOutput string) Content {
	var content Content
	if candidate, ok := extractJSONObject(modelOutput); ok {
		content = contentFromJSON(candidate)
	} else {
		content = contentFromProse(modelOutput)
	}
	return completeWithDefaults(content)
}

// extractJSONObject returns the span from the first '{' to the last '}' when
// it parses as a JSON object. Greedy first-to-last matching also strips
// markdown fences the model may have wrapped around the object.
func extractJSONObject(text string) (string, bool) {
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first < 0 || last <= first {
		return "", false
	}
	candidate := text[first : last+1]
	if !gjson.Valid(candidate) {
		return "", false
	}
	parsed := gjson.Parse(candidate)
	if !parsed.IsObject() {
		return "", false
	}
	return candidate, true
}

func contentFromJSON(candidate string) Content {
	obj := gjson.Parse(candidate)
	return Content{
		Summary:          obj.Get("summary").String(),
		JobRoles:         stringList(obj.Get("job_roles")),
		SoftSkills:       stringList(obj.Get("soft_skills")),
		TechnicalSkills:  stringList(obj.Get("technical_skills")),
		Sentiment:        obj.Get("sentiment").String(),
		Tone:             obj.Get("tone").String(),
		SuggestedJobs:    stringList(obj.Get("suggested_jobs")),
		ImprovementAreas: stringList(obj.Get("improvement_areas")),
		ExperienceLevel:  obj.Get("experience_level").String(),
	}
}

// contentFromProse is the heuristic fallback for model output with no usable
// JSON: the first sentence becomes the summary and the fixed vocabulary scan
// fills technical skills. Everything else is left for the completion pass.
func contentFromProse(text string) Content {
	var content Content
	if idx := strings.Index(text, "."); idx >= 0 {
		content.Summary = strings.TrimSpace(text[:idx]) + "."
	}

	lower := strings.ToLower(text)
	var skills []string
	for _, kw := range keywordVocabulary {
		if strings.Contains(lower, kw.match) {
			skills = append(skills, kw.emit)
		}
	}
	content.TechnicalSkills = skills
	return content
}

func completeWithDefaults(c Content) Content {
	if strings.TrimSpace(c.Summary) == "" {
		c.Summary = defaultSummary
	}
	c.JobRoles = fallbackList(c.JobRoles, defaultJobRoles)
	c.SoftSkills = fallbackList(c.SoftSkills, defaultSoftSkills)
	c.TechnicalSkills = fallbackList(c.TechnicalSkills, defaultTechnicalSkills)
	c.SuggestedJobs = fallbackList(c.SuggestedJobs, defaultSuggestedJobs)
	c.ImprovementAreas = fallbackList(c.ImprovementAreas, defaultImprovementAreas)
	c.Sentiment = normalizeSentiment(c.Sentiment)
	c.Tone = normalizeTone(c.Tone)
	c.ExperienceLevel = normalizeExperienceLevel(c.ExperienceLevel)
	return c
}

func stringList(value gjson.Result) []string {
	if !value.IsArray() {
		return nil
	}
	items := value.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func fallbackList(value, fallback []string) []string {
	if len(value) > 0 {
		return value
	}
	out := make([]string, len(fallback))
	copy(out, fallback)
	return out
}

func normalizeSentiment(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "positive":
		return SentimentPositive
	case "neutral":
		return SentimentNeutral
	case "needs improvement":
		return SentimentNeedsImprovement
	default:
		return SentimentPositive
	}
}

func normalizeTone(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "formal":
		return ToneFormal
	case "conversational":
		return ToneConversational
	case "mixed":
		return ToneMixed
	case "professional":
		return ToneProfessional
	default:
		return ToneProfessional
	}
}

func normalizeExperienceLevel(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "entry":
		return LevelEntry
	case "mid":
		return LevelMid
	case "senior":
		return LevelSenior
	case "executive":
		return LevelExecutive
	default:
		return LevelMid
	}
}
