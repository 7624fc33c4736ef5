package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-matcher/internal/analysis"
	"resume-matcher/internal/llm"
	"resume-matcher/internal/shared/telemetry"
)

var (
	// ErrMissingMessage is returned when the chat message is empty.
	ErrMissingMessage = errors.New("message is required")
	// ErrNoAnalysisFound is returned when the user has no stored analysis.
	ErrNoAnalysisFound = errors.New("no resume analysis found")
	// ErrChatFailed is returned when the model call fails.
	ErrChatFailed = errors.New("chat failed")
)

// Service answers questions about the user's most recent resume analysis.
type Service struct {
	repo analysis.Repo
	llm  llm.Client
}

func NewService(repo analysis.Repo, client llm.Client) *Service {
	return &Service{repo: repo, llm: client}
}

// Reply grounds the model on the user's latest analysis and returns its answer.
func (s *Service) Reply(ctx context.Context, userID, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrMissingMessage
	}

	latest, err := s.repo.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, analysis.ErrNotFound) {
			return "", ErrNoAnalysisFound
		}
		telemetry.Error("chat.lookup_failed", map[string]any{"error": err.Error(), "user_id": userID})
		return "", fmt.Errorf("%w: %v", ErrChatFailed, err)
	}

	resumeContext := buildContext(latest)
	reply, err := s.llm.Chat(ctx, resumeContext, message)
	if err != nil {
		telemetry.Error("chat.llm_failed", map[string]any{"error": err.Error(), "user_id": userID})
		return "", fmt.Errorf("%w: %v", ErrChatFailed, err)
	}
	return reply, nil
}

func buildContext(a analysis.Analysis) string {
	skills := make([]string, 0, len(a.SoftSkills)+len(a.TechnicalSkills))
	skills = append(skills, a.SoftSkills...)
	skills = append(skills, a.TechnicalSkills...)
	return fmt.Sprintf("Summary: %s\nJob Roles: %s\nSkills: %s\nExperience Level: %s",
		a.Summary,
		strings.Join(a.JobRoles, ", "),
		strings.Join(skills, ", "),
		a.ExperienceLevel,
	)
}
