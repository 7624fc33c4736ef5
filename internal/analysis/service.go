package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-matcher/internal/extract"
	"resume-matcher/internal/llm"
	"resume-matcher/internal/shared/telemetry"
)

// MaxFileSize is the upload cap for resume PDFs.
const MaxFileSize = 10 << 20

// Service runs the resume analysis pipeline and owns access to stored analyses.
type Service struct {
	repo Repo
	llm  llm.Client
}

func NewService(repo Repo, client llm.Client) *Service {
	return &Service{repo: repo, llm: client}
}

// Analyze validates and extracts the uploaded PDF, asks the model for a
// structured analysis, normalizes the output, and persists the result.
func (s *Service) Analyze(ctx context.Context, userID, filename string, data []byte) (Analysis, error) {
	if len(data) > MaxFileSize {
		return Analysis{}, ErrTooLarge
	}
	if !extract.Validate(data) {
		return Analysis{}, ErrInvalidFormat
	}

	text, err := extract.Extract(data)
	if err != nil {
		return Analysis{}, ErrInvalidFormat
	}
	if strings.TrimSpace(text) == "" {
		return Analysis{}, ErrNoTextFound
	}

	raw, err := s.llm.Analyze(ctx, text)
	if err != nil {
		telemetry.Error("analysis.llm_failed", map[string]any{"error": err.Error(), "user_id": userID})
		return Analysis{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	content := Normalize(raw)
	analysis := Analysis{
		ID:               uuid.NewString(),
		UserID:           userID,
		ResumeTitle:      filename,
		Summary:          content.Summary,
		JobRoles:         content.JobRoles,
		SoftSkills:       content.SoftSkills,
		TechnicalSkills:  content.TechnicalSkills,
		Sentiment:        content.Sentiment,
		Tone:             content.Tone,
		SuggestedJobs:    content.SuggestedJobs,
		ImprovementAreas: content.ImprovementAreas,
		ExperienceLevel:  content.ExperienceLevel,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, analysis); err != nil {
		telemetry.Error("analysis.store_failed", map[string]any{"error": err.Error(), "user_id": userID})
		return Analysis{}, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return analysis, nil
}

// List returns the user's analyses, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Analysis, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Delete removes one of the user's analyses.
func (s *Service) Delete(ctx context.Context, analysisID, userID string) error {
	err := s.repo.Delete(ctx, analysisID, userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		telemetry.Error("analysis.delete_failed", map[string]any{"error": err.Error(), "user_id": userID})
	}
	return err
}
