package analysis

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. List columns are stored as jsonb,
// matching the original resume_analysis table layout.
type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `
id, user_id, resume_title, summary_text, job_roles, soft_skills, technical_skills,
sentiment, tone, suggested_jobs, improvement_areas, experience_level, created_at`

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO resume_analysis (
	id, user_id, resume_title, summary_text, job_roles, soft_skills, technical_skills,
	sentiment, tone, suggested_jobs, improvement_areas, experience_level, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	jobRoles, err := marshalJSONB(analysis.JobRoles)
	if err != nil {
		return err
	}
	softSkills, err := marshalJSONB(analysis.SoftSkills)
	if err != nil {
		return err
	}
	technicalSkills, err := marshalJSONB(analysis.TechnicalSkills)
	if err != nil {
		return err
	}
	suggestedJobs, err := marshalJSONB(analysis.SuggestedJobs)
	if err != nil {
		return err
	}
	improvementAreas, err := marshalJSONB(analysis.ImprovementAreas)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.UserID,
		analysis.ResumeTitle,
		analysis.Summary,
		jobRoles,
		softSkills,
		technicalSkills,
		analysis.Sentiment,
		analysis.Tone,
		suggestedJobs,
		improvementAreas,
		analysis.ExperienceLevel,
		analysis.CreatedAt,
	)
	return err
}

// ListByUser returns the user's analyses, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Analysis, error) {
	query := fmt.Sprintf(`SELECT %s FROM resume_analysis WHERE user_id = $1 ORDER BY created_at DESC`, selectColumns)
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	analyses := []Analysis{}
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}
	return analyses, rows.Err()
}

// LatestByUser returns the newest analysis for the user.
func (r *PGRepo) LatestByUser(ctx context.Context, userID string) (Analysis, error) {
	query := fmt.Sprintf(`SELECT %s FROM resume_analysis WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`, selectColumns)
	row := r.DB.QueryRowContext(ctx, query, userID)
	analysis, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// Delete removes the analysis if it belongs to the user.
func (r *PGRepo) Delete(ctx context.Context, analysisID, userID string) error {
	const query = `DELETE FROM resume_analysis WHERE id = $1 AND user_id = $2`
	result, err := r.DB.ExecContext(ctx, query, analysisID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var jobRoles, softSkills, technicalSkills, suggestedJobs, improvementAreas []byte
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.ResumeTitle,
		&a.Summary,
		&jobRoles,
		&softSkills,
		&technicalSkills,
		&a.Sentiment,
		&a.Tone,
		&suggestedJobs,
		&improvementAreas,
		&a.ExperienceLevel,
		&a.CreatedAt,
	)
	if err != nil {
		return Analysis{}, err
	}
	a.JobRoles = unmarshalStringList(jobRoles)
	a.SoftSkills = unmarshalStringList(softSkills)
	a.TechnicalSkills = unmarshalStringList(technicalSkills)
	a.SuggestedJobs = unmarshalStringList(suggestedJobs)
	a.ImprovementAreas = unmarshalStringList(improvementAreas)
	return a, nil
}

func marshalJSONB(value []string) ([]byte, error) {
	if value == nil {
		value = []string{}
	}
	return json.Marshal(value)
}

func unmarshalStringList(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

var _ Repo = (*PGRepo)(nil)
