package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

// PostgresSuggestionRepository implements SuggestionRepository on Postgres
type PostgresSuggestionRepository struct {
	db *sqlx.DB
}

// NewSuggestionRepository creates a new Postgres suggestion repository
func NewSuggestionRepository(db *sqlx.DB) SuggestionRepository {
	return &PostgresSuggestionRepository{db: db}
}

// suggestionRow maps the list-valued suggestion fields onto Postgres
// text arrays.
type suggestionRow struct {
	ID                   string         `db:"id"`
	PatientID            string         `db:"patient_id"`
	Type                 string         `db:"suggestion_type"`
	Title                string         `db:"title"`
	Description          string         `db:"description"`
	Reasoning            string         `db:"reasoning"`
	ConfidenceScore      float64        `db:"confidence_score"`
	Priority             string         `db:"priority"`
	ImplementationSteps  pq.StringArray `db:"implementation_steps"`
	ExpectedOutcomes     pq.StringArray `db:"expected_outcomes"`
	MonitoringParameters pq.StringArray `db:"monitoring_parameters"`
	CurrentTreatmentID   *string        `db:"current_treatment_id"`
	CreatedAt            time.Time      `db:"created_at"`
}

func toSuggestionRow(s *models.Suggestion) suggestionRow {
	return suggestionRow{
		ID:                   s.ID,
		PatientID:            s.PatientID,
		Type:                 string(s.Type),
		Title:                s.Title,
		Description:          s.Description,
		Reasoning:            s.Reasoning,
		ConfidenceScore:      s.ConfidenceScore,
		Priority:             string(s.Priority),
		ImplementationSteps:  s.ImplementationSteps,
		ExpectedOutcomes:     s.ExpectedOutcomes,
		MonitoringParameters: s.MonitoringParameters,
		CurrentTreatmentID:   s.CurrentTreatmentID,
		CreatedAt:            s.CreatedAt,
	}
}

func (row suggestionRow) toModel() models.Suggestion {
	return models.Suggestion{
		ID:                   row.ID,
		PatientID:            row.PatientID,
		Type:                 models.SuggestionType(row.Type),
		Title:                row.Title,
		Description:          row.Description,
		Reasoning:            row.Reasoning,
		ConfidenceScore:      row.ConfidenceScore,
		Priority:             models.SuggestionPriority(row.Priority),
		ImplementationSteps:  row.ImplementationSteps,
		ExpectedOutcomes:     row.ExpectedOutcomes,
		MonitoringParameters: row.MonitoringParameters,
		CurrentTreatmentID:   row.CurrentTreatmentID,
		CreatedAt:            row.CreatedAt,
	}
}

func (r *PostgresSuggestionRepository) Create(ctx context.Context, suggestion *models.Suggestion) (*models.Suggestion, error) {
	suggestion.ID = uuid.New().String()
	suggestion.CreatedAt = time.Now().UTC()

	row := toSuggestionRow(suggestion)
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO leapfrog_suggestions (id, patient_id, suggestion_type, title,
			description, reasoning, confidence_score, priority, implementation_steps,
			expected_outcomes, monitoring_parameters, current_treatment_id, created_at)
		VALUES (:id, :patient_id, :suggestion_type, :title,
			:description, :reasoning, :confidence_score, :priority, :implementation_steps,
			:expected_outcomes, :monitoring_parameters, :current_treatment_id, :created_at)
	`, row)
	if err != nil {
		return nil, fmt.Errorf("insert suggestion: %w", err)
	}
	return suggestion, nil
}

func (r *PostgresSuggestionRepository) GetByPatientID(ctx context.Context, patientID string, limit int) ([]models.Suggestion, error) {
	rows := []suggestionRow{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM leapfrog_suggestions
		WHERE patient_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, patientID, limit)
	if err != nil {
		return nil, fmt.Errorf("get suggestions for patient %s: %w", patientID, err)
	}

	suggestions := make([]models.Suggestion, len(rows))
	for i, row := range rows {
		suggestions[i] = row.toModel()
	}
	return suggestions, nil
}
