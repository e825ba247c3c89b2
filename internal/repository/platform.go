package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

// PostgresAppointmentRepository implements AppointmentRepository on Postgres
type PostgresAppointmentRepository struct {
	db *sqlx.DB
}

// NewAppointmentRepository creates a new Postgres appointment repository
func NewAppointmentRepository(db *sqlx.DB) AppointmentRepository {
	return &PostgresAppointmentRepository{db: db}
}

func (r *PostgresAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	now := time.Now().UTC()
	appointment.ID = uuid.New().String()
	appointment.Status = models.AppointmentScheduled
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO appointments (id, patient_id, doctor_id, start_time, end_time,
			status, reason, notes, location, created_at, updated_at)
		VALUES (:id, :patient_id, :doctor_id, :start_time, :end_time,
			:status, :reason, :notes, :location, :created_at, :updated_at)
	`, appointment)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return appointment, nil
}

func (r *PostgresAppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.GetContext(ctx, &appointment, `SELECT * FROM appointments WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get appointment %s: %w", id, err)
	}
	return &appointment, nil
}

func (r *PostgresAppointmentRepository) GetByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	err := r.db.SelectContext(ctx, &appointments, `
		SELECT * FROM appointments WHERE patient_id = $1 ORDER BY start_time DESC
	`, patientID)
	if err != nil {
		return nil, fmt.Errorf("get appointments for patient %s: %w", patientID, err)
	}
	return appointments, nil
}

func (r *PostgresAppointmentRepository) Update(ctx context.Context, id string, appointment *models.Appointment) (*models.Appointment, error) {
	appointment.ID = id
	appointment.UpdatedAt = time.Now().UTC()

	res, err := r.db.NamedExecContext(ctx, `
		UPDATE appointments SET start_time = :start_time, end_time = :end_time,
			status = :status, reason = :reason, notes = :notes, location = :location,
			updated_at = :updated_at
		WHERE id = :id
	`, appointment)
	if err != nil {
		return nil, fmt.Errorf("update appointment %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrAppointmentNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresAppointmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// PostgresMedicalRecordRepository implements MedicalRecordRepository on Postgres
type PostgresMedicalRecordRepository struct {
	db *sqlx.DB
}

// NewMedicalRecordRepository creates a new Postgres medical record repository
func NewMedicalRecordRepository(db *sqlx.DB) MedicalRecordRepository {
	return &PostgresMedicalRecordRepository{db: db}
}

func (r *PostgresMedicalRecordRepository) Create(ctx context.Context, record *models.MedicalRecord) (*models.MedicalRecord, error) {
	now := time.Now().UTC()
	record.ID = uuid.New().String()
	record.CreatedAt = now
	record.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO medical_records (id, patient_id, doctor_id, record_type, title,
			content, diagnosis, medication, created_at, updated_at)
		VALUES (:id, :patient_id, :doctor_id, :record_type, :title,
			:content, :diagnosis, :medication, :created_at, :updated_at)
	`, record)
	if err != nil {
		return nil, fmt.Errorf("insert medical record: %w", err)
	}
	return record, nil
}

func (r *PostgresMedicalRecordRepository) GetByID(ctx context.Context, id string) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := r.db.GetContext(ctx, &record, `SELECT * FROM medical_records WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMedicalRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get medical record %s: %w", id, err)
	}
	return &record, nil
}

func (r *PostgresMedicalRecordRepository) GetByPatientID(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	records := []models.MedicalRecord{}
	err := r.db.SelectContext(ctx, &records, `
		SELECT * FROM medical_records WHERE patient_id = $1 ORDER BY created_at DESC
	`, patientID)
	if err != nil {
		return nil, fmt.Errorf("get medical records for patient %s: %w", patientID, err)
	}
	return records, nil
}

// PostgresMessageRepository implements MessageRepository on Postgres
type PostgresMessageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository creates a new Postgres message repository
func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	message.ID = uuid.New().String()
	message.CreatedAt = time.Now().UTC()

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO messages (id, sender_id, receiver_id, subject, body, created_at)
		VALUES (:id, :sender_id, :receiver_id, :subject, :body, :created_at)
	`, message)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return message, nil
}

func (r *PostgresMessageRepository) GetConversation(ctx context.Context, userA, userB string, limit int) ([]models.Message, error) {
	messages := []models.Message{}
	err := r.db.SelectContext(ctx, &messages, `
		SELECT * FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at DESC
		LIMIT $3
	`, userA, userB, limit)
	if err != nil {
		return nil, fmt.Errorf("get conversation %s/%s: %w", userA, userB, err)
	}
	return messages, nil
}

func (r *PostgresMessageRepository) MarkRead(ctx context.Context, id string, readAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE messages SET read_at = $2 WHERE id = $1 AND read_at IS NULL
	`, id, readAt)
	if err != nil {
		return fmt.Errorf("mark message %s read: %w", id, err)
	}
	return nil
}
