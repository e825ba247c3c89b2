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

// PostgresPatientRepository implements PatientRepository on Postgres
type PostgresPatientRepository struct {
	db *sqlx.DB
}

// NewPatientRepository creates a new Postgres patient repository
func NewPatientRepository(db *sqlx.DB) PatientRepository {
	return &PostgresPatientRepository{db: db}
}

func (r *PostgresPatientRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	now := time.Now().UTC()
	patient.ID = uuid.New().String()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO patients (id, first_name, last_name, email, date_of_birth, gender,
			phone_number, emergency_contact, medical_history, allergies, primary_doctor_id,
			created_at, updated_at)
		VALUES (:id, :first_name, :last_name, :email, :date_of_birth, :gender,
			:phone_number, :emergency_contact, :medical_history, :allergies, :primary_doctor_id,
			:created_at, :updated_at)
	`, patient)
	if err != nil {
		return nil, fmt.Errorf("insert patient: %w", err)
	}
	return patient, nil
}

func (r *PostgresPatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.GetContext(ctx, &patient, `
		SELECT * FROM patients WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get patient %s: %w", id, err)
	}
	return &patient, nil
}

func (r *PostgresPatientRepository) List(ctx context.Context, limit, offset int) ([]models.Patient, error) {
	patients := []models.Patient{}
	err := r.db.SelectContext(ctx, &patients, `
		SELECT * FROM patients ORDER BY last_name, first_name LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (r *PostgresPatientRepository) Update(ctx context.Context, id string, patient *models.Patient) (*models.Patient, error) {
	patient.ID = id
	patient.UpdatedAt = time.Now().UTC()

	res, err := r.db.NamedExecContext(ctx, `
		UPDATE patients SET first_name = :first_name, last_name = :last_name,
			date_of_birth = :date_of_birth, gender = :gender, phone_number = :phone_number,
			emergency_contact = :emergency_contact, medical_history = :medical_history,
			allergies = :allergies, primary_doctor_id = :primary_doctor_id,
			updated_at = :updated_at
		WHERE id = :id
	`, patient)
	if err != nil {
		return nil, fmt.Errorf("update patient %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrPatientNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresPatientRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patient %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrPatientNotFound
	}
	return nil
}

// PostgresDoctorRepository implements DoctorRepository on Postgres
type PostgresDoctorRepository struct {
	db *sqlx.DB
}

// NewDoctorRepository creates a new Postgres doctor repository
func NewDoctorRepository(db *sqlx.DB) DoctorRepository {
	return &PostgresDoctorRepository{db: db}
}

func (r *PostgresDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	now := time.Now().UTC()
	doctor.ID = uuid.New().String()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO doctors (id, first_name, last_name, email, specialization,
			license_number, phone_number, bio, created_at, updated_at)
		VALUES (:id, :first_name, :last_name, :email, :specialization,
			:license_number, :phone_number, :bio, :created_at, :updated_at)
	`, doctor)
	if err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}
	return doctor, nil
}

func (r *PostgresDoctorRepository) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.GetContext(ctx, &doctor, `SELECT * FROM doctors WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get doctor %s: %w", id, err)
	}
	return &doctor, nil
}

func (r *PostgresDoctorRepository) List(ctx context.Context, limit, offset int) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	err := r.db.SelectContext(ctx, &doctors, `
		SELECT * FROM doctors ORDER BY last_name, first_name LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}
