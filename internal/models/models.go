package models

import "time"

// Patient represents a patient profile in the system
type Patient struct {
	ID               string     `json:"id" db:"id"`
	FirstName        string     `json:"first_name" db:"first_name"`
	LastName         string     `json:"last_name" db:"last_name"`
	Email            string     `json:"email" db:"email"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Gender           *string    `json:"gender,omitempty" db:"gender"`
	PhoneNumber      *string    `json:"phone_number,omitempty" db:"phone_number"`
	EmergencyContact *string    `json:"emergency_contact,omitempty" db:"emergency_contact"`
	MedicalHistory   *string    `json:"medical_history,omitempty" db:"medical_history"`
	Allergies        *string    `json:"allergies,omitempty" db:"allergies"`
	PrimaryDoctorID  *string    `json:"primary_doctor_id,omitempty" db:"primary_doctor_id"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// Doctor represents a care provider profile
type Doctor struct {
	ID             string    `json:"id" db:"id"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	Specialization string    `json:"specialization" db:"specialization"`
	LicenseNumber  string    `json:"license_number" db:"license_number"`
	PhoneNumber    *string   `json:"phone_number,omitempty" db:"phone_number"`
	Bio            *string   `json:"bio,omitempty" db:"bio"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// AppointmentStatus enumerates the appointment lifecycle states
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a scheduled visit between a patient and a doctor
type Appointment struct {
	ID        string            `json:"id" db:"id"`
	PatientID string            `json:"patient_id" db:"patient_id"`
	DoctorID  string            `json:"doctor_id" db:"doctor_id"`
	StartTime time.Time         `json:"start_time" db:"start_time"`
	EndTime   time.Time         `json:"end_time" db:"end_time"`
	Status    AppointmentStatus `json:"status" db:"status"`
	Reason    *string           `json:"reason,omitempty" db:"reason"`
	Notes     *string           `json:"notes,omitempty" db:"notes"`
	Location  *string           `json:"location,omitempty" db:"location"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" db:"updated_at"`
}

// MedicalRecord represents a clinical document attached to a patient
type MedicalRecord struct {
	ID         string    `json:"id" db:"id"`
	PatientID  string    `json:"patient_id" db:"patient_id"`
	DoctorID   string    `json:"doctor_id" db:"doctor_id"`
	RecordType string    `json:"record_type" db:"record_type"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	Diagnosis  *string   `json:"diagnosis,omitempty" db:"diagnosis"`
	Medication *string   `json:"medication,omitempty" db:"medication"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Message represents a patient-doctor message
type Message struct {
	ID         string     `json:"id" db:"id"`
	SenderID   string     `json:"sender_id" db:"sender_id"`
	ReceiverID string     `json:"receiver_id" db:"receiver_id"`
	Subject    *string    `json:"subject,omitempty" db:"subject"`
	Body       string     `json:"body" db:"body"`
	ReadAt     *time.Time `json:"read_at,omitempty" db:"read_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// CreatePatientRequest represents the request to create a patient profile
type CreatePatientRequest struct {
	FirstName        string     `json:"first_name" binding:"required"`
	LastName         string     `json:"last_name" binding:"required"`
	Email            string     `json:"email" binding:"required,email"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Gender           *string    `json:"gender"`
	PhoneNumber      *string    `json:"phone_number"`
	EmergencyContact *string    `json:"emergency_contact"`
	MedicalHistory   *string    `json:"medical_history"`
	Allergies        *string    `json:"allergies"`
	PrimaryDoctorID  *string    `json:"primary_doctor_id"`
}

// UpdatePatientRequest represents a partial patient update
type UpdatePatientRequest struct {
	FirstName        *string    `json:"first_name"`
	LastName         *string    `json:"last_name"`
	PhoneNumber      *string    `json:"phone_number"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Gender           *string    `json:"gender"`
	EmergencyContact *string    `json:"emergency_contact"`
	MedicalHistory   *string    `json:"medical_history"`
	Allergies        *string    `json:"allergies"`
	PrimaryDoctorID  *string    `json:"primary_doctor_id"`
}

// CreateDoctorRequest represents the request to create a doctor profile
type CreateDoctorRequest struct {
	FirstName      string  `json:"first_name" binding:"required"`
	LastName       string  `json:"last_name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Specialization string  `json:"specialization" binding:"required"`
	LicenseNumber  string  `json:"license_number" binding:"required"`
	PhoneNumber    *string `json:"phone_number"`
	Bio            *string `json:"bio"`
}

// CreateAppointmentRequest represents the request to book an appointment
type CreateAppointmentRequest struct {
	PatientID string    `json:"patient_id" binding:"required"`
	DoctorID  string    `json:"doctor_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Reason    *string   `json:"reason"`
	Location  *string   `json:"location"`
}

// UpdateAppointmentRequest represents a partial appointment update
type UpdateAppointmentRequest struct {
	StartTime *time.Time         `json:"start_time"`
	EndTime   *time.Time         `json:"end_time"`
	Status    *AppointmentStatus `json:"status"`
	Reason    *string            `json:"reason"`
	Notes     *string            `json:"notes"`
	Location  *string            `json:"location"`
}

// CreateMedicalRecordRequest represents the request to attach a record
type CreateMedicalRecordRequest struct {
	PatientID  string  `json:"patient_id" binding:"required"`
	DoctorID   string  `json:"doctor_id" binding:"required"`
	RecordType string  `json:"record_type" binding:"required"`
	Title      string  `json:"title" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	Diagnosis  *string `json:"diagnosis"`
	Medication *string `json:"medication"`
}

// SendMessageRequest represents the request to send a message
type SendMessageRequest struct {
	SenderID   string  `json:"sender_id" binding:"required"`
	ReceiverID string  `json:"receiver_id" binding:"required"`
	Subject    *string `json:"subject"`
	Body       string  `json:"body" binding:"required"`
}
