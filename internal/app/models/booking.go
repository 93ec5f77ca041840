package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingFlowRecord is the persisted state of one user's booking flow against one doctor.
type BookingFlowRecord struct {
	SessionID      string    `json:"session_id"`
	DoctorID       string    `json:"doctor_id"`
	State          string    `json:"state"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	IdempotencyKey string    `json:"idempotency_key,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BookingAttempt is one audited availability check or booking call.
type BookingAttempt struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Kind           string             `bson:"kind" json:"kind"`
	RequestID      string             `bson:"requestId" json:"request_id"`
	UserID         string             `bson:"userId" json:"user_id"`
	DoctorID       string             `bson:"doctorId" json:"doctor_id"`
	Date           string             `bson:"date" json:"date"`
	Time           string             `bson:"time" json:"time"`
	Outcome        string             `bson:"outcome" json:"outcome"`
	ErrorKind      string             `bson:"errorKind,omitempty" json:"error_kind,omitempty"`
	Message        string             `bson:"message,omitempty" json:"message,omitempty"`
	IdempotencyKey string             `bson:"idempotencyKey,omitempty" json:"idempotency_key,omitempty"`
	TimeModel      `bson:",inline"`
}
