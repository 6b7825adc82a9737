package model

import (
	"time"
)

type Kind string

const (
	KindBook  Kind = "book"
	KindTable Kind = "table"
)

type Status string

const (
	// StatusPending is the initial state of a book borrow request; it holds
	// until an admin approves or rejects it.
	StatusPending Status = "pending"
	// StatusActive is the initial state of a table reservation; the table is
	// booked the moment the reservation exists.
	StatusActive    Status = "active"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

type Book struct {
	ID                 string     `json:"id" db:"id"`
	Title              string     `json:"title" db:"title"`
	Author             string     `json:"author" db:"author"`
	Category           string     `json:"category" db:"category"`
	Available          bool       `json:"available" db:"available"`
	BorrowedBy         *string    `json:"borrowedBy,omitempty" db:"borrowed_by"`
	ExpectedReturnDate *time.Time `json:"expectedReturnDate,omitempty" db:"expected_return_date"`
}

type Table struct {
	ID          string  `json:"id" db:"id"`
	TableNumber int     `json:"tableNumber" db:"table_number"`
	Seats       int     `json:"seats" db:"seats"`
	Booked      bool    `json:"booked" db:"booked"`
	BookedBy    *string `json:"bookedBy,omitempty" db:"booked_by"`
}

type Reservation struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"userId" db:"user_id"`
	Type   Kind   `json:"type" db:"type"`
	ItemID string `json:"itemId" db:"item_id"`
	// ItemTitle is a denormalized snapshot taken at creation time so the
	// reservation stays readable even if the item is renamed.
	ItemTitle string    `json:"itemTitle" db:"item_title"`
	Status    Status    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type StudentDetails struct {
	ID                 string    `json:"-" db:"id"`
	ReservationID      string    `json:"-" db:"reservation_id"`
	UserID             string    `json:"-" db:"user_id"`
	StudentName        string    `json:"studentName" db:"student_name"`
	RegistrationNumber string    `json:"registrationNumber" db:"registration_number"`
	Class              string    `json:"class" db:"class"`
	Section            string    `json:"section" db:"section"`
	Year               string    `json:"year" db:"year"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
}

// ReservationDetails is the admin view: a reservation plus the captured
// student identity, when one exists.
type ReservationDetails struct {
	Reservation
	StudentDetails *StudentDetails `json:"studentDetails,omitempty"`
}

type User struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
