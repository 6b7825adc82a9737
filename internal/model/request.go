package model

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Admin    bool   `json:"admin"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthResponse struct {
	ExpiresIn   int    `json:"expiresIn"`
	AccessToken string `json:"accessToken"`
}

type CreateBookRequest struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Category string `json:"category" validate:"required"`
}

type BookStatusRequest struct {
	Available *bool `json:"available" validate:"required"`
}

type CreateTableRequest struct {
	TableNumber int `json:"tableNumber" validate:"required,min=1"`
	Seats       int `json:"seats" validate:"required,min=1,max=10"`
}

type TableStatusRequest struct {
	Booked *bool `json:"booked" validate:"required"`
}

type StudentDetailsRequest struct {
	StudentName        string `json:"studentName" validate:"required"`
	RegistrationNumber string `json:"registrationNumber" validate:"required"`
	Class              string `json:"class" validate:"required"`
	Section            string `json:"section" validate:"required"`
	Year               string `json:"year" validate:"required"`
}

type BorrowBookRequest struct {
	BookID  string                `json:"bookId" validate:"required"`
	Details StudentDetailsRequest `json:"details" validate:"required"`
	UserID  string                `json:"-" validate:"required"`
}

type ReserveTableRequest struct {
	TableID string `json:"tableId" validate:"required"`
	UserID  string `json:"-" validate:"required"`
}

// BookFilter narrows the catalog list. Search matches a case-insensitive
// substring of title or author; Category "" or "all" means unfiltered.
type BookFilter struct {
	Search   string
	Category string
}

type ReservationFilter struct {
	Type   Kind
	Status Status
}
