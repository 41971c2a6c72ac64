package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRole identifies the access level of an account.
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleAgent  UserRole = "AGENT"
	RoleClient UserRole = "CLIENT"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "CARD"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCash         PaymentMethod = "CASH"
	PaymentPaypal       PaymentMethod = "PAYPAL"
)

// PaymentType distinguishes deposits from balance and full payments.
type PaymentType string

const (
	PaymentDeposit PaymentType = "DEPOSIT"
	PaymentBalance PaymentType = "BALANCE"
	PaymentFull    PaymentType = "FULL"
)

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// User is a back-office account. LanguageID drives response localization.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	FirstName    string    `json:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty"`
	Role         UserRole  `json:"role" gorm:"default:CLIENT"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	LanguageID   string    `json:"languageId" gorm:"default:en"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Customer extends a user with travel-agency contact details.
// One customer record per user.
type Customer struct {
	ID          uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      uuid.UUID  `json:"userId" gorm:"type:uuid;uniqueIndex"`
	User        *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Phone       string     `json:"phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	City        string     `json:"city,omitempty"`
	Country     string     `json:"country,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Destination is a country the agency sells packages for.
// Country is unique across the table.
type Destination struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Country     string    `json:"country" gorm:"uniqueIndex"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Package is a sellable travel offer for a destination.
type Package struct {
	ID               uuid.UUID       `json:"id" gorm:"primaryKey;type:uuid"`
	DestinationID    uuid.UUID       `json:"destinationId" gorm:"type:uuid;index"`
	Destination      *Destination    `json:"destination,omitempty" gorm:"foreignKey:DestinationID"`
	Title            string          `json:"title"`
	Description      string          `json:"description,omitempty"`
	Duration         int             `json:"duration"`
	Price            decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	IncludedServices []string        `json:"includedServices" gorm:"serializer:json"`
	AvailableFrom    time.Time       `json:"availableFrom"`
	AvailableTo      time.Time       `json:"availableTo"`
	MaxCapacity      int             `json:"maxCapacity"`
	IsActive         bool            `json:"isActive" gorm:"default:true"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Booking ties a customer to a package for a travel date.
type Booking struct {
	ID               uuid.UUID       `json:"id" gorm:"primaryKey;type:uuid"`
	CustomerID       uuid.UUID       `json:"customerId" gorm:"type:uuid;index"`
	Customer         *Customer       `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	PackageID        uuid.UUID       `json:"packageId" gorm:"type:uuid;index"`
	Package          *Package        `json:"package,omitempty" gorm:"foreignKey:PackageID"`
	NumberOfAdults   int             `json:"numberOfAdults"`
	NumberOfChildren int             `json:"numberOfChildren" gorm:"default:0"`
	TotalPrice       decimal.Decimal `json:"totalPrice" gorm:"type:decimal(10,2)"`
	BookingDate      time.Time       `json:"bookingDate"`
	TravelDate       time.Time       `json:"travelDate"`
	Status           BookingStatus   `json:"status" gorm:"default:PENDING"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// Payment records money received against a booking.
type Payment struct {
	ID                   uuid.UUID       `json:"id" gorm:"primaryKey;type:uuid"`
	BookingID            uuid.UUID       `json:"bookingId" gorm:"type:uuid;index"`
	Booking              *Booking        `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	Amount               decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	PaymentMethod        PaymentMethod   `json:"paymentMethod"`
	PaymentType          PaymentType     `json:"paymentType"`
	Status               PaymentStatus   `json:"status" gorm:"default:COMPLETED"`
	TransactionReference string          `json:"transactionReference,omitempty"`
	Notes                string          `json:"notes,omitempty"`
	PaymentDate          time.Time       `json:"paymentDate"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// Notification is an in-app message addressed to a user.
type Notification struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
