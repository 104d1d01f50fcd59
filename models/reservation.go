package models

import "time"

const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

var ReservationStatuses = []string{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCancelled,
	ReservationStatusCompleted,
}

// Reservation keeps date and time as strings so that a slot is the exact
// (date, time) pair as submitted. They are parsed only for the past-date rule.
type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ReservationDate string    `gorm:"type:varchar(10);not null;index:idx_reservation_slot" json:"reservation_date"`
	ReservationTime string    `gorm:"type:varchar(8);not null;index:idx_reservation_slot" json:"reservation_time"`
	Guests          int       `gorm:"not null" json:"guests"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ReservationRequest struct {
	UserID          int64  `json:"user_id"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	Guests          int64  `json:"guests"`
	Status          string `json:"status"`
}

type ReservationPatch struct {
	ReservationDate *string `json:"reservation_date"`
	ReservationTime *string `json:"reservation_time"`
	Guests          *int64  `json:"guests"`
	Status          *string `json:"status"`
}

// ReservationWithUser joins a reservation with the reserving user's details.
type ReservationWithUser struct {
	ID              uint   `json:"id"`
	UserID          uint   `json:"user_id"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	Guests          int    `json:"guests"`
	Status          string `json:"status"`
	UserName        string `json:"user_name"`
	UserEmail       string `json:"user_email"`
	UserPhone       string `json:"user_phone"`
}

// SlotAvailability reports how much room is left in a (date, time) slot.
type SlotAvailability struct {
	Date              string `json:"date"`
	Time              string `json:"time"`
	Available         bool   `json:"available"`
	ReservationsCount int64  `json:"reservations_count"`
	SlotsRemaining    int64  `json:"slots_remaining"`
}
