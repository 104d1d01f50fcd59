package repository

import (
	"errors"

	"restaurant-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSlotFull is returned when a reservation write would exceed the capacity
// of its (date, time) slot. The service layer maps it to a capacity error.
var ErrSlotFull = errors.New("reservation slot is full")

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) GetAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Find(&reservations).Error
	return reservations, err
}

func (r *ReservationRepository) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *ReservationRepository) GetByUser(userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("user_id = ?", userID).
		Order("reservation_date DESC, reservation_time DESC").
		Find(&reservations).Error
	return reservations, err
}

func (r *ReservationRepository) GetByDate(date string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("reservation_date = ?", date).
		Order("reservation_time").
		Find(&reservations).Error
	return reservations, err
}

func (r *ReservationRepository) GetByStatus(status string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("status = ?", status).
		Order("reservation_date, reservation_time").
		Find(&reservations).Error
	return reservations, err
}

// GetUpcoming lists confirmed reservations from the given date onwards.
func (r *ReservationRepository) GetUpcoming(fromDate string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("reservation_date >= ? AND status = ?", fromDate, models.ReservationStatusConfirmed).
		Order("reservation_date, reservation_time").
		Find(&reservations).Error
	return reservations, err
}

func (r *ReservationRepository) GetWithUser(id uint) (*models.ReservationWithUser, error) {
	var row models.ReservationWithUser
	err := r.db.Table("reservations").
		Select("reservations.id, reservations.user_id, reservations.reservation_date, reservations.reservation_time, "+
			"reservations.guests, reservations.status, "+
			"users.name AS user_name, users.email AS user_email, users.phone AS user_phone").
		Joins("JOIN users ON users.id = reservations.user_id").
		Where("reservations.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CountAtSlot counts the non-cancelled reservations holding the exact
// (date, time) pair.
func (r *ReservationRepository) CountAtSlot(date, time string) (int64, error) {
	return r.countAtSlot(r.db, date, time, 0)
}

func (r *ReservationRepository) countAtSlot(tx *gorm.DB, date, time string, excludeID uint) (int64, error) {
	var count int64
	q := tx.Model(&models.Reservation{}).
		Where("reservation_date = ? AND reservation_time = ? AND status <> ?",
			date, time, models.ReservationStatusCancelled)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	// SQLite serializes writers on its own and rejects FOR UPDATE.
	if tx.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *ReservationRepository) CountForDate(date string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Reservation{}).
		Where("reservation_date = ? AND status <> ?", date, models.ReservationStatusCancelled).
		Count(&count).Error
	return count, err
}

// CreateInSlot inserts a reservation only if its slot still has room. The
// count and the insert run in one transaction with a locking read so that
// concurrent requests cannot overbook the slot.
func (r *ReservationRepository) CreateInSlot(reservation *models.Reservation, capacity int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		count, err := r.countAtSlot(tx, reservation.ReservationDate, reservation.ReservationTime, 0)
		if err != nil {
			return err
		}
		if count >= capacity {
			return ErrSlotFull
		}
		return tx.Create(reservation).Error
	})
}

// RescheduleInSlot applies a partial update that moves a reservation into a
// new slot, re-checking that slot's capacity. The reservation itself is
// excluded from the count.
func (r *ReservationRepository) RescheduleInSlot(id uint, fields map[string]interface{}, date, time string, capacity int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		count, err := r.countAtSlot(tx, date, time, id)
		if err != nil {
			return err
		}
		if count >= capacity {
			return ErrSlotFull
		}
		return tx.Model(&models.Reservation{}).Where("id = ?", id).Updates(fields).Error
	})
}

func (r *ReservationRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Reservation{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ReservationRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Reservation{}).Where("id = ?", id).Update("status", status).Error
}

func (r *ReservationRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Reservation{}, id)
	return res.RowsAffected > 0, res.Error
}
