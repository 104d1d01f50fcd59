package services

import (
	"errors"
	"time"

	"restaurant-api/models"
	"restaurant-api/repository"
	"restaurant-api/utils"

	"gorm.io/gorm"
)

// slotCapacity is the maximum number of non-cancelled reservations a single
// (date, time) slot admits.
const slotCapacity = 10

const maxGuests = 20

type ReservationService struct {
	reservations *repository.ReservationRepository
	users        *repository.UserRepository
	now          func() time.Time
}

func NewReservationService(reservations *repository.ReservationRepository, users *repository.UserRepository) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		users:        users,
		now:          time.Now,
	}
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	return s.reservations.GetAll()
}

func (s *ReservationService) GetByID(id int) (*models.Reservation, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid reservation ID")
	}
	reservation, err := s.reservations.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundErr("Reservation not found")
	}
	return reservation, err
}

func (s *ReservationService) GetByUser(userID int) ([]models.Reservation, error) {
	if userID <= 0 {
		return nil, utils.ValidationErr("Invalid user ID")
	}
	return s.reservations.GetByUser(uint(userID))
}

func (s *ReservationService) GetByDate(date string) ([]models.Reservation, error) {
	if date == "" {
		return nil, utils.ValidationErr("Date is required")
	}
	return s.reservations.GetByDate(date)
}

func (s *ReservationService) GetByStatus(status string) ([]models.Reservation, error) {
	if !statusIn(status, models.ReservationStatuses) {
		return nil, utils.ValidationErr("Invalid status. Must be: pending, confirmed, cancelled, completed")
	}
	return s.reservations.GetByStatus(status)
}

func (s *ReservationService) GetUpcoming() ([]models.Reservation, error) {
	return s.reservations.GetUpcoming(s.now().Format("2006-01-02"))
}

func (s *ReservationService) GetWithUser(id int) (*models.ReservationWithUser, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid reservation ID")
	}
	reservation, err := s.reservations.GetWithUser(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundErr("Reservation not found")
	}
	return reservation, err
}

// Create validates the request, rejects past slots, and inserts the
// reservation with a transactional capacity check on its (date, time) slot.
func (s *ReservationService) Create(req models.ReservationRequest) (*models.Reservation, error) {
	if req.UserID <= 0 {
		return nil, utils.ValidationErr("Valid user ID is required")
	}
	if req.ReservationDate == "" {
		return nil, utils.ValidationErr("Reservation date is required")
	}
	if req.ReservationTime == "" {
		return nil, utils.ValidationErr("Reservation time is required")
	}
	if req.Guests <= 0 {
		return nil, utils.ValidationErr("Valid number of guests is required")
	}
	if req.Guests > maxGuests {
		return nil, utils.ValidationErr("Maximum 20 guests allowed. Please contact us for larger parties.")
	}
	if req.Status != "" && !statusIn(req.Status, models.ReservationStatuses) {
		return nil, utils.ValidationErr("Invalid status")
	}

	if _, err := s.users.GetByID(uint(req.UserID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("User not found")
		}
		return nil, err
	}

	slot, err := parseSlot(req.ReservationDate, req.ReservationTime)
	if err != nil {
		return nil, utils.ValidationErr("Invalid reservation date or time format")
	}
	if slot.Before(s.now()) {
		return nil, utils.ValidationErr("Reservation date and time cannot be in the past")
	}

	status := req.Status
	if status == "" {
		status = models.ReservationStatusPending
	}

	reservation := models.Reservation{
		UserID:          uint(req.UserID),
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		Guests:          int(req.Guests),
		Status:          status,
	}
	if err := s.reservations.CreateInSlot(&reservation, slotCapacity); err != nil {
		if errors.Is(err, repository.ErrSlotFull) {
			return nil, utils.CapacityErr("No tables available for this time slot. Please choose another time.")
		}
		return nil, err
	}
	return &reservation, nil
}

// Update applies a partial patch. When the patch moves the reservation to a
// different slot, the target slot's capacity is re-checked (the reservation
// itself is excluded from the count).
func (s *ReservationService) Update(id int, patch models.ReservationPatch) (*models.Reservation, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid reservation ID")
	}
	existing, err := s.reservations.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("Reservation not found")
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.Guests != nil {
		if *patch.Guests <= 0 {
			return nil, utils.ValidationErr("Number of guests must be positive")
		}
		if *patch.Guests > maxGuests {
			return nil, utils.ValidationErr("Maximum 20 guests allowed")
		}
		fields["guests"] = int(*patch.Guests)
	}
	if patch.Status != nil {
		if !statusIn(*patch.Status, models.ReservationStatuses) {
			return nil, utils.ValidationErr("Invalid status")
		}
		fields["status"] = *patch.Status
	}

	date := existing.ReservationDate
	timeOfDay := existing.ReservationTime
	if patch.ReservationDate != nil {
		date = *patch.ReservationDate
		fields["reservation_date"] = date
	}
	if patch.ReservationTime != nil {
		timeOfDay = *patch.ReservationTime
		fields["reservation_time"] = timeOfDay
	}

	slotChanged := date != existing.ReservationDate || timeOfDay != existing.ReservationTime
	if patch.ReservationDate != nil || patch.ReservationTime != nil {
		slot, err := parseSlot(date, timeOfDay)
		if err != nil {
			return nil, utils.ValidationErr("Invalid reservation date or time format")
		}
		if slot.Before(s.now()) {
			return nil, utils.ValidationErr("Reservation date and time cannot be in the past")
		}
	}

	if len(fields) > 0 {
		if slotChanged {
			err = s.reservations.RescheduleInSlot(uint(id), fields, date, timeOfDay, slotCapacity)
			if errors.Is(err, repository.ErrSlotFull) {
				return nil, utils.CapacityErr("No tables available for this time slot. Please choose another time.")
			}
		} else {
			err = s.reservations.Update(uint(id), fields)
		}
		if err != nil {
			return nil, err
		}
	}
	return s.reservations.GetByID(uint(id))
}

func (s *ReservationService) UpdateStatus(id int, status string) (*models.Reservation, error) {
	if id <= 0 {
		return nil, utils.ValidationErr("Invalid reservation ID")
	}
	if !statusIn(status, models.ReservationStatuses) {
		return nil, utils.ValidationErr("Invalid status. Must be: pending, confirmed, cancelled, completed")
	}
	if _, err := s.reservations.GetByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundErr("Reservation not found")
		}
		return nil, err
	}
	if err := s.reservations.UpdateStatus(uint(id), status); err != nil {
		return nil, err
	}
	return s.reservations.GetByID(uint(id))
}

func (s *ReservationService) Delete(id int) error {
	if id <= 0 {
		return utils.ValidationErr("Invalid reservation ID")
	}
	removed, err := s.reservations.Delete(uint(id))
	if err != nil {
		return err
	}
	if !removed {
		return utils.NotFoundErr("Reservation not found")
	}
	return nil
}

// CheckAvailability is a pure read: it reports how many slots remain for the
// exact (date, time) pair without mutating anything.
func (s *ReservationService) CheckAvailability(date, timeOfDay string) (*models.SlotAvailability, error) {
	if date == "" || timeOfDay == "" {
		return nil, utils.ValidationErr("Date and time are required")
	}
	count, err := s.reservations.CountAtSlot(date, timeOfDay)
	if err != nil {
		return nil, err
	}
	remaining := int64(slotCapacity) - count
	if remaining < 0 {
		remaining = 0
	}
	return &models.SlotAvailability{
		Date:              date,
		Time:              timeOfDay,
		Available:         count < slotCapacity,
		ReservationsCount: count,
		SlotsRemaining:    remaining,
	}, nil
}

func (s *ReservationService) CountToday() (int64, error) {
	return s.reservations.CountForDate(s.now().Format("2006-01-02"))
}

func parseSlot(date, timeOfDay string) (time.Time, error) {
	combined := date + " " + timeOfDay
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, combined, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized slot format")
}
