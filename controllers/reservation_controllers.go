package controllers

import (
	"net/http"

	"restaurant-api/models"
	"restaurant-api/services"
	"restaurant-api/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.service.GetAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservations)
}

func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	reservation, err := rc.service.GetByID(pathID(c, "id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservation)
}

func (rc *ReservationController) GetReservationDetails(c *gin.Context) {
	reservation, err := rc.service.GetWithUser(pathID(c, "id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservation)
}

func (rc *ReservationController) GetReservationsByUser(c *gin.Context) {
	reservations, err := rc.service.GetByUser(pathID(c, "user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservations)
}

func (rc *ReservationController) GetReservationsByDate(c *gin.Context) {
	reservations, err := rc.service.GetByDate(c.Param("date"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservations)
}

func (rc *ReservationController) GetReservationsByStatus(c *gin.Context) {
	reservations, err := rc.service.GetByStatus(c.Param("status"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservations)
}

func (rc *ReservationController) GetUpcomingReservations(c *gin.Context) {
	reservations, err := rc.service.GetUpcoming()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservations)
}

func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	availability, err := rc.service.CheckAvailability(c.Query("date"), c.Query("time"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, availability)
}

func (rc *ReservationController) GetTodayReservationsCount(c *gin.Context) {
	count, err := rc.service.CountToday()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"count": count})
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	reservation, err := rc.service.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, reservation)
}

func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var patch models.ReservationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	reservation, err := rc.service.Update(pathID(c, "id"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservation)
}

func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	var body models.StatusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, utils.ValidationErr("Invalid request body"))
		return
	}
	reservation, err := rc.service.UpdateStatus(pathID(c, "id"), body.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservation)
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	if err := rc.service.Delete(pathID(c, "id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"success": true, "message": "Reservation deleted"})
}
