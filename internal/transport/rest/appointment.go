package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookbarber/internal/domain"
)

// @Summary Ingest a completed booking
// @Description Creates a new upcoming appointment from a booking flow payload and returns it for the confirmation screen
// @Tags Bookings
// @Accept json
// @Produce json
// @Param input body domain.BookingPayload true "Booking origination payload"
// @Success 201 {object} successResponseBody "Created appointment"
// @Failure 400 {object} errorResponseBody "Malformed payload"
// @Router /bookings [post]
func (h *Handler) ingestBooking(c *gin.Context) {
	var payload domain.BookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("malformed booking payload", zap.Error(err))
		badRequestResponse(c, "malformed booking payload")
		return
	}

	appointment, err := h.services.Appointment.IngestNewBooking(c.Request.Context(), payload)
	if err != nil {
		h.logger.Error("ingesting booking", zap.Error(err))
		badRequestResponse(c, "failed to create appointment")
		return
	}

	createdResponse(c, appointment)
}

// @Summary List appointments
// @Description Returns the appointment collection, optionally one status partition sorted newest first
// @Tags Appointments
// @Produce json
// @Param status query string false "Status partition (upcoming, completed, canceled)"
// @Success 200 {object} successResponseBody "Appointments"
// @Failure 400 {object} errorResponseBody "Unknown status"
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	statusStr := c.Query("status")
	if statusStr == "" {
		successResponse(c, http.StatusOK, h.services.Appointment.List(c.Request.Context()))
		return
	}

	status := domain.AppointmentStatus(statusStr)
	if !status.Valid() {
		badRequestResponse(c, "unknown appointment status")
		return
	}

	successResponse(c, http.StatusOK, h.services.Appointment.ListByStatus(c.Request.Context(), status))
}

// @Summary Get an appointment
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} successResponseBody "Appointment"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		notFoundResponse(c, "appointment not found")
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Update an appointment
// @Description Applies a partial edit in place; the appointment keeps its id and creation time
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param input body domain.UpdateAppointmentDTO true "Fields to change"
// @Success 200 {object} successResponseBody "Updated appointment"
// @Failure 400 {object} errorResponseBody "Malformed payload"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id} [put]
func (h *Handler) updateAppointment(c *gin.Context) {
	var dto domain.UpdateAppointmentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		h.logger.Warn("malformed update payload", zap.Error(err))
		badRequestResponse(c, "malformed update payload")
		return
	}

	appointment, err := h.services.Appointment.Update(c.Request.Context(), c.Param("id"), dto)
	if err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			notFoundResponse(c, "appointment not found")
			return
		}
		h.logger.Error("updating appointment", zap.Error(err))
		badRequestResponse(c, "failed to update appointment")
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Cancel an appointment
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} messageResponseType "Canceled"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id}/cancel [post]
func (h *Handler) cancelAppointment(c *gin.Context) {
	h.setStatus(c, h.services.Appointment.Cancel, "appointment canceled")
}

// @Summary Rebook a canceled appointment
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} messageResponseType "Rebooked"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id}/rebook [post]
func (h *Handler) rebookAppointment(c *gin.Context) {
	h.setStatus(c, h.services.Appointment.Rebook, "appointment rebooked")
}

// @Summary Mark an appointment completed
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} messageResponseType "Completed"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id}/complete [post]
func (h *Handler) completeAppointment(c *gin.Context) {
	h.setStatus(c, h.services.Appointment.Complete, "appointment completed")
}

// @Summary Toggle the reminder flag
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} successResponseBody "New reminder state"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id}/reminder [post]
func (h *Handler) toggleReminder(c *gin.Context) {
	remindMe, err := h.services.Appointment.ToggleReminder(c.Request.Context(), c.Param("id"))
	if err != nil {
		notFoundResponse(c, "appointment not found")
		return
	}

	successResponse(c, http.StatusOK, gin.H{"remindMe": remindMe})
}

// @Summary Edit-appointment handoff
// @Description Returns the payload the booking/payment flow needs to change this appointment
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} successResponseBody "Edit handoff"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id}/edit-handoff [get]
func (h *Handler) getEditHandoff(c *gin.Context) {
	handoff, err := h.services.Appointment.EditHandoff(c.Request.Context(), c.Param("id"))
	if err != nil {
		notFoundResponse(c, "appointment not found")
		return
	}

	successResponse(c, http.StatusOK, handoff)
}

// @Summary Review handoff
// @Description Returns the shop payload the review flow starts from
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} successResponseBody "Review handoff"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id}/review-handoff [get]
func (h *Handler) getReviewHandoff(c *gin.Context) {
	handoff, err := h.services.Appointment.ReviewHandoff(c.Request.Context(), c.Param("id"))
	if err != nil {
		notFoundResponse(c, "appointment not found")
		return
	}

	successResponse(c, http.StatusOK, handoff)
}

func (h *Handler) setStatus(c *gin.Context, op func(ctx context.Context, id string) error, message string) {
	if err := op(c.Request.Context(), c.Param("id")); err != nil {
		notFoundResponse(c, "appointment not found")
		return
	}

	messageResponse(c, http.StatusOK, message)
}
