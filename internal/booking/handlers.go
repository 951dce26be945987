//This project is the backend API for El Parlamento, a café and cultural space in La Paz. It serves the public website with the menu, event listings, bookings, contact and registration endpoints.
//API Copyright (C) 2025 El Parlamento
//This program is free software: you can redistribute it and/or modify
//it under the terms of the GNU General Public License as published by
//the Free Software Foundation, either version 3 of the License, or
//(at your option) any later version.
//
//This program is distributed in the hope that it will be useful,
//but WITHOUT ANY WARRANTY; without even the implied warranty of
//MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//GNU General Public License for more details.
//
//You should have received a copy of the GNU General Public License
//along with this program.  If not, see <https://www.gnu.org/licenses/>.
package booking

import (
	"context"
	"log"
	"net/http"
	"time"

	"parlamento/internal/common"
	"parlamento/internal/mailer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Notifier schedules a notification without blocking. *mailer.Dispatcher
// implements it.
type Notifier interface {
	Enqueue(msg mailer.Message)
}

type Handler struct {
	notifier Notifier
	logger   *Logger
}

func NewHandler(notifier Notifier, logger *Logger) *Handler {
	return &Handler{notifier: notifier, logger: logger}
}

// BookEventEmail accepts a booking request, answers immediately, and
// schedules the notification email plus the booking-log append in the
// background. Neither background failure alters the committed response:
// the email is the primary success signal to the requester and the log row
// is best-effort.
func (h *Handler) BookEventEmail(c *gin.Context) {
	var b EventBooking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse("Invalid booking request"))
		return
	}

	reference, err := GenerateReference()
	if err != nil {
		// crypto/rand failing is effectively fatal, but a booking should
		// still go through; fall back to a uuid reference.
		log.Printf("generating booking reference: %v", err)
		reference = ReferencePrefix + uuid.New().String()
	}

	h.notifier.Enqueue(mailer.BookingMessage(mailer.BookingDetails{
		Reference:    reference,
		EventName:    displayName(b),
		Description:  b.Description,
		Date:         formatUSDate(b.Date),
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Attendees:    b.Attendees,
		Organizer:    b.Organizer,
		ContactEmail: b.ContactEmail,
		PhoneNumber:  b.PhoneNumber,
	}))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := h.logger.Log(ctx, b, reference); err != nil {
			log.Printf("booking log append failed for %s: %v", reference, err)
		}
	}()

	c.JSON(http.StatusOK, common.CreateSuccessResponse("Solicitud enviada por correo", gin.H{
		"reference": reference,
	}))
}

// BookEvent is the legacy synchronous booking acknowledgement kept for older
// frontend builds.
func (h *Handler) BookEvent(c *gin.Context) {
	var b EventBooking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse("Invalid booking request"))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse("Event booked successfully", gin.H{
		"booking_id": "booking_" + uuid.New().String(),
	}))
}

// AvailableSlots returns the bookable time slots for a date.
func (h *Handler) AvailableSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse("Available slots retrieved", gin.H{
		"available_slots": []gin.H{
			{"date": date, "slots": []string{"09:00", "10:00", "11:00", "14:00", "15:00"}},
		},
	}))
}

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.POST("/book-event-email", h.BookEventEmail)
	rg.POST("/book-event", h.BookEvent)
	rg.GET("/available-slots", h.AvailableSlots)
}
