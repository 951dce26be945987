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
package contact

import (
	"net/http"

	"parlamento/internal/common"
	"parlamento/internal/mailer"

	"github.com/gin-gonic/gin"
)

// ContactForm is the contact submission payload. It is never persisted,
// only forwarded to the mail dispatcher.
type ContactForm struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Notifier schedules a notification without blocking. *mailer.Dispatcher
// implements it.
type Notifier interface {
	Enqueue(msg mailer.Message)
}

type Handler struct {
	notifier Notifier
}

func NewHandler(notifier Notifier) *Handler {
	return &Handler{notifier: notifier}
}

// Contact accepts the form and responds immediately; delivery happens in
// the background and its failures never reach the client.
func (h *Handler) Contact(c *gin.Context) {
	var form ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse("Invalid contact form"))
		return
	}

	h.notifier.Enqueue(mailer.ContactMessage(mailer.ContactDetails{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
	}))

	c.JSON(http.StatusOK, common.CreateSuccessResponse("Message received", nil))
}

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.POST("/contact", h.Contact)
}
