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
package catalog

import (
	"errors"
	"net/http"

	"parlamento/internal/common"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GetMenu(c *gin.Context) {
	menu := h.svc.GetMenu(c.Request.Context())
	c.JSON(http.StatusOK, common.CreateSuccessResponse("Menu retrieved", menu))
}

func (h *Handler) GetEvents(c *gin.Context) {
	events := h.svc.GetEvents(c.Request.Context())
	c.JSON(http.StatusOK, common.CreateSuccessResponse("Events retrieved", events))
}

func (h *Handler) GetEvent(c *gin.Context) {
	event, err := h.svc.GetEventByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrEventNotFound) {
		c.JSON(http.StatusNotFound, common.CreateErrorResponse("Event not found"))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponse("Event retrieved", event))
}

func (h *Handler) GetTeam(c *gin.Context) {
	c.JSON(http.StatusOK, common.CreateSuccessResponse("Team retrieved", TeamMembers()))
}

func (h *Handler) GetTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, common.CreateSuccessResponse("Testimonials retrieved", Testimonials()))
}
