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
package users

import (
	"errors"
	"log"
	"net/http"

	"parlamento/internal/common"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) StoreUser(c *gin.Context) {
	var payload CaptivePortalUser
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse("Invalid registration payload"))
		return
	}

	user, err := h.repo.CreateUser(payload)
	if errors.Is(err, ErrDuplicateEmail) {
		c.JSON(http.StatusConflict, common.CreateErrorResponse("Email already registered"))
		return
	}
	if err != nil {
		// Backend detail stays in the server log; the client gets the
		// generic envelope.
		log.Printf("storing user failed: %v", err)
		c.JSON(http.StatusInternalServerError, common.CreateErrorResponse("Failed to store user"))
		return
	}

	c.JSON(http.StatusCreated, common.CreateSuccessResponse("User stored", user))
}

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.POST("/store-user", h.StoreUser)
}
