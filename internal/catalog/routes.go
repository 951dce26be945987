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
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.GET("/menu", h.GetMenu)
	rg.GET("/events", h.GetEvents)
	rg.GET("/events/:id", h.GetEvent)
	rg.GET("/testimonials", h.GetTestimonials)
	rg.GET("/team", h.GetTeam)
}
