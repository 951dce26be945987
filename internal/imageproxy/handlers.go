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
package imageproxy

import (
	"errors"
	"log"
	"net/http"

	"parlamento/internal/common"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	proxy *Proxy
}

func NewHandler(proxy *Proxy) *Handler {
	return &Handler{proxy: proxy}
}

func (h *Handler) GetImage(c *gin.Context) {
	img, err := h.proxy.Fetch(c.Request.Context(), c.Param("file_id"))
	if errors.Is(err, ErrInvalidFileID) {
		c.JSON(http.StatusBadRequest, common.CreateErrorResponse("Invalid file ID format"))
		return
	}
	if err != nil {
		log.Printf("image fetch failed: %v", err)
		c.JSON(http.StatusBadGateway, common.CreateErrorResponse("Error fetching image"))
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, img.ContentType, img.Body)
}

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.GET("/image/:file_id", h.GetImage)
}
