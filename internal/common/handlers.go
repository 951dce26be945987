/*
This project is the backend API for El Parlamento, a café and cultural space in La Paz. It serves the public website with the menu, event listings, bookings, contact and registration endpoints.
API Copyright (C) 2025 El Parlamento
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package common

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Timestamp    string            `json:"timestamp"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

// Uptime Logic
var startTime time.Time

func uptime() time.Duration {
	return time.Since(startTime)
}

func init() {
	startTime = time.Now()
}

// Handler serves the liveness endpoints. The users store and the optional
// integrations are probed on every /health call.
type Handler struct {
	usersDB          *sql.DB
	sheetsConfigured bool
	mailConfigured   bool
}

func NewHandler(usersDB *sql.DB, sheetsConfigured, mailConfigured bool) *Handler {
	return &Handler{
		usersDB:          usersDB,
		sheetsConfigured: sheetsConfigured,
		mailConfigured:   mailConfigured,
	}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, CreateSuccessResponse("Backend is running!", nil))
}

func (h *Handler) Health(c *gin.Context) {
	deps := map[string]string{
		"sheets": configuredLabel(h.sheetsConfigured),
		"mail":   configuredLabel(h.mailConfigured),
	}

	if h.usersDB == nil {
		deps["users_store"] = "unconfigured"
	} else if err := h.usersDB.Ping(); err != nil {
		deps["users_store"] = "unreachable"
	} else {
		deps["users_store"] = "ok"
	}

	data := HealthResponse{
		Timestamp:    time.Now().Format(time.RFC3339),
		Uptime:       uptime().Truncate(time.Second).String(),
		Dependencies: deps,
	}
	c.JSON(http.StatusOK, CreateSuccessResponse("Backend is active", data))
}

func configuredLabel(ok bool) string {
	if ok {
		return "configured"
	}
	return "unconfigured"
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
}
