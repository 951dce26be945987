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
package env

import (
	"os"
	"strconv"
	"time"
)

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Environment variable keys
const (
	// Mail relay
	EnvMailServer   = "MAIL_SERVER"
	EnvMailPort     = "MAIL_PORT"
	EnvMailUsername = "MAIL_USERNAME"
	EnvMailPassword = "MAIL_PASSWORD"
	EnvMailFrom     = "MAIL_FROM"
	EnvMailTo       = "MAIL_TO"
	EnvMailSSL      = "MAIL_SSL_TLS"

	// Google Sheets
	EnvGoogleCredentialsJSON = "GOOGLE_CREDENTIALS_JSON"
	EnvGoogleSheetID         = "GOOGLE_SHEET_ID"
	EnvMenuWorksheetName     = "MENU_WORKSHEET_NAME"
	EnvEventsWorksheetName   = "GOOGLE_WORKSHEET_NAME"

	// Booking log
	EnvBookingSheetID       = "BOOKING_SHEET_ID"
	EnvBookingWorksheetName = "BOOKING_WORKSHEET_NAME"

	// Users store
	EnvUsersDBPath = "USERS_DB_PATH"

	// HTTP
	EnvPort        = "PORT"
	EnvCORSOrigins = "CORS_ORIGINS"
)
