package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"parlamento/internal/booking"
	"parlamento/internal/catalog"
	"parlamento/internal/common"
	"parlamento/internal/contact"
	"parlamento/internal/env"
	"parlamento/internal/imageproxy"
	"parlamento/internal/mailer"
	"parlamento/internal/sheets"
	"parlamento/internal/users"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Users database
	usersDB, err := sql.Open("sqlite3", env.GetEnv(env.EnvUsersDBPath, "./internal/databases/users.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer usersDB.Close()

	usersRepo := users.NewRepository(usersDB)
	if err := usersRepo.EnableWAL(); err != nil {
		log.Printf("Warning: Failed to enable WAL mode: %v", err)
	}

	// Google Sheets client. Optional: without credentials the catalog
	// serves fallback data and booking-log rows are skipped.
	var (
		rowSource   catalog.RowSource
		rowAppender booking.RowAppender
	)
	sheetsClient, err := sheets.NewClient(ctx, env.GetEnv(env.EnvGoogleCredentialsJSON, ""))
	if err != nil {
		log.Printf("Warning: Sheets client unavailable, serving fallback data: %v", err)
	} else if sheetsClient != nil {
		rowSource = sheetsClient
		rowAppender = sheetsClient
	}

	catalogSvc := catalog.NewService(
		rowSource,
		env.GetEnv(env.EnvGoogleSheetID, ""),
		env.GetEnv(env.EnvMenuWorksheetName, "menu_data"),
		env.GetEnv(env.EnvEventsWorksheetName, "events_data"),
	)

	bookingLogger := booking.NewLogger(
		rowAppender,
		env.GetEnv(env.EnvBookingSheetID, ""),
		env.GetEnv(env.EnvBookingWorksheetName, "solicitudes_de_reserva_eventos"),
	)

	// Mail relay. Optional as well: notifications are dropped with a log
	// line when unconfigured.
	mailCfg := mailer.Config{
		Server:   env.GetEnv(env.EnvMailServer, "smtp.gmail.com"),
		Port:     env.GetInt(env.EnvMailPort, 465),
		Username: env.GetEnv(env.EnvMailUsername, ""),
		Password: env.GetEnv(env.EnvMailPassword, ""),
		From:     env.GetEnv(env.EnvMailFrom, ""),
		To:       env.GetEnv(env.EnvMailTo, "claudia@parlamento.com.bo"),
		SSL:      env.GetBool(env.EnvMailSSL, true),
	}
	var deliverer mailer.Deliverer
	if mailCfg.Configured() {
		deliverer = mailer.NewSender(mailCfg)
	} else {
		log.Println("Mail relay not configured; notifications will be dropped")
	}
	dispatcher := mailer.NewDispatcher(deliverer)
	dispatcher.Start(ctx)

	// Handlers
	commonHandler := common.NewHandler(usersDB, rowSource != nil, mailCfg.Configured())
	catalogHandler := catalog.NewHandler(catalogSvc)
	bookingHandler := booking.NewHandler(dispatcher, bookingLogger)
	contactHandler := contact.NewHandler(dispatcher)
	usersHandler := users.NewHandler(usersRepo)
	proxyHandler := imageproxy.NewHandler(imageproxy.New(imageproxy.DefaultBaseURL, imageproxy.DefaultTTL))

	router := gin.Default()

	// CORS
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = splitOrigins(env.GetEnv(env.EnvCORSOrigins, "http://localhost:3000"))
	corsCfg.AllowCredentials = true
	router.Use(cors.New(corsCfg))

	// Global routes
	common.RegisterRoutes(router, commonHandler)

	// API routes
	api := router.Group("/api")
	catalog.RegisterRoutes(api, catalogHandler)
	booking.RegisterRoutes(api, bookingHandler)
	contact.RegisterRoutes(api, contactHandler)
	users.RegisterRoutes(api, usersHandler)
	imageproxy.RegisterRoutes(api, proxyHandler)

	// Static site assets, mounted only when present
	for _, dir := range []string{"team", "menu", "events"} {
		path := "./public/" + dir
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			router.Static("/"+dir, path)
		}
	}

	// Graceful shutdown handling
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		dispatcher.Stop()
		cancel()
	}()

	err = router.Run(":" + env.GetEnv(env.EnvPort, "8000"))
	if err != nil {
		log.Fatal(err)
	}
}

func splitOrigins(s string) []string {
	var origins []string
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

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
