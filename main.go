// Package main bookstore rental API.
//
// @title           Bookstore Rental API
// @version         1.0
// @description     Library-rental bookstore backend: catalog browsing, book rental/return, period reporting.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer"
	authctrl "github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/controller/auth"
	bookctrl "github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/controller/book"
	rentalctrl "github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/controller/rental"
	reportctrl "github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/controller/report"
	userctrl "github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/controller/user"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/validation"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/config"
	bookrepo "github.com/nikosgrigo/Bookstore-API-PostgreSQL/repository/book"
	rentalrepo "github.com/nikosgrigo/Bookstore-API-PostgreSQL/repository/rental"
	userrepo "github.com/nikosgrigo/Bookstore-API-PostgreSQL/repository/user"
	authsvc "github.com/nikosgrigo/Bookstore-API-PostgreSQL/service/auth"
	backupsvc "github.com/nikosgrigo/Bookstore-API-PostgreSQL/service/backup"
	booksvc "github.com/nikosgrigo/Bookstore-API-PostgreSQL/service/book"
	rentalsvc "github.com/nikosgrigo/Bookstore-API-PostgreSQL/service/rental"
	reportsvc "github.com/nikosgrigo/Bookstore-API-PostgreSQL/service/report"
	usersvc "github.com/nikosgrigo/Bookstore-API-PostgreSQL/service/user"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// schema first, pool second
	if err := database.Migrate(ctx, cfg.DatabaseURL); err != nil {
		log.Error("db migrate failed", "err", err)
		os.Exit(1)
	}
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	br := bookrepo.New(db)
	rr := rentalrepo.New(db)
	ur := userrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	bs := booksvc.New(br)
	rs := rentalsvc.New(rr)
	reps := reportsvc.New(rr)
	bks := backupsvc.New(rr, cfg.OutputDir)
	us := usersvc.New(ur, rr)

	if err := bs.Seed(ctx, cfg.BooksCSV); err != nil {
		log.Error("catalog seed failed", "err", err)
		os.Exit(1)
	}

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, Log: log}
	reportC := &reportctrl.Controller{Svc: reps, Backup: bks, Log: log}
	userC := &userctrl.Controller{Svc: us, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:      authC,
		Book:      bookC,
		Rental:    rentalC,
		Report:    reportC,
		User:      userC,
		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
