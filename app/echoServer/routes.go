package echoServer

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/controller/auth"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/controller/book"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/controller/rental"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/controller/report"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/controller/user"
)

type C struct {
	Auth      *auth.Controller
	Book      *book.Controller
	Rental    *rental.Controller
	Report    *report.Controller
	User      *user.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public catalog browsing
	e.GET("/books", c.Book.List)
	e.GET("/author/:author", c.Book.ByAuthor)
	e.GET("/book/:isbn", c.Book.ByISBN)
	e.GET("/publisher/:publisher", c.Book.ByPublisher)
	e.GET("/date/:year", c.Book.ByYear)

	// Public account endpoints
	e.POST("/user", c.Auth.Register)
	e.POST("/login", c.Auth.Login)

	// Authenticated
	authed := e.Group("")
	authed.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	authed.Use(AuthContext())

	authed.POST("/rent/:isbn", c.Rental.Rent)

	// Admin
	admin := authed.Group("", RequireAdmin())
	admin.PUT("/return/:isbn", c.Rental.Return)
	admin.GET("/rentals", c.Report.Rentals)
	admin.GET("/revenue", c.Report.Revenue)
	admin.GET("/users/:id", c.User.Detail)
	admin.GET("/backup", c.Report.Snapshot)
}
