// app/echoServer/controller/auth/authController.go
package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/respond"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/model"
	authsvc "github.com/nikosgrigo/Bookstore-API-PostgreSQL/service/auth"
)

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Register a new user
// @Summary      Register user
// @Description  Register a new user with username/email uniqueness and validation
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.RegisterReq  true  "Register payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "username/email already taken"
// @Failure      500  {object}  map[string]any "internal server error"
// @Router       /user [post]
func (ct *Controller) Register(c echo.Context) error {
	var req model.RegisterReq

	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return respond.Message(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return respond.Message(c, http.StatusBadRequest, "Invalid request body")
	}

	_, err := ct.Svc.Register(c.Request().Context(), req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrUserTaken:
			return respond.Message(c, http.StatusConflict, "Username or email already exists")
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("register failed", "err", err, "req_id", rid, "path", c.Path())
			return respond.Message(c, http.StatusInternalServerError, "register failed")
		}
	}
	return respond.Message(c, http.StatusCreated, "User created successfully")
}

// Login
// @Summary      Login
// @Description  Login with email + password, returns JWT
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq

	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return respond.Message(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return respond.Message(c, http.StatusUnauthorized, "Could not verify")
	}

	token, err := ct.Svc.Login(c.Request().Context(), req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrUserNotFound:
			return respond.Message(c, http.StatusNotFound, "User not found")
		case authsvc.ErrInvalidCreds:
			return respond.Message(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("login failed", "err", err, "req_id", rid, "path", c.Path())
			return respond.Message(c, http.StatusInternalServerError, "login failed")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Login successful",
		"access_token": token,
		"token_type":   "Bearer",
	})
}
