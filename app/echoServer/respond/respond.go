// Package respond renders the API's response envelope:
// {"status": "success"|"error", "status code": <int>, "data"|"message": ...}.
package respond

import (
	"reflect"

	"github.com/labstack/echo/v4"
)

func Data(c echo.Context, code int, data any) error {
	if isEmpty(data) {
		data = "No data available!"
	}
	return c.JSON(code, echo.Map{
		"status":      "success",
		"status code": code,
		"data":        data,
	})
}

func Message(c echo.Context, code int, msg string) error {
	status := "success"
	if code >= 400 {
		status = "error"
	}
	return c.JSON(code, echo.Map{
		"status":      status,
		"status code": code,
		"message":     msg,
	})
}

// RentalFee is the return confirmation; it carries the finalized fee
// next to the message.
func RentalFee(c echo.Context, code int, msg string, fee float64) error {
	return c.JSON(code, echo.Map{
		"status":      "success",
		"status code": code,
		"message":     msg,
		"rental_fee":  fee,
	})
}

func isEmpty(data any) bool {
	if data == nil {
		return true
	}
	v := reflect.ValueOf(data)
	return (v.Kind() == reflect.Slice || v.Kind() == reflect.Map) && v.Len() == 0
}
