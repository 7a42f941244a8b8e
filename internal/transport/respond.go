package transport

import "github.com/labstack/echo/v4"

func OK(c echo.Context, status int, data any) error {
	return c.JSON(status, Response{Success: true, Data: data})
}

func OKMessage(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, Response{Success: true, Data: data, Message: message})
}

func OKPage(c echo.Context, status int, data any, p *Pagination) error {
	return c.JSON(status, Response{Success: true, Data: data, Pagination: p})
}

func Fail(c echo.Context, status int, errMsg string) error {
	return c.JSON(status, Response{Success: false, Error: errMsg})
}

func FailFields(c echo.Context, status int, errMsg string, fields ...FieldError) error {
	return c.JSON(status, Response{Success: false, Error: errMsg, Errors: fields})
}
