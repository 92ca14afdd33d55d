// File: internal/router/router.go
package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"user-admin/internal/api"
	"user-admin/internal/apperror"
	"user-admin/internal/cache"
	"user-admin/internal/database"
	"user-admin/internal/handler"
	"user-admin/internal/handler/users"
	"user-admin/internal/middleware"
	"user-admin/internal/worker"
)

// Setup registers routes and the central error boundary.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/ping", handler.PingHandler(db, rdb))

	e.GET("/user", users.ListUsersHandler(db, rdb))
	e.POST("/register", users.RegisterHandler(db, rdb, wp))
	e.POST("/login", users.LoginHandler(db))

	e.PUT("/update/:id", users.UpdateUserHandler(db, rdb, wp), middleware.RequireAdmin)
	e.DELETE("/delete/:id", users.DeleteUserHandler(db, rdb, wp), middleware.RequireAdmin)
}

// HTTPErrorHandler is the single boundary mapping error kinds to status
// codes and the response envelope. Internal faults are logged here and
// never reach the client beyond a generic message.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var ae *apperror.Error
	if errors.As(err, &ae) {
		if ae.StatusCode() >= http.StatusInternalServerError {
			c.Logger().Error(ae)
		}
		_ = c.JSON(ae.StatusCode(), api.Fail(ae.Message))
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := fmt.Sprint(he.Message)
		if he.Code == http.StatusNotFound {
			msg = "Route not found"
		}
		if he.Code >= http.StatusInternalServerError {
			c.Logger().Error(he)
			msg = "Internal Server Error"
		}
		_ = c.JSON(he.Code, api.Fail(msg))
		return
	}

	c.Logger().Error(err)
	_ = c.JSON(http.StatusInternalServerError, api.Fail("Internal Server Error"))
}
