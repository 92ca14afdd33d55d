// File: internal/handler/ping.go
package handler

import (
	"errors"
	"net/http"

	"user-admin/internal/api"
	"user-admin/internal/apperror"
	"user-admin/internal/cache"
	"user-admin/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// PingHandler reports service health, checking both the database and the
// cache connection.
// @Summary     Health check
// @Description Returns pong after verifying database and cache connections
// @Tags        health
// @Produce     json
// @Success     200 {object} api.Response
// @Failure     500 {object} api.Response
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return apperror.Wrap(apperror.Database, "database unhealthy", err)
		}
		// a miss is healthy; only transport errors count
		if err := rdb.Get(ctx, "health").Err(); err != nil && !errors.Is(err, redis.Nil) {
			return apperror.Wrap(apperror.Database, "cache unhealthy", err)
		}
		return c.JSON(http.StatusOK, api.Succeed("pong", nil))
	}
}
