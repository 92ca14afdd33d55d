package users

import (
	"context"
	"errors"
	"net/http"

	"user-admin/internal/api"
	"user-admin/internal/apperror"
	"user-admin/internal/cache"
	"user-admin/internal/database"
	"user-admin/internal/middleware"
	"user-admin/internal/service"
	"user-admin/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var (
	registerUser     = service.RegisterUser
	authenticateUser = service.AuthenticateUser
	listUsers        = service.ListUsers
	updateUser       = service.UpdateUser
	deleteUser       = service.DeleteUser
)

// validationMessage translates a struct-validation failure into the wire
// message for the offending field.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch fe := verrs[0]; {
		case fe.Tag() == "required":
			return "Email and password are required"
		case fe.Field() == "Email":
			return "Invalid email format"
		case fe.Field() == "Password":
			return "Password must be at least 6 characters long"
		}
	}
	return "invalid request body"
}

// refreshListCache drops the cached listing right away and re-warms it off
// the request path.
func refreshListCache(ctx context.Context, db database.DB, rdb cache.Cache, wp worker.Pool) {
	cache.InvalidateUserList(ctx, rdb)
	wp.Submit(func() {
		users, _, err := listUsers(context.Background(), db)
		if err != nil {
			return
		}
		cache.SetUserList(context.Background(), rdb, users)
	})
}

// @Summary     List all users
// @Description Returns every user record (password excluded) plus a count
// @Tags        users
// @Produce     json
// @Success     200 {object} api.Response{data=api.UserListResponse}
// @Failure     500 {object} api.Response
// @Router      /user [get]
func ListUsersHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if users, ok := cache.GetUserList(ctx, rdb); ok {
			return c.JSON(http.StatusOK, api.Succeed("Users retrieved successfully",
				api.UserListResponse{Users: users, Count: len(users)}))
		}

		users, count, err := listUsers(ctx, db)
		if err != nil {
			return err
		}
		cache.SetUserList(ctx, rdb, users)
		return c.JSON(http.StatusOK, api.Succeed("Users retrieved successfully",
			api.UserListResponse{Users: users, Count: count}))
	}
}

// @Summary     Register a new user
// @Description Validates and persists a new account; the password is hashed before storage
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "registration payload"
// @Success     201 {object} api.Response{data=api.IdentityResponse}
// @Failure     400 {object} api.Response
// @Failure     422 {object} api.Response
// @Failure     500 {object} api.Response
// @Router      /register [post]
func RegisterHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return apperror.Wrap(apperror.Validation, "invalid request body", err)
		}
		if err := c.Validate(&req); err != nil {
			return apperror.Wrap(apperror.Validation, validationMessage(err), err)
		}

		user, err := registerUser(c.Request().Context(), db, req.Email, req.Password, req.Admin)
		if err != nil {
			return err
		}

		refreshListCache(c.Request().Context(), db, rdb, wp)
		return c.JSON(http.StatusCreated, api.Succeed("User registered successfully",
			api.NewIdentityResponse(user)))
	}
}

// @Summary     Log in
// @Description Authenticates by email and password and returns the identity
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "credentials"
// @Success     200 {object} api.Response{data=api.IdentityResponse}
// @Failure     400 {object} api.Response
// @Failure     401 {object} api.Response
// @Failure     404 {object} api.Response
// @Router      /login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return apperror.Wrap(apperror.Validation, "invalid request body", err)
		}
		if err := c.Validate(&req); err != nil {
			return apperror.Wrap(apperror.Validation, validationMessage(err), err)
		}

		user, err := authenticateUser(c.Request().Context(), db, req.Email, req.Password)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, api.Succeed("Login successful",
			api.NewIdentityResponse(user)))
	}
}

// @Summary     Update a user
// @Description Admin-gated partial update of email and/or password
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id      path string                true "user ID"
// @Param       request body api.UpdateUserRequest true "update payload with caller identity"
// @Success     200 {object} api.Response{data=model.User}
// @Failure     400 {object} api.Response
// @Failure     401 {object} api.Response
// @Failure     403 {object} api.Response
// @Failure     404 {object} api.Response
// @Failure     422 {object} api.Response
// @Router      /update/{id} [put]
func UpdateUserHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return apperror.Wrap(apperror.Validation, "invalid request body", err)
		}
		if err := c.Validate(&req); err != nil {
			return apperror.Wrap(apperror.Validation, validationMessage(err), err)
		}

		caller := middleware.CallerFromContext(c)
		user, err := updateUser(c.Request().Context(), db, caller, c.Param("id"), req.Email, req.Password)
		if err != nil {
			return err
		}

		refreshListCache(c.Request().Context(), db, rdb, wp)
		return c.JSON(http.StatusOK, api.Succeed("User updated successfully", user))
	}
}

// @Summary     Delete a user
// @Description Admin-gated removal of a user record
// @Tags        users
// @Produce     json
// @Param       id      path string             true "user ID"
// @Param       request body api.CallerIdentity true "caller identity"
// @Success     200 {object} api.Response{data=api.DeletedUserResponse}
// @Failure     400 {object} api.Response
// @Failure     401 {object} api.Response
// @Failure     403 {object} api.Response
// @Failure     404 {object} api.Response
// @Router      /delete/{id} [delete]
func DeleteUserHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CallerFromContext(c)
		user, err := deleteUser(c.Request().Context(), db, caller, c.Param("id"))
		if err != nil {
			return err
		}

		refreshListCache(c.Request().Context(), db, rdb, wp)
		return c.JSON(http.StatusOK, api.Succeed("User deleted successfully",
			api.DeletedUserResponse{ID: user.ID.String(), Email: user.Email}))
	}
}
