package handler

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	c.Logger().Errorf("unhandled error: %v", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// Sessionミドルウェアが入れたセッション
func getSession(c echo.Context) (*model.Session, error) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return nil, usecase.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}
	return sess, nil
}

// RequireLoginが入れたユーザー
func getUserFromContext(c echo.Context) (*model.User, bool) {
	u, ok := c.Get(middleware.CtxUserKey).(*model.User)
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}
