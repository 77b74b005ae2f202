package handler

import (
	"errors"
	"net/http"

	"storefront/internal/usecase"
	auth "storefront/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// 会員登録・ログイン・ログアウト・プロフィール
type AccountHandler struct {
	registerUC *auth.RegisterUserUsecase // 会員登録usecase
	loginUC    *auth.LoginUsecase        // ログインusecase
	orders     *usecase.OrderUsecase     // プロフィールの注文履歴
}

// DIコンストラクタ
func NewAccountHandler(
	registerUC *auth.RegisterUserUsecase,
	loginUC *auth.LoginUsecase,
	orders *usecase.OrderUsecase,
) *AccountHandler {
	return &AccountHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		orders:     orders,
	}
}

type signupRequest struct {
	Username  string `form:"username"`
	Email     string `form:"email"`
	Password  string `form:"password"`
	Password2 string `form:"password2"`
}

type loginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type formPage struct {
	Page  string `json:"page"`
	Error string `json:"error,omitempty"`
}

type profileResponse struct {
	User   auth.UserView         `json:"user"`
	Orders []usecase.OrderOutput `json:"orders"`
}

func (h *AccountHandler) RegisterRoutes(e *echo.Echo, loginRequired echo.MiddlewareFunc) {
	e.GET("/signup/", h.signupForm)
	e.POST("/signup/", h.signup)
	e.GET("/login/", h.loginForm)
	e.POST("/login/", h.login)
	e.GET("/logout/", h.logout)
	e.POST("/logout/", h.logout)
	e.GET("/profile/", h.profile, loginRequired)
}

func (h *AccountHandler) signupForm(c echo.Context) error {
	return c.JSON(http.StatusOK, formPage{Page: "signup"})
}

func (h *AccountHandler) loginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, formPage{Page: "login"})
}

func (h *AccountHandler) signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, formPage{Page: "signup", Error: "invalid body"})
	}
	sess, err := getSession(c)
	if err != nil {
		return writeError(c, err)
	}

	_, err = h.registerUC.Execute(c.Request().Context(), sess, auth.RegisterUserInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
	})
	if err != nil {
		status, msg := accountError(err)
		if status == http.StatusInternalServerError {
			return writeError(c, err)
		}
		return c.JSON(status, formPage{Page: "signup", Error: msg})
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AccountHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, formPage{Page: "login", Error: "invalid body"})
	}
	sess, err := getSession(c)
	if err != nil {
		return writeError(c, err)
	}

	_, err = h.loginUC.Execute(c.Request().Context(), sess, auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		status, msg := accountError(err)
		if status == http.StatusInternalServerError {
			return writeError(c, err)
		}
		return c.JSON(status, formPage{Page: "login", Error: msg})
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AccountHandler) logout(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return writeError(c, err)
	}
	h.loginUC.Logout(sess)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AccountHandler) profile(c echo.Context) error {
	user, ok := getUserFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	orders, err := h.orders.ListUserOrders(c.Request().Context(), user.ID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, profileResponse{
		User: auth.UserView{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		Orders: orders,
	})
}

// フォームに出すエラー文言
func accountError(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		return http.StatusBadRequest, "Please fill in all required fields correctly."
	case errors.Is(err, auth.ErrPasswordMismatch):
		return http.StatusBadRequest, "Passwords do not match!"
	case errors.Is(err, auth.ErrUsernameTaken):
		return http.StatusConflict, "Username already taken!"
	case errors.Is(err, auth.ErrEmailTaken):
		return http.StatusConflict, "Email already registered!"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials!"
	case errors.Is(err, auth.ErrUserInactive):
		return http.StatusForbidden, "This account is inactive."
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
