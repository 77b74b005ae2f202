package middleware

import (
	"net/http"
	"net/url"

	"storefront/internal/repository"

	"github.com/labstack/echo/v4"
)

// ログイン必須ページのガード。
// 未ログインなら loginPath?next=<今のパス> へ302。
func RequireLogin(userRepo repository.UserRepository, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			redirect := func() error {
				q := url.Values{"next": []string{c.Request().URL.Path}}
				return c.Redirect(http.StatusFound, loginPath+"?"+q.Encode())
			}

			sess, ok := GetSession(c)
			if !ok || !sess.IsAuthenticated() {
				return redirect()
			}

			//DBから最新のuserを取得する（削除・停止済みは未ログイン扱い）
			user, err := userRepo.FindByID(c.Request().Context(), sess.UserID)
			if err != nil {
				return err
			}
			if user == nil || !user.IsActive {
				return redirect()
			}

			c.Set(CtxUserKey, user)
			return next(c)
		}
	}
}
