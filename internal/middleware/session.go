package middleware

import (
	"errors"
	"net/http"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxSessionKey = "session" // *model.Session
	CtxUserKey    = "user"    // *model.User

	SessionCookieName = "sessionid"
)

// 新しいセッションIDを作る約束
type SessionIDGenerator interface {
	NewID() string
}

type SessionConfig struct {
	Store  repository.SessionStore
	IDGen  SessionIDGenerator
	Secret string
	TTL    time.Duration
	Secure bool
}

// cookieのセッションを読み込んでcontextへ入れる。
// 変更があればレスポンスを書く直前に保存する。
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			var sess *model.Session
			if ck, err := c.Cookie(SessionCookieName); err == nil {
				if sid, err := parseSessionToken(ck.Value, cfg.Secret); err == nil {
					loaded, err := cfg.Store.Load(ctx, sid)
					switch {
					case err == nil:
						sess = loaded
					case errors.Is(err, repository.ErrNotFound):
						//期限切れ。新しく作る
					default:
						return err
					}
				}
			}
			if sess == nil {
				sess = model.NewSession(cfg.IDGen.NewID())
			}

			c.Set(CtxSessionKey, sess)

			c.Response().Before(func() {
				persistSession(c, cfg, sess)
			})

			return next(c)
		}
	}
}

// contextからセッションを取り出す
func GetSession(c echo.Context) (*model.Session, bool) {
	sess, ok := c.Get(CtxSessionKey).(*model.Session)
	return sess, ok && sess != nil
}

func persistSession(c echo.Context, cfg SessionConfig, sess *model.Session) {
	ctx := c.Request().Context()

	//ログアウト：保存先ごと消してcookieも消す
	if sess.Destroyed() {
		for _, id := range []string{sess.PreviousID(), sess.ID} {
			if id == "" {
				continue
			}
			if err := cfg.Store.Delete(ctx, id); err != nil {
				c.Logger().Errorf("session delete: %v", err)
			}
		}
		c.SetCookie(&http.Cookie{
			Name:     SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   cfg.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		return
	}

	if !sess.Modified() {
		return
	}

	//ローテートした場合は古いIDを消す
	if prev := sess.PreviousID(); prev != "" && prev != sess.ID {
		if err := cfg.Store.Delete(ctx, prev); err != nil {
			c.Logger().Errorf("session delete: %v", err)
		}
	}

	if err := cfg.Store.Save(ctx, sess, cfg.TTL); err != nil {
		c.Logger().Errorf("session save: %v", err)
		return
	}

	now := time.Now()
	token, err := signSessionToken(sess.ID, cfg.Secret, now, cfg.TTL)
	if err != nil {
		c.Logger().Errorf("session sign: %v", err)
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(cfg.TTL),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// cookieの中身は {sid, iat, exp} をHS256で署名したもの
func signSessionToken(sid, secret string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseSessionToken(raw, secret string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session token")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("invalid sid")
	}
	return sid, nil
}
