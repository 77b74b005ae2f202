package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// UserRepository モック（middleware専用）
// =====================

type MockUserRepoForMiddleware struct {
	mock.Mock
}

func (m *MockUserRepoForMiddleware) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepoForMiddleware) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepoForMiddleware) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepoForMiddleware) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepoForMiddleware) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepoForMiddleware) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

var _ repository.UserRepository = (*MockUserRepoForMiddleware)(nil)

// セッションを直接入れてからガードを通す
func runGuard(t *testing.T, userRepo repository.UserRepository, sess *model.Session) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	setSession := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if sess != nil {
				c.Set(CtxSessionKey, sess)
			}
			return next(c)
		}
	}
	e.GET("/profile/", func(c echo.Context) error {
		u := c.Get(CtxUserKey).(*model.User)
		return c.JSON(http.StatusOK, map[string]string{"username": u.Username})
	}, setSession, RequireLogin(userRepo, "/login/"))

	req := httptest.NewRequest(http.MethodGet, "/profile/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireLogin_Anonymous_Redirects(t *testing.T) {
	userRepo := new(MockUserRepoForMiddleware)

	rec := runGuard(t, userRepo, model.NewSession("sid"))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login/?next=%2Fprofile%2F", rec.Header().Get(echo.HeaderLocation))
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestRequireLogin_NoSession_Redirects(t *testing.T) {
	rec := runGuard(t, new(MockUserRepoForMiddleware), nil)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRequireLogin_Success_SetsUser(t *testing.T) {
	userRepo := new(MockUserRepoForMiddleware)
	userRepo.On("FindByID", mock.Anything, int64(3)).Return(&model.User{ID: 3, Username: "alice", IsActive: true}, nil)

	sess := model.NewSession("sid")
	sess.UserID = 3

	rec := runGuard(t, userRepo, sess)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":"alice"}`, rec.Body.String())
}

func TestRequireLogin_InactiveOrDeleted_Redirects(t *testing.T) {
	userRepo := new(MockUserRepoForMiddleware)
	userRepo.On("FindByID", mock.Anything, int64(3)).Return(&model.User{ID: 3, IsActive: false}, nil)
	userRepo.On("FindByID", mock.Anything, int64(4)).Return(nil, nil)

	for _, id := range []int64{3, 4} {
		sess := model.NewSession("sid")
		sess.UserID = id

		rec := runGuard(t, userRepo, sess)
		assert.Equal(t, http.StatusFound, rec.Code)
	}
}
