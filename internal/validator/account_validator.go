package validator

import (
	"context"
	"unicode/utf8"

	"storefront/internal/repository"
	auth "storefront/internal/usecase/auth_usecase"
)

// 列の長さ
const (
	maxUsernameLen = 150
	maxEmailLen    = 254
)

type accountValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewAccountValidator(users repository.UserRepository) auth.SignupValidator {
	return &accountValidator{users: users}
}

// サインアップの入力を検証。
// 順番: 必須 → パスワード一致 → ユーザー名重複 → email重複
func (v *accountValidator) ValidateSignup(ctx context.Context, username, email, password, password2 string) error {
	// 必須チェック
	if username == "" || password == "" {
		return auth.ErrInvalidInput
	}
	if utf8.RuneCountInString(username) > maxUsernameLen || utf8.RuneCountInString(email) > maxEmailLen {
		return auth.ErrInvalidInput
	}

	if password != password2 {
		return auth.ErrPasswordMismatch
	}

	taken, err := v.users.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if taken {
		return auth.ErrUsernameTaken
	}

	// emailは任意。形式は見ず、入っていれば重複だけ見る
	if email == "" {
		return nil
	}
	used, err := v.users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if used {
		return auth.ErrEmailTaken
	}

	return nil
}
