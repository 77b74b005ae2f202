package usecase

import "time"

// 現在の時間（クーポンの有効期間判定に使う）
type Clock interface {
	Now() time.Time
}
