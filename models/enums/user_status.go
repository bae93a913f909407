package enums

// UserStatus 表示用户的认证状态。
type UserStatus int

const (
	UserPending  UserStatus = iota // 0 - 待认证（注册后的默认状态）
	UserVerified                   // 1 - 已认证
)

func (s UserStatus) IsValid() bool {
	return s == UserPending || s == UserVerified
}

func (s UserStatus) String() string {
	switch s {
	case UserPending:
		return "pending"
	case UserVerified:
		return "verified"
	default:
		return "unknown"
	}
}
