package enums

// ActionKind 表示受每日限额约束的用户动作种类。
// - 限额窗口为 UTC 自然日（见 service/ratelimit.go）。
type ActionKind int

const (
	ActionComment  ActionKind = iota // 0 - 发表评论
	ActionQuestion                   // 1 - 提交技术问答
	ActionMessage                    // 2 - 发送联系消息
)

func (a ActionKind) IsValid() bool {
	return a >= ActionComment && a <= ActionMessage
}

func (a ActionKind) String() string {
	switch a {
	case ActionComment:
		return "comment"
	case ActionQuestion:
		return "question"
	case ActionMessage:
		return "message"
	default:
		return "unknown"
	}
}
