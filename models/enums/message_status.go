package enums

// MessageStatus 表示"联系我们"消息的处理状态。
// - 与 ContentStatus 刻意分开: 消息的终态动作是"答复"而不是简单的通过/拒绝。
// - 状态机: Pending -> Answered 或 Pending -> Rejected。
type MessageStatus int

const (
	MessagePending  MessageStatus = iota // 0 - 待处理
	MessageAnswered                      // 1 - 已答复
	MessageRejected                      // 2 - 已拒绝
)

func (s MessageStatus) IsValid() bool {
	return s >= MessagePending && s <= MessageRejected
}

func (s MessageStatus) String() string {
	switch s {
	case MessagePending:
		return "pending"
	case MessageAnswered:
		return "answered"
	case MessageRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
