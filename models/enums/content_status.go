package enums

// ContentStatus 表示用户生成内容的审核状态。
// - 适用于: 评论、评论回复、技术问答、问答回复、新品建议。
// - 状态机: Pending -> Approved 或 Pending -> Rejected，两者均为终态。
// - 默认读路径只展示 Approved 的内容，Pending/Rejected 仅审核后台可见。
type ContentStatus int

const (
	ContentPending  ContentStatus = iota // 0 - 待审核（新内容的默认状态）
	ContentApproved                      // 1 - 审核通过
	ContentRejected                      // 2 - 审核拒绝
)

// IsValid 校验枚举值是否在合法范围内。
func (s ContentStatus) IsValid() bool {
	return s >= ContentPending && s <= ContentRejected
}

// IsTerminal 判断状态是否为终态（终态不允许再次迁移）。
func (s ContentStatus) IsTerminal() bool {
	return s == ContentApproved || s == ContentRejected
}

func (s ContentStatus) String() string {
	switch s {
	case ContentPending:
		return "pending"
	case ContentApproved:
		return "approved"
	case ContentRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
