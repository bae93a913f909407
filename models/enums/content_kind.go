package enums

// ContentKind 是可审核内容种类的封闭枚举。
// - 审核状态机通过它做静态分发（见 service/moderation.go 的分发表），
//   替代按字符串分发的写法: 新增第六种可审核内容时编译期即可发现遗漏。
type ContentKind int

const (
	KindComment      ContentKind = iota // 0 - 商品评论
	KindCommentReply                    // 1 - 评论回复
	KindQuestion                        // 2 - 技术问答
	KindQuestionReply                   // 3 - 问答回复
	KindSuggestion                      // 4 - 新品建议
)

// AllContentKinds 列出全部可审核内容种类，供分发表完整性校验使用。
var AllContentKinds = []ContentKind{
	KindComment,
	KindCommentReply,
	KindQuestion,
	KindQuestionReply,
	KindSuggestion,
}

func (k ContentKind) IsValid() bool {
	return k >= KindComment && k <= KindSuggestion
}

// ParseContentKind 把外部传入的种类字符串解析为枚举，未知值返回 false。
func ParseContentKind(s string) (ContentKind, bool) {
	for _, k := range AllContentKinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

func (k ContentKind) String() string {
	switch k {
	case KindComment:
		return "comment"
	case KindCommentReply:
		return "comment_reply"
	case KindQuestion:
		return "question"
	case KindQuestionReply:
		return "question_reply"
	case KindSuggestion:
		return "suggestion"
	default:
		return "unknown"
	}
}
