package constant

import "time"

// Redis Key 相关常量 (导出)
const (
	// FlowStateKeyPrefix 是会话流程状态的 Key 前缀。
	// 每个 (用户, 流程种类) 对应一个 Key，值为 JSON 序列化的流程状态。
	// 示例 Key: "flow_state:123456789:create_comment"
	// Redis 类型: String，带 TTL（过期即视为流程被放弃）
	FlowStateKeyPrefix = "flow_state:"

	// TopQuestionsCacheKey 是高分技术问答榜的缓存 Key。
	// 值为 JSON 序列化的问答摘要列表，由定时任务刷新，读路径缓存未命中时回源数据库。
	// Redis 类型: String
	TopQuestionsCacheKey = "top_questions"
)

// TTL 常量
const (
	// FlowStateTTL 会话流程状态的过期时间。用户长时间不继续，流程自动作废。
	FlowStateTTL = 30 * time.Minute

	// TopQuestionsCacheTTL 高分问答榜缓存的保底过期时间，略长于刷新周期。
	TopQuestionsCacheTTL = 15 * time.Minute
)
