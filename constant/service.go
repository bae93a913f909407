package constant

// 服务标识，用于链路追踪与日志
const (
	ServiceName    = "vapeland-community-service"
	ServiceVersion = "1.0.0"
)

// 业务常量
const (
	// DefaultPageSize 是面向会话前端的列表统一页大小。
	// 前端用 total - shown 计算"再显示 N 条"。
	DefaultPageSize = 5

	// DefaultDailyActionLimit 是每类动作每 UTC 自然日的默认上限。
	DefaultDailyActionLimit = 10

	// UsernameMinLen / UsernameMaxLen 是用户名的长度约束。
	UsernameMinLen = 3
	UsernameMaxLen = 30

	// TopQuestionsListSize 是"高分问答榜"的条目数。
	TopQuestionsListSize = 10
)

// 积分奖励值。回复奖励历史上有 3 分与 5 分两个版本，
// 因此做成配置项（config.ScoringConfig），这里只提供默认值。
const (
	ScoreAwardComment    = 5
	ScoreAwardReply      = 3
	ScoreAwardQuestion   = 10
	ScoreAwardSuggestion = 15
	ScoreAwardRating     = 1
)

// 定时任务 cron 表达式
const (
	// TopQuestionsCacheCronSpec 高分问答榜缓存刷新频率
	TopQuestionsCacheCronSpec = "*/5 * * * *"

	// RatingResyncCronSpec 聚合评分对账频率: 从评分行重算平均分/计数，
	// 修正任何与真实数据源的漂移
	RatingResyncCronSpec = "17 * * * *"
)
