package config

// ModerationConfig 审核策略配置。
type ModerationConfig struct {
	// AutoApprove 为 true 时新内容直接落库为已通过，跳过人工/自动审核。
	// 默认 false: 新内容一律待审核，只有审核通过后才出现在默认读路径。
	AutoApprove bool `mapstructure:"autoApprove" json:"autoApprove" yaml:"autoApprove"`
}

// ScoringConfig 积分策略配置。
// - 只有回复奖励做成可配置（历史上存在 3 分与 5 分两个版本），
//   其余奖励值见 constant 包。
type ScoringConfig struct {
	// ReplyAward 发表回复（评论回复或问答回复）的积分奖励，0 时使用默认值 3
	ReplyAward int64 `mapstructure:"replyAward" json:"replyAward" yaml:"replyAward"`
}

// RateLimitConfig 每日限额配置。
type RateLimitConfig struct {
	// DailyLimit 每类动作每 UTC 自然日的上限，0 时使用默认值 10
	DailyLimit int64 `mapstructure:"dailyLimit" json:"dailyLimit" yaml:"dailyLimit"`
}
