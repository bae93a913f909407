package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrThreadMismatch 表示回复的父节点属于另一条根评论。
// - 回复树的硬性约束: 子回复的 comment_id 必须与父回复一致，禁止跨树嫁接。
var ErrThreadMismatch = errors.New("reply: parent belongs to a different comment thread")

// ErrRateLimitExceeded 表示用户当日（UTC 自然日）该类动作已达上限。
var ErrRateLimitExceeded = errors.New("rate limit: daily action limit exceeded")

// ErrValidation 表示请求参数未通过业务校验（分值越界、用户名长度等）。
// - 调用方应提示用户重新输入，而不是视为系统故障。
var ErrValidation = errors.New("validation: invalid input")

// ErrStatusTerminal 表示内容已处于终态（已通过/已拒绝），不允许再次迁移。
var ErrStatusTerminal = errors.New("moderation: content status is terminal")

// ErrDuplicateRating 表示该用户已对同一目标打过分。
// - 服务层把它转换为幂等的"重复打分"响应，不算失败。
var ErrDuplicateRating = errors.New("rating: user already rated this target")
