package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/ali-0019/vapeland/config"
	"github.com/ali-0019/vapeland/constant"
	"github.com/ali-0019/vapeland/models/enums"
	"github.com/ali-0019/vapeland/myErrors"
	"github.com/ali-0019/vapeland/repo/mysql"
)

// RateLimitService 定义了每日动作限额的检查接口。
// - 窗口是 UTC 自然日: 从当天 00:00:00 UTC 起计数，跨日自动清零，
//   不需要额外的重置任务。
// - 计数的数据源是业务表本身（按 created_at 统计），不单独记账，
//   因此限额检查和内容创建之间存在微小的竞态窗口，业务上可接受。
type RateLimitService interface {
	// CheckDailyLimit 校验用户当日该类动作是否仍有余量。
	// - 达到上限时返回 myErrors.ErrRateLimitExceeded。
	CheckDailyLimit(ctx context.Context, userID int64, action enums.ActionKind) error
}

// rateLimitService 是 RateLimitService 接口的具体实现。
type rateLimitService struct {
	commentRepo  mysql.CommentRepository
	questionRepo mysql.TechQuestionRepository
	contactRepo  mysql.ContactMessageRepository
	limit        int64
	logger       *core.ZapLogger
}

// NewRateLimitService 是 rateLimitService 的构造函数。
func NewRateLimitService(
	commentRepo mysql.CommentRepository,
	questionRepo mysql.TechQuestionRepository,
	contactRepo mysql.ContactMessageRepository,
	cfg config.RateLimitConfig,
	logger *core.ZapLogger,
) RateLimitService {
	limit := cfg.DailyLimit
	if limit <= 0 {
		limit = constant.DefaultDailyActionLimit
	}
	return &rateLimitService{
		commentRepo:  commentRepo,
		questionRepo: questionRepo,
		contactRepo:  contactRepo,
		limit:        limit,
		logger:       logger,
	}
}

// utcMidnight 返回当前 UTC 自然日的起点。
func utcMidnight(now time.Time) time.Time {
	utc := now.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckDailyLimit 实现限额检查。
func (s *rateLimitService) CheckDailyLimit(ctx context.Context, userID int64, action enums.ActionKind) error {
	since := utcMidnight(time.Now())

	var count int64
	var err error
	switch action {
	case enums.ActionComment:
		count, err = s.commentRepo.CountByUserSince(ctx, userID, since)
	case enums.ActionQuestion:
		count, err = s.questionRepo.CountByUserSince(ctx, userID, since)
	case enums.ActionMessage:
		count, err = s.contactRepo.CountByUserSince(ctx, userID, since)
	default:
		return fmt.Errorf("未知的限额动作种类: %d", action)
	}
	if err != nil {
		s.logger.Error("统计用户当日动作数失败",
			zap.Error(err),
			zap.Int64("userID", userID),
			zap.String("action", action.String()),
		)
		return fmt.Errorf("统计当日动作数失败: %w", err)
	}

	if count >= s.limit {
		s.logger.Info("用户当日动作已达上限",
			zap.Int64("userID", userID),
			zap.String("action", action.String()),
			zap.Int64("count", count),
			zap.Int64("limit", s.limit),
		)
		return myErrors.ErrRateLimitExceeded
	}
	return nil
}
