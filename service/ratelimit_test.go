package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ali-0019/vapeland/config"
	"github.com/ali-0019/vapeland/models/enums"
	"github.com/ali-0019/vapeland/myErrors"
)

func TestCheckDailyLimit_UnderLimit(t *testing.T) {
	commentRepo := new(mockCommentRepo)
	svc := NewRateLimitService(commentRepo, new(mockQuestionRepo), new(mockContactRepo),
		config.RateLimitConfig{DailyLimit: 10}, newTestLogger(t))

	commentRepo.On("CountByUserSince", mock.Anything, int64(100), mock.Anything).Return(int64(9), nil)

	err := svc.CheckDailyLimit(context.Background(), 100, enums.ActionComment)
	assert.NoError(t, err)
}

func TestCheckDailyLimit_AtLimit(t *testing.T) {
	questionRepo := new(mockQuestionRepo)
	svc := NewRateLimitService(new(mockCommentRepo), questionRepo, new(mockContactRepo),
		config.RateLimitConfig{DailyLimit: 10}, newTestLogger(t))

	questionRepo.On("CountByUserSince", mock.Anything, int64(100), mock.Anything).Return(int64(10), nil)

	err := svc.CheckDailyLimit(context.Background(), 100, enums.ActionQuestion)
	assert.ErrorIs(t, err, myErrors.ErrRateLimitExceeded)
}

func TestCheckDailyLimit_WindowStartsAtUTCMidnight(t *testing.T) {
	contactRepo := new(mockContactRepo)
	svc := NewRateLimitService(new(mockCommentRepo), new(mockQuestionRepo), contactRepo,
		config.RateLimitConfig{DailyLimit: 10}, newTestLogger(t))

	contactRepo.On("CountByUserSince", mock.Anything, int64(100), mock.MatchedBy(func(since time.Time) bool {
		// 计数窗口必须从当前 UTC 自然日的 00:00:00 起
		now := time.Now().UTC()
		return since.Equal(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
	})).Return(int64(0), nil)

	err := svc.CheckDailyLimit(context.Background(), 100, enums.ActionMessage)
	assert.NoError(t, err)
	contactRepo.AssertExpectations(t)
}

func TestCheckDailyLimit_ZeroConfigFallsBackToDefault(t *testing.T) {
	commentRepo := new(mockCommentRepo)
	svc := NewRateLimitService(commentRepo, new(mockQuestionRepo), new(mockContactRepo),
		config.RateLimitConfig{}, newTestLogger(t))

	// 默认上限 10: 第 10 次之后拒绝
	commentRepo.On("CountByUserSince", mock.Anything, int64(100), mock.Anything).Return(int64(10), nil)

	err := svc.CheckDailyLimit(context.Background(), 100, enums.ActionComment)
	assert.ErrorIs(t, err, myErrors.ErrRateLimitExceeded)
}

func TestUTCMidnight(t *testing.T) {
	// 东八区的晚 11 点仍落在 UTC 当日窗口内
	loc := time.FixedZone("UTC+8", 8*3600)
	local := time.Date(2026, 3, 15, 23, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 3, 15, 15, 0, 0, 0, time.UTC), local.UTC())
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), utcMidnight(local))

	// 东八区的凌晨 2 点属于 UTC 的前一天
	early := time.Date(2026, 3, 15, 2, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), utcMidnight(early))
}
