// File: tasks/top_questions_cache.go
package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ali-0019/vapeland/constant"
	"github.com/ali-0019/vapeland/models/vo"
	"github.com/ali-0019/vapeland/repo/mysql"
	"github.com/ali-0019/vapeland/repo/redis"
)

// TopQuestionsCacheTask 负责定时刷新 Redis 中的高分问答榜缓存。
// - 读路径缓存未命中时也会回填，这里的定时刷新让榜单在热点时段保持新鲜。
type TopQuestionsCacheTask struct {
	questionRepo mysql.TechQuestionRepository
	topCache     redis.TopQuestionsCache
	cron         *cron.Cron
	logger       *core.ZapLogger
}

// NewTopQuestionsCacheTask 初始化并启动高分问答榜的定时刷新任务。
func NewTopQuestionsCacheTask(
	questionRepo mysql.TechQuestionRepository,
	topCache redis.TopQuestionsCache,
	logger *core.ZapLogger,
) *TopQuestionsCacheTask {
	task := &TopQuestionsCacheTask{
		questionRepo: questionRepo,
		topCache:     topCache,
		cron:         cron.New(),
		logger:       logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *TopQuestionsCacheTask) startCronJob() {
	schedule := constant.TopQuestionsCacheCronSpec
	t.logger.Info("准备启动高分问答榜缓存刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		t.refreshTopQuestions(ctx)

		t.logger.Info("高分问答榜缓存刷新任务执行完毕", zap.Duration("duration", time.Since(startTime)))
	})
	if err != nil {
		t.logger.Fatal("添加高分问答榜缓存刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("高分问答榜缓存刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// refreshTopQuestions 从数据库取最新榜单并覆盖缓存。
func (t *TopQuestionsCacheTask) refreshTopQuestions(ctx context.Context) {
	questions, err := t.questionRepo.ListTopRated(ctx, constant.TopQuestionsListSize)
	if err != nil {
		t.logger.Error("刷新高分问答榜: 查询数据库失败", zap.Error(err))
		return
	}

	responses := vo.MapQuestionsToResponsesVO(questions)
	if err := t.topCache.SetTopQuestions(ctx, responses); err != nil {
		t.logger.Error("刷新高分问答榜: 写入缓存失败", zap.Error(err))
		return
	}

	t.logger.Debug("高分问答榜缓存已刷新", zap.Int("count", len(responses)))
}

// Stop 优雅地停止 cron 调度器。
func (t *TopQuestionsCacheTask) Stop() context.Context {
	t.logger.Info("正在停止高分问答榜缓存刷新定时任务...")
	stopCtx := t.cron.Stop()
	return stopCtx
}
