// File: tasks/rating_resync.go
package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali-0019/vapeland/constant"
	"github.com/ali-0019/vapeland/repo/mysql"
)

// RatingResyncTask 负责定时从评分行重算商品和问答的评分聚合。
// - 评分行是数据源，冗余的 average_rating/rating_count 只是读加速。
//   正常写路径已在事务内同步聚合，这里是对漂移的兜底对账。
type RatingResyncTask struct {
	ratingRepo   mysql.RatingRepository
	itemRepo     mysql.ItemRepository
	questionRepo mysql.TechQuestionRepository
	db           *gorm.DB
	cron         *cron.Cron
	logger       *core.ZapLogger
}

// NewRatingResyncTask 初始化并启动评分聚合对账任务。
func NewRatingResyncTask(
	db *gorm.DB,
	ratingRepo mysql.RatingRepository,
	itemRepo mysql.ItemRepository,
	questionRepo mysql.TechQuestionRepository,
	logger *core.ZapLogger,
) *RatingResyncTask {
	task := &RatingResyncTask{
		ratingRepo:   ratingRepo,
		itemRepo:     itemRepo,
		questionRepo: questionRepo,
		db:           db,
		cron:         cron.New(),
		logger:       logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *RatingResyncTask) startCronJob() {
	schedule := constant.RatingResyncCronSpec
	t.logger.Info("准备启动评分聚合对账定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		startTime := time.Now()
		// 逐目标小事务重算，整体给一个宽松的超时
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		t.resyncItems(ctx)
		t.resyncQuestions(ctx)

		t.logger.Info("评分聚合对账任务执行完毕", zap.Duration("duration", time.Since(startTime)))
	})
	if err != nil {
		t.logger.Fatal("添加评分聚合对账 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("评分聚合对账定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// resyncItems 对有评分记录的商品逐个重算聚合并写回。
func (t *RatingResyncTask) resyncItems(ctx context.Context) {
	itemIDs, err := t.ratingRepo.ListRatedItemIDs(ctx)
	if err != nil {
		t.logger.Error("评分对账: 获取有评分的商品ID失败", zap.Error(err))
		return
	}

	var synced, failed int
	for _, itemID := range itemIDs {
		err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			average, count, repoErr := t.ratingRepo.RecomputeItemAggregates(ctx, tx, itemID)
			if repoErr != nil {
				return repoErr
			}
			return t.itemRepo.UpdateRatingAggregates(ctx, tx, itemID, average, count)
		})
		if err != nil {
			// 单个目标失败不影响其余目标
			t.logger.Warn("评分对账: 商品聚合重算失败", zap.Error(err), zap.String("itemID", itemID))
			failed++
			continue
		}
		synced++
	}

	t.logger.Info("商品评分聚合对账完成", zap.Int("synced", synced), zap.Int("failed", failed))
}

// resyncQuestions 对有评分记录的问答逐个重算聚合并写回。
func (t *RatingResyncTask) resyncQuestions(ctx context.Context) {
	questionIDs, err := t.ratingRepo.ListRatedQuestionIDs(ctx)
	if err != nil {
		t.logger.Error("评分对账: 获取有评分的问答ID失败", zap.Error(err))
		return
	}

	var synced, failed int
	for _, questionID := range questionIDs {
		err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			average, count, repoErr := t.ratingRepo.RecomputeQuestionAggregates(ctx, tx, questionID)
			if repoErr != nil {
				return repoErr
			}
			return t.questionRepo.UpdateRatingAggregates(ctx, tx, questionID, average, count)
		})
		if err != nil {
			t.logger.Warn("评分对账: 问答聚合重算失败", zap.Error(err), zap.String("questionID", questionID))
			failed++
			continue
		}
		synced++
	}

	t.logger.Info("问答评分聚合对账完成", zap.Int("synced", synced), zap.Int("failed", failed))
}

// Stop 优雅地停止 cron 调度器。
func (t *RatingResyncTask) Stop() context.Context {
	t.logger.Info("正在停止评分聚合对账定时任务...")
	stopCtx := t.cron.Stop()
	return stopCtx
}
