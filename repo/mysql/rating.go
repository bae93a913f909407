package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/myErrors"
)

// RatingRepository 定义了评分数据在 MySQL 中的持久化操作接口。
// - 评分行是聚合字段（平均分/计数）的唯一数据源。新增评分后必须在
//   同一事务内调用 Recompute* 重算并写回，保证两者永不漂移。
type RatingRepository interface {
	// CreateItemRating 插入一条商品评分。
	// - (user_id, item_id) 有唯一索引；冲突时不插入并返回 myErrors.ErrDuplicateRating。
	CreateItemRating(ctx context.Context, db *gorm.DB, rating *entities.ItemRating) error

	// CreateQuestionRating 插入一条问答评分，语义与 CreateItemRating 平行。
	CreateQuestionRating(ctx context.Context, db *gorm.DB, rating *entities.QuestionRating) error

	// RecomputeItemAggregates 从全部评分行重算商品的平均分和计数。
	RecomputeItemAggregates(ctx context.Context, db *gorm.DB, itemID string) (float64, int64, error)

	// RecomputeQuestionAggregates 从全部评分行重算问答的平均分和计数。
	RecomputeQuestionAggregates(ctx context.Context, db *gorm.DB, questionID string) (float64, int64, error)

	// ListRatedItemIDs 返回存在评分行的全部商品ID，聚合对账任务用。
	ListRatedItemIDs(ctx context.Context) ([]string, error)

	// ListRatedQuestionIDs 返回存在评分行的全部问答ID，聚合对账任务用。
	ListRatedQuestionIDs(ctx context.Context) ([]string, error)
}

// ratingAggregate 承接 AVG/COUNT 扫描结果。
type ratingAggregate struct {
	Average float64
	Count   int64
}

// ratingRepository 是 RatingRepository 接口针对 MySQL 的具体实现。
type ratingRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewRatingRepository 是 ratingRepository 的构造函数。
func NewRatingRepository(db *gorm.DB, logger *core.ZapLogger) RatingRepository {
	return &ratingRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItemRating 实现商品评分的插入，唯一索引冲突转换为 ErrDuplicateRating。
func (r *ratingRepository) CreateItemRating(ctx context.Context, db *gorm.DB, rating *entities.ItemRating) error {
	// DoNothing + RowsAffected 判定: 冲突时 GORM 不报错但也不插入行。
	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rating)
	if result.Error != nil {
		r.logger.Error("插入商品评分失败",
			zap.Error(result.Error),
			zap.Int64("userID", rating.UserID),
			zap.String("itemID", rating.ItemID),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return myErrors.ErrDuplicateRating
	}
	return nil
}

// CreateQuestionRating 实现问答评分的插入。
func (r *ratingRepository) CreateQuestionRating(ctx context.Context, db *gorm.DB, rating *entities.QuestionRating) error {
	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rating)
	if result.Error != nil {
		r.logger.Error("插入问答评分失败",
			zap.Error(result.Error),
			zap.Int64("userID", rating.UserID),
			zap.String("questionID", rating.QuestionID),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return myErrors.ErrDuplicateRating
	}
	return nil
}

// RecomputeItemAggregates 实现商品评分聚合的重算。
func (r *ratingRepository) RecomputeItemAggregates(ctx context.Context, db *gorm.DB, itemID string) (float64, int64, error) {
	var agg ratingAggregate
	err := db.WithContext(ctx).
		Model(&entities.ItemRating{}).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS count").
		Where("item_id = ?", itemID).
		Scan(&agg).Error
	if err != nil {
		r.logger.Error("重算商品评分聚合失败", zap.Error(err), zap.String("itemID", itemID))
		return 0, 0, err
	}
	return agg.Average, agg.Count, nil
}

// RecomputeQuestionAggregates 实现问答评分聚合的重算。
func (r *ratingRepository) RecomputeQuestionAggregates(ctx context.Context, db *gorm.DB, questionID string) (float64, int64, error) {
	var agg ratingAggregate
	err := db.WithContext(ctx).
		Model(&entities.QuestionRating{}).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS count").
		Where("question_id = ?", questionID).
		Scan(&agg).Error
	if err != nil {
		r.logger.Error("重算问答评分聚合失败", zap.Error(err), zap.String("questionID", questionID))
		return 0, 0, err
	}
	return agg.Average, agg.Count, nil
}

// ListRatedItemIDs 实现存在评分的商品ID列表查询。
func (r *ratingRepository) ListRatedItemIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&entities.ItemRating{}).
		Distinct("item_id").
		Pluck("item_id", &ids).Error
	if err != nil {
		r.logger.Error("查询被评分商品ID列表失败", zap.Error(err))
		return nil, err
	}
	return ids, nil
}

// ListRatedQuestionIDs 实现存在评分的问答ID列表查询。
func (r *ratingRepository) ListRatedQuestionIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&entities.QuestionRating{}).
		Distinct("question_id").
		Pluck("question_id", &ids).Error
	if err != nil {
		r.logger.Error("查询被评分问答ID列表失败", zap.Error(err))
		return nil, err
	}
	return ids, nil
}
