package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
	"github.com/ali-0019/vapeland/myErrors"
)

// TechQuestionRepository 定义了技术问答在 MySQL 中的持久化操作接口。
type TechQuestionRepository interface {
	// CreateQuestion 持久化一条新问答。
	CreateQuestion(ctx context.Context, db *gorm.DB, question *entities.TechQuestion) error

	// GetQuestionByID 根据单个 ID 检索问答。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetQuestionByID(ctx context.Context, id string) (*entities.TechQuestion, error)

	// ListQuestions 分页查询问答，新问题在前。
	// - status 可选，nil 表示不过滤。
	ListQuestions(ctx context.Context, status *enums.ContentStatus, offset, limit int) ([]*entities.TechQuestion, int64, error)

	// ListTopRated 查询已通过审核的问答中平均分最高的前 limit 条。
	// - 高分榜定时任务和缓存未命中时的回源都走这里。
	ListTopRated(ctx context.Context, limit int) ([]*entities.TechQuestion, error)

	// ListPending 分页查询待审核问答，旧的在前。
	ListPending(ctx context.Context, offset, limit int) ([]*entities.TechQuestion, int64, error)

	// UpdateStatus 迁移问答的审核状态。
	// - 仅迁移仍处于待审核的问答；已处终态返回 myErrors.ErrStatusTerminal。
	UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error

	// UpdateRatingAggregates 写回派生的评分聚合字段，必须与评分行同事务。
	UpdateRatingAggregates(ctx context.Context, db *gorm.DB, questionID string, average float64, count int64) error

	// CountByUserSince 统计用户自某时刻起创建的问答数，用于每日限额。
	CountByUserSince(ctx context.Context, userID int64, since time.Time) (int64, error)
}

// techQuestionRepository 是 TechQuestionRepository 接口针对 MySQL 的具体实现。
type techQuestionRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewTechQuestionRepository 是 techQuestionRepository 的构造函数。
func NewTechQuestionRepository(db *gorm.DB, logger *core.ZapLogger) TechQuestionRepository {
	return &techQuestionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateQuestion 实现问答的数据库插入操作。
func (r *techQuestionRepository) CreateQuestion(ctx context.Context, db *gorm.DB, question *entities.TechQuestion) error {
	if err := db.WithContext(ctx).Create(question).Error; err != nil {
		r.logger.Error("创建技术问答数据库操作失败",
			zap.Error(err),
			zap.Int64("userID", question.UserID),
		)
		return err
	}
	return nil
}

// GetQuestionByID 实现根据单个 ID 获取问答。
func (r *techQuestionRepository) GetQuestionByID(ctx context.Context, id string) (*entities.TechQuestion, error) {
	var question entities.TechQuestion
	err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取技术问答未找到", zap.String("questionID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取技术问答数据库查询失败", zap.String("questionID", id), zap.Error(err))
		return nil, err
	}
	return &question, nil
}

// ListQuestions 实现问答的分页查询。
func (r *techQuestionRepository) ListQuestions(ctx context.Context, status *enums.ContentStatus, offset, limit int) ([]*entities.TechQuestion, int64, error) {
	var questions []*entities.TechQuestion
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&entities.TechQuestion{})
	countQuery := r.db.WithContext(ctx).Model(&entities.TechQuestion{})

	if status != nil {
		query = query.Where("status = ?", *status)
		countQuery = countQuery.Where("status = ?", *status)
	}

	if err := countQuery.Count(&totalCount).Error; err != nil {
		r.logger.Error("获取问答列表：计数查询失败", zap.Error(err))
		return nil, 0, fmt.Errorf("计数技术问答失败: %w", err)
	}

	if totalCount == 0 {
		return questions, 0, nil
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if err := query.Offset(offset).Limit(limit).Find(&questions).Error; err != nil {
		r.logger.Error("获取问答列表：列表查询失败",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, 0, fmt.Errorf("查询技术问答列表失败: %w", err)
	}

	return questions, totalCount, nil
}

// ListTopRated 实现高分问答的查询。
func (r *techQuestionRepository) ListTopRated(ctx context.Context, limit int) ([]*entities.TechQuestion, error) {
	var questions []*entities.TechQuestion
	err := r.db.WithContext(ctx).
		Where("status = ?", enums.ContentApproved).
		Order("average_rating DESC").
		Order("rating_count DESC").
		Order("id ASC").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		r.logger.Error("查询高分问答失败", zap.Error(err), zap.Int("limit", limit))
		return nil, err
	}
	return questions, nil
}

// ListPending 实现待审核问答的分页查询。
func (r *techQuestionRepository) ListPending(ctx context.Context, offset, limit int) ([]*entities.TechQuestion, int64, error) {
	var questions []*entities.TechQuestion
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&entities.TechQuestion{}).Where("status = ?", enums.ContentPending)
	if err := query.Count(&totalCount).Error; err != nil {
		r.logger.Error("获取待审核问答：计数查询失败", zap.Error(err))
		return nil, 0, fmt.Errorf("计数待审核问答失败: %w", err)
	}
	if totalCount == 0 {
		return questions, 0, nil
	}

	err := r.db.WithContext(ctx).
		Where("status = ?", enums.ContentPending).
		Order("created_at ASC").Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&questions).Error
	if err != nil {
		r.logger.Error("获取待审核问答：列表查询失败", zap.Error(err), zap.Int("offset", offset), zap.Int("limit", limit))
		return nil, 0, fmt.Errorf("查询待审核问答失败: %w", err)
	}
	return questions, totalCount, nil
}

// UpdateStatus 实现问答审核状态的迁移。
// - 只允许从待审核迁出，条件更新保证并发裁决只有一个生效。
func (r *techQuestionRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error {
	result := db.WithContext(ctx).
		Model(&entities.TechQuestion{}).
		Where("id = ? AND status = ?", id, enums.ContentPending).
		Update("status", status)
	if result.Error != nil {
		r.logger.Error("更新问答审核状态失败",
			zap.Error(result.Error),
			zap.String("questionID", id),
			zap.Int("status", int(status)),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.WithContext(ctx).Model(&entities.TechQuestion{}).Where("id = ?", id).Count(&count).Error; err != nil {
			r.logger.Error("检查问答是否存在失败", zap.Error(err), zap.String("questionID", id))
			return err
		}
		if count == 0 {
			r.logger.Warn("更新问答审核状态但未找到记录", zap.String("questionID", id))
			return commonerrors.ErrRepoNotFound
		}
		r.logger.Warn("问答已处于终态，状态未改变", zap.String("questionID", id))
		return myErrors.ErrStatusTerminal
	}
	return nil
}

// UpdateRatingAggregates 实现评分聚合字段的写回。
func (r *techQuestionRepository) UpdateRatingAggregates(ctx context.Context, db *gorm.DB, questionID string, average float64, count int64) error {
	result := db.WithContext(ctx).
		Model(&entities.TechQuestion{}).
		Where("id = ?", questionID).
		Updates(map[string]interface{}{
			"average_rating": average,
			"rating_count":   count,
		})
	if result.Error != nil {
		r.logger.Error("写回问答评分聚合失败",
			zap.Error(result.Error),
			zap.String("questionID", questionID),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("写回评分聚合但未找到问答", zap.String("questionID", questionID))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// CountByUserSince 实现用户问答数的时间窗口统计。
func (r *techQuestionRepository) CountByUserSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.TechQuestion{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		r.logger.Error("统计用户问答数失败",
			zap.Error(err),
			zap.Int64("userID", userID),
			zap.Time("since", since),
		)
		return 0, err
	}
	return count, nil
}
