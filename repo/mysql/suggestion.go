package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
	"github.com/ali-0019/vapeland/myErrors"
)

// SuggestionRepository 定义了新品建议在 MySQL 中的持久化操作接口。
type SuggestionRepository interface {
	// CreateSuggestion 持久化一条新品建议。
	CreateSuggestion(ctx context.Context, db *gorm.DB, suggestion *entities.ProductSuggestion) error

	// GetSuggestionByID 根据单个 ID 检索建议。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetSuggestionByID(ctx context.Context, id string) (*entities.ProductSuggestion, error)

	// ListPending 分页查询待审核建议，旧的在前。
	ListPending(ctx context.Context, offset, limit int) ([]*entities.ProductSuggestion, int64, error)

	// UpdateStatus 迁移建议的审核状态。
	// - 仅迁移仍处于待审核的建议；已处终态返回 myErrors.ErrStatusTerminal。
	UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error
}

// suggestionRepository 是 SuggestionRepository 接口针对 MySQL 的具体实现。
type suggestionRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewSuggestionRepository 是 suggestionRepository 的构造函数。
func NewSuggestionRepository(db *gorm.DB, logger *core.ZapLogger) SuggestionRepository {
	return &suggestionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSuggestion 实现建议的数据库插入操作。
func (r *suggestionRepository) CreateSuggestion(ctx context.Context, db *gorm.DB, suggestion *entities.ProductSuggestion) error {
	if err := db.WithContext(ctx).Create(suggestion).Error; err != nil {
		r.logger.Error("创建新品建议数据库操作失败",
			zap.Error(err),
			zap.Int64("userID", suggestion.UserID),
			zap.String("name", suggestion.Name),
		)
		return err
	}
	return nil
}

// GetSuggestionByID 实现根据单个 ID 获取建议。
func (r *suggestionRepository) GetSuggestionByID(ctx context.Context, id string) (*entities.ProductSuggestion, error) {
	var suggestion entities.ProductSuggestion
	err := r.db.WithContext(ctx).First(&suggestion, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取新品建议未找到", zap.String("suggestionID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取新品建议数据库查询失败", zap.String("suggestionID", id), zap.Error(err))
		return nil, err
	}
	return &suggestion, nil
}

// ListPending 实现待审核建议的分页查询。
func (r *suggestionRepository) ListPending(ctx context.Context, offset, limit int) ([]*entities.ProductSuggestion, int64, error) {
	var suggestions []*entities.ProductSuggestion
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&entities.ProductSuggestion{}).Where("status = ?", enums.ContentPending)
	if err := query.Count(&totalCount).Error; err != nil {
		r.logger.Error("获取待审核建议：计数查询失败", zap.Error(err))
		return nil, 0, fmt.Errorf("计数待审核建议失败: %w", err)
	}
	if totalCount == 0 {
		return suggestions, 0, nil
	}

	err := r.db.WithContext(ctx).
		Where("status = ?", enums.ContentPending).
		Order("created_at ASC").Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&suggestions).Error
	if err != nil {
		r.logger.Error("获取待审核建议：列表查询失败", zap.Error(err), zap.Int("offset", offset), zap.Int("limit", limit))
		return nil, 0, fmt.Errorf("查询待审核建议失败: %w", err)
	}
	return suggestions, totalCount, nil
}

// UpdateStatus 实现建议审核状态的迁移。
// - 只允许从待审核迁出，条件更新保证并发裁决只有一个生效。
func (r *suggestionRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error {
	result := db.WithContext(ctx).
		Model(&entities.ProductSuggestion{}).
		Where("id = ? AND status = ?", id, enums.ContentPending).
		Update("status", status)
	if result.Error != nil {
		r.logger.Error("更新新品建议审核状态失败",
			zap.Error(result.Error),
			zap.String("suggestionID", id),
			zap.Int("status", int(status)),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.WithContext(ctx).Model(&entities.ProductSuggestion{}).Where("id = ?", id).Count(&count).Error; err != nil {
			r.logger.Error("检查新品建议是否存在失败", zap.Error(err), zap.String("suggestionID", id))
			return err
		}
		if count == 0 {
			r.logger.Warn("更新新品建议审核状态但未找到记录", zap.String("suggestionID", id))
			return commonerrors.ErrRepoNotFound
		}
		r.logger.Warn("新品建议已处于终态，状态未改变", zap.String("suggestionID", id))
		return myErrors.ErrStatusTerminal
	}
	return nil
}
