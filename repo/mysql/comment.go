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

// CommentRepository 定义了商品评论在 MySQL 中的持久化操作接口。
type CommentRepository interface {
	// CreateComment 持久化一条新评论（回复树的根节点）。
	CreateComment(ctx context.Context, db *gorm.DB, comment *entities.Comment) error

	// GetCommentByID 根据单个 ID 检索评论。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetCommentByID(ctx context.Context, id string) (*entities.Comment, error)

	// ListByItem 分页查询指定商品下的评论。
	// - status 可选，nil 表示不按审核状态过滤（管理端用）。
	// - 默认读路径传已通过状态。
	ListByItem(ctx context.Context, itemID string, status *enums.ContentStatus, offset, limit int) ([]*entities.Comment, int64, error)

	// ListPending 分页查询待审核评论，旧的在前（审核队列先进先出）。
	ListPending(ctx context.Context, offset, limit int) ([]*entities.Comment, int64, error)

	// UpdateStatus 迁移评论的审核状态，审核管道的落点之一。
	// - 仅迁移仍处于待审核的评论；已处终态返回 myErrors.ErrStatusTerminal。
	UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error

	// CountByUserSince 统计用户自某时刻起创建的评论数，用于每日限额。
	CountByUserSince(ctx context.Context, userID int64, since time.Time) (int64, error)
}

// commentRepository 是 CommentRepository 接口针对 MySQL 的具体实现。
type commentRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCommentRepository 是 commentRepository 的构造函数。
func NewCommentRepository(db *gorm.DB, logger *core.ZapLogger) CommentRepository {
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment 实现评论的数据库插入操作。
func (r *commentRepository) CreateComment(ctx context.Context, db *gorm.DB, comment *entities.Comment) error {
	if err := db.WithContext(ctx).Create(comment).Error; err != nil {
		r.logger.Error("创建评论数据库操作失败",
			zap.Error(err),
			zap.String("itemID", comment.ItemID),
			zap.Int64("userID", comment.UserID),
		)
		return err
	}
	return nil
}

// GetCommentByID 实现根据单个 ID 获取评论。
func (r *commentRepository) GetCommentByID(ctx context.Context, id string) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取评论未找到", zap.String("commentID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取评论数据库查询失败", zap.String("commentID", id), zap.Error(err))
		return nil, err
	}
	return &comment, nil
}

// ListByItem 实现商品评论的分页查询。
func (r *commentRepository) ListByItem(ctx context.Context, itemID string, status *enums.ContentStatus, offset, limit int) ([]*entities.Comment, int64, error) {
	var comments []*entities.Comment
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&entities.Comment{}).Where("item_id = ?", itemID)
	countQuery := r.db.WithContext(ctx).Model(&entities.Comment{}).Where("item_id = ?", itemID)

	if status != nil {
		query = query.Where("status = ?", *status)
		countQuery = countQuery.Where("status = ?", *status)
	}

	if err := countQuery.Count(&totalCount).Error; err != nil {
		r.logger.Error("获取商品评论列表：计数查询失败",
			zap.Error(err),
			zap.String("itemID", itemID),
		)
		return nil, 0, fmt.Errorf("计数商品评论失败: %w", err)
	}

	if totalCount == 0 {
		return comments, 0, nil
	}

	// 新评论在前
	query = query.Order("created_at DESC").Order("id DESC")
	if err := query.Offset(offset).Limit(limit).Find(&comments).Error; err != nil {
		r.logger.Error("获取商品评论列表：列表查询失败",
			zap.Error(err),
			zap.String("itemID", itemID),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, 0, fmt.Errorf("查询商品评论列表失败: %w", err)
	}

	return comments, totalCount, nil
}

// ListPending 实现待审核评论的分页查询。
func (r *commentRepository) ListPending(ctx context.Context, offset, limit int) ([]*entities.Comment, int64, error) {
	var comments []*entities.Comment
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&entities.Comment{}).Where("status = ?", enums.ContentPending)
	if err := query.Count(&totalCount).Error; err != nil {
		r.logger.Error("获取待审核评论：计数查询失败", zap.Error(err))
		return nil, 0, fmt.Errorf("计数待审核评论失败: %w", err)
	}
	if totalCount == 0 {
		return comments, 0, nil
	}

	err := r.db.WithContext(ctx).
		Where("status = ?", enums.ContentPending).
		Order("created_at ASC").Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&comments).Error
	if err != nil {
		r.logger.Error("获取待审核评论：列表查询失败", zap.Error(err), zap.Int("offset", offset), zap.Int("limit", limit))
		return nil, 0, fmt.Errorf("查询待审核评论失败: %w", err)
	}
	return comments, totalCount, nil
}

// UpdateStatus 实现评论审核状态的迁移。
// - 只允许从待审核迁出，条件更新保证并发裁决只有一个生效。
func (r *commentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error {
	result := db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("id = ? AND status = ?", id, enums.ContentPending).
		Update("status", status)
	if result.Error != nil {
		r.logger.Error("更新评论审核状态失败",
			zap.Error(result.Error),
			zap.String("commentID", id),
			zap.Int("status", int(status)),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		// 记录不存在和已处终态分开报告
		var count int64
		if err := db.WithContext(ctx).Model(&entities.Comment{}).Where("id = ?", id).Count(&count).Error; err != nil {
			r.logger.Error("检查评论是否存在失败", zap.Error(err), zap.String("commentID", id))
			return err
		}
		if count == 0 {
			r.logger.Warn("更新评论审核状态但未找到记录", zap.String("commentID", id))
			return commonerrors.ErrRepoNotFound
		}
		r.logger.Warn("评论已处于终态，状态未改变", zap.String("commentID", id))
		return myErrors.ErrStatusTerminal
	}
	return nil
}

// CountByUserSince 实现用户评论数的时间窗口统计。
func (r *commentRepository) CountByUserSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		r.logger.Error("统计用户评论数失败",
			zap.Error(err),
			zap.Int64("userID", userID),
			zap.Time("since", since),
		)
		return 0, err
	}
	return count, nil
}
