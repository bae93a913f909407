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

// CommentReplyRepository 定义了评论回复在 MySQL 中的持久化操作接口。
// - 回复树不做递归查询: 冗余的 comment_id 让"整棵树"一次命中，
//   "某个节点的直接子节点"按 parent_reply_id 命中，逐层展开由消费方负责。
type CommentReplyRepository interface {
	// CreateReply 持久化一条新回复。
	// - 父子一致性（父回复属于同一根评论）由服务层在创建前校验。
	CreateReply(ctx context.Context, db *gorm.DB, reply *entities.CommentReply) error

	// GetReplyByID 根据单个 ID 检索回复。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetReplyByID(ctx context.Context, id string) (*entities.CommentReply, error)

	// ListDirect 分页查询根评论的直接回复（parent_reply_id IS NULL）。
	// - status 可选，nil 表示不过滤。
	ListDirect(ctx context.Context, commentID string, status *enums.ContentStatus, offset, limit int) ([]*entities.CommentReply, int64, error)

	// ListChildren 分页查询某条回复的直接子回复。
	ListChildren(ctx context.Context, parentReplyID string, status *enums.ContentStatus, offset, limit int) ([]*entities.CommentReply, int64, error)

	// CountDirect 统计根评论的直接回复数。
	CountDirect(ctx context.Context, commentID string, status *enums.ContentStatus) (int64, error)

	// CountChildren 统计某条回复的直接子回复数。
	CountChildren(ctx context.Context, parentReplyID string, status *enums.ContentStatus) (int64, error)

	// ListPending 分页查询待审核回复，旧的在前。
	ListPending(ctx context.Context, offset, limit int) ([]*entities.CommentReply, int64, error)

	// UpdateStatus 迁移回复的审核状态。
	// - 仅迁移仍处于待审核的回复；已处终态返回 myErrors.ErrStatusTerminal。
	UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error
}

// commentReplyRepository 是 CommentReplyRepository 接口针对 MySQL 的具体实现。
type commentReplyRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCommentReplyRepository 是 commentReplyRepository 的构造函数。
func NewCommentReplyRepository(db *gorm.DB, logger *core.ZapLogger) CommentReplyRepository {
	return &commentReplyRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReply 实现回复的数据库插入操作。
func (r *commentReplyRepository) CreateReply(ctx context.Context, db *gorm.DB, reply *entities.CommentReply) error {
	if err := db.WithContext(ctx).Create(reply).Error; err != nil {
		r.logger.Error("创建评论回复数据库操作失败",
			zap.Error(err),
			zap.String("commentID", reply.CommentID),
			zap.Int64("userID", reply.UserID),
		)
		return err
	}
	return nil
}

// GetReplyByID 实现根据单个 ID 获取回复。
func (r *commentReplyRepository) GetReplyByID(ctx context.Context, id string) (*entities.CommentReply, error) {
	var reply entities.CommentReply
	err := r.db.WithContext(ctx).First(&reply, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取评论回复未找到", zap.String("replyID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取评论回复数据库查询失败", zap.String("replyID", id), zap.Error(err))
		return nil, err
	}
	return &reply, nil
}

// ListDirect 实现根评论直接回复的分页查询。
func (r *commentReplyRepository) ListDirect(ctx context.Context, commentID string, status *enums.ContentStatus, offset, limit int) ([]*entities.CommentReply, int64, error) {
	return r.listByParent(ctx, "comment_id = ? AND parent_reply_id IS NULL", commentID, status, offset, limit)
}

// ListChildren 实现子回复的分页查询。
func (r *commentReplyRepository) ListChildren(ctx context.Context, parentReplyID string, status *enums.ContentStatus, offset, limit int) ([]*entities.CommentReply, int64, error) {
	return r.listByParent(ctx, "parent_reply_id = ?", parentReplyID, status, offset, limit)
}

// listByParent 是两个列表查询共用的实现。
func (r *commentReplyRepository) listByParent(ctx context.Context, cond string, arg string, status *enums.ContentStatus, offset, limit int) ([]*entities.CommentReply, int64, error) {
	var replies []*entities.CommentReply
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&entities.CommentReply{}).Where(cond, arg)
	countQuery := r.db.WithContext(ctx).Model(&entities.CommentReply{}).Where(cond, arg)

	if status != nil {
		query = query.Where("status = ?", *status)
		countQuery = countQuery.Where("status = ?", *status)
	}

	if err := countQuery.Count(&totalCount).Error; err != nil {
		r.logger.Error("获取回复列表：计数查询失败", zap.Error(err), zap.String("parent", arg))
		return nil, 0, fmt.Errorf("计数回复失败: %w", err)
	}

	if totalCount == 0 {
		return replies, 0, nil
	}

	// 回复按时间正序展示，符合楼层阅读习惯
	query = query.Order("created_at ASC").Order("id ASC")
	if err := query.Offset(offset).Limit(limit).Find(&replies).Error; err != nil {
		r.logger.Error("获取回复列表：列表查询失败",
			zap.Error(err),
			zap.String("parent", arg),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, 0, fmt.Errorf("查询回复列表失败: %w", err)
	}

	return replies, totalCount, nil
}

// CountDirect 实现根评论直接回复数的统计。
func (r *commentReplyRepository) CountDirect(ctx context.Context, commentID string, status *enums.ContentStatus) (int64, error) {
	return r.countByParent(ctx, "comment_id = ? AND parent_reply_id IS NULL", commentID, status)
}

// CountChildren 实现子回复数的统计。
func (r *commentReplyRepository) CountChildren(ctx context.Context, parentReplyID string, status *enums.ContentStatus) (int64, error) {
	return r.countByParent(ctx, "parent_reply_id = ?", parentReplyID, status)
}

func (r *commentReplyRepository) countByParent(ctx context.Context, cond string, arg string, status *enums.ContentStatus) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.CommentReply{}).Where(cond, arg)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Count(&count).Error; err != nil {
		r.logger.Error("统计回复数失败", zap.Error(err), zap.String("parent", arg))
		return 0, err
	}
	return count, nil
}

// ListPending 实现待审核回复的分页查询。
func (r *commentReplyRepository) ListPending(ctx context.Context, offset, limit int) ([]*entities.CommentReply, int64, error) {
	var replies []*entities.CommentReply
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&entities.CommentReply{}).Where("status = ?", enums.ContentPending)
	if err := query.Count(&totalCount).Error; err != nil {
		r.logger.Error("获取待审核评论回复：计数查询失败", zap.Error(err))
		return nil, 0, fmt.Errorf("计数待审核回复失败: %w", err)
	}
	if totalCount == 0 {
		return replies, 0, nil
	}

	err := r.db.WithContext(ctx).
		Where("status = ?", enums.ContentPending).
		Order("created_at ASC").Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&replies).Error
	if err != nil {
		r.logger.Error("获取待审核评论回复：列表查询失败", zap.Error(err), zap.Int("offset", offset), zap.Int("limit", limit))
		return nil, 0, fmt.Errorf("查询待审核回复失败: %w", err)
	}
	return replies, totalCount, nil
}

// UpdateStatus 实现回复审核状态的迁移。
// - 只允许从待审核迁出，条件更新保证并发裁决只有一个生效。
func (r *commentReplyRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error {
	result := db.WithContext(ctx).
		Model(&entities.CommentReply{}).
		Where("id = ? AND status = ?", id, enums.ContentPending).
		Update("status", status)
	if result.Error != nil {
		r.logger.Error("更新评论回复审核状态失败",
			zap.Error(result.Error),
			zap.String("replyID", id),
			zap.Int("status", int(status)),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.WithContext(ctx).Model(&entities.CommentReply{}).Where("id = ?", id).Count(&count).Error; err != nil {
			r.logger.Error("检查评论回复是否存在失败", zap.Error(err), zap.String("replyID", id))
			return err
		}
		if count == 0 {
			r.logger.Warn("更新评论回复审核状态但未找到记录", zap.String("replyID", id))
			return commonerrors.ErrRepoNotFound
		}
		r.logger.Warn("评论回复已处于终态，状态未改变", zap.String("replyID", id))
		return myErrors.ErrStatusTerminal
	}
	return nil
}
