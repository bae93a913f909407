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

// QuestionReplyRepository 定义了问答回复在 MySQL 中的持久化操作接口。
// - 问答回复是平铺的，没有树形查询。
type QuestionReplyRepository interface {
	// CreateReply 持久化一条新回复。
	CreateReply(ctx context.Context, db *gorm.DB, reply *entities.QuestionReply) error

	// GetReplyByID 根据单个 ID 检索回复。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetReplyByID(ctx context.Context, id string) (*entities.QuestionReply, error)

	// ListByQuestion 分页查询指定问答下的回复，按时间正序。
	// - status 可选，nil 表示不过滤。
	ListByQuestion(ctx context.Context, questionID string, status *enums.ContentStatus, offset, limit int) ([]*entities.QuestionReply, int64, error)

	// ListPending 分页查询待审核回复，旧的在前。
	ListPending(ctx context.Context, offset, limit int) ([]*entities.QuestionReply, int64, error)

	// UpdateStatus 迁移回复的审核状态。
	// - 仅迁移仍处于待审核的回复；已处终态返回 myErrors.ErrStatusTerminal。
	UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error
}

// questionReplyRepository 是 QuestionReplyRepository 接口针对 MySQL 的具体实现。
type questionReplyRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewQuestionReplyRepository 是 questionReplyRepository 的构造函数。
func NewQuestionReplyRepository(db *gorm.DB, logger *core.ZapLogger) QuestionReplyRepository {
	return &questionReplyRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReply 实现回复的数据库插入操作。
func (r *questionReplyRepository) CreateReply(ctx context.Context, db *gorm.DB, reply *entities.QuestionReply) error {
	if err := db.WithContext(ctx).Create(reply).Error; err != nil {
		r.logger.Error("创建问答回复数据库操作失败",
			zap.Error(err),
			zap.String("questionID", reply.QuestionID),
			zap.Int64("userID", reply.UserID),
		)
		return err
	}
	return nil
}

// GetReplyByID 实现根据单个 ID 获取回复。
func (r *questionReplyRepository) GetReplyByID(ctx context.Context, id string) (*entities.QuestionReply, error) {
	var reply entities.QuestionReply
	err := r.db.WithContext(ctx).First(&reply, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取问答回复未找到", zap.String("replyID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取问答回复数据库查询失败", zap.String("replyID", id), zap.Error(err))
		return nil, err
	}
	return &reply, nil
}

// ListByQuestion 实现问答回复的分页查询。
func (r *questionReplyRepository) ListByQuestion(ctx context.Context, questionID string, status *enums.ContentStatus, offset, limit int) ([]*entities.QuestionReply, int64, error) {
	var replies []*entities.QuestionReply
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&entities.QuestionReply{}).Where("question_id = ?", questionID)
	countQuery := r.db.WithContext(ctx).Model(&entities.QuestionReply{}).Where("question_id = ?", questionID)

	if status != nil {
		query = query.Where("status = ?", *status)
		countQuery = countQuery.Where("status = ?", *status)
	}

	if err := countQuery.Count(&totalCount).Error; err != nil {
		r.logger.Error("获取问答回复列表：计数查询失败",
			zap.Error(err),
			zap.String("questionID", questionID),
		)
		return nil, 0, fmt.Errorf("计数问答回复失败: %w", err)
	}

	if totalCount == 0 {
		return replies, 0, nil
	}

	query = query.Order("created_at ASC").Order("id ASC")
	if err := query.Offset(offset).Limit(limit).Find(&replies).Error; err != nil {
		r.logger.Error("获取问答回复列表：列表查询失败",
			zap.Error(err),
			zap.String("questionID", questionID),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, 0, fmt.Errorf("查询问答回复列表失败: %w", err)
	}

	return replies, totalCount, nil
}

// ListPending 实现待审核问答回复的分页查询。
func (r *questionReplyRepository) ListPending(ctx context.Context, offset, limit int) ([]*entities.QuestionReply, int64, error) {
	var replies []*entities.QuestionReply
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&entities.QuestionReply{}).Where("status = ?", enums.ContentPending)
	if err := query.Count(&totalCount).Error; err != nil {
		r.logger.Error("获取待审核问答回复：计数查询失败", zap.Error(err))
		return nil, 0, fmt.Errorf("计数待审核问答回复失败: %w", err)
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
		r.logger.Error("获取待审核问答回复：列表查询失败", zap.Error(err), zap.Int("offset", offset), zap.Int("limit", limit))
		return nil, 0, fmt.Errorf("查询待审核问答回复失败: %w", err)
	}
	return replies, totalCount, nil
}

// UpdateStatus 实现问答回复审核状态的迁移。
// - 只允许从待审核迁出，条件更新保证并发裁决只有一个生效。
func (r *questionReplyRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id string, status enums.ContentStatus) error {
	result := db.WithContext(ctx).
		Model(&entities.QuestionReply{}).
		Where("id = ? AND status = ?", id, enums.ContentPending).
		Update("status", status)
	if result.Error != nil {
		r.logger.Error("更新问答回复审核状态失败",
			zap.Error(result.Error),
			zap.String("replyID", id),
			zap.Int("status", int(status)),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.WithContext(ctx).Model(&entities.QuestionReply{}).Where("id = ?", id).Count(&count).Error; err != nil {
			r.logger.Error("检查问答回复是否存在失败", zap.Error(err), zap.String("replyID", id))
			return err
		}
		if count == 0 {
			r.logger.Warn("更新问答回复审核状态但未找到记录", zap.String("replyID", id))
			return commonerrors.ErrRepoNotFound
		}
		r.logger.Warn("问答回复已处于终态，状态未改变", zap.String("replyID", id))
		return myErrors.ErrStatusTerminal
	}
	return nil
}
