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

// ContactMessageRepository 定义了联系消息在 MySQL 中的持久化操作接口。
type ContactMessageRepository interface {
	// CreateMessage 持久化一条联系消息。
	CreateMessage(ctx context.Context, db *gorm.DB, message *entities.ContactMessage) error

	// GetMessageByID 根据单个 ID 检索消息。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetMessageByID(ctx context.Context, id string) (*entities.ContactMessage, error)

	// ListByStatus 分页查询消息（管理端收件箱）。
	// - status 可选，nil 表示全部状态。
	ListByStatus(ctx context.Context, status *enums.MessageStatus, offset, limit int) ([]*entities.ContactMessage, int64, error)

	// Answer 写入管理员答复并把状态迁移为已答复。
	// - 仅迁移仍处于待处理的消息；已处理过返回 myErrors.ErrStatusTerminal。
	Answer(ctx context.Context, db *gorm.DB, id string, response string) error

	// Reject 把消息状态迁移为已拒绝。
	// - 仅迁移仍处于待处理的消息；已处理过返回 myErrors.ErrStatusTerminal。
	Reject(ctx context.Context, db *gorm.DB, id string) error

	// CountByUserSince 统计用户自某时刻起发送的消息数，用于每日限额。
	CountByUserSince(ctx context.Context, userID int64, since time.Time) (int64, error)
}

// contactMessageRepository 是 ContactMessageRepository 接口针对 MySQL 的具体实现。
type contactMessageRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewContactMessageRepository 是 contactMessageRepository 的构造函数。
func NewContactMessageRepository(db *gorm.DB, logger *core.ZapLogger) ContactMessageRepository {
	return &contactMessageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage 实现消息的数据库插入操作。
func (r *contactMessageRepository) CreateMessage(ctx context.Context, db *gorm.DB, message *entities.ContactMessage) error {
	if err := db.WithContext(ctx).Create(message).Error; err != nil {
		r.logger.Error("创建联系消息数据库操作失败",
			zap.Error(err),
			zap.Int64("userID", message.UserID),
		)
		return err
	}
	return nil
}

// GetMessageByID 实现根据单个 ID 获取消息。
func (r *contactMessageRepository) GetMessageByID(ctx context.Context, id string) (*entities.ContactMessage, error) {
	var message entities.ContactMessage
	err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取联系消息未找到", zap.String("messageID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取联系消息数据库查询失败", zap.String("messageID", id), zap.Error(err))
		return nil, err
	}
	return &message, nil
}

// ListByStatus 实现消息的分页查询。
func (r *contactMessageRepository) ListByStatus(ctx context.Context, status *enums.MessageStatus, offset, limit int) ([]*entities.ContactMessage, int64, error) {
	var messages []*entities.ContactMessage
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&entities.ContactMessage{})
	countQuery := r.db.WithContext(ctx).Model(&entities.ContactMessage{})

	if status != nil {
		query = query.Where("status = ?", *status)
		countQuery = countQuery.Where("status = ?", *status)
	}

	if err := countQuery.Count(&totalCount).Error; err != nil {
		r.logger.Error("获取联系消息列表：计数查询失败", zap.Error(err))
		return nil, 0, fmt.Errorf("计数联系消息失败: %w", err)
	}

	if totalCount == 0 {
		return messages, 0, nil
	}

	// 旧消息在前，先进先出的处理顺序
	query = query.Order("created_at ASC").Order("id ASC")
	if err := query.Offset(offset).Limit(limit).Find(&messages).Error; err != nil {
		r.logger.Error("获取联系消息列表：列表查询失败",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, 0, fmt.Errorf("查询联系消息列表失败: %w", err)
	}

	return messages, totalCount, nil
}

// Answer 实现答复写入与状态迁移。
// - 条件更新保证并发处理同一条消息只有一个生效。
func (r *contactMessageRepository) Answer(ctx context.Context, db *gorm.DB, id string, response string) error {
	result := db.WithContext(ctx).
		Model(&entities.ContactMessage{}).
		Where("id = ? AND status = ?", id, enums.MessagePending).
		Updates(map[string]interface{}{
			"response": response,
			"status":   enums.MessageAnswered,
		})
	if result.Error != nil {
		r.logger.Error("答复联系消息失败", zap.Error(result.Error), zap.String("messageID", id))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.reportUnchanged(ctx, db, id)
	}
	return nil
}

// Reject 实现拒绝状态的迁移。
// - 条件更新保证并发处理同一条消息只有一个生效。
func (r *contactMessageRepository) Reject(ctx context.Context, db *gorm.DB, id string) error {
	result := db.WithContext(ctx).
		Model(&entities.ContactMessage{}).
		Where("id = ? AND status = ?", id, enums.MessagePending).
		Update("status", enums.MessageRejected)
	if result.Error != nil {
		r.logger.Error("拒绝联系消息失败", zap.Error(result.Error), zap.String("messageID", id))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.reportUnchanged(ctx, db, id)
	}
	return nil
}

// reportUnchanged 把零行更新翻译成具体错误: 记录不存在或已处理过。
func (r *contactMessageRepository) reportUnchanged(ctx context.Context, db *gorm.DB, id string) error {
	var count int64
	if err := db.WithContext(ctx).Model(&entities.ContactMessage{}).Where("id = ?", id).Count(&count).Error; err != nil {
		r.logger.Error("检查联系消息是否存在失败", zap.Error(err), zap.String("messageID", id))
		return err
	}
	if count == 0 {
		r.logger.Warn("处理联系消息但未找到记录", zap.String("messageID", id))
		return commonerrors.ErrRepoNotFound
	}
	r.logger.Warn("联系消息已处理过，状态未改变", zap.String("messageID", id))
	return myErrors.ErrStatusTerminal
}

// CountByUserSince 实现用户消息数的时间窗口统计。
func (r *contactMessageRepository) CountByUserSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.ContactMessage{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		r.logger.Error("统计用户联系消息数失败",
			zap.Error(err),
			zap.Int64("userID", userID),
			zap.Time("since", since),
		)
		return 0, err
	}
	return count, nil
}
