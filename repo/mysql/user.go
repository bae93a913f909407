package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
)

// UserRepository 定义了用户数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type UserRepository interface {
	// GetOrCreate 按平台用户ID取用户，不存在则插入一条默认记录。
	// - 幂等: 并发下依赖主键冲突被忽略（ON CONFLICT DO NOTHING 语义），
	//   冲突后重新查询，调用方总是拿到一条存在的记录。
	GetOrCreate(ctx context.Context, db *gorm.DB, userID int64) (*entities.User, error)

	// GetByID 根据平台用户ID检索用户。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetByID(ctx context.Context, userID int64) (*entities.User, error)

	// SetUsername 设置用户名。
	// - 唯一性由数据库唯一索引保证，冲突时返回数据库错误由服务层处理。
	SetUsername(ctx context.Context, userID int64, username string) error

	// SetPhoneNumber 绑定手机号并把认证状态迁移为已认证。
	SetPhoneNumber(ctx context.Context, userID int64, phoneNumber string) error

	// AdjustRankScore 调整用户激励积分。
	// - delta 可为负（预留），结果用 GREATEST 钳制在 0，配合 CHECK 约束兜底。
	AdjustRankScore(ctx context.Context, db *gorm.DB, userID int64, delta int64) error
}

// userRepository 是 UserRepository 接口针对 MySQL 的具体实现。
type userRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(db *gorm.DB, logger *core.ZapLogger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// GetOrCreate 实现用户的幂等读取或创建。
func (r *userRepository) GetOrCreate(ctx context.Context, db *gorm.DB, userID int64) (*entities.User, error) {
	newUser := &entities.User{
		UserID: userID,
		Status: enums.UserPending,
	}

	// DoNothing: 主键已存在时跳过插入，不报错。
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(newUser).Error; err != nil {
		r.logger.Error("创建用户记录失败", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}

	// 无论是否刚插入，都重新查询一次拿到权威状态。
	var user entities.User
	if err := db.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		r.logger.Error("读取用户记录失败", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}
	return &user, nil
}

// GetByID 实现根据平台用户ID获取用户。
func (r *userRepository) GetByID(ctx context.Context, userID int64) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取用户未找到", zap.Int64("userID", userID))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取用户数据库查询失败", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// SetUsername 实现用户名更新。
func (r *userRepository) SetUsername(ctx context.Context, userID int64, username string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"username":   username,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		r.logger.Error("更新用户名数据库操作失败",
			zap.Error(result.Error),
			zap.Int64("userID", userID),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新用户名但未找到用户", zap.Int64("userID", userID))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// SetPhoneNumber 实现手机号绑定，同时把认证状态置为已认证。
func (r *userRepository) SetPhoneNumber(ctx context.Context, userID int64, phoneNumber string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"phone_number": phoneNumber,
			"status":       enums.UserVerified,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		r.logger.Error("绑定手机号数据库操作失败",
			zap.Error(result.Error),
			zap.Int64("userID", userID),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("尝试绑定手机号但未找到用户", zap.Int64("userID", userID))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// AdjustRankScore 实现积分调整，结果永不为负。
func (r *userRepository) AdjustRankScore(ctx context.Context, db *gorm.DB, userID int64, delta int64) error {
	result := db.WithContext(ctx).
		Model(&entities.User{}).
		Where("user_id = ?", userID).
		Update("rank_score", gorm.Expr("GREATEST(rank_score + ?, 0)", delta))
	if result.Error != nil {
		r.logger.Error("调整用户积分数据库操作失败",
			zap.Error(result.Error),
			zap.Int64("userID", userID),
			zap.Int64("delta", delta),
		)
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("尝试调整积分但未找到用户", zap.Int64("userID", userID))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
