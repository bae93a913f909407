package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali-0019/vapeland/constant"
	"github.com/ali-0019/vapeland/models/vo"
	"github.com/ali-0019/vapeland/myErrors"
	"github.com/ali-0019/vapeland/repo/mysql"
)

// UserService 定义了用户账户相关的业务逻辑接口。
type UserService interface {
	// EnsureUser 幂等地登记用户。
	// - 消息平台的每条消息都携带稳定的数字用户ID，首次见到即落库，
	//   之后重复调用直接返回已有记录。
	EnsureUser(ctx context.Context, userID int64) (*vo.UserResponse, error)

	// GetUser 获取用户信息（含积分）。
	GetUser(ctx context.Context, userID int64) (*vo.UserResponse, error)

	// SetUsername 设置用户名。
	// - 长度必须在 3~30 个字符之间，否则返回 myErrors.ErrValidation。
	SetUsername(ctx context.Context, userID int64, username string) error

	// SetPhoneNumber 绑定手机号并完成认证。
	SetPhoneNumber(ctx context.Context, userID int64, phoneNumber string) error
}

// userService 是 UserService 接口的具体实现。
type userService struct {
	userRepo mysql.UserRepository
	db       *gorm.DB
	logger   *core.ZapLogger
}

// NewUserService 是 userService 的构造函数。
func NewUserService(db *gorm.DB, userRepo mysql.UserRepository, logger *core.ZapLogger) UserService {
	return &userService{
		userRepo: userRepo,
		db:       db,
		logger:   logger,
	}
}

// EnsureUser 实现用户的幂等登记。
func (s *userService) EnsureUser(ctx context.Context, userID int64) (*vo.UserResponse, error) {
	user, err := s.userRepo.GetOrCreate(ctx, s.db, userID)
	if err != nil {
		s.logger.Error("登记用户失败", zap.Error(err), zap.Int64("userID", userID))
		return nil, fmt.Errorf("登记用户失败: %w", err)
	}
	return vo.MapUserToResponseVO(user), nil
}

// GetUser 实现用户信息查询。
func (s *userService) GetUser(ctx context.Context, userID int64) (*vo.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return vo.MapUserToResponseVO(user), nil
}

// SetUsername 实现用户名设置，先做长度校验。
func (s *userService) SetUsername(ctx context.Context, userID int64, username string) error {
	// 按字符数而不是字节数校验，中文用户名同样适用
	length := utf8.RuneCountInString(username)
	if length < constant.UsernameMinLen || length > constant.UsernameMaxLen {
		s.logger.Info("用户名长度不合法",
			zap.Int64("userID", userID),
			zap.Int("length", length),
		)
		return fmt.Errorf("%w: 用户名长度必须在 %d~%d 之间",
			myErrors.ErrValidation, constant.UsernameMinLen, constant.UsernameMaxLen)
	}

	if err := s.userRepo.SetUsername(ctx, userID, username); err != nil {
		return err
	}
	s.logger.Info("用户名已更新", zap.Int64("userID", userID))
	return nil
}

// SetPhoneNumber 实现手机号绑定。
func (s *userService) SetPhoneNumber(ctx context.Context, userID int64, phoneNumber string) error {
	if phoneNumber == "" {
		return fmt.Errorf("%w: 手机号不能为空", myErrors.ErrValidation)
	}
	if err := s.userRepo.SetPhoneNumber(ctx, userID, phoneNumber); err != nil {
		return err
	}
	s.logger.Info("用户手机号已绑定并完成认证", zap.Int64("userID", userID))
	return nil
}
