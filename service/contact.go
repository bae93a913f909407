package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
	"github.com/ali-0019/vapeland/models/vo"
	"github.com/ali-0019/vapeland/myErrors"
	"github.com/ali-0019/vapeland/repo/mysql"
)

// ContactService 定义了联系消息的业务逻辑接口。
// - 消息不走内容审核管道，生命周期是独立的: 待处理 -> 已答复 / 已拒绝。
type ContactService interface {
	// SubmitMessage 处理用户给管理员留言，受每日限额约束。
	SubmitMessage(ctx context.Context, userID int64, req *dto.CreateContactMessageRequest) (*vo.ContactMessageResponse, error)

	// ListMessages 分页查询消息（管理端收件箱），status 为 nil 表示全部。
	ListMessages(ctx context.Context, status *enums.MessageStatus, page, pageSize int) (*vo.ContactMessagePageVO, error)

	// AnswerMessage 管理员答复消息。
	// - 已处理过的消息返回 myErrors.ErrStatusTerminal。
	AnswerMessage(ctx context.Context, messageID string, req *dto.AnswerContactMessageRequest) error

	// RejectMessage 管理员拒绝消息（垃圾信息等）。
	RejectMessage(ctx context.Context, messageID string) error
}

// contactService 是 ContactService 接口的具体实现。
type contactService struct {
	contactRepo mysql.ContactMessageRepository
	userRepo    mysql.UserRepository
	rateLimiter RateLimitService
	db          *gorm.DB
	logger      *core.ZapLogger
}

// NewContactService 是 contactService 的构造函数。
func NewContactService(
	db *gorm.DB,
	contactRepo mysql.ContactMessageRepository,
	userRepo mysql.UserRepository,
	rateLimiter RateLimitService,
	logger *core.ZapLogger,
) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		userRepo:    userRepo,
		rateLimiter: rateLimiter,
		db:          db,
		logger:      logger,
	}
}

// SubmitMessage 实现留言的提交。
func (s *contactService) SubmitMessage(ctx context.Context, userID int64, req *dto.CreateContactMessageRequest) (*vo.ContactMessageResponse, error) {
	if err := s.rateLimiter.CheckDailyLimit(ctx, userID, enums.ActionMessage); err != nil {
		return nil, err
	}

	message := &entities.ContactMessage{
		UserID:   userID,
		Text:     req.Text,
		MediaRef: req.MediaRef,
		Status:   enums.MessagePending,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, repoErr := s.userRepo.GetOrCreate(ctx, tx, userID); repoErr != nil {
			return fmt.Errorf("登记用户失败: %w", repoErr)
		}
		if repoErr := s.contactRepo.CreateMessage(ctx, tx, message); repoErr != nil {
			return fmt.Errorf("创建联系消息失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("提交联系消息事务失败", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}

	return vo.MapContactMessageToResponseVO(message), nil
}

// ListMessages 实现消息的分页查询。
func (s *contactService) ListMessages(ctx context.Context, status *enums.MessageStatus, page, pageSize int) (*vo.ContactMessagePageVO, error) {
	offset, limit := pageToOffset(page, pageSize)

	messages, total, err := s.contactRepo.ListByStatus(ctx, status, offset, limit)
	if err != nil {
		return nil, err
	}

	return &vo.ContactMessagePageVO{
		Messages: vo.MapContactMessagesToResponsesVO(messages),
		Total:    total,
	}, nil
}

// AnswerMessage 实现管理员答复。
func (s *contactService) AnswerMessage(ctx context.Context, messageID string, req *dto.AnswerContactMessageRequest) error {
	message, err := s.contactRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return err
	}
	if message.Status != enums.MessagePending {
		s.logger.Warn("答复已处理过的消息",
			zap.String("messageID", messageID),
			zap.String("status", message.Status.String()),
		)
		return myErrors.ErrStatusTerminal
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.contactRepo.Answer(ctx, tx, messageID, req.Response)
	})
	if err != nil {
		if errors.Is(err, myErrors.ErrStatusTerminal) {
			s.logger.Warn("消息在并发处理中已被定格", zap.String("messageID", messageID))
			return myErrors.ErrStatusTerminal
		}
		s.logger.Error("答复联系消息失败", zap.Error(err), zap.String("messageID", messageID))
		return err
	}

	s.logger.Info("联系消息已答复", zap.String("messageID", messageID))
	return nil
}

// RejectMessage 实现管理员拒绝。
func (s *contactService) RejectMessage(ctx context.Context, messageID string) error {
	message, err := s.contactRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return err
	}
	if message.Status != enums.MessagePending {
		s.logger.Warn("拒绝已处理过的消息",
			zap.String("messageID", messageID),
			zap.String("status", message.Status.String()),
		)
		return myErrors.ErrStatusTerminal
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.contactRepo.Reject(ctx, tx, messageID)
	})
	if err != nil {
		if errors.Is(err, myErrors.ErrStatusTerminal) {
			s.logger.Warn("消息在并发处理中已被定格", zap.String("messageID", messageID))
			return myErrors.ErrStatusTerminal
		}
		s.logger.Error("拒绝联系消息失败", zap.Error(err), zap.String("messageID", messageID))
		return err
	}

	s.logger.Info("联系消息已拒绝", zap.String("messageID", messageID))
	return nil
}
