package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali-0019/vapeland/config"
	"github.com/ali-0019/vapeland/constant"
	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
	"github.com/ali-0019/vapeland/models/vo"
	"github.com/ali-0019/vapeland/mq/producer"
	"github.com/ali-0019/vapeland/repo/mysql"
)

// SuggestionService 定义了新品建议的业务逻辑接口。
type SuggestionService interface {
	// SubmitSuggestion 处理用户提交新品建议。
	// - 建议不受每日限额约束，但同样进入审核管道。
	// - 五类内容中积分奖励最高，鼓励用户反馈想要的商品。
	SubmitSuggestion(ctx context.Context, userID int64, req *dto.CreateSuggestionRequest) (*vo.SuggestionResponse, error)
}

// suggestionService 是 SuggestionService 接口的具体实现。
type suggestionService struct {
	suggestionRepo mysql.SuggestionRepository
	userRepo       mysql.UserRepository
	db             *gorm.DB
	kafkaSvc       *producer.KafkaProducer
	moderation     config.ModerationConfig
	logger         *core.ZapLogger
}

// NewSuggestionService 是 suggestionService 的构造函数。
func NewSuggestionService(
	db *gorm.DB,
	suggestionRepo mysql.SuggestionRepository,
	userRepo mysql.UserRepository,
	kafkaSvc *producer.KafkaProducer,
	moderationCfg config.ModerationConfig,
	logger *core.ZapLogger,
) SuggestionService {
	return &suggestionService{
		suggestionRepo: suggestionRepo,
		userRepo:       userRepo,
		db:             db,
		kafkaSvc:       kafkaSvc,
		moderation:     moderationCfg,
		logger:         logger,
	}
}

// SubmitSuggestion 实现建议的提交。
func (s *suggestionService) SubmitSuggestion(ctx context.Context, userID int64, req *dto.CreateSuggestionRequest) (*vo.SuggestionResponse, error) {
	status := enums.ContentPending
	if s.moderation.AutoApprove {
		status = enums.ContentApproved
	}

	suggestion := &entities.ProductSuggestion{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, repoErr := s.userRepo.GetOrCreate(ctx, tx, userID); repoErr != nil {
			return fmt.Errorf("登记用户失败: %w", repoErr)
		}
		if repoErr := s.suggestionRepo.CreateSuggestion(ctx, tx, suggestion); repoErr != nil {
			return fmt.Errorf("创建新品建议失败: %w", repoErr)
		}
		if repoErr := s.userRepo.AdjustRankScore(ctx, tx, userID, constant.ScoreAwardSuggestion); repoErr != nil {
			return fmt.Errorf("累加建议积分失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("提交新品建议事务失败", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}

	if !s.moderation.AutoApprove {
		// 建议没有媒体附件，事件中的正文取商品名加描述
		text := suggestion.Name
		if suggestion.Description != nil {
			text = text + ": " + *suggestion.Description
		}
		sendPendingModerationEvent(s.kafkaSvc, s.logger, enums.KindSuggestion, suggestion.ID, userID, text, nil)
	}

	return vo.MapSuggestionToResponseVO(suggestion), nil
}
