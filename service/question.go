package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali-0019/vapeland/config"
	"github.com/ali-0019/vapeland/constant"
	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
	"github.com/ali-0019/vapeland/models/vo"
	"github.com/ali-0019/vapeland/myErrors"
	"github.com/ali-0019/vapeland/mq/producer"
	"github.com/ali-0019/vapeland/repo/mysql"
	"github.com/ali-0019/vapeland/repo/redis"
)

// QuestionService 定义了技术问答的业务逻辑接口。
type QuestionService interface {
	// AddQuestion 处理用户提交技术问答的业务流程。
	// - 限额种类独立于评论，同一天内问答和评论互不挤占额度。
	AddQuestion(ctx context.Context, userID int64, req *dto.CreateQuestionRequest) (*vo.QuestionResponse, error)

	// AddQuestionReply 处理回复技术问答的业务流程。
	// - 问答的回复是平铺的，没有父回复概念。
	AddQuestionReply(ctx context.Context, userID int64, req *dto.CreateQuestionReplyRequest) (*vo.QuestionReplyResponse, error)

	// ListQuestions 分页查询已通过审核的问答，新问题在前。
	ListQuestions(ctx context.Context, req *dto.ListQuestionsRequest) (*vo.QuestionPageVO, error)

	// ListQuestionReplies 分页查询问答下已通过审核的回复。
	ListQuestionReplies(ctx context.Context, req *dto.ListQuestionRepliesRequest) (*vo.QuestionReplyPageVO, error)

	// GetTopQuestions 获取高分问答榜。
	// - 先读 Redis 缓存，未命中回源数据库并回填缓存。
	GetTopQuestions(ctx context.Context) (*vo.TopQuestionsVO, error)
}

// questionService 是 QuestionService 接口的具体实现。
type questionService struct {
	questionRepo mysql.TechQuestionRepository
	replyRepo    mysql.QuestionReplyRepository
	userRepo     mysql.UserRepository
	topCache     redis.TopQuestionsCache
	rateLimiter  RateLimitService
	db           *gorm.DB
	kafkaSvc     *producer.KafkaProducer
	moderation   config.ModerationConfig
	replyAward   int64
	logger       *core.ZapLogger
}

// NewQuestionService 是 questionService 的构造函数。
func NewQuestionService(
	db *gorm.DB,
	questionRepo mysql.TechQuestionRepository,
	replyRepo mysql.QuestionReplyRepository,
	userRepo mysql.UserRepository,
	topCache redis.TopQuestionsCache,
	rateLimiter RateLimitService,
	kafkaSvc *producer.KafkaProducer,
	moderationCfg config.ModerationConfig,
	scoringCfg config.ScoringConfig,
	logger *core.ZapLogger,
) QuestionService {
	replyAward := scoringCfg.ReplyAward
	if replyAward <= 0 {
		replyAward = constant.ScoreAwardReply
	}
	return &questionService{
		questionRepo: questionRepo,
		replyRepo:    replyRepo,
		userRepo:     userRepo,
		topCache:     topCache,
		rateLimiter:  rateLimiter,
		db:           db,
		kafkaSvc:     kafkaSvc,
		moderation:   moderationCfg,
		replyAward:   replyAward,
		logger:       logger,
	}
}

// initialStatus 返回新内容的初始审核状态。
func (s *questionService) initialStatus() enums.ContentStatus {
	if s.moderation.AutoApprove {
		return enums.ContentApproved
	}
	return enums.ContentPending
}

// AddQuestion 实现问答的创建。
func (s *questionService) AddQuestion(ctx context.Context, userID int64, req *dto.CreateQuestionRequest) (*vo.QuestionResponse, error) {
	if err := s.rateLimiter.CheckDailyLimit(ctx, userID, enums.ActionQuestion); err != nil {
		return nil, err
	}

	question := &entities.TechQuestion{
		UserID:   userID,
		Text:     req.Text,
		MediaRef: req.MediaRef,
		Status:   s.initialStatus(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, repoErr := s.userRepo.GetOrCreate(ctx, tx, userID); repoErr != nil {
			return fmt.Errorf("登记用户失败: %w", repoErr)
		}
		if repoErr := s.questionRepo.CreateQuestion(ctx, tx, question); repoErr != nil {
			return fmt.Errorf("创建技术问答失败: %w", repoErr)
		}
		if repoErr := s.userRepo.AdjustRankScore(ctx, tx, userID, constant.ScoreAwardQuestion); repoErr != nil {
			return fmt.Errorf("累加提问积分失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("创建技术问答事务失败", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}

	if !s.moderation.AutoApprove {
		sendPendingModerationEvent(s.kafkaSvc, s.logger, enums.KindQuestion, question.ID, userID, question.Text, question.MediaRef)
	}

	responses := vo.MapQuestionsToResponsesVO([]*entities.TechQuestion{question})
	return responses[0], nil
}

// AddQuestionReply 实现问答回复的创建。
func (s *questionService) AddQuestionReply(ctx context.Context, userID int64, req *dto.CreateQuestionReplyRequest) (*vo.QuestionReplyResponse, error) {
	// 问答必须存在
	if _, err := s.questionRepo.GetQuestionByID(ctx, req.QuestionID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("回复不存在的问答", zap.String("questionID", req.QuestionID), zap.Int64("userID", userID))
		}
		return nil, err
	}

	reply := &entities.QuestionReply{
		QuestionID: req.QuestionID,
		UserID:     userID,
		Text:       req.Text,
		MediaRef:   req.MediaRef,
		Status:     s.initialStatus(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, repoErr := s.userRepo.GetOrCreate(ctx, tx, userID); repoErr != nil {
			return fmt.Errorf("登记用户失败: %w", repoErr)
		}
		if repoErr := s.replyRepo.CreateReply(ctx, tx, reply); repoErr != nil {
			return fmt.Errorf("创建问答回复失败: %w", repoErr)
		}
		if repoErr := s.userRepo.AdjustRankScore(ctx, tx, userID, s.replyAward); repoErr != nil {
			return fmt.Errorf("累加回复积分失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("创建问答回复事务失败", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}

	if !s.moderation.AutoApprove {
		sendPendingModerationEvent(s.kafkaSvc, s.logger, enums.KindQuestionReply, reply.ID, userID, reply.Text, reply.MediaRef)
	}

	responses := vo.MapQuestionRepliesToResponsesVO([]*entities.QuestionReply{reply})
	return responses[0], nil
}

// ListQuestions 实现问答列表查询。
func (s *questionService) ListQuestions(ctx context.Context, req *dto.ListQuestionsRequest) (*vo.QuestionPageVO, error) {
	offset, limit := pageToOffset(req.Page, req.PageSize)
	approved := enums.ContentApproved

	questions, total, err := s.questionRepo.ListQuestions(ctx, &approved, offset, limit)
	if err != nil {
		return nil, err
	}

	return &vo.QuestionPageVO{
		Questions: vo.MapQuestionsToResponsesVO(questions),
		Total:     total,
	}, nil
}

// ListQuestionReplies 实现问答回复列表查询。
func (s *questionService) ListQuestionReplies(ctx context.Context, req *dto.ListQuestionRepliesRequest) (*vo.QuestionReplyPageVO, error) {
	offset, limit := pageToOffset(req.Page, req.PageSize)
	approved := enums.ContentApproved

	replies, total, err := s.replyRepo.ListByQuestion(ctx, req.QuestionID, &approved, offset, limit)
	if err != nil {
		return nil, err
	}

	return &vo.QuestionReplyPageVO{
		Replies: vo.MapQuestionRepliesToResponsesVO(replies),
		Total:   total,
	}, nil
}

// GetTopQuestions 实现高分问答榜查询，缓存优先。
func (s *questionService) GetTopQuestions(ctx context.Context) (*vo.TopQuestionsVO, error) {
	cached, err := s.topCache.GetTopQuestions(ctx)
	if err == nil {
		return &vo.TopQuestionsVO{Questions: cached}, nil
	}
	if !errors.Is(err, myErrors.ErrCacheMiss) {
		// Redis 故障时直接回源，不让缓存层拖垮读路径
		s.logger.Warn("读取高分问答榜缓存失败，回源数据库", zap.Error(err))
	}

	questions, dbErr := s.questionRepo.ListTopRated(ctx, constant.TopQuestionsListSize)
	if dbErr != nil {
		return nil, dbErr
	}
	responses := vo.MapQuestionsToResponsesVO(questions)

	// 回填缓存，失败不影响本次响应
	if cacheErr := s.topCache.SetTopQuestions(ctx, responses); cacheErr != nil {
		s.logger.Warn("回填高分问答榜缓存失败", zap.Error(cacheErr))
	}

	return &vo.TopQuestionsVO{Questions: responses}, nil
}
