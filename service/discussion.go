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
	"github.com/ali-0019/vapeland/models/events"
	"github.com/ali-0019/vapeland/models/vo"
	"github.com/ali-0019/vapeland/myErrors"
	"github.com/ali-0019/vapeland/mq/producer"
	"github.com/ali-0019/vapeland/repo/mysql"
)

// DiscussionService 定义了商品评论与回复树的业务逻辑接口。
type DiscussionService interface {
	// AddComment 处理用户对商品发表评论的业务流程。
	// - 先校验每日限额，再在一个事务内: 登记用户、落库评论、累加积分。
	// - 事务提交后异步发送待审核事件。
	AddComment(ctx context.Context, userID int64, req *dto.CreateCommentRequest) (*vo.CommentResponse, error)

	// AddReply 处理回复评论（或回复某条回复）的业务流程。
	// - 指定父回复时，父回复必须属于同一条根评论，否则返回 myErrors.ErrThreadMismatch。
	// - 落库的 comment_id 永远取根评论ID，与父回复保持一致。
	AddReply(ctx context.Context, userID int64, req *dto.CreateCommentReplyRequest) (*vo.ReplyResponse, error)

	// ListComments 分页查询商品下已通过审核的评论，附带每条的直接回复数。
	ListComments(ctx context.Context, req *dto.ListCommentsRequest) (*vo.CommentPageVO, error)

	// ListReplies 分页查询回复。
	// - 不指定父回复时返回根评论的直接回复，否则返回该回复的子回复。
	ListReplies(ctx context.Context, req *dto.ListRepliesRequest) (*vo.ReplyPageVO, error)
}

// discussionService 是 DiscussionService 接口的具体实现。
type discussionService struct {
	commentRepo mysql.CommentRepository
	replyRepo   mysql.CommentReplyRepository
	itemRepo    mysql.ItemRepository
	userRepo    mysql.UserRepository
	rateLimiter RateLimitService
	db          *gorm.DB
	kafkaSvc    *producer.KafkaProducer
	moderation  config.ModerationConfig
	replyAward  int64
	logger      *core.ZapLogger
}

// NewDiscussionService 是 discussionService 的构造函数，通过依赖注入初始化服务实例。
func NewDiscussionService(
	db *gorm.DB,
	commentRepo mysql.CommentRepository,
	replyRepo mysql.CommentReplyRepository,
	itemRepo mysql.ItemRepository,
	userRepo mysql.UserRepository,
	rateLimiter RateLimitService,
	kafkaSvc *producer.KafkaProducer,
	moderationCfg config.ModerationConfig,
	scoringCfg config.ScoringConfig,
	logger *core.ZapLogger,
) DiscussionService {
	replyAward := scoringCfg.ReplyAward
	if replyAward <= 0 {
		replyAward = constant.ScoreAwardReply
	}
	return &discussionService{
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		rateLimiter: rateLimiter,
		db:          db,
		kafkaSvc:    kafkaSvc,
		moderation:  moderationCfg,
		replyAward:  replyAward,
		logger:      logger,
	}
}

// initialStatus 返回新内容的初始审核状态。
func (s *discussionService) initialStatus() enums.ContentStatus {
	if s.moderation.AutoApprove {
		return enums.ContentApproved
	}
	return enums.ContentPending
}

// AddComment 实现评论的创建。
func (s *discussionService) AddComment(ctx context.Context, userID int64, req *dto.CreateCommentRequest) (*vo.CommentResponse, error) {
	// 1. 每日限额
	if err := s.rateLimiter.CheckDailyLimit(ctx, userID, enums.ActionComment); err != nil {
		return nil, err
	}

	// 2. 商品必须存在
	if _, err := s.itemRepo.GetItemByID(ctx, req.ItemID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("对不存在的商品发表评论", zap.String("itemID", req.ItemID), zap.Int64("userID", userID))
		}
		return nil, err
	}

	// 3. 事务: 登记用户 + 落库评论 + 累加积分
	comment := &entities.Comment{
		ItemID:   req.ItemID,
		UserID:   userID,
		Text:     req.Text,
		MediaRef: req.MediaRef,
		Status:   s.initialStatus(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, repoErr := s.userRepo.GetOrCreate(ctx, tx, userID); repoErr != nil {
			return fmt.Errorf("登记用户失败: %w", repoErr)
		}
		if repoErr := s.commentRepo.CreateComment(ctx, tx, comment); repoErr != nil {
			return fmt.Errorf("创建评论失败: %w", repoErr)
		}
		if repoErr := s.userRepo.AdjustRankScore(ctx, tx, userID, constant.ScoreAwardComment); repoErr != nil {
			return fmt.Errorf("累加评论积分失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("创建评论事务失败", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}

	// 4. 异步发送待审核事件（自动通过模式下没有审核管道）
	if !s.moderation.AutoApprove {
		s.sendPendingEvent(enums.KindComment, comment.ID, userID, comment.Text, comment.MediaRef)
	}

	return vo.MapCommentToResponseVO(comment, 0), nil
}

// AddReply 实现回复的创建。
func (s *discussionService) AddReply(ctx context.Context, userID int64, req *dto.CreateCommentReplyRequest) (*vo.ReplyResponse, error) {
	// 1. 根评论必须存在
	if _, err := s.commentRepo.GetCommentByID(ctx, req.CommentID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			s.logger.Warn("回复不存在的评论", zap.String("commentID", req.CommentID), zap.Int64("userID", userID))
		}
		return nil, err
	}

	// 2. 指定父回复时校验父子同树
	if req.ParentReplyID != nil {
		parent, err := s.replyRepo.GetReplyByID(ctx, *req.ParentReplyID)
		if err != nil {
			if errors.Is(err, commonerrors.ErrRepoNotFound) {
				s.logger.Warn("回复不存在的父回复", zap.String("parentReplyID", *req.ParentReplyID))
			}
			return nil, err
		}
		if parent.CommentID != req.CommentID {
			s.logger.Warn("父回复属于另一条评论，拒绝创建",
				zap.String("commentID", req.CommentID),
				zap.String("parentReplyID", *req.ParentReplyID),
				zap.String("parentCommentID", parent.CommentID),
			)
			return nil, myErrors.ErrThreadMismatch
		}
	}

	// 3. 事务: 登记用户 + 落库回复 + 累加积分
	reply := &entities.CommentReply{
		CommentID:     req.CommentID,
		UserID:        userID,
		ParentReplyID: req.ParentReplyID,
		Text:          req.Text,
		MediaRef:      req.MediaRef,
		Status:        s.initialStatus(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, repoErr := s.userRepo.GetOrCreate(ctx, tx, userID); repoErr != nil {
			return fmt.Errorf("登记用户失败: %w", repoErr)
		}
		if repoErr := s.replyRepo.CreateReply(ctx, tx, reply); repoErr != nil {
			return fmt.Errorf("创建回复失败: %w", repoErr)
		}
		if repoErr := s.userRepo.AdjustRankScore(ctx, tx, userID, s.replyAward); repoErr != nil {
			return fmt.Errorf("累加回复积分失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("创建回复事务失败", zap.Error(err), zap.Int64("userID", userID))
		return nil, err
	}

	if !s.moderation.AutoApprove {
		s.sendPendingEvent(enums.KindCommentReply, reply.ID, userID, reply.Text, reply.MediaRef)
	}

	return vo.MapReplyToResponseVO(reply, 0), nil
}

// ListComments 实现评论列表查询，默认只返回已通过审核的内容。
func (s *discussionService) ListComments(ctx context.Context, req *dto.ListCommentsRequest) (*vo.CommentPageVO, error) {
	offset, limit := pageToOffset(req.Page, req.PageSize)
	approved := enums.ContentApproved

	comments, total, err := s.commentRepo.ListByItem(ctx, req.ItemID, &approved, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*vo.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		replyCount, countErr := s.replyRepo.CountDirect(ctx, comment.ID, &approved)
		if countErr != nil {
			// 回复数是辅助信息，统计失败不阻塞列表
			s.logger.Warn("统计评论回复数失败，按 0 返回",
				zap.Error(countErr),
				zap.String("commentID", comment.ID),
			)
			replyCount = 0
		}
		responses = append(responses, vo.MapCommentToResponseVO(comment, replyCount))
	}

	return &vo.CommentPageVO{Comments: responses, Total: total}, nil
}

// ListReplies 实现回复列表查询。
func (s *discussionService) ListReplies(ctx context.Context, req *dto.ListRepliesRequest) (*vo.ReplyPageVO, error) {
	offset, limit := pageToOffset(req.Page, req.PageSize)
	approved := enums.ContentApproved

	var replies []*entities.CommentReply
	var total int64
	var err error
	if req.ParentReplyID == nil {
		replies, total, err = s.replyRepo.ListDirect(ctx, req.CommentID, &approved, offset, limit)
	} else {
		replies, total, err = s.replyRepo.ListChildren(ctx, *req.ParentReplyID, &approved, offset, limit)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*vo.ReplyResponse, 0, len(replies))
	for _, reply := range replies {
		childCount, countErr := s.replyRepo.CountChildren(ctx, reply.ID, &approved)
		if countErr != nil {
			s.logger.Warn("统计子回复数失败，按 0 返回",
				zap.Error(countErr),
				zap.String("replyID", reply.ID),
			)
			childCount = 0
		}
		responses = append(responses, vo.MapReplyToResponseVO(reply, childCount))
	}

	return &vo.ReplyPageVO{Replies: responses, Total: total}, nil
}

// sendPendingEvent 异步发送待审核事件，失败只记日志不影响主流程。
func (s *discussionService) sendPendingEvent(kind enums.ContentKind, contentID string, userID int64, text string, mediaRef *string) {
	sendPendingModerationEvent(s.kafkaSvc, s.logger, kind, contentID, userID, text, mediaRef)
}

// sendPendingModerationEvent 是各内容服务共用的待审核事件发送逻辑。
// - 事件发送在独立 goroutine 中进行，使用新的 context，不随请求取消。
func sendPendingModerationEvent(kafkaSvc *producer.KafkaProducer, logger *core.ZapLogger, kind enums.ContentKind, contentID string, userID int64, text string, mediaRef *string) {
	if kafkaSvc == nil {
		// 未配置 Kafka 时内容停留在待审核状态，等管理端手工处理
		logger.Warn("Kafka 生产者未配置，跳过发送待审核事件",
			zap.String("content_id", contentID),
			zap.String("kind", kind.String()),
		)
		return
	}
	contentData := events.ContentData{
		Kind:      kind,
		ContentID: contentID,
		UserID:    userID,
		Text:      text,
		MediaRef:  mediaRef,
	}
	go func(cd events.ContentData) {
		bgCtx := context.Background()
		if kafkaErr := kafkaSvc.SendContentPendingModerationEvent(bgCtx, cd); kafkaErr != nil {
			logger.Error("发送内容待审核事件失败",
				zap.Error(kafkaErr),
				zap.String("content_id", cd.ContentID),
				zap.String("kind", cd.Kind.String()),
			)
		} else {
			logger.Info("成功发送内容待审核事件",
				zap.String("content_id", cd.ContentID),
				zap.String("kind", cd.Kind.String()),
			)
		}
	}(contentData)
}

// pageToOffset 把页码转换为偏移量，页码从 1 开始，页大小缺省取会话前端的统一值。
func pageToOffset(page, pageSize int) (offset, limit int) {
	if pageSize <= 0 {
		pageSize = constant.DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	return (page - 1) * pageSize, pageSize
}
