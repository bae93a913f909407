package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/models/enums"
	"github.com/ali-0019/vapeland/models/vo"
	"github.com/ali-0019/vapeland/myErrors"
	"github.com/ali-0019/vapeland/repo/mysql"
)

// ModerationService 定义了内容审核状态机的业务逻辑接口。
// - 状态机: Pending -> Approved / Rejected，终态不允许再次迁移。
// - Kafka 审核管道和管理端人工审核都收敛到 SetContentStatus。
type ModerationService interface {
	// SetContentStatus 把指定内容迁移到目标状态。
	// - 内容已处于终态时返回 myErrors.ErrStatusTerminal（重复投递的事件按幂等处理）。
	// - 目标状态必须是终态，把内容改回待审核不是合法迁移。
	// - reason 仅在拒绝时有意义，当前只记录日志。
	SetContentStatus(ctx context.Context, kind enums.ContentKind, contentID string, status enums.ContentStatus, reason *string) error

	// ModerateContent 处理管理端的人工审核请求，解析种类字符串后走同一状态机。
	ModerateContent(ctx context.Context, req *dto.ModerateContentRequest) error

	// ListPendingContent 分页查询指定种类的审核队列，旧内容在前。
	ListPendingContent(ctx context.Context, req *dto.ListPendingContentRequest) (*vo.PendingContentPageVO, error)
}

// contentHandlers 是每种内容的状态读取、迁移与队列查询入口。
type contentHandlers struct {
	fetch       func(ctx context.Context, id string) (enums.ContentStatus, error)
	update      func(ctx context.Context, tx *gorm.DB, id string, status enums.ContentStatus) error
	listPending func(ctx context.Context, offset, limit int) ([]*vo.PendingContentVO, int64, error)
}

// moderationService 是 ModerationService 接口的具体实现。
type moderationService struct {
	handlers map[enums.ContentKind]contentHandlers
	db       *gorm.DB
	logger   *core.ZapLogger
}

// NewModerationService 是 moderationService 的构造函数。
// - 分发表必须覆盖全部内容种类，构造时校验，漏项直接 panic（部署期即暴露）。
func NewModerationService(
	db *gorm.DB,
	commentRepo mysql.CommentRepository,
	replyRepo mysql.CommentReplyRepository,
	questionRepo mysql.TechQuestionRepository,
	questionReplyRepo mysql.QuestionReplyRepository,
	suggestionRepo mysql.SuggestionRepository,
	logger *core.ZapLogger,
) ModerationService {
	handlers := map[enums.ContentKind]contentHandlers{
		enums.KindComment: {
			fetch: func(ctx context.Context, id string) (enums.ContentStatus, error) {
				comment, err := commentRepo.GetCommentByID(ctx, id)
				if err != nil {
					return 0, err
				}
				return comment.Status, nil
			},
			update: commentRepo.UpdateStatus,
			listPending: func(ctx context.Context, offset, limit int) ([]*vo.PendingContentVO, int64, error) {
				comments, total, err := commentRepo.ListPending(ctx, offset, limit)
				if err != nil {
					return nil, 0, err
				}
				items := make([]*vo.PendingContentVO, 0, len(comments))
				for _, c := range comments {
					items = append(items, &vo.PendingContentVO{
						Kind:      enums.KindComment.String(),
						ID:        c.ID,
						UserID:    c.UserID,
						Text:      c.Text,
						MediaRef:  c.MediaRef,
						CreatedAt: c.CreatedAt,
					})
				}
				return items, total, nil
			},
		},
		enums.KindCommentReply: {
			fetch: func(ctx context.Context, id string) (enums.ContentStatus, error) {
				reply, err := replyRepo.GetReplyByID(ctx, id)
				if err != nil {
					return 0, err
				}
				return reply.Status, nil
			},
			update: replyRepo.UpdateStatus,
			listPending: func(ctx context.Context, offset, limit int) ([]*vo.PendingContentVO, int64, error) {
				replies, total, err := replyRepo.ListPending(ctx, offset, limit)
				if err != nil {
					return nil, 0, err
				}
				items := make([]*vo.PendingContentVO, 0, len(replies))
				for _, r := range replies {
					items = append(items, &vo.PendingContentVO{
						Kind:      enums.KindCommentReply.String(),
						ID:        r.ID,
						UserID:    r.UserID,
						Text:      r.Text,
						MediaRef:  r.MediaRef,
						CreatedAt: r.CreatedAt,
					})
				}
				return items, total, nil
			},
		},
		enums.KindQuestion: {
			fetch: func(ctx context.Context, id string) (enums.ContentStatus, error) {
				question, err := questionRepo.GetQuestionByID(ctx, id)
				if err != nil {
					return 0, err
				}
				return question.Status, nil
			},
			update: questionRepo.UpdateStatus,
			listPending: func(ctx context.Context, offset, limit int) ([]*vo.PendingContentVO, int64, error) {
				questions, total, err := questionRepo.ListPending(ctx, offset, limit)
				if err != nil {
					return nil, 0, err
				}
				items := make([]*vo.PendingContentVO, 0, len(questions))
				for _, q := range questions {
					items = append(items, &vo.PendingContentVO{
						Kind:      enums.KindQuestion.String(),
						ID:        q.ID,
						UserID:    q.UserID,
						Text:      q.Text,
						MediaRef:  q.MediaRef,
						CreatedAt: q.CreatedAt,
					})
				}
				return items, total, nil
			},
		},
		enums.KindQuestionReply: {
			fetch: func(ctx context.Context, id string) (enums.ContentStatus, error) {
				reply, err := questionReplyRepo.GetReplyByID(ctx, id)
				if err != nil {
					return 0, err
				}
				return reply.Status, nil
			},
			update: questionReplyRepo.UpdateStatus,
			listPending: func(ctx context.Context, offset, limit int) ([]*vo.PendingContentVO, int64, error) {
				replies, total, err := questionReplyRepo.ListPending(ctx, offset, limit)
				if err != nil {
					return nil, 0, err
				}
				items := make([]*vo.PendingContentVO, 0, len(replies))
				for _, r := range replies {
					items = append(items, &vo.PendingContentVO{
						Kind:      enums.KindQuestionReply.String(),
						ID:        r.ID,
						UserID:    r.UserID,
						Text:      r.Text,
						MediaRef:  r.MediaRef,
						CreatedAt: r.CreatedAt,
					})
				}
				return items, total, nil
			},
		},
		enums.KindSuggestion: {
			fetch: func(ctx context.Context, id string) (enums.ContentStatus, error) {
				suggestion, err := suggestionRepo.GetSuggestionByID(ctx, id)
				if err != nil {
					return 0, err
				}
				return suggestion.Status, nil
			},
			update: suggestionRepo.UpdateStatus,
			listPending: func(ctx context.Context, offset, limit int) ([]*vo.PendingContentVO, int64, error) {
				suggestions, total, err := suggestionRepo.ListPending(ctx, offset, limit)
				if err != nil {
					return nil, 0, err
				}
				items := make([]*vo.PendingContentVO, 0, len(suggestions))
				for _, sg := range suggestions {
					text := sg.Name
					if sg.Description != nil {
						text = text + ": " + *sg.Description
					}
					items = append(items, &vo.PendingContentVO{
						Kind:      enums.KindSuggestion.String(),
						ID:        sg.ID,
						UserID:    sg.UserID,
						Text:      text,
						CreatedAt: sg.CreatedAt,
					})
				}
				return items, total, nil
			},
		},
	}

	// 完整性校验
	for _, kind := range enums.AllContentKinds {
		if _, ok := handlers[kind]; !ok {
			panic(fmt.Sprintf("审核分发表缺少内容种类: %s", kind))
		}
	}

	return &moderationService{
		handlers: handlers,
		db:       db,
		logger:   logger,
	}
}

// SetContentStatus 实现状态机迁移。
func (s *moderationService) SetContentStatus(ctx context.Context, kind enums.ContentKind, contentID string, status enums.ContentStatus, reason *string) error {
	handler, ok := s.handlers[kind]
	if !ok {
		return fmt.Errorf("%w: 未知的内容种类 %d", myErrors.ErrValidation, kind)
	}
	if !status.IsTerminal() {
		return fmt.Errorf("%w: 审核只能迁移到终态，收到 %s", myErrors.ErrValidation, status)
	}

	// 快路径: 已处终态的重复投递直接拒绝。真正的防线在 update 的条件更新里，
	// 并发裁决时只有一个 UPDATE 能命中待审核行。
	current, err := handler.fetch(ctx, contentID)
	if err != nil {
		return err
	}
	if current.IsTerminal() {
		s.logger.Warn("内容已处于终态，拒绝再次迁移",
			zap.String("kind", kind.String()),
			zap.String("content_id", contentID),
			zap.String("current", current.String()),
			zap.String("target", status.String()),
		)
		return myErrors.ErrStatusTerminal
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return handler.update(ctx, tx, contentID, status)
	})
	if err != nil {
		if errors.Is(err, myErrors.ErrStatusTerminal) {
			s.logger.Warn("并发裁决落败，内容已被另一次迁移定格",
				zap.String("kind", kind.String()),
				zap.String("content_id", contentID),
				zap.String("target", status.String()),
			)
			return myErrors.ErrStatusTerminal
		}
		s.logger.Error("迁移内容审核状态失败",
			zap.Error(err),
			zap.String("kind", kind.String()),
			zap.String("content_id", contentID),
		)
		return err
	}

	logFields := []zap.Field{
		zap.String("kind", kind.String()),
		zap.String("content_id", contentID),
		zap.String("status", status.String()),
	}
	if reason != nil {
		logFields = append(logFields, zap.String("reason", *reason))
	}
	s.logger.Info("内容审核状态已迁移", logFields...)
	return nil
}

// ModerateContent 实现管理端人工审核。
func (s *moderationService) ModerateContent(ctx context.Context, req *dto.ModerateContentRequest) error {
	kind, ok := enums.ParseContentKind(req.Kind)
	if !ok {
		return fmt.Errorf("%w: 未知的内容种类 %q", myErrors.ErrValidation, req.Kind)
	}
	if req.Approve == nil {
		return fmt.Errorf("%w: 缺少审核结论", myErrors.ErrValidation)
	}

	status := enums.ContentRejected
	if *req.Approve {
		status = enums.ContentApproved
	}
	return s.SetContentStatus(ctx, kind, req.ContentID, status, req.Reason)
}

// ListPendingContent 实现审核队列的分页查询。
func (s *moderationService) ListPendingContent(ctx context.Context, req *dto.ListPendingContentRequest) (*vo.PendingContentPageVO, error) {
	kind, ok := enums.ParseContentKind(req.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: 未知的内容种类 %q", myErrors.ErrValidation, req.Kind)
	}
	handler := s.handlers[kind]

	offset, limit := pageToOffset(req.Page, req.PageSize)
	items, total, err := handler.listPending(ctx, offset, limit)
	if err != nil {
		s.logger.Error("查询审核队列失败", zap.Error(err), zap.String("kind", kind.String()))
		return nil, err
	}

	return &vo.PendingContentPageVO{Items: items, Total: total}, nil
}
