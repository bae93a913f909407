package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ali-0019/vapeland/models/enums"
	"github.com/ali-0019/vapeland/models/events"
	"github.com/ali-0019/vapeland/myErrors"
	"github.com/ali-0019/vapeland/service"
)

// todo  未配置死信队列

// MessageHandler 定义了处理 Kafka 消息的接口
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// --- ApprovedModerationHandler ---

type ApprovedModerationHandler struct {
	logger            *core.ZapLogger
	moderationService service.ModerationService
}

func NewApprovedModerationHandler(logger *core.ZapLogger, moderationService service.ModerationService) *ApprovedModerationHandler {
	return &ApprovedModerationHandler{
		logger:            logger,
		moderationService: moderationService,
	}
}

func (h *ApprovedModerationHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("ApprovedModerationHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	var event events.ContentApprovedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("ApprovedModerationHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	h.logger.Info("ApprovedModerationHandler: 成功解析审核通过消息",
		zap.String("event_id", event.EventID),
		zap.Int("kind", int(event.Kind)),
		zap.String("content_id", event.ContentID))

	updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := h.moderationService.SetContentStatus(updateCtx, event.Kind, event.ContentID, enums.ContentApproved, nil)
	if err != nil {
		h.logger.Error("ApprovedModerationHandler: 更新内容状态为已通过失败",
			zap.Error(err),
			zap.String("content_id", event.ContentID))
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			h.logger.Warn("ApprovedModerationHandler: 尝试更新不存在的内容", zap.String("content_id", event.ContentID))
			return nil // 不再重试
		}
		if errors.Is(err, myErrors.ErrStatusTerminal) {
			// 重复投递的事件，内容已在终态，幂等跳过
			h.logger.Warn("ApprovedModerationHandler: 内容已处于终态，跳过重复事件", zap.String("content_id", event.ContentID))
			return nil
		}
		return fmt.Errorf("ApprovedModerationHandler: 调用 SetContentStatus 失败: %w", err)
	}

	h.logger.Info("ApprovedModerationHandler: 成功更新内容状态为已通过", zap.String("content_id", event.ContentID))
	return nil
}

// --- RejectedModerationHandler ---

type RejectedModerationHandler struct {
	logger            *core.ZapLogger
	moderationService service.ModerationService
}

func NewRejectedModerationHandler(logger *core.ZapLogger, moderationService service.ModerationService) *RejectedModerationHandler {
	return &RejectedModerationHandler{
		logger:            logger,
		moderationService: moderationService,
	}
}

func (h *RejectedModerationHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("RejectedModerationHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	var event events.ContentRejectedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("RejectedModerationHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	// 拒绝原因长度对齐数据库字段
	reason := event.Reason
	const maxReasonLength = 250
	if len(reason) > maxReasonLength {
		reason = reason[:maxReasonLength] + "..."
	}

	h.logger.Info("RejectedModerationHandler: 成功解析审核拒绝消息",
		zap.String("event_id", event.EventID),
		zap.Int("kind", int(event.Kind)),
		zap.String("content_id", event.ContentID),
		zap.String("reason", reason))

	updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var reasonPtr *string
	if reason != "" {
		reasonPtr = &reason
	}

	err := h.moderationService.SetContentStatus(updateCtx, event.Kind, event.ContentID, enums.ContentRejected, reasonPtr)
	if err != nil {
		h.logger.Error("RejectedModerationHandler: 更新内容状态为已拒绝失败",
			zap.Error(err),
			zap.String("content_id", event.ContentID))
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			h.logger.Warn("RejectedModerationHandler: 尝试更新不存在的内容", zap.String("content_id", event.ContentID))
			return nil // 不再重试
		}
		if errors.Is(err, myErrors.ErrStatusTerminal) {
			h.logger.Warn("RejectedModerationHandler: 内容已处于终态，跳过重复事件", zap.String("content_id", event.ContentID))
			return nil
		}
		return fmt.Errorf("RejectedModerationHandler: 调用 SetContentStatus 失败: %w", err)
	}

	h.logger.Info("RejectedModerationHandler: 成功更新内容状态为已拒绝", zap.String("content_id", event.ContentID))
	return nil
}
