package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/ali-0019/vapeland/myErrors"
	"github.com/ali-0019/vapeland/repo/redis"
)

// FlowService 定义了多步会话流程的业务逻辑接口。
// - 会话前端的多步操作（先发正文、再发媒体、最后确认）天然跨多条消息，
//   中间状态存 Redis 并带 TTL，过期即视为放弃。
type FlowService interface {
	// StartFlow 开启一个新流程，覆盖同 (用户, 种类) 的旧流程。
	StartFlow(ctx context.Context, userID int64, kind string, step string) (*redis.FlowState, error)

	// GetFlow 读取进行中的流程。
	// - 不存在（或已过期）返回 myErrors.ErrCacheMiss。
	GetFlow(ctx context.Context, userID int64, kind string) (*redis.FlowState, error)

	// AdvanceFlow 推进流程到下一步，并把新收集的数据合并进状态。
	// - 流程必须存在，否则返回 myErrors.ErrCacheMiss。
	AdvanceFlow(ctx context.Context, userID int64, kind string, nextStep string, data map[string]string) (*redis.FlowState, error)

	// CancelFlow 终止流程，幂等。
	CancelFlow(ctx context.Context, userID int64, kind string) error
}

// flowService 是 FlowService 接口的具体实现。
type flowService struct {
	flowRepo redis.FlowStateRepository
	logger   *core.ZapLogger
}

// NewFlowService 是 flowService 的构造函数。
func NewFlowService(flowRepo redis.FlowStateRepository, logger *core.ZapLogger) FlowService {
	return &flowService{
		flowRepo: flowRepo,
		logger:   logger,
	}
}

// StartFlow 实现流程开启。
func (s *flowService) StartFlow(ctx context.Context, userID int64, kind string, step string) (*redis.FlowState, error) {
	state := &redis.FlowState{
		UserID: userID,
		Kind:   kind,
		Step:   step,
		Data:   make(map[string]string),
	}
	if err := s.flowRepo.SaveFlowState(ctx, state); err != nil {
		return nil, err
	}
	s.logger.Debug("流程已开启",
		zap.Int64("userID", userID),
		zap.String("kind", kind),
		zap.String("step", step),
	)
	return state, nil
}

// GetFlow 实现流程读取。
func (s *flowService) GetFlow(ctx context.Context, userID int64, kind string) (*redis.FlowState, error) {
	return s.flowRepo.GetFlowState(ctx, userID, kind)
}

// AdvanceFlow 实现流程推进。
func (s *flowService) AdvanceFlow(ctx context.Context, userID int64, kind string, nextStep string, data map[string]string) (*redis.FlowState, error) {
	state, err := s.flowRepo.GetFlowState(ctx, userID, kind)
	if err != nil {
		if errors.Is(err, myErrors.ErrCacheMiss) {
			s.logger.Info("推进不存在的流程，可能已过期",
				zap.Int64("userID", userID),
				zap.String("kind", kind),
			)
		}
		return nil, err
	}

	state.Step = nextStep
	if state.Data == nil {
		state.Data = make(map[string]string)
	}
	for k, v := range data {
		state.Data[k] = v
	}

	if err := s.flowRepo.SaveFlowState(ctx, state); err != nil {
		return nil, err
	}
	s.logger.Debug("流程已推进",
		zap.Int64("userID", userID),
		zap.String("kind", kind),
		zap.String("step", nextStep),
	)
	return state, nil
}

// CancelFlow 实现流程终止。
func (s *flowService) CancelFlow(ctx context.Context, userID int64, kind string) error {
	return s.flowRepo.DeleteFlowState(ctx, userID, kind)
}
