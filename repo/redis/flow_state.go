package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ali-0019/vapeland/constant"
	"github.com/ali-0019/vapeland/myErrors"
)

// FlowState 是一次多步会话流程的快照。
// - 例如"发表评论"流程: 等待正文 -> 等待媒体 -> 确认提交，每一步把
//   已收集的数据写回 Redis，下一条用户消息到达时恢复现场。
type FlowState struct {
	UserID    int64             `json:"user_id"`    // 流程归属用户
	Kind      string            `json:"kind"`       // 流程种类，如 "create_comment"
	Step      string            `json:"step"`       // 当前步骤标识
	Data      map[string]string `json:"data"`       // 已收集的流程数据
	UpdatedAt time.Time         `json:"updated_at"` // 最近一次写入时间
}

// FlowStateRepository 定义了会话流程状态在 Redis 中的存取接口。
// - 状态带 TTL，过期即视为用户放弃了流程，无需清理任务。
type FlowStateRepository interface {
	// GetFlowState 读取 (用户, 流程种类) 的当前状态。
	// - 缓存未命中返回 myErrors.ErrCacheMiss，调用方据此开启新流程。
	GetFlowState(ctx context.Context, userID int64, kind string) (*FlowState, error)

	// SaveFlowState 写入流程状态并重置 TTL。
	SaveFlowState(ctx context.Context, state *FlowState) error

	// DeleteFlowState 删除流程状态，流程完成或被用户取消时调用。
	DeleteFlowState(ctx context.Context, userID int64, kind string) error
}

// flowStateRepository 是 FlowStateRepository 接口的 Redis 实现。
type flowStateRepository struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewFlowStateRepository 是 flowStateRepository 的构造函数。
func NewFlowStateRepository(redisClient *redis.Client, logger *core.ZapLogger) FlowStateRepository {
	return &flowStateRepository{
		redisClient: redisClient,
		logger:      logger,
	}
}

// flowStateKey 拼接 Redis Key，如 "flow_state:123456789:create_comment"。
func flowStateKey(userID int64, kind string) string {
	return fmt.Sprintf("%s%d:%s", constant.FlowStateKeyPrefix, userID, kind)
}

// GetFlowState 实现流程状态的读取。
func (r *flowStateRepository) GetFlowState(ctx context.Context, userID int64, kind string) (*FlowState, error) {
	key := flowStateKey(userID, kind)

	jsonData, err := r.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Debug("流程状态缓存未命中", zap.String("key", key))
			return nil, myErrors.ErrCacheMiss
		}
		r.logger.Error("读取流程状态失败",
			zap.Error(err),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("读取流程状态 (key: %s) 失败: %w", key, err)
	}

	var state FlowState
	if jsonErr := json.Unmarshal([]byte(jsonData), &state); jsonErr != nil {
		r.logger.Error("反序列化流程状态失败，视为状态已失效",
			zap.Error(jsonErr),
			zap.String("key", key),
		)
		// 损坏的状态无法恢复，删除后按未命中处理
		if delErr := r.redisClient.Del(ctx, key).Err(); delErr != nil {
			r.logger.Error("删除损坏的流程状态失败", zap.Error(delErr), zap.String("key", key))
		}
		return nil, myErrors.ErrCacheMiss
	}

	return &state, nil
}

// SaveFlowState 实现流程状态的写入，每次写入都重置 TTL。
func (r *flowStateRepository) SaveFlowState(ctx context.Context, state *FlowState) error {
	key := flowStateKey(state.UserID, state.Kind)
	state.UpdatedAt = time.Now()

	jsonData, err := json.Marshal(state)
	if err != nil {
		r.logger.Error("序列化流程状态失败", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("序列化流程状态 (key: %s) 失败: %w", key, err)
	}

	if err := r.redisClient.Set(ctx, key, jsonData, constant.FlowStateTTL).Err(); err != nil {
		r.logger.Error("写入流程状态失败",
			zap.Error(err),
			zap.String("key", key),
		)
		return fmt.Errorf("写入流程状态 (key: %s) 失败: %w", key, err)
	}

	return nil
}

// DeleteFlowState 实现流程状态的删除。
func (r *flowStateRepository) DeleteFlowState(ctx context.Context, userID int64, kind string) error {
	key := flowStateKey(userID, kind)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		r.logger.Error("删除流程状态失败", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("删除流程状态 (key: %s) 失败: %w", key, err)
	}
	return nil
}
