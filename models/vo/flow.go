package vo

import (
	"time"

	"github.com/ali-0019/vapeland/repo/redis"
)

// FlowStateVO 是会话流程状态的视图对象。
type FlowStateVO struct {
	Kind      string            `json:"kind"`       // 流程种类
	Step      string            `json:"step"`       // 当前步骤标识
	Data      map[string]string `json:"data"`       // 已收集的流程数据
	UpdatedAt time.Time         `json:"updated_at"` // 最近一次写入时间
}

// MapFlowStateToVO 将 Redis 中的流程状态转换为视图对象。
func MapFlowStateToVO(state *redis.FlowState) *FlowStateVO {
	if state == nil {
		return nil
	}
	return &FlowStateVO{
		Kind:      state.Kind,
		Step:      state.Step,
		Data:      state.Data,
		UpdatedAt: state.UpdatedAt,
	}
}
