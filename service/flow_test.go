package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ali-0019/vapeland/myErrors"
	"github.com/ali-0019/vapeland/repo/redis"
)

type mockFlowStateRepo struct{ mock.Mock }

func (m *mockFlowStateRepo) GetFlowState(ctx context.Context, userID int64, kind string) (*redis.FlowState, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redis.FlowState), args.Error(1)
}

func (m *mockFlowStateRepo) SaveFlowState(ctx context.Context, state *redis.FlowState) error {
	return m.Called(ctx, state).Error(0)
}

func (m *mockFlowStateRepo) DeleteFlowState(ctx context.Context, userID int64, kind string) error {
	return m.Called(ctx, userID, kind).Error(0)
}

func TestStartFlow_InitializesState(t *testing.T) {
	flowRepo := new(mockFlowStateRepo)
	svc := NewFlowService(flowRepo, newTestLogger(t))

	flowRepo.On("SaveFlowState", mock.Anything, mock.MatchedBy(func(s *redis.FlowState) bool {
		return s.UserID == 100 && s.Kind == "create_comment" && s.Step == "await_text" && s.Data != nil
	})).Return(nil)

	state, err := svc.StartFlow(context.Background(), 100, "create_comment", "await_text")
	require.NoError(t, err)
	assert.Equal(t, "await_text", state.Step)
	flowRepo.AssertExpectations(t)
}

func TestAdvanceFlow_MergesCollectedData(t *testing.T) {
	flowRepo := new(mockFlowStateRepo)
	svc := NewFlowService(flowRepo, newTestLogger(t))

	existing := &redis.FlowState{
		UserID: 100,
		Kind:   "create_comment",
		Step:   "await_text",
		Data:   map[string]string{"item_id": "item-1"},
	}
	flowRepo.On("GetFlowState", mock.Anything, int64(100), "create_comment").Return(existing, nil)
	flowRepo.On("SaveFlowState", mock.Anything, mock.MatchedBy(func(s *redis.FlowState) bool {
		return s.Step == "await_media" &&
			s.Data["item_id"] == "item-1" &&
			s.Data["text"] == "不错的雾化器"
	})).Return(nil)

	state, err := svc.AdvanceFlow(context.Background(), 100, "create_comment", "await_media",
		map[string]string{"text": "不错的雾化器"})
	require.NoError(t, err)
	assert.Equal(t, "await_media", state.Step)
	flowRepo.AssertExpectations(t)
}

func TestAdvanceFlow_ExpiredFlow(t *testing.T) {
	flowRepo := new(mockFlowStateRepo)
	svc := NewFlowService(flowRepo, newTestLogger(t))

	flowRepo.On("GetFlowState", mock.Anything, int64(100), "create_comment").
		Return(nil, myErrors.ErrCacheMiss)

	state, err := svc.AdvanceFlow(context.Background(), 100, "create_comment", "await_media", nil)
	assert.Nil(t, state)
	assert.ErrorIs(t, err, myErrors.ErrCacheMiss)
	flowRepo.AssertNotCalled(t, "SaveFlowState", mock.Anything, mock.Anything)
}

func TestCancelFlow_Idempotent(t *testing.T) {
	flowRepo := new(mockFlowStateRepo)
	svc := NewFlowService(flowRepo, newTestLogger(t))

	flowRepo.On("DeleteFlowState", mock.Anything, int64(100), "create_comment").Return(nil).Twice()

	require.NoError(t, svc.CancelFlow(context.Background(), 100, "create_comment"))
	require.NoError(t, svc.CancelFlow(context.Background(), 100, "create_comment"))
	flowRepo.AssertExpectations(t)
}
