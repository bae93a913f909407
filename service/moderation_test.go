package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
	"github.com/ali-0019/vapeland/myErrors"
)

func TestSetContentStatus_ApprovePending(t *testing.T) {
	db, dbMock := newMockDB(t)
	commentRepo := new(mockCommentRepo)
	svc := NewModerationService(db, commentRepo, new(mockCommentReplyRepo), new(mockQuestionRepo),
		new(mockQuestionReplyRepo), new(mockSuggestionRepo), newTestLogger(t))

	commentRepo.On("GetCommentByID", mock.Anything, "c1").
		Return(&entities.Comment{Status: enums.ContentPending}, nil)
	commentRepo.On("UpdateStatus", mock.Anything, mock.Anything, "c1", enums.ContentApproved).Return(nil)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	err := svc.SetContentStatus(context.Background(), enums.KindComment, "c1", enums.ContentApproved, nil)
	require.NoError(t, err)
	commentRepo.AssertExpectations(t)
}

func TestSetContentStatus_TerminalIsFinal(t *testing.T) {
	db, _ := newMockDB(t)
	commentRepo := new(mockCommentRepo)
	svc := NewModerationService(db, commentRepo, new(mockCommentReplyRepo), new(mockQuestionRepo),
		new(mockQuestionReplyRepo), new(mockSuggestionRepo), newTestLogger(t))

	// 已通过的内容不允许再被拒绝
	commentRepo.On("GetCommentByID", mock.Anything, "c1").
		Return(&entities.Comment{Status: enums.ContentApproved}, nil)

	err := svc.SetContentStatus(context.Background(), enums.KindComment, "c1", enums.ContentRejected, nil)
	assert.ErrorIs(t, err, myErrors.ErrStatusTerminal)
	commentRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSetContentStatus_ConcurrentVerdictLoses(t *testing.T) {
	db, dbMock := newMockDB(t)
	commentRepo := new(mockCommentRepo)
	svc := NewModerationService(db, commentRepo, new(mockCommentReplyRepo), new(mockQuestionRepo),
		new(mockQuestionReplyRepo), new(mockSuggestionRepo), newTestLogger(t))

	// 读到的还是待审核，但另一次裁决抢先提交，条件更新零行命中
	commentRepo.On("GetCommentByID", mock.Anything, "c1").
		Return(&entities.Comment{Status: enums.ContentPending}, nil)
	commentRepo.On("UpdateStatus", mock.Anything, mock.Anything, "c1", enums.ContentRejected).
		Return(myErrors.ErrStatusTerminal)

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	err := svc.SetContentStatus(context.Background(), enums.KindComment, "c1", enums.ContentRejected, nil)
	assert.ErrorIs(t, err, myErrors.ErrStatusTerminal)
	commentRepo.AssertExpectations(t)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestSetContentStatus_PendingIsNotAValidTarget(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewModerationService(db, new(mockCommentRepo), new(mockCommentReplyRepo), new(mockQuestionRepo),
		new(mockQuestionReplyRepo), new(mockSuggestionRepo), newTestLogger(t))

	err := svc.SetContentStatus(context.Background(), enums.KindComment, "c1", enums.ContentPending, nil)
	assert.ErrorIs(t, err, myErrors.ErrValidation)
}

func TestSetContentStatus_DispatchCoversEveryKind(t *testing.T) {
	db, dbMock := newMockDB(t)
	commentRepo := new(mockCommentRepo)
	replyRepo := new(mockCommentReplyRepo)
	questionRepo := new(mockQuestionRepo)
	questionReplyRepo := new(mockQuestionReplyRepo)
	suggestionRepo := new(mockSuggestionRepo)
	svc := NewModerationService(db, commentRepo, replyRepo, questionRepo, questionReplyRepo, suggestionRepo, newTestLogger(t))

	commentRepo.On("GetCommentByID", mock.Anything, "id").Return(&entities.Comment{Status: enums.ContentPending}, nil)
	commentRepo.On("UpdateStatus", mock.Anything, mock.Anything, "id", enums.ContentApproved).Return(nil)
	replyRepo.On("GetReplyByID", mock.Anything, "id").Return(&entities.CommentReply{Status: enums.ContentPending}, nil)
	replyRepo.On("UpdateStatus", mock.Anything, mock.Anything, "id", enums.ContentApproved).Return(nil)
	questionRepo.On("GetQuestionByID", mock.Anything, "id").Return(&entities.TechQuestion{Status: enums.ContentPending}, nil)
	questionRepo.On("UpdateStatus", mock.Anything, mock.Anything, "id", enums.ContentApproved).Return(nil)
	questionReplyRepo.On("GetReplyByID", mock.Anything, "id").Return(&entities.QuestionReply{Status: enums.ContentPending}, nil)
	questionReplyRepo.On("UpdateStatus", mock.Anything, mock.Anything, "id", enums.ContentApproved).Return(nil)
	suggestionRepo.On("GetSuggestionByID", mock.Anything, "id").Return(&entities.ProductSuggestion{Status: enums.ContentPending}, nil)
	suggestionRepo.On("UpdateStatus", mock.Anything, mock.Anything, "id", enums.ContentApproved).Return(nil)

	for range enums.AllContentKinds {
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()
	}

	for _, kind := range enums.AllContentKinds {
		err := svc.SetContentStatus(context.Background(), kind, "id", enums.ContentApproved, nil)
		assert.NoError(t, err, "kind %s", kind)
	}
}

func TestModerateContent_UnknownKind(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewModerationService(db, new(mockCommentRepo), new(mockCommentReplyRepo), new(mockQuestionRepo),
		new(mockQuestionReplyRepo), new(mockSuggestionRepo), newTestLogger(t))

	approve := true
	err := svc.ModerateContent(context.Background(), &dto.ModerateContentRequest{
		Kind:      "post",
		ContentID: "c1",
		Approve:   &approve,
	})
	assert.ErrorIs(t, err, myErrors.ErrValidation)
}

func TestModerateContent_RejectWithReason(t *testing.T) {
	db, dbMock := newMockDB(t)
	questionRepo := new(mockQuestionRepo)
	svc := NewModerationService(db, new(mockCommentRepo), new(mockCommentReplyRepo), questionRepo,
		new(mockQuestionReplyRepo), new(mockSuggestionRepo), newTestLogger(t))

	questionRepo.On("GetQuestionByID", mock.Anything, "q1").
		Return(&entities.TechQuestion{Status: enums.ContentPending}, nil)
	questionRepo.On("UpdateStatus", mock.Anything, mock.Anything, "q1", enums.ContentRejected).Return(nil)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	approve := false
	reason := "包含广告内容"
	err := svc.ModerateContent(context.Background(), &dto.ModerateContentRequest{
		Kind:      "question",
		ContentID: "q1",
		Approve:   &approve,
		Reason:    &reason,
	})
	require.NoError(t, err)
	questionRepo.AssertExpectations(t)
}

func TestListPendingContent_SuggestionTextJoinsNameAndDescription(t *testing.T) {
	db, _ := newMockDB(t)
	suggestionRepo := new(mockSuggestionRepo)
	svc := NewModerationService(db, new(mockCommentRepo), new(mockCommentReplyRepo), new(mockQuestionRepo),
		new(mockQuestionReplyRepo), suggestionRepo, newTestLogger(t))

	description := "薄荷味，冰感强"
	suggestions := []*entities.ProductSuggestion{
		{
			BaseModel:   entities.BaseModel{ID: "s1", CreatedAt: time.Now()},
			UserID:      100,
			Name:        "冰爆珠",
			Description: &description,
			Status:      enums.ContentPending,
		},
	}
	suggestionRepo.On("ListPending", mock.Anything, 0, 5).Return(suggestions, int64(1), nil)

	page, err := svc.ListPendingContent(context.Background(), &dto.ListPendingContentRequest{
		Kind: "suggestion", Page: 1, PageSize: 5,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "冰爆珠: 薄荷味，冰感强", page.Items[0].Text)
	assert.Equal(t, "suggestion", page.Items[0].Kind)
}

func TestListPendingContent_UnknownKind(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewModerationService(db, new(mockCommentRepo), new(mockCommentReplyRepo), new(mockQuestionRepo),
		new(mockQuestionReplyRepo), new(mockSuggestionRepo), newTestLogger(t))

	page, err := svc.ListPendingContent(context.Background(), &dto.ListPendingContentRequest{Kind: "post"})
	assert.Nil(t, page)
	assert.ErrorIs(t, err, myErrors.ErrValidation)
}
