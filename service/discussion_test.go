package service

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ali-0019/vapeland/config"
	"github.com/ali-0019/vapeland/models/dto"
	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
	"github.com/ali-0019/vapeland/myErrors"
)

func TestAddComment_RateLimited(t *testing.T) {
	db, _ := newMockDB(t)
	rateLimiter := new(mockRateLimiter)
	svc := NewDiscussionService(db, new(mockCommentRepo), new(mockCommentReplyRepo), new(mockItemRepo), new(mockUserRepo),
		rateLimiter, nil, config.ModerationConfig{}, config.ScoringConfig{}, newTestLogger(t))

	rateLimiter.On("CheckDailyLimit", mock.Anything, int64(100), enums.ActionComment).
		Return(myErrors.ErrRateLimitExceeded)

	result, err := svc.AddComment(context.Background(), 100, &dto.CreateCommentRequest{ItemID: "item-1", Text: "不错"})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, myErrors.ErrRateLimitExceeded)
}

func TestAddComment_ItemNotFound(t *testing.T) {
	db, _ := newMockDB(t)
	rateLimiter := new(mockRateLimiter)
	itemRepo := new(mockItemRepo)
	svc := NewDiscussionService(db, new(mockCommentRepo), new(mockCommentReplyRepo), itemRepo, new(mockUserRepo),
		rateLimiter, nil, config.ModerationConfig{}, config.ScoringConfig{}, newTestLogger(t))

	rateLimiter.On("CheckDailyLimit", mock.Anything, int64(100), enums.ActionComment).Return(nil)
	itemRepo.On("GetItemByID", mock.Anything, "missing").Return(nil, commonerrors.ErrRepoNotFound)

	result, err := svc.AddComment(context.Background(), 100, &dto.CreateCommentRequest{ItemID: "missing", Text: "不错"})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestAddComment_DefaultsToPendingAndAwardsScore(t *testing.T) {
	db, dbMock := newMockDB(t)
	rateLimiter := new(mockRateLimiter)
	commentRepo := new(mockCommentRepo)
	itemRepo := new(mockItemRepo)
	userRepo := new(mockUserRepo)
	svc := NewDiscussionService(db, commentRepo, new(mockCommentReplyRepo), itemRepo, userRepo,
		rateLimiter, nil, config.ModerationConfig{}, config.ScoringConfig{}, newTestLogger(t))

	const userID = int64(100)

	rateLimiter.On("CheckDailyLimit", mock.Anything, userID, enums.ActionComment).Return(nil)
	itemRepo.On("GetItemByID", mock.Anything, "item-1").Return(&entities.Item{}, nil)
	userRepo.On("GetOrCreate", mock.Anything, mock.Anything, userID).Return(&entities.User{UserID: userID}, nil)
	commentRepo.On("CreateComment", mock.Anything, mock.Anything, mock.MatchedBy(func(c *entities.Comment) bool {
		return c.Status == enums.ContentPending && c.ItemID == "item-1" && c.UserID == userID
	})).Return(nil)
	userRepo.On("AdjustRankScore", mock.Anything, mock.Anything, userID, int64(5)).Return(nil)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	result, err := svc.AddComment(context.Background(), userID, &dto.CreateCommentRequest{ItemID: "item-1", Text: "不错"})
	require.NoError(t, err)
	assert.Equal(t, enums.ContentPending, result.Status)

	commentRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestAddComment_AutoApproveMode(t *testing.T) {
	db, dbMock := newMockDB(t)
	rateLimiter := new(mockRateLimiter)
	commentRepo := new(mockCommentRepo)
	itemRepo := new(mockItemRepo)
	userRepo := new(mockUserRepo)
	svc := NewDiscussionService(db, commentRepo, new(mockCommentReplyRepo), itemRepo, userRepo,
		rateLimiter, nil, config.ModerationConfig{AutoApprove: true}, config.ScoringConfig{}, newTestLogger(t))

	rateLimiter.On("CheckDailyLimit", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	itemRepo.On("GetItemByID", mock.Anything, "item-1").Return(&entities.Item{}, nil)
	userRepo.On("GetOrCreate", mock.Anything, mock.Anything, mock.Anything).Return(&entities.User{}, nil)
	commentRepo.On("CreateComment", mock.Anything, mock.Anything, mock.MatchedBy(func(c *entities.Comment) bool {
		return c.Status == enums.ContentApproved
	})).Return(nil)
	userRepo.On("AdjustRankScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	result, err := svc.AddComment(context.Background(), 100, &dto.CreateCommentRequest{ItemID: "item-1", Text: "不错"})
	require.NoError(t, err)
	assert.Equal(t, enums.ContentApproved, result.Status)
}

func TestAddReply_ParentFromAnotherThread(t *testing.T) {
	db, _ := newMockDB(t)
	commentRepo := new(mockCommentRepo)
	replyRepo := new(mockCommentReplyRepo)
	svc := NewDiscussionService(db, commentRepo, replyRepo, new(mockItemRepo), new(mockUserRepo),
		new(mockRateLimiter), nil, config.ModerationConfig{}, config.ScoringConfig{}, newTestLogger(t))

	parentID := "reply-9"
	commentRepo.On("GetCommentByID", mock.Anything, "comment-1").Return(&entities.Comment{}, nil)
	// 父回复挂在另一条根评论下
	replyRepo.On("GetReplyByID", mock.Anything, parentID).
		Return(&entities.CommentReply{CommentID: "comment-2"}, nil)

	result, err := svc.AddReply(context.Background(), 100, &dto.CreateCommentReplyRequest{
		CommentID:     "comment-1",
		ParentReplyID: &parentID,
		Text:          "同问",
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, myErrors.ErrThreadMismatch)
	replyRepo.AssertNotCalled(t, "CreateReply", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddReply_NestedKeepsRootCommentID(t *testing.T) {
	db, dbMock := newMockDB(t)
	commentRepo := new(mockCommentRepo)
	replyRepo := new(mockCommentReplyRepo)
	userRepo := new(mockUserRepo)
	svc := NewDiscussionService(db, commentRepo, replyRepo, new(mockItemRepo), userRepo,
		new(mockRateLimiter), nil, config.ModerationConfig{}, config.ScoringConfig{ReplyAward: 3}, newTestLogger(t))

	const userID = int64(100)
	parentID := "reply-9"

	commentRepo.On("GetCommentByID", mock.Anything, "comment-1").Return(&entities.Comment{}, nil)
	replyRepo.On("GetReplyByID", mock.Anything, parentID).
		Return(&entities.CommentReply{CommentID: "comment-1"}, nil)
	userRepo.On("GetOrCreate", mock.Anything, mock.Anything, userID).Return(&entities.User{UserID: userID}, nil)
	replyRepo.On("CreateReply", mock.Anything, mock.Anything, mock.MatchedBy(func(r *entities.CommentReply) bool {
		// 嵌套回复的 comment_id 仍然指向根评论
		return r.CommentID == "comment-1" && r.ParentReplyID != nil && *r.ParentReplyID == parentID
	})).Return(nil)
	userRepo.On("AdjustRankScore", mock.Anything, mock.Anything, userID, int64(3)).Return(nil)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	result, err := svc.AddReply(context.Background(), userID, &dto.CreateCommentReplyRequest{
		CommentID:     "comment-1",
		ParentReplyID: &parentID,
		Text:          "同问",
	})
	require.NoError(t, err)
	assert.Equal(t, "comment-1", result.CommentID)

	replyRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestListComments_OnlyApprovedWithReplyCounts(t *testing.T) {
	db, _ := newMockDB(t)
	commentRepo := new(mockCommentRepo)
	replyRepo := new(mockCommentReplyRepo)
	svc := NewDiscussionService(db, commentRepo, replyRepo, new(mockItemRepo), new(mockUserRepo),
		new(mockRateLimiter), nil, config.ModerationConfig{}, config.ScoringConfig{}, newTestLogger(t))

	approved := enums.ContentApproved
	comments := []*entities.Comment{
		{BaseModel: entities.BaseModel{ID: "c1"}, ItemID: "item-1", Status: approved},
		{BaseModel: entities.BaseModel{ID: "c2"}, ItemID: "item-1", Status: approved},
	}
	commentRepo.On("ListByItem", mock.Anything, "item-1", &approved, 0, 5).
		Return(comments, int64(2), nil)
	replyRepo.On("CountDirect", mock.Anything, "c1", &approved).Return(int64(4), nil)
	replyRepo.On("CountDirect", mock.Anything, "c2", &approved).Return(int64(0), nil)

	page, err := svc.ListComments(context.Background(), &dto.ListCommentsRequest{ItemID: "item-1", Page: 1, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Comments, 2)
	assert.Equal(t, int64(4), page.Comments[0].ReplyCount)
	assert.Equal(t, int64(0), page.Comments[1].ReplyCount)
}
