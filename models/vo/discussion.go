package vo

import (
	"time"

	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
)

// CommentResponse 定义了商品评论的响应数据结构
type CommentResponse struct {
	ID         string              `json:"id"`          // 评论ID
	ItemID     string              `json:"item_id"`     // 所属商品ID
	UserID     int64               `json:"user_id"`     // 作者ID
	Text       string              `json:"text"`        // 评论正文
	MediaRef   *string             `json:"media_ref"`   // 媒体对象键
	Status     enums.ContentStatus `json:"status"`      // 审核状态，0=待审核, 1=已通过, 2=已拒绝
	ReplyCount int64               `json:"reply_count"` // 直接回复数（仅统计已通过的回复）
	CreatedAt  time.Time           `json:"created_at"`  // 创建时间
}

// ReplyResponse 定义了评论回复的响应数据结构
type ReplyResponse struct {
	ID            string              `json:"id"`              // 回复ID
	CommentID     string              `json:"comment_id"`      // 根评论ID
	ParentReplyID *string             `json:"parent_reply_id"` // 父回复ID，null 表示直接回复根评论
	UserID        int64               `json:"user_id"`         // 作者ID
	Text          string              `json:"text"`            // 回复正文
	MediaRef      *string             `json:"media_ref"`       // 媒体对象键
	Status        enums.ContentStatus `json:"status"`          // 审核状态
	ChildCount    int64               `json:"child_count"`     // 子回复数（仅统计已通过的）
	CreatedAt     time.Time           `json:"created_at"`      // 创建时间
}

// CommentPageVO 定义了评论分页查询的响应结构。
type CommentPageVO struct {
	Comments []*CommentResponse `json:"comments"` // 当前页的评论列表
	Total    int64              `json:"total"`    // 符合条件的总记录数
}

// ReplyPageVO 定义了回复分页查询的响应结构。
type ReplyPageVO struct {
	Replies []*ReplyResponse `json:"replies"` // 当前页的回复列表
	Total   int64            `json:"total"`   // 符合条件的总记录数
}

// MapCommentToResponseVO 将评论实体转换为响应VO，回复数由服务层补充。
func MapCommentToResponseVO(comment *entities.Comment, replyCount int64) *CommentResponse {
	if comment == nil {
		return nil
	}
	return &CommentResponse{
		ID:         comment.ID,
		ItemID:     comment.ItemID,
		UserID:     comment.UserID,
		Text:       comment.Text,
		MediaRef:   comment.MediaRef,
		Status:     comment.Status,
		ReplyCount: replyCount,
		CreatedAt:  comment.CreatedAt,
	}
}

// MapReplyToResponseVO 将回复实体转换为响应VO，子回复数由服务层补充。
func MapReplyToResponseVO(reply *entities.CommentReply, childCount int64) *ReplyResponse {
	if reply == nil {
		return nil
	}
	return &ReplyResponse{
		ID:            reply.ID,
		CommentID:     reply.CommentID,
		ParentReplyID: reply.ParentReplyID,
		UserID:        reply.UserID,
		Text:          reply.Text,
		MediaRef:      reply.MediaRef,
		Status:        reply.Status,
		ChildCount:    childCount,
		CreatedAt:     reply.CreatedAt,
	}
}
