package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali-0019/vapeland/models/entities"
	"github.com/ali-0019/vapeland/models/enums"
)

// SeedOptions 控制各类测试数据的生成规模。
type SeedOptions struct {
	NumUsers     int
	NumItems     int
	NumQuestions int
}

// Seed 直接写库填充测试数据。
// - 用户内容直接落为已通过状态，评分聚合在生成时一并算好，
//   这样起好的服务立刻就有可浏览的目录和榜单。
// - 另外留少量待审核内容和待处理消息，方便演示审核后台。
func Seed(ctx context.Context, db *gorm.DB, logger *core.ZapLogger, opts SeedOptions) error {
	logger.Info("开始填充测试数据...",
		zap.Int("users", opts.NumUsers),
		zap.Int("items", opts.NumItems),
		zap.Int("questions", opts.NumQuestions),
	)

	users, err := seedUsers(ctx, db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("填充用户失败: %w", err)
	}
	logger.Info("用户填充完毕", zap.Int("count", len(users)))

	items, err := seedItems(ctx, db, users, opts.NumItems)
	if err != nil {
		return fmt.Errorf("填充商品失败: %w", err)
	}
	logger.Info("商品填充完毕", zap.Int("count", len(items)))

	if err := seedComments(ctx, db, users, items); err != nil {
		return fmt.Errorf("填充评论失败: %w", err)
	}
	logger.Info("评论与回复填充完毕")

	if err := seedQuestions(ctx, db, users, opts.NumQuestions); err != nil {
		return fmt.Errorf("填充技术问答失败: %w", err)
	}
	logger.Info("技术问答填充完毕")

	if err := seedSuggestionsAndMessages(ctx, db, users); err != nil {
		return fmt.Errorf("填充建议与消息失败: %w", err)
	}
	logger.Info("新品建议与联系消息填充完毕")

	logger.Info("测试数据填充完毕。")
	return nil
}

// seedUsers 生成平台用户，ID 模拟消息平台下发的数字ID。
func seedUsers(ctx context.Context, db *gorm.DB, count int) ([]*entities.User, error) {
	users := make([]*entities.User, 0, count)
	for i := 0; i < count; i++ {
		user := &entities.User{
			// 平台ID取 9 位数字段，避免与真实账号冲突
			UserID:    int64(100000000 + i),
			RankScore: int64(gofakeit.Number(0, 200)),
		}
		// 约一半用户完成了用户名/手机号采集
		if gofakeit.Bool() {
			username := fmt.Sprintf("%s%d", gofakeit.Username(), i)
			if len(username) > 30 {
				username = username[:30]
			}
			user.Username = &username
			phone := gofakeit.Phone()
			user.PhoneNumber = &phone
			user.Status = enums.UserVerified
		}
		users = append(users, user)
	}
	if err := db.WithContext(ctx).Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// seedItems 生成商品目录，四种分类轮流分配。
func seedItems(ctx context.Context, db *gorm.DB, users []*entities.User, count int) ([]*entities.Item, error) {
	items := make([]*entities.Item, 0, count)
	for i := 0; i < count; i++ {
		description := gofakeit.Sentence(gofakeit.Number(8, 20))
		item := &entities.Item{
			Type:        enums.ItemType(i % 4),
			Name:        fmt.Sprintf("%s %s", gofakeit.Company(), gofakeit.ProductName()),
			Description: &description,
		}
		items = append(items, item)
	}
	if err := db.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}

	// 每件商品随机一批评分，评分行与聚合字段同批写入
	for _, item := range items {
		raters := pickUsers(users, gofakeit.Number(0, len(users)/2))
		if len(raters) == 0 {
			continue
		}
		ratings := make([]*entities.ItemRating, 0, len(raters))
		var sum int
		for _, rater := range raters {
			score := gofakeit.Number(1, 5)
			sum += score
			ratings = append(ratings, &entities.ItemRating{
				UserID: rater.UserID,
				ItemID: item.ID,
				Score:  score,
			})
		}
		if err := db.WithContext(ctx).Create(&ratings).Error; err != nil {
			return nil, err
		}
		average := float64(sum) / float64(len(ratings))
		updates := map[string]interface{}{
			"average_rating": average,
			"rating_count":   int64(len(ratings)),
		}
		if err := db.WithContext(ctx).Model(&entities.Item{}).Where("id = ?", item.ID).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return items, nil
}

// seedComments 为部分商品生成评论和两层回复树。
func seedComments(ctx context.Context, db *gorm.DB, users []*entities.User, items []*entities.Item) error {
	for _, item := range items {
		for i := 0; i < gofakeit.Number(0, 5); i++ {
			author := users[rand.Intn(len(users))]
			comment := &entities.Comment{
				ItemID: item.ID,
				UserID: author.UserID,
				Text:   gofakeit.Sentence(gofakeit.Number(5, 25)),
				Status: randomContentStatus(),
			}
			if err := db.WithContext(ctx).Create(comment).Error; err != nil {
				return err
			}
			if comment.Status != enums.ContentApproved {
				continue
			}

			// 直接回复根评论的一层
			var directReplies []*entities.CommentReply
			for j := 0; j < gofakeit.Number(0, 3); j++ {
				reply := &entities.CommentReply{
					CommentID: comment.ID,
					UserID:    users[rand.Intn(len(users))].UserID,
					Text:      gofakeit.Sentence(gofakeit.Number(3, 15)),
					Status:    enums.ContentApproved,
				}
				if err := db.WithContext(ctx).Create(reply).Error; err != nil {
					return err
				}
				directReplies = append(directReplies, reply)
			}

			// 偶尔再嵌套一层，CommentID 仍指向根评论
			for _, parent := range directReplies {
				if !gofakeit.Bool() {
					continue
				}
				parentID := parent.ID
				nested := &entities.CommentReply{
					CommentID:     comment.ID,
					UserID:        users[rand.Intn(len(users))].UserID,
					ParentReplyID: &parentID,
					Text:          gofakeit.Sentence(gofakeit.Number(3, 12)),
					Status:        enums.ContentApproved,
				}
				if err := db.WithContext(ctx).Create(nested).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// seedQuestions 生成技术问答、扁平回复和问答评分。
func seedQuestions(ctx context.Context, db *gorm.DB, users []*entities.User, count int) error {
	for i := 0; i < count; i++ {
		question := &entities.TechQuestion{
			UserID: users[rand.Intn(len(users))].UserID,
			Text:   gofakeit.Question(),
			Status: randomContentStatus(),
		}
		if err := db.WithContext(ctx).Create(question).Error; err != nil {
			return err
		}
		if question.Status != enums.ContentApproved {
			continue
		}

		for j := 0; j < gofakeit.Number(0, 4); j++ {
			reply := &entities.QuestionReply{
				QuestionID: question.ID,
				UserID:     users[rand.Intn(len(users))].UserID,
				Text:       gofakeit.Sentence(gofakeit.Number(5, 20)),
				Status:     enums.ContentApproved,
			}
			if err := db.WithContext(ctx).Create(reply).Error; err != nil {
				return err
			}
		}

		raters := pickUsers(users, gofakeit.Number(0, len(users)/3))
		if len(raters) == 0 {
			continue
		}
		ratings := make([]*entities.QuestionRating, 0, len(raters))
		var sum int
		for _, rater := range raters {
			score := gofakeit.Number(1, 5)
			sum += score
			ratings = append(ratings, &entities.QuestionRating{
				UserID:     rater.UserID,
				QuestionID: question.ID,
				Score:      score,
			})
		}
		if err := db.WithContext(ctx).Create(&ratings).Error; err != nil {
			return err
		}
		average := float64(sum) / float64(len(ratings))
		updates := map[string]interface{}{
			"average_rating": average,
			"rating_count":   int64(len(ratings)),
		}
		if err := db.WithContext(ctx).Model(&entities.TechQuestion{}).Where("id = ?", question.ID).Updates(updates).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedSuggestionsAndMessages 生成新品建议和联系消息，保留部分待处理项。
func seedSuggestionsAndMessages(ctx context.Context, db *gorm.DB, users []*entities.User) error {
	for i := 0; i < gofakeit.Number(5, 12); i++ {
		description := gofakeit.Sentence(gofakeit.Number(5, 15))
		suggestion := &entities.ProductSuggestion{
			UserID:      users[rand.Intn(len(users))].UserID,
			Name:        gofakeit.ProductName(),
			Description: &description,
			Status:      randomContentStatus(),
		}
		if err := db.WithContext(ctx).Create(suggestion).Error; err != nil {
			return err
		}
	}

	for i := 0; i < gofakeit.Number(5, 12); i++ {
		message := &entities.ContactMessage{
			UserID: users[rand.Intn(len(users))].UserID,
			Text:   gofakeit.Sentence(gofakeit.Number(8, 25)),
		}
		if gofakeit.Bool() {
			responseText := gofakeit.Sentence(gofakeit.Number(5, 15))
			message.Status = enums.MessageAnswered
			message.Response = &responseText
		}
		if err := db.WithContext(ctx).Create(message).Error; err != nil {
			return err
		}
	}
	return nil
}

// randomContentStatus 让大部分内容已通过，少量停留在待审核或已拒绝。
func randomContentStatus() enums.ContentStatus {
	switch gofakeit.Number(0, 9) {
	case 0:
		return enums.ContentPending
	case 1:
		return enums.ContentRejected
	default:
		return enums.ContentApproved
	}
}

// pickUsers 随机抽取不重复的用户子集，用于评分（每人对每目标至多一次）。
func pickUsers(users []*entities.User, n int) []*entities.User {
	if n <= 0 {
		return nil
	}
	if n > len(users) {
		n = len(users)
	}
	shuffled := make([]*entities.User, len(users))
	copy(shuffled, users)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
