package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ali-0019/vapeland/constant"
	"github.com/ali-0019/vapeland/models/vo"
	"github.com/ali-0019/vapeland/myErrors"
)

// TopQuestionsCache 定义了高分问答榜的缓存操作接口。
// - 榜单由定时任务周期性刷新，读路径未命中时由服务层回源数据库并回填。
type TopQuestionsCache interface {
	// GetTopQuestions 读取缓存的榜单。
	// - 缓存未命中返回 myErrors.ErrCacheMiss，上层服务需要处理回源。
	GetTopQuestions(ctx context.Context) ([]*vo.QuestionResponse, error)

	// SetTopQuestions 整体覆盖缓存的榜单并重置 TTL。
	SetTopQuestions(ctx context.Context, questions []*vo.QuestionResponse) error
}

// topQuestionsCache 是 TopQuestionsCache 接口的 Redis 实现。
type topQuestionsCache struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewTopQuestionsCache 是 topQuestionsCache 的构造函数。
func NewTopQuestionsCache(redisClient *redis.Client, logger *core.ZapLogger) TopQuestionsCache {
	return &topQuestionsCache{
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetTopQuestions 实现榜单的读取。
func (c *topQuestionsCache) GetTopQuestions(ctx context.Context) ([]*vo.QuestionResponse, error) {
	key := constant.TopQuestionsCacheKey

	jsonData, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.Info("高分问答榜缓存未命中", zap.String("key", key))
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("读取高分问答榜缓存失败", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("读取高分问答榜缓存 (key: %s) 失败: %w", key, err)
	}

	var questions []*vo.QuestionResponse
	if jsonErr := json.Unmarshal([]byte(jsonData), &questions); jsonErr != nil {
		c.logger.Error("反序列化高分问答榜缓存失败",
			zap.Error(jsonErr),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("解析高分问答榜缓存 (key: %s) 数据失败: %w", key, jsonErr)
	}

	return questions, nil
}

// SetTopQuestions 实现榜单的整体覆盖写入。
func (c *topQuestionsCache) SetTopQuestions(ctx context.Context, questions []*vo.QuestionResponse) error {
	key := constant.TopQuestionsCacheKey

	jsonData, err := json.Marshal(questions)
	if err != nil {
		c.logger.Error("序列化高分问答榜失败", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("序列化高分问答榜失败: %w", err)
	}

	if err := c.redisClient.Set(ctx, key, jsonData, constant.TopQuestionsCacheTTL).Err(); err != nil {
		c.logger.Error("写入高分问答榜缓存失败", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("写入高分问答榜缓存 (key: %s) 失败: %w", key, err)
	}

	c.logger.Debug("高分问答榜缓存已刷新", zap.String("key", key), zap.Int("count", len(questions)))
	return nil
}
