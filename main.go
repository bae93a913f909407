package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/ali-0019/vapeland/docs" // swagger 文档

	appConfig "github.com/ali-0019/vapeland/config"
	"github.com/ali-0019/vapeland/constant"
	"github.com/ali-0019/vapeland/controller"
	"github.com/ali-0019/vapeland/dependencies"
	"github.com/ali-0019/vapeland/mq/consumer"
	"github.com/ali-0019/vapeland/mq/producer"
	"github.com/ali-0019/vapeland/repo/mysql"
	redisrepo "github.com/ali-0019/vapeland/repo/redis"
	"github.com/ali-0019/vapeland/router"
	"github.com/ali-0019/vapeland/service"
	"github.com/ali-0019/vapeland/tasks"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"

	"go.uber.org/zap"
)

// @title           Vapeland Community Service API
// @version         1.0
// @description     电子烟社区服务，提供商品目录、评论回复树、技术问答、评分、新品建议与联系消息等功能。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

// @schemes http https
func main() {
	// --- 配置和基础设置 ---
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.VapelandConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 打印最终生效的配置以供调试
	configBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatalf("无法序列化配置以进行打印: %v", err)
	}
	log.Printf("✅ 配置加载成功！最终生效的配置如下:\n%s\n", string(configBytes))

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		logger.Info("正在同步日志...")
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	var tracerShutdown func(context.Context) error
	if cfg.TracerConfig.Enabled {
		var err error
		tracerShutdown, err = sharedTracing.InitTracerProvider(
			constant.ServiceName,
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("正在关闭 TracerProvider...")
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			} else {
				logger.Info("TracerProvider 已成功关闭")
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
		tracerShutdown = func(ctx context.Context) error { return nil }
	}

	// --- 4. 初始化核心依赖 ---
	// 4.1 数据库 (MySQL)
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(dbErr))
	}
	logger.Info("MySQL 数据库连接成功")

	// 4.2 Redis
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}
	logger.Info("Redis 连接成功")

	// 4.3 COS 媒体存储客户端
	cosClient, cosErr := dependencies.InitCOS(&cfg.COSConfig, logger)
	if cosErr != nil {
		logger.Fatal("初始化 COS 客户端失败", zap.Error(cosErr))
	}
	logger.Info("COS 客户端初始化成功")

	// 4.4 Kafka 生产者
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，Kafka 生产者将为 nil")
	}

	// --- 5. 初始化数据仓库层 (Repositories) ---
	userRepo := mysql.NewUserRepository(db, logger)
	itemRepo := mysql.NewItemRepository(db, logger)
	commentRepo := mysql.NewCommentRepository(db, logger)
	commentReplyRepo := mysql.NewCommentReplyRepository(db, logger)
	questionRepo := mysql.NewTechQuestionRepository(db, logger)
	questionReplyRepo := mysql.NewQuestionReplyRepository(db, logger)
	ratingRepo := mysql.NewRatingRepository(db, logger)
	suggestionRepo := mysql.NewSuggestionRepository(db, logger)
	contactRepo := mysql.NewContactMessageRepository(db, logger)
	logger.Debug("MySQL Repositories 初始化完成")

	flowStateRepo := redisrepo.NewFlowStateRepository(rdb, logger)
	topQuestionsCache := redisrepo.NewTopQuestionsCache(rdb, logger)
	logger.Debug("Redis Repositories 初始化完成")

	// --- 6. 初始化服务层 (Services) ---
	rateLimitSvc := service.NewRateLimitService(commentRepo, questionRepo, contactRepo, cfg.RateLimitConfig, logger)
	userSvc := service.NewUserService(db, userRepo, logger)
	itemSvc := service.NewItemService(db, itemRepo, logger)
	discussionSvc := service.NewDiscussionService(db, commentRepo, commentReplyRepo, itemRepo, userRepo, rateLimitSvc, kafkaProducer, cfg.ModerationConfig, cfg.ScoringConfig, logger)
	questionSvc := service.NewQuestionService(db, questionRepo, questionReplyRepo, userRepo, topQuestionsCache, rateLimitSvc, kafkaProducer, cfg.ModerationConfig, cfg.ScoringConfig, logger)
	ratingSvc := service.NewRatingService(db, ratingRepo, itemRepo, questionRepo, userRepo, logger)
	suggestionSvc := service.NewSuggestionService(db, suggestionRepo, userRepo, kafkaProducer, cfg.ModerationConfig, logger)
	contactSvc := service.NewContactService(db, contactRepo, userRepo, rateLimitSvc, logger)
	moderationSvc := service.NewModerationService(db, commentRepo, commentReplyRepo, questionRepo, questionReplyRepo, suggestionRepo, logger)
	flowSvc := service.NewFlowService(flowStateRepo, logger)
	logger.Debug("Services 初始化完成")

	// --- 7. 初始化控制器层 (Controllers) ---
	userController := controller.NewUserController(userSvc)
	itemController := controller.NewItemController(itemSvc)
	discussionController := controller.NewDiscussionController(discussionSvc)
	questionController := controller.NewQuestionController(questionSvc)
	ratingController := controller.NewRatingController(ratingSvc)
	suggestionController := controller.NewSuggestionController(suggestionSvc)
	contactController := controller.NewContactController(contactSvc)
	mediaController := controller.NewMediaController(cosClient)
	flowController := controller.NewFlowController(flowSvc)
	adminController := controller.NewAdminController(itemSvc, contactSvc, moderationSvc)
	logger.Debug("Controllers 初始化完成")

	// --- 8. 初始化 Kafka 消费者 ---
	var consumers []*consumer.Consumer
	var consumerWg sync.WaitGroup

	// 创建一个可以被取消的 context，用于通知所有消费者停止
	var consumerCtx, consumerCancel = context.WithCancel(context.Background())

	if len(cfg.KafkaConfig.Brokers) > 0 {
		groupID := cfg.KafkaConfig.ConsumerGroupID
		if groupID == "" {
			logger.Warn("Kafka ConsumerGroupID 未在配置中设置，将使用默认值 'vapeland_community_group'")
			groupID = "vapeland_community_group"
		}

		// --- 8.1 审核通过事件消费者 ---
		approvedTopic := cfg.KafkaConfig.Topics.ContentModerationApproved
		if approvedTopic != "" {
			approvedHandler := consumer.NewApprovedModerationHandler(logger, moderationSvc)
			approvedConsumer, err := consumer.NewConsumer(
				&cfg.KafkaConfig,
				groupID,
				approvedTopic,
				approvedHandler,
				logger,
			)
			if err != nil {
				logger.Fatal("初始化 Approved Kafka 消费者失败", zap.Error(err))
			}
			consumers = append(consumers, approvedConsumer)
			logger.Info("Approved Kafka 消费者已准备就绪", zap.String("topic", approvedTopic))
		} else {
			logger.Warn("ContentModerationApproved topic 未配置，跳过 Approved 消费者创建")
		}

		// --- 8.2 审核拒绝事件消费者 ---
		rejectedTopic := cfg.KafkaConfig.Topics.ContentModerationRejected
		if rejectedTopic != "" {
			rejectedHandler := consumer.NewRejectedModerationHandler(logger, moderationSvc)
			rejectedConsumer, err := consumer.NewConsumer(
				&cfg.KafkaConfig,
				groupID,
				rejectedTopic,
				rejectedHandler,
				logger,
			)
			if err != nil {
				logger.Fatal("初始化 Rejected Kafka 消费者失败", zap.Error(err))
			}
			consumers = append(consumers, rejectedConsumer)
			logger.Info("Rejected Kafka 消费者已准备就绪", zap.String("topic", rejectedTopic))
		} else {
			logger.Warn("ContentModerationRejected topic 未配置，跳过 Rejected 消费者创建")
		}

		// --- 8.3 启动所有已初始化的消费者 ---
		if len(consumers) > 0 {
			logger.Info(fmt.Sprintf("准备启动 %d 个 Kafka 消费者...", len(consumers)))
			for _, c := range consumers {
				consumerWg.Add(1)
				go func(cons *consumer.Consumer) {
					defer consumerWg.Done()
					cons.Start(consumerCtx)
				}(c)
			}
		} else {
			logger.Warn("没有配置任何有效的 Kafka 消费者。")
		}
	} else {
		logger.Warn("Kafka Brokers 未配置，跳过所有 Kafka 消费者初始化。")
	}

	// --- 9. 初始化定时任务 ---
	topQuestionsTask := tasks.NewTopQuestionsCacheTask(questionRepo, topQuestionsCache, logger)
	ratingResyncTask := tasks.NewRatingResyncTask(db, ratingRepo, itemRepo, questionRepo, logger)
	logger.Info("后台定时任务已初始化并启动")

	// --- 10. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(
		logger,
		&cfg,
		userController,
		itemController,
		discussionController,
		questionController,
		ratingController,
		suggestionController,
		contactController,
		mediaController,
		flowController,
		adminController,
	)
	logger.Info("Gin 路由器已设置")

	// --- 11. 启动 HTTP 服务器 ---
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
		logger.Info("HTTP 服务器已停止监听")
	}()

	// --- 12. 实现优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancelFunc()

	// a. 停止 HTTP 服务器 (允许处理完当前请求)
	logger.Info("正在关闭 HTTP 服务器...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	// b. 关闭 Kafka 消费者
	if consumerCancel != nil {
		logger.Info("正在发送停止信号给 Kafka 消费者...")
		consumerCancel()
	}
	logger.Info("等待 Kafka 消费者停止...")
	consumerWg.Wait()

	for _, c := range consumers {
		if err := c.Close(); err != nil {
			logger.Error("关闭某个 Kafka 消费者时出错", zap.Error(err))
		}
	}
	logger.Info("所有 Kafka 消费者已停止。")

	// c. 关闭 Kafka 生产者
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者时出错", zap.Error(err))
		}
	}

	// d. 停止定时任务调度器 (等待任务结束)
	logger.Info("正在停止定时任务...")
	taskStopCtxs := map[string]context.Context{
		"高分问答榜缓存任务": topQuestionsTask.Stop(),
		"评分聚合对账任务":  ratingResyncTask.Stop(),
	}
	for name, stopCtx := range taskStopCtxs {
		select {
		case <-stopCtx.Done():
			logger.Info(name + "已停止")
		case <-shutdownCtx.Done():
			logger.Error("等待定时任务停止超时", zap.String("task", name), zap.Error(shutdownCtx.Err()))
		}
	}
	logger.Info("所有定时任务已停止")

	logger.Info("服务已成功关闭")
}
