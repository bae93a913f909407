package router

import (
	"net/http"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/ali-0019/vapeland/config"
	"github.com/ali-0019/vapeland/constant"
	"github.com/ali-0019/vapeland/controller"
)

// SetupRouter 仅负责配置 Gin 引擎、中间件和路由注册。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.VapelandConfig,
	userController *controller.UserController,
	itemController *controller.ItemController,
	discussionController *controller.DiscussionController,
	questionController *controller.QuestionController,
	ratingController *controller.RatingController,
	suggestionController *controller.SuggestionController,
	contactController *controller.ContactController,
	mediaController *controller.MediaController,
	flowController *controller.FlowController,
	adminController *controller.AdminController,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	// 自定义 Recovery 和 Logger，所以不用 gin.Default()
	router := gin.New()

	// 1. OTel Middleware (最先，处理追踪上下文和 Span)
	router.Use(otelgin.Middleware(constant.ServiceName))

	// 2. Panic Recovery (捕获后续中间件和 handler 的 panic)
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))

	// 3. Request Logger (记录访问日志，需要 TraceID)
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. Request Timeout (超时控制，配置单位为秒)
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))

	// 5. User Context (提取网关透传的用户信息)
	router.Use(commonMiddleware.UserContextMiddleware())

	logger.Debug("已注册全局中间件")

	// --- 创建 API 版本分组 ---
	v1 := router.Group("/api/v1/vapeland")
	logger.Debug("已创建 api/v1/vapeland 分组")

	// --- 注册控制器路由 ---
	userController.RegisterRoutes(v1)
	itemController.RegisterRoutes(v1)
	discussionController.RegisterRoutes(v1)
	questionController.RegisterRoutes(v1)
	ratingController.RegisterRoutes(v1)
	suggestionController.RegisterRoutes(v1)
	contactController.RegisterRoutes(v1)
	mediaController.RegisterRoutes(v1)
	flowController.RegisterRoutes(v1)
	adminController.RegisterRoutes(v1)
	logger.Info("所有控制器路由已注册到 /api/v1/vapeland 分组")

	// --- 注册 Swagger UI 路由 ---
	// 访问 /swagger/index.html 即可看到 Swagger UI 界面
	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))
	logger.Info("Swagger UI endpoint registered at /swagger/*any")

	// --- 健康检查等路由 ---
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}
