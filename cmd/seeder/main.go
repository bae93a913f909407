package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/ali-0019/vapeland/config"
	"github.com/ali-0019/vapeland/dependencies"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var configFile string
	var numUsers int
	var numItems int
	var numQuestions int
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numUsers, "users", 30, "要生成的用户数量 (默认: 30)")
	flag.IntVar(&numItems, "items", 40, "要生成的商品数量 (默认: 40)")
	flag.IntVar(&numQuestions, "questions", 20, "要生成的技术问答数量 (默认: 20)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' 填充测试数据: %d 用户, %d 商品, %d 问答...\n",
		absConfigFile, numUsers, numItems, numQuestions)

	if numUsers <= 0 || numItems <= 0 || numQuestions <= 0 {
		fmt.Println("错误: 用户/商品/问答数量都必须大于 0")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.VapelandConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")
	if cfg.MySQLConfig.Write.DSN == "" {
		fmt.Println("警告: MySQL Write DSN 为空，请检查配置文件路径与 `mysql.write.dsn` 配置项。")
	}

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化 MySQL 数据库连接 ---
	// 填充直接写库（内容直接落为已通过状态），不经过审核流水线，
	// 因此不需要初始化 Kafka/Redis/COS。
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()

	if err := Seed(ctx, db, logger, SeedOptions{
		NumUsers:     numUsers,
		NumItems:     numItems,
		NumQuestions: numQuestions,
	}); err != nil {
		logger.Fatal("数据填充失败", zap.Error(err))
	}

	fmt.Printf("数据填充完成！耗时: %v\n", time.Since(startTime))
	logger.Info("Seeder main: 所有任务完成，准备退出。")
}
