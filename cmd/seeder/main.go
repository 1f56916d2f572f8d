package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	appConfig "github.com/tnote-app/tnote_service/config"
	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/dependencies"
	"github.com/tnote-app/tnote_service/mq/producer"
	"github.com/tnote-app/tnote_service/repo/mysql"
	"github.com/tnote-app/tnote_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numTopics int
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numTopics, "n", 20, "要生成的话题数量 (默认: 20)")
	var waitSeconds int
	flag.IntVar(&waitSeconds, "wait", 5, "数据填充后等待的秒数 (确保异步任务完成, 默认: 5秒)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' 生成 %d 个测试话题（含回帖树）...\n", absConfigFile, numTopics)

	if numTopics <= 0 {
		fmt.Println("错误: 生成的话题数量必须大于 0")
		os.Exit(1)
	}
	if waitSeconds < 0 {
		fmt.Println("错误: 等待秒数不能为负")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.TNoteConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")

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
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 初始化 Kafka 生产者 (可选) ---
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化 (Seeder)")
	} else {
		logger.Warn("未配置 Kafka brokers，填充过程不外发变更事件")
	}

	// --- 5. 初始化 Repositories ---
	topicEventRepo := mysql.NewTopicEventRepository(db, logger)
	postEventRepo := mysql.NewPostEventRepository(db, logger)
	topicViewRepo := mysql.NewTopicViewRepository(db, logger)
	postViewRepo := mysql.NewPostViewRepository(db, logger)
	tagRepo := mysql.NewTagRepository(db, logger)
	userRepo := mysql.NewUserRepository(db, logger)

	// --- 6. 初始化 Services ---
	topicSvc := service.NewTopicService(topicEventRepo, topicViewRepo, tagRepo, kafkaProducer, logger)
	postSvc := service.NewPostService(postEventRepo, postViewRepo, kafkaProducer, logger)
	logger.Info("Services 已初始化 (Seeder)")

	// --- 7. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()
	logger.Info("开始执行数据填充...", zap.Int("预计话题数", numTopics))

	Seed(ctx, topicSvc, postSvc, userRepo, logger, numTopics)

	duration := time.Since(startTime)
	logger.Info("数据填充主要逻辑完成！", zap.Duration("耗时", duration))

	// --- 8. 等待一段时间以确保异步 Kafka 任务有时间发送 ---
	if waitSeconds > 0 {
		logger.Info(fmt.Sprintf("Seeder: 等待 %d 秒以允许异步 Kafka 消息发送...", waitSeconds))
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败 (Seeder)", zap.Error(err))
		}
	}

	fmt.Printf("数据填充完成！总耗时（包括等待）: %v\n", time.Since(startTime))
}
