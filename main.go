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
	"syscall"
	"time"

	_ "github.com/tnote-app/tnote_service/docs" // 注册 swagger 文档

	appConfig "github.com/tnote-app/tnote_service/config"
	"github.com/tnote-app/tnote_service/constant"
	"github.com/tnote-app/tnote_service/controller"
	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/dependencies"
	"github.com/tnote-app/tnote_service/mq/producer"
	"github.com/tnote-app/tnote_service/repo/mysql"
	redisrepo "github.com/tnote-app/tnote_service/repo/redis"
	"github.com/tnote-app/tnote_service/router"
	"github.com/tnote-app/tnote_service/service"
	"github.com/tnote-app/tnote_service/tasks"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// @title           T-Note Service API
// @version         1.0
// @description     T-Note 论坛服务，提供话题、回帖、标签与事件审计能力。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8083

// @schemes http https
func main() {
	// --- 配置和基础设置 ---
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.TNoteConfig
	if err := core.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 打印最终生效的配置以供调试
	configBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatalf("无法序列化配置以进行打印: %v", err)
	}
	log.Printf("✅ 配置加载成功！最终生效的配置如下:\n%s\n", string(configBytes))

	// 2. 初始化 Logger
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
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
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := dependencies.InitTracerProvider(
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
		// 该服务目前没有出站 HTTP 调用，Transport 先备着
		_ = otelhttp.NewTransport(http.DefaultTransport)
	} else {
		logger.Info("分布式追踪已禁用")
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

	// 4.3 Kafka 生产者
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，话题/回帖变更事件将不会外发")
	}

	// --- 5. 初始化数据仓库层 (Repositories) ---
	topicEventRepo := mysql.NewTopicEventRepository(db, logger)
	postEventRepo := mysql.NewPostEventRepository(db, logger)
	topicViewRepo := mysql.NewTopicViewRepository(db, logger)
	postViewRepo := mysql.NewPostViewRepository(db, logger)
	tagRepo := mysql.NewTagRepository(db, logger)
	logger.Debug("MySQL Repositories 初始化完成")

	hotTopicCache := redisrepo.NewHotTopicCache(rdb, logger)
	logger.Debug("Redis Repositories 初始化完成")

	// --- 6. 初始化服务层 (Services) ---
	topicService := service.NewTopicService(topicEventRepo, topicViewRepo, tagRepo, kafkaProducer, logger)
	postService := service.NewPostService(postEventRepo, postViewRepo, kafkaProducer, logger)
	hotTopicService := service.NewHotTopicService(hotTopicCache, topicViewRepo, tagRepo, logger)
	logger.Debug("Services 初始化完成")

	// --- 7. 初始化控制器层 (Controllers) ---
	topicController := controller.NewTopicController(topicService, postService)
	postController := controller.NewPostController(postService)
	hotTopicController := controller.NewHotTopicController(hotTopicService)
	logger.Debug("Controllers 初始化完成")

	// --- 8. 初始化定时任务 ---
	cacheTask := tasks.NewHotTopicsCacheTask(topicViewRepo, hotTopicCache, cfg.HotTopicsConfig, logger)
	logger.Info("后台定时任务已初始化并启动")

	// --- 9. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(logger, &cfg, topicController, postController, hotTopicController)
	logger.Info("Gin 路由器已设置")

	// --- 10. 启动 HTTP 服务器 ---
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

	// --- 11. 实现优雅关停 ---
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

	// b. 停止定时任务调度器 (等待跑到一半的任务结束)
	logger.Info("正在停止定时任务...")
	cacheStopCtx := cacheTask.Stop()
	select {
	case <-cacheStopCtx.Done():
		logger.Info("热榜缓存任务已停止")
	case <-shutdownCtx.Done():
		logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
	}

	// c. 关闭 Kafka 生产者 (flush 未发送的消息)
	if kafkaProducer != nil {
		logger.Info("正在关闭 Kafka 生产者...")
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		} else {
			logger.Info("Kafka 生产者已关闭")
		}
	}

	// d. TracerProvider 的关闭已通过 defer 处理

	logger.Info("服务已成功关闭")
}
