package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go中有等价的Wire配置，`wire gen ./cmd/api`可生成）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 日志级别: request=%s books=%s\n", cfg.Log.RequestLevel, cfg.Log.BooksLevel)

	// 2. 初始化日志注册表与请求序号分配器
	registry, err := newLogRegistry(cfg)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	sequencer := logger.NewSequencer()

	// 3. 初始化Prometheus指标
	metrics.InitMetrics()

	// 4. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层（进程内易失存储，重启后数据丢失）
	bookRepo := memory.NewBookRepository()

	// 领域层
	bookService := book.NewService(bookRepo)

	// 应用层
	createBookUseCase := appbook.NewCreateBookUseCase(bookService, registry)
	getBookUseCase := appbook.NewGetBookUseCase(bookService, registry)
	updatePriceUseCase := appbook.NewUpdatePriceUseCase(bookService, registry)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService, registry)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService, registry)
	countBooksUseCase := appbook.NewCountBooksUseCase(bookService, registry)

	// 接口层
	bookHandler := handler.NewBookHandler(
		createBookUseCase,
		getBookUseCase,
		updatePriceUseCase,
		deleteBookUseCase,
		listBooksUseCase,
		countBooksUseCase,
	)
	loggerHandler := handler.NewLoggerHandler(registry)
	requestLogger := middleware.NewRequestLogger(sequencer, registry)

	// 5. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger.Handler())

	// 6. 注册路由
	registerRoutes(r, bookHandler, loggerHandler)

	// 7. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   图书接口: http://localhost%s/api/v1/books\n", addr)
	fmt.Printf("   指标端点: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// newLogRegistry 按配置初始化日志注册表
// 两个通道的阈值来自配置文件(默认info),输出目标支持stdout/stderr/文件
func newLogRegistry(cfg *config.Config) (*logger.Registry, error) {
	var out io.Writer
	switch cfg.Log.Output {
	case "", "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	default:
		f, err := os.OpenFile(cfg.Log.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		out = f
	}

	registry := logger.NewRegistry(logger.WithOutput(out))
	if _, err := registry.SetLevel(logger.ChannelRequest, cfg.Log.RequestLevel); err != nil {
		return nil, err
	}
	if _, err := registry.SetLevel(logger.ChannelBooks, cfg.Log.BooksLevel); err != nil {
		return nil, err
	}
	return registry, nil
}

// registerRoutes 注册路由
func registerRoutes(r *gin.Engine, bookHandler *handler.BookHandler, loggerHandler *handler.LoggerHandler) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 日志级别管理
	loggers := r.Group("/logger")
	{
		loggers.GET("/:channel/level", loggerHandler.GetLevel)
		loggers.PUT("/:channel/level", loggerHandler.SetLevel)
	}

	// API路由组
	v1 := r.Group("/api/v1")
	{
		books := v1.Group("/books")
		{
			books.POST("", bookHandler.CreateBook)           // 创建图书
			books.GET("", bookHandler.ListBooks)             // 筛选列表
			books.GET("/count", bookHandler.CountBooks)      // 筛选计数
			books.GET("/:id", bookHandler.GetBook)           // 图书详情
			books.PUT("/:id/price", bookHandler.UpdatePrice) // 修改价格
			books.DELETE("/:id", bookHandler.DeleteBook)     // 删除图书
		}
	}
}
