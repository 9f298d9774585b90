//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 说明：
// 1. Wire是编译期依赖注入工具：`wire gen ./cmd/api`生成wire_gen.go
// 2. 与运行时反射注入不同，生成的代码零运行时开销、类型安全
// 3. main.go目前使用等价的手动组装，两边的依赖链保持一致
//
// 核心概念：
// - Provider: 提供依赖的构造函数（如memory.NewBookRepository）
// - Injector: 声明最终要构造的目标类型（*gin.Engine）
// - wire.Build(): 告诉Wire如何组装依赖链

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
// 包含：配置加载、内存仓储、日志注册表、请求序号分配器
var infrastructureSet = wire.NewSet(
	config.Load,              // 加载配置文件
	provideLogRegistry,       // 日志注册表（按配置初始化阈值）
	logger.NewSequencer,      // 请求序号分配器
	memory.NewBookRepository, // 内存图书仓储
	wire.Bind(new(book.Repository), new(*memory.BookRepository)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService, // 图书领域服务
)

// applicationSet 应用层依赖
// 包含：所有Use Case的构造函数
var applicationSet = wire.NewSet(
	appbook.NewCreateBookUseCase,  // 创建图书用例
	appbook.NewGetBookUseCase,     // 详情查询用例
	appbook.NewUpdatePriceUseCase, // 改价用例
	appbook.NewDeleteBookUseCase,  // 删除用例
	appbook.NewListBooksUseCase,   // 筛选列表用例
	appbook.NewCountBooksUseCase,  // 筛选计数用例
)

// interfaceSet 接口层依赖
var interfaceSet = wire.NewSet(
	handler.NewBookHandler,      // 图书处理器
	handler.NewLoggerHandler,    // 日志级别处理器
	middleware.NewRequestLogger, // 请求日志中间件
)

// provideLogRegistry 日志注册表Provider
func provideLogRegistry(cfg *config.Config) (*logger.Registry, error) {
	return newLogRegistry(cfg)
}

// provideEngine 组装Gin引擎Provider
func provideEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	loggerHandler *handler.LoggerHandler,
	requestLogger *middleware.RequestLogger,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger.Handler())

	registerRoutes(r, bookHandler, loggerHandler)

	// Swagger文档（docs包由`swag init`生成后挂载）
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// InitializeApp Wire注入器：构造完整的应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		interfaceSet,
		provideEngine,
	)
	return nil, nil
}
