package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-analyzer-go/internal/analyzer"
	"resume-analyzer-go/internal/api/handler"
	"resume-analyzer-go/internal/api/router"
	"resume-analyzer-go/internal/config"
	appCoreLogger "resume-analyzer-go/internal/logger"
	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/storage"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	var configPath string
	var listenAddr string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.StringVarP(&listenAddr, "addr", "a", "", "Listen address override, e.g. :8081")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	if listenAddr != "" {
		cfg.Server.Address = listenAddr
	}

	// 嵌入器: Cohere客户端, 可选地包一层Redis向量缓存
	var embedder parser.IntentEmbedder
	if cfg.Cohere.APIKey != "" {
		cohereEmbedder, err := parser.NewCohereEmbedder(cfg.Cohere.APIKey, cfg.Cohere)
		if err != nil {
			glog.Fatalf("初始化Cohere Embedder失败: %v", err)
		}
		embedder = cohereEmbedder
		glog.Info("Cohere Embedder初始化成功")

		if cfg.Redis.Enabled {
			redisAdapter, err := storage.NewRedisAdapter(&cfg.Redis)
			if err != nil {
				glog.Fatalf("初始化Redis失败: %v", err)
			}
			defer redisAdapter.Close()

			embedder, err = parser.NewCachedEmbedder(cohereEmbedder, redisAdapter, cohereEmbedder.Model())
			if err != nil {
				glog.Fatalf("初始化向量缓存失败: %v", err)
			}
			glog.Info("Redis向量缓存已启用")
		}
	} else {
		// 无API密钥时embedder为nil, ATS部分返回降级报告而不是拒绝启动
		glog.Warn("未配置COHERE_API_KEY, ATS匹配评分将降级")
	}

	lexicon, err := analyzer.NewLexicon(
		cfg.Analyzer.ActionVerbsFile,
		cfg.Analyzer.IndustrySkillsFile,
		cfg.Analyzer.TechnicalKeywordsFile,
	)
	if err != nil {
		glog.Fatalf("加载分析词表失败: %v", err)
	}
	glog.Info("分析词表加载成功")

	var scorerOptions []analyzer.ATSScorerOption
	if cfg.Analyzer.SkillSimilarityThreshold > 0 {
		scorerOptions = append(scorerOptions, analyzer.WithSkillThreshold(cfg.Analyzer.SkillSimilarityThreshold))
	}
	if cfg.Analyzer.ResponsibilitySimilarityThreshold > 0 {
		scorerOptions = append(scorerOptions, analyzer.WithResponsibilityThreshold(cfg.Analyzer.ResponsibilitySimilarityThreshold))
	}
	scorer := analyzer.NewATSScorer(embedder, lexicon, scorerOptions...)

	quality, err := analyzer.NewQualityAnalyzer(lexicon)
	if err != nil {
		glog.Fatalf("初始化写作质量分析器失败: %v", err)
	}

	analyzerHandler := handler.NewAnalyzerHandler(scorer, quality)
	glog.Info("AnalyzerHandler初始化成功")

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, analyzerHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)
	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

func initLogger(cfg *config.Config) {
	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	// Hertz 的日志走同一个 zerolog 实例
	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
}
