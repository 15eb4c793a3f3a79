package router

import (
	"context"

	"resume-analyzer-go/internal/api/handler"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, analyzerHandler *handler.AnalyzerHandler) {
	api := h.Group("/api/v1")

	api.POST("/resumes/analyze", func(c context.Context, ctx *app.RequestContext) {
		var req handler.AnalyzeRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体解析失败: " + err.Error()})
			return
		}

		report, err := analyzerHandler.HandleAnalyze(c, &req)
		if err != nil {
			// 到这里的错误只剩输入校验失败，组件内部故障都已降级进报告
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, report)
	})

	// 添加健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
