package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"

	"bousai_recommend/config"
	"bousai_recommend/handlers"
	"bousai_recommend/logger"
	"bousai_recommend/models"
	"bousai_recommend/services"
	"bousai_recommend/validation"
)

// @title 防災グッズ推荐 API
// @version 1.0
// @description 根据家庭信息生成个性化的防灾用品推荐
// @host localhost:8080
// @BasePath /
// @schemes http https

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "bousai",
		Usage:   "防灾用品推荐服务",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			recommendCommand(),
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "启动HTTP服务",
		Action: runServe,
	}
}

func recommendCommand() *cli.Command {
	return &cli.Command{
		Name:  "recommend",
		Usage: "读取家庭信息JSON文件，生成一次推荐并输出JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "profile",
				Aliases:  []string{"p"},
				Usage:    "家庭信息JSON文件路径",
				Required: true,
			},
		},
		Action: runRecommend,
	}
}

// setup 加载配置、初始化日志并组装推荐服务
func setup(c *cli.Context, logToStderr bool) (*config.Config, *services.RecommendationService, error) {
	if path := c.String("config"); path != "" {
		os.Setenv("CONFIG_FILE", path)
	}
	cfg := config.Load()
	// stdout 留给推荐结果
	if logToStderr && cfg.Log.Output != "file" {
		cfg.Log.Output = "stderr"
	}

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	var generator services.Generator
	if cfg.LLMConfigured() {
		g, err := services.NewGenerator(cfg)
		if err != nil {
			return nil, nil, err
		}
		generator = g
	} else {
		logger.Warn("生成模型密钥未配置，推荐请求将返回配置错误")
	}
	if !cfg.ImageSearchConfigured() {
		logger.Warn("图片检索未配置，将使用占位图")
	}
	if !cfg.VideoSearchConfigured() {
		logger.Warn("YouTube检索未配置，将不返回视频")
	}

	svc, err := services.NewRecommendationService(cfg, generator, services.NewMediaEnricherFromConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	return cfg, svc, nil
}

func runServe(c *cli.Context) error {
	cfg, svc, err := setup(c, false)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handlers.NewRouter(cfg, svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("服务器启动", "address", serverAddr)
		logger.Info("Swagger文档可访问", "url", fmt.Sprintf("http://%s/swagger/index.html", serverAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("正在关闭服务器")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.LLM.TimeoutSec)*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runRecommend(c *cli.Context) error {
	_, svc, err := setup(c, true)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.String("profile"))
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	var profile models.HouseholdProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("parse profile: %w", err)
	}
	if verr := validation.ValidateStruct(&profile); verr != nil {
		return verr
	}

	items, err := svc.GenerateRecommendations(c.Context, profile)
	if err != nil {
		return err
	}
	if items == nil {
		items = []models.RecommendedItem{}
	}

	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
