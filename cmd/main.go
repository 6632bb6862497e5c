package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"chargelk-planner/internal/config"
	"chargelk-planner/internal/domain/model"
	"chargelk-planner/internal/domain/service"
	"chargelk-planner/internal/handler"
	"chargelk-planner/internal/repository"
	"chargelk-planner/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ 設定エラー: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// データセットはここで一度だけ読み込み、以降は読み取り専用
	datasetRepo, cleanup, err := repository.NewDatasetRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ データソース %q の初期化に失敗: %v", cfg.DatasetSource, err)
	}

	loadCtx, cancelLoad := context.WithTimeout(ctx, 30*time.Second)
	dataset, err := usecase.LoadDataset(loadCtx, datasetRepo)
	cancelLoad()
	if closeErr := cleanup(); closeErr != nil {
		log.Printf("⚠️ データソースのクローズに失敗: %v", closeErr)
	}
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	viabilityService := service.NewViabilityService(dataset)
	siteAnalysisUseCase := usecase.NewSiteAnalysisUseCase(viabilityService, model.GetDefaultCities())
	siteAnalysisHandler := handler.NewSiteAnalysisHandler(siteAnalysisUseCase)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler.NewRouter(siteAnalysisHandler, cfg.CORSAllowedOrigins),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("⚡ ChargeLK Planner Backend running on port %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ サーバーエラー: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 サーバーをシャットダウンしています...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ 強制シャットダウン: %v", err)
	}
	log.Println("✅ サーバーを停止しました")
}
