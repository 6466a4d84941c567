package main

import (
	"net/http"
	"os"

	"github.com/ToriTreat/Astral/internal/config"
	"github.com/ToriTreat/Astral/internal/handlers"
	"github.com/ToriTreat/Astral/internal/router"
	"github.com/ToriTreat/Astral/internal/shortener"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		logger.Fatal("Ошибка конфигурации", zap.Error(err))
	}

	client := shortener.NewClient(cfg.ISGDEndpoint, cfg.RelayEndpoint, cfg.RequestTimeout, logger)
	handler := handlers.NewHandler(client, logger)
	r := router.NewRouter(handler, logger)

	logger.Info("Сервер запущен", zap.String("address", cfg.ServerAddress))
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		logger.Fatal("Ошибка при запуске сервера", zap.Error(err))
	}
}
