package b

import (
	"log"
	"os"

	"go.uber.org/zap"
)

func main() {
	os.Exit(0) // want `os.Exit завершает процесс вне пакета main: верните ошибку`
}

func load(logger *zap.Logger, sugar *zap.SugaredLogger) error {
	if _, err := os.Stat("config.env"); err != nil {
		log.Fatalf("no config: %v", err)   // want `log.Fatalf завершает процесс вне пакета main`
		logger.Fatal("no config")          // want `\(\*go.uber.org/zap.Logger\).Fatal завершает процесс`
		sugar.Fatalf("no config: %v", err) // want `\(\*go.uber.org/zap.SugaredLogger\).Fatalf завершает процесс`
		return err
	}
	logger.Info("config loaded")
	return nil
}
