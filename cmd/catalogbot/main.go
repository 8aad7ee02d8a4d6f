package main

import (
	"log"

	appbot "catalogbot/app/bot"
	corecmd "catalogbot/core/cmd"
	coreconfig "catalogbot/core/config"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	err := corecmd.Run(corecmd.Options{
		ConfigEnvVar:      "CONFIG_PATH",
		DefaultConfigPath: "config.yaml",
		Bootstrap: func(cfg *coreconfig.Config) (corecmd.TelegramApp, error) {
			return appbot.Bootstrap(cfg)
		},
	})
	if err != nil {
		log.Fatalf("catalogbot: %v", err)
	}
}
