package main

import (
	"fmt"
	"log"
	"time"

	"leadbot/internal/bot"
	"leadbot/internal/config"
	"leadbot/internal/grok"
	"leadbot/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fatal: %v", err)
	}

	// 1. Initialize DB
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Fatal: %v", err)
	}
	defer db.Close()

	// 2. Apply Schema
	if err := db.InitSchema(); err != nil {
		log.Fatalf("Schema init failed: %v", err)
	}

	// 3. Monthly report: check now, then keep checking so a long-running
	// container still writes the report when the month turns over.
	reporter := store.NewReporter(db, cfg.ReportPath)
	if err := reporter.CheckAndSave(time.Now().UTC()); err != nil {
		log.Printf("⚠ Monthly report check failed: %v", err)
	}
	go func() {
		ticker := time.NewTicker(12 * time.Hour)
		for range ticker.C {
			if err := reporter.CheckAndSave(time.Now().UTC()); err != nil {
				log.Printf("Monthly report error: %v", err)
			}
		}
	}()

	// 4. Optional Grok fallback
	var ai *grok.Client
	if cfg.XAIAPIKey != "" {
		ai = grok.NewClient("", cfg.XAIAPIKey, "")
		fmt.Println("Grok fallback enabled.")
	}

	// 5. Start Bot
	b, err := bot.New(bot.Config{Token: cfg.Token, AdminID: cfg.AdminID}, db, ai)
	if err != nil {
		log.Fatalf("Bot init failed: %v", err)
	}

	fmt.Println("🤖 Бот запущен. Нажми Ctrl+C, чтобы остановить.")
	b.Start()
}
