package main

import (
	"flag"
	"log/slog"
	"os"

	"catedra-calendar/internal/config"
	"catedra-calendar/internal/handler"
	"catedra-calendar/internal/logger"
	"catedra-calendar/internal/service"
	"catedra-calendar/internal/store"
	"catedra-calendar/internal/store/gormstore"
	"catedra-calendar/internal/store/memstore"

	"github.com/joho/godotenv"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	godotenv.Load()
	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	rst, err := cfg.Roster()
	if err != nil {
		slog.Error("roster invalid", "err", err)
		os.Exit(1)
	}

	var st store.Store
	if cfg.Database.InMemory {
		slog.Warn("running on the in-memory store, data will not survive a restart")
		st = memstore.New()
	} else {
		db, err := cfg.OpenGormDB()
		if err != nil {
			slog.Error("db connect failed", "err", err)
			os.Exit(1)
		}
		st, err = gormstore.New(db)
		if err != nil {
			slog.Error("db migrate failed", "err", err)
			os.Exit(1)
		}
	}

	r := handler.Router(handler.Services{
		Roster:   rst,
		Entries:  service.NewEntryService(st),
		Calendar: service.NewCalendarService(st, rst, cfg.Features.Search),
		Board:    service.NewBoardService(st),
		Tasks:    service.NewTaskService(st),
		AI:       service.NewAIService(cfg.AI),
	})

	slog.Info("server starting", "addr", cfg.Addr(), "users", len(rst.Users()))
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
