// Seeds a fresh database with demo data: the announcement banner and a week
// of entries for the configured roster. Safe to run more than once, the
// entries just pile up.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"catedra-calendar/internal/calendar"
	"catedra-calendar/internal/config"
	"catedra-calendar/internal/logger"
	"catedra-calendar/internal/model"
	"catedra-calendar/internal/roster"
	"catedra-calendar/internal/store/gormstore"

	"github.com/joho/godotenv"
)

// demoEntries builds one entry per weekday of the given week, cycling the
// editors and a fixed type rotation. The roster must hold at least one
// editor; a viewer-only roster has nobody to attribute demo work to.
func demoEntries(week []calendar.DayCell, editors []roster.User) ([]*model.Entry, error) {
	if len(editors) == 0 {
		return nil, errors.New("no editors configured")
	}
	types := []string{model.TypeDiario, model.TypePlan, model.TypeDiario, model.TypeFalta, model.TypePlan}
	entries := make([]*model.Entry, 0, 5)
	for i, cell := range week[:5] { // weekdays only
		u := editors[i%len(editors)]
		entries = append(entries, &model.Entry{
			Date:         cell.Day,
			Text:         fmt.Sprintf("Demo: actividad de %s", u.Name),
			Type:         types[i%len(types)],
			Person:       u.Name,
			Participants: []string{u.Name},
			CreatedBy:    u.ID,
		})
	}
	return entries, nil
}

func main() {
	configFile := flag.String("config", "", "config file path")
	flag.Parse()

	godotenv.Load()
	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	rst, err := cfg.Roster()
	if err != nil {
		slog.Error("roster invalid", "err", err)
		os.Exit(1)
	}

	entries, err := demoEntries(calendar.WeekGrid(time.Now()), rst.Editors())
	if err != nil {
		slog.Error("nothing to seed", "err", err)
		os.Exit(1)
	}

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	st, err := gormstore.New(db)
	if err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := st.SetAnnouncement(ctx, "Bienvenidos al calendario compartido."); err != nil {
		slog.Error("seed announcement failed", "err", err)
		os.Exit(1)
	}

	for _, e := range entries {
		if err := st.CreateEntry(ctx, e); err != nil {
			slog.Error("seed entry failed", "day", e.Date, "err", err)
			os.Exit(1)
		}
	}
	slog.Info("seed complete", "entries", len(entries))
}
