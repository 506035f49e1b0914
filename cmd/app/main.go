package main

import (
	"os"

	"github.com/rs/zerolog"

	"example.com/fitdash/internal/activity"
	"example.com/fitdash/internal/config"
	"example.com/fitdash/internal/guard"
	"example.com/fitdash/internal/session"
	"example.com/fitdash/internal/store"
)

func main() {
	cfg := config.Load()
	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "app").Logger()

	// Pre-render context: no durable storage visible. It initializes empty
	// and exports its state for the storage-capable context to seed from.
	preRender := session.NewManager(nil, nil, session.WithLogger(log))
	preRender.Initialize()
	snap := preRender.Snapshot()

	st, err := store.OpenBadger(cfg.StorePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.StorePath).Msg("failed to open session store")
	}
	defer st.Close()

	client := session.NewHTTPAuthClient(cfg.AuthBaseURL, cfg.LoginTimeout)
	manager := session.NewManager(st, client,
		session.WithLogger(log),
		session.WithNavigator(func(path string) {
			log.Info().Str("path", path).Msg("navigate")
		}),
	)
	if snap.Token != "" {
		// The pre-render context already authenticated; its state is
		// authoritative over whatever the store holds.
		manager.Seed(snap)
	}

	g := guard.New(manager)
	for _, path := range []string{guard.LandingPath, guard.DashboardPath} {
		decision := g.PublicLanding(path)
		log.Info().
			Str("path", path).
			Bool("allowed", decision.Allowed).
			Str("redirect", decision.RedirectTo).
			Msg("route guard")
	}

	cache := activity.NewCache(log)
	today := cache.SelectedDate()
	day := cache.SelectedActivity()
	log.Info().
		Str("date", today).
		Int("steps", day.Steps).
		Str("steps_change", cache.MetricChange(today, activity.MetricSteps)).
		Int("days_this_month", len(cache.MonthlyActivities())).
		Bool("authenticated", manager.IsAuthenticated()).
		Msg("startup snapshot")
}
