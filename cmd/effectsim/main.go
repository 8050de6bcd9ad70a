package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/VincentYChia/Game-1-sub006/internal/config"
	"github.com/VincentYChia/Game-1-sub006/internal/constants"
	"github.com/VincentYChia/Game-1-sub006/internal/data"
	"github.com/VincentYChia/Game-1-sub006/internal/game/effect"
	"github.com/VincentYChia/Game-1-sub006/internal/game/geo"
	"github.com/VincentYChia/Game-1-sub006/internal/game/tag"
	"github.com/VincentYChia/Game-1-sub006/internal/model"
)

const EngineConfigPath = "configs/engine.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	cfgPath := EngineConfigPath
	if p := os.Getenv("EFFECTSIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadEngine(cfgPath)
	if err != nil {
		return fmt.Errorf("loading engine config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("effectsim starting", "log_level", cfg.LogLevel, "tick_rate", cfg.TickRate)

	defs, synergies, err := data.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading tag catalog: %w", err)
	}
	reg := tag.NewRegistry(defs, synergies)
	slog.Info("tag catalog loaded", "path", cfg.CatalogPath, "tags", reg.Len())

	scenario, err := config.LoadScenario(cfg.ScenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}
	slog.Info("scenario loaded",
		"path", cfg.ScenarioPath,
		"entities", len(scenario.Entities),
		"casts", len(scenario.Casts),
		"duration", scenario.Duration)

	combatants, pool, err := buildCombatants(scenario)
	if err != nil {
		return fmt.Errorf("building combatants: %w", err)
	}

	exec := effect.New(reg, slog.Default())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return simulate(ctx, exec, scenario, combatants, pool, cfg.TickRate)
	})
	return g.Wait()
}

func buildCombatants(sc config.Scenario) (map[string]*model.Combatant, []model.Entity, error) {
	byName := make(map[string]*model.Combatant, len(sc.Entities))
	pool := make([]model.Entity, 0, len(sc.Entities))
	for _, e := range sc.Entities {
		cats := make([]constants.Category, 0, len(e.Categories))
		for _, name := range e.Categories {
			c, ok := constants.CategoryByName(name)
			if !ok {
				return nil, nil, fmt.Errorf("entity %q: unknown category %q", e.Name, name)
			}
			cats = append(cats, c)
		}
		cb := model.NewCombatant(e.Name, geo.Vec2{X: e.Position.X, Y: e.Position.Y},
			constants.NewCategorySet(cats...), e.MaxHP)
		cb.SetFacing(geo.Vec2{X: e.Facing.X, Y: e.Facing.Y})
		byName[e.Name] = cb
		pool = append(pool, cb)
	}
	return byName, pool, nil
}

// simulate advances the scenario clock at the configured tick rate,
// firing casts when due and ticking statuses every step.
func simulate(ctx context.Context, exec *effect.Executor, sc config.Scenario,
	byName map[string]*model.Combatant, pool []model.Entity, tickRate float64) error {

	dt := 1 / tickRate
	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	clock := 0.0
	next := 0
	for {
		select {
		case <-ctx.Done():
			slog.Info("simulation interrupted", "clock", clock)
			return ctx.Err()
		case <-ticker.C:
		}

		for next < len(sc.Casts) && sc.Casts[next].At <= clock {
			cast(exec, sc.Casts[next], byName, pool)
			next++
		}

		for _, cb := range byName {
			cb.Statuses().Update(dt)
		}

		clock += dt
		if clock >= sc.Duration {
			break
		}
	}

	printSummary(byName)
	return nil
}

func cast(exec *effect.Executor, c config.ScenarioCast, byName map[string]*model.Combatant, pool []model.Entity) {
	source := byName[c.Source]
	primary := byName[c.Primary]
	if !source.CanAct() {
		slog.Info("cast skipped, source cannot act", "at", c.At, "source", c.Source)
		return
	}
	if primary.IsDead() {
		slog.Info("cast skipped, primary is dead", "at", c.At, "primary", c.Primary)
		return
	}

	report := exec.Execute(source, primary, c.Tags, c.Params, pool)
	for _, w := range report.Warnings {
		slog.Warn("effect warning", "at", c.At, "warning", w)
	}
	slog.Info("cast resolved",
		"at", c.At,
		"source", c.Source,
		"tags", c.Tags,
		"targets", len(report.TargetsHit),
		"damage", report.TotalDamage(),
		"healing", report.TotalHealing())
}

func printSummary(byName map[string]*model.Combatant) {
	for _, cb := range byName {
		kinds := make([]string, 0)
		for _, in := range cb.Statuses().Active() {
			kinds = append(kinds, string(in.Kind))
		}
		slog.Info("combatant",
			"name", cb.Name(),
			"hp", cb.CurrentHP(),
			"max_hp", cb.MaxHP(),
			"dead", cb.IsDead(),
			"statuses", kinds)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
