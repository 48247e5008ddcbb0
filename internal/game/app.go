package game

import (
	"context"
	"errors"
	"time"

	"blockworld/internal/config"
	"blockworld/internal/profiling"

	"go.uber.org/zap"
)

// App drives a Session in real time until its context ends.
type App struct {
	session *Session
	log     *zap.Logger

	limiter  *TickLimiter
	lastTime time.Time

	// OnTick, when set, observes every frame after it is produced.
	OnTick func(Frame)
}

func NewApp(session *Session, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		session: session,
		log:     log,
		limiter: NewTickLimiter(),
	}
}

// Run ticks the session until ctx is cancelled or its deadline passes.
// Reaching the deadline is a normal shutdown and returns nil.
func (a *App) Run(ctx context.Context) error {
	a.lastTime = time.Now()
	a.log.Info("Simulation started", zap.Duration("tick_interval", config.GetTickInterval()))

	for {
		a.tick()
		if err := a.limiter.Wait(ctx); err != nil {
			a.log.Info("Simulation stopped",
				zap.Int("ticks", a.session.Ticks),
				zap.Int("chunks", a.session.World.ChunkCount()),
				zap.Int("respawns", a.session.Player.Respawns))
			if errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now() // Measure pure processing time
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	frame := a.session.Tick(dt)
	if a.OnTick != nil {
		a.OnTick(frame)
	}

	// Check if the tick took longer than its budget
	if d := time.Since(startTick); d > config.GetTickInterval() {
		a.log.Warn("Slow tick", zap.Duration("took", d), zap.String("top", profiling.TopN(5)))
	}
}
