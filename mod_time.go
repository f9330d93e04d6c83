package stilllife

import (
	"time"
)

// Time tracks wall-clock frame timing. The render module uses it for
// the once-per-second frame-rate debug log.
type Time struct {
	Time   time.Time
	Dt     time.Duration
	Frames uint64
}

type TimeModule struct {
}

func (mod TimeModule) Install(app *App) {
	app.AddResources(&Time{
		Time: time.Now(),
		Dt:   0,
	})
	app.UseSystem(System(timeSystem).InStage(Prelude))
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
	timeResource.Frames++
}
