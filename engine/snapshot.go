package engine

import (
	"time"

	"github.com/lixenwraith/plinko/core"
)

// BallView is the presentation copy of one live ball
type BallView struct {
	Entity core.Entity `json:"entity"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Scored bool        `json:"scored"`
}

// Snapshot is an immutable copy of presentation state taken under the world lock
type Snapshot struct {
	Frame      int64         `json:"frame"`
	GameTime   time.Duration `json:"game_time_ns"`
	Balance    float64       `json:"balance"`
	History    []float64     `json:"history"` // Newest first
	HistoryCap int           `json:"history_cap"`
	Balls      []BallView    `json:"balls"`
	ShakeX     float64       `json:"shake_x"`
	ShakeY     float64       `json:"shake_y"`
	Paused     bool          `json:"paused"`
	AutoDrop   bool          `json:"auto_drop"`
	Muted      bool          `json:"muted"`
}

// TakeSnapshot copies presentation state; safe from any goroutine
func TakeSnapshot(w *World) Snapshot {
	var s Snapshot
	w.RunSafe(func() {
		s = TakeSnapshotLocked(w)
	})
	return s
}

// TakeSnapshotLocked copies presentation state; caller holds the update lock
func TakeSnapshotLocked(w *World) Snapshot {
	r := GetResourceStore(w)

	s := Snapshot{
		Frame:      r.Time.FrameNumber,
		GameTime:   r.Time.GameTime,
		Balance:    r.Economy.Balance(),
		History:    r.History.Values(),
		HistoryCap: r.History.Cap(),
		ShakeX:     r.Camera.OffsetX,
		ShakeY:     r.Camera.OffsetY,
		Paused:     r.State.Paused.Load(),
		AutoDrop:   r.State.AutoDrop.Load(),
		Muted:      r.State.Muted.Load(),
	}

	balls := r.Balls.All()
	s.Balls = make([]BallView, 0, len(balls))
	for _, e := range balls {
		pos, ok := r.Physics.Solver.Position(e)
		if !ok {
			continue
		}
		ball, _ := w.Components.Ball.GetComponent(e)
		s.Balls = append(s.Balls, BallView{Entity: e, X: pos.X, Y: pos.Y, Scored: ball.HasScored})
	}
	return s
}
