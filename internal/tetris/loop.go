package tetris

import "time"

// Intent is a player or timer request forwarded to the engine.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentSoftDrop
	IntentRotate
	IntentGravityTick
)

// String returns the string representation of an intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentSoftDrop:
		return "soft_drop"
	case IntentRotate:
		return "rotate"
	case IntentGravityTick:
		return "gravity_tick"
	default:
		return "unknown"
	}
}

// FrameResult summarizes one frame of the loop.
type FrameResult struct {
	Applied      int  // Intents that changed the piece
	Gravity      bool // The gravity timer fired this frame
	Locked       int  // Pieces locked during the frame
	LinesCleared int  // Rows removed during the frame
	GameOver     bool
}

func (r *FrameResult) addTick(t TickResult) {
	if t.Locked {
		r.Locked++
	}
	r.LinesCleared += t.LinesCleared
}

// Loop drives an engine: it forwards intents and fires gravity from wall-clock
// time. A gravity tick happens when more than the interval has elapsed since
// the previous one; the clock then restarts at the current time, so late
// frames never produce catch-up ticks.
type Loop struct {
	engine   *Engine
	interval time.Duration
	lastTick time.Time
	quit     bool
}

// NewLoop creates a loop whose gravity clock starts at start.
func NewLoop(e *Engine, start time.Time) *Loop {
	return &Loop{
		engine:   e,
		interval: e.Rules().GravityInterval,
		lastTick: start,
	}
}

// Engine returns the driven engine.
func (l *Loop) Engine() *Engine {
	return l.engine
}

// Interval returns the gravity interval.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// ResetClock restarts the gravity clock, e.g. after a pause.
func (l *Loop) ResetClock(now time.Time) {
	l.lastTick = now
}

// Apply forwards a single intent. It reports whether the piece changed and,
// for IntentGravityTick, what the tick did.
func (l *Loop) Apply(in Intent) (bool, TickResult) {
	switch in {
	case IntentMoveLeft:
		return l.engine.TryMove(-1, 0), TickResult{}
	case IntentMoveRight:
		return l.engine.TryMove(1, 0), TickResult{}
	case IntentSoftDrop:
		return l.engine.TryMove(0, 1), TickResult{}
	case IntentRotate:
		return l.engine.TryRotate(), TickResult{}
	case IntentGravityTick:
		t := l.engine.Tick()
		return t.Moved || t.Locked, t
	}
	return false, TickResult{}
}

// Frame applies the frame's intents in order, then fires gravity if it is
// due. Nothing happens once the loop is done.
func (l *Loop) Frame(now time.Time, intents ...Intent) FrameResult {
	var res FrameResult
	if l.Done() {
		res.GameOver = l.engine.IsGameOver()
		return res
	}

	for _, in := range intents {
		if l.engine.IsGameOver() {
			break
		}
		changed, t := l.Apply(in)
		if changed {
			res.Applied++
		}
		res.addTick(t)
	}

	if !l.engine.IsGameOver() && now.Sub(l.lastTick) > l.interval {
		res.Gravity = true
		res.addTick(l.engine.Tick())
		l.lastTick = now
	}

	res.GameOver = l.engine.IsGameOver()
	return res
}

// Quit stops the loop on an external signal.
func (l *Loop) Quit() {
	l.quit = true
}

// Done reports whether the loop has stopped, by quit or game over.
func (l *Loop) Done() bool {
	return l.quit || l.engine.IsGameOver()
}
