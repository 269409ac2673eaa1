package play

import (
	"errors"
	"fmt"
	"time"

	"igusafarm/internal/domain/minigame"
)

var ErrUnknownInput = errors.New("input not understood by the mounted stage")

// Input is one player gesture addressed to the mounted stage. Only the
// fields relevant to Op are read.
type Input struct {
	Op     string  `json:"op"`
	Value  float64 `json:"value,omitempty"`
	Row    int     `json:"row,omitempty"`
	Col    int     `json:"col,omitempty"`
	ID     int     `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Choice string  `json:"choice,omitempty"`
	HeldMS int     `json:"held_ms,omitempty"`
}

// Input routes in to the mounted engine and returns that engine's own
// result value, or nil for inputs that only change engine state.
func (s *Session) Input(in Input) (any, error) {
	var out any
	err := s.WithEngine(func(e minigame.Engine) error {
		var err error
		out, err = apply(e, in)
		return err
	})
	return out, err
}

func apply(e minigame.Engine, in Input) (any, error) {
	switch eng := e.(type) {
	case *minigame.Kabuwake:
		if in.Op == "cut" {
			return eng.Cut(in.Value)
		}
	case *minigame.Uetsuke:
		switch in.Op {
		case "toggle":
			return nil, eng.Toggle(in.Row, in.Col)
		case "finish_planting":
			return eng.FinishPlanting()
		case "raise":
			return nil, eng.Raise()
		case "lower":
			return nil, eng.Lower()
		case "confirm_water":
			return eng.ConfirmWater()
		}
	case *minigame.Sakigari:
		switch in.Op {
		case "set_height":
			return nil, eng.SetHeight(int(in.Value))
		case "adjust":
			return nil, eng.Adjust(int(in.Value))
		case "cut":
			return eng.Cut()
		}
	case *minigame.Seicho:
		switch in.Op {
		case "raise_net":
			return eng.RaiseNet(int(in.Value))
		case "tap_bug":
			return nil, eng.TapBug(in.ID)
		case "end_bugs":
			return eng.EndBugs()
		case "toggle_drain":
			return nil, eng.ToggleDrain()
		case "finish_gas":
			return eng.FinishGas()
		case "ack_typhoon":
			return nil, eng.AckTyphoon()
		case "next_day":
			return nil, eng.NextDay()
		}
	case *minigame.Shukaku:
		switch in.Op {
		case "choose_time":
			return eng.ChooseTime(minigame.HarvestTime(in.Choice))
		case "tap":
			return eng.Tap(in.ID)
		}
	case *minigame.Dorozome:
		switch in.Op {
		case "press":
			return nil, eng.Press()
		case "release":
			return eng.Release()
		case "dip":
			return eng.Dip(time.Duration(in.HeldMS) * time.Millisecond)
		case "heat":
			return nil, eng.Heat()
		case "cool":
			return nil, eng.Cool()
		}
	case *minigame.Seishoku:
		switch in.Op {
		case "select":
			return eng.Select(in.ID)
		case "weave":
			return eng.Weave(minigame.Direction(in.Choice))
		}
	case *minigame.Kensa:
		switch in.Op {
		case "inspect":
			return eng.Inspect(in.X, in.Y)
		case "finish":
			return eng.Finish()
		}
	}
	return nil, fmt.Errorf("%w: %q on %s", ErrUnknownInput, in.Op, e.Stage())
}

// StageView is a read-only picture of the mounted engine for a remote shell.
func (s *Session) StageView() (map[string]any, error) {
	var out map[string]any
	err := s.WithEngine(func(e minigame.Engine) error {
		out = describe(e)
		return nil
	})
	return out, err
}

func describe(e minigame.Engine) map[string]any {
	v := map[string]any{
		"stage":    e.Stage(),
		"score":    e.Score(),
		"finished": e.Finished(),
	}
	switch eng := e.(type) {
	case *minigame.Kabuwake:
		v["seedlings"] = eng.Seedlings()
		v["results"] = eng.Results()
		v["cuts_left"] = eng.CutsLeft()
	case *minigame.Uetsuke:
		v["phase"] = eng.Phase()
		v["grid"] = eng.Grid()
		v["planted"] = eng.Planted()
		v["day"] = eng.Day()
		v["level"] = eng.Level()
	case *minigame.Sakigari:
		v["height"] = eng.Height()
		v["cuts_left"] = eng.CutsLeft()
		v["perfects"] = eng.Perfects()
	case *minigame.Seicho:
		v["day"] = eng.Day()
		v["event"] = eng.Event()
		v["event_resolved"] = eng.EventResolved()
		v["net_height"] = eng.NetHeight()
		v["gas_cycles"] = eng.GasCycles()
		v["drained"] = eng.Drained()
		v["bugs"] = eng.BugsOnField()
		v["bugs_remaining"] = eng.BugsRemaining()
	case *minigame.Shukaku:
		v["phase"] = eng.Phase()
		v["choice"] = eng.Choice()
		v["combo"] = eng.Combo()
		v["max_combo"] = eng.MaxCombo()
		v["targets"] = eng.Targets()
		v["remaining_ms"] = eng.Remaining().Milliseconds()
	case *minigame.Dorozome:
		v["phase"] = eng.Phase()
		v["dips"] = eng.Dips()
		v["dips_left"] = eng.DipsLeft()
		v["pressed"] = eng.Pressed()
		v["temperature"] = eng.Temperature()
		v["hour"] = eng.Hour()
		v["band"] = eng.Band()
	case *minigame.Seishoku:
		v["phase"] = eng.Phase()
		v["candidates"] = eng.Candidates()
		v["selection_score"] = eng.SelectionScore()
		v["density"] = eng.Density()
		v["strands"] = eng.Strands()
		v["round"] = eng.Round()
		v["required"] = eng.Required()
		v["window_left_ms"] = eng.WindowLeft().Milliseconds()
	case *minigame.Kensa:
		v["defects"] = eng.Defects()
		v["found"] = eng.Found()
		if res, ok := eng.Result(); ok {
			v["result"] = res
		}
	}
	return v
}
