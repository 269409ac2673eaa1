package minigame

import (
	"time"

	"igusafarm/internal/domain/game"
)

type DorozomePhase string

const (
	DorozomeDipping DorozomePhase = "dipping"
	DorozomeDrying  DorozomePhase = "drying"
	DorozomeDone    DorozomePhase = "done"
)

const (
	DorozomeDips = 10

	DryingHours       = 14
	DryingStep        = 100 * time.Millisecond
	DryingDrift       = 500 * time.Millisecond
	dryingStepsPerHr  = int(time.Second / DryingStep)
	dryingStartTemp   = 65.0
	dryingMinTemp     = 50.0
	dryingMaxTemp     = 80.0
	dryingBandSwitch  = 7
	dryingOutPenalty  = 500 * time.Millisecond
	dryingInReward    = time.Second
	dryingDriftOffset = 0.3
)

type TempBand struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (b TempBand) Contains(t float64) bool { return t >= b.Min && t <= b.Max }

var (
	earlyDryingBand = TempBand{Min: 60, Max: 70}
	lateDryingBand  = TempBand{Min: 55, Max: 65}
	finalDryingBand = TempBand{Min: 55, Max: 70}
)

// DryingBand is the target band at the given simulated hour.
func DryingBand(hour float64) TempBand {
	if hour < dryingBandSwitch {
		return earlyDryingBand
	}
	return lateDryingBand
}

type DipResult struct {
	Held    time.Duration `json:"held"`
	Outcome Outcome       `json:"outcome"`
	Delta   int           `json:"delta"`
}

// Dorozome is mud dyeing followed by kiln drying. Dips are judged on how
// long the bundle stays in the mud; drying on keeping the kiln in band.
type Dorozome struct {
	base
	rnd       Rand
	phase     DorozomePhase
	dips      []DipResult
	pressed   bool
	pressedAt time.Duration

	temp     float64
	steps    int
	inBand   time.Duration
	outBand  time.Duration
	finalOK  bool
	finalSet bool
}

func NewDorozome(host Host, cb Callbacks, rnd Rand) *Dorozome {
	return &Dorozome{
		base:  newBase(game.StageDorozome, host, cb),
		rnd:   rnd,
		phase: DorozomeDipping,
		temp:  dryingStartTemp,
	}
}

func (d *Dorozome) Phase() DorozomePhase { return d.phase }
func (d *Dorozome) Dips() []DipResult    { return append([]DipResult(nil), d.dips...) }
func (d *Dorozome) Temperature() float64 { return d.temp }
func (d *Dorozome) Hour() float64        { return float64(d.steps) / float64(dryingStepsPerHr) }
func (d *Dorozome) Band() TempBand       { return DryingBand(d.Hour()) }
func (d *Dorozome) FinalPassed() bool    { return d.finalSet && d.finalOK }
func (d *Dorozome) DipsLeft() int        { return DorozomeDips - len(d.dips) }
func (d *Dorozome) Pressed() bool        { return d.pressed }

func (d *Dorozome) inPhase(p DorozomePhase) error {
	if err := d.active(); err != nil {
		return err
	}
	if d.phase != p {
		return ErrWrongPhase
	}
	return nil
}

// Press starts holding the bundle in the mud at the current clock.
func (d *Dorozome) Press() error {
	if err := d.inPhase(DorozomeDipping); err != nil {
		return err
	}
	d.pressed = true
	d.pressedAt = d.sched.Now()
	return nil
}

// Release ends a Press and judges the time held on the engine clock.
func (d *Dorozome) Release() (DipResult, error) {
	if err := d.inPhase(DorozomeDipping); err != nil {
		return DipResult{}, err
	}
	if !d.pressed {
		return DipResult{}, ErrWrongPhase
	}
	d.pressed = false
	return d.Dip(d.sched.Now() - d.pressedAt)
}

// Dip judges one dip of the given hold duration.
func (d *Dorozome) Dip(held time.Duration) (DipResult, error) {
	if err := d.inPhase(DorozomeDipping); err != nil {
		return DipResult{}, err
	}
	d.pressed = false
	res := DipResult{Held: held}
	res.Outcome, res.Delta = judgeDip(held)
	d.award(res.Delta)
	d.dips = append(d.dips, res)
	if len(d.dips) == DorozomeDips {
		d.startDrying()
	}
	return res, nil
}

func judgeDip(held time.Duration) (Outcome, int) {
	switch {
	case held >= 800*time.Millisecond && held <= 1800*time.Millisecond:
		return OutcomePerfect, 3
	case held >= 400*time.Millisecond && held <= 2500*time.Millisecond:
		return OutcomeGood, 1
	default:
		return OutcomeBad, -1
	}
}

func (d *Dorozome) startDrying() {
	d.sched.StopAll()
	d.phase = DorozomeDrying
	d.sched.Every(DryingStep, d.step)
	d.sched.Every(DryingDrift, d.drift)
}

func (d *Dorozome) Heat() error { return d.nudge(1) }
func (d *Dorozome) Cool() error { return d.nudge(-1) }

func (d *Dorozome) nudge(delta float64) error {
	if err := d.inPhase(DorozomeDrying); err != nil {
		return err
	}
	d.temp = clampFloat(d.temp+delta, dryingMinTemp, dryingMaxTemp)
	return nil
}

// drift pushes the kiln mostly upward.
func (d *Dorozome) drift() {
	d.temp = clampFloat(d.temp+(d.rnd.Float64()-dryingDriftOffset)*2, dryingMinTemp, dryingMaxTemp)
}

func (d *Dorozome) step() {
	if d.Band().Contains(d.temp) {
		d.outBand = 0
		d.inBand += DryingStep
		if d.inBand >= dryingInReward {
			d.award(1)
			d.inBand = 0
		}
	} else {
		d.inBand = 0
		d.outBand += DryingStep
		if d.outBand >= dryingOutPenalty {
			d.award(-1)
			d.outBand = 0
		}
	}

	d.steps++
	if d.steps >= DryingHours*dryingStepsPerHr {
		d.finishDrying()
	}
}

func (d *Dorozome) finishDrying() {
	d.finalSet = true
	d.finalOK = finalDryingBand.Contains(d.temp)
	if d.finalOK {
		d.award(5)
	} else {
		d.award(-15)
	}
	d.phase = DorozomeDone
	d.finish()
}
