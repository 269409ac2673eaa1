package minigame

import "igusafarm/internal/domain/game"

const (
	UetsukeGridSize   = 5
	UetsukeWaterDays  = 3
	UetsukeMinPlanted = 10
	WaterLevelMin     = 0
	WaterLevelMax     = 4
	waterLevelStart   = 2
)

type UetsukePhase string

const (
	UetsukePlanting UetsukePhase = "planting"
	UetsukeWater    UetsukePhase = "water"
	UetsukeDone     UetsukePhase = "done"
)

type PlantingResult struct {
	Planted int `json:"planted"`
	Matches int `json:"matches"`
	Delta   int `json:"delta"`
}

type WaterResult struct {
	Day    int  `json:"day"`
	Level  int  `json:"level"`
	Target int  `json:"target"`
	Exact  bool `json:"exact"`
	Delta  int  `json:"delta"`
}

// Uetsuke is the planting stage: a checkerboard placement followed by a
// three day water level routine.
type Uetsuke struct {
	base
	phase    UetsukePhase
	grid     [UetsukeGridSize][UetsukeGridSize]bool
	day      int
	level    int
	waterLog []WaterResult
}

func NewUetsuke(host Host, cb Callbacks) *Uetsuke {
	info, _ := game.StageInfoFor(game.StageUetsuke)
	day := startDay(host, game.StageUetsuke) - info.StartDay + 1
	return &Uetsuke{
		base:  newBase(game.StageUetsuke, host, cb),
		phase: UetsukePlanting,
		day:   day,
		level: waterLevelStart,
	}
}

func (u *Uetsuke) Phase() UetsukePhase { return u.phase }
func (u *Uetsuke) Day() int            { return u.day }
func (u *Uetsuke) Level() int          { return u.level }

func (u *Uetsuke) Grid() [UetsukeGridSize][UetsukeGridSize]bool { return u.grid }

func (u *Uetsuke) Toggle(row, col int) error {
	if err := u.active(); err != nil {
		return err
	}
	if u.phase != UetsukePlanting {
		return ErrWrongPhase
	}
	if row < 0 || row >= UetsukeGridSize || col < 0 || col >= UetsukeGridSize {
		return ErrOutOfRange
	}
	u.grid[row][col] = !u.grid[row][col]
	return nil
}

func (u *Uetsuke) Planted() int {
	n := 0
	for r := range u.grid {
		for c := range u.grid[r] {
			if u.grid[r][c] {
				n++
			}
		}
	}
	return n
}

// FinishPlanting judges the layout against the checkerboard and opens the
// water routine.
func (u *Uetsuke) FinishPlanting() (PlantingResult, error) {
	if err := u.active(); err != nil {
		return PlantingResult{}, err
	}
	if u.phase != UetsukePlanting {
		return PlantingResult{}, ErrWrongPhase
	}
	res := PlantingResult{Planted: u.Planted()}
	for r := range u.grid {
		for c := range u.grid[r] {
			if u.grid[r][c] == ((r+c)%2 == 0) {
				res.Matches++
			}
		}
	}
	switch {
	case res.Planted < UetsukeMinPlanted:
		res.Delta = -10
	case res.Matches >= 20:
		res.Delta = 10
	case res.Matches >= 15:
		res.Delta = 5
	}
	u.award(res.Delta)
	u.sched.StopAll()
	u.phase = UetsukeWater
	return res, nil
}

// TargetLevel is deep water right after planting, shallow afterwards.
func TargetLevel(day int) int {
	if day <= 1 {
		return 3
	}
	return 2
}

func (u *Uetsuke) Raise() error { return u.setLevel(u.level + 1) }
func (u *Uetsuke) Lower() error { return u.setLevel(u.level - 1) }

func (u *Uetsuke) setLevel(v int) error {
	if err := u.active(); err != nil {
		return err
	}
	if u.phase != UetsukeWater {
		return ErrWrongPhase
	}
	u.level = clamp(v, WaterLevelMin, WaterLevelMax)
	return nil
}

// ConfirmWater judges today's level and moves to the next day, or
// completes the stage after the last one.
func (u *Uetsuke) ConfirmWater() (WaterResult, error) {
	if err := u.active(); err != nil {
		return WaterResult{}, err
	}
	if u.phase != UetsukeWater {
		return WaterResult{}, ErrWrongPhase
	}
	res := WaterResult{Day: u.day, Level: u.level, Target: TargetLevel(u.day)}
	res.Exact = res.Level == res.Target
	if res.Exact {
		res.Delta = 5
	} else {
		res.Delta = -10
	}
	u.award(res.Delta)
	u.waterLog = append(u.waterLog, res)

	if u.day < UetsukeWaterDays {
		u.day++
		u.nextDay()
		return res, nil
	}

	allExact := len(u.waterLog) == UetsukeWaterDays
	for _, w := range u.waterLog {
		allExact = allExact && w.Exact
	}
	if allExact {
		u.grant(game.BadgeWaterMaster)
	}
	u.phase = UetsukeDone
	u.finish()
	return res, nil
}
