package minigame

import (
	"time"

	"igusafarm/internal/domain/game"
)

type SeichoEvent string

const (
	EventNone    SeichoEvent = ""
	EventNet     SeichoEvent = "net"
	EventBug     SeichoEvent = "bug"
	EventGas     SeichoEvent = "gas"
	EventTyphoon SeichoEvent = "typhoon"
)

const (
	BugSpawnInterval = 700 * time.Millisecond
	netStartHeight   = 1
)

var seichoSchedule = map[int]SeichoEvent{
	9:  EventNet,
	11: EventBug,
	12: EventNet,
	14: EventGas,
	16: EventBug,
	17: EventNet,
	19: EventTyphoon,
}

func SeichoEventForDay(day int) SeichoEvent {
	return seichoSchedule[day]
}

type Bug struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type NetResult struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Delta int `json:"delta"`
}

// Seicho is the growth period: one day at a time, with scheduled field
// events to handle along the way.
type Seicho struct {
	base
	rnd      Rand
	day      int
	lastDay  int
	net      int
	event    SeichoEvent
	resolved bool

	bugs       []Bug
	bugQuota   int
	bugSpawned int
	bugRemoved int

	drained   bool
	gasCycles int
}

func NewSeicho(host Host, cb Callbacks, rnd Rand) *Seicho {
	info, _ := game.StageInfoFor(game.StageSeicho)
	s := &Seicho{
		base:    newBase(game.StageSeicho, host, cb),
		rnd:     rnd,
		day:     startDay(host, game.StageSeicho),
		lastDay: info.EndDay,
		net:     netStartHeight,
	}
	s.enterDay()
	return s
}

func (s *Seicho) Day() int            { return s.day }
func (s *Seicho) NetHeight() int      { return s.net }
func (s *Seicho) Event() SeichoEvent  { return s.event }
func (s *Seicho) EventResolved() bool { return s.event == EventNone || s.resolved }
func (s *Seicho) GasCycles() int      { return s.gasCycles }
func (s *Seicho) Drained() bool       { return s.drained }
func (s *Seicho) BugsRemaining() int  { return s.bugQuota - s.bugRemoved }
func (s *Seicho) BugsOnField() []Bug  { return append([]Bug(nil), s.bugs...) }
func (s *Seicho) pending() bool       { return s.event != EventNone && !s.resolved }

func (s *Seicho) expect(e SeichoEvent) error {
	if err := s.active(); err != nil {
		return err
	}
	if s.event != e || s.resolved {
		return ErrWrongPhase
	}
	return nil
}

func (s *Seicho) enterDay() {
	s.sched.StopAll()
	s.event = seichoSchedule[s.day]
	s.resolved = false
	s.bugs = nil
	s.bugQuota, s.bugSpawned, s.bugRemoved = 0, 0, 0
	s.drained, s.gasCycles = false, 0

	if s.event == EventBug {
		s.bugQuota = 3 + s.rnd.Intn(3)
		s.spawnBug()
		var cancel func()
		cancel = s.sched.Every(BugSpawnInterval, func() {
			s.spawnBug()
			if s.bugSpawned >= s.bugQuota {
				cancel()
			}
		})
	}
}

func (s *Seicho) spawnBug() {
	if s.bugSpawned >= s.bugQuota {
		return
	}
	s.bugs = append(s.bugs, Bug{
		ID: s.bugSpawned,
		X:  10 + s.rnd.Float64()*80,
		Y:  20 + s.rnd.Float64()*60,
	})
	s.bugSpawned++
}

// RaiseNet moves the net to target. One notch is ideal; staying put or
// overshooting costs points.
func (s *Seicho) RaiseNet(target int) (NetResult, error) {
	if err := s.expect(EventNet); err != nil {
		return NetResult{}, err
	}
	res := NetResult{From: s.net, To: s.net, Delta: judgeNet(target - s.net)}
	if target > s.net {
		s.net = target
		res.To = target
	}
	s.award(res.Delta)
	s.resolved = true
	return res, nil
}

func judgeNet(delta int) int {
	switch {
	case delta < 0:
		return -10
	case delta == 0:
		return -5
	case delta == 1:
		return 10
	case delta == 2:
		return 5
	default:
		return -5
	}
}

func (s *Seicho) TapBug(id int) error {
	if err := s.expect(EventBug); err != nil {
		return err
	}
	for i, b := range s.bugs {
		if b.ID == id {
			s.bugs = append(s.bugs[:i], s.bugs[i+1:]...)
			s.bugRemoved++
			s.award(2)
			return nil
		}
	}
	return ErrOutOfRange
}

// EndBugs closes the bug event; every bug of the day's quota not removed
// costs 5, including ones that never got to spawn.
func (s *Seicho) EndBugs() (int, error) {
	if err := s.expect(EventBug); err != nil {
		return 0, err
	}
	penalty := -5 * (s.bugQuota - s.bugRemoved)
	s.award(penalty)
	s.sched.StopAll()
	s.bugs = nil
	s.resolved = true
	return penalty, nil
}

// ToggleDrain alternates between draining and flooding the field. A drain
// followed by a flood is one cycle.
func (s *Seicho) ToggleDrain() error {
	if err := s.expect(EventGas); err != nil {
		return err
	}
	if s.drained {
		s.gasCycles++
	}
	s.drained = !s.drained
	return nil
}

func (s *Seicho) FinishGas() (int, error) {
	if err := s.expect(EventGas); err != nil {
		return 0, err
	}
	delta := -5
	switch {
	case s.gasCycles >= 2:
		delta = 10
	case s.gasCycles == 1:
		delta = 5
	}
	s.award(delta)
	s.resolved = true
	return delta, nil
}

func (s *Seicho) AckTyphoon() error {
	if err := s.expect(EventTyphoon); err != nil {
		return err
	}
	s.award(5)
	s.resolved = true
	return nil
}

// NextDay always moves on. An unattended net costs 10; other open events
// lapse. Leaving the last day completes the stage.
func (s *Seicho) NextDay() error {
	if err := s.active(); err != nil {
		return err
	}
	if s.pending() && s.event == EventNet {
		s.award(-10)
	}
	s.resolved = true
	if s.day >= s.lastDay {
		s.finish()
		return nil
	}
	s.day++
	s.enterDay()
	s.nextDay()
	return nil
}
