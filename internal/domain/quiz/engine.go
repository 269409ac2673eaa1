package quiz

import (
	"errors"
	"math/rand"
	"sync"
)

type Category string

const (
	CategoryEffect    Category = "effect"
	CategoryKnowledge Category = "knowledge"
	CategoryHistory   Category = "history"
)

var ErrUnknownCategory = errors.New("unknown quiz category")

type Quiz struct {
	ID           string   `json:"id"`
	Category     Category `json:"category"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// Rand is the subset of *rand.Rand the engine draws from.
type Rand interface {
	Intn(n int) int
}

// stageCategories is indexed by stage index modulo its length.
var stageCategories = []Category{
	CategoryKnowledge,
	CategoryKnowledge,
	CategoryEffect,
	CategoryKnowledge,
	CategoryKnowledge,
	CategoryEffect,
	CategoryHistory,
	CategoryHistory,
}

// Engine picks quizzes without repetition until a category's pool runs dry.
// The used set lives for one play session.
type Engine struct {
	mu   sync.Mutex
	rnd  Rand
	used map[string]struct{}
}

func NewEngine(rnd Rand) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}
	return &Engine{rnd: rnd, used: map[string]struct{}{}}
}

func CategoryForStage(stageIndex int) Category {
	n := len(stageCategories)
	return stageCategories[((stageIndex%n)+n)%n]
}

func (e *Engine) ForStage(stageIndex int) Quiz {
	q, _ := e.Random(CategoryForStage(stageIndex))
	return q
}

// Random returns a shuffled quiz from category, or from the whole bank when
// category is empty.
func (e *Engine) Random(category Category) (Quiz, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	filtered := byCategory(category)
	if len(filtered) == 0 {
		return Quiz{}, ErrUnknownCategory
	}
	pool := make([]Quiz, 0, len(filtered))
	for _, q := range filtered {
		if _, seen := e.used[q.ID]; !seen {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		pool = filtered
	}

	picked := pool[e.rnd.Intn(len(pool))]
	e.used[picked.ID] = struct{}{}
	return e.shuffle(picked), nil
}

func (e *Engine) Reset() {
	e.mu.Lock()
	e.used = map[string]struct{}{}
	e.mu.Unlock()
}

func (e *Engine) Used() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.used)
}

func Check(q Quiz, index int) bool {
	return index == q.CorrectIndex
}

func Bank() []Quiz {
	out := make([]Quiz, len(bank))
	for i, q := range bank {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

func ByID(id string) (Quiz, bool) {
	for _, q := range bank {
		if q.ID == id {
			q.Options = append([]string(nil), q.Options...)
			return q, true
		}
	}
	return Quiz{}, false
}

func byCategory(category Category) []Quiz {
	if category == "" {
		return bank
	}
	var out []Quiz
	for _, q := range bank {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

// shuffle permutes the options with Fisher-Yates and tracks where the
// correct answer landed.
func (e *Engine) shuffle(q Quiz) Quiz {
	order := make([]int, len(q.Options))
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := e.rnd.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	out := q
	out.Options = make([]string, len(order))
	for i, src := range order {
		out.Options[i] = q.Options[src]
		if src == q.CorrectIndex {
			out.CorrectIndex = i
		}
	}
	return out
}
