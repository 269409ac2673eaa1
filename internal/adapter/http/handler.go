package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route"

	"igusafarm/internal/app/play"
	"igusafarm/internal/app/ports"
	"igusafarm/internal/domain/game"
	"igusafarm/internal/domain/minigame"
	"igusafarm/internal/domain/quiz"
)

var ErrUnknownVariety = errors.New("unknown variety")

// Checker reports the health of one backing service.
type Checker interface {
	Check(ctx context.Context) error
}

type Handler struct {
	Session *play.Session
	Metrics metricsSnapshotProvider
	Health  map[string]Checker

	// AllowOrigin is the CORS origin; empty allows any.
	AllowOrigin string
}

type metricsSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) RegisterRoutes(r route.IRouter) {
	r.Use(corsPolicy{origin: h.AllowOrigin}.middleware())

	g := r.Group("/api/game")
	g.GET("/state", h.state)
	g.POST("/start", h.start)
	g.POST("/reset", h.reset)
	g.POST("/next-day", h.nextDay)
	g.POST("/complete-stage", h.completeStage)
	g.POST("/dispatch", h.dispatch)
	g.GET("/quiz", h.quiz)
	g.POST("/quiz/answer", h.answerQuiz)
	g.GET("/result", h.result)
	g.GET("/stage", h.stageView)
	g.POST("/stage/mount", h.mount)
	g.POST("/stage/unmount", h.unmount)
	g.POST("/stage/input", h.input)

	catalog := r.Group("/api/catalog")
	catalog.GET("/stages", h.stages)
	catalog.GET("/badges", h.badges)
	catalog.GET("/varieties", h.varieties)
	catalog.GET("/hints/:stage", h.hint)

	r.GET("/ops/metrics", h.metrics)
	r.GET("/healthz", h.healthz)
}

type startRequest struct {
	Variety string `json:"variety,omitempty"`
}

type completeStageRequest struct {
	Score int `json:"score"`
}

type answerRequest struct {
	Index int `json:"index"`
}

// quizResponse leaves out the answer.
type quizResponse struct {
	ID       string        `json:"id"`
	Category quiz.Category `json:"category"`
	Question string        `json:"question"`
	Options  []string      `json:"options"`
}

type inputResponse struct {
	Result any            `json:"result,omitempty"`
	Stage  map[string]any `json:"stage,omitempty"`
	Status play.Status    `json:"status"`
}

func (h Handler) state(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Session.Status())
}

func (h Handler) start(_ context.Context, ctx *app.RequestContext) {
	var body startRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	variety := game.Variety(body.Variety)
	if variety != "" && !game.IsKnownVariety(variety) {
		writeError(ctx, ErrUnknownVariety)
		return
	}
	h.Session.StartGame(variety)
	ctx.JSON(consts.StatusOK, h.Session.Status())
}

func (h Handler) reset(_ context.Context, ctx *app.RequestContext) {
	h.Session.Reset()
	ctx.JSON(consts.StatusOK, h.Session.Status())
}

func (h Handler) nextDay(_ context.Context, ctx *app.RequestContext) {
	if err := h.Session.NextDay(); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, h.Session.Status())
}

func (h Handler) completeStage(_ context.Context, ctx *app.RequestContext) {
	var body completeStageRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.Session.CompleteStage(body.Score)
	ctx.JSON(consts.StatusOK, h.Session.Status())
}

func (h Handler) dispatch(_ context.Context, ctx *app.RequestContext) {
	var action game.Action
	if err := decodeJSON(ctx, &action); err != nil || action.Type == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := h.Session.Dispatch(action); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, h.Session.Status())
}

func (h Handler) quiz(_ context.Context, ctx *app.RequestContext) {
	q, ok := h.Session.PendingQuiz()
	if !ok {
		writeError(ctx, play.ErrNoQuiz)
		return
	}
	ctx.JSON(consts.StatusOK, quizResponse{
		ID:       q.ID,
		Category: q.Category,
		Question: q.Question,
		Options:  q.Options,
	})
}

func (h Handler) answerQuiz(_ context.Context, ctx *app.RequestContext) {
	var body answerRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	res, err := h.Session.AnswerQuiz(body.Index)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, res)
}

func (h Handler) result(_ context.Context, ctx *app.RequestContext) {
	res, err := h.Session.Result()
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, res)
}

func (h Handler) stageView(_ context.Context, ctx *app.RequestContext) {
	view, err := h.Session.StageView()
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, view)
}

func (h Handler) mount(c context.Context, ctx *app.RequestContext) {
	if _, err := h.Session.MountStage(); err != nil {
		writeError(ctx, err)
		return
	}
	h.stageView(c, ctx)
}

func (h Handler) unmount(_ context.Context, ctx *app.RequestContext) {
	h.Session.Unmount()
	ctx.JSON(consts.StatusOK, h.Session.Status())
}

func (h Handler) input(_ context.Context, ctx *app.RequestContext) {
	var in play.Input
	if err := decodeJSON(ctx, &in); err != nil || in.Op == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	out, err := h.Session.Input(in)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp := inputResponse{Result: out, Status: h.Session.Status()}
	// a finishing input unmounts the stage
	if view, err := h.Session.StageView(); err == nil {
		resp.Stage = view
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) stages(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"stages": game.Stages()})
}

func (h Handler) badges(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"badges": game.Badges()})
}

func (h Handler) varieties(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"varieties": game.Varieties()})
}

func (h Handler) hint(_ context.Context, ctx *app.RequestContext) {
	hint, ok := game.HintForStage(game.StageID(ctx.Param("stage")))
	if !ok {
		writeError(ctx, minigame.ErrUnknownStage)
		return
	}
	ctx.JSON(consts.StatusOK, hint)
}

func (h Handler) metrics(_ context.Context, ctx *app.RequestContext) {
	if h.Metrics == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "metrics provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.Metrics.SnapshotAny())
}

func (h Handler) healthz(c context.Context, ctx *app.RequestContext) {
	checkCtx, cancel := context.WithTimeout(c, 3*time.Second)
	defer cancel()

	status := consts.StatusOK
	checks := make(map[string]string, len(h.Health))
	for name, checker := range h.Health {
		checks[name] = "ok"
		if err := checker.Check(checkCtx); err != nil {
			checks[name] = "error"
			status = consts.StatusServiceUnavailable
		}
	}
	ctx.JSON(status, map[string]any{"checks": checks})
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, play.ErrDebugDisabled):
		writeErrorBody(ctx, consts.StatusForbidden, "debug_disabled", err.Error())
	case errors.Is(err, play.ErrNoQuiz):
		writeErrorBody(ctx, consts.StatusNotFound, "no_quiz", err.Error())
	case errors.Is(err, play.ErrQuizPending):
		writeErrorBody(ctx, consts.StatusConflict, "quiz_pending", err.Error())
	case errors.Is(err, play.ErrNotMounted):
		writeErrorBody(ctx, consts.StatusConflict, "stage_not_mounted", err.Error())
	case errors.Is(err, play.ErrGameCompleted):
		writeErrorBody(ctx, consts.StatusConflict, "game_completed", err.Error())
	case errors.Is(err, play.ErrGameInProgress):
		writeErrorBody(ctx, consts.StatusConflict, "game_in_progress", err.Error())
	case errors.Is(err, play.ErrStageMounted):
		writeErrorBody(ctx, consts.StatusConflict, "stage_mounted", err.Error())
	case errors.Is(err, minigame.ErrWrongPhase):
		writeErrorBody(ctx, consts.StatusConflict, "wrong_phase", err.Error())
	case errors.Is(err, minigame.ErrStageFinished):
		writeErrorBody(ctx, consts.StatusConflict, "stage_finished", err.Error())
	case errors.Is(err, minigame.ErrNoEvent):
		writeErrorBody(ctx, consts.StatusConflict, "no_event", err.Error())
	case errors.Is(err, minigame.ErrTooFewFound):
		writeErrorBody(ctx, consts.StatusConflict, "too_few_found", err.Error())
	case errors.Is(err, minigame.ErrAlreadyDecided):
		writeErrorBody(ctx, consts.StatusConflict, "already_decided", err.Error())
	case errors.Is(err, minigame.ErrUnknownStage):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_stage", err.Error())
	case errors.Is(err, ErrUnknownVariety):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_variety", err.Error())
	case errors.Is(err, play.ErrUnknownInput):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_input", err.Error())
	case errors.Is(err, play.ErrInvalidAnswer),
		errors.Is(err, minigame.ErrInvalidCut),
		errors.Is(err, minigame.ErrOutOfRange):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
