package bench

import (
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-minimax/internal/render"
)

// first terminal row used by the per-worker progress lines
const statsRowStart = 2

// ListenerLike receives arena events. Every worker gets its own Clone,
// Summary and OnEnd are called once, after all workers are done.
type ListenerLike interface {
	SetRow(row int)
	OnStart()
	OnGameStart(info VersusWorkerInfo)
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
	OnEnd()
	Clone() ListenerLike
}

// DefaultListener ignores every event
type DefaultListener struct{}

func (DefaultListener) SetRow(int) {}
func (DefaultListener) OnStart() {}
func (DefaultListener) OnGameStart(VersusWorkerInfo) {}
func (DefaultListener) OnMoveMade(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedGame(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (DefaultListener) Summary(VersusSummaryInfo) {}
func (DefaultListener) OnEnd() {}
func (d DefaultListener) Clone() ListenerLike { return d }

// LogListener writes finished games and the summary to a zap logger
type LogListener struct {
	DefaultListener
	log *zap.Logger
	row int
}

func NewLogListener(log *zap.Logger) *LogListener {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogListener{log: log}
}

func (l *LogListener) SetRow(row int) {
	l.row = row
	l.log = l.log.With(zap.Int("worker", row-statsRowStart))
}

func (l *LogListener) OnMoveMade(info VersusWorkerInfo) {
	l.log.Debug("move",
		zap.String("game", info.GameID.String()),
		zap.Int("ply", info.GameMoveNum),
		zap.Stringer("pos", info.Moves[len(info.Moves)-1]),
		zap.String("board", info.Board.Notation()),
	)
}

func (l *LogListener) OnFinishedGame(info VersusWorkerInfo) {
	l.log.Info("game finished",
		zap.String("game", info.GameID.String()),
		zap.Stringer("winner", info.Result),
		zap.Bool("player1First", info.P1WentFirst),
		zap.String("board", info.Board.Notation()),
		zap.Int("moves", info.GameMoveNum),
	)
}

func (l *LogListener) OnFinishedWork(info VersusWorkerInfo) {
	l.log.Info("worker finished",
		zap.Int("games", info.NGames),
		zap.Int("player1Wins", info.P1Wins),
		zap.Int("player2Wins", info.P2Wins),
		zap.Int("draws", info.Draws),
	)
}

func (l *LogListener) Summary(summary VersusSummaryInfo) {
	l.log.Info("arena summary",
		zap.String("player1", summary.P1Name),
		zap.String("player2", summary.P2Name),
		zap.Int("games", summary.TotalGames),
		zap.Int("player1Wins", summary.P1Wins),
		zap.Int("player2Wins", summary.P2Wins),
		zap.Int("draws", summary.Draws),
		zap.Int("firstToMoveWins", summary.FirstToMoveWins),
		zap.Int("secondToMoveWins", summary.SecondToMoveWins),
	)
}

func (l *LogListener) Clone() ListenerLike {
	clone := *l
	return &clone
}

// TermListener draws one progress line per worker, then the summary
type TermListener struct {
	DefaultListener
	renderer *render.Renderer
	mu       *sync.Mutex
	row      int
	workers  *int
}

func NewTermListener(w io.Writer) *TermListener {
	return &TermListener{
		renderer: render.New(termenv.NewOutput(w)),
		mu:       &sync.Mutex{},
		workers:  new(int),
	}
}

func (l *TermListener) SetRow(row int) {
	l.row = row
	l.mu.Lock()
	*l.workers = max(*l.workers, row-statsRowStart+1)
	l.mu.Unlock()
}

func (l *TermListener) OnStart() {
	out := l.renderer.Output()
	out.ClearScreen()
	out.HideCursor()
	out.MoveCursor(1, 1)
	_, _ = out.WriteString(l.renderer.Styled("arena", l.renderer.Palette().Info))
}

func (l *TermListener) OnFinishedGame(info VersusWorkerInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.renderer.Palette()
	out := l.renderer.Output()
	out.MoveCursor(l.row, 1)
	out.ClearLine()
	_, _ = out.WriteString(
		fmt.Sprintf("worker %d: %d/%d  %s  %s  %s",
			info.WorkerID, info.FinishedGames+1, info.NGames,
			l.renderer.Styled(fmt.Sprintf("%s %d", info.P1Name, info.P1Wins), p.Cross),
			l.renderer.Styled(fmt.Sprintf("%s %d", info.P2Name, info.P2Wins), p.Circle),
			l.renderer.Styled(fmt.Sprintf("draws %d", info.Draws), p.Draw),
		),
	)
}

func (l *TermListener) Summary(summary VersusSummaryInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.renderer.Palette()
	out := l.renderer.Output()
	out.MoveCursor(statsRowStart+*l.workers+1, 1)
	_, _ = out.WriteString(
		fmt.Sprintf("total %d: %s  %s  %s\n",
			summary.TotalGames,
			l.renderer.Styled(fmt.Sprintf("%s %d", summary.P1Name, summary.P1Wins), p.Cross),
			l.renderer.Styled(fmt.Sprintf("%s %d", summary.P2Name, summary.P2Wins), p.Circle),
			l.renderer.Styled(fmt.Sprintf("draws %d", summary.Draws), p.Draw),
		),
	)
}

func (l *TermListener) OnEnd() {
	l.renderer.Output().ShowCursor()
}

func (l *TermListener) Clone() ListenerLike {
	clone := *l
	return &clone
}
