package bench

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/IlikeChooros/go-minimax/pkg/policy"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

/*
Arena benchmark subpackage, plays a series of games between two automated
players. Who moves first is drawn at random for every game, from the empty
board that is the side playing cross.
*/

type VersusArena struct {
	VersusArenaStats
	Player1  Agent
	Player2  Agent
	NGames   uint
	NThreads uint
	Position ttt.Board
	wg       sync.WaitGroup
	done     chan struct{}
	summary  VersusSummaryInfo
	ctx      context.Context
}

func NewVersusArena(player1, player2 Agent) *VersusArena {
	return &VersusArena{
		Player1:  player1,
		Player2:  player2,
		NGames:   100,
		NThreads: 2,
		Position: ttt.NewBoard(),
		ctx:      context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(nGames uint, nThreads uint) {
	va.NGames = nGames
	va.NThreads = max(nThreads, 1)
}

// Wait for all workers, and the summary listener call, to finish
func (va *VersusArena) Wait() {
	if va.done != nil {
		<-va.done
	}
}

// Summary of the last run, valid after Wait returns
func (va *VersusArena) Summary() VersusSummaryInfo {
	return va.summary
}

// Start distributes the games equally between the workers, listener may be nil
func (va *VersusArena) Start(listener ListenerLike) error {
	if err := va.Position.Validate(); err != nil {
		return fmt.Errorf("arena: %w", err)
	}
	if va.Position.Classify().Terminal() {
		return fmt.Errorf("arena: starting position %s is terminal", va.Position.Notation())
	}
	if listener == nil {
		listener = DefaultListener{}
	}

	va.VersusArenaStats = VersusArenaStats{}
	va.done = make(chan struct{})
	listener.OnStart()

	nThreads := max(va.NThreads, 1)
	nGames := va.NGames / nThreads
	rest := va.NGames % nThreads
	listeners := make([]ListenerLike, nThreads)

	for i := range nThreads {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}

		listeners[i] = listener.Clone()
		listeners[i].SetRow(int(i) + statsRowStart)

		va.wg.Add(1)
		go va.worker(int(i), int(nGames+delta), listeners[i], policy.SeedGeneratorFn()+int64(i))
	}

	go func() {
		va.wg.Wait()
		va.summary = VersusSummaryInfo{
			TotalGames:       va.Total(),
			P1Wins:           va.P1Wins(),
			P2Wins:           va.P2Wins(),
			Draws:            va.Draws(),
			FirstToMoveWins:  va.FirstToMoveWins(),
			SecondToMoveWins: va.SecondToMoveWins(),
			Workers:          int(nThreads),
			P1Name:           va.Player1.Name,
			P2Name:           va.Player2.Name,
		}
		listener.Summary(va.summary)
		listener.OnEnd()
		close(va.done)
	}()
	return nil
}

func (va *VersusArena) worker(id, nGames int, listener ListenerLike, seed int64) {
	defer va.wg.Done()

	r := rand.New(rand.NewSource(seed))
	p1 := va.Player1.chooser(seed + 1)
	p2 := va.Player2.chooser(seed + 2)
	localStats := VersusArenaStats{}

	info := VersusWorkerInfo{
		WorkerID: id,
		NGames:   nGames,
		P1Name:   va.Player1.Name,
		P2Name:   va.Player2.Name,
	}

Loop:
	for i := range nGames {
		select {
		case <-va.ctx.Done():
			break Loop
		default:
		}

		p1WentFirst := r.Intn(2) == 0
		info.FinishedGames = i
		result, err := va.playGame(p1, p2, p1WentFirst, listener, info)
		if err != nil {
			// The arena only starts from legal, ongoing positions
			panic(fmt.Sprintf("[bench] worker %d: %v", id, err))
		}

		va.record(result, p1WentFirst)
		localStats.record(result, p1WentFirst)
		info.P1Wins, info.P2Wins, info.Draws = localStats.P1Wins(), localStats.P2Wins(), localStats.Draws()
	}

	info.FinishedGames = localStats.Total()
	listener.OnFinishedWork(info)
}

func (va *VersusArena) playGame(p1, p2 *policy.Chooser, p1WentFirst bool, listener ListenerLike, info VersusWorkerInfo) (VersusMatchResult, error) {
	board := va.Position
	turn := ttt.Cross
	if board.Count(ttt.Cross) > board.Count(ttt.Circle) {
		turn = ttt.Circle
	}

	p1Mark := turn.Opponent()
	if p1WentFirst {
		p1Mark = turn
	}

	info.GameID = uuid.New()
	info.P1WentFirst = p1WentFirst
	info.Moves = make([]ttt.PosType, 0, ttt.BoardSize)
	info.Board = board
	listener.OnGameStart(info)

	for !board.Classify().Terminal() {
		chooser, difficulty := p2, va.Player2.Difficulty
		if turn == p1Mark {
			chooser, difficulty = p1, va.Player1.Difficulty
		}

		mv, err := chooser.ChooseMove(board, difficulty, turn, turn.Opponent())
		if err != nil {
			return VersusDraw, err
		}

		board.Set(mv, turn)
		turn = turn.Opponent()

		info.Moves = append(info.Moves, mv)
		info.GameMoveNum = len(info.Moves)
		info.Board = board
		listener.OnMoveMade(info)
	}

	info.Result = agentResult(board.Classify(), p1Mark)
	listener.OnFinishedGame(info)
	return info.Result, nil
}
