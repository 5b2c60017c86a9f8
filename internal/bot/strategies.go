package bot

import (
	"math/rand"

	"tilequeue/internal/app"
	"tilequeue/internal/domain"
)

// RandomBot picks uniformly among the operations the board currently allows.
// It never undoes.
type RandomBot struct {
	rng *rand.Rand
}

func (b *RandomBot) ChooseMove(board domain.Board) Move {
	var options []app.Operation
	if board.CanPlay() {
		options = append(options, app.OpPlay)
	}
	if board.CanReserve() {
		options = append(options, app.OpReserve)
	}
	if board.CanUseReserved() {
		options = append(options, app.OpUseReserved)
	}
	if board.CanSwap() {
		options = append(options, app.OpSwap)
	}
	if board.CanInvert() {
		options = append(options, app.OpInvert)
	}
	if len(options) == 0 {
		return Move{}
	}
	return Move{Op: options[b.rng.Intn(len(options))]}
}
