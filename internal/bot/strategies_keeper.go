package bot

import (
	"tilequeue/internal/app"
	"tilequeue/internal/domain"
)

// KeeperBot reserves wanted kinds while the stack has room and spends them
// when the queue front is unwanted.
type KeeperBot struct {
	Tuning Tuning
}

func (b *KeeperBot) ChooseMove(board domain.Board) Move {
	if !board.CanPlay() {
		// Empty queue: move the reserve back into the queue, or spend it.
		if board.CanInvert() && len(board.Stack) > 0 {
			return Move{Op: app.OpInvert}
		}
		if board.CanUseReserved() {
			return Move{Op: app.OpUseReserved}
		}
		return Move{}
	}

	front := board.Queue[0]
	if b.Tuning.wants(front.Kind) && board.CanReserve() {
		return Move{Op: app.OpReserve}
	}
	if !b.Tuning.wants(front.Kind) && board.CanUseReserved() && b.Tuning.wants(board.Stack[0].Kind) {
		return Move{Op: app.OpUseReserved}
	}
	return Move{Op: app.OpPlay}
}
