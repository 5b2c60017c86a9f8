package bot

import "tilequeue/internal/domain"

// Tuning lists the kinds a keeper holds on to.
type Tuning struct {
	Keep []domain.Kind
}

// DefaultTuning saves line and square pieces for later.
var DefaultTuning = Tuning{
	Keep: []domain.Kind{domain.KindI, domain.KindO},
}

func (t Tuning) wants(k domain.Kind) bool {
	for _, keep := range t.Keep {
		if k == keep {
			return true
		}
	}
	return false
}
