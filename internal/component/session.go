// internal/component/session.go
package component

import "go-survivors/internal/defs"

// Phase — фаза сессии.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseLevelUp
	PhaseGameOver
)

// Session — компонент состояния сессии. Симуляция продвигается
// только в PhasePlaying; команды в чужой фазе игнорируются.
type Session struct {
	Phase   Phase
	Offered []defs.UpgradeID // текущее предложение левел-апа, ровно 3 id
}
