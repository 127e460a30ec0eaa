// internal/component/game_state.go
package component

// GamePhase — итог партии.
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseWon
	PhaseLost
)

func (p GamePhase) String() string {
	switch p {
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "playing"
	}
}
