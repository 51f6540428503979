// internal/event/types.go
package event

import (
	"go-core-defense/internal/defs"
	"go-core-defense/internal/types"
)

const (
	EnemyKilled      EventType = "EnemyKilled"      // enemy HP crossed zero
	EnemyReachedCore EventType = "EnemyReachedCore" // enemy breached the core boundary
	LevelUp          EventType = "LevelUp"
	GameOver         EventType = "GameOver"
	RunReset         EventType = "RunReset"
	Prestiged        EventType = "Prestiged"
	CurrencyDropped  EventType = "CurrencyDropped" // rare-currency collectible banked
)

// KillData is the payload of EnemyKilled.
type KillData struct {
	ID   types.EntityID
	Kind defs.EnemyKind
	X, Y float64
}

// BreachData is the payload of EnemyReachedCore.
type BreachData struct {
	ID     types.EntityID
	Damage float64 // equals the enemy's remaining HP at breach time
}

// DropData is the payload of CurrencyDropped.
type DropData struct {
	Currency defs.Currency
	Amount   float64
}
