// internal/event/types.go
package event

import "github.com/Bassie1994/Towerz-sub000/internal/types"

const (
	WaveStarted    EventType = "WaveStarted"    // Волна началась
	WaveEnded      EventType = "WaveEnded"      // Волна закончилась
	EnemySpawned   EventType = "EnemySpawned"   // Враг появился на поле
	EnemyKilled    EventType = "EnemyKilled"    // Враг уничтожен
	EnemyLeaked    EventType = "EnemyLeaked"    // Враг дошёл до выхода
	TowerPlaced    EventType = "TowerPlaced"    // Башня построена
	TowerSold      EventType = "TowerSold"      // Башня продана
	TowerUpgraded  EventType = "TowerUpgraded"  // Башня улучшена
	TowerFired     EventType = "TowerFired"     // Башня выстрелила (хук для звука/VFX)
	PurchaseFailed EventType = "PurchaseFailed" // Покупка отклонена
)

// EnemyEventData — полезная нагрузка событий EnemyKilled / EnemyLeaked.
type EnemyEventData struct {
	ID     types.EntityID
	Bounty int
}

// TowerEventData — полезная нагрузка башенных событий.
type TowerEventData struct {
	ID types.EntityID
}
