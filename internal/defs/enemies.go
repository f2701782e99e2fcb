// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category EnemyCategory `json:"category"`
	Health   int           `json:"health"`
	Speed    float64       `json:"speed"`
	Armor    int           `json:"armor"`
	Bounty   int           `json:"bounty"`
	Visuals  EnemyVisuals  `json:"visuals"`
}

// EnemyVisuals contains parameters for rendering an enemy.
type EnemyVisuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}

// EnemyDefs is the library of all enemy definitions, mapped by their ID.
// Летающие намеренно заметно слабее наземных того же звена: они
// игнорируют лабиринт целиком, баланс держится на низком здоровье и награде.
var EnemyDefs = map[string]EnemyDefinition{
	"ENEMY_INFANTRY": {
		ID:       "ENEMY_INFANTRY",
		Name:     "Infantry",
		Category: CategoryInfantry,
		Health:   100,
		Speed:    80,
		Armor:    0,
		Bounty:   8,
		Visuals:  EnemyVisuals{Color: color.RGBA{200, 200, 200, 255}, RadiusFactor: 0.26},
	},
	"ENEMY_ARMORED": {
		ID:       "ENEMY_ARMORED",
		Name:     "Armored",
		Category: CategoryArmored,
		Health:   180,
		Speed:    55,
		Armor:    60,
		Bounty:   14,
		Visuals:  EnemyVisuals{Color: color.RGBA{130, 130, 160, 255}, RadiusFactor: 0.3},
	},
	"ENEMY_FLYING": {
		ID:       "ENEMY_FLYING",
		Name:     "Flyer",
		Category: CategoryFlying,
		Health:   55,
		Speed:    95,
		Armor:    0,
		Bounty:   6,
		Visuals:  EnemyVisuals{Color: color.RGBA{120, 200, 240, 255}, RadiusFactor: 0.22},
	},
	"ENEMY_SHIELDED": {
		ID:       "ENEMY_SHIELDED",
		Name:     "Shieldbearer",
		Category: CategoryShielded,
		Health:   140,
		Speed:    60,
		Armor:    120,
		Bounty:   16,
		Visuals:  EnemyVisuals{Color: color.RGBA{90, 110, 200, 255}, RadiusFactor: 0.3},
	},
	"ENEMY_SUPPORT": {
		ID:       "ENEMY_SUPPORT",
		Name:     "Bannerman",
		Category: CategorySupport,
		Health:   120,
		Speed:    70,
		Armor:    30,
		Bounty:   12,
		Visuals:  EnemyVisuals{Color: color.RGBA{220, 180, 90, 255}, RadiusFactor: 0.28},
	},
	"ENEMY_BOSS": {
		ID:       "ENEMY_BOSS",
		Name:     "Boss",
		Category: CategoryBoss,
		Health:   1500,
		Speed:    40,
		Armor:    150,
		Bounty:   120,
		Visuals:  EnemyVisuals{Color: color.RGBA{220, 60, 120, 255}, RadiusFactor: 0.44},
	},
}

// EnemyIDByCategory maps a category to its library entry.
var EnemyIDByCategory = map[EnemyCategory]string{
	CategoryInfantry: "ENEMY_INFANTRY",
	CategoryArmored:  "ENEMY_ARMORED",
	CategoryFlying:   "ENEMY_FLYING",
	CategoryShielded: "ENEMY_SHIELDED",
	CategorySupport:  "ENEMY_SUPPORT",
	CategoryBoss:     "ENEMY_BOSS",
}
