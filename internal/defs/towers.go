// internal/defs/towers.go
package defs

import "image/color"

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Archetype TowerArchetype `json:"archetype"`

	Cost     int     `json:"cost"`
	Damage   float64 `json:"damage"`
	Range    float64 `json:"range"`     // в клетках
	FireRate float64 `json:"fire_rate"` // выстрелов в секунду

	ArmorPenetration int  `json:"armor_penetration,omitempty"`
	CanHitFlying     bool `json:"can_hit_flying"`

	// Splash
	SplashRadius  float64 `json:"splash_radius,omitempty"` // в клетках
	SplashFalloff float64 `json:"splash_falloff,omitempty"`

	// Beam
	BeamWidth float64 `json:"beam_width,omitempty"` // в пикселях, полуширина луча

	// Slow field
	SlowFactor   float64 `json:"slow_factor,omitempty"`
	SlowDuration float64 `json:"slow_duration,omitempty"`

	// Support
	BuffDamage   float64 `json:"buff_damage,omitempty"`    // добавка к множителю урона
	BuffFireRate float64 `json:"buff_fire_rate,omitempty"` // добавка к множителю скорострельности
	BuffRange    float64 `json:"buff_range,omitempty"`     // добавка к множителю дальности

	Visuals TowerVisuals `json:"visuals"`
}

// TowerVisuals contains parameters for rendering a tower.
type TowerVisuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}

// TowerDefs is the library of all tower definitions, mapped by their ID.
var TowerDefs = map[string]TowerDefinition{
	"TOWER_ARROW": {
		ID: "TOWER_ARROW", Name: "Arrow", Archetype: ArchetypeProjectile,
		Cost: 50, Damage: 10, Range: 3.5, FireRate: 1.6,
		CanHitFlying: true,
		Visuals:      TowerVisuals{Color: color.RGBA{200, 60, 60, 255}, RadiusFactor: 0.34},
	},
	"TOWER_SNIPER": {
		ID: "TOWER_SNIPER", Name: "Sniper", Archetype: ArchetypeHitscan,
		Cost: 90, Damage: 32, Range: 6.0, FireRate: 0.5,
		ArmorPenetration: 80, CanHitFlying: true,
		Visuals: TowerVisuals{Color: color.RGBA{90, 200, 120, 255}, RadiusFactor: 0.3},
	},
	"TOWER_CANNON": {
		ID: "TOWER_CANNON", Name: "Cannon", Archetype: ArchetypeSplash,
		Cost: 110, Damage: 22, Range: 3.0, FireRate: 0.7,
		SplashRadius: 1.4, SplashFalloff: 0.6,
		// Стреляет по земле — летающих пропускает ещё на отборе целей.
		CanHitFlying: false,
		Visuals:      TowerVisuals{Color: color.RGBA{230, 150, 60, 255}, RadiusFactor: 0.38},
	},
	"TOWER_BEAM": {
		ID: "TOWER_BEAM", Name: "Lance", Archetype: ArchetypeBeam,
		Cost: 140, Damage: 14, Range: 4.5, FireRate: 1.0,
		BeamWidth: 14, CanHitFlying: true,
		Visuals: TowerVisuals{Color: color.RGBA{255, 230, 120, 255}, RadiusFactor: 0.3},
	},
	"TOWER_FROST": {
		ID: "TOWER_FROST", Name: "Frost", Archetype: ArchetypeSlowField,
		Cost: 70, Damage: 0, Range: 2.5, FireRate: 0, // урона нет, тикает своим таймером
		SlowFactor: 0.5, SlowDuration: 2.0, CanHitFlying: true,
		Visuals: TowerVisuals{Color: color.RGBA{80, 150, 255, 255}, RadiusFactor: 0.32},
	},
	"TOWER_BANNER": {
		ID: "TOWER_BANNER", Name: "Banner", Archetype: ArchetypeSupport,
		Cost: 120, Damage: 0, Range: 2.5, FireRate: 0,
		BuffDamage: 0.3, BuffFireRate: 0.2, BuffRange: 0.15,
		Visuals: TowerVisuals{Color: color.RGBA{180, 90, 230, 255}, RadiusFactor: 0.32},
	},
}
