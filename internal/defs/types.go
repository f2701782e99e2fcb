// internal/defs/types.go
package defs

// EnemyCategory defines the broad class of an enemy.
type EnemyCategory string

const (
	CategoryInfantry EnemyCategory = "INFANTRY"
	CategoryArmored  EnemyCategory = "ARMORED"
	CategoryFlying   EnemyCategory = "FLYING"
	CategoryShielded EnemyCategory = "SHIELDED"
	CategorySupport  EnemyCategory = "SUPPORT"
	CategoryBoss     EnemyCategory = "BOSS"
)

// TowerArchetype defines how a tower resolves its attack.
type TowerArchetype string

const (
	ArchetypeProjectile TowerArchetype = "PROJECTILE" // одиночная цель, снаряд с подлётом
	ArchetypeHitscan    TowerArchetype = "HITSCAN"    // одиночная цель, мгновенно
	ArchetypeSplash     TowerArchetype = "SPLASH"     // область вокруг точки попадания
	ArchetypeBeam       TowerArchetype = "BEAM"       // пробивающий луч
	ArchetypeSlowField  TowerArchetype = "SLOW_FIELD" // периодический импульс замедления
	ArchetypeSupport    TowerArchetype = "SUPPORT"    // бафф соседних башен, не атакует
)

// TargetPriority is the player-selectable targeting policy.
type TargetPriority string

const (
	PriorityFirst     TargetPriority = "FIRST"     // дальше всех прошёл по полю
	PriorityLast      TargetPriority = "LAST"      // прошёл меньше всех
	PriorityStrongest TargetPriority = "STRONGEST" // больше всего текущего здоровья
	PriorityWeakest   TargetPriority = "WEAKEST"   // меньше всего текущего здоровья
	PriorityFastest   TargetPriority = "FASTEST"   // самая высокая эффективная скорость
)
