// internal/component/enemy.go
package component

import "github.com/Bassie1994/Towerz-sub000/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID    string
	Category defs.EnemyCategory
	Level    int
	Armor    int
	Bounty   int

	// Терминальные флаги; выставляются ровно один раз.
	Dead       bool
	ReachedEnd bool
}

// Health — компонент здоровья.
type Health struct {
	Current int
	Max     int
}
