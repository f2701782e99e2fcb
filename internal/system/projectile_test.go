package system

import (
	"testing"

	"github.com/Bassie1994/Towerz-sub000/internal/component"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
	"github.com/Bassie1994/Towerz-sub000/internal/entity"
	"github.com/Bassie1994/Towerz-sub000/internal/event"
	"github.com/Bassie1994/Towerz-sub000/internal/types"
)

type projectileFixture struct {
	sys *ProjectileSystem
	ecs *entity.ECS
	rec *eventRecorder
}

func newProjectileFixture(t *testing.T) *projectileFixture {
	t.Helper()
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.EnemyKilled, rec)
	return &projectileFixture{sys: NewProjectileSystem(ecs, dispatcher), ecs: ecs, rec: rec}
}

func (f *projectileFixture) addEnemy(x, y float64, health int, category defs.EnemyCategory) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Positions[id] = &component.Position{X: x, Y: y}
	f.ecs.Healths[id] = &component.Health{Current: health, Max: health}
	f.ecs.Enemies[id] = &component.Enemy{Category: category}
	return id
}

func (f *projectileFixture) addProjectile(x, y float64, target types.EntityID, proj component.Projectile) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Positions[id] = &component.Position{X: x, Y: y}
	p := proj
	p.TargetID = target
	if tpos, ok := f.ecs.Positions[target]; ok {
		p.LastX, p.LastY = tpos.X, tpos.Y
	}
	f.ecs.Projectiles[id] = &p
	return id
}

func TestProjectile_MovesTowardTargetAtFixedSpeed(t *testing.T) {
	f := newProjectileFixture(t)
	enemy := f.addEnemy(100, 0, 500, defs.CategoryInfantry)
	projID := f.addProjectile(0, 0, enemy, component.Projectile{Speed: 100, Damage: 10})

	f.sys.Update(0.1, 1.0)
	pos := f.ecs.Positions[projID]
	if pos.X != 10 || pos.Y != 0 {
		t.Fatalf("projectile should cover speed*dt toward the target, got (%f, %f)", pos.X, pos.Y)
	}
	if f.ecs.Healths[enemy].Current != 500 {
		t.Fatal("no damage before impact")
	}
}

func TestProjectile_ImpactDamagesAndRemoves(t *testing.T) {
	f := newProjectileFixture(t)
	enemy := f.addEnemy(5, 0, 500, defs.CategoryInfantry)
	projID := f.addProjectile(0, 0, enemy, component.Projectile{Speed: 100, Damage: 10})

	f.sys.Update(0.1, 1.0)
	if f.ecs.Healths[enemy].Current != 490 {
		t.Fatalf("impact should apply full damage, health = %d", f.ecs.Healths[enemy].Current)
	}
	if _, ok := f.ecs.Projectiles[projID]; ok {
		t.Fatal("projectile must be removed on impact")
	}
}

func TestProjectile_DeadTargetSingleShotMisses(t *testing.T) {
	f := newProjectileFixture(t)
	enemy := f.addEnemy(5, 0, 500, defs.CategoryInfantry)
	projID := f.addProjectile(0, 0, enemy, component.Projectile{Speed: 100, Damage: 10})
	f.ecs.Enemies[enemy].Dead = true

	f.sys.Update(0.1, 1.0)
	if f.ecs.Healths[enemy].Current != 500 {
		t.Fatal("single-target shot against a dead enemy is a miss")
	}
	if _, ok := f.ecs.Projectiles[projID]; ok {
		t.Fatal("projectile still despawns at the last known position")
	}
}

func TestProjectile_DeadTargetSplashStillExplodes(t *testing.T) {
	f := newProjectileFixture(t)
	primary := f.addEnemy(5, 0, 500, defs.CategoryInfantry)
	bystander := f.addEnemy(5, 3, 500, defs.CategoryInfantry)
	f.addProjectile(0, 0, primary, component.Projectile{
		Speed: 100, Damage: 20, SplashRadius: 10, SplashFalloff: 0.5,
	})
	f.ecs.Enemies[primary].Dead = true

	f.sys.Update(0.1, 1.0)
	if f.ecs.Healths[bystander].Current >= 500 {
		t.Fatal("splash should still explode at the last known position")
	}
}

func TestProjectile_SplashFalloffScalesWithDistance(t *testing.T) {
	f := newProjectileFixture(t)
	center := f.addEnemy(0, 0, 500, defs.CategoryInfantry)
	edge := f.addEnemy(10, 0, 500, defs.CategoryInfantry)
	far := f.addEnemy(30, 0, 500, defs.CategoryInfantry)
	f.addProjectile(0, 0, center, component.Projectile{
		Speed: 100, Damage: 100, SplashRadius: 10, SplashFalloff: 0.5,
	})

	f.sys.Update(0.1, 1.0)
	if got := 500 - f.ecs.Healths[center].Current; got != 100 {
		t.Fatalf("epicenter takes full damage, got %d", got)
	}
	// На краю радиуса остаётся damage * (1 - falloff).
	if got := 500 - f.ecs.Healths[edge].Current; got != 50 {
		t.Fatalf("edge of the blast should take 50, got %d", got)
	}
	if f.ecs.Healths[far].Current != 500 {
		t.Fatal("enemies outside the radius stay untouched")
	}
}

func TestProjectile_SplashRespectsFlyingFilter(t *testing.T) {
	f := newProjectileFixture(t)
	walker := f.addEnemy(0, 0, 500, defs.CategoryInfantry)
	flyer := f.addEnemy(2, 0, 500, defs.CategoryFlying)
	f.addProjectile(0, 0, walker, component.Projectile{
		Speed: 100, Damage: 20, SplashRadius: 10, CanHitFlying: false,
	})

	f.sys.Update(0.1, 1.0)
	if f.ecs.Healths[walker].Current >= 500 {
		t.Fatal("ground enemy should be hit")
	}
	if f.ecs.Healths[flyer].Current != 500 {
		t.Fatal("ground-only splash must not touch flyers")
	}
}

func TestProjectile_TracksMovingTarget(t *testing.T) {
	f := newProjectileFixture(t)
	enemy := f.addEnemy(50, 0, 500, defs.CategoryInfantry)
	projID := f.addProjectile(0, 0, enemy, component.Projectile{Speed: 100, Damage: 10})

	f.sys.Update(0.1, 1.0)
	f.ecs.Positions[enemy].Y = 40

	f.sys.Update(0.1, 1.1)
	pos := f.ecs.Positions[projID]
	if pos.Y <= 0 {
		t.Fatal("projectile should home toward the target's new position")
	}
}
