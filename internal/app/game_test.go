package app

import (
	"math"
	"testing"

	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/internal/event"
)

func TestGame_InitialState(t *testing.T) {
	g := newTestGame(t)
	if g.Phase() != PhasePreparing {
		t.Fatalf("new game should be preparing, got %v", g.Phase())
	}
	if g.Lives() != config.StartingLives {
		t.Fatalf("lives should be %d, got %d", config.StartingLives, g.Lives())
	}
	if g.Economy.Balance() != config.StartingMoney {
		t.Fatalf("balance should be %d, got %d", config.StartingMoney, g.Economy.Balance())
	}
	if g.Clock() != 0 {
		t.Fatal("clock starts at zero")
	}
}

func TestGame_StartWaveTransition(t *testing.T) {
	g := newTestGame(t)
	if !g.StartNextWave() {
		t.Fatal("first wave should start")
	}
	if g.Phase() != PhasePlaying {
		t.Fatalf("expected playing, got %v", g.Phase())
	}
	// Повторный запрос в бою — no-op.
	if g.StartNextWave() {
		t.Fatal("starting during a wave must be rejected")
	}
}

func TestGame_PauseFreezesClock(t *testing.T) {
	g := newTestGame(t)
	g.StartNextWave()
	g.Update(0.5)
	if math.Abs(g.Clock()-0.5) > 1e-9 {
		t.Fatalf("clock should accumulate, got %f", g.Clock())
	}

	g.TogglePause()
	if g.Phase() != PhasePaused {
		t.Fatalf("expected paused, got %v", g.Phase())
	}
	g.Update(0.5)
	if math.Abs(g.Clock()-0.5) > 1e-9 {
		t.Fatalf("paused clock must not advance, got %f", g.Clock())
	}

	g.TogglePause()
	if g.Phase() != PhasePlaying {
		t.Fatalf("unpause should resume playing, got %v", g.Phase())
	}
}

func TestGame_PauseIsNoopOutsidePlaying(t *testing.T) {
	g := newTestGame(t)
	g.TogglePause()
	if g.Phase() != PhasePreparing {
		t.Fatalf("pause outside playing must be a no-op, got %v", g.Phase())
	}
}

func TestGame_SpeedScalesClock(t *testing.T) {
	g := newTestGame(t)
	g.StartNextWave()

	g.CycleSpeed() // x2
	if g.Speed() != config.SpeedMultipliers[1] {
		t.Fatalf("expected speed %f, got %f", config.SpeedMultipliers[1], g.Speed())
	}
	g.Update(0.5)
	want := 0.5 * config.SpeedMultipliers[1]
	if math.Abs(g.Clock()-want) > 1e-9 {
		t.Fatalf("scaled clock should be %f, got %f", want, g.Clock())
	}

	// Полный круг возвращает к x1.
	for i := 1; i < len(config.SpeedMultipliers); i++ {
		g.CycleSpeed()
	}
	if g.Speed() != config.SpeedMultipliers[0] {
		t.Fatalf("speed should cycle back to %f, got %f", config.SpeedMultipliers[0], g.Speed())
	}
}

func TestGame_LeakCostsLifeAndGameOver(t *testing.T) {
	g := newTestGame(t)
	g.StartNextWave()

	g.Dispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: event.EnemyEventData{ID: 1}})
	if g.Lives() != config.StartingLives-1 {
		t.Fatalf("leak should cost one life, got %d", g.Lives())
	}

	for i := 0; i < config.StartingLives; i++ {
		g.Dispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: event.EnemyEventData{ID: 1}})
	}
	if g.Phase() != PhaseGameOver {
		t.Fatalf("exhausted lives should end the game, got %v", g.Phase())
	}
	if g.Lives() != 0 {
		t.Fatalf("lives clamp at 0, got %d", g.Lives())
	}

	// В терминальном состоянии симуляция стоит.
	clock := g.Clock()
	g.Update(0.5)
	if g.Clock() != clock {
		t.Fatal("game over must freeze the simulation")
	}
}

func TestGame_KillPaysBounty(t *testing.T) {
	g := newTestGame(t)
	before := g.Economy.Balance()
	g.Dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyEventData{ID: 1, Bounty: 8}})
	if g.Economy.Balance() != before+8 {
		t.Fatalf("kill bounty not paid: %d -> %d", before, g.Economy.Balance())
	}
}

func TestGame_WaveEndPaysBonusAndReturnsToPreparing(t *testing.T) {
	g := newTestGame(t)
	g.StartNextWave()
	before := g.Economy.Balance()

	g.Dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: 1})
	if g.Economy.Balance() != before+WaveCompletionBonus(1) {
		t.Fatalf("wave bonus not paid: %d -> %d", before, g.Economy.Balance())
	}
	if g.Phase() != PhasePreparing {
		t.Fatalf("after a wave the game should prepare the next one, got %v", g.Phase())
	}
}

func TestGame_RestartResetsEverything(t *testing.T) {
	g := newTestGame(t)
	g.StartNextWave()
	g.Update(1.0)
	g.Dispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: event.EnemyEventData{ID: 1}})

	g.Restart()
	if g.Phase() != PhasePreparing || g.Clock() != 0 || g.Lives() != config.StartingLives {
		t.Fatalf("restart should rebuild the session: phase=%v clock=%f lives=%d", g.Phase(), g.Clock(), g.Lives())
	}
	if g.Economy.Balance() != config.StartingMoney {
		t.Fatalf("restart should reset the balance, got %d", g.Economy.Balance())
	}
	if len(g.ECS.Enemies) != 0 {
		t.Fatal("restart should clear all entities")
	}
	if g.WaveSystem.WaveNumber() != 0 {
		t.Fatalf("restart should rewind the waves, got %d", g.WaveSystem.WaveNumber())
	}
}

func TestGame_UpdateSpawnsAfterWaveStart(t *testing.T) {
	g := newTestGame(t)
	g.StartNextWave()

	// Первые записи волны имеют нулевую задержку — пара тиков хватает.
	g.Update(0.1)
	g.Update(0.1)
	if len(g.ECS.Enemies) == 0 {
		t.Fatal("enemies should spawn once the wave is running")
	}
}
