package system

import (
	"testing"

	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
)

func TestWaveEnemyCount_StartsAtBase(t *testing.T) {
	if got := waveEnemyCount(1); got != config.BaseWaveEnemyCount {
		t.Fatalf("wave 1 should have %d enemies, got %d", config.BaseWaveEnemyCount, got)
	}
}

func TestWaveEnemyCount_MonotonicUpToCap(t *testing.T) {
	prev := 0
	for wave := 1; wave <= config.TotalWaves; wave++ {
		got := waveEnemyCount(wave)
		if got < prev {
			t.Fatalf("enemy count dropped at wave %d: %d -> %d", wave, prev, got)
		}
		if got > config.MaxEnemiesPerWave {
			t.Fatalf("wave %d exceeds the cap: %d", wave, got)
		}
		prev = got
	}
}

func TestWaveEnemyCount_RegimesStitchContinuously(t *testing.T) {
	// На точках перелома кривая продолжается, а не перезапускается:
	// следующий режим растёт от достигнутого значения.
	atMid := waveEnemyCount(config.WaveBreakpointMid)
	afterMid := waveEnemyCount(config.WaveBreakpointMid + 1)
	if afterMid < atMid {
		t.Fatalf("count must not reset at the mid breakpoint: %d -> %d", atMid, afterMid)
	}
}

func TestWaveLevelTier_Steps(t *testing.T) {
	cases := map[int]int{1: 1, 5: 1, 6: 2, 10: 2, 11: 3, 16: 4}
	for wave, want := range cases {
		if got := waveLevelTier(wave); got != want {
			t.Fatalf("tier for wave %d: got %d, want %d", wave, got, want)
		}
	}
}

func TestWaveComposition_CountsSumToTotal(t *testing.T) {
	for _, wave := range []int{1, 4, 7, 12, 16, 25} {
		total := waveEnemyCount(wave)
		sum := 0
		for _, g := range waveComposition(wave, total) {
			if g.Count < 1 {
				t.Fatalf("wave %d has an empty group %+v", wave, g)
			}
			sum += g.Count
		}
		if sum < total {
			t.Fatalf("wave %d composition lost enemies: %d < %d", wave, sum, total)
		}
	}
}

func TestWaveComposition_CategoriesUnlockByWave(t *testing.T) {
	hasCategory := func(groups []SpawnGroup, cat defs.EnemyCategory) bool {
		id := defs.EnemyIDByCategory[cat]
		for _, g := range groups {
			if g.EnemyID == id {
				return true
			}
		}
		return false
	}

	early := waveComposition(3, waveEnemyCount(3))
	if hasCategory(early, defs.CategoryArmored) {
		t.Fatal("armored enemies must not appear before wave 4")
	}
	mid := waveComposition(12, waveEnemyCount(12))
	if !hasCategory(mid, defs.CategoryShielded) {
		t.Fatal("shielded enemies should appear from wave 12")
	}
	if !hasCategory(mid, defs.CategoryInfantry) {
		t.Fatal("infantry never leaves the mix")
	}
}

func TestGenerateWave_BossEveryPeriod(t *testing.T) {
	def := GenerateWave(config.BossWavePeriod)
	if !def.Boss {
		t.Fatalf("wave %d should be a boss wave", config.BossWavePeriod)
	}
	if GenerateWave(config.BossWavePeriod - 1).Boss {
		t.Fatal("ordinary wave flagged as boss")
	}
}

func TestGenerateWave_BossHealthEqualsPreviousWaveBudget(t *testing.T) {
	def := GenerateWave(config.BossWavePeriod)
	boss := def.Groups[0]
	if boss.EnemyID != "ENEMY_BOSS" || boss.Count != 1 {
		t.Fatalf("first group should be a single boss, got %+v", boss)
	}
	want := waveHPBudget(config.BossWavePeriod - 1)
	if want <= 0 {
		t.Fatal("previous wave budget should be positive")
	}
	if boss.HealthOverride != want {
		t.Fatalf("boss health override: got %d, want %d", boss.HealthOverride, want)
	}
}

func TestGenerateWave_BossHasEscort(t *testing.T) {
	def := GenerateWave(config.BossWavePeriod)
	if len(def.Groups) < 2 {
		t.Fatal("boss wave should include escort groups")
	}
	for _, g := range def.Groups[1:] {
		if g.Count < 1 {
			t.Fatalf("escort group must not be empty: %+v", g)
		}
		if g.HealthOverride != 0 {
			t.Fatal("escort health comes from the library, not an override")
		}
	}
}

func TestFlattenGroups_SortedByDelay(t *testing.T) {
	groups := []SpawnGroup{
		{EnemyID: "ENEMY_INFANTRY", Count: 3, SpawnInterval: 0.5, DelayAfter: 1.0},
		{EnemyID: "ENEMY_ARMORED", Count: 2, SpawnInterval: 1.0},
	}
	queue := flattenGroups(groups)
	if len(queue) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(queue))
	}
	for i := 1; i < len(queue); i++ {
		if queue[i].Delay < queue[i-1].Delay {
			t.Fatalf("queue not sorted at %d: %f < %f", i, queue[i].Delay, queue[i-1].Delay)
		}
	}
	// Вторая группа стартует после последней записи первой плюс пауза.
	if queue[3].EnemyID != "ENEMY_ARMORED" || queue[3].Delay != 2.0 {
		t.Fatalf("second group should start at 2.0, got %+v", queue[3])
	}
}
