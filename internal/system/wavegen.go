// internal/system/wavegen.go
package system

import (
	"math"

	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
)

// SpawnGroup — группа волны: кого, сколько, какого уровня, с каким
// внутригрупповым интервалом и какой паузой перед следующей группой.
type SpawnGroup struct {
	EnemyID        string
	Count          int
	Level          int
	SpawnInterval  float64 // секунд между юнитами группы
	DelayAfter     float64 // пауза перед стартом следующей группы
	HealthOverride int     // 0 — здоровье из библиотеки по уровню
}

// WaveDefinition — сгенерированная волна.
type WaveDefinition struct {
	Number int
	Boss   bool
	Groups []SpawnGroup
}

// compositionStep — порог, с которого категория входит в состав волн.
// Порядок среза фиксирован: он же определяет порядок групп в волне.
var compositionSteps = []struct {
	FromWave int
	Category defs.EnemyCategory
	Weight   float64
}{
	{1, defs.CategoryInfantry, 1.0},
	{4, defs.CategoryArmored, 0.5},
	{7, defs.CategoryFlying, 0.35},
	{12, defs.CategoryShielded, 0.4},
	{16, defs.CategorySupport, 0.25},
}

// waveEnemyCount — итоговое число врагов волны: геометрический рост,
// сшитый из трёх режимов с фиксированными точками перелома, с потолком
// ради производительности.
func waveEnemyCount(waveNumber int) int {
	n := float64(config.BaseWaveEnemyCount)
	switch {
	case waveNumber <= config.WaveBreakpointMid:
		n *= math.Pow(config.WaveGrowthEarly, float64(waveNumber-1))
	case waveNumber <= config.WaveBreakpointLate:
		n *= math.Pow(config.WaveGrowthEarly, float64(config.WaveBreakpointMid-1)) *
			math.Pow(config.WaveGrowthMid, float64(waveNumber-config.WaveBreakpointMid))
	default:
		n *= math.Pow(config.WaveGrowthEarly, float64(config.WaveBreakpointMid-1)) *
			math.Pow(config.WaveGrowthMid, float64(config.WaveBreakpointLate-config.WaveBreakpointMid)) *
			math.Pow(config.WaveGrowthLate, float64(waveNumber-config.WaveBreakpointLate))
	}
	count := int(math.Round(n))
	if count > config.MaxEnemiesPerWave {
		count = config.MaxEnemiesPerWave
	}
	if count < 1 {
		count = 1
	}
	return count
}

// waveLevelTier — уровень врагов волны, растёт ступенями.
func waveLevelTier(waveNumber int) int {
	return 1 + (waveNumber-1)/config.LevelTierInterval
}

// waveComposition распределяет общее число врагов по активным категориям
// пропорционально весам. Остаток округления уходит первой категории.
func waveComposition(waveNumber, total int) []SpawnGroup {
	totalWeight := 0.0
	for _, step := range compositionSteps {
		if waveNumber >= step.FromWave {
			totalWeight += step.Weight
		}
	}

	level := waveLevelTier(waveNumber)
	var groups []SpawnGroup
	assigned := 0
	for _, step := range compositionSteps {
		if waveNumber < step.FromWave {
			continue
		}
		count := int(math.Floor(float64(total) * step.Weight / totalWeight))
		if count < 1 {
			count = 1
		}
		assigned += count
		groups = append(groups, SpawnGroup{
			EnemyID:       defs.EnemyIDByCategory[step.Category],
			Count:         count,
			Level:         level,
			SpawnInterval: 0.7,
			DelayAfter:    1.5,
		})
	}
	// Дотягиваем или срезаем остаток округления на первой группе.
	if len(groups) > 0 {
		groups[0].Count += total - assigned
		if groups[0].Count < 1 {
			groups[0].Count = 1
		}
	}
	return groups
}

// waveHPBudget — суммарный запас здоровья обычной волны с учётом уровня.
func waveHPBudget(waveNumber int) int {
	total := waveEnemyCount(waveNumber)
	budget := 0
	for _, g := range waveComposition(waveNumber, total) {
		def := defs.EnemyDefs[g.EnemyID]
		budget += g.Count * defs.ScaledHealth(def, g.Level, config.EnemyHealthPerLevel)
	}
	return budget
}

// GenerateWave порождает определение волны по её номеру. Каждая
// BossWavePeriod-я волна — босс: его здоровье равно бюджету здоровья
// предыдущей обычной волны, следом идёт пропорционально уменьшенный
// эскорт из обычных категорий.
func GenerateWave(waveNumber int) WaveDefinition {
	if waveNumber%config.BossWavePeriod == 0 {
		return generateBossWave(waveNumber)
	}
	total := waveEnemyCount(waveNumber)
	return WaveDefinition{
		Number: waveNumber,
		Groups: waveComposition(waveNumber, total),
	}
}

func generateBossWave(waveNumber int) WaveDefinition {
	level := waveLevelTier(waveNumber)
	budget := waveHPBudget(waveNumber - 1)

	groups := []SpawnGroup{{
		EnemyID:        "ENEMY_BOSS",
		Count:          1,
		Level:          level,
		SpawnInterval:  0,
		DelayAfter:     4.0,
		HealthOverride: budget,
	}}

	// Эскорт: состав предыдущей обычной волны, ужатый и масштабированный
	// уровнем босса.
	for _, g := range waveComposition(waveNumber-1, waveEnemyCount(waveNumber-1)) {
		escort := int(math.Ceil(float64(g.Count) * 0.25 * float64(level)))
		if escort < 1 {
			escort = 1
		}
		g.Count = escort
		g.SpawnInterval = 0.9
		g.DelayAfter = 2.0
		groups = append(groups, g)
	}

	return WaveDefinition{Number: waveNumber, Boss: true, Groups: groups}
}
