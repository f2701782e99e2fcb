// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	// Поле
	GridWidth    = 30
	GridHeight   = 20
	CellSize     = 36.0
	FieldOffsetX = (ScreenWidth - GridWidth*CellSize) / 2
	FieldOffsetY = 40.0

	// Зона спавна — первые колонки, зона выхода — прямоугольник у правого края.
	SpawnZoneWidth = 2
	ExitZoneWidth  = 2
	ExitZoneHeight = 4

	// Игрок
	StartingMoney = 250
	StartingLives = 20

	// Экономика
	SellFraction     = 0.6
	WaveBonusBase    = 25
	WaveBonusPerWave = 5

	// Апгрейды: линейный рост от базовых характеристик.
	MaxTowerLevel    = 3
	DamagePerLevel   = 0.35
	RangePerLevel    = 0.15
	FireRatePerLevel = 0.25

	// Броня: reduction = armor / (armor + ArmorSoftCap).
	ArmorSoftCap = 100.0

	// Движение врагов
	EnemyRadius            = 10.0
	SeparationRadius       = 22.0
	SeparationWeight       = 0.55
	MaxSeparationNeighbors = 6
	CenteringWeight        = 0.45
	CorridorScanCells      = 3
	CorridorDeadZone       = 0.25
	WallPushWeight         = 0.9
	HeadingSmoothing       = 0.7 // доля нового направления в низкочастотном фильтре
	StuckSpeedThreshold    = 2.0 // пикселей за кадр, ниже — копим время застревания
	StuckTimeout           = 3.5
	RecoveryCellCount      = 4
	FlyingWobbleAmplitude  = 0.35
	FlyingWobbleFrequency  = 2.2

	// Волны
	SpawnsPerFrameCap  = 4
	MaxLiveEnemies     = 200
	BossWavePeriod     = 10
	LevelTierInterval  = 5
	MaxEnemiesPerWave  = 60
	WaveGrowthEarly    = 1.35 // волны 1-10
	WaveGrowthMid      = 1.12 // волны 11-25
	WaveGrowthLate     = 1.05 // дальше
	WaveBreakpointMid  = 10
	WaveBreakpointLate = 25
	BaseWaveEnemyCount = 5
	TotalWaves         = 40

	// Здоровье и награда врагов растут с уровнем линейно от базы.
	EnemyHealthPerLevel = 0.45
	EnemyBountyPerLevel = 0.25

	ProjectileSpeed  = 340.0
	ProjectileRadius = 4.0

	SlowPulseInterval = 0.8

	// UI
	IndicatorOffsetX   = 30
	IndicatorRadius    = 10.0
	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 18.0
)

// SpeedMultipliers — доступные скорости игры (переключаются по кругу).
var SpeedMultipliers = []float64{1.0, 2.0, 4.0}

// UpgradeCostFractions — стоимость апгрейда на уровень N как доля базовой цены.
var UpgradeCostFractions = []float64{0.4, 0.5, 0.6}

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	WalkableColor   = color.RGBA{44, 52, 64, 255}
	BlockedColor    = color.RGBA{150, 70, 70, 220}
	SpawnZoneColor  = color.RGBA{40, 90, 50, 255}
	ExitZoneColor   = color.RGBA{110, 45, 45, 255}
	GridLineColor   = color.RGBA{60, 68, 82, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	RangeColor      = color.RGBA{200, 200, 220, 60}
	BeamColor       = color.RGBA{255, 230, 120, 200}
	BuffLinkColor   = color.RGBA{120, 220, 160, 120}
	HealthBackColor = color.RGBA{40, 40, 40, 255}
	HealthFillColor = color.RGBA{60, 200, 80, 255}
	PausedTintColor = color.RGBA{0, 0, 0, 128}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},
		color.RGBA{220, 60, 60, 220},
		color.RGBA{194, 178, 128, 255},
	}
)
