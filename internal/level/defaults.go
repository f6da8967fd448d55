package level

import (
	_ "embed"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// DefaultTable returns the built-in difficulty table, used when the
// embedded YAML cannot be parsed (which would indicate a broken build).
func DefaultTable() Table {
	return Table{
		Levels: []Level{
			{
				Name:                "Hatchling",
				ScoreThreshold:      5,
				Gravity:             0.3,
				WallSpeed:           2.0,
				GapSize:             220,
				WallSpacing:         380,
				EnemySpeed:          1.5,
				EnemySpawnFrames:    600,
				CoinSpawnChance:     0.6,
				MaxCoinsOnScreen:    3,
				CoinSpeedMultiplier: 1.0,
				CoinValue:           1,
				CoinMinGapFromWalls: 100,
				CoinYPadding:        50,
			},
			{
				Name:                "Cave Crawler",
				ScoreThreshold:      12,
				Gravity:             0.3,
				WallSpeed:           2.4,
				GapSize:             200,
				WallSpacing:         350,
				EnemySpeed:          1.8,
				EnemySpawnFrames:    500,
				CoinSpawnChance:     0.5,
				MaxCoinsOnScreen:    3,
				CoinSpeedMultiplier: 1.0,
				CoinValue:           1,
				CoinMinGapFromWalls: 100,
				CoinYPadding:        50,
			},
			{
				Name:                "Deep Dweller",
				ScoreThreshold:      22,
				Gravity:             0.34,
				WallSpeed:           2.8,
				GapSize:             185,
				WallSpacing:         330,
				EnemySpeed:          2.2,
				EnemySpawnFrames:    420,
				CoinSpawnChance:     0.5,
				MaxCoinsOnScreen:    4,
				CoinSpeedMultiplier: 1.1,
				CoinValue:           2,
				CoinMinGapFromWalls: 110,
				CoinYPadding:        50,
			},
			{
				Name:                "Lava Runner",
				ScoreThreshold:      35,
				Gravity:             0.38,
				FlapImpulse:         -6.4,
				WallSpeed:           3.2,
				GapSize:             170,
				WallSpacing:         310,
				EnemySpeed:          2.6,
				EnemySpawnFrames:    340,
				CoinSpawnChance:     0.45,
				MaxCoinsOnScreen:    4,
				CoinSpeedMultiplier: 1.2,
				CoinValue:           2,
				CoinMinGapFromWalls: 120,
				CoinYPadding:        55,
			},
			{
				Name:                "Apex Predator",
				ScoreThreshold:      50,
				Gravity:             0.42,
				FlapImpulse:         -6.8,
				WallSpeed:           3.6,
				GapSize:             160,
				WallSpacing:         290,
				EnemySpeed:          3.0,
				EnemySpawnFrames:    280,
				CoinSpawnChance:     0.4,
				MaxCoinsOnScreen:    5,
				CoinSpeedMultiplier: 1.3,
				CoinValue:           3,
				CoinMinGapFromWalls: 130,
				CoinYPadding:        60,
			},
		},
	}
}
