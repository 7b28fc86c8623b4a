package component

import "mesoquest/internal/ecs"

const CProgression ecs.ComponentType = 5

// Stat names an allocatable attribute.
type Stat uint8

const (
	StatSTR Stat = iota
	StatVIT
)

func (s Stat) String() string {
	if s == StatVIT {
		return "VIT"
	}
	return "STR"
}

type Progression struct {
	Level      int
	Exp        float64
	ExpToNext  int
	StatPoints int
	STR, VIT   int
	BaseMaxHP  int
}

func (Progression) Type() ecs.ComponentType { return CProgression }
