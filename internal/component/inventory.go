package component

import "mesoquest/internal/ecs"

const CWallet ecs.ComponentType = 6

// Wallet holds the player's mesos and owned potion counts keyed by potion id.
type Wallet struct {
	Mesos int
	Owned map[string]int
}

func (Wallet) Type() ecs.ComponentType { return CWallet }
