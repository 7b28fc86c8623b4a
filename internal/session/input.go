package session

import (
	"github.com/gdamore/tcell/v2"

	"mesoquest/internal/game"
)

// Command is what a key press asks for.
type Command uint8

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
	CommandJump
	CommandAttack
	CommandInventory
	CommandStats
	CommandShop
	CommandNextTab
	CommandCloseShop
	CommandAddSTR
	CommandAddVIT
	CommandBuy
	CommandHelp
	CommandQuit
)

// keyToCommand maps a tcell key event to a command. For CommandBuy, slot
// is the zero-based potion index.
func keyToCommand(ev *tcell.EventKey) (cmd Command, slot int) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return CommandLeft, 0
	case tcell.KeyRight:
		return CommandRight, 0
	case tcell.KeyUp:
		return CommandJump, 0
	case tcell.KeyTab:
		return CommandNextTab, 0
	case tcell.KeyEscape:
		return CommandCloseShop, 0
	case tcell.KeyCtrlC:
		return CommandQuit, 0
	}
	switch ev.Rune() {
	case ' ', 'z', 'Z':
		return CommandAttack, 0
	case 'i', 'I':
		return CommandInventory, 0
	case 'c', 'C', 'k', 'K':
		return CommandStats, 0
	case 'e', 'E':
		return CommandShop, 0
	case 's', 'S':
		return CommandAddSTR, 0
	case 'v', 'V':
		return CommandAddVIT, 0
	case '1', '2', '3', '4', '5', '6':
		return CommandBuy, int(ev.Rune() - '1')
	case '?':
		return CommandHelp, 0
	case 'q', 'Q':
		return CommandQuit, 0
	}
	return CommandNone, 0
}

// commandToAction converts a one-shot command to a game action.
func commandToAction(c Command) game.Action {
	switch c {
	case CommandJump:
		return game.ActionJump
	case CommandAttack:
		return game.ActionAttack
	case CommandInventory:
		return game.ActionInventory
	case CommandStats:
		return game.ActionStats
	case CommandShop:
		return game.ActionShop
	case CommandCloseShop:
		return game.ActionCloseShop
	case CommandAddSTR:
		return game.ActionAddSTR
	case CommandAddVIT:
		return game.ActionAddVIT
	}
	return game.ActionNone
}
