package assets

import "mesoquest/internal/config"

// Resource is what a potion restores.
type Resource string

const (
	ResourceHP Resource = "hp"
	ResourceMP Resource = "mp"
)

// PotionDef is one entry of the shop's potion catalogue.
type PotionDef struct {
	ID    string
	Name  string
	Kind  Resource
	Heal  int
	Price int
}

// Potions is the shop catalogue in display order.
var Potions = []PotionDef{
	{ID: "hp1", Name: "Red Potion", Kind: ResourceHP, Heal: 50, Price: 25},
	{ID: "hp2", Name: "Orange Potion", Kind: ResourceHP, Heal: 150, Price: 80},
	{ID: "hp3", Name: "White Potion", Kind: ResourceHP, Heal: 300, Price: 200},
	{ID: "mp1", Name: "Blue Potion", Kind: ResourceMP, Heal: 100, Price: 40},
	{ID: "mp2", Name: "Mana Elixir", Kind: ResourceMP, Heal: 300, Price: 120},
	{ID: "mp3", Name: "Sorcerer Elixir", Kind: ResourceMP, Heal: 600, Price: 350},
}

// PotionByID looks up a catalogue entry.
func PotionByID(id string) (PotionDef, bool) {
	for _, p := range Potions {
		if p.ID == id {
			return p, true
		}
	}
	return PotionDef{}, false
}

// ShopTabs are the shop window tabs, numbered from 1.
var ShopTabs = []string{"EQUIP", "USE", "ETC", "SET-UP", "CASH"}

// PotionTab is the tab that lists Potions.
const PotionTab = 2

// ShopNPCBox returns the shopkeeper's box standing on a ground line at groundY.
func ShopNPCBox(cfg config.Shop, groundY float64) config.Rect {
	r := cfg.NPC
	r.Y = groundY - r.H - cfg.Lift
	return r
}
