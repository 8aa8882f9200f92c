// Package catalog holds the static game data: zone rosters, the
// full-moon exotic pool, shop items, and the per-rarity tables. Data is
// parsed from embedded YAML once at process start and injected read-only
// into the engine; nothing here mutates after Load.
package catalog

import (
	"embed"

	"gopkg.in/yaml.v3"

	"github.com/castaway-games/angler/internal/entities"
	"github.com/castaway-games/angler/internal/errors"
	"github.com/castaway-games/angler/internal/gametime"
)

//go:embed data/*.yaml
var dataFS embed.FS

// ShopItem is one purchasable unlock
type ShopItem struct {
	Name        string
	Item        entities.UnlockItem
	Price       float64
	Description string

	// Requires lists unlock items that must already be held to buy this
	Requires []entities.UnlockItem
}

// Catalog is the loaded, immutable game data
type Catalog struct {
	zones      map[entities.ZoneID]*entities.Zone
	order      []entities.ZoneID
	exoticPool []entities.CreatureDef
	shop       []ShopItem
}

// Load parses the embedded data files
func Load() (*Catalog, error) {
	var zf zonesFile
	if err := unmarshalFile("data/zones.yaml", &zf); err != nil {
		return nil, err
	}

	var sf shopFile
	if err := unmarshalFile("data/shop.yaml", &sf); err != nil {
		return nil, err
	}

	c := &Catalog{zones: make(map[entities.ZoneID]*entities.Zone)}

	for _, zy := range zf.Zones {
		zone, err := zy.toZone()
		if err != nil {
			return nil, err
		}
		if _, dup := c.zones[zone.ID]; dup {
			return nil, errors.InvalidArgumentf("duplicate zone %q in catalog", zone.ID)
		}
		c.zones[zone.ID] = zone
		c.order = append(c.order, zone.ID)
	}

	for _, cy := range zf.ExoticPool {
		def, err := cy.toCreature()
		if err != nil {
			return nil, errors.Wrap(err, "invalid exotic pool entry")
		}
		if def.Rarity != entities.RarityExotic {
			return nil, errors.InvalidArgumentf("exotic pool entry %q has rarity %s", def.Name, def.Rarity)
		}
		c.exoticPool = append(c.exoticPool, def)
	}
	if len(c.exoticPool) == 0 {
		return nil, errors.InvalidArgument("exotic pool is empty")
	}

	for _, iy := range sf.Items {
		item, err := iy.toShopItem()
		if err != nil {
			return nil, err
		}
		c.shop = append(c.shop, item)
	}

	return c, nil
}

func unmarshalFile(name string, out interface{}) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "failed to parse %s", name)
	}
	return nil
}

// Zone returns the zone with the given ID
func (c *Catalog) Zone(id entities.ZoneID) (*entities.Zone, bool) {
	z, ok := c.zones[id]
	return z, ok
}

// Zones returns all zones in catalog order
func (c *Catalog) Zones() []*entities.Zone {
	out := make([]*entities.Zone, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.zones[id])
	}
	return out
}

// ExoticPool returns the full-moon exotic pool
func (c *Catalog) ExoticPool() []entities.CreatureDef {
	return c.exoticPool
}

// ShopItems returns the purchasable unlocks in display order
func (c *Catalog) ShopItems() []ShopItem {
	return c.shop
}

// --- YAML file shapes ---

type zonesFile struct {
	Zones      []zoneYAML     `yaml:"zones"`
	ExoticPool []creatureYAML `yaml:"exotic_pool"`
}

type zoneYAML struct {
	ID           string         `yaml:"id"`
	CatchWindow  int            `yaml:"catch_window"`
	SpeedDivisor int            `yaml:"speed_divisor"`
	Pricing      string         `yaml:"pricing"`
	Requires     []string       `yaml:"requires"`
	Boss         *creatureYAML  `yaml:"boss"`
	Creatures    []creatureYAML `yaml:"creatures"`
}

type creatureYAML struct {
	Name    string   `yaml:"name"`
	Rarity  string   `yaml:"rarity"`
	Price   float64  `yaml:"price"`
	XP      int      `yaml:"xp"`
	Times   []string `yaml:"times"`
	Seasons []string `yaml:"seasons"`
	Weights *struct {
		Low  float64 `yaml:"low"`
		High float64 `yaml:"high"`
	} `yaml:"weights"`
	Grants string `yaml:"grants"`
}

type shopFile struct {
	Items []shopItemYAML `yaml:"items"`
}

type shopItemYAML struct {
	Name        string   `yaml:"name"`
	Price       float64  `yaml:"price"`
	Description string   `yaml:"description"`
	Requires    []string `yaml:"requires"`
}

func (zy zoneYAML) toZone() (*entities.Zone, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", zy.ID, vb)
	errors.ValidatePositive("catch_window", zy.CatchWindow, vb)
	errors.ValidatePositive("speed_divisor", zy.SpeedDivisor, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.Wrapf(err, "invalid zone %q", zy.ID)
	}

	var pricing entities.PricingMode
	switch zy.Pricing {
	case "flat":
		pricing = entities.PricingFlat
	case "multiplier":
		pricing = entities.PricingMultiplier
	case "base":
		pricing = entities.PricingBase
	default:
		return nil, errors.InvalidArgumentf("zone %q has unknown pricing mode %q", zy.ID, zy.Pricing)
	}

	zone := &entities.Zone{
		ID:           entities.ZoneID(zy.ID),
		Name:         zy.ID,
		CatchWindow:  zy.CatchWindow,
		SpeedDivisor: zy.SpeedDivisor,
		Pricing:      pricing,
	}

	for _, req := range zy.Requires {
		item, err := parseUnlockItem(req)
		if err != nil {
			return nil, errors.Wrapf(err, "zone %q", zy.ID)
		}
		zone.Requires = append(zone.Requires, item)
	}

	for _, cy := range zy.Creatures {
		def, err := cy.toCreature()
		if err != nil {
			return nil, errors.Wrapf(err, "zone %q", zy.ID)
		}
		if def.Rarity == entities.RarityBoss {
			return nil, errors.InvalidArgumentf("zone %q lists boss %q in its roster", zy.ID, def.Name)
		}
		zone.Creatures = append(zone.Creatures, def)
	}
	if len(zone.Creatures) == 0 {
		return nil, errors.InvalidArgumentf("zone %q has no creatures", zy.ID)
	}

	if zy.Boss != nil {
		boss, err := zy.Boss.toCreature()
		if err != nil {
			return nil, errors.Wrapf(err, "zone %q boss", zy.ID)
		}
		boss.Rarity = entities.RarityBoss
		zone.Boss = &boss
	}

	return zone, nil
}

func (cy creatureYAML) toCreature() (entities.CreatureDef, error) {
	if cy.Name == "" {
		return entities.CreatureDef{}, errors.InvalidArgument("creature name is required")
	}

	def := entities.CreatureDef{
		Name:  cy.Name,
		Price: cy.Price,
		XP:    cy.XP,
	}

	if cy.Rarity != "" {
		def.Rarity = entities.Rarity(cy.Rarity)
		if !def.Rarity.Valid() {
			return entities.CreatureDef{}, errors.InvalidArgumentf("creature %q has unknown rarity %q", cy.Name, cy.Rarity)
		}
	}

	for _, t := range cy.Times {
		switch tod := gametime.TimeOfDay(t); tod {
		case gametime.Day, gametime.Sunset, gametime.Night:
			def.Times = append(def.Times, tod)
		default:
			return entities.CreatureDef{}, errors.InvalidArgumentf("creature %q has unknown time of day %q", cy.Name, t)
		}
	}

	for _, s := range cy.Seasons {
		switch season := gametime.Season(s); season {
		case gametime.Spring, gametime.Summer, gametime.Autumn, gametime.Winter:
			def.Seasons = append(def.Seasons, season)
		default:
			return entities.CreatureDef{}, errors.InvalidArgumentf("creature %q has unknown season %q", cy.Name, s)
		}
	}

	if cy.Weights != nil {
		if cy.Weights.High < cy.Weights.Low || cy.Weights.Low <= 0 {
			return entities.CreatureDef{}, errors.InvalidArgumentf("creature %q has invalid weight range", cy.Name)
		}
		def.Weights = &entities.WeightRange{Low: cy.Weights.Low, High: cy.Weights.High}
	}

	if cy.Grants != "" {
		item, err := parseUnlockItem(cy.Grants)
		if err != nil {
			return entities.CreatureDef{}, errors.Wrapf(err, "creature %q", cy.Name)
		}
		def.Grants = item
	}

	return def, nil
}

func (iy shopItemYAML) toShopItem() (ShopItem, error) {
	item, err := parseUnlockItem(iy.Name)
	if err != nil {
		return ShopItem{}, err
	}
	if iy.Price <= 0 {
		return ShopItem{}, errors.InvalidArgumentf("shop item %q has non-positive price", iy.Name)
	}

	out := ShopItem{
		Name:        iy.Name,
		Item:        item,
		Price:       iy.Price,
		Description: iy.Description,
	}
	for _, req := range iy.Requires {
		reqItem, err := parseUnlockItem(req)
		if err != nil {
			return ShopItem{}, errors.Wrapf(err, "shop item %q", iy.Name)
		}
		out.Requires = append(out.Requires, reqItem)
	}
	return out, nil
}

func parseUnlockItem(name string) (entities.UnlockItem, error) {
	switch item := entities.UnlockItem(name); item {
	case entities.UnlockBoat, entities.UnlockSubmarine, entities.UnlockTorch,
		entities.UnlockSubUpgrade1, entities.UnlockSubUpgrade2,
		entities.UnlockAncientKey, entities.UnlockMoonlitKey:
		return item, nil
	default:
		return "", errors.InvalidArgumentf("unknown unlock item %q", name)
	}
}
