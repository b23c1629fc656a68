package equipment

import (
	"strings"
)

// Category is the broad class of a piece of equipment.
type Category int

const (
	CategoryMisc Category = iota
	CategoryWeapon
	CategoryAmmo
)

func (c Category) String() string {
	switch c {
	case CategoryWeapon:
		return "weapon"
	case CategoryAmmo:
		return "ammo"
	default:
		return "misc"
	}
}

// ParseCategory maps the catalog's type column to a Category. Weapon
// subtypes (energy, ballistic, missile, artillery, physical) are weapons.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "energy", "ballistic", "missile", "artillery", "physical", "weapon":
		return CategoryWeapon
	case "ammo", "ammunition":
		return CategoryAmmo
	default:
		return CategoryMisc
	}
}

// Type is one catalog entry. Only the properties the damage model needs are
// carried; damage and range belong to attack resolution.
type Type struct {
	Name         string
	InternalName string
	Category     Category
	CritSlots    int
	Hittable     bool
	Explosive    bool
	Shots        int
	// UMU marks underwater maneuvering units.
	UMU bool
}

// Catalog provides equipment lookups by internal and display name.
type Catalog struct {
	ByInternalName map[string]*Type
	ByName         map[string]*Type
}

func NewCatalog() *Catalog {
	return &Catalog{
		ByInternalName: make(map[string]*Type),
		ByName:         make(map[string]*Type),
	}
}

// Add registers t under both of its names. Later entries replace earlier ones.
func (c *Catalog) Add(t *Type) {
	if t.InternalName != "" {
		c.ByInternalName[normalize(t.InternalName)] = t
	}
	if t.Name != "" {
		c.ByName[normalize(t.Name)] = t
	}
}

// Alias registers an extra display name for t.
func (c *Catalog) Alias(name string, t *Type) {
	c.ByName[normalize(name)] = t
}

// Lookup finds a type by internal name first, then display name.
func (c *Catalog) Lookup(name string) (*Type, bool) {
	key := normalize(name)
	if t, ok := c.ByInternalName[key]; ok {
		return t, true
	}
	if t, ok := c.ByName[key]; ok {
		return t, true
	}
	return nil, false
}

func (c *Catalog) Len() int {
	seen := map[*Type]bool{}
	for _, t := range c.ByInternalName {
		seen[t] = true
	}
	for _, t := range c.ByName {
		seen[t] = true
	}
	return len(seen)
}

// normalize folds MTF spelling variations: case, omnipod markers, and
// IS/Clan prefixes.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "(omnipod)", "")
	s = strings.ReplaceAll(s, "(r)", "")
	s = strings.TrimSpace(s)
	for _, p := range []string{"inner sphere ", "clan ", "is ", "cl "} {
		s = strings.TrimPrefix(s, p)
	}
	if strings.HasPrefix(s, "is") && len(s) > 2 && s[2] != ' ' && !strings.HasPrefix(s, "isc") {
		s = s[2:]
	} else if strings.HasPrefix(s, "cl") && len(s) > 2 && !strings.HasPrefix(s, "cla") {
		s = s[2:]
	}
	return strings.TrimSpace(s)
}

// Classify fills hittability and explosiveness for rows that only carry a
// name and type, as the catalog database's equipment table does.
func Classify(t *Type) {
	lower := strings.ToLower(t.Name + " " + t.InternalName)
	t.Hittable = true
	switch {
	case strings.Contains(lower, "endo steel"), strings.Contains(lower, "endo-steel"),
		strings.Contains(lower, "endo-composite"),
		strings.Contains(lower, "ferro-fibrous"), strings.Contains(lower, "ferro fibrous"),
		strings.Contains(lower, "stealth"), strings.Contains(lower, "reactive armor"),
		strings.Contains(lower, "reflective armor"),
		strings.HasPrefix(strings.ToLower(t.Name), "case"):
		t.Hittable = false
	}
	t.UMU = strings.Contains(lower, "umu") || strings.Contains(lower, "underwater maneuvering")
	if t.Category == CategoryAmmo {
		t.Explosive = !strings.Contains(lower, "gauss") && !strings.Contains(lower, "plasma")
	} else {
		t.Explosive = strings.Contains(lower, "gauss") && t.Category == CategoryWeapon
	}
}
