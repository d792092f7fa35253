package pokeapi

// NamedResource is PokeAPI's {name, url} reference shape.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// IndexEntry is one row of a list response: a name plus its detail URL.
type IndexEntry = NamedResource

// ListResponse is the body of GET /pokemon?limit=&offset=.
type ListResponse struct {
	Count    int          `json:"count"`
	Next     *string      `json:"next"`
	Previous *string      `json:"previous"`
	Results  []IndexEntry `json:"results"`
}

// Pokemon is the detail record returned by GET /pokemon/{id}. Loaders only
// look at ID and Name; the rest feeds the cards.
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	BaseExperience int           `json:"base_experience"`
	Types          []TypeSlot    `json:"types"`
	Stats          []StatEntry   `json:"stats"`
	Abilities      []AbilitySlot `json:"abilities"`
	Sprites        Sprites       `json:"sprites"`
}

// TypeSlot binds a type to its slot on a Pokemon.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// StatEntry is a single base stat.
type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// AbilitySlot binds an ability to a Pokemon.
type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// Sprites holds the image URLs we care about.
type Sprites struct {
	FrontDefault string `json:"front_default"`
}

// TypeNames returns the type names in slot order.
func (p Pokemon) TypeNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		names = append(names, t.Type.Name)
	}
	return names
}

// AbilityNames returns ability names, skipping hidden abilities when
// visibleOnly is set.
func (p Pokemon) AbilityNames(visibleOnly bool) []string {
	names := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		if visibleOnly && a.IsHidden {
			continue
		}
		names = append(names, a.Ability.Name)
	}
	return names
}

// Stat returns the base value of the named stat, or 0 when absent.
func (p Pokemon) Stat(name string) int {
	for _, s := range p.Stats {
		if s.Stat.Name == name {
			return s.BaseStat
		}
	}
	return 0
}
