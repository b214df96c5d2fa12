package ddragon

type ChampionIndexResponse struct {
	Type    string                   `json:"type"`
	Version string                   `json:"version"`
	Data    map[string]ChampionIndex `json:"data"`
}

type ChampionIndex struct {
	ID    string   `json:"id"`
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Info  struct {
		Attack     int `json:"attack"`
		Defense    int `json:"defense"`
		Magic      int `json:"magic"`
		Difficulty int `json:"difficulty"`
	} `json:"info"`
}

type ChampionDetailResponse struct {
	Type    string                    `json:"type"`
	Version string                    `json:"version"`
	Data    map[string]ChampionDetail `json:"data"`
}

type ChampionDetail struct {
	ID      string   `json:"id"`
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Tags    []string `json:"tags"`
	Spells  []Spell  `json:"spells"`
	Passive Passive  `json:"passive"`
}

// Spell is one ability in cast-bar order; champion detail files list exactly
// four, index-aligned to Q/W/E/R.
type Spell struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MaxRank     int       `json:"maxrank"`
	Cooldown    []float64 `json:"cooldown"`
}

type Passive struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
