package guide

// Icon is a symbolic icon reference. Rendering maps it to a glyph.
type Icon string

const (
	IconNone       Icon = ""
	IconActivity   Icon = "activity"
	IconZap        Icon = "zap"
	IconDatabase   Icon = "database"
	IconShield     Icon = "shield"
	IconSettings   Icon = "settings"
	IconTrendingUp Icon = "trending-up"
	IconCheck      Icon = "check"
	IconAlert      Icon = "alert"
	IconClock      Icon = "clock"
	IconChart      Icon = "chart"
)

// Icons lists every known icon in a stable order.
func Icons() []Icon {
	return []Icon{
		IconActivity, IconZap, IconDatabase, IconShield, IconSettings,
		IconTrendingUp, IconCheck, IconAlert, IconClock, IconChart,
	}
}

// Valid reports whether i is a known icon. IconNone is valid.
func (i Icon) Valid() bool {
	if i == IconNone {
		return true
	}
	for _, known := range Icons() {
		if i == known {
			return true
		}
	}
	return false
}

// Tab is one selectable section of the guide.
type Tab struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Icon  Icon   `json:"icon" yaml:"icon"`
}

// Tone is the accent a section is drawn with.
type Tone string

const (
	ToneNeutral Tone = ""
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneInfo    Tone = "info"
	ToneAccent  Tone = "accent"
)

func (t Tone) valid() bool {
	switch t {
	case ToneNeutral, ToneSuccess, ToneWarning, ToneDanger, ToneInfo, ToneAccent:
		return true
	}
	return false
}

// BlockKind names the shape of a content block.
type BlockKind string

const (
	BlockParagraph BlockKind = "paragraph"
	BlockBullets   BlockKind = "bullets"
	BlockPipeline  BlockKind = "pipeline"
	BlockFacts     BlockKind = "facts"
	BlockCode      BlockKind = "code"
	BlockChecklist BlockKind = "checklist"
)

// Fact is a key/value row in a facts block.
type Fact struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// Block is a single piece of static content. Which fields are used
// depends on Kind:
//   - paragraph: Text
//   - bullets: Items, optional Marker and Text (lead-in line)
//   - pipeline, checklist: Items
//   - facts: Facts
//   - code: Source, optional Language
type Block struct {
	Kind     BlockKind `toml:"kind"`
	Text     string    `toml:"text"`
	Marker   string    `toml:"marker"`
	Items    []string  `toml:"items"`
	Facts    []Fact    `toml:"facts"`
	Language string    `toml:"language"`
	Source   string    `toml:"source"`
}

// Section groups blocks under a heading.
type Section struct {
	Heading string  `toml:"heading"`
	Icon    Icon    `toml:"icon"`
	Tone    Tone    `toml:"tone"`
	Blocks  []Block `toml:"block"`
}

// Content is the static block shown for one tab.
type Content struct {
	Title    string    `toml:"title"`
	Sections []Section `toml:"section"`
}

// IsZero reports whether c has nothing to render.
func (c Content) IsZero() bool {
	return c.Title == "" && len(c.Sections) == 0
}
