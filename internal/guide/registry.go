package guide

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownTab is returned when an identifier is not registered.
var ErrUnknownTab = errors.New("unknown tab")

// suggestDistance is the largest edit distance still offered as a hint.
const suggestDistance = 3

// Entry pairs a tab with its content when building a Registry.
type Entry struct {
	Tab     Tab
	Content Content
}

// Registry is the fixed, ordered set of tabs. It is immutable once built.
type Registry struct {
	title    string
	subtitle string
	tabs     []Tab
	content  map[string]Content
}

// NewRegistry validates entries and builds a registry preserving their order.
func NewRegistry(title, subtitle string, entries []Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, errors.New("registry needs at least one tab")
	}
	r := &Registry{
		title:    title,
		subtitle: subtitle,
		tabs:     make([]Tab, 0, len(entries)),
		content:  make(map[string]Content, len(entries)),
	}
	for _, e := range entries {
		if err := validateTab(e.Tab); err != nil {
			return nil, err
		}
		if _, dup := r.content[e.Tab.ID]; dup {
			return nil, fmt.Errorf("duplicate tab id %q", e.Tab.ID)
		}
		if err := validateContent(e.Content); err != nil {
			return nil, fmt.Errorf("tab %q: %w", e.Tab.ID, err)
		}
		r.tabs = append(r.tabs, e.Tab)
		r.content[e.Tab.ID] = e.Content
	}
	return r, nil
}

func (r *Registry) Title() string    { return r.title }
func (r *Registry) Subtitle() string { return r.subtitle }
func (r *Registry) Len() int         { return len(r.tabs) }

// Tabs returns the registered tabs in order.
func (r *Registry) Tabs() []Tab {
	out := make([]Tab, len(r.tabs))
	copy(out, r.tabs)
	return out
}

// Index returns the position of id, or -1.
func (r *Registry) Index(id string) int {
	for i, t := range r.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Lookup returns the tab and content registered under id.
func (r *Registry) Lookup(id string) (Tab, Content, error) {
	idx := r.Index(id)
	if idx < 0 {
		return Tab{}, Content{}, r.unknown(id)
	}
	return r.tabs[idx], r.content[id], nil
}

// Content returns the content block for id. Unregistered ids yield the
// zero Content, which renders as nothing.
func (r *Registry) Content(id string) Content {
	return r.content[id]
}

func (r *Registry) unknown(id string) error {
	if hint := r.suggest(id); hint != "" {
		return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownTab, id, hint)
	}
	return fmt.Errorf("%w %q", ErrUnknownTab, id)
}

func (r *Registry) suggest(id string) string {
	needle := strings.ToLower(strings.TrimSpace(id))
	if needle == "" {
		return ""
	}
	best, bestDist := "", suggestDistance+1
	for _, t := range r.tabs {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(t.ID))
		if label := levenshtein.ComputeDistance(needle, strings.ToLower(t.Label)); label < d {
			d = label
		}
		if d < bestDist {
			best, bestDist = t.ID, d
		}
	}
	return best
}

func validateTab(t Tab) error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("tab id must not be empty")
	}
	if strings.TrimSpace(t.ID) != t.ID || strings.ContainsAny(t.ID, " \t\n") {
		return fmt.Errorf("tab id %q must not contain whitespace", t.ID)
	}
	if strings.TrimSpace(t.Label) == "" {
		return fmt.Errorf("tab %q needs a label", t.ID)
	}
	if !t.Icon.Valid() {
		return fmt.Errorf("tab %q: unknown icon %q", t.ID, t.Icon)
	}
	return nil
}

func validateContent(c Content) error {
	if len(c.Sections) == 0 {
		return errors.New("content has no sections")
	}
	for i, s := range c.Sections {
		if !s.Icon.Valid() {
			return fmt.Errorf("section %d: unknown icon %q", i, s.Icon)
		}
		if !s.Tone.valid() {
			return fmt.Errorf("section %d: unknown tone %q", i, s.Tone)
		}
		if len(s.Blocks) == 0 {
			return fmt.Errorf("section %d (%s) has no blocks", i, s.Heading)
		}
		for j, b := range s.Blocks {
			if err := validateBlock(b); err != nil {
				return fmt.Errorf("section %d block %d: %w", i, j, err)
			}
		}
	}
	return nil
}

func validateBlock(b Block) error {
	switch b.Kind {
	case BlockParagraph:
		if strings.TrimSpace(b.Text) == "" {
			return errors.New("paragraph needs text")
		}
	case BlockBullets, BlockPipeline, BlockChecklist:
		if len(b.Items) == 0 {
			return fmt.Errorf("%s needs items", b.Kind)
		}
	case BlockFacts:
		if len(b.Facts) == 0 {
			return errors.New("facts needs at least one row")
		}
	case BlockCode:
		if strings.TrimSpace(b.Source) == "" {
			return errors.New("code needs source")
		}
	default:
		return fmt.Errorf("unknown block kind %q", b.Kind)
	}
	return nil
}
