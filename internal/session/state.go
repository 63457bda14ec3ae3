package session

import (
	"errors"
	"fmt"
	"strings"

	"colorpick/internal/store"
	"colorpick/pkg/colormath"

	"github.com/google/uuid"
)

// MaxHistory caps the number of recent colors kept.
const MaxHistory = 12

var (
	ErrEmptyName       = errors.New("palette name must not be empty")
	ErrPaletteNotFound = errors.New("palette not found")
	ErrInvalidColor    = errors.New("invalid color")
	ErrDuplicateColor  = errors.New("color already in palette")
	ErrColorNotFound   = errors.New("color not in palette")
	ErrNoActivePalette = errors.New("no active palette")
	ErrNoColor         = errors.New("no color picked")
)

// Palette is a named, ordered set of distinct colors.
type Palette = store.Palette

// newID is swapped in tests.
var newID = func() string { return uuid.NewString() }

// State holds everything the user works with during a session. Methods
// mutate the receiver; callers persist it with Snapshot.
type State struct {
	// Current is the color being inspected, empty until the first pick.
	Current string
	Format  colormath.Format
	// History is most recent first, without duplicates.
	History  []string
	Palettes []Palette
	// ActivePaletteID refers to a palette by id and may go stale.
	ActivePaletteID string
}

// New returns an empty state using format.
func New(format colormath.Format) *State {
	if _, ok := colormath.ParseFormat(string(format)); !ok {
		format = colormath.FormatHex
	}
	return &State{Format: format}
}

// Pick makes hex the current color and moves it to the front of history.
// Invalid input leaves the state untouched.
func (s *State) Pick(hex string) bool {
	norm, ok := colormath.Normalize(hex)
	if !ok {
		return false
	}
	s.Current = norm
	s.History = pushHistory(s.History, norm)
	return true
}

// Select is used for history and harmony clicks. It behaves like Pick.
func (s *State) Select(hex string) bool {
	return s.Pick(hex)
}

func pushHistory(history []string, hex string) []string {
	out := make([]string, 0, MaxHistory)
	out = append(out, hex)
	for _, h := range history {
		if len(out) == MaxHistory {
			break
		}
		if h != hex {
			out = append(out, h)
		}
	}
	return out
}

// SetFormat changes the active format. Unknown formats are ignored.
func (s *State) SetFormat(f colormath.Format) bool {
	if _, ok := colormath.ParseFormat(string(f)); !ok {
		return false
	}
	s.Format = f
	return true
}

// CurrentValue renders the current color in the active format.
func (s *State) CurrentValue(names colormath.NameFinder) string {
	if s.Current == "" {
		return ""
	}
	return colormath.FormatColor(s.Current, s.Format, names)
}

// ClearHistory drops every recent color. The current color is kept.
func (s *State) ClearHistory() {
	s.History = nil
}

// CreatePalette appends a new empty palette.
func (s *State) CreatePalette(name string) (Palette, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Palette{}, ErrEmptyName
	}
	p := Palette{ID: newID(), Name: name, Colors: []string{}}
	s.Palettes = append(s.Palettes, p)
	return p, nil
}

func (s *State) index(id string) int {
	for i := range s.Palettes {
		if s.Palettes[i].ID == id {
			return i
		}
	}
	return -1
}

// Palette returns a pointer into the palette list, valid until the list is
// next modified.
func (s *State) Palette(id string) (*Palette, bool) {
	i := s.index(id)
	if i < 0 {
		return nil, false
	}
	return &s.Palettes[i], true
}

// RenamePalette changes the name of palette id.
func (s *State) RenamePalette(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p, ok := s.Palette(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPaletteNotFound, id)
	}
	p.Name = name
	return nil
}

// DeletePalette removes palette id and clears the active reference if it
// pointed at it.
func (s *State) DeletePalette(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPaletteNotFound, id)
	}
	s.Palettes = append(s.Palettes[:i], s.Palettes[i+1:]...)
	if s.ActivePaletteID == id {
		s.ActivePaletteID = ""
	}
	return nil
}

// SetActivePalette marks id as the active palette. An empty id clears it.
func (s *State) SetActivePalette(id string) error {
	if id == "" {
		s.ActivePaletteID = ""
		return nil
	}
	if s.index(id) < 0 {
		return fmt.Errorf("%w: %s", ErrPaletteNotFound, id)
	}
	s.ActivePaletteID = id
	return nil
}

// ActivePalette resolves the active reference. A dangling id is cleared.
func (s *State) ActivePalette() (*Palette, bool) {
	if s.ActivePaletteID == "" {
		return nil, false
	}
	p, ok := s.Palette(s.ActivePaletteID)
	if !ok {
		s.ActivePaletteID = ""
		return nil, false
	}
	return p, true
}

// AddColor appends hex to palette id.
func (s *State) AddColor(id, hex string) error {
	norm, ok := colormath.Normalize(hex)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	p, ok := s.Palette(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPaletteNotFound, id)
	}
	for _, c := range p.Colors {
		if c == norm {
			return fmt.Errorf("%w: %s", ErrDuplicateColor, norm)
		}
	}
	p.Colors = append(p.Colors, norm)
	return nil
}

// RemoveColor deletes hex from palette id.
func (s *State) RemoveColor(id, hex string) error {
	norm, ok := colormath.Normalize(hex)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	p, ok := s.Palette(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPaletteNotFound, id)
	}
	for i, c := range p.Colors {
		if c == norm {
			p.Colors = append(p.Colors[:i], p.Colors[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrColorNotFound, norm)
}

// AddCurrentToActive appends the current color to the active palette.
func (s *State) AddCurrentToActive() error {
	p, ok := s.ActivePalette()
	if !ok {
		return ErrNoActivePalette
	}
	if s.Current == "" {
		return ErrNoColor
	}
	return s.AddColor(p.ID, s.Current)
}

// Snapshot copies the persistent part of the state.
func (s *State) Snapshot() store.Snapshot {
	snap := store.Snapshot{
		History:       append([]string{}, s.History...),
		Palettes:      make([]Palette, 0, len(s.Palettes)),
		ActivePalette: s.ActivePaletteID,
		LastFormat:    string(s.Format),
	}
	for _, p := range s.Palettes {
		p.Colors = append([]string{}, p.Colors...)
		snap.Palettes = append(snap.Palettes, p)
	}
	return snap
}

// FromSnapshot rebuilds a state from persisted data, dropping anything that
// no longer holds: invalid or repeated colors, palettes without id or name,
// and a dangling active reference. The most recent history entry becomes
// the current color.
func FromSnapshot(snap store.Snapshot) *State {
	format, ok := colormath.ParseFormat(snap.LastFormat)
	if !ok {
		format = colormath.FormatHex
	}
	s := &State{Format: format}

	for i := len(snap.History) - 1; i >= 0; i-- {
		if norm, ok := colormath.Normalize(snap.History[i]); ok {
			s.History = pushHistory(s.History, norm)
		}
	}
	if len(s.History) > 0 {
		s.Current = s.History[0]
	}

	seen := make(map[string]bool, len(snap.Palettes))
	for _, p := range snap.Palettes {
		name := strings.TrimSpace(p.Name)
		if p.ID == "" || name == "" || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		clean := Palette{ID: p.ID, Name: name, Colors: []string{}}
		for _, c := range p.Colors {
			if norm, ok := colormath.Normalize(c); ok && !contains(clean.Colors, norm) {
				clean.Colors = append(clean.Colors, norm)
			}
		}
		s.Palettes = append(s.Palettes, clean)
	}

	if seen[snap.ActivePalette] {
		s.ActivePaletteID = snap.ActivePalette
	}
	return s
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
