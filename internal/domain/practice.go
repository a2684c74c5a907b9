package domain

// PracticeMode selects which categories may be quizzed
type PracticeMode string

const (
	ModeAll      PracticeMode = "all"
	ModeSpecific PracticeMode = "specific"
)

// AnswerMode selects how the user responds to a card
type AnswerMode string

const (
	AnswerType   AnswerMode = "type"
	AnswerReveal AnswerMode = "reveal"
)

// DefaultCategory is selected when specific practice starts with nothing chosen
const DefaultCategory = PresentAffirmative

// PracticeConfig is the user-chosen quiz scope
type PracticeConfig struct {
	Mode          PracticeMode
	Categories    []Category
	WritingSystem WritingSystem
	AnswerMode    AnswerMode
}

// DefaultPracticeConfig returns the configuration used before any preference is stored
func DefaultPracticeConfig() PracticeConfig {
	return PracticeConfig{
		Mode:          ModeAll,
		Categories:    []Category{DefaultCategory},
		WritingSystem: PrimaryScript,
		AnswerMode:    AnswerType,
	}
}

// Scope returns the categories considered under the current mode.
// An empty specific selection is coerced to the default category.
func (c PracticeConfig) Scope() []Category {
	if c.Mode != ModeSpecific {
		return Categories
	}
	if len(c.Categories) == 0 {
		return []Category{DefaultCategory}
	}
	return c.Categories
}

// HasCategory reports whether cat is in the specific selection
func (c PracticeConfig) HasCategory(cat Category) bool {
	for _, selected := range c.Categories {
		if selected == cat {
			return true
		}
	}
	return false
}

// ToggleCategory adds cat to the selection or removes it. The last category is never removed.
func (c PracticeConfig) ToggleCategory(cat Category) PracticeConfig {
	next := make([]Category, 0, len(c.Categories)+1)
	if c.HasCategory(cat) {
		for _, selected := range c.Categories {
			if selected != cat {
				next = append(next, selected)
			}
		}
	} else {
		next = append(next, c.Categories...)
		next = append(next, cat)
	}
	if len(next) == 0 {
		next = []Category{cat}
	}
	c.Categories = next
	return c
}

// RemoveCategory drops cat from the selection, keeping the first category if it would empty it
func (c PracticeConfig) RemoveCategory(cat Category) PracticeConfig {
	next := make([]Category, 0, len(c.Categories))
	for _, selected := range c.Categories {
		if selected != cat {
			next = append(next, selected)
		}
	}
	if len(next) == 0 && len(c.Categories) > 0 {
		next = []Category{c.Categories[0]}
	}
	c.Categories = next
	return c
}

// Clone returns a copy that shares no slices with c
func (c PracticeConfig) Clone() PracticeConfig {
	c.Categories = append([]Category(nil), c.Categories...)
	return c
}
