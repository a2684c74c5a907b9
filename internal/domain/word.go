package domain

// WritingSystem identifies a script a word or conjugation can be shown or typed in
type WritingSystem string

const (
	Kanji    WritingSystem = "kanji"
	Hiragana WritingSystem = "hiragana"
	Romaji   WritingSystem = "romaji"
)

// PrimaryScript is the writing system every word is keyed by
const PrimaryScript = Kanji

// WritingSystems lists supported scripts in display order
var WritingSystems = []WritingSystem{Kanji, Hiragana, Romaji}

// ParseWritingSystem returns the writing system named by s
func ParseWritingSystem(s string) (WritingSystem, bool) {
	for _, ws := range WritingSystems {
		if string(ws) == s {
			return ws, true
		}
	}
	return "", false
}

// Category is a grammatical form a verb can be quizzed on
type Category string

const (
	PresentAffirmative Category = "Present Affirmative"
	PresentNegative    Category = "Present Negative"
	PastAffirmative    Category = "Past Affirmative"
	PastNegative       Category = "Past Negative"
	TeForm             Category = "Te Form"
)

// Categories is the fixed set of conjugation categories in display order
var Categories = []Category{
	PresentAffirmative,
	PresentNegative,
	PastAffirmative,
	PastNegative,
	TeForm,
}

// ParseCategory returns the category named by s
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Text holds one string per writing system
type Text map[WritingSystem]string

// In returns the text for a writing system, empty when missing
func (t Text) In(ws WritingSystem) string {
	return t[ws]
}

// Conjugation is either a set of forms or not applicable for a word
type Conjugation struct {
	Forms   Text
	Present bool
}

// Forms returns a present conjugation
func Forms(t Text) Conjugation {
	return Conjugation{Forms: t, Present: true}
}

// NotApplicable returns the marker for a category that does not exist for a word
func NotApplicable() Conjugation {
	return Conjugation{}
}

// Usable reports whether the conjugation can be quizzed in the writing system
func (c Conjugation) Usable(ws WritingSystem) bool {
	return c.Present && c.Forms.In(ws) != ""
}

// WordEntry is a verb together with its conjugations
type WordEntry struct {
	Word         Text
	Conjugations map[Category]Conjugation
}

// Key returns the primary-script form used to identify the word
func (w WordEntry) Key() string {
	return w.Word.In(PrimaryScript)
}

// Conjugation returns the conjugation for a category; missing categories are not applicable
func (w WordEntry) Conjugation(c Category) Conjugation {
	conj, ok := w.Conjugations[c]
	if !ok {
		return NotApplicable()
	}
	return conj
}
