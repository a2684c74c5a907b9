package quiz

import "conjugator/internal/domain"

// Filter narrows words to those whose primary-script key is selected.
// An empty selection means the whole dataset.
func Filter(all []domain.WordEntry, selected map[string]struct{}) []domain.WordEntry {
	if len(selected) == 0 {
		return all
	}

	filtered := make([]domain.WordEntry, 0, len(selected))
	for _, w := range all {
		if _, ok := selected[w.Key()]; ok {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
