package quiz

import "conjugator/internal/domain"

func taberu() domain.WordEntry {
	return domain.WordEntry{
		Word: domain.Text{domain.Kanji: "食べる", domain.Hiragana: "たべる", domain.Romaji: "taberu"},
		Conjugations: map[domain.Category]domain.Conjugation{
			domain.PresentAffirmative: domain.Forms(domain.Text{domain.Kanji: "食べます", domain.Hiragana: "たべます", domain.Romaji: "tabemasu"}),
			domain.PresentNegative:    domain.Forms(domain.Text{domain.Kanji: "食べません", domain.Hiragana: "たべません", domain.Romaji: "tabemasen"}),
			domain.PastAffirmative:    domain.Forms(domain.Text{domain.Kanji: "食べました", domain.Hiragana: "たべました", domain.Romaji: "tabemashita"}),
			domain.PastNegative:       domain.Forms(domain.Text{domain.Kanji: "食べませんでした", domain.Hiragana: "たべませんでした", domain.Romaji: "tabemasendeshita"}),
			domain.TeForm:             domain.Forms(domain.Text{domain.Kanji: "食べて", domain.Hiragana: "たべて", domain.Romaji: "tabete"}),
		},
	}
}

func iku() domain.WordEntry {
	return domain.WordEntry{
		Word: domain.Text{domain.Kanji: "行く", domain.Hiragana: "いく", domain.Romaji: "iku"},
		Conjugations: map[domain.Category]domain.Conjugation{
			domain.PresentAffirmative: domain.Forms(domain.Text{domain.Kanji: "行きます", domain.Hiragana: "いきます", domain.Romaji: "ikimasu"}),
			domain.PresentNegative:    domain.Forms(domain.Text{domain.Kanji: "行きません", domain.Hiragana: "", domain.Romaji: "ikimasen"}),
			domain.TeForm:             domain.NotApplicable(),
		},
	}
}

func suru() domain.WordEntry {
	return domain.WordEntry{
		Word: domain.Text{domain.Kanji: "する", domain.Hiragana: "する", domain.Romaji: "suru"},
		Conjugations: map[domain.Category]domain.Conjugation{
			domain.PastAffirmative: domain.Forms(domain.Text{domain.Kanji: "しました", domain.Hiragana: "しました", domain.Romaji: "shimashita"}),
		},
	}
}

// sequence returns a chooser that replays picks and records the bounds it was asked for
func sequence(picks ...int) (Chooser, *[]int) {
	var bounds []int
	i := 0
	return func(n int) int {
		bounds = append(bounds, n)
		p := picks[i%len(picks)]
		i++
		return p
	}, &bounds
}
