package utils

// PluralRu выбирает форму слова для числа n: 1 комментарий, 2 комментария, 5 комментариев
func PluralRu(n int64, one, few, many string) string {
	if n < 0 {
		n = -n
	}
	if n%100 >= 11 && n%100 <= 14 {
		return many
	}
	switch n % 10 {
	case 1:
		return one
	case 2, 3, 4:
		return few
	default:
		return many
	}
}
