package person

import "github.com/afk552/people/internal/month"

// SelectByMonth returns, in original order, the people born in the month named
// by token. Token may be a number ("3", "03") or a month name ("март").
// The result is empty, not nil, when nothing matches.
func SelectByMonth(people []Person, token string) []Person {
	code := month.Normalize(token)
	result := make([]Person, 0)
	for _, p := range people {
		if p.Birth.MonthCode() == code {
			result = append(result, p)
		}
	}
	return result
}
