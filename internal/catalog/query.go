package catalog

import (
	"strconv"
	"strings"
)

// ParseQuery turns search-box text into a Filter.
//
//	genre:trap mood:dark bpm:90-120 price:-30 midnight
//
// Ranges may leave either bound open ("90-", "-120"); a single number sets
// both bounds. Unknown keys and malformed values are treated as title words.
func ParseQuery(q string) Filter {
	var (
		f     Filter
		title []string
	)
	for _, word := range strings.Fields(q) {
		key, value, ok := strings.Cut(word, ":")
		if !ok || value == "" {
			title = append(title, word)
			continue
		}
		switch strings.ToLower(key) {
		case "genre":
			f.Genre = value
		case "mood":
			f.Mood = value
		case "bpm":
			lo, hi, ok := parseRange(value, strconv.Atoi)
			if !ok {
				title = append(title, word)
				continue
			}
			f.MinBPM, f.MaxBPM = lo, hi
		case "price":
			lo, hi, ok := parseRange(value, func(s string) (float64, error) {
				return strconv.ParseFloat(s, 64)
			})
			if !ok {
				title = append(title, word)
				continue
			}
			f.MinPrice, f.MaxPrice = lo, hi
		default:
			title = append(title, word)
		}
	}
	return f.WithTitle(strings.Join(title, " "))
}

func parseRange[T int | float64](s string, parse func(string) (T, error)) (lo, hi *T, ok bool) {
	from, to, isRange := strings.Cut(s, "-")
	if !isRange {
		v, err := parse(s)
		if err != nil {
			return nil, nil, false
		}
		return &v, &v, true
	}
	if from == "" && to == "" {
		return nil, nil, false
	}
	if from != "" {
		v, err := parse(from)
		if err != nil {
			return nil, nil, false
		}
		lo = &v
	}
	if to != "" {
		v, err := parse(to)
		if err != nil {
			return nil, nil, false
		}
		hi = &v
	}
	return lo, hi, true
}
