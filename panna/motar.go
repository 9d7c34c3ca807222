package panna

import "sort"

// motarRank orders digits 1 < 2 < ... < 9 < 0 for Motar generation, the same
// ordering the charts use to write panas.
func motarRank(d byte) int {
	if d == '0' {
		return 10
	}
	return int(d - '0')
}

// MotarNumbers derives every pana buildable from the distinct digits of the
// input: triples (a,b,c) strictly increasing under the 1..9,0 digit order.
// A zero is rejected in the first two positions before the order check runs,
// independently of the ordering already ranking it last. An input with too
// few usable digits yields an empty result, which is valid.
func MotarNumbers(digits string) ([]string, error) {
	if len(digits) < 4 || len(digits) > 10 {
		return nil, invalidf("motar input must be 4 to 10 digits, got %d", len(digits))
	}
	unique := make([]byte, 0, 10)
	seen := make(map[byte]struct{}, 10)
	for i := 0; i < len(digits); i++ {
		d := digits[i]
		if d < '0' || d > '9' {
			return nil, invalidf("motar input must contain only digits, got %q", digits)
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		unique = append(unique, d)
	}

	var out []string
	for _, a := range unique {
		for _, b := range unique {
			for _, c := range unique {
				if a == '0' || b == '0' {
					continue
				}
				if motarRank(a) < motarRank(b) && motarRank(b) < motarRank(c) {
					out = append(out, string([]byte{a, b, c}))
				}
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// MotarSelector derives panas from a free-form digit string.
type MotarSelector struct {
	Digits string
}

func (MotarSelector) Scheme() BetType { return BetMotar }

func (s MotarSelector) Resolve() ([]Pick, error) {
	numbers, err := MotarNumbers(s.Digits)
	if err != nil {
		return nil, err
	}
	picks := make([]Pick, len(numbers))
	for i, n := range numbers {
		picks[i] = Pick{Number: n}
	}
	return picks, nil
}
