package panna

import (
	"fmt"
	"sort"
	"strings"
)

// BetType tags one of the fixed betting schemes.
type BetType string

const (
	BetSingle       BetType = "SINGLE"
	BetSP           BetType = "SP"
	BetDP           BetType = "DP"
	BetJodi         BetType = "JODI"
	BetDadar        BetType = "DADAR"
	BetEki          BetType = "EKI"
	BetBeki         BetType = "BEKI"
	BetAbrCut       BetType = "ABR_CUT"
	BetJodiPanel    BetType = "JODI_PANEL"
	BetMotar        BetType = "MOTAR"
	BetCommonPana36 BetType = "COMMAN_PANA_36"
	BetCommonPana56 BetType = "COMMAN_PANA_56"
	BetSetPana      BetType = "SET_PANA"
)

// ValidationError reports a selector that was rejected before any derivation
// ran.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalidf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Pick is one resolved number. Column is the 1-based chart column the number
// was attributed to, or 0 for schemes without column attribution. When a
// number appears in more than one selected column, the first column in
// selector order wins.
type Pick struct {
	Number  string
	Column  int
	SubType string
	Family  string
}

// Resolver derives the concrete numbers covered by one validated selector.
// Resolutions are pure: order-preserving, duplicate-free and free of side
// effects.
type Resolver interface {
	Scheme() BetType
	Resolve() ([]Pick, error)
}

// IsPana reports whether s is a well-formed 3-digit number string.
func IsPana(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// normalizeColumns validates a column selection. An empty selection either
// expands to all ten columns or is rejected, depending on the scheme.
func normalizeColumns(cols []int, defaultAll bool) ([]int, error) {
	if len(cols) == 0 {
		if !defaultAll {
			return nil, invalidf("at least one column is required")
		}
		all := make([]int, NumColumns)
		for i := range all {
			all[i] = i + 1
		}
		return all, nil
	}
	for _, c := range cols {
		if c < 1 || c > NumColumns {
			return nil, invalidf("invalid column %d: must be between 1 and %d", c, NumColumns)
		}
	}
	return cols, nil
}

// collectColumns walks the selected columns in order, taking chart positions
// [lo,hi) of each, dropping duplicates as they are encountered. Attribution
// follows first-seen order.
func collectColumns(chart [][]string, cols []int, lo, hi int, subType string) []Pick {
	picks := make([]Pick, 0, len(cols)*(hi-lo))
	seen := make(map[string]struct{}, len(cols)*(hi-lo))
	for _, col := range cols {
		for _, n := range chart[col-1][lo:hi] {
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			picks = append(picks, Pick{Number: n, Column: col, SubType: subType})
		}
	}
	return picks
}

// SingleSelector bets one literal pana.
type SingleSelector struct {
	Number string
}

func (SingleSelector) Scheme() BetType { return BetSingle }

func (s SingleSelector) Resolve() ([]Pick, error) {
	if !IsPana(s.Number) {
		return nil, invalidf("number must be exactly 3 digits, got %q", s.Number)
	}
	return []Pick{{Number: s.Number}}, nil
}

// SPSelector covers the SP block of the selected columns; all ten columns
// when none are given.
type SPSelector struct {
	Columns []int
}

func (SPSelector) Scheme() BetType { return BetSP }

func (s SPSelector) Resolve() ([]Pick, error) {
	cols, err := normalizeColumns(s.Columns, true)
	if err != nil {
		return nil, err
	}
	return collectColumns(MainChart, cols, 0, SPSize, ""), nil
}

// DPSelector covers the DP block of the selected columns; all ten columns
// when none are given.
type DPSelector struct {
	Columns []int
}

func (DPSelector) Scheme() BetType { return BetDP }

func (s DPSelector) Resolve() ([]Pick, error) {
	cols, err := normalizeColumns(s.Columns, true)
	if err != nil {
		return nil, err
	}
	return collectColumns(MainChart, cols, SPSize, ColumnSize, ""), nil
}

// JodiSelector covers a slice of the Jodi Vagar columns. Type 5 takes the
// first five numbers of each column, type 7 the last seven, type 12 all.
type JodiSelector struct {
	Columns  []int
	JodiType int
}

func (JodiSelector) Scheme() BetType { return BetJodi }

func (s JodiSelector) Resolve() ([]Pick, error) {
	cols, err := normalizeColumns(s.Columns, false)
	if err != nil {
		return nil, err
	}
	sub := fmt.Sprintf("%d", s.JodiType)
	switch s.JodiType {
	case 5:
		return collectColumns(JodiVagarChart, cols, 0, 5, sub), nil
	case 7:
		return collectColumns(JodiVagarChart, cols, 5, 12, sub), nil
	case 12:
		return collectColumns(JodiVagarChart, cols, 0, 12, sub), nil
	default:
		return nil, invalidf("invalid jodi type %d: must be 5, 7 or 12", s.JodiType)
	}
}

// DadarSelector always covers the full Dadar table.
type DadarSelector struct{}

func (DadarSelector) Scheme() BetType { return BetDadar }

func (DadarSelector) Resolve() ([]Pick, error) {
	picks := make([]Pick, len(DadarNumbers))
	for i, n := range DadarNumbers {
		picks[i] = Pick{Number: n, SubType: string(BetDadar)}
	}
	return picks, nil
}

// EkiSelector covers the fixed Eki table.
type EkiSelector struct{}

func (EkiSelector) Scheme() BetType { return BetEki }

func (EkiSelector) Resolve() ([]Pick, error) {
	return tagged(EkiNumbers, string(BetEki)), nil
}

// BekiSelector covers the fixed Beki table.
type BekiSelector struct{}

func (BekiSelector) Scheme() BetType { return BetBeki }

func (BekiSelector) Resolve() ([]Pick, error) {
	return tagged(BekiNumbers, string(BetBeki)), nil
}

func tagged(numbers []string, subType string) []Pick {
	picks := make([]Pick, len(numbers))
	for i, n := range numbers {
		picks[i] = Pick{Number: n, SubType: subType}
	}
	return picks
}

// AbrCutSelector covers the ABR-Cut block of the selected columns.
type AbrCutSelector struct {
	Columns []int
}

func (AbrCutSelector) Scheme() BetType { return BetAbrCut }

func (s AbrCutSelector) Resolve() ([]Pick, error) {
	cols, err := normalizeColumns(s.Columns, false)
	if err != nil {
		return nil, err
	}
	return collectColumns(AbrCutChart, cols, 0, AbrCutChartSize, ""), nil
}

// JodiPanelSelector covers a prefix of the Jodi Panel columns. Type 6 and 7
// take the first six or seven numbers of each column, type 9 all nine.
type JodiPanelSelector struct {
	Columns   []int
	PanelType int
}

func (JodiPanelSelector) Scheme() BetType { return BetJodiPanel }

func (s JodiPanelSelector) Resolve() ([]Pick, error) {
	cols, err := normalizeColumns(s.Columns, false)
	if err != nil {
		return nil, err
	}
	switch s.PanelType {
	case 6, 7, 9:
	default:
		return nil, invalidf("invalid panel type %d: must be 6, 7 or 9", s.PanelType)
	}
	sub := fmt.Sprintf("%d", s.PanelType)
	return collectColumns(JodiPanelChart, cols, 0, s.PanelType, sub), nil
}

// CommonPanaSelector covers every chart pana whose decimal form contains the
// search digit. The narrow variant scans SP numbers only, the wide variant SP
// and DP.
type CommonPanaSelector struct {
	Digit     int
	IncludeDP bool
}

func (s CommonPanaSelector) Scheme() BetType {
	if s.IncludeDP {
		return BetCommonPana56
	}
	return BetCommonPana36
}

func (s CommonPanaSelector) Resolve() ([]Pick, error) {
	if s.Digit < 0 || s.Digit > 9 {
		return nil, invalidf("invalid search digit %d: must be between 0 and 9", s.Digit)
	}
	hi := SPSize
	if s.IncludeDP {
		hi = ColumnSize
	}
	digit := fmt.Sprintf("%d", s.Digit)
	seen := make(map[string]struct{})
	var numbers []string
	for _, col := range MainChart {
		for _, n := range col[:hi] {
			if !strings.Contains(n, digit) {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			numbers = append(numbers, n)
		}
	}
	if len(numbers) == 0 {
		return nil, invalidf("no chart numbers contain the digit %d", s.Digit)
	}
	sort.Strings(numbers)
	picks := make([]Pick, len(numbers))
	for i, n := range numbers {
		picks[i] = Pick{Number: n}
	}
	return picks, nil
}

// SetPanaSelector covers the whole family group of one pana.
type SetPanaSelector struct {
	Number string
}

func (SetPanaSelector) Scheme() BetType { return BetSetPana }

func (s SetPanaSelector) Resolve() ([]Pick, error) {
	if !IsPana(s.Number) {
		return nil, invalidf("number must be exactly 3 digits, got %q", s.Number)
	}
	family, ok := FindFamilyGroup(s.Number)
	if !ok {
		return nil, invalidf("number %s is not part of any family group", s.Number)
	}
	picks := make([]Pick, len(family.Numbers))
	for i, n := range family.Numbers {
		picks[i] = Pick{Number: n, Family: family.Name}
	}
	return picks, nil
}
