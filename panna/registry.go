package panna

import "strings"

// Params carries the raw selector fields of a bet request. Each scheme's
// builder validates the fields it needs and ignores the rest.
type Params struct {
	Number    string
	Columns   []int
	JodiType  int
	PanelType int
	Digits    string
	Digit     *int
}

// Builder constructs a validated Resolver from raw params.
type Builder func(Params) (Resolver, error)

var builders = map[BetType]Builder{}

// Register binds a scheme tag to its resolver builder.
func Register(t BetType, b Builder) {
	builders[t] = b
}

// NewResolver dispatches a scheme tag to its registered builder.
func NewResolver(t BetType, p Params) (Resolver, error) {
	b, ok := builders[BetType(strings.ToUpper(string(t)))]
	if !ok {
		return nil, invalidf("unknown bet type %q", string(t))
	}
	return b(p)
}

func requireDigit(p Params) (int, error) {
	if p.Digit == nil {
		return 0, invalidf("search digit is required")
	}
	return *p.Digit, nil
}

func init() {
	Register(BetSingle, func(p Params) (Resolver, error) {
		return SingleSelector{Number: p.Number}, nil
	})
	Register(BetSP, func(p Params) (Resolver, error) {
		return SPSelector{Columns: p.Columns}, nil
	})
	Register(BetDP, func(p Params) (Resolver, error) {
		return DPSelector{Columns: p.Columns}, nil
	})
	Register(BetJodi, func(p Params) (Resolver, error) {
		return JodiSelector{Columns: p.Columns, JodiType: p.JodiType}, nil
	})
	Register(BetDadar, func(Params) (Resolver, error) {
		return DadarSelector{}, nil
	})
	Register(BetEki, func(Params) (Resolver, error) {
		return EkiSelector{}, nil
	})
	Register(BetBeki, func(Params) (Resolver, error) {
		return BekiSelector{}, nil
	})
	Register(BetAbrCut, func(p Params) (Resolver, error) {
		return AbrCutSelector{Columns: p.Columns}, nil
	})
	Register(BetJodiPanel, func(p Params) (Resolver, error) {
		return JodiPanelSelector{Columns: p.Columns, PanelType: p.PanelType}, nil
	})
	Register(BetMotar, func(p Params) (Resolver, error) {
		return MotarSelector{Digits: p.Digits}, nil
	})
	Register(BetCommonPana36, func(p Params) (Resolver, error) {
		d, err := requireDigit(p)
		if err != nil {
			return nil, err
		}
		return CommonPanaSelector{Digit: d}, nil
	})
	Register(BetCommonPana56, func(p Params) (Resolver, error) {
		d, err := requireDigit(p)
		if err != nil {
			return nil, err
		}
		return CommonPanaSelector{Digit: d, IncludeDP: true}, nil
	})
	Register(BetSetPana, func(p Params) (Resolver, error) {
		return SetPanaSelector{Number: p.Number}, nil
	})
}
