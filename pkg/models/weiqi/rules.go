package weiqi

// LocalRules are the rules a single placement is judged by.
type LocalRules struct {
	SuicideAllowed bool `json:",default=false"`
}

// Rules configure a whole game. They carry no state and are passed by value.
// Bikomi is twice the komi, which keeps half points integral. Superko
// compares the side to move as well as the stones unless PositionalSuperko
// is set.
type Rules struct {
	Local             LocalRules `json:",optional"`
	AlternatePlay     bool       `json:",default=true"`
	Superko           bool       `json:",default=true"`
	PositionalSuperko bool       `json:",default=false"`
	Bikomi            int        `json:",default=13"`
	FixedHandicap     bool       `json:",default=false"`
}

func DefaultRules() Rules {
	return Rules{
		AlternatePlay: true,
		Superko:       true,
		Bikomi:        13,
	}
}

func (r Rules) Komi() float64 {
	return float64(r.Bikomi) / 2
}
