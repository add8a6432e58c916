package token

// Precedence is a binding-power level in the precedence lattice used by the
// Pratt parser: strictly ordered from weakest to strongest.
type Precedence uint8

const (
	PrecNone       Precedence = iota
	PrecAssignment            // =
	PrecOr                    // or
	PrecAnd                   // and
	PrecEquality              // == !=
	PrecComparison            // < > <= >=
	PrecTerm                  // + -
	PrecFactor                // * / ^
	PrecUnary                 // ! -
	PrecCall                  // ()
	PrecPrimary
)

// Next returns the next-stronger precedence level. It must not be called
// with PrecPrimary, the strongest level.
func (p Precedence) Next() Precedence {
	if p == PrecPrimary {
		panic("token: no precedence above PrecPrimary")
	}
	return p + 1
}
