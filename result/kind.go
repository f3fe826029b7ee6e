package result

// Kind classifies an [Error] into one of a closed set of categories.
type Kind uint8

const (
	KindGeneric        Kind = iota // Unclassified failure; the zero value.
	KindArithmetic                 // Arithmetic failure.
	KindFloatingPoint              // Floating-point failure.
	KindOverflow                   // Result does not fit its type.
	KindZeroDivision               // Division or modulo by zero.
	KindAssertion                  // Failed assertion.
	KindAttribute                  // Missing or invalid attribute.
	KindIndex                      // Index out of range.
	KindKey                        // Missing or duplicate key.
	KindOS                         // Operating-system call failed.
	KindTimeout                    // Operation timed out.
	KindRuntime                    // Failure detected at run time.
	KindNotImplemented             // Operation not implemented.
	KindSyntax                     // Malformed input text.
	KindSystem                     // Internal system failure.
	KindType                       // Wrong type.
	KindValue                      // Right type, unacceptable value.
)

// NumKinds is the number of kinds in the taxonomy.
const NumKinds = 17

var kindNames = [NumKinds]string{
	KindGeneric:        "GenericError",
	KindArithmetic:     "ArithmeticError",
	KindFloatingPoint:  "FloatingPointError",
	KindOverflow:       "OverflowError",
	KindZeroDivision:   "ZeroDivisionError",
	KindAssertion:      "AssertionError",
	KindAttribute:      "AttributeError",
	KindIndex:          "IndexError",
	KindKey:            "KeyError",
	KindOS:             "OSError",
	KindTimeout:        "TimeoutError",
	KindRuntime:        "RuntimeError",
	KindNotImplemented: "NotImplementedError",
	KindSyntax:         "SyntaxError",
	KindSystem:         "SystemError",
	KindType:           "TypeError",
	KindValue:          "ValueError",
}

// KindName returns the stable name of kind, for example "ValueError".
// Values outside the taxonomy map to "UnknownError".
func KindName(kind Kind) string {
	if !kind.Valid() {
		return "UnknownError"
	}
	return kindNames[kind]
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return KindName(k)
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return int(k) < NumKinds
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, NumKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}
