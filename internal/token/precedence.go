package token

// GetOperatorPrecedence returns the binding power of a binary operator
// token for precedence-climbing expression parsing. Zero means k is not a
// binary operator.
func (k Kind) GetOperatorPrecedence() int {
	switch k {
	case LogicalOr:
		return 1
	case LogicalAnd:
		return 2
	case BitwiseOr:
		return 3
	case BitwiseXor:
		return 4
	case BitwiseAnd:
		return 5
	case DoubleEquals, TripleEquals, NotEqual, StrictNotEqual:
		return 6
	case LessThan, GreaterThan, LessThanOrEqual, GreaterThanOrEqual:
		return 7
	case BitwiseLeftShift, BitwiseRightShift, ZeroFillRightShift:
		return 8
	case Plus, Minus:
		return 9
	case Asterisk, Slash, Percent:
		return 10
	case Exponentiation:
		return 11
	default:
		return 0
	}
}

// AsTermOperator returns k if it is a `+`/`-` term-level operator.
func (k Kind) AsTermOperator() (Kind, bool) {
	switch k {
	case Plus, Minus:
		return k, true
	default:
		return Invalid, false
	}
}

// AsFactorOperator returns k if it is a `*`/`/`/`%` factor-level operator.
func (k Kind) AsFactorOperator() (Kind, bool) {
	switch k {
	case Asterisk, Slash, Percent:
		return k, true
	default:
		return Invalid, false
	}
}

// AsUpdateOperator returns k if it is `++`/`--`.
func (k Kind) AsUpdateOperator() (Kind, bool) {
	switch k {
	case Increment, Decrement:
		return k, true
	default:
		return Invalid, false
	}
}
