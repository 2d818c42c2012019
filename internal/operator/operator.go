// Package operator defines the closed catalogue of built-in operator
// identifiers (spec.md §4.5): a sum type, its canonical print form,
// and its family grouping.
//
// Grounded on the teacher's pkg/token keyword table (a big iota block
// plus a name->constant lookup map) and on original_source/src/calc/operator/mod.rs's
// OperatorType enum and from_str/to_str pair, which this package is a
// direct structural port of. The special forms are catalogue members
// here too; internal/evaluator intercepts them before dispatch.
package operator

// Type is the closed sum of built-in operator identifiers.
type Type int

const (
	// Arithmetic
	Add Type = iota
	Sub
	Mul
	Div
	Rem
	Pow

	// Transcendental (float fallback, spec.md §9)
	Log
	Ln
	Exp
	Sin
	Cos
	Tan
	ASin
	ACos
	ATan
	SinH
	CosH
	TanH
	ASinH
	ACosH
	ATanH

	// Ordering / equality
	Eq
	NEq
	Lt
	LtEq
	Gt
	GtEq

	// RoundIdent
	Round
	Floor
	Ceiling
	ZeroP
	OddP
	EvenP

	// Logic (If is a special form; kept here too since it is a
	// catalogue member with a canonical print form, per spec.md §4.5)
	If
	And
	Or
	Not
	Xor

	// Quote (special form)
	Quote

	// Listings
	List
	Cons
	Car
	Cdr
	Cadr
	Cddr
	Caddr
	Cdddr
	ListLen // supplemented from original_source, see SPEC_FULL.md

	// Transforms
	Map
	Reduce
	Filter
	Sort
	RangeList

	// Define / Lambda (special forms)
	Define
	Lambda

	// Table / Help
	Table
	Help

	// Matrix ops
	MatrixMake
	MatrixAppend
	MatrixSet
	MatrixGet
	MatrixDet
	MatrixInv
	MatrixFromFn
)

// Family groups operators into the catalogue's families.
// internal/builtins does not consult it; each builtin checks its own
// arity and argument kinds.
type Family int

const (
	FamilyArithmetic Family = iota
	FamilyTranscendental
	FamilyOrdering
	FamilyRoundIdent
	FamilyLogic
	FamilySpecial // quote, define, lambda (if is in FamilyLogic)
	FamilyListings
	FamilyTransforms
	FamilyTableHelp
	FamilyMatrix
)

var names = map[Type]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Rem: "%", Pow: "pow",

	Log: "log", Ln: "ln", Exp: "exp",
	Sin: "sin", Cos: "cos", Tan: "tan",
	ASin: "asin", ACos: "acos", ATan: "atan",
	SinH: "sinh", CosH: "cosh", TanH: "tanh",
	ASinH: "asinh", ACosH: "acosh", ATanH: "atanh",

	Eq: "=", NEq: "!=", Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=",

	Round: "round", Floor: "floor", Ceiling: "ceiling",
	ZeroP: "zero?", OddP: "odd?", EvenP: "even?",

	If: "if", And: "and", Or: "or", Not: "not", Xor: "xor",

	Quote: "quote",

	List: "list", Cons: "cons", Car: "car", Cdr: "cdr",
	Cadr: "cadr", Cddr: "cddr", Caddr: "caddr", Cdddr: "cdddr",
	ListLen: "list-len",

	Map: "map", Reduce: "reduce", Filter: "filter",
	Sort: "sort", RangeList: "range-list",

	Define: "define", Lambda: "lambda",

	Table: "table", Help: "help",

	MatrixMake:   "matrix-make",
	MatrixAppend: "matrix-append",
	MatrixSet:    "matrix-set",
	MatrixGet:    "matrix-get",
	MatrixDet:    "matrix-det",
	MatrixInv:    "matrix-inv",
	MatrixFromFn: "matrix-from-fn",
}

var byName map[string]Type

func init() {
	byName = make(map[string]Type, len(names))
	for t, n := range names {
		byName[n] = t
	}
	// The fancy unicode forms parse as aliases; String() always returns
	// the ASCII form ("<=", ">=", "!=").
	byName["≤"] = LtEq
	byName["≥"] = GtEq
	byName["≠"] = NEq
}

// String returns the operator's canonical print form.
func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "<unknown-operator>"
}

// Lookup resolves a word to an operator Type, returning ok=false if
// the word does not name a built-in operator. This is the tokenizer's
// first classification step (spec.md §4.1).
func Lookup(word string) (Type, bool) {
	t, ok := byName[word]
	return t, ok
}

// Family reports which validation family an operator belongs to.
func (t Type) Family() Family {
	switch t {
	case Add, Sub, Mul, Div, Rem, Pow:
		return FamilyArithmetic
	case Log, Ln, Exp, Sin, Cos, Tan, ASin, ACos, ATan, SinH, CosH, TanH, ASinH, ACosH, ATanH:
		return FamilyTranscendental
	case Eq, NEq, Lt, LtEq, Gt, GtEq:
		return FamilyOrdering
	case Round, Floor, Ceiling, ZeroP, OddP, EvenP:
		return FamilyRoundIdent
	case If, And, Or, Not, Xor:
		return FamilyLogic
	case Quote, Define, Lambda:
		return FamilySpecial
	case List, Cons, Car, Cdr, Cadr, Cddr, Caddr, Cdddr, ListLen:
		return FamilyListings
	case Map, Reduce, Filter, Sort, RangeList:
		return FamilyTransforms
	case Table, Help:
		return FamilyTableHelp
	case MatrixMake, MatrixAppend, MatrixSet, MatrixGet, MatrixDet, MatrixInv, MatrixFromFn:
		return FamilyMatrix
	default:
		return FamilySpecial
	}
}

// IsSpecialForm reports whether the operator bypasses eager argument
// evaluation (spec.md §4.4 "Special forms"). Evaluated uniformly
// otherwise, through internal/builtins' dispatch table.
func (t Type) IsSpecialForm() bool {
	switch t {
	case Quote, Define, Lambda, If:
		return true
	default:
		return false
	}
}
