package rpncalc

import (
	"errors"
	"math/big"
	"strconv"
)

// Errors for classifying evaluation failures with errors.Is. Every error
// returned for invalid input unwraps to one of these.
var (
	// ErrNumber is the error for literals which are not valid numbers, like
	// "1.2.3" or ".".
	ErrNumber = errors.New("invalid number")
	// ErrCharacter is the error for characters which are not part of the
	// expression syntax. It only occurs with the Strict option.
	ErrCharacter = errors.New("unrecognized character")
	// ErrUnderflow is the error for operators without two operands.
	ErrUnderflow = errors.New("stack underflow")
	// ErrDomain is the error for operations without a real result, like 0/0.
	ErrDomain = errors.New("result is not a number")
	// ErrMalformed is the error for unmatched brackets, empty groups, and
	// operands without an operator between them.
	ErrMalformed = errors.New("malformed expression")
	// ErrTooDeep is the error for brackets nested beyond the MaxDepth option.
	ErrTooDeep = errors.New("brackets nested too deeply")
)

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the opening bracket, or the empty string if a close bracket had
	// no opening bracket.
	Left string
	// Right is the closing bracket, or the empty string if an open bracket was
	// never closed.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrMalformed
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string at
	// the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Unwrap() error {
	return ErrMalformed
}

// UnderflowError is an error indicating an operator applied with fewer than
// two operands, as in "+5" or "5*". It implements InputError.
type UnderflowError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator.
	Operator string
	// Have is the number of operands that were available.
	Have int
}

func (err *UnderflowError) Error() string {
	return errpos(err.Col, "operator "+err.Operator+" needs two operands, have "+strconv.Itoa(err.Have))
}

func (err *UnderflowError) Pos() int {
	return err.Col
}

func (err *UnderflowError) Unwrap() error {
	return ErrUnderflow
}

// OperandError is an error indicating a subexpression which leaves more than
// one value, as in "2 3" or "2(3)". It implements InputError.
type OperandError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// Count is the number of values left over.
	Count int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "missing operator between "+strconv.Itoa(err.Count)+" values")
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Unwrap() error {
	return ErrMalformed
}

// DepthError is an error indicating brackets nested more deeply than allowed
// by MaxDepth. It implements InputError.
type DepthError struct {
	// Col is the position of the first bracket beyond the limit.
	Col int
	// Max is the nesting limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "brackets nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

func (err *DepthError) Unwrap() error {
	return ErrTooDeep
}

// DomainError is an error returned when an operation has no representable
// result, i.e. where IEEE arithmetic would produce NaN: 0/0, ±Inf/±Inf,
// Inf-Inf, or 0*Inf. DomainError unwraps to ErrDomain.
type DomainError struct {
	// X is the right-hand operand of the operation.
	X *big.Float
	// Func is the operator.
	Func string
	// Col is the position of the operator.
	Col int
}

func (err DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return errpos(err.Col, r)
}

func (err DomainError) Pos() int {
	return err.Col
}

func (err DomainError) Unwrap() error {
	return ErrDomain
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*UnderflowError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = DomainError{}
)
