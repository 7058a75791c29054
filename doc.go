// Package rpncalc evaluates arithmetic expressions on arbitrary-precision
// floats.
//
// Expressions are made of non-negative decimal literals, the binary operators
// + - * /, and parentheses. Multiplication and division bind tighter than
// addition and subtraction, and operators of the same precedence associate to
// the left, so "10-2-3" is 5 and "2+3*4" is 14.
//
// Evaluation happens in three steps. The input is split into tokens; each
// parenthesized group is rearranged into reverse Polish notation by operator
// precedence; and each group's RPN sequence is folded on a value stack, the
// result becoming an operand of the enclosing group.
//
// Dividing a nonzero value by zero gives a signed infinity. Operations which
// would produce NaN in IEEE arithmetic, such as 0/0, return a DomainError.
//
package rpncalc
