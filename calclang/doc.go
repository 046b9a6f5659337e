// Package calclang implements a small arithmetic expression language over
// + - * / ( ) and floating-point literals.
//
// A source line flows strictly forward through three stages: the lexer turns
// the string into offset-carrying tokens, the parser builds a syntax tree by
// recursive descent, and the evaluator folds the tree into a float32. The
// first failing stage stops the pipeline with a Diagnostic pointing at the
// offending byte.
package calclang
