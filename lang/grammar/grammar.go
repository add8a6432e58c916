// Package grammar holds the language's EBNF grammar as a data file.
// grammar_test.go checks that grammar.ebnf parses and that every production
// is defined and reachable from Program; it does not compare the grammar with
// the parse-rule table in lang/compiler. It has no runtime role; the compiler
// does not parse grammar.ebnf, it implements the same grammar directly as Go
// code.
package grammar
