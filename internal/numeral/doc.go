// Package numeral converts between Roman numerals and Arabic integers in the
// range 1-3999. It is pure and holds no mutable state: the symbol table and
// the numeral grammar are package-level values that are never modified after
// initialization, so every function is safe for concurrent use.
package numeral
