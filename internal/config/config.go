// Package config centralizes the closed lexical and type tables the rest of
// the pipeline treats as fixed: reserved words, operator lexemes, and the
// primitive type names. Keeping these in one place mirrors how the rest of
// the pack centralizes its reserved-word and operator tables instead of
// scattering string literals across lexer, parser and analyzer.
package config

// Keywords is the closed set of reserved words from spec.md §4.1.
var Keywords = map[string]bool{
	"int": true, "float": true, "bool": true, "void": true,
	"if": true, "else": true, "while": true, "for": true,
	"return": true, "true": true, "false": true, "print": true,
	"read": true, "switch": true, "case": true, "default": true,
	"break": true,
}

// Operators lists multi-character operators before their single-character
// prefixes so a longest-match scan finds them first.
var Operators = []string{
	"==", "!=", "<=", ">=", "&&", "||",
	"+", "-", "*", "/", "%", "=", "<", ">", "!",
}

// Punctuation is the closed set of single punctuation characters.
var Punctuation = map[byte]bool{
	'(': true, ')': true, '{': true, '}': true,
	'[': true, ']': true, ';': true, ',': true, '.': true,
}

// PrimitiveTypes is the closed set of type keywords recognized by the
// analyzer (void is only valid as a function return type).
var PrimitiveTypes = map[string]bool{
	"int": true, "float": true, "bool": true, "void": true,
}
