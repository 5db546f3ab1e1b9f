package dsl

import "github.com/alecthomas/participle/v2/lexer"

// Lexer tokenizes schema definition files. Newlines are significant: they
// terminate column and check lines.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
	{Name: "Punct", Pattern: `[{}();]`},
	{Name: "Newline", Pattern: `[\r\n]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})
