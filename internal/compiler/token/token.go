// Package token defines the lexical token vocabulary shared by the lexer
// and parser.
package token

import "golang.org/x/text/cases"
import "golang.org/x/text/language"

// Type identifies the lexical class of a Token. It is a closed enumeration:
// new kinds are added here, never synthesized at runtime.
type Type string

// Position marks a 1-based line/column and a 0-based byte offset within a
// source text.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token is the indivisible unit the lexer produces and the parser consumes.
type Token struct {
	Type    Type
	Literal string
	Pos     Position
}

const (
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"
	NEWLINE Type = "NEWLINE"
	COMMENT Type = "COMMENT"

	IDENT          Type = "IDENT"
	NUMBER         Type = "NUMBER"
	STRING         Type = "STRING"
	TEMPLATE       Type = "TEMPLATE"
	TEMPLATE_HEAD  Type = "TEMPLATE_HEAD"
	TEMPLATE_MID   Type = "TEMPLATE_MID"
	TEMPLATE_TAIL  Type = "TEMPLATE_TAIL"
	TEMPLATE_WHOLE Type = "TEMPLATE_WHOLE"

	// Punctuation and operators.
	PLUS        Type = "+"
	PLUS_PLUS   Type = "++"
	PLUS_ASSIGN Type = "+="

	MINUS        Type = "-"
	MINUS_MINUS  Type = "--"
	MINUS_ASSIGN Type = "-="

	STAR          Type = "*"
	STAR_STAR     Type = "**"
	STAR_ASSIGN   Type = "*="
	STAR_STAR_ASG Type = "**="

	SLASH        Type = "/"
	SLASH_ASSIGN Type = "/="

	PERCENT        Type = "%"
	PERCENT_ASSIGN Type = "%="

	ASSIGN    Type = "="
	EQ        Type = "=="
	STRICT_EQ Type = "==="
	ARROW     Type = "=>"

	BANG        Type = "!"
	NOT_EQ      Type = "!="
	STRICT_NEQ  Type = "!=="

	LT       Type = "<"
	LT_EQ    Type = "<="
	SHL      Type = "<<"
	SHL_ASSIGN Type = "<<="

	GT         Type = ">"
	GT_EQ      Type = ">="
	SHR        Type = ">>"
	SHR_ASSIGN Type = ">>="
	USHR       Type = ">>>"
	USHR_ASSIGN Type = ">>>="

	AMP        Type = "&"
	AND        Type = "&&"
	AMP_ASSIGN Type = "&="
	AND_ASSIGN Type = "&&="

	PIPE        Type = "|"
	OR          Type = "||"
	PIPE_ASSIGN Type = "|="
	OR_ASSIGN   Type = "||="

	QUESTION        Type = "?"
	NULLISH         Type = "??"
	NULLISH_ASSIGN  Type = "??="
	OPTIONAL_CHAIN  Type = "?."

	DOT      Type = "."
	ELLIPSIS Type = "..."

	CARET        Type = "^"
	CARET_ASSIGN Type = "^="
	TILDE        Type = "~"

	COMMA     Type = ","
	COLON     Type = ":"
	SEMICOLON Type = ";"

	LPAREN   Type = "("
	RPAREN   Type = ")"
	LBRACE   Type = "{"
	RBRACE   Type = "}"
	LBRACKET Type = "["
	RBRACKET Type = "]"

	AT Type = "@"

	// Keywords (Tajik Cyrillic vocabulary, see Keywords table below).
	LET_KW       Type = "LET"
	CONST_KW     Type = "CONST"
	FUNCTION_KW  Type = "FUNCTION"
	IF_KW        Type = "IF"
	ELSE_KW      Type = "ELSE"
	WHILE_KW     Type = "WHILE"
	FOR_KW       Type = "FOR"
	RETURN_KW    Type = "RETURN"
	CLASS_KW     Type = "CLASS"
	NEW_KW       Type = "NEW"
	THIS_KW      Type = "THIS"
	TRUE_KW      Type = "TRUE"
	FALSE_KW     Type = "FALSE"
	NULL_KW      Type = "NULL"
	UNDEFINED_KW Type = "UNDEFINED"
	IMPORT_KW    Type = "IMPORT"
	EXPORT_KW    Type = "EXPORT"
	FROM_KW      Type = "FROM"
	AS_KW        Type = "AS"
	DEFAULT_KW   Type = "DEFAULT"
	ASYNC_KW     Type = "ASYNC"
	AWAIT_KW     Type = "AWAIT"
	TRY_KW       Type = "TRY"
	CATCH_KW     Type = "CATCH"
	FINALLY_KW   Type = "FINALLY"
	THROW_KW     Type = "THROW"
	INTERFACE_KW Type = "INTERFACE"
	TYPE_KW      Type = "TYPE"
	EXTENDS_KW   Type = "EXTENDS"
	IMPLEMENTS_KW Type = "IMPLEMENTS"
	SUPER_KW     Type = "SUPER"
	CONSTRUCTOR_KW Type = "CONSTRUCTOR"
	PRIVATE_KW   Type = "PRIVATE"
	PROTECTED_KW Type = "PROTECTED"
	PUBLIC_KW    Type = "PUBLIC"
	STATIC_KW    Type = "STATIC"
	ABSTRACT_KW  Type = "ABSTRACT"
	NAMESPACE_KW Type = "NAMESPACE"
	KEYOF_KW     Type = "KEYOF"
	READONLY_KW  Type = "READONLY"
	UNIQUE_KW    Type = "UNIQUE"
	IN_KW        Type = "IN"
	OF_KW        Type = "OF"
	INSTANCEOF_KW Type = "INSTANCEOF"
	TYPEOF_KW    Type = "TYPEOF"
	SWITCH_KW    Type = "SWITCH"
	CASE_KW      Type = "CASE"
	BREAK_KW     Type = "BREAK"
	CONTINUE_KW  Type = "CONTINUE"
	VOID_KW      Type = "VOID"
	ANY_KW       Type = "ANY"
	UNKNOWN_KW   Type = "UNKNOWN"
	NEVER_KW     Type = "NEVER"

	// Primitive type keywords.
	STRING_TYPE_KW  Type = "STRING_TYPE"
	NUMBER_TYPE_KW  Type = "NUMBER_TYPE"
	BOOLEAN_TYPE_KW Type = "BOOLEAN_TYPE"

	// Built-in namespace/method kinds: the lexer classifies these so the
	// parser can accept them as identifiers in receiver position while the
	// generator's remap table decides, by context, whether to rewrite them.
	CONSOLE_KW Type = "CONSOLE"
	MATH_KW    Type = "MATH"
	ARRAY_KW   Type = "ARRAY"
	STRING_NS_KW Type = "STRING_NS"
	OBJECT_KW  Type = "OBJECT"
	MAP_KW     Type = "MAP"
	SET_KW     Type = "SET"
	ERROR_KW   Type = "ERROR"

	BUILTIN_MEMBER Type = "BUILTIN_MEMBER"
)

// keywords maps every reserved Tajik Cyrillic lexeme (lowercased) to its
// Type. The vocabulary is part of the external contract: adding or
// removing an entry is a breaking change.
var keywords = map[string]Type{
	"тағйирёбанда": LET_KW,
	"собит":        CONST_KW,
	"функсия":      FUNCTION_KW,
	"агар":         IF_KW,
	"вагарна":      ELSE_KW,
	"то":           WHILE_KW,
	"барои":        FOR_KW,
	"бозгашт":      RETURN_KW,
	"синф":         CLASS_KW,
	"нав":          NEW_KW,
	"ин":           THIS_KW,
	"дуруст":       TRUE_KW,
	"нодуруст":     FALSE_KW,
	"холӣ":         NULL_KW,
	"номуайян":     UNDEFINED_KW,
	"ворид":        IMPORT_KW,
	"содир":        EXPORT_KW,
	"аз":           FROM_KW,
	"чун":          AS_KW,
	"пешфарз":      DEFAULT_KW,
	"ҳамзамон":     ASYNC_KW,
	"интизор":      AWAIT_KW,
	"кӯшиш":        TRY_KW,
	"гирифтан":     CATCH_KW,
	"ниҳоят":       FINALLY_KW,
	"партофтан":    THROW_KW,
	"интерфейс":    INTERFACE_KW,
	"навъ":         TYPE_KW,
	"мерос":        EXTENDS_KW,
	"татбиқ":       IMPLEMENTS_KW,
	"волидайн":     SUPER_KW,
	"конструктор":  CONSTRUCTOR_KW,
	"хусусӣ":       PRIVATE_KW,
	"ҳифзшуда":     PROTECTED_KW,
	"оммавӣ":       PUBLIC_KW,
	"статикӣ":      STATIC_KW,
	"абстрактӣ":    ABSTRACT_KW,
	"фазо":         NAMESPACE_KW,
	"калидҳо":      KEYOF_KW,
	"танҳохониш":   READONLY_KW,
	"ягона":        UNIQUE_KW,
	"дар":          IN_KW,
	"аз_рӯи":       OF_KW,
	"намуди":       INSTANCEOF_KW,
	"навъи":        TYPEOF_KW,
	"интихоб":      SWITCH_KW,
	"ҳолат":        CASE_KW,
	"шикастан":     BREAK_KW,
	"идома":        CONTINUE_KW,
	"холигӣ":       VOID_KW,
	"ҳар":          ANY_KW,
	"номаълум":     UNKNOWN_KW,
	"ҳеҷгоҳ":       NEVER_KW,

	"сатр":    STRING_TYPE_KW,
	"рақам":   NUMBER_TYPE_KW,
	"мантиқӣ": BOOLEAN_TYPE_KW,
}

// builtins maps lowercased built-in namespace names to dedicated kinds so
// the parser can treat them as identifiers while the generator decides
// whether to remap their members.
var builtins = map[string]Type{
	"console": CONSOLE_KW,
	"math":    MATH_KW,
	"array":   ARRAY_KW,
	"string":  STRING_NS_KW,
	"object":  OBJECT_KW,
	"map":     MAP_KW,
	"set":     SET_KW,
	"error":   ERROR_KW,
}

var caser = cases.Lower(language.Und)

// LookupIdent classifies a scanned identifier lexeme: reserved keyword,
// built-in namespace name, or a plain IDENT. Classification is
// case-insensitive per §4.1 ("lowercased lookup"); the original lexeme
// casing is preserved in the Token's Literal by the caller.
func LookupIdent(ident string) Type {
	folded := caser.String(ident)
	if tok, ok := keywords[folded]; ok {
		return tok
	}
	if tok, ok := builtins[folded]; ok {
		return tok
	}
	return IDENT
}

// IsBuiltinNamespace reports whether tt is one of the dedicated built-in
// namespace kinds (console, Math, Array, String, Object, Map, Set, Error).
func IsBuiltinNamespace(tt Type) bool {
	switch tt {
	case CONSOLE_KW, MATH_KW, ARRAY_KW, STRING_NS_KW, OBJECT_KW, MAP_KW, SET_KW, ERROR_KW:
		return true
	}
	return false
}
