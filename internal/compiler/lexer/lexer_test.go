package lexer

import (
	"testing"

	"github.com/somonscript/somon/internal/compiler/token"
)

func allTokens(t *testing.T, input string) []token.Token {
	t.Helper()
	l := New(input)
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken() error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

func TestEndsInEOF(t *testing.T) {
	toks := allTokens(t, "собит x = 1;")
	last := toks[len(toks)-1]
	if last.Type != token.EOF {
		t.Errorf("last token = %s, want EOF", last.Type)
	}
}

func TestEmptySourceEOF(t *testing.T) {
	toks := allTokens(t, "")
	if len(toks) != 1 || toks[0].Type != token.EOF {
		t.Errorf("expected exactly one EOF token for empty source, got %v", toks)
	}
}

func TestBOMStripped(t *testing.T) {
	withBOM := allTokens(t, "\xEF\xBB\xBFсобит x = 1;")
	withoutBOM := allTokens(t, "собит x = 1;")
	if len(withBOM) != len(withoutBOM) {
		t.Fatalf("BOM changed token count: %d vs %d", len(withBOM), len(withoutBOM))
	}
	for i := range withBOM {
		if withBOM[i].Type != withoutBOM[i].Type || withBOM[i].Literal != withoutBOM[i].Literal {
			t.Errorf("token %d differs: %+v vs %+v", i, withBOM[i], withoutBOM[i])
		}
	}
}

func TestKeywords(t *testing.T) {
	toks := allTokens(t, "собит тағйирёбанда функсия агар вагарна")
	want := []token.Type{token.CONST_KW, token.LET_KW, token.FUNCTION_KW, token.IF_KW, token.ELSE_KW, token.EOF}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d = %s, want %s", i, toks[i].Type, w)
		}
	}
}

func TestCyrillicIdentifier(t *testing.T) {
	toks := allTokens(t, "рӯз")
	if toks[0].Type != token.IDENT || toks[0].Literal != "рӯз" {
		t.Errorf("got %+v, want IDENT 'рӯз'", toks[0])
	}
}

func TestMultiCharOperators(t *testing.T) {
	cases := []struct {
		src  string
		want token.Type
	}{
		{"++", token.PLUS_PLUS},
		{"+=", token.PLUS_ASSIGN},
		{"**=", token.STAR_STAR_ASG},
		{"**", token.STAR_STAR},
		{"===", token.STRICT_EQ},
		{"==", token.EQ},
		{"=>", token.ARROW},
		{"!==", token.STRICT_NEQ},
		{"!=", token.NOT_EQ},
		{"<<=", token.SHL_ASSIGN},
		{">>>=", token.USHR_ASSIGN},
		{">>>", token.USHR},
		{">>=", token.SHR_ASSIGN},
		{">>", token.SHR},
		{"&&=", token.AND_ASSIGN},
		{"&&", token.AND},
		{"||=", token.OR_ASSIGN},
		{"||", token.OR},
		{"??=", token.NULLISH_ASSIGN},
		{"??", token.NULLISH},
		{"?.", token.OPTIONAL_CHAIN},
		{"...", token.ELLIPSIS},
	}
	for _, c := range cases {
		toks := allTokens(t, c.src)
		if toks[0].Type != c.want {
			t.Errorf("tokenizing %q: got %s, want %s", c.src, toks[0].Type, c.want)
		}
	}
}

func TestNumberTwoDecimalPointsError(t *testing.T) {
	l := New("1.2.3")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected LexError for number with two decimal points")
	}
	lexErr, ok := err.(*LexError)
	if !ok || lexErr.Pos.Column != 4 {
		t.Fatalf("expected LexError at the second dot (column 4), got %v", err)
	}
}

func TestUnterminatedStringError(t *testing.T) {
	l := New(`"hello`)
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected LexError for unterminated string")
	}
}

func TestUnterminatedTemplateErrorAtOpeningBacktick(t *testing.T) {
	l := New("`hello")
	_, err := l.NextToken()
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("expected *LexError, got %T", err)
	}
	if lexErr.Pos.Column != 1 {
		t.Errorf("expected error position at opening backtick (column 1), got column %d", lexErr.Pos.Column)
	}
}

func TestTemplateLiteralCapturesInterpolationVerbatim(t *testing.T) {
	toks := allTokens(t, "`салом ${ном + \"!\"}`")
	if toks[0].Type != token.TEMPLATE_WHOLE {
		t.Fatalf("expected TEMPLATE_WHOLE, got %s", toks[0].Type)
	}
	want := "салом ${ном + \"!\"}"
	if toks[0].Literal != want {
		t.Errorf("got %q, want %q", toks[0].Literal, want)
	}
}

func TestUnknownCharacterError(t *testing.T) {
	l := New("§")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected LexError for unknown character")
	}
}

func TestPositionsWithinBounds(t *testing.T) {
	src := "собит x = 1;\nбозгашт x;"
	toks := allTokens(t, src)
	for _, tok := range toks {
		if tok.Pos.Line < 1 || tok.Pos.Column < 0 {
			t.Errorf("token %+v has out-of-bounds position", tok)
		}
	}
}
