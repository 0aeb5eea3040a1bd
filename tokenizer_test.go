package portfolio

import (
	"reflect"
	"testing"
)

func TestSplitLine(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "a,b,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "quoted field containing the delimiter",
			line: `"07/01/2024","Buy","$1,000.00"`,
			want: []string{"07/01/2024", "Buy", "$1,000.00"},
		},
		{
			name: "doubled quote is a literal quote",
			line: `"APPLE ""INC""",10`,
			want: []string{`APPLE "INC"`, "10"},
		},
		{
			name: "empty fields survive",
			line: "a,,c,",
			want: []string{"a", "", "c", ""},
		},
		{
			name: "unterminated quote closes at end of line",
			line: `"open quote,still same field`,
			want: []string{"open quote,still same field"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := splitLine(tc.line, ',')
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("splitLine(%q) = %q, want %q", tc.line, got, tc.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	text := "\uFEFFh1,h2\r\na,b\r\n\r\nc,d\n"
	rows := Tokenize(text, TokenizeOptions{})
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (blank line dropped)", len(rows))
	}
	if rows[0].Headers[0] != "h1" {
		t.Errorf("BOM not stripped from first header: %q", rows[0].Headers[0])
	}
	if rows[0].Line != 2 || rows[1].Line != 4 {
		t.Errorf("line numbers = %d, %d, want 2, 4", rows[0].Line, rows[1].Line)
	}
	if got := rows[1].Field("h2"); got != "d" {
		t.Errorf("Field(h2) = %q, want d", got)
	}
}

func TestTokenize_HeaderAndDataOffsets(t *testing.T) {
	text := "meta 1\nmeta 2\nh1,h2\nskipped junk\nignored too\na,b\nc,d\n"
	rows := Tokenize(text, TokenizeOptions{HeaderRow: 2, DataStart: 5})
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Fields[0] != "a" || rows[1].Fields[0] != "c" {
		t.Errorf("data rows = %v, %v", rows[0].Fields, rows[1].Fields)
	}
}

func TestTokenize_MaxRows(t *testing.T) {
	text := "h\n1\n2\n3\n4\n"
	rows := Tokenize(text, TokenizeOptions{MaxRows: 2})
	if len(rows) != 2 {
		t.Errorf("got %d rows, want 2 (preview cap)", len(rows))
	}
}

func TestTokenize_HeaderBeyondFile(t *testing.T) {
	if rows := Tokenize("only line\n", TokenizeOptions{HeaderRow: 5}); rows != nil {
		t.Errorf("got %v, want nil", rows)
	}
}

// The tokenizer must reproduce quoted field values exactly, including
// embedded delimiters and unescaped doubled quotes.
func TestTokenize_RoundTripQuoted(t *testing.T) {
	text := "name,value\n" + `"a,b,c","say ""hi"""` + "\n"
	rows := Tokenize(text, TokenizeOptions{})
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if got := rows[0].Field("name"); got != "a,b,c" {
		t.Errorf("Field(name) = %q, want %q", got, "a,b,c")
	}
	if got := rows[0].Field("value"); got != `say "hi"` {
		t.Errorf("Field(value) = %q, want %q", got, `say "hi"`)
	}
}
