package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/wasya-io/go-textscribe/app/entity/contents"
	"github.com/wasya-io/go-textscribe/app/entity/core"
	"github.com/wasya-io/go-textscribe/app/usecase/command"
)

func render(t *testing.T, source string) string {
	t.Helper()
	parser := NewStandardDirectiveParser(nil)
	commands, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return command.ExecuteAll(contents.NewWriter(), commands).String()
}

func TestStandardDirectiveParser_Parse(t *testing.T) {
	source := "# greeting\n" +
		"write Hello\n" +
		"write , World!\n" +
		"endline\n" +
		"\n" +
		"writeline A\n" +
		"indent\n" +
		"writeline B\n" +
		"outdent\n" +
		"writeline C\n"

	want := "Hello, World!\nA\n    B\nC\n"
	if got := render(t, source); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestStandardDirectiveParser_TextArguments(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "verbatim spaces", source: "write   x  ", want: "  x  "},
		{name: "quoted", source: `write "a\tb"`, want: "a\tb"},
		{name: "empty write", source: "write", want: ""},
		{name: "writeline without text", source: "writeline", want: "\n"},
		{name: "crlf input", source: "write a\r\nendline\r\n", want: "a\n"},
		{name: "leading indentation ignored", source: "   write a", want: "a"},
		{name: "tab separated", source: "write\tx y", want: "x y"},
		{name: "tab separated writeline", source: "writeline\ta\nwrite b", want: "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.source); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStandardDirectiveParser_Settings(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "tab width", source: "tab 2\nindent\nwriteline x", want: "  x\n"},
		{name: "tab literal", source: "tab ->\nindent 2\nwrite x", want: "->->x"},
		{name: "tab quoted number", source: "tab \"4\"\nindent\nwrite x", want: "4x"},
		{name: "linesep", source: "linesep |\nwriteline a\nwrite b", want: "a|b"},
		{name: "linesep quoted", source: "linesep \"\\r\\n\"\nwriteline a\nwrite b", want: "a\r\nb"},
		{name: "level default", source: "indent 3\nlevel\nwrite x", want: "x"},
		{name: "level explicit", source: "level 1\nwrite x", want: "    x"},
		{name: "outdent clamps", source: "outdent 5\nwrite x", want: "x"},
		{name: "negative indent", source: "indent 2\nindent -1\nwrite x", want: "    x"},
		{name: "blankline alias", source: "write a\nskipline\nwrite b", want: "a\n\nb"},
		{name: "tab separated amount", source: "indent\t2\nwrite x", want: "        x"},
		{name: "tab separated tab width", source: "tab\t2\nindent\nwrite x", want: "  x"},
		{name: "bare directive with trailing tab", source: "write a\nnewline\t\nwrite b", want: "a\nb"},
		{name: "huge tab width", source: "tab 4611686018427387904\nindent\nwrite x", want: strings.Repeat(" ", contents.MaxTabWidth) + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.source); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStandardDirectiveParser_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		line   int
		want   error
	}{
		{name: "unknown", source: "write a\nfrobnicate", line: 2, want: ErrUnknownDirective},
		{name: "bad amount", source: "indent many", line: 1, want: ErrInvalidArgument},
		{name: "bad quote", source: "newline\nnewline\nwrite \"open", line: 3, want: ErrInvalidArgument},
		{name: "missing tab", source: "tab", line: 1, want: ErrMissingArgument},
		{name: "missing linesep", source: "linesep", line: 1, want: ErrMissingArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewStandardDirectiveParser(nil)
			_, err := parser.Parse(tt.source)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected *ParseError, got %T", err)
			}
			if perr.Line != tt.line {
				t.Errorf("Expected line %d, got %d", tt.line, perr.Line)
			}
		})
	}
}

func TestStandardDirectiveParser_ParseLineSkips(t *testing.T) {
	parser := NewStandardDirectiveParser(nil)
	for _, line := range []string{"", "   ", "# comment", "\t# indented comment"} {
		cmd, ok, err := parser.ParseLine(line)
		if err != nil || ok || cmd != nil {
			t.Errorf("ParseLine(%q): expected skip, got %v %v %v", line, cmd, ok, err)
		}
	}
}

func TestStandardDirectiveParser_Logs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := core.NewMockLogger(ctrl)
	mockLogger.EXPECT().Log("parser", "parsed 2 directives")
	mockLogger.EXPECT().Log("error", gomock.Any())

	parser := NewStandardDirectiveParser(mockLogger)
	if _, err := parser.Parse("write a\nendline"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := parser.Parse("bogus"); err == nil {
		t.Error("Expected error")
	}
}
