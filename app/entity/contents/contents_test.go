package contents_test

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/wasya-io/go-textscribe/app/entity/contents"
	"github.com/wasya-io/go-textscribe/app/entity/core"
)

func TestWriterDefaults(t *testing.T) {
	w := contents.NewWriter()

	if w.Level() != 0 {
		t.Errorf("Expected level 0, got %d", w.Level())
	}
	if w.Tab() != "    " {
		t.Errorf("Expected four spaces, got %q", w.Tab())
	}
	if w.LineSeparator() != "\n" {
		t.Errorf("Expected newline separator, got %q", w.LineSeparator())
	}
	if got := w.String(); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
	if w.LineCount() != 0 {
		t.Errorf("Expected no lines, got %d", w.LineCount())
	}
}

func TestWriterOptions(t *testing.T) {
	w := contents.NewWriter(
		contents.WithInitialLevel(2),
		contents.WithTab("\t"),
		contents.WithLineSeparator("\r\n"),
	)

	w.WriteLine("a").Outdent().Write("b")

	want := "\t\ta\r\n\tb"
	if got := w.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWriterNegativeInitialLevel(t *testing.T) {
	w := contents.NewWriter(contents.WithInitialLevel(-3))
	if w.Level() != 0 {
		t.Errorf("Expected level clamped to 0, got %d", w.Level())
	}
}

func TestWriterWriteAndEndLine(t *testing.T) {
	w := contents.NewWriter()
	w.Write("Hello").Write(", World!").EndLine()

	want := "Hello, World!\n"
	if got := w.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if lines := w.Lines(); len(lines) != 2 || lines[0] != "Hello, World!" || lines[1] != "" {
		t.Errorf("Unexpected lines: %q", lines)
	}
}

func TestWriterIndentScenario(t *testing.T) {
	w := contents.NewWriter()
	w.WriteLine("A").Indent().WriteLine("B").Outdent().WriteLine("C")

	want := "A\n    B\nC\n"
	if got := w.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWriterNewlineTwice(t *testing.T) {
	w := contents.NewWriter()
	w.Newline().Newline()

	if w.LineCount() != 3 {
		t.Fatalf("Expected 3 slots, got %d", w.LineCount())
	}
	if got := w.String(); got != "\n\n" {
		t.Errorf("Expected %q, got %q", "\n\n", got)
	}
}

func TestWriterTabWidth(t *testing.T) {
	w := contents.NewWriter(contents.WithTabWidth(2))
	w.Indent().WriteLine("one").Indent().Write("two")

	want := "  one\n    two"
	if got := w.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWriterCustomSeparator(t *testing.T) {
	w := contents.NewWriter(contents.WithLineSeparator("|"))
	w.WriteLine("a").WriteLine("b").Write("c")

	if got := w.String(); got != "a|b|c" {
		t.Errorf("Expected %q, got %q", "a|b|c", got)
	}
}

func TestWriterIndentClamp(t *testing.T) {
	tests := []struct {
		name   string
		deltas []int
		want   []int
	}{
		{name: "stays positive", deltas: []int{1, 2, -1}, want: []int{1, 3, 2}},
		{name: "clamps below zero", deltas: []int{-1, 2, -5, 1}, want: []int{0, 2, 0, 1}},
		{name: "zero delta", deltas: []int{0, 0}, want: []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := contents.NewWriter()
			for i, d := range tt.deltas {
				w.IndentBy(d)
				if w.Level() != tt.want[i] {
					t.Errorf("After delta %d: expected level %d, got %d", i, tt.want[i], w.Level())
				}
				if w.Level() < 0 {
					t.Errorf("Level went negative: %d", w.Level())
				}
			}
		})
	}
}

func TestWriterOutdentBy(t *testing.T) {
	w := contents.NewWriter(contents.WithInitialLevel(5))
	w.OutdentBy(2)
	if w.Level() != 3 {
		t.Errorf("Expected level 3, got %d", w.Level())
	}
	w.OutdentBy(-1)
	if w.Level() != 4 {
		t.Errorf("Expected level 4, got %d", w.Level())
	}
	w.Outdent().Outdent().Outdent().Outdent().Outdent()
	if w.Level() != 0 {
		t.Errorf("Expected level 0, got %d", w.Level())
	}
}

func TestWriterEndLineIdempotent(t *testing.T) {
	setups := map[string]func(w *contents.Writer){
		"empty":        func(w *contents.Writer) {},
		"open line":    func(w *contents.Writer) { w.Write("x") },
		"ended line":   func(w *contents.Writer) { w.WriteLine("x") },
		"indented mix": func(w *contents.Writer) { w.Indent().Write("a").Newline().Write("b") },
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			once := contents.NewWriter()
			setup(once)
			once.EndLine()

			many := contents.NewWriter()
			setup(many)
			many.EndLine().EndLine().EndLine()

			if once.LineCount() != many.LineCount() {
				t.Errorf("Expected %d slots, got %d", once.LineCount(), many.LineCount())
			}
			if once.String() != many.String() {
				t.Errorf("Expected %q, got %q", once.String(), many.String())
			}
		})
	}
}

func TestWriterEndLineOnEmptyWriter(t *testing.T) {
	w := contents.NewWriter()
	w.EndLine()
	if w.LineCount() != 0 {
		t.Errorf("Expected no lines, got %d", w.LineCount())
	}
}

func TestWriterBlankLineEqualsDoubleNewline(t *testing.T) {
	a := contents.NewWriter()
	a.Write("x").BlankLine().Write("y")

	b := contents.NewWriter()
	b.Write("x").Newline().Newline().Write("y")

	if a.String() != b.String() {
		t.Errorf("Expected %q, got %q", b.String(), a.String())
	}
	if a.String() != "x\n\ny" {
		t.Errorf("Expected %q, got %q", "x\n\ny", a.String())
	}
}

func TestWriterIndentedEmptyLines(t *testing.T) {
	tests := []struct {
		name  string
		build func(w *contents.Writer)
		want  string
	}{
		{
			name:  "newline after indent",
			build: func(w *contents.Writer) { w.Indent().Newline() },
			want:  "    \n",
		},
		{
			name:  "blankline after indent",
			build: func(w *contents.Writer) { w.Write("x").Indent().BlankLine() },
			want:  "x\n    \n",
		},
		{
			name:  "writeline empty after indent",
			build: func(w *contents.Writer) { w.IndentBy(2).WriteLine("") },
			want:  "        \n",
		},
		{
			name:  "blankline between indented lines",
			build: func(w *contents.Writer) { w.Indent().WriteLine("a").BlankLine().Write("b") },
			want:  "    a\n    \n    b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := contents.NewWriter()
			tt.build(w)
			if got := w.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestWriterBlankLineMaterializesAtCurrentLevel(t *testing.T) {
	w := contents.NewWriter()
	w.Write("x").Indent().BlankLine()

	if w.LineCount() != 3 {
		t.Fatalf("Expected 3 slots, got %d", w.LineCount())
	}
	line, ok := w.Slot(1).(*contents.Line)
	if !ok {
		t.Fatalf("Expected *Line, got %T", w.Slot(1))
	}
	if line.Level() != 1 || line.Content() != "" {
		t.Errorf("Expected empty line at level 1, got level %d content %q", line.Level(), line.Content())
	}
	if _, ok := w.Slot(2).(contents.Placeholder); !ok {
		t.Errorf("Expected Placeholder, got %T", w.Slot(2))
	}
}

func TestWriterLevelCapturedAtFirstWrite(t *testing.T) {
	w := contents.NewWriter()
	w.Indent().Write("start")
	w.IndentBy(3).Write(" more")
	w.SetLevel(0).Write(" end")

	line, ok := w.Slot(0).(*contents.Line)
	if !ok {
		t.Fatalf("Expected *Line, got %T", w.Slot(0))
	}
	if line.Level() != 1 {
		t.Errorf("Expected level 1, got %d", line.Level())
	}
	if got := w.String(); got != "    start more end" {
		t.Errorf("Expected %q, got %q", "    start more end", got)
	}
}

func TestWriterPlaceholderTakesLevelAtMaterialization(t *testing.T) {
	w := contents.NewWriter()
	w.WriteLine("a")
	w.Indent().Indent()

	if _, ok := w.Slot(1).(contents.Placeholder); !ok {
		t.Fatalf("Expected Placeholder, got %T", w.Slot(1))
	}

	w.Write("b")
	line, ok := w.Slot(1).(*contents.Line)
	if !ok {
		t.Fatalf("Expected *Line, got %T", w.Slot(1))
	}
	if line.Level() != 2 {
		t.Errorf("Expected level 2, got %d", line.Level())
	}
}

func TestWriterRenderIsPure(t *testing.T) {
	w := contents.NewWriter()
	w.WriteLine("a").Indent().Write("b")

	first := w.String()
	second := w.Render()
	if first != second {
		t.Errorf("Expected identical renders, got %q and %q", first, second)
	}
	if w.LineCount() != 2 || w.Level() != 1 {
		t.Errorf("Render mutated state: lines=%d level=%d", w.LineCount(), w.Level())
	}
}

func TestWriterSettingsApplyAtRender(t *testing.T) {
	w := contents.NewWriter()
	w.Indent().WriteLine("a").Write("b")

	w.SetTab("--").SetLineSeparator(";")
	if got := w.String(); got != "--a;--b" {
		t.Errorf("Expected %q, got %q", "--a;--b", got)
	}
}

func TestWriterWriteLineEmptyStillEnds(t *testing.T) {
	w := contents.NewWriter()
	w.Write("a").WriteLine("").WriteLine("")

	if got := w.String(); got != "a\n\n" {
		t.Errorf("Expected %q, got %q", "a\n\n", got)
	}
}

func TestWriterFormatted(t *testing.T) {
	w := contents.NewWriter()
	w.Writef("%s=%d", "x", 1).WriteLinef(";%v", true)

	if got := w.String(); got != "x=1;true\n" {
		t.Errorf("Expected %q, got %q", "x=1;true\n", got)
	}
}

func TestWriterSetTabValue(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "string", value: "\t", want: "\t"},
		{name: "int", value: 3, want: "   "},
		{name: "negative", value: -2, want: ""},
		{name: "float", value: 2.9, want: "  "},
		{name: "bool", value: true, want: "true"},
		{name: "huge", value: int64(1) << 40, want: strings.Repeat(" ", contents.MaxTabWidth)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := contents.NewWriter(contents.WithTabValue(tt.value))
			if w.Tab() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, w.Tab())
			}
		})
	}
}

func TestWriterMaxWidth(t *testing.T) {
	w := contents.NewWriter(contents.WithTabWidth(2))
	w.WriteLine("abc").Indent().WriteLine("日本語")

	// 2 + 3*2
	if got := w.MaxWidth(); got != 8 {
		t.Errorf("Expected width 8, got %d", got)
	}
}

func TestWriterLogsMaterialization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := core.NewMockLogger(ctrl)
	mockLogger.EXPECT().Log("contents", gomock.Any()).Times(2)

	w := contents.NewWriter(contents.WithLogger(mockLogger))
	w.Write("a").Write("b").Newline().Write("c")
}

// 書き込み・インデント・行終端を一通り組み合わせたシナリオ
func TestWriterAcceptance(t *testing.T) {
	w := contents.NewWriter()

	w.Write("Hello").Write(", World!").EndLine().
		WriteLine("Here is a new line for you!").
		Indent().
		WriteLine("This line is indented.").
		WriteLine("This one, too.").
		IndentBy(2).WriteLine("This one is indented 3 times!").
		Outdent().WriteLine("This is only indented 2 times.").
		SetLevel(0).WriteLine("This one is back to no-indent.").
		BlankLine().
		WriteLine("Maybe this is a new paragraph, or something.").
		EndLine().
		Write("This is still just on the next line, because the line was already ended.").
		EndLine().
		Write("Next line, again.").
		EndLine().EndLine().EndLine().
		WriteLine("It is idempotent when invoked multiple times in a row.")

	want := strings.Join([]string{
		"Hello, World!",
		"Here is a new line for you!",
		"    This line is indented.",
		"    This one, too.",
		"            This one is indented 3 times!",
		"        This is only indented 2 times.",
		"This one is back to no-indent.",
		"",
		"",
		"Maybe this is a new paragraph, or something.",
		"This is still just on the next line, because the line was already ended.",
		"Next line, again.",
		"It is idempotent when invoked multiple times in a row.",
		"",
	}, "\n")

	if got := w.String(); got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}
}
