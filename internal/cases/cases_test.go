package cases

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/msto63/brackets/foundation/brackets/parser"
	mdwerror "github.com/msto63/brackets/foundation/core/error"
	mdwlog "github.com/msto63/brackets/foundation/core/log"
)

func newTestRunner(t *testing.T, opts Options) *Runner {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = mdwlog.NewDiscard()
	}
	r, err := NewRunner(opts)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	return r
}

func intPtr(n int) *int { return &n }

func TestLoadFile_YAML(t *testing.T) {
	cases, err := LoadFile("testdata/grammar.yaml")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(cases) != 13 {
		t.Fatalf("len(cases) = %d, want 13", len(cases))
	}

	first := cases[0]
	if first.Name != "atom square" || first.Input != "B" || first.Want != "SQ(A)" {
		t.Errorf("first case = %+v", first)
	}
	if first.Line != 3 {
		t.Errorf("first.Line = %d, want 3", first.Line)
	}

	empty := cases[11]
	if empty.Input != "" || empty.Error != "UnexpectedSymbol" || empty.Position == nil || *empty.Position != 0 {
		t.Errorf("empty case = %+v", empty)
	}
}

func TestLoadFile_Text(t *testing.T) {
	cases, err := LoadFile("testdata/grammar.txt")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	expected := []Case{
		{Name: "line 2", Input: "B", Want: "SQ(A)", Line: 2},
		{Name: "line 3", Input: "A", Want: "RD(A)", Line: 3},
		{Name: "line 4", Input: "[[B](A)]", Want: "SQ(SQ(A),RD(A))", Line: 4},
		{Name: "line 5", Input: "((A)[B])", Line: 5},
		{Name: "line 7", Input: "", Error: "UnexpectedSymbol", Line: 7},
		{Name: "line 8", Input: "[[A](B)]", Error: "expected '[', got 'A'", Line: 8},
	}

	if len(cases) != len(expected) {
		t.Fatalf("len(cases) = %d, want %d", len(cases), len(expected))
	}
	for i, want := range expected {
		got := cases[i]
		if got.Name != want.Name || got.Input != want.Input || got.Want != want.Want ||
			got.Error != want.Error || got.Line != want.Line {
			t.Errorf("case %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name string
		path string
		code mdwerror.Code
	}{
		{"missing", filepath.Join(dir, "missing.yaml"), mdwerror.CodeNotFound},
		{"broken yaml", write("broken.yaml", "cases: [\n"), mdwerror.CodeInvalidFormat},
		{"want and error", write("both.yaml", "- input: B\n  want: SQ(A)\n  error: EndOfInput\n"), mdwerror.CodeValidationFailed},
		{"position without error", write("pos.yml", "- input: B\n  position: 1\n"), mdwerror.CodeValidationFailed},
		{"empty error expectation", write("bang.txt", "B => !\n"), mdwerror.CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("LoadFile() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestParseYAML_List(t *testing.T) {
	cases, err := ParseYAML([]byte("- input: B\n- input: A\n  want: RD(A)\n"))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("len(cases) = %d, want 2", len(cases))
	}
	if cases[0].Name != "case 1" || cases[1].Name != "case 2" {
		t.Errorf("default names = %q, %q", cases[0].Name, cases[1].Name)
	}
	if cases[1].Line != 2 {
		t.Errorf("cases[1].Line = %d, want 2", cases[1].Line)
	}

	cases, err = ParseYAML(nil)
	if err != nil || len(cases) != 0 {
		t.Errorf("ParseYAML(nil) = %v, %v", cases, err)
	}
}

func TestRunner_RunFile(t *testing.T) {
	for _, file := range []string{"testdata/grammar.yaml", "testdata/grammar.txt"} {
		t.Run(file, func(t *testing.T) {
			r := newTestRunner(t, Options{CheckMirror: true})

			report, err := r.RunFile(context.Background(), file)
			if err != nil {
				t.Fatalf("RunFile() error = %v", err)
			}
			if !report.OK() {
				for _, res := range report.Results {
					if !res.Passed {
						t.Errorf("%s (%q): %s", res.Case.Name, res.Case.Input, res.Reason)
					}
				}
			}
			if report.Source != file {
				t.Errorf("Source = %q, want %q", report.Source, file)
			}
			if report.ID == "" {
				t.Error("report should carry a run ID")
			}
		})
	}
}

func TestRunner_Judge(t *testing.T) {
	tests := []struct {
		name   string
		c      Case
		passed bool
		reason string
	}{
		{"parses", Case{Input: "B"}, true, ""},
		{"rendering matches", Case{Input: "A", Want: "RD(A)"}, true, ""},
		{"rendering differs", Case{Input: "A", Want: "SQ(A)"}, false, "got RD(A), want SQ(A)"},
		{"unexpected error", Case{Input: "X"}, false, "unexpected error: unexpected symbol 'X' at pos 0"},
		{"kind matches", Case{Input: "AA", Error: "TrailingInput"}, true, ""},
		{"kind case insensitive", Case{Input: "AA", Error: "trailinginput"}, true, ""},
		{"message fragment", Case{Input: "[", Error: "expected '['"}, true, ""},
		{"position matches", Case{Input: "[[A](B)]", Error: "UnexpectedChar", Position: intPtr(2)}, true, ""},
		{"position differs", Case{Input: "[[A](B)]", Error: "UnexpectedChar", Position: intPtr(3)}, false, "error at pos 2, want pos 3"},
		{"wrong kind", Case{Input: "AA", Error: "EndOfInput"}, false, `error "extra characters after valid expression at pos 1" does not match "EndOfInput"`},
		{"expected error", Case{Input: "B", Error: "EndOfInput"}, false, `expected error "EndOfInput", got SQ(A)`},
	}

	r := newTestRunner(t, Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.runCase(tt.c)
			if res.Passed != tt.passed {
				t.Errorf("Passed = %v, want %v (reason %q)", res.Passed, tt.passed, res.Reason)
			}
			if res.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", res.Reason, tt.reason)
			}
		})
	}
}

func TestRunner_ResultDetails(t *testing.T) {
	r := newTestRunner(t, Options{})

	res := r.runCase(Case{Input: "[[B](A)", Error: "EndOfInput"})
	if res.Error != "unexpected end of input, expected ']'" {
		t.Errorf("Error = %q", res.Error)
	}
	if res.Position != 7 {
		t.Errorf("Position = %d, want 7", res.Position)
	}

	res = r.runCase(Case{Input: "[[B](A)]"})
	if res.Got != "SQ(SQ(A),RD(A))" {
		t.Errorf("Got = %q", res.Got)
	}
}

func TestRunner_FailFast(t *testing.T) {
	cases := []Case{
		{Name: "ok", Input: "B"},
		{Name: "bad", Input: "X"},
		{Name: "never run", Input: "A"},
	}

	report, err := newTestRunner(t, Options{FailFast: true}).Run(context.Background(), cases)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Total() != 2 || report.Failed != 1 {
		t.Errorf("report = %s, want stop after the first failure", report.Summary())
	}

	report, _ = newTestRunner(t, Options{}).Run(context.Background(), cases)
	if report.Summary() != "2 passed, 1 failed, 3 total" {
		t.Errorf("Summary() = %q", report.Summary())
	}
}

func TestRunner_ParserLimits(t *testing.T) {
	p, err := parser.New(parser.Options{Logger: mdwlog.NewDiscard(), MaxDepth: 1})
	if err != nil {
		t.Fatalf("parser.New() error = %v", err)
	}
	r := newTestRunner(t, Options{Parser: p, CheckMirror: true})

	report, _ := r.Run(context.Background(), []Case{
		{Input: "[[B](((A)[B]))]", Error: "NestingTooDeep", Position: intPtr(5)},
	})
	if !report.OK() {
		t.Errorf("limit case failed: %s", report.Results[0].Reason)
	}
}

func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := newTestRunner(t, Options{}).Run(ctx, []Case{{Input: "B"}})
	if !mdwerror.HasCode(err, mdwerror.CodeCanceled) {
		t.Fatalf("Run() error = %v, want %v", err, mdwerror.CodeCanceled)
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("error should wrap context.Canceled")
	}
	if report == nil || report.Total() != 0 {
		t.Errorf("report = %+v, want empty partial report", report)
	}

	ctx, cancel = context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	_, err = newTestRunner(t, Options{}).Run(ctx, []Case{{Input: "B"}})
	if !mdwerror.HasCode(err, mdwerror.CodeTimeout) {
		t.Errorf("Run() error = %v, want %v", err, mdwerror.CodeTimeout)
	}
}

func TestRunner_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.txt")
	if err := os.WriteFile(path, []byte("B => SQ(A)\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reports := make(chan *Report, 4)
	done := make(chan error, 1)
	r := newTestRunner(t, Options{})
	go func() {
		done <- r.Watch(ctx, path, 20*time.Millisecond, func(report *Report, err error) {
			if err == nil {
				reports <- report
			}
		})
	}()

	select {
	case report := <-reports:
		if !report.OK() || report.Total() != 1 {
			t.Fatalf("initial run = %s", report.Summary())
		}
	case <-ctx.Done():
		t.Fatal("no initial run")
	}

	if err := os.WriteFile(path, []byte("B => SQ(A)\nX => RD(A)\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case report := <-reports:
		if report.Total() != 2 || report.Failed != 1 {
			t.Errorf("rerun = %s, want 1 passed, 1 failed", report.Summary())
		}
	case <-ctx.Done():
		t.Fatal("no rerun after change")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch() error = %v", err)
	}
}

func TestReport_FailedResult(t *testing.T) {
	r := newTestRunner(t, Options{})
	report, _ := r.Run(context.Background(), []Case{{Name: "x", Input: "X"}})

	res := report.Results[0]
	if res.Passed || !strings.Contains(res.Reason, "unexpected error") {
		t.Errorf("result = %+v", res)
	}
	if report.StartedAt.IsZero() {
		t.Error("report timing not recorded")
	}
}
