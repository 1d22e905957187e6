package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"calcpad/internal/config"
	"calcpad/internal/domain"
	"calcpad/internal/evaluator"
	"calcpad/internal/web"
)

// isolateEnv unsets CALCPAD_* for the test; t.Setenv restores them afterwards.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CALCPAD_ADDR", "CALCPAD_LOG_LEVEL", "CALCPAD_LOG_FILE", "CALCPAD_MAX_BODY_BYTES"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// run executes the CLI with an isolated config file, environment and plain output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	isolateEnv(t)
	remoteURL = ""
	dir := t.TempDir()
	root := newRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", filepath.Join(dir, "config.json"), "--color", "never"}, args...))
	err := execute(root)
	return out.String(), err
}

func TestEval(t *testing.T) {
	cases := map[string]string{
		"2+3*4": "14\n",
		"10/0":  "Infinity\n",
		"5*":    "Error\n",
	}
	for expr, want := range cases {
		got, err := run(t, "", "eval", expr)
		if err != nil {
			t.Fatalf("eval %q: %v", expr, err)
		}
		if got != want {
			t.Errorf("eval %q printed %q, want %q", expr, got, want)
		}
	}
}

func TestEval_JoinsArgs(t *testing.T) {
	got, err := run(t, "", "eval", "7", "÷", "2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "3.5\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEval_Remote(t *testing.T) {
	ts := httptest.NewServer(web.NewServer("", 4096, evaluator.Default, nil).Handler())
	defer ts.Close()

	got, err := run(t, "", "eval", "--remote", ts.URL, "6*7")
	if err != nil {
		t.Fatalf("remote eval: %v", err)
	}
	if got != "42\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPress(t *testing.T) {
	got, err := run(t, "", "press", "+", "1", ".", "5", ".", "×", "÷", "4", "=")
	if err != nil {
		t.Fatal(err)
	}
	if got != "1.5×4\n6\n" {
		t.Fatalf("got %q", got)
	}

	got, err = run(t, "", "press", "9", "/", "0", "=", "C")
	if err != nil {
		t.Fatal(err)
	}
	if got != "\n0\n" {
		t.Fatalf("after clear got %q", got)
	}
}

func TestRoot_PipeMode(t *testing.T) {
	got, err := run(t, "2+2\n\n-5+3\n1/0\n")
	if err != nil {
		t.Fatal(err)
	}
	if got != "4\n-2\nInfinity\n" {
		t.Fatalf("got %q", got)
	}
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calcpad.json")
	isolateEnv(t)
	remoteURL = ""
	root := newRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "config", "init"})
	if err := execute(root); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing: %v", err)
	}

	got, err := run(t, "", "--addr", "127.0.0.1:1234", "config")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `"addr": "127.0.0.1:1234"`) {
		t.Fatalf("flag override missing from %s", got)
	}
}

func TestRun_IgnoresAmbientEnv(t *testing.T) {
	t.Setenv("CALCPAD_ADDR", "10.0.0.1:1")
	got, err := run(t, "", "config")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "10.0.0.1:1") {
		t.Fatalf("environment leaked into config: %s", got)
	}
}

func TestEval_RemoteUnreachableClosesApp(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	logPath := filepath.Join(t.TempDir(), "calcpad.log")
	_, err := run(t, "", "--log-file", logPath, "eval", "--remote", url, "1+1")
	if err == nil || !strings.Contains(err.Error(), "unreachable") {
		t.Fatalf("want unreachable error, got %v", err)
	}
	if appCtx != nil {
		t.Fatal("app left open after a failed command")
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("log file was not opened: %v", err)
	}
}

func TestColorResult(t *testing.T) {
	applyColor(config.ColorNever)
	for _, r := range []domain.Result{"42", domain.ResultError, domain.ResultInfinity} {
		if got := colorResult(r); got != r.String() {
			t.Errorf("colorResult(%q) = %q", r, got)
		}
	}
	if !domain.Result("-1.5").IsNumeric() || domain.ResultError.IsNumeric() || domain.ResultInfinity.IsNumeric() {
		t.Fatal("IsNumeric misclassifies results")
	}
}
