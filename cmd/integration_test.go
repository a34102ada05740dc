package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// resetFlags clears sticky flag state that persists across invocations.
func resetFlags() {
	for _, f := range []*pflag.FlagSet{rootCmd.PersistentFlags(), reportCmd.Flags()} {
		f.VisitAll(func(fl *pflag.Flag) {
			if sv, ok := fl.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = fl.Value.Set(fl.DefValue)
			}
			fl.Changed = false
		})
	}
	cfg = nil
}

// runCmd is a helper to execute the root command with args and capture stdout.
func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execCmd(args...)
	if err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out
}

func execCmd(args ...string) (string, error) {
	resetFlags()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// isolateHome points HOME at a temp dir so no user config leaks into tests.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	t.Cleanup(func() { os.Setenv("HOME", oldHome) })
	os.Setenv("HOME", home)
	return home
}

func TestCLI_ReportHTMLToFile(t *testing.T) {
	home := isolateHome(t)
	outPath := filepath.Join(home, "out", "wine.html")

	out := runCmd(t, "report", "--output", outPath)
	if !strings.Contains(out, "Wrote html report to "+outPath) {
		t.Fatalf("expected confirmation line, got: %q", out)
	}
	body, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(body)
	for _, want := range []string{
		"<caption>Flavanoids Statistics</caption>",
		"<caption>Gamma Statistics</caption>",
		"<tr><th>Measure</th><th>Class 1</th><th>Class 2</th><th>Class 3</th></tr>",
		"<tr><td>Mean</td><td>2.982</td><td>2.081</td><td>0.781</td></tr>",
		"<tr><td>Median</td><td>2.980</td><td>2.030</td><td>0.685</td></tr>",
		"<tr><td>Mode</td><td>2.680</td><td>2.030</td><td>0.580</td></tr>",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in html output:\n%s", want, html)
		}
	}
}

func TestCLI_ReportMarkdownStdout(t *testing.T) {
	isolateHome(t)
	out := runCmd(t, "report", "--format", "md", "--feature", "flavanoids")
	if !strings.HasPrefix(out, "[WINE STATISTICS]") {
		t.Fatalf("expected markdown header, got: %q", out)
	}
	if !strings.Contains(out, "| Mode | 2.680 | 2.030 | 0.580 |") {
		t.Fatalf("expected mode row, got: %q", out)
	}
	if strings.Contains(out, "Gamma Statistics") {
		t.Fatalf("gamma should not be reported when only flavanoids is selected")
	}
}

func TestCLI_ReportFromCSV(t *testing.T) {
	home := isolateHome(t)
	data := filepath.Join(home, "wine.csv")
	csv := "Alcohol,Flavanoids,Ash,Hue,Magnesium\n" +
		"1,3.0,2,1,100\n" +
		"1,5.0,2,1,0\n" +
		"2,4.0,3,1,100\n"
	if err := os.WriteFile(data, []byte(csv), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	out := runCmd(t, "report", "--data", data, "--format", "json")
	for _, want := range []string{`"source": "` + data + `"`, `"records": 3`, `"Infinity"`, `"0.030"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in json output:\n%s", want, out)
		}
	}
}

func TestCLI_ReportErrors(t *testing.T) {
	isolateHome(t)
	if _, err := execCmd("report", "--format", "pdf"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if _, err := execCmd("report", "--feature", "proline"); err == nil {
		t.Fatalf("expected error for unknown feature")
	}
	if _, err := execCmd("report", "--data", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing dataset")
	}
}

func TestCLI_ConfigSetDrivesReport(t *testing.T) {
	isolateHome(t)
	runCmd(t, "config", "set", "format", "yaml")
	runCmd(t, "config", "set", "features", "Hue,gamma")

	show := runCmd(t, "config", "show")
	if !strings.Contains(show, "format: yaml") || !strings.Contains(show, "features: hue,gamma") {
		t.Fatalf("unexpected config show output: %q", show)
	}

	out := runCmd(t, "report")
	if !strings.Contains(out, "title: Hue Statistics") || !strings.Contains(out, "title: Gamma Statistics") {
		t.Fatalf("expected yaml report with configured features, got:\n%s", out)
	}

	if _, err := execCmd("config", "set", "group_by", "cultivar"); err == nil {
		t.Fatalf("expected error for unknown group_by field")
	}
}

func TestCLI_Features(t *testing.T) {
	isolateHome(t)
	out := runCmd(t, "features")
	if !strings.Contains(out, "gamma") || !strings.Contains(out, "Ash * Hue / Magnesium") {
		t.Fatalf("expected gamma in feature list, got: %q", out)
	}
	if !strings.Contains(out, "malic-acid") {
		t.Fatalf("expected field features in list, got: %q", out)
	}
}
