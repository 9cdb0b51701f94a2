package cli_test

import (
	"bytes"
	"testing"

	"github.com/calvinalkan/benchan/internal/cli"
)

func Test_Bare_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	// Call Run directly without test helper (which adds --cwd)
	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(nil, &stdout, &stderr, []string{"benchan"}, nil, nil)

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stderr.String(), ""; got != want {
		t.Errorf("stderr=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stdout.String(), "benchan - cross-language benchmark log analyzer")
	cli.AssertContains(t, stdout.String(), "--cwd")
	cli.AssertContains(t, stdout.String(), "analyze")
	cli.AssertContains(t, stdout.String(), "champions [flags]")
}

func Test_Help_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"-h", "--help"} {
		c := cli.NewCLI(t)
		stdout, stderr, exitCode := c.Run(flag)

		if got, want := exitCode, 0; got != want {
			t.Errorf("%s: exitCode=%d, want=%d", flag, got, want)
		}

		if got, want := stderr, ""; got != want {
			t.Errorf("%s: stderr=%q, want=%q", flag, got, want)
		}

		cli.AssertContains(t, stdout, "Global flags:")
		cli.AssertContains(t, stdout, "--snapshot")
		cli.AssertContains(t, stdout, "print-config")
		cli.AssertContains(t, stdout, "Run 'benchan <command> --help'")
	}
}

func Test_Invalid_Global_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("--invalid-flag", "analyze")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stdout, ""; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	// Should show error message
	cli.AssertContains(t, stderr, "unknown flag")
	cli.AssertContains(t, stderr, "--invalid-flag")

	// Should show valid global options
	cli.AssertContains(t, stderr, "Global flags:")
	cli.AssertContains(t, stderr, "--input")
	cli.AssertContains(t, stderr, "--format")
}

func Test_Empty_Global_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"--input=", "--report=", "--snapshot=", "--format=", "--config="} {
		c := cli.NewCLI(t)
		stdout, stderr, exitCode := c.Run(flag, "analyze")

		if got, want := exitCode, 1; got != want {
			t.Errorf("%s: exitCode=%d, want=%d", flag, got, want)
		}

		if got, want := stdout, ""; got != want {
			t.Errorf("%s: stdout=%q, want=%q", flag, got, want)
		}

		cli.AssertContains(t, stderr, "flag value cannot be empty")
		cli.AssertContains(t, stderr, flag[:len(flag)-1])
	}
}

func Test_No_Command_When_Only_Flags_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("-v")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stdout, ""; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stderr, "no command provided")
	cli.AssertContains(t, stderr, "Commands:")
}

func Test_Unknown_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("frobnicate")

	cli.AssertContains(t, stderr, "unknown command: frobnicate")
	cli.AssertContains(t, stderr, "Commands:")
}

func Test_Command_Help_When_Invoked(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"analyze":      "Usage: benchan [global flags] analyze",
		"report":       "--data",
		"champions":    "--size",
		"sections":     "--trace",
		"watch":        "--debounce",
		"print-config": "Usage: benchan [global flags] print-config",
	}

	for name, want := range tests {
		c := cli.NewCLI(t)
		stdout := c.MustRun(name, "--help")

		cli.AssertContains(t, stdout, want)

		if c.Exists("results") {
			t.Errorf("%s --help should not write anything", name)
		}
	}
}

func Test_Invalid_Command_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("champions", "--bogus")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stderr, "unknown flag: --bogus")
	cli.AssertContains(t, stdout, "Usage: benchan [global flags] champions [flags]")
}

func Test_Invalid_Config_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".benchan.json", `{"snapshot_format": "xml"}`)

	stderr := c.MustFail("analyze")

	cli.AssertContains(t, stderr, "unknown snapshot format")
}

func Test_Positional_Args_Rejected_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("analyze", "extra", "args")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stderr, "unexpected arguments: extra args")
	cli.AssertContains(t, stdout, "Usage: benchan [global flags] analyze")

	if c.Exists("results") {
		t.Error("rejected command should not write anything")
	}
}
