package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/zzag/plasma5-wallpapers-dynamic-extras/internal/services"
)

func stubCommand(t *testing.T, mode string) *[]string {
	t.Helper()
	var capturedArgs []string
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		capturedArgs = append([]string(nil), args...)
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "BUILDER_HELPER_MODE="+mode)
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})
	return &capturedArgs
}

func TestCLIBuildArguments(t *testing.T) {
	args := stubCommand(t, "success")

	cli := NewCLI(WithBinary("/opt/kdynamicwallpaperbuilder"))
	err := cli.Build(context.Background(), "/work/wallpaper.json", "/home/user/wallpaper.avif", "5")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	want := []string{"--output", "/home/user/wallpaper.avif", "--speed", "5", "/work/wallpaper.json"}
	if len(*args) != len(want) {
		t.Fatalf("unexpected arguments %v", *args)
	}
	for n := range want {
		if (*args)[n] != want[n] {
			t.Fatalf("argument %d: expected %q, got %q", n, want[n], (*args)[n])
		}
	}
}

func TestCLIBuildValidatesInputs(t *testing.T) {
	cli := NewCLI()
	if err := cli.Build(context.Background(), "", "out.avif", "5"); err == nil {
		t.Fatal("expected error for missing description path")
	}
	if err := cli.Build(context.Background(), "wallpaper.json", "", "5"); err == nil {
		t.Fatal("expected error for missing output path")
	}
	if err := cli.Build(context.Background(), "wallpaper.json", "out.avif", " "); err == nil {
		t.Fatal("expected error for missing speed")
	}
}

func TestCLIBuildFailurePropagates(t *testing.T) {
	stubCommand(t, "fail")

	cli := NewCLI()
	err := cli.Build(context.Background(), "/work/wallpaper.json", "/home/user/wallpaper.avif", "5")
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	defer os.Exit(0)

	if os.Getenv("BUILDER_HELPER_MODE") == "fail" {
		fmt.Fprintln(os.Stderr, "Unable to open the description file")
		os.Exit(1)
	}
}
