//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var binDir string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "vvm-e2e-*")
	if err != nil {
		panic(err)
	}
	binDir = tmpDir

	for _, tool := range []string{"vvm", "vyper"} {
		//nolint:gosec // Building binaries with static arguments, not user input
		cmd := exec.Command("go", "build", "-o", filepath.Join(binDir, tool), "./cmd/"+tool)
		cmd.Dir = ".."
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			panic("failed to build " + tool + " binary: " + err.Error())
		}
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")

	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	// Each script gets its own isolated vvm home.
	env.Setenv("VVM_HOME", filepath.Join(env.WorkDir, ".vvm"))

	return nil
}
