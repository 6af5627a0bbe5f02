package scaffold

import (
	"github.com/frontstrap/frontstrap/internal/runner"
)

// createCommand builds the generator invocation. It runs inside the freshly
// created project directory and targets ".", so the generator never picks the
// directory name itself. npm needs "--" to forward flags to create-vite.
func createCommand(pm, template, dir string) runner.Command {
	args := []string{"create", "vite", ".", "--template", template}
	if pm == "npm" {
		args = []string{"create", "vite@latest", ".", "--", "--template", template}
	}
	return runner.Command{
		Name: pm,
		Args: args,
		Dir:  dir,
		// create-vite asks whether to try the experimental rolldown bundler; decline.
		Stdin: "n\n",
	}
}

// installCommand installs what package.json already declares.
func installCommand(pm, dir string) runner.Command {
	return runner.Command{Name: pm, Args: []string{"install"}, Dir: dir}
}

// addCommand adds packages, as dev dependencies when dev is set.
func addCommand(pm, dir string, dev bool, pkgs []string) runner.Command {
	args := []string{"add"}
	if dev {
		args = append(args, "-D")
	}
	if pm == "npm" {
		args = []string{"install"}
		if dev {
			args = append(args, "--save-dev")
		}
	}
	args = append(args, pkgs...)
	return runner.Command{Name: pm, Args: args, Dir: dir}
}
