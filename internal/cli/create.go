package cli

import (
	"log/slog"

	"github.com/frontstrap/frontstrap/internal/project"
	"github.com/frontstrap/frontstrap/internal/scaffold"
	"github.com/frontstrap/frontstrap/internal/ui"
	"github.com/spf13/cobra"
)

// Parent directory for the generated project.
var createParentDir string

func init() {
	rootCmd.Flags().StringVar(&createParentDir, "dir", ".", "Directory to create the project in")
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := project.ValidateName(name); err != nil {
		return err
	}
	typ, err := project.ParseType(args[1])
	if err != nil {
		return err
	}

	s := settings()
	out := cmd.OutOrStdout()
	r := newRunner(out, cmd.ErrOrStderr(), s.Timeout, slog.Default())
	p := ui.NewPrinter(out)

	opts := project.Options{Name: name, Type: typ, ParentDir: createParentDir}
	result, err := scaffold.New(r, p, s, slog.Default()).Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	printResult(p, typ, result, s.PackageManager)
	return nil
}

func printResult(p *ui.Printer, typ project.Type, result *scaffold.Result, pm string) {
	p.Println()
	p.Printf("Created %s project at %s/\n", typ, result.ProjectDir)

	if len(result.Warnings) > 0 {
		p.Println("\nWarnings:")
		for _, w := range result.Warnings {
			p.Printf("  - %s\n", w)
		}
	}

	p.Println("\nNext steps:")
	p.Printf("  1. cd %s\n", result.ProjectDir)
	p.Printf("  2. %s run dev\n", pm)

	p.Println("\nAvailable scripts:")
	p.Printf("  %s run dev      Start development server\n", pm)
	p.Printf("  %s run build    Build for production\n", pm)
	p.Printf("  %s run preview  Preview production build\n", pm)
}
