// localekit — compile per-language translation catalogs into a typed
// Go lookup artifact.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/localekit/localekit/catalog"
	"github.com/localekit/localekit/config"
	"github.com/localekit/localekit/i18n"
	"github.com/localekit/localekit/langid"
	"github.com/localekit/localekit/langmeta"
	"github.com/spf13/cobra"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "localekit",
		Short: "Compile translation catalogs into typed Go code",
		Long: `localekit — compile per-language translation catalogs into typed Go code.

Each language ships one JSON (or YAML) document mapping translation keys
to strings. One language is the fallback: it fixes the full key set and,
for keys carrying {placeholder} parameters, the parameter set. Every
other catalog is validated against it. The result is a generated Go
file: a closed language enumeration plus one method per key, falling
back to the fallback text for languages without an override.

Commands:
  generate    Validate the catalogs and write the generated Go file
  check       Validate only; show per-language coverage
  version     Show version information

Sources come from repeated --source flags or a .localekit.yaml project
file in the project root.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newGenerateCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// Shared flag handling
// ---------------------------------------------------------------------------

// sourceFlags are the generation settings shared by generate and check.
type sourceFlags struct {
	sources  []string
	fallback string
	name     string
	pkg      string
	output   string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.sources, "source", "s", nil, "Translation source as tag=path (repeatable)")
	cmd.Flags().StringVarP(&f.fallback, "fallback", "f", "", "Fallback language tag")
	cmd.Flags().StringVar(&f.name, "name", "", "Generated type name (default Lang)")
	cmd.Flags().StringVar(&f.pkg, "package", "", "Generated package name (default locale)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file path (default locale_gen.go)")
}

// builder resolves flags into a config.Builder. Without --source flags
// the .localekit.yaml project file is the sole source of truth; flags
// and project file are never mixed.
func (f *sourceFlags) builder() (*config.Builder, error) {
	if len(f.sources) == 0 {
		pf, err := config.LoadFile(rootDir)
		if err != nil {
			return nil, err
		}
		if pf == nil {
			return nil, fmt.Errorf(i18n.T("No sources configured: pass --source or create %s", config.FileName))
		}
		logInfo(i18n.T("Using project file %s", config.FileName))
		return pf.Builder(rootDir), nil
	}

	b := config.New().
		Fallback(f.fallback).
		Name(f.name).
		Package(f.pkg)
	if f.output != "" {
		b.Output(f.output)
	}
	for _, src := range f.sources {
		tag, path, err := parseSourceFlag(src)
		if err != nil {
			return nil, err
		}
		b.Source(tag, path)
	}
	return b, nil
}

// parseSourceFlag splits a --source value of the form tag=path.
func parseSourceFlag(s string) (tag, path string, err error) {
	tag, path, ok := strings.Cut(s, "=")
	if !ok || tag == "" || path == "" {
		return "", "", fmt.Errorf("invalid --source %q (expected tag=path)", s)
	}
	return tag, path, nil
}

// ---------------------------------------------------------------------------
// generate (validate catalogs + write the artifact)
// ---------------------------------------------------------------------------

func newGenerateCmd() *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Validate the catalogs and write the generated Go file",
		Long: `Parse the fallback catalog, validate and merge every other language,
and write the generated Go file. Validation failures abort the run;
no artifact is written on failure.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(&flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func runGenerate(flags *sourceFlags) error {
	b, err := flags.builder()
	if err != nil {
		return err
	}

	res, err := b.Generate()
	if err != nil {
		return err
	}

	for _, d := range res.Diagnostics {
		logWarning("%s", d)
	}
	logSuccess(i18n.T("Generated %s (%d languages, %d keys)", res.Output, res.Languages, res.Keys))
	return nil
}

// ---------------------------------------------------------------------------
// check (read-only: validation + coverage stats)
// ---------------------------------------------------------------------------

func newCheckCmd() *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate catalogs without generating code",
		Long: `Run the same parsing and validation as generate, then print
per-language coverage instead of writing the artifact.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(&flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func runCheck(flags *sourceFlags) error {
	b, err := flags.builder()
	if err != nil {
		return err
	}
	cfg, err := b.Build()
	if err != nil {
		return err
	}

	cat, diags, err := cfg.Check()
	if err != nil {
		return err
	}

	langs := cfg.Languages()

	fmt.Fprintf(os.Stderr, "\n%sLanguages%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	for i, lang := range langs {
		role := ""
		if i == 0 {
			role = " (fallback)"
		}
		fmt.Fprintf(os.Stderr, "  %s  %-20s %s%s\n",
			lang, langmeta.Name(lang), coverage(cat, lang, i == 0), role)
	}
	fmt.Fprintln(os.Stderr)

	for _, d := range diags {
		logWarning("%s", d)
	}

	logSuccess(i18n.T("Catalog is consistent: %d keys across %d languages", cat.Len(), len(langs)))
	return nil
}

// coverage renders an override-coverage cell for one language. The
// fallback defines every key, so its coverage is always full.
func coverage(cat *catalog.Catalog, lang langid.ID, isFallback bool) string {
	total := cat.Len()
	if total == 0 {
		return "0/0"
	}
	if isFallback {
		return fmt.Sprintf("%d/%d (100%%)", total, total)
	}

	overridden := 0
	for _, name := range cat.Keys() {
		key, _ := cat.Key(name)
		if _, ok := key.Override(lang); ok {
			overridden++
		}
	}
	return fmt.Sprintf("%d/%d (%d%%)", overridden, total, overridden*100/total)
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("localekit version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}
