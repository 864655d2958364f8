package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	goversion "github.com/caarlos0/go-version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/toyz/polygen/internal/config"
	"github.com/toyz/polygen/internal/format"
	"github.com/toyz/polygen/internal/generator"
	"github.com/toyz/polygen/internal/lang"
	"github.com/toyz/polygen/internal/logger"
	"github.com/toyz/polygen/internal/server"
	"github.com/toyz/polygen/internal/utils"
)

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"lang":       "language",
	"workers":    "workers",
	"header-dir": "header_dir",
	"out":        "output.dir",
	"stdout":     "output.stdout",
	"encoding":   "output.encoding",
	"go-tidy":    "go.tidy",
	"framework":  "server.framework",
	"addr":       "server.addr",
	"debounce":   "watch.debounce",
	"json-logs":  "log.json",
	"verbose":    "log.verbose",
}

type app struct {
	info   goversion.Info
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configFile string
	quiet      bool

	reporter *DiagnosticReporter
}

// NewRootCommand builds the polygen command tree.
func NewRootCommand(info goversion.Info, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{info: info, stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "polygen",
		Short: "Generate source files in many languages from one object model",
		Long: `polygen renders classes, interfaces and enums described in YAML or JSON
model documents as source code for Java, C#, C++, PHP, Delphi, VB.NET,
JavaScript, TypeScript, Ruby and Go.

Path arguments accept files, directories and Go-style patterns:
  models.yaml        One model document
  ./models           Every .yaml, .yml and .json file in the directory
  ./models/...       The whole directory tree`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "Config file (default: polygen.{yaml,toml,json} in . or ~/.config/polygen)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output and debug logging")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Only show errors")
	root.PersistentFlags().Bool("json-logs", false, "Write structured logs as JSON")

	root.AddCommand(
		a.generateCommand(),
		a.watchCommand(),
		a.serveCommand(),
		a.formatCommand(),
		a.cleanCommand(),
		a.languagesCommand(),
		a.versionCommand(),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, info goversion.Info, args []string) int {
	root := NewRootCommand(info, os.Stdin, os.Stdout, os.Stderr)
	root.SetArgs(args)
	defer logger.Cleanup()

	if err := root.ExecuteContext(ctx); err != nil {
		NewDiagnosticReporter(os.Stderr, false).ReportError(err)
		return 1
	}
	return 0
}

func generationFlags(flags *pflag.FlagSet) {
	flags.StringP("lang", "l", "", "Target language (see polygen languages)")
	flags.StringP("out", "o", "", "Output directory")
	flags.Bool("stdout", false, "Write generated files to stdout instead of the output directory")
	flags.String("encoding", "", "Output character set by IANA name (default UTF-8)")
	flags.Int("workers", 0, "Maximum files transformed concurrently")
	flags.String("header-dir", "", "Directory holding header template overrides")
	flags.Bool("go-tidy", true, "Sort and group Go imports the gofmt way")
}

// load reads configuration for cmd and sets up logging and console output.
func (a *app) load(cmd *cobra.Command) (*config.Config, *utils.Console, *zap.SugaredLogger, error) {
	v, err := config.NewViper(a.configFile)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, nil, nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Verbose); err != nil {
		return nil, nil, nil, err
	}

	verbosity := utils.Normal
	switch {
	case a.quiet:
		verbosity = utils.Quiet
	case cfg.Log.Verbose:
		verbosity = utils.Verbose
	}
	a.reporter = NewDiagnosticReporter(a.stderr, cfg.Log.Verbose)
	return cfg, utils.NewConsole(verbosity, a.stdout), logger.Logger, nil
}

// bindFlags binds the flags cmd defines onto their configuration keys, so
// flags set on the command line win over files and environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *app) generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <model files or dirs...>",
		Short: "Generate source files from model documents",
		Example: `  polygen generate --lang java --out src ./models/...
  polygen generate -l typescript --stdout shapes.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, console, log, err := a.load(cmd)
			if err != nil {
				return err
			}
			gen, err := NewGenerator(cfg, a.stdout, console, log)
			if err != nil {
				return err
			}
			if !cfg.Output.Stdout {
				console.Header(fmt.Sprintf("generating %s into %s", cfg.Language, cfg.Output.Dir))
			}
			summary, err := gen.Run(cmd.Context(), args)
			if err != nil {
				return err
			}
			if !cfg.Output.Stdout {
				console.Summary("Generation complete", summary.Outcomes)
			}
			return nil
		},
	}
	generationFlags(cmd.Flags())
	return cmd
}

func (a *app) watchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <model files or dirs...>",
		Short: "Regenerate whenever model documents change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, console, log, err := a.load(cmd)
			if err != nil {
				return err
			}
			gen, err := NewGenerator(cfg, a.stdout, console, log)
			if err != nil {
				return err
			}
			console.Header(fmt.Sprintf("watching %s (Ctrl+C to stop)", strings.Join(args, ", ")))
			w := NewWatcher(gen, args, cfg.Watch.Debounce, a.reporter, log)
			w.OnRun = func(summary GenerationSummary, err error) {
				if err == nil && len(summary.Written) > 0 {
					console.Summary("Regenerated", summary.Outcomes)
				}
			}
			return w.Run(cmd.Context())
		},
	}
	generationFlags(cmd.Flags())
	cmd.Flags().Duration("debounce", DefaultDebounce, "Delay before regenerating after a change")
	return cmd
}

func (a *app) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, console, log, err := a.load(cmd)
			if err != nil {
				return err
			}
			opts, err := cfg.GeneratorOptions()
			if err != nil {
				return err
			}
			service := server.NewService(generator.NewGenerator(opts, log), log)
			ws, err := server.NewServer(cfg.Server.Framework, service)
			if err != nil {
				return err
			}

			console.Header(fmt.Sprintf("%s render service listening on %s", ws.Name(), cfg.Server.Addr))
			errs := make(chan error, 1)
			go func() { errs <- ws.Start(cfg.Server.Addr) }()

			select {
			case err := <-errs:
				return err
			case <-cmd.Context().Done():
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return ws.Stop(ctx)
		},
	}
	cmd.Flags().String("framework", "", "Web framework: gin, echo or fiber")
	cmd.Flags().String("addr", "", "Listen address")
	cmd.Flags().Int("workers", 0, "Maximum files transformed concurrently per request")
	cmd.Flags().String("header-dir", "", "Directory holding header template overrides")
	return cmd
}

func (a *app) formatCommand() *cobra.Command {
	var language string
	cmd := &cobra.Command{
		Use:   "format --lang L [file]",
		Short: "Re-indent a source file with the target language block rules",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lang.Parse(language)
			if err != nil {
				return err
			}
			in := a.stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			data, err := io.ReadAll(in)
			if err != nil {
				return err
			}

			text := strings.TrimRight(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
			lines, err := format.Lines(l, strings.Split(text, "\n"))
			if err != nil {
				return err
			}
			_, err = io.WriteString(a.stdout, strings.Join(lines, "\n")+"\n")
			return err
		},
	}
	cmd.Flags().StringVarP(&language, "lang", "l", "", "Language whose block rules apply")
	_ = cmd.MarkFlagRequired("lang")
	return cmd
}

func (a *app) cleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean <dirs...>",
		Short: "Delete previously generated files",
		Long: `Clean removes files carrying the polygen generated marker in their header.
Only files with a target language extension are considered; dir/... cleans
the whole tree.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, console, _, err := a.load(cmd)
			if err != nil {
				return err
			}
			removed, err := NewCleaner().CleanGeneratedFiles(args)
			for _, path := range removed {
				console.Outcome("removed", path)
			}
			if err != nil {
				return err
			}
			console.Summary("Clean complete", map[string]int{"removed": len(removed)})
			return nil
		},
	}
}

func (a *app) languagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported target languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LANGUAGE\tEXTENSION\tIMPORTS")
			for _, l := range lang.All() {
				p := lang.MustPolicy(l)
				imports := "types"
				if p.NamespaceStyle {
					imports = "namespaces"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", l, p.Extension, imports)
			}
			return tw.Flush()
		},
	}
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(a.stdout, a.info.String())
			return err
		},
	}
}
