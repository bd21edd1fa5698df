package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/document"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/gopak/minigrep/internal/search"
	"github.com/gopak/minigrep/internal/ui/console"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = newRootCmd()

func Execute() error { return rootCmd.Execute() }

type rootOptions struct {
	cfgFile       string
	verbose       bool
	ignoreCase    bool
	caseSensitive bool
	fuzzy         bool
	lineNumbers   bool
	count         bool
	format        string
	color         string
}

func newRootCmd() *cobra.Command {
	var o rootOptions
	cmd := &cobra.Command{
		Use:   "minigrep [flags] <query> <filename>",
		Short: "Print the lines of a file that contain a query",
		Long: "Print the lines of a file that contain a query.\n\n" +
			"Matching is case-sensitive unless --ignore-case is given, the " + config.EnvCaseInsensitive +
			" environment variable is set, or the config file selects case_policy: insensitive.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetVerbose(o.verbose)
			if err := logging.Init(config.Dir(o.cfgFile)); err != nil {
				logging.Debug("log file disabled: " + err.Error())
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(o.cfgFile)
			if err != nil {
				return err
			}
			opts, err := config.Resolve(args, os.LookupEnv, cfg, o.flags(cmd))
			if err != nil {
				return err
			}
			return runSearch(cmd.OutOrStdout(), opts)
		},
	}
	cmd.PersistentFlags().StringVar(&o.cfgFile, "config", "", "path to any YAML file inside the config directory (default dir: ~/.config/minigrep); all *.yaml in that directory are merged")
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "show detailed steps on stderr")

	cmd.Flags().BoolVarP(&o.ignoreCase, "ignore-case", "i", false, "match regardless of case")
	cmd.Flags().BoolVar(&o.caseSensitive, "case-sensitive", false, "match case exactly, even if "+config.EnvCaseInsensitive+" is set")
	cmd.Flags().BoolVar(&o.fuzzy, "fuzzy", false, "match lines containing the query's characters in order")
	cmd.Flags().BoolVarP(&o.lineNumbers, "line-number", "n", false, "prefix each line with its line number")
	cmd.Flags().BoolVarP(&o.count, "count", "c", false, "print only the number of matching lines")
	cmd.Flags().StringVar(&o.format, "format", "", "output format: plain or table")
	cmd.Flags().StringVar(&o.color, "color", "", "highlight matches: auto, always or never")
	cmd.MarkFlagsMutuallyExclusive("ignore-case", "case-sensitive")

	cmd.AddCommand(newConfigCmd(&o))
	return cmd
}

func (o *rootOptions) flags(cmd *cobra.Command) config.Flags {
	f := config.Flags{
		IgnoreCase:    o.ignoreCase,
		CaseSensitive: o.caseSensitive,
		Fuzzy:         o.fuzzy,
		Format:        o.format,
		Color:         o.color,
	}
	if cmd.Flags().Changed("line-number") {
		v := o.lineNumbers
		f.LineNumbers = &v
	}
	if cmd.Flags().Changed("count") {
		v := o.count
		f.Count = &v
	}
	return f
}

func loadConfig(cfgFile string) (config.Config, error) {
	dir := config.Dir(cfgFile)
	logging.Debug("config dir: " + dir)
	cfg, err := config.Load(dir)
	if err != nil {
		return config.Config{}, &config.ConfigError{Msg: "config error", Err: err}
	}
	return cfg, nil
}

func runSearch(out io.Writer, opts config.Options) error {
	logging.Debug(fmt.Sprintf("searching %s for %q (case %s, fuzzy=%v)", opts.Filename, opts.Query, opts.CasePolicy, opts.Fuzzy))
	doc, err := document.Read(opts.Filename)
	if err != nil {
		return err
	}
	m := search.NewMatcher(opts.Query, opts.CasePolicy, opts.Fuzzy)
	matches := search.Filter(m, doc)
	logging.Debug(fmt.Sprintf("%s: %d matching lines", m.Type(), len(matches)))

	p := &console.Printer{
		Out:         out,
		Format:      opts.Format,
		LineNumbers: opts.LineNumbers,
		Count:       opts.Count,
		Highlight:   !opts.Fuzzy && colorEnabled(opts.Color, out),
		Query:       opts.Query,
		Policy:      opts.CasePolicy,
	}
	return p.Print(matches)
}

func colorEnabled(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
