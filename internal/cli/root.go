package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ksuid"
	"github.com/dmitrymomot/ksuid/pkg/logger"
)

const (
	attrRunID   = "run_id"
	attrCommand = "command"
)

// NewRootCommand builds the ksuid command tree. cfg supplies flag defaults;
// genOpts are passed to every generator the commands create.
func NewRootCommand(cfg Config, genOpts ...ksuid.Option) *cobra.Command {
	root := &cobra.Command{
		Use:   "ksuid [ids...]",
		Short: "Generate and inspect K-sortable unique identifiers",
		Long: `Without arguments ksuid generates new ids. With arguments it parses each
one and prints it in the selected format.`,
		Example: `  ksuid -n 5
  ksuid --ms -f inspect
  ksuid -f template -t '{{.Time}} {{.Payload}}' 0ujtsYcgvSTl8PAuAdqWYSMnLOv`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args, genOpts)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&cfg.Format, "format", "f", cfg.Format,
		"output format: string|inspect|time|timestamp|payload|raw|json|yaml|template")
	flags.StringVarP(&cfg.Template, "template", "t", cfg.Template, "Go text/template used with --format template")
	flags.IntVarP(&cfg.Count, "count", "n", cfg.Count, "number of ids to generate")
	flags.StringVar(&cfg.Precision, "precision", cfg.Precision, "timestamp precision: s|ms")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines used to generate large batches")
	flags.BoolVar(&cfg.Sort, "sort", cfg.Sort, "sort ids before printing")

	ms := flags.Bool("ms", false, "shorthand for --precision ms")
	root.PreRun = func(*cobra.Command, []string) {
		if *ms {
			cfg.Precision = PrecisionMillis
		}
	}

	pflags := root.PersistentFlags()
	pflags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug|info|warn|error|off")
	pflags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text|json")

	root.AddCommand(newVectorsCommand(&cfg, genOpts))
	return root
}

func run(cmd *cobra.Command, cfg Config, args []string, genOpts []ksuid.Option) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ctx, log := commandLogger(cmd, cfg)

	p, err := newPrinter(cfg)
	if err != nil {
		return err
	}

	var views []view
	switch cfg.Precision {
	case PrecisionMillis:
		views, err = collect[ksuid.Millis](ctx, log, cfg, args, genOpts)
	default:
		views, err = collect[ksuid.Seconds](ctx, log, cfg, args, genOpts)
	}
	if err != nil {
		log.ErrorContext(ctx, "ksuid command failed", slog.String("error", err.Error()))
		return err
	}

	return p.print(cmd.OutOrStdout(), views)
}

// collect parses args or, when there are none, generates cfg.Count ids.
func collect[P ksuid.Precision](ctx context.Context, log *slog.Logger, cfg Config, args []string, genOpts []ksuid.Option) ([]view, error) {
	var (
		ids []ksuid.ID[P]
		err error
	)

	if len(args) > 0 {
		ids, err = parseAll[P](args)
		if err != nil {
			return nil, err
		}
		log.DebugContext(ctx, "parsed ids", slog.Int("count", len(ids)))
	} else {
		start := time.Now()
		ids, err = generate(ctx, ksuid.NewGenerator[P](genOpts...), cfg.Count, cfg.Workers)
		if err != nil {
			return nil, err
		}
		log.DebugContext(ctx, "generated ids",
			slog.Int("count", len(ids)),
			slog.Int("workers", cfg.Workers),
			slog.Duration("elapsed", time.Since(start)),
		)
	}

	if cfg.Sort {
		ksuid.Sort(ids)
	}

	views := make([]view, len(ids))
	for i, id := range ids {
		views[i] = newView(id)
	}
	return views, nil
}

// commandLogger builds the logger for one invocation and tags the context
// with the command path and a fresh run id.
func commandLogger(cmd *cobra.Command, cfg Config) (context.Context, *slog.Logger) {
	log := logger.NewNope()
	if cfg.LogLevel != LogLevelOff {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = slog.LevelWarn
		}
		log = logger.New(
			logger.WithOutput(cmd.ErrOrStderr()),
			logger.WithLevel(level),
			logger.WithFormat(logger.Format(cfg.LogFormat)),
			logger.WithExtractors(logger.StringExtractor(attrCommand), logger.StringExtractor(attrRunID)),
			logger.WithSentry(logger.SentryConfig{
				DSN:         cfg.SentryDSN,
				Environment: cfg.SentryEnvironment,
				MinLevel:    level,
			}),
		)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithValue(ctx, attrCommand, cmd.CommandPath())
	ctx = logger.WithValue(ctx, attrRunID, ksuid.New().String())
	return ctx, log
}
