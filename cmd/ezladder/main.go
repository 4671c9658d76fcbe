package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/ezladder/internal/cliconfig"
	"github.com/bft-labs/ezladder/internal/policywatch"
	"github.com/bft-labs/ezladder/internal/render"
	"github.com/bft-labs/ezladder/pkg/configurator"
	logAdapter "github.com/bft-labs/ezladder/pkg/log"
	"github.com/bft-labs/ezladder/pkg/standoff"
)

const longHelp = `Size a ladder and pick its standoff bracket.

Enter the ladder height as feet and inches and the standoff distance (mounting
surface to rail centerline). ezladder clamps the inputs, formats them to the
nearest eighth inch and resolves the standoff to a catalog SKU.

The standoff range, slider step and SKU buckets come from a policy file
(TOML or YAML). Without one the stock 7″ to 1′-3⅜″ range and SO2/SO3 buckets
are used.`

var exampleUsage = strings.TrimSpace(`
  ezladder --feet 24 --inches 6 --standoff 10.5
  ezladder --policy ./policy.toml --format json
  ezladder --policy ./policy.yaml --watch
  ezladder format 13.5 15.375
  ezladder resolve 11 11.125
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log := cliconfig.Logger()
		log.Error().Err(err).Msg("ezladder")
		os.Exit(1)
	}
}

// app carries the state shared by the root command and its subcommands.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	out     io.Writer
	log     zerolog.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{cfg: cliconfig.DefaultConfig(), out: out, log: cliconfig.Logger()}

	root := &cobra.Command{
		Use:           "ezladder",
		Short:         "Size a ladder and resolve its standoff SKU",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runDerive,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.ezladder/config.toml)")
	pf.StringVar(&a.cfg.PolicyPath, "policy", a.cfg.PolicyPath, "standoff policy file (.toml, .yaml or .yml)")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")

	f := root.Flags()
	f.Float64Var(&a.cfg.LadderFeet, "feet", a.cfg.LadderFeet, "ladder height, whole feet")
	f.Float64Var(&a.cfg.LadderInches, "inches", a.cfg.LadderInches, "ladder height, additional inches (0 to 11.999)")
	f.Float64Var(&a.cfg.StandoffInches, "standoff", a.cfg.StandoffInches, "standoff distance in inches")
	f.StringVar(&a.cfg.Format, "format", a.cfg.Format, fmt.Sprintf("output format (%s)", strings.Join(render.Names(), ", ")))
	f.BoolVar(&a.cfg.Watch, "watch", a.cfg.Watch, "re-render whenever the policy file changes")
	f.DurationVar(&a.cfg.DebounceDelay, "debounce", a.cfg.DebounceDelay, "delay after a policy change before reloading")

	root.AddCommand(a.newFormatCmd(), a.newResolveCmd(), a.newPolicyCmd())
	return root
}

// loadConfig applies the config file, then EZLADDER_* variables, then flags,
// and validates the result.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed, filepath.Dir(cfgFile)); err != nil {
			return err
		}
	} else if a.cfgPath != "" {
		return fmt.Errorf("load config: %s does not exist", a.cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log = a.log.Level(a.cfg.Level())
	a.log.Debug().Interface("config", a.cfg).Msg("configuration")
	return nil
}

func (a *app) loadPolicy() (standoff.Policy, error) {
	p, err := cliconfig.LoadPolicy(a.cfg.PolicyPath)
	if err != nil {
		return standoff.Policy{}, err
	}
	a.log.Debug().
		Str("policy", a.cfg.PolicyPath).
		Strs("skus", p.Catalog.SKUs()).
		Float64("min_in", p.Range.Min).
		Float64("max_in", p.Range.Max).
		Msg("standoff policy loaded")
	return p, nil
}

// logClamped notes a requested standoff that fell outside the policy range.
func (a *app) logClamped(p standoff.Policy, requested, selected float64) {
	if p.Range.Contains(requested) {
		return
	}
	a.log.Debug().
		Float64("requested_in", requested).
		Float64("selected_in", selected).
		Msg("standoff outside range, clamped")
}

func (a *app) runDerive(cmd *cobra.Command, args []string) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}
	renderFn, err := render.Lookup(a.cfg.Format)
	if err != nil {
		return err
	}
	policy, err := a.loadPolicy()
	if err != nil {
		return err
	}

	in := a.cfg.Inputs()
	d := configurator.Derive(in, policy)
	a.logClamped(policy, in.StandoffInches, d.RequestedStandoffInches)
	if err := renderFn(a.out, d); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if !a.cfg.Watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := policywatch.New(a.cfg.PolicyPath,
		policywatch.Config{DebounceDelay: a.cfg.DebounceDelay},
		cliconfig.LoadPolicy,
		logAdapter.NewZerologAdapterWithLogger(a.log),
	)
	err = w.Start(ctx, func(p standoff.Policy) {
		fmt.Fprintln(a.out)
		if err := renderFn(a.out, configurator.Derive(in, p)); err != nil {
			a.log.Error().Err(err).Msg("render")
		}
	})
	if err != nil {
		return fmt.Errorf("watch policy: %w", err)
	}

	<-ctx.Done()
	a.log.Info().Msg("received signal, stopping...")
	return w.Close()
}

func (a *app) newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <inches>...",
		Short: "Format lengths in inches as feet and inches to the nearest eighth",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			policy, err := a.loadPolicy()
			if err != nil {
				return err
			}
			f := policy.Formatter()
			for _, arg := range args {
				fmt.Fprintf(a.out, "%s\t%s\n", arg, f.Format(parseLength(arg)))
			}
			return nil
		},
	}
}

func (a *app) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <inches>...",
		Short: "Resolve standoff distances to catalog SKUs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			policy, err := a.loadPolicy()
			if err != nil {
				return err
			}
			f := policy.Formatter()
			for _, arg := range args {
				requested := parseLength(arg)
				selected, part := policy.Select(requested)
				a.logClamped(policy, requested, selected)
				fmt.Fprintf(a.out, "%s\t%s\t%s\t%s\n", arg, f.Format(selected), part.SKU, f.Format(part.ValueInches))
			}
			return nil
		},
	}
}

func (a *app) newPolicyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the effective standoff policy as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			policy, err := a.loadPolicy()
			if err != nil {
				return err
			}
			b, err := cliconfig.EncodePolicyTOML(policy)
			if err != nil {
				return fmt.Errorf("encode policy: %w", err)
			}
			_, err = a.out.Write(b)
			return err
		},
	}
}

// parseLength reads a length argument. Text that is not a number yields NaN,
// which formats as unavailable and resolves to the range minimum.
func parseLength(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
