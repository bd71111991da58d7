// Command lvleet lists the bundled problems, runs parametrized case suites
// against their reference solutions and exposes the trie and cyclic-list
// fixtures for quick experiments.
//
//	lvleet problems
//	lvleet run [slug...] [--cases-dir dir] [--timeout 10s] [--parallelism 4] [-o yaml]
//	lvleet cycle --values 3,2,0,-4 --pos 1
//	lvleet trie apple app --search app --prefix ap
//
// Settings come from flags, LVLEET_* environment variables and an optional
// --config file, in that order of precedence.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvleet/cases"
	"github.com/katalvlaran/lvleet/config"
	"github.com/katalvlaran/lvleet/problems"
)

// ErrCasesFailed is returned by "run" when any suite did not fully pass.
var ErrCasesFailed = errors.New("lvleet: some cases did not pass")

// app carries state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
	reg     *problems.Registry
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree around a fresh app.
func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), reg: problems.Default()}

	root := &cobra.Command{
		Use:           "lvleet",
		Short:         "Run parametrized case suites against reference solutions",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	pf.String("cases-dir", "", "directory of case files (default: embedded suites)")
	pf.Duration("timeout", 0, "deadline for each suite (default 10s)")
	pf.Int("parallelism", 0, "cases solved concurrently (default 1)")
	pf.String("log-level", "", "log level: debug, info, warn, error (default info)")

	root.AddCommand(
		newProblemsCmd(a),
		newRunCmd(a),
		newCycleCmd(),
		newTrieCmd(),
	)

	return root
}

// init binds changed flags over the viper settings, loads the config and
// builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	bindFlags(cmd.Flags(), a.v)

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.Level())
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("lvleet: failed to initialize logger: %w", err)
	}
	a.logger = logger.Named("lvleet")
	a.logger.Debug("configuration loaded",
		zap.String("cases_dir", cfg.CasesDir),
		zap.Duration("timeout", cfg.Timeout),
		zap.Int("parallelism", cfg.Parallelism),
	)

	return nil
}

// bindFlags binds every flag the user set to the viper key of the same
// name with dashes turned into underscores. Unset flags keep viper's
// file, environment or default value.
func bindFlags(fs *pflag.FlagSet, v *viper.Viper) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || !f.Changed {
			return
		}
		_ = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

// suites returns the case suites selected by the configuration.
func (a *app) suites() (map[string]*cases.Suite, error) {
	if a.cfg.CasesDir == "" {
		return problems.BuiltinSuites()
	}

	return cases.LoadDir(a.cfg.CasesDir)
}
