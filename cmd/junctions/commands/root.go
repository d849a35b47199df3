package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/junctions/circuit"
	"github.com/katalvlaran/junctions/mst"
	"github.com/katalvlaran/junctions/points"
)

// envPrefix namespaces environment overrides, e.g. JUNCTIONS_CONNECTIONS=10.
const envPrefix = "JUNCTIONS"

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the junctions command with its flags bound into a
// fresh viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:          "junctions [file]",
		Short:        "Cluster junction boxes and find the spanning-tree bottleneck",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.IntP("connections", "k", circuit.DefaultConnections, "number of nearest pairs to connect")
	flags.Int("largest", 3, "number of largest circuits to multiply")
	flags.Int("workers", 1, "goroutines for the nearest-pair scan")
	flags.String("method", string(mst.MethodPrim), "spanning tree algorithm: prim or kruskal")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")

	return cmd
}

// initConfig layers flags over environment over the optional config file.
func initConfig(v *viper.Viper, cfgFile string, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	return v.BindPFlags(flags)
}

func run(ctx context.Context, v *viper.Viper, stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	log := circuit.NewTextLogger(stderr, level)

	in := stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	p, err := points.Parse(in)
	if err != nil {
		return err
	}
	log.Info("parsed junction boxes", "points", p.Len())

	ans, err := circuit.Solve(ctx, p,
		circuit.WithConnections(v.GetInt("connections")),
		circuit.WithLargest(v.GetInt("largest")),
		circuit.WithWorkers(v.GetInt("workers")),
		circuit.WithMethod(mst.Method(v.GetString("method"))),
		circuit.WithLogger(log),
	)
	if err != nil {
		log.Error("solve failed", "err", err)
		return err
	}

	fmt.Fprintln(stdout, ans.Cluster)
	fmt.Fprintln(stdout, ans.Bottleneck)

	return nil
}
