package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gomodel/internal/config"
	"github.com/philipparndt/gomodel/internal/logging"
	"github.com/philipparndt/gomodel/internal/store"
	"github.com/philipparndt/gomodel/pkg/model"
	"github.com/philipparndt/gomodel/pkg/obj"
	"github.com/philipparndt/gomodel/version"
)

var (
	configPath string
	verbose    bool

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gomodel",
	Short: "Inspect and edit 3D models of faces and lines",
	Long: `gomodel reads and writes wireframe models in the OBJ-like text format
(v, f and l records). It reports areas, lengths and bounding boxes, combines
models with set semantics and edits faces and lines in place.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded

		logger, err = logging.New(logging.Options{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Verbose: verbose,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("configuration loaded", zap.String("path", path))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $GOMODEL_CONFIG or ~/.gomodel.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func newImporter() *obj.Importer {
	return obj.NewImporter(obj.WithLogger(logger))
}

func newExporter() *obj.Exporter {
	return obj.NewExporter(obj.WithLogger(logger), obj.WithPrecision(cfg.Export.Precision))
}

func newStore() *store.Store {
	return store.New(
		store.WithLogger(logger),
		store.WithImporter(newImporter()),
		store.WithExporter(newExporter()),
		store.WithDefaults(cfg.Model.Name, cfg.Model.Description),
	)
}

func loadModel(filename string) (*model.Model, error) {
	m, err := newImporter().ImportFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	return m, nil
}

// commandContext returns the context of cmd, which is nil for commands
// that were not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
