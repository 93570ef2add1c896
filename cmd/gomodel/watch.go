package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gomodel/pkg/model"
	"github.com/philipparndt/gomodel/pkg/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file...]",
	Short: "Print model information every time a file changes",
	Long: `Watch model files and print their information after every change.
Changes are debounced by watch.debounce from the config file. Stop with Ctrl+C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchFiles(ctx, cmd, args)
}

// watchFiles prints every file once, then again on each change, until ctx
// is done.
func watchFiles(ctx context.Context, cmd *cobra.Command, files []string) error {
	w := cmd.OutOrStdout()

	for _, file := range files {
		m, err := loadModel(file)
		if err != nil {
			return err
		}
		printInfo(w, file, m)
	}

	mw, err := watcher.New(cfg.GetDebounce(), newImporter(), logger)
	if err != nil {
		return err
	}

	updates := make(chan func(), 1)
	err = mw.Watch(files, func(path string, m *model.Model, err error) {
		updates <- func() {
			if err != nil {
				fmt.Fprintf(w, "\n%s: %v\n", path, err)
				return
			}
			fmt.Fprintf(w, "\n%s changed\n\n", path)
			printInfo(w, path, m)
		}
	})
	if err != nil {
		_ = mw.Close()
		return err
	}
	mw.Start()
	logger.Info("watching models", zap.Strings("files", files))

	for {
		select {
		case <-ctx.Done():
			// Drain so a reload blocked on send can finish before Close waits.
			go func() {
				for range updates {
				}
			}()
			err := mw.Close()
			close(updates)
			return err
		case show := <-updates:
			show()
		}
	}
}
