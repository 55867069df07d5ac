package main

import (
	"fmt"
	"os"
	"path/filepath"

	"plansfs/pkg/notify"
	"plansfs/pkg/virtual"

	"github.com/spf13/cobra"
)

var (
	rootDir    string
	configPath string
	eventsFd   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plansfs",
		Short: "Virtual plans directory with in-memory interception",
		Long: `plansfs virtualizes the plans directory: writes, reads, renames and
deletes under it are served from memory and streamed to an observer as
JSON events, while every other path passes through to the real
filesystem. No plan ever touches disk.

The command plays a write/rename/read scenario through the layer, the
same atomic pattern an unaware child process would perform.

Example:
  plansfs --config scenario.yaml`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&rootDir, "root", "", "Virtualized root (default <home>/.claude/plans)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML scenario file listing plans to play")
	rootCmd.Flags().IntVar(&eventsFd, "events-fd", -1, "File descriptor to stream events to (default stdout)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	root := rootDir
	if root == "" {
		root = virtual.DefaultRoot()
	}
	if root == "" {
		return fmt.Errorf("cannot determine home directory; pass --root")
	}

	var sink notify.Sink = notify.NewWriterSink(os.Stdout)
	if eventsFd >= 0 {
		sink = notify.NewWriterSink(os.NewFile(uintptr(eventsFd), "events"))
	}

	s := defaultScenario()
	if configPath != "" {
		loaded, err := loadScenario(configPath)
		if err != nil {
			return err
		}
		s = loaded
	}

	layer := virtual.New(virtual.Config{Root: root, Sink: sink})

	for i, doc := range s.Plans {
		final := filepath.Join(layer.Root(), doc.Name)
		tmp := fmt.Sprintf("%s.tmp.%d", final, i+1)

		if err := layer.WriteFile(tmp, []byte(doc.Content)); err != nil {
			return fmt.Errorf("write %s: %w", tmp, err)
		}
		if err := layer.Rename(tmp, final); err != nil {
			return fmt.Errorf("finalize %s: %w", final, err)
		}

		content, err := layer.ReadFileString(final)
		if err != nil {
			return fmt.Errorf("read back %s: %w", final, err)
		}
		if content != doc.Content {
			return fmt.Errorf("read back %s: content mismatch", final)
		}

		info, err := layer.Stat(final)
		if err != nil {
			return fmt.Errorf("stat %s: %w", final, err)
		}
		fmt.Fprintf(os.Stderr, "finalized %s (%d bytes)\n", final, info.Size)
	}

	return nil
}
