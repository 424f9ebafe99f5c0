package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samuelfneumann/goalvshole/experiment"
	"github.com/samuelfneumann/goalvshole/experiment/checkpointer"
	"github.com/samuelfneumann/goalvshole/experiment/tracker"
	"github.com/samuelfneumann/goalvshole/experiment/trackers"
	"github.com/samuelfneumann/goalvshole/render"
	"github.com/samuelfneumann/goalvshole/report"
	"github.com/samuelfneumann/goalvshole/utils/progressbar"
	"github.com/spf13/cobra"
)

// Files written to the output directory of a training run
const (
	TableFile   = "qtable.bin"
	ConfigFile  = "config.json"
	ReturnsFile = "returns.bin"
	LengthsFile = "lengths.bin"
	OutcomeFile = "outcomes.bin"
	ChartFile   = "returns.html"
	GIFDir      = "gifs"
)

type trainOptions struct {
	*rootOptions
	config          string
	seed            uint64
	out             string
	metricsAddr     string
	checkpointEvery int
	checkpointName  string
	progress        bool
	colors          bool
	winRateWindow   int
}

// TrainCommand returns the command which trains an agent
func TrainCommand(root *rootOptions) *cobra.Command {
	opts := &trainOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a Q-learning agent and report what it learned",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt,
				syscall.SIGTERM)
			defer stop()

			return train(ctx, cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "configs/env.ini",
		"configuration file (.ini, .yaml or .json)")
	f.Uint64Var(&opts.seed, "seed", experiment.DefaultSeed,
		"seed of the exploration policy, overrides the configuration")
	f.StringVarP(&opts.out, "out", "o", "out", "output directory")
	f.StringVar(&opts.metricsAddr, "metrics-addr", "",
		"serve Prometheus metrics on this address while training")
	f.IntVar(&opts.checkpointEvery, "checkpoint-every", 0,
		"save the Q-table every n episodes, 0 disables checkpoints")
	f.StringVar(&opts.checkpointName, "checkpoint-naming",
		string(checkpointer.Enumerated),
		"checkpoint file naming: enumerated, episode or time")
	f.BoolVar(&opts.progress, "progress", false, "display a progress bar")
	f.BoolVar(&opts.colors, "color", true, "colour the printed Q-table")
	f.IntVar(&opts.winRateWindow, "win-rate-window", 100,
		"number of episodes averaged in the win rate chart")
	return cmd
}

func train(ctx context.Context, cmd *cobra.Command, opts *trainOptions) error {
	c, err := experiment.Load(opts.config)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		c.Seed = opts.seed
	}
	if err := mkdir(opts.out); err != nil {
		return err
	}
	if err := writeConfig(filepath.Join(opts.out, ConfigFile), c); err != nil {
		return err
	}

	returns := trackers.NewReturn(filepath.Join(opts.out, ReturnsFile))
	outcomes := trackers.NewOutcome(filepath.Join(opts.out, OutcomeFile))
	ts := []tracker.Tracker{
		returns,
		outcomes,
		trackers.NewEpisodeLength(filepath.Join(opts.out, LengthsFile)),
	}

	if c.EnvConf.RenderMode.Renders() {
		gifs, err := newGIFTracker(c, filepath.Join(opts.out, GIFDir))
		if err != nil {
			return err
		}
		ts = append(ts, gifs)
	}

	if opts.metricsAddr != "" {
		metrics, shutdown, err := serveMetrics(opts.metricsAddr, opts.runID)
		if err != nil {
			return err
		}
		defer shutdown()
		ts = append(ts, metrics)
	}

	if opts.progress {
		bar := progressbar.NewManualProgressBar(cmd.ErrOrStderr(), 40,
			c.MaxEpisodes)
		defer bar.Close()
		ts = append(ts, progress{bar})
	}

	o, err := c.CreateExp(ts...)
	if err != nil {
		return err
	}
	table := o.Result().QTable

	if opts.checkpointEvery > 0 {
		namer, err := checkpointer.NewNamer(
			checkpointer.Naming(opts.checkpointName),
			filepath.Join(opts.out, "checkpoint_"), ".bin")
		if err != nil {
			return err
		}
		check, err := checkpointer.NewNEpisode(opts.checkpointEvery, table,
			namer)
		if err != nil {
			return err
		}
		o.RegisterCheckpointer(check)
	}

	result, runErr := o.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	if err := o.Save(); err != nil {
		return err
	}
	if err := table.Save(filepath.Join(opts.out, TableFile)); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.progress {
		fmt.Fprintln(out)
	}
	if result.Wins >= c.MaxWins {
		fmt.Fprintln(out, "Maximum wins reached!")
	}
	if err := printReport(out, c, result, returns.Data(), opts.colors); err != nil {
		return err
	}
	if err := writeChart(filepath.Join(opts.out, ChartFile), returns.Data(),
		outcomes.WinRate(opts.winRateWindow)); err != nil {
		return err
	}

	return runErr
}

// newGIFTracker returns the tracker recording the last episodes of c
func newGIFTracker(c experiment.Config, dir string) (*render.GIF, error) {
	task, err := c.EnvConf.Task()
	if err != nil {
		return nil, err
	}
	r, err := render.NewRenderer(task, c.EnvConf.GridSize, c.EnvConf.Cell())
	if err != nil {
		return nil, err
	}
	return render.NewGIF(r, dir, c.MaxGifs)
}

// serveMetrics registers the training metrics with a new registry and
// serves it on addr until the returned function is called
func serveMetrics(addr, runID string) (*trackers.Metrics, func(), error) {
	reg := prometheus.NewRegistry()
	metrics, err := trackers.NewMetrics(reg, runID)
	if err != nil {
		return nil, nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	slog.Info("serving metrics", "addr", addr)

	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Warn("metrics server shutdown", "error", err)
		}
	}
	return metrics, shutdown, nil
}

func writeConfig(filename string, c experiment.Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "writeConfig")
	}
	return errors.Wrap(os.WriteFile(filename, data, 0o644), "writeConfig")
}

func printReport(w io.Writer, c experiment.Config, result experiment.Result,
	returns []float64, colors bool) error {
	if err := report.Table(w, result.QTable, colors); err != nil {
		return err
	}

	task, err := c.EnvConf.Task()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nGreedy policy:")
	if err := report.PolicyMap(w, result.QTable, task, c.EnvConf.GridSize,
		colors); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "\n%v\n", report.Summarize(result, returns))
	return err
}

func writeChart(filename string, returns, winRate []float64) error {
	if len(returns) == 0 {
		return nil
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "writeChart")
	}
	defer file.Close()
	return report.Chart(file, "Goal vs Hole", returns, winRate)
}

// progress displays a progress bar over episodes
type progress struct {
	bar *progressbar.ManualProgressBar
}

func (p progress) Track(s tracker.Snapshot) {
	if !s.Step.Last() {
		return
	}
	p.bar.Increment()
	p.bar.Display(fmt.Sprintf("wins: %d  ε: %.3f", s.Wins, s.Epsilon))
}

func (p progress) Save() error {
	return nil
}
