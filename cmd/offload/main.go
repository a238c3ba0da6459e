package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ja7ad/offload/pkg/scenario"
	"github.com/ja7ad/offload/pkg/types"
	"github.com/ja7ad/offload/pkg/util"
)

type opts struct {
	config string
	name   string

	// task
	cycles float64
	data   string

	// local
	freq  float64
	kappa float64

	// link
	bandwidth   float64
	subchannels float64
	gain        float64
	noise       float64
	power       float64
	specEff     float64
	targetRate  float64

	// remote
	destFreq float64

	// weights
	alpha float64
	beta  float64

	// outputs
	pretty   bool
	csvPath  string
	jsonPath string
	htmlPath string
	logLevel string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o opts
	def := scenario.Defaults()

	root := &cobra.Command{
		Use:   "offload",
		Short: "Local vs. offload execution cost model",
		Long: `The offload tool prices running a task locally against shipping it over a
wireless link to a remote server, and reports an efficiency score in [-1,1]
(positive means offloading pays off under the given time/energy weights).

Parameters come from flags, from a YAML scenario file (--config), or both;
flags given explicitly override every scenario in the file.

Examples:
  offload --cycles 2e9 --data 4MB --gain 1e-7
  offload --config scenarios.yaml --json out.json
  offload heavy 0 0.5 1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogger(cmd.ErrOrStderr(), o.logLevel)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o)
		},
	}

	f := root.Flags()
	f.StringVarP(&o.config, "config", "c", "", "YAML scenario file (single scenario or a 'scenarios' list)")
	f.StringVar(&o.name, "name", def.Name, "scenario name")

	f.Float64Var(&o.cycles, "cycles", def.Task.Cycles, "CPU cycles the task needs")
	f.StringVar(&o.data, "data", "1MB", "task payload (e.g. 4096, 12Mb, 1.5MB)")

	f.Float64Var(&o.freq, "freq", def.Local.FreqHz, "local CPU frequency in Hz")
	f.Float64Var(&o.kappa, "kappa", def.Local.Kappa, "local energy coefficient (J/cycle/Hz^2)")

	f.Float64Var(&o.bandwidth, "bandwidth", def.Link.BandwidthHz, "link bandwidth in Hz")
	f.Float64Var(&o.subchannels, "subchannels", def.Link.Subchannels, "number of sub-bands sharing the bandwidth (>=1)")
	f.Float64Var(&o.gain, "gain", def.Link.ChannelGain, "channel gain (linear)")
	f.Float64Var(&o.noise, "noise", def.Link.NoiseWatt, "noise power in Watts")
	f.Float64Var(&o.power, "power", def.Link.TxPowerWatt, "transmit power in Watts")
	f.Float64Var(&o.specEff, "spectral-eff", def.Link.SpectralEff, "spectral efficiency in bit/s/Hz (0 = Shannon rate)")
	f.Float64Var(&o.targetRate, "target-rate", def.Link.TargetRateBps, "derive transmit power for this rate in bit/s (0 = use --power)")

	f.Float64Var(&o.destFreq, "dest-freq", def.Remote.DestFreqHz, "remote CPU frequency in Hz")

	f.Float64Var(&o.alpha, "alpha", def.Weights.Alpha, "time weight")
	f.Float64Var(&o.beta, "beta", def.Weights.Beta, "energy weight")

	f.BoolVar(&o.pretty, "pretty", true, "format output as a table instead of CSV-like lines")
	f.StringVar(&o.csvPath, "csv", "", "write decisions to CSV file")
	f.StringVar(&o.jsonPath, "json", "", "write decisions to JSON file")
	f.StringVar(&o.htmlPath, "html", "", "write decisions and summary to HTML file")

	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newHeavyCmd())
	return root
}

func setupLogger(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func run(cmd *cobra.Command, o opts) error {
	scs, err := scenarios(cmd, o)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var tw *tabwriter.Writer
	if o.pretty {
		tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		printTableHeader(tw)
	} else {
		fmt.Fprintln(out, "# name, data, T_local(s), E_local(J), rate(bps), T_off(s), E_off(J), score, offload")
	}

	var (
		tally     scenario.Tally
		decisions []scenario.Decision
		failed    int
	)
	for _, s := range scs {
		d, err := scenario.Evaluate(s)
		if err != nil {
			failed++
			slog.Warn("skip scenario", "name", s.Name, "err", err)
			continue
		}
		slog.Debug("evaluated", "name", d.Name, "data_bytes", d.DataBits.Bytes(), "rate_bps", d.RateBps, "tx_power_w", d.TxPowerW,
			"optimal_freq_hz", d.OptimalFreqHz, "score", d.Score)

		tally.Add(d)
		decisions = append(decisions, d)

		if o.pretty {
			printTableRow(tw, d)
		} else {
			printCsvLike(out, d)
		}
	}

	if failed == len(scs) {
		return fmt.Errorf("no valid scenario (%d rejected)", failed)
	}

	if o.csvPath != "" {
		if err := writeFile(o.csvPath, func(w io.Writer) error { return writeCSV(w, decisions) }); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
	}
	if o.jsonPath != "" {
		if err := writeFile(o.jsonPath, func(w io.Writer) error { return writeJSON(w, decisions) }); err != nil {
			return fmt.Errorf("json: %w", err)
		}
	}

	sum := tally.Summary()
	if o.htmlPath != "" {
		if err := writeFile(o.htmlPath, func(w io.Writer) error { return writeHTML(w, decisions, sum, failed) }); err != nil {
			return fmt.Errorf("html: %w", err)
		}
	}

	if len(decisions) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "offload summary (%d scenarios, %d rejected):\n", sum.Count, failed)
		fmt.Fprintf(out, "- offloaded:        %d/%d\n", sum.Offloaded, sum.Count)
		fmt.Fprintf(out, "- mean score:       %.4f\n", sum.MeanScore)
		fmt.Fprintf(out, "- mean local:       %.4f s  %.4f J\n", sum.MeanLocalTimeS, sum.MeanLocalEnergyJ)
		fmt.Fprintf(out, "- mean offload:     %.4f s  %.4f J\n", sum.MeanOffloadTimeS, sum.MeanOffloadEnergyJ)
		fmt.Fprintf(out, "- best:             %s\n", sum.Best)
	}

	return nil
}

// scenarios returns the config file scenarios (or the defaults) with every
// explicitly set flag applied on top.
func scenarios(cmd *cobra.Command, o opts) ([]scenario.Scenario, error) {
	scs := []scenario.Scenario{scenario.Defaults()}
	if o.config != "" {
		var err error
		if scs, err = scenario.Load(o.config); err != nil {
			return nil, err
		}
		slog.Debug("loaded config", "path", o.config, "scenarios", len(scs))
	}

	var data types.Bits
	if cmd.Flags().Changed("data") {
		var err error
		if data, err = types.ParseBits(o.data); err != nil {
			return nil, fmt.Errorf("data: %w", err)
		}
	}

	changed := cmd.Flags().Changed
	for i := range scs {
		s := &scs[i]
		setIf(changed("name"), &s.Name, o.name)
		setIf(changed("cycles"), &s.Task.Cycles, o.cycles)
		setIf(changed("data"), &s.Task.DataBits, data)
		setIf(changed("freq"), &s.Local.FreqHz, o.freq)
		setIf(changed("kappa"), &s.Local.Kappa, o.kappa)
		setIf(changed("bandwidth"), &s.Link.BandwidthHz, o.bandwidth)
		setIf(changed("subchannels"), &s.Link.Subchannels, o.subchannels)
		setIf(changed("gain"), &s.Link.ChannelGain, o.gain)
		setIf(changed("noise"), &s.Link.NoiseWatt, o.noise)
		setIf(changed("power"), &s.Link.TxPowerWatt, o.power)
		setIf(changed("spectral-eff"), &s.Link.SpectralEff, o.specEff)
		setIf(changed("target-rate"), &s.Link.TargetRateBps, o.targetRate)
		setIf(changed("dest-freq"), &s.Remote.DestFreqHz, o.destFreq)
		setIf(changed("alpha"), &s.Weights.Alpha, o.alpha)
		setIf(changed("beta"), &s.Weights.Beta, o.beta)
	}
	return scs, nil
}

func setIf[T any](ok bool, dst *T, v T) {
	if ok {
		*dst = v
	}
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return write(f)
}

func printTableHeader(tw *tabwriter.Writer) {
	fmt.Fprintln(tw, "NAME\tDATA\tT_local (s)\tE_local (J)\tRATE (Mb/s)\tT_off (s)\tE_off (J)\tSCORE\tOFFLOAD")
	fmt.Fprintln(tw, "----\t----\t-----------\t-----------\t-----------\t---------\t---------\t-----\t-------")
	tw.Flush()
}

func printTableRow(tw *tabwriter.Writer, d scenario.Decision) {
	fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\t%.3f\t%.4f\t%.4f\t%.4f\t%v\n",
		d.Name, d.DataBits.Humanized(), d.LocalTimeS, d.LocalEnergyJ, d.RateBps/1e6, d.OffloadTimeS, d.OffloadEnergyJ, d.Score, d.Offload,
	)
	tw.Flush()
}

func printCsvLike(w io.Writer, d scenario.Decision) {
	fmt.Fprintf(w, "%s, %s, %.4f, %.4f, %.0f, %.4f, %.4f, %.4f, %v\n",
		d.Name, d.DataBits, d.LocalTimeS, d.LocalEnergyJ, d.RateBps, d.OffloadTimeS, d.OffloadEnergyJ, d.Score, d.Offload)
}

var _csvHeader = []string{
	"name", "data_bits", "local_time_s", "local_energy_j", "optimal_freq_hz", "tx_power_w", "snr_linear", "rate_bps",
	"tx_time_s", "remote_compute_time_s", "total_offload_time_s", "total_offload_energy_j", "efficiency_score", "offload",
}

func writeCSV(w io.Writer, ds []scenario.Decision) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(_csvHeader); err != nil {
		return err
	}
	for _, d := range ds {
		rec := []string{
			d.Name, util.FmtFloat(d.DataBits.Float64()),
			util.FmtFloat(d.LocalTimeS), util.FmtFloat(d.LocalEnergyJ), util.FmtFloat(d.OptimalFreqHz),
			util.FmtFloat(d.TxPowerW), util.FmtFloat(d.SNR), util.FmtFloat(d.RateBps),
			util.FmtFloat(d.TxTimeS), util.FmtFloat(d.RemoteTimeS),
			util.FmtFloat(d.OffloadTimeS), util.FmtFloat(d.OffloadEnergyJ),
			util.FmtFloat(d.Score), fmt.Sprint(d.Offload),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, ds []scenario.Decision) error {
	rows := make([]row, 0, len(ds))
	for _, d := range ds {
		rows = append(rows, toRow(d))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
