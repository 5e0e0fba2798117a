package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ja7ad/sonar/pkg/acoustic"
	"github.com/ja7ad/sonar/pkg/compare"
	"github.com/ja7ad/sonar/pkg/config"
	"github.com/ja7ad/sonar/pkg/profile"
	"github.com/ja7ad/sonar/pkg/types"
)

type opts struct {
	configPath string

	// scenario
	speed   float64
	dist    float64
	ambient float64

	// model
	absorption float64

	// plot
	out      string
	maxSpeed float64
	steps    int
}

// app bundles the constructed components for one invocation.
type app struct {
	cfg      config.Config
	model    *acoustic.Model
	registry *profile.Registry
	engine   *compare.Engine
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "sonar",
		Short: "Passive-sonar detectability estimator",
		Long: `Sonar estimates how detectable a submarine class is to a passive
listener: the source noise level (including cavitation above the class
onset speed), the transmission loss over range, and the resulting
signal-to-noise ratio against ambient ocean noise.

Examples:
  sonar list
  sonar snr ohio -v 15 -r 5000
  sonar compare ohio seawolf lafayette -v 22 -r 8000
  sonar quietest -v 25 -r 10000
  sonar plot ohio -r 5000 -o ohio.png`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&o.configPath, "config", "", "optional TOML config file")
	root.PersistentFlags().Float64VarP(&o.speed, "speed", "v", 10, "vessel speed in knots")
	root.PersistentFlags().Float64VarP(&o.dist, "range", "r", 5000, "listener range in meters")
	root.PersistentFlags().Float64VarP(&o.ambient, "ambient", "N", 0, "ambient noise level in dB (0 = config default)")
	root.PersistentFlags().Float64Var(&o.absorption, "absorption", 0, "seawater absorption in dB/m (0 = config default)")

	root.AddCommand(
		listCmd(&o),
		snrCmd(&o),
		compareCmd(&o),
		quietestCmd(&o),
		loudestCmd(&o),
		plotCmd(&o),
	)

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func (o *opts) build() (*app, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		cfg = loaded
	}

	mcfg := acoustic.Config{
		Absorption:   cfg.Model.Absorption,
		AmbientNoise: cfg.Model.AmbientNoise,
	}
	if o.absorption > 0 {
		mcfg.Absorption = o.absorption
	}

	model := acoustic.New(&mcfg)
	registry := profile.Builtin()

	return &app{
		cfg:      cfg,
		model:    model,
		registry: registry,
		engine:   compare.New(model, registry),
	}, nil
}

func (o *opts) scenario() acoustic.Scenario {
	return acoustic.Scenario{
		SpeedKnots:   o.speed,
		RangeMeters:  o.dist,
		AmbientNoise: o.ambient,
	}
}

func listCmd(o *opts) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the submarine class catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.build()
			if err != nil {
				return err
			}

			tw := newTable()
			fmt.Fprintln(tw, "CLASS\tL0 (dB)\tCAV. ONSET (kn)")
			fmt.Fprintln(tw, "-----\t-------\t---------------")
			for _, p := range a.registry.All() {
				fmt.Fprintf(tw, "%s\t%.1f\t%.1f\n", p.Name, p.BaseNoise, p.CavitationOnset)
			}
			return tw.Flush()
		},
	}
}

func snrCmd(o *opts) *cobra.Command {
	return &cobra.Command{
		Use:   "snr CLASS",
		Short: "Compute the SNR breakdown for one class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.build()
			if err != nil {
				return err
			}

			res, err := a.engine.ComputeSNR(args[0], o.scenario())
			if err != nil {
				return err
			}

			printResult(o, res)
			return nil
		},
	}
}

func compareCmd(o *opts) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [CLASS...]",
		Short: "Evaluate several classes under one scenario (all when none given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.build()
			if err != nil {
				return err
			}

			sc := o.scenario()
			results, err := a.engine.CompareAll(args, sc)
			if err != nil {
				return err
			}

			quietest, loudest := 0, 0
			for i, res := range results {
				if res.SNR < results[quietest].SNR {
					quietest = i
				}
				if res.SNR > results[loudest].SNR {
					loudest = i
				}
			}

			fmt.Printf("Scenario: %s at %s, ambient %s\n\n",
				types.Knots(sc.SpeedKnots), types.Meters(sc.RangeMeters), types.Decibel(ambientOf(a, sc)))

			tw := newTable()
			fmt.Fprintln(tw, "CLASS\tSOURCE (dB)\tTL (dB)\tSNR (dB)\t")
			fmt.Fprintln(tw, "-----\t-----------\t-------\t--------\t")
			for i, res := range results {
				note := ""
				switch i {
				case quietest:
					note = "quietest"
				case loudest:
					note = "loudest"
				}
				fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%s\n",
					res.Profile, float64(res.NoiseLevel), float64(res.TransmissionLoss), float64(res.SNR), note)
			}
			return tw.Flush()
		},
	}
}

func quietestCmd(o *opts) *cobra.Command {
	return &cobra.Command{
		Use:   "quietest [CLASS...]",
		Short: "Show the class hardest to detect under the scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.build()
			if err != nil {
				return err
			}
			res, err := a.engine.QuietestAt(args, o.scenario())
			if err != nil {
				return err
			}
			printResult(o, res)
			return nil
		},
	}
}

func loudestCmd(o *opts) *cobra.Command {
	return &cobra.Command{
		Use:   "loudest [CLASS...]",
		Short: "Show the class easiest to detect under the scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.build()
			if err != nil {
				return err
			}
			res, err := a.engine.LoudestAt(args, o.scenario())
			if err != nil {
				return err
			}
			printResult(o, res)
			return nil
		},
	}
}

func ambientOf(a *app, sc acoustic.Scenario) float64 {
	if sc.AmbientNoise != 0 {
		return sc.AmbientNoise
	}
	return a.model.AmbientNoise()
}

func printResult(o *opts, res acoustic.Result) {
	fmt.Printf("Class:             %s\n", res.Profile)
	fmt.Printf("Speed:             %s\n", types.Knots(o.speed))
	fmt.Printf("Range:             %s\n", types.Meters(o.dist))
	fmt.Printf("Source level:      %s\n", res.NoiseLevel)
	fmt.Printf("Transmission loss: %s\n", res.TransmissionLoss)
	fmt.Printf("SNR:               %s\n", res.SNR)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}
