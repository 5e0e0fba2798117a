package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ja7ad/sonar/pkg/acoustic"
	"github.com/ja7ad/sonar/pkg/types"
)

func plotCmd(o *opts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot CLASS",
		Short: "Render source level and SNR versus speed to an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.build()
			if err != nil {
				return err
			}

			p, err := a.registry.Resolve(args[0])
			if err != nil {
				return err
			}

			maxSpeed := o.maxSpeed
			if maxSpeed <= 0 {
				maxSpeed = a.cfg.Plot.MaxSpeed
			}
			steps := o.steps
			if steps < 2 {
				steps = a.cfg.Plot.Steps
			}

			src := make(plotter.XYs, 0, steps+1)
			snr := make(plotter.XYs, 0, steps+1)
			for i := 0; i <= steps; i++ {
				v := maxSpeed * float64(i) / float64(steps)
				res, err := a.model.SNR(p, acoustic.Scenario{
					SpeedKnots:   v,
					RangeMeters:  o.dist,
					AmbientNoise: o.ambient,
				})
				if err != nil {
					return err
				}
				src = append(src, plotter.XY{X: v, Y: float64(res.NoiseLevel)})
				snr = append(snr, plotter.XY{X: v, Y: float64(res.SNR)})
			}

			pl := plot.New()
			pl.Title.Text = fmt.Sprintf("%s at %s", p.Name, types.Meters(o.dist))
			pl.X.Label.Text = "speed (kn)"
			pl.Y.Label.Text = "level (dB)"
			pl.Add(plotter.NewGrid())

			srcLine, err := plotter.NewLine(src)
			if err != nil {
				return err
			}
			snrLine, err := plotter.NewLine(snr)
			if err != nil {
				return err
			}
			snrLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

			pl.Add(srcLine, snrLine)
			pl.Legend.Add("source level", srcLine)
			pl.Legend.Add("SNR", snrLine)
			pl.Legend.Top = true

			if err := pl.Save(6*vg.Inch, 4*vg.Inch, o.out); err != nil {
				return fmt.Errorf("save plot: %w", err)
			}

			fmt.Printf("wrote %s\n", o.out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&o.out, "out", "o", "snr.png", "output image path (.png, .svg, .pdf)")
	cmd.Flags().Float64Var(&o.maxSpeed, "max-speed", 0, "upper end of the speed sweep in knots (0 = config default)")
	cmd.Flags().IntVar(&o.steps, "steps", 0, "number of sweep intervals (0 = config default)")

	return cmd
}
