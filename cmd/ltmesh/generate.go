package main

import (
	"github.com/katalvlaran/ltmesh/mesh"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a mesh and print it",
		Long: `Generate a symmetric mesh (points and weights dh) or, with --half, only the
positive half-axis. Parameters must satisfy 0 < x0 < x1 < x2; the symmetric
mesh needs an even n of at least 8, the half-axis at least 4 points.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := loadSettings(v)
			initLog(cmd, s.Verbose)

			r, err := buildReport(s)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), s.Format, r)
		},
	}

	def := mesh.DefaultParams()
	cmd.Flags().Int("n", def.N, "Number of points (half-axis points with --half)")
	cmd.Flags().Float64("x0", def.X0, "Start of the logarithmic segment")
	cmd.Flags().Float64("x1", def.X1, "End of the logarithmic segment")
	cmd.Flags().Float64("x2", def.X2, "Scale fixing the tan segment ratio x2/x1")
	cmd.Flags().Bool("half", false, "Only print the positive half-axis")
	cmd.Flags().String("format", formatTable, "Output format: table, json or yaml")
	v.BindPFlags(cmd.Flags())

	return cmd
}

// buildReport runs the mesh builders selected by s.
func buildReport(s settings) (report, error) {
	p := s.Params
	fields := log.Fields{"n": p.N, "x0": p.X0, "x1": p.X1, "x2": p.X2, "half": s.Half}

	if s.Half {
		n1, n2, err := mesh.Partition(p.N, p.X0, p.X1, p.X2)
		if err != nil {
			return report{}, err
		}
		points, err := mesh.HalfMesh(p.N, p.X0, p.X1, p.X2)
		if err != nil {
			return report{}, err
		}
		log.WithFields(fields).WithFields(log.Fields{"n1": n1, "n2": n2}).Debug("Half mesh generated")

		return newReport(p, n1, n2, points, nil), nil
	}

	g, err := mesh.NewGrid(p)
	if err != nil {
		return report{}, err
	}
	log.WithFields(fields).WithFields(log.Fields{"n1": g.N1, "n2": g.N2}).Debug("Symmetric mesh generated")

	return newReport(p, g.N1, g.N2, g.Points, g.Weights), nil
}
