package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rclab/rclab/pkg/chart"
	"github.com/rclab/rclab/pkg/circuit"
)

func NewExportCommand() *cobra.Command {
	flags := &paramFlags{}
	var (
		outDir = "."
		format = "html"
	)

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Write charts to files",
		GroupID: gAdvanced,
		Long: `Compute a step response offline and write its charts to files.

Format 'html' writes a single interactive page (rclab.html). Formats
'svg', 'png' and 'pdf' write one static image per quantity (voltage,
charge, current), suitable for worksheets and handouts.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := flags.parameters()
			if err != nil {
				return err
			}

			format = strings.ToLower(format)
			if format != "html" && !chart.ValidFormat(format) {
				return fmt.Errorf("unsupported format %q (want html, svg, png or pdf)", format)
			}

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			w := circuit.Compute(p)

			if format == "html" {
				path := filepath.Join(outDir, "rclab.html")
				fp, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", path, err)
				}
				defer func() {
					if err := fp.Close(); err != nil {
						logrus.Warnf("failed to close file %s", path)
					}
				}()
				if err := chart.RenderPage(w, fp); err != nil {
					return fmt.Errorf("failed to render chart page: %w", err)
				}
				logrus.Infof("wrote %s", path)
				return nil
			}

			paths, err := chart.ExportImages(w, outDir, format)
			if err != nil {
				return err
			}
			for _, path := range paths {
				logrus.Infof("wrote %s", path)
			}
			return nil
		},
	}

	flags.register(cmd)
	f := cmd.Flags()
	f.StringVarP(&outDir, "out", "o", outDir, "output directory")
	f.StringVarP(&format, "format", "f", format, "output format (html, svg, png, pdf)")

	return cmd
}
