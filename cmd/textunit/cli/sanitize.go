package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/textunit"
)

func (a *app) sanitizeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sanitize [file]",
		Short: "Write the input as well-formed UTF-8",
		Long: `Write the input as UTF-8, replacing every maximal ill-formed subsequence
with U+FFFD. UTF-16 input is transcoded.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.document(cmd, args)
			if err != nil {
				return err
			}

			var (
				out   []byte
				stats textunit.Stats
			)
			if d.isUTF16() {
				stats = textunit.CountUTF16(d.utf16)
				out = textunit.Transcode16To8(make([]byte, 0, 3*len(d.utf16)), d.utf16)
			} else {
				stats = textunit.CountUTF8(d.utf8)
				out = textunit.ReplaceInvalidUTF8(make([]byte, 0, len(d.utf8)), d.utf8)
			}
			if !stats.Ok() {
				a.logger.Info("replaced ill-formed sequences", "file", d.name, "count", stats.Invalid+stats.Incomplete)
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			return os.WriteFile(output, out, 0o644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.MarkFlagFilename("output")
	return cmd
}
