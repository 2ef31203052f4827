package cli

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/textunit"
)

type graphemeRecord struct {
	Index  int    `json:"index"`
	Offset int    `json:"offset"`
	Units  int    `json:"units"`
	Width  int    `json:"width"`
	Text   string `json:"text"`
}

func (r graphemeRecord) String() string {
	return fmt.Sprintf("%d\t%d\t%d\t%d\t%+q", r.Index, r.Offset, r.Units, r.Width, r.Text)
}

func (a *app) graphemesCmd() *cobra.Command {
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "graphemes [file]",
		Short: "Split the input into extended grapheme clusters",
		Long: `Print one line per extended grapheme cluster: index, offset and length
in code units, display width and the quoted cluster text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.document(cmd, args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			var records []graphemeRecord
			if d.isUTF16() {
				offset := 0
				for p := d.utf16; len(p) > 0; {
					var c []uint16
					c, p = textunit.StepUTF16(p)
					text := string(textunit.Transcode16To8(nil, c))
					records = append(records, graphemeRecord{
						Index:  len(records),
						Offset: offset,
						Units:  len(c),
						Width:  runewidth.StringWidth(text),
						Text:   text,
					})
					offset += len(c)
				}
			} else {
				it := textunit.Graphemes(d.utf8)
				for it.Next() {
					text := string(it.Cluster())
					records = append(records, graphemeRecord{
						Index:  it.Index(),
						Offset: it.Offset(),
						Units:  len(it.Cluster()),
						Width:  runewidth.StringWidth(text),
						Text:   text,
					})
				}
			}
			a.logger.Debug("segmented input", "file", d.name, "clusters", len(records), "units", d.units())

			if countOnly {
				_, err := fmt.Fprintln(w, len(records))
				return err
			}
			for _, r := range records {
				if err := a.emit(w, r, r.String); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&countOnly, "count", "c", false, "only print the number of clusters")
	return cmd
}
