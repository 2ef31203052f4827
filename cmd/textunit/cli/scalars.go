package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/textunit"
)

type scalarRecord struct {
	Offset int    `json:"offset"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
	Status string `json:"status"`
	Scalar string `json:"scalar"`
	Size   int    `json:"size"`
}

func (r scalarRecord) String() string {
	pos := "-"
	if r.Line > 0 {
		pos = fmt.Sprintf("%d:%d", r.Line, r.Column)
	}
	return fmt.Sprintf("%d\t%s\t%s\t%s\t%d", r.Offset, pos, r.Status, r.Scalar, r.Size)
}

func newScalarRecord(offset int, o textunit.Outcome) scalarRecord {
	return scalarRecord{
		Offset: offset,
		Status: o.Status.String(),
		Scalar: o.Scalar.String(),
		Size:   o.Size,
	}
}

func (a *app) scalarsCmd() *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "scalars [file]",
		Short: "Print one line per decoded scalar or ill-formed subsequence",
		Long: `Print one line per decode outcome: offset in code units, line:column,
status, scalar and size. Ill-formed subsequences are reported, not replaced.
With --reverse the input is decoded from its end and positions are omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.document(cmd, args)
			if err != nil {
				return err
			}
			a.logger.Debug("decoding scalars", "file", d.name, "encoding", d.encoding, "reverse", reverse)

			w := cmd.OutOrStdout()
			emit := func(r scalarRecord) error {
				return a.emit(w, r, r.String)
			}

			switch {
			case reverse && d.isUTF16():
				it := textunit.ReverseScalarsUTF16(d.utf16)
				for it.Next() {
					if err := emit(newScalarRecord(it.Offset(), it.Outcome())); err != nil {
						return err
					}
				}
			case reverse:
				it := textunit.ReverseScalars(d.utf8)
				for it.Next() {
					if err := emit(newScalarRecord(it.Offset(), it.Outcome())); err != nil {
						return err
					}
				}
			default:
				c := textunit.NewCursor()
				for {
					pos := c
					var o textunit.Outcome
					if d.isUTF16() {
						o, c = c.NextUTF16(d.utf16)
					} else {
						o, c = c.NextUTF8(d.utf8)
					}
					if o.Size == 0 {
						break
					}
					r := newScalarRecord(pos.Offset, o)
					r.Line, r.Column = pos.Line, pos.Column
					if err := emit(r); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "decode from the end of the input")
	return cmd
}
