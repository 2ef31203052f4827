package cli

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/textunit"
)

type validateRecord struct {
	File       string `json:"file"`
	Encoding   string `json:"encoding"`
	Bytes      int    `json:"bytes"`
	Scalars    int    `json:"scalars"`
	Invalid    int    `json:"invalid"`
	Incomplete int    `json:"incomplete"`
	Ok         bool   `json:"ok"`
}

func (r validateRecord) String() string {
	verdict := "ok"
	if !r.Ok {
		verdict = "ILL-FORMED"
	}
	return fmt.Sprintf("%s: %s, %s (%s), %s scalars, %s invalid, %s incomplete",
		r.File, verdict, r.Encoding, humanize.IBytes(uint64(r.Bytes)),
		humanize.Comma(int64(r.Scalars)), humanize.Comma(int64(r.Invalid)),
		humanize.Comma(int64(r.Incomplete)))
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check that the input is well-formed",
		Long: `Decode every input and count well-formed scalars, invalid subsequences
and truncated sequences. Exits with status 1 if any input is ill-formed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}

			illFormed := 0
			for _, name := range args {
				d, err := readDocument(cmd.InOrStdin(), name, a.cfg.Encoding, a.logger)
				if err != nil {
					return err
				}

				var stats textunit.Stats
				if d.isUTF16() {
					stats = textunit.CountUTF16(d.utf16)
				} else {
					stats = textunit.CountUTF8(d.utf8)
					var de *textunit.DecodeError
					if err := textunit.Validate(d.utf8); errors.As(err, &de) {
						a.logger.Warn("ill-formed UTF-8", "file", d.name, "offset", de.Offset, "status", de.Status, "size", de.Size)
					}
				}

				r := validateRecord{
					File:       d.name,
					Encoding:   d.encoding,
					Bytes:      d.raw,
					Scalars:    stats.Scalars,
					Invalid:    stats.Invalid,
					Incomplete: stats.Incomplete,
					Ok:         stats.Ok(),
				}
				if !r.Ok {
					illFormed++
				}
				if err := a.emit(cmd.OutOrStdout(), r, r.String); err != nil {
					return err
				}
			}

			if illFormed > 0 {
				a.logger.Error("validation failed", "files", len(args), "ill-formed", illFormed)
				return errIllFormed
			}
			return nil
		},
	}
}
