package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/IbrahimElshafey/WhatsAppParser/internal/chat"
	"github.com/IbrahimElshafey/WhatsAppParser/internal/config"
	"github.com/IbrahimElshafey/WhatsAppParser/internal/media"
	"github.com/IbrahimElshafey/WhatsAppParser/internal/sheet"
	"github.com/IbrahimElshafey/WhatsAppParser/internal/ui"
)

func convertCmd() *cobra.Command {
	var (
		mediaDir    string
		output      string
		skipSystem  bool
		culture     string
		utcOffset   int
		fromDate    string
		toDate      string
		forceRTL    bool
		singleSheet bool
		moveUnused  bool
	)

	cmd := &cobra.Command{
		Use:   "convert <chat.txt>",
		Short: "Parse a transcript and write the grouped workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			applyFlag(cmd, "media", func() { cfg.MediaDir = mediaDir })
			applyFlag(cmd, "out", func() { cfg.Output = output })
			applyFlag(cmd, "skip-system", func() { cfg.SkipSystem = skipSystem })
			applyFlag(cmd, "culture", func() { cfg.Culture = culture })
			applyFlag(cmd, "utc-offset", func() { cfg.UTCOffsetHours = utcOffset })
			applyFlag(cmd, "from", func() { cfg.From = fromDate })
			applyFlag(cmd, "to", func() { cfg.To = toDate })
			applyFlag(cmd, "rtl", func() { cfg.ForceRTL = forceRTL })
			applyFlag(cmd, "single-sheet", func() { cfg.SingleSheet = singleSheet })
			applyFlag(cmd, "move-unused", func() { cfg.MoveUnused = moveUnused })

			if cfg.Input == "" {
				return fmt.Errorf("no input transcript (pass a path or set input in config.toml)")
			}
			return runConvert(cfg)
		},
	}

	cmd.Flags().StringVar(&mediaDir, "media", "", "directory holding exported media files")
	cmd.Flags().StringVar(&output, "out", "", "output .xlsx path (default: input path with .xlsx)")
	cmd.Flags().BoolVar(&skipSystem, "skip-system", false, "drop system notices (encryption, joins, calls)")
	cmd.Flags().StringVar(&culture, "culture", "", "culture tag for fallback date parsing, e.g. en-US")
	cmd.Flags().IntVar(&utcOffset, "utc-offset", 0, "shift timestamps by a fixed number of hours")
	cmd.Flags().StringVar(&fromDate, "from", "", "inclusive start date, 2006-01-02")
	cmd.Flags().StringVar(&toDate, "to", "", "inclusive end date, 2006-01-02")
	cmd.Flags().BoolVar(&forceRTL, "rtl", false, "force right-to-left sheets")
	cmd.Flags().BoolVar(&singleSheet, "single-sheet", false, "one sheet instead of one per day")
	cmd.Flags().BoolVar(&moveUnused, "move-unused", false, "move unreferenced media files into media/unused")

	return cmd
}

func applyFlag(cmd *cobra.Command, name string, set func()) {
	if cmd.Flags().Changed(name) {
		set()
	}
}

func runConvert(cfg *config.Config) error {
	from, to, err := cfg.Bounds()
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}

	grouper := sheet.NewGrouper(
		sheet.Filter{SkipSystem: cfg.SkipSystem, From: from, To: to},
		cfg.Offset(), cfg.SingleSheet, cfg.ForceRTL,
	)

	parsed := 0
	counter := &ui.Counter{}
	reader := &countingReader{r: f, c: counter}

	if ui.IsTTY() {
		prog := ui.NewProgram("Converting " + filepath.Base(cfg.Input))
		errCh := make(chan error, 1)
		go func() {
			err := chat.Parse(reader, cfg.Culture, func(m chat.Message) error {
				grouper.Add(m)
				parsed++
				if size > 0 {
					prog.Send(ui.ProgressMsg(float64(counter.Value()) / float64(size)))
				}
				return nil
			})
			prog.Send(ui.DoneMsg{Err: err})
			errCh <- err
		}()
		if _, err := prog.Run(); err != nil {
			return fmt.Errorf("progress display: %w", err)
		}
		if err := <-errCh; err != nil {
			return err
		}
	} else {
		fmt.Fprintf(os.Stderr, "Parsing %s...\n", cfg.Input)
		err := chat.Parse(reader, cfg.Culture, func(m chat.Message) error {
			grouper.Add(m)
			parsed++
			return nil
		})
		if err != nil {
			return err
		}
	}

	groups := grouper.Groups()

	var resolve sheet.ResolveLink
	used := make(map[string]bool)
	if cfg.MediaDir != "" {
		resolve = func(m chat.Message) (string, bool) {
			if m.Media != chat.MediaNamed {
				return "", false
			}
			path, ok := media.Resolve(cfg.MediaDir, m.MediaFile)
			if ok {
				used[path] = true
			}
			return path, ok
		}
	}

	out := cfg.DefaultOutput()
	if err := sheet.WriteWorkbook(out, groups, resolve); err != nil {
		return err
	}

	if cfg.MoveUnused && cfg.MediaDir != "" {
		if moved, err := media.MoveUnused(cfg.MediaDir, used); err != nil {
			fmt.Fprintf(os.Stderr, "move unused media: %v\n", err)
		} else if moved > 0 {
			fmt.Fprintln(os.Stderr, ui.Dim(fmt.Sprintf("Moved %d unused media files to %s",
				moved, filepath.Join(cfg.MediaDir, media.UnusedDirName))))
		}
	}

	fmt.Fprintln(os.Stderr, ui.Summary(fmt.Sprintf("Wrote %d messages in %d sheets to %s",
		parsed, len(groups), out)))
	return nil
}

type countingReader struct {
	r io.Reader
	c *ui.Counter
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.c.Add(n)
	return n, err
}
