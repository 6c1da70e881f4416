package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"ttc/playback"
	"ttc/state"
	"ttc/ttml"
	"ttc/utils/debug"
)

// Inspect compiles single document and prints its cues to standard output.
func Inspect(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input document has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Mailformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var at *float64
	if s := cmd.String("at"); len(s) > 0 {
		t, err := parseMoment(s)
		if err != nil {
			return err
		}
		at = &t
	}

	compiler, err := env.NewCompiler()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	doc, err := compiler.CompileDocument(bytes.NewReader(data), env.Viewport())
	if err != nil {
		return fmt.Errorf("unable to compile (%s): %w", src, err)
	}

	return inspectDocument(os.Stdout, doc, at, cmd.Bool("tree"))
}

// parseMoment accepts either seconds or media clock time.
func parseMoment(s string) (float64, error) {
	if t, err := strconv.ParseFloat(s, 64); err == nil {
		if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, fmt.Errorf("invalid moment %q", s)
		}
		return t, nil
	}
	t, err := ttml.ResolveMediaTime(s)
	if err != nil {
		return 0, fmt.Errorf("invalid moment: %w", err)
	}
	return t, nil
}

func inspectDocument(w io.Writer, doc *ttml.Document, at *float64, tree bool) error {
	if tree {
		_, err := io.WriteString(w, doc.String())
		return err
	}

	tl := playback.NewTimeline(doc.Cues)

	active := make(map[int]bool)
	current := -1
	if at != nil {
		for _, i := range tl.Active(*at) {
			active[i] = true
		}
		if i, ok := tl.Current(*at); ok {
			current = i
		}
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"", "#", "ID", "Start", "End", "Kind", "Content"})
	for i := range doc.Cues {
		c := &doc.Cues[i]
		mark := ""
		switch {
		case active[i] && i == current:
			mark = "**"
		case active[i]:
			mark = "*"
		case i == current:
			mark = "-"
		}
		tw.AppendRow(table.Row{mark, i + 1, c.ID, debug.FormatClock(c.Start), debug.FormatClock(c.End), cueKind(c), cueSummary(c)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	start, end := tl.Span()
	fmt.Fprintf(w, "lang: %s, profile: %s, viewport: %s, cues: %d, span: %s - %s\n",
		doc.Lang, doc.Profile, doc.Viewport, tl.Len(), debug.FormatClock(start), debug.FormatClock(end))
	if at != nil {
		next := "none"
		if t, ok := tl.NextChange(*at); ok {
			next = debug.FormatClock(t)
		}
		fmt.Fprintf(w, "at: %s, active: %d, next change: %s\n", debug.FormatClock(*at), len(active), next)
	}
	_, err := io.WriteString(w, tw.Render()+"\n")
	return err
}

func cueKind(c *ttml.Cue) string {
	if c.IsImage() {
		return "image"
	}
	return "text"
}

func cueSummary(c *ttml.Cue) string {
	if c.IsImage() {
		return fmt.Sprintf("%s %dx%d", c.Image.MIME, c.Image.Width, c.Image.Height)
	}
	return strings.ReplaceAll(c.Text(), "\n", " / ")
}
