package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/katalvlaran/percolation/lattice"
	"github.com/katalvlaran/percolation/montecarlo"
	"github.com/katalvlaran/percolation/stats"
)

// MarkdownWriter writes reports in Markdown to an io.Writer.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to w.
func NewMarkdownWriter(w io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: w}
}

// WriteStatistics writes the summary of one (L, p) run and its cluster-size
// histogram.
func (w *MarkdownWriter) WriteStatistics(st stats.Statistics) error {
	md := markdown.NewMarkdown(w.output)
	md.H2(fmt.Sprintf("L = %d, p = %s", st.Size, formatFloat(st.P)))
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Trials", strconv.Itoa(st.Trials)},
			{"Spanning trials", strconv.Itoa(st.Spanning)},
			{"Percolation probability", formatFloat(st.PercolationProbability)},
			{"Std. error", formatFloat(st.StdErrProbability)},
			{"Mean max cluster size", formatFloat(st.MeanMaxClusterSize)},
			{"Std. dev. max cluster size", formatFloat(st.StdDevMaxClusterSize)},
			{"Mean burn rounds", formatFloat(st.MeanBurnRounds)},
		},
	})
	md.PlainText("")
	w.writeHistogram(md, st.ClusterSizeHistogram)
	return md.Build()
}

// writeHistogram writes the size → count table, sizes ascending.
func (w *MarkdownWriter) writeHistogram(md *markdown.Markdown, hist map[int]int) {
	md.H3("Cluster size histogram")
	md.PlainText("")
	sizes := stats.SortedSizes(hist)
	if len(sizes) == 0 {
		md.PlainText("No occupied sites.")
		md.PlainText("")
		return
	}
	rows := make([][]string, 0, len(sizes))
	for _, s := range sizes {
		rows = append(rows, []string{strconv.Itoa(s), strconv.Itoa(hist[s])})
	}
	md.Table(markdown.TableSet{Header: []string{"Size", "Clusters"}, Rows: rows})
	md.PlainText("")
}

// WriteSweep writes one table per curve and one binned distribution per
// snapshot.
func (w *MarkdownWriter) WriteSweep(res *montecarlo.SweepResult) error {
	md := markdown.NewMarkdown(w.output)
	md.H1("Percolation sweep")
	md.PlainText("")

	for _, c := range res.Curves {
		md.H2(fmt.Sprintf("L = %d", c.Size))
		md.PlainText("")
		rows := make([][]string, 0, len(c.Points))
		for _, pt := range c.Points {
			rows = append(rows, []string{
				formatFloat(pt.P),
				strconv.Itoa(pt.Trials),
				formatFloat(pt.PercolationProbability),
				formatFloat(pt.StdErrProbability),
				formatFloat(pt.MeanMaxClusterSize),
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"p", "Trials", "Percolation probability", "Std. error", "Mean max cluster"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if len(res.Snapshots) > 0 {
		md.H2("Cluster size distributions")
		md.PlainText("")
	}
	for _, snap := range res.Snapshots {
		md.H3(fmt.Sprintf("L = %d, p = %s", snap.Size, formatFloat(snap.P)))
		md.PlainText("")
		rows := make([][]string, 0, len(snap.Bins))
		for _, b := range snap.Bins {
			rows = append(rows, []string{
				fmt.Sprintf("%d-%d", b.Lower, b.Upper),
				strconv.Itoa(b.Count),
				strconv.FormatFloat(b.Density, 'e', 4, 64),
			})
		}
		md.Table(markdown.TableSet{Header: []string{"Sizes", "Clusters", "n_s"}, Rows: rows})
		md.PlainText("")
	}
	return md.Build()
}

// WriteFrame writes a frame as a heading and a fixed-width code block.
// Empty sites print as '.', other values in decimal.
func (w *MarkdownWriter) WriteFrame(f lattice.Frame) error {
	width := 1
	for _, row := range f.Cells {
		for _, v := range row {
			width = max(width, len(strconv.Itoa(v)))
		}
	}

	var sb strings.Builder
	for r, row := range f.Cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
	}

	md := markdown.NewMarkdown(w.output)
	md.H2(f.Title)
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightText, sb.String())
	md.PlainText("")
	return md.Build()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
