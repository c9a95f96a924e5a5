package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/stride/internal/demo"
)

// SizePlot renders the step size of every attempt.
func SizePlot(res *demo.Result) string {
	if len(res.Sizes) < 2 {
		return ""
	}
	return asciigraph.Plot(res.Sizes,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("step size per attempt"),
	)
}

// ValuePlot renders the profile value of every attempt.
func ValuePlot(res *demo.Result) string {
	if len(res.Values) < 2 {
		return ""
	}
	return asciigraph.Plot(res.Values,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("value per attempt"),
	)
}

// Summary renders the run outcome as styled key/value lines.
func Summary(name string, res *demo.Result, err error) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(name) + "\n")
	row := func(label, value string) {
		b.WriteString(LabelStyle.Render(label) + ValueStyle.Render(value) + "\n")
	}
	row("attempts", fmt.Sprintf("%d", res.Attempts))
	row("accepted", fmt.Sprintf("%d", res.Accepted))
	row("rejected", fmt.Sprintf("%d", res.Attempts-res.Accepted))
	row("final position", fmt.Sprintf("%g", res.Final))
	row("max accepted err", fmt.Sprintf("%.3g", res.MaxAcceptedError()))
	if err != nil {
		b.WriteString(LabelStyle.Render("status") + BadStyle.Render(err.Error()) + "\n")
	} else {
		b.WriteString(LabelStyle.Render("status") + GoodStyle.Render("completed") + "\n")
	}
	return b.String()
}
