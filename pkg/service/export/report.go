package export

import (
	_ "embed"
	"io"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"

	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/domain/types"
	"github.com/chent01/riskreg/pkg/service/register"
)

//go:embed templates/report.md.tmpl
var reportTmplSrc string

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(reportTmplSrc))

type reportLevelRow struct {
	Level string
	Count int
}

type reportItem struct {
	Item     *model.RiskItem
	Score    model.RiskScore
	Enhanced bool
}

type reportData struct {
	ProjectName       string
	GeneratedAt       string
	Stats             *model.RegisterStats
	LevelRows         []reportLevelRow
	UnacceptableCount int
	UndesirableCount  int
	Items             []reportItem
}

// WriteReport renders the narrative Markdown report for a register, with
// per-risk sections in priority order. The wording is template-driven
// and stable so golden-file regression tests can rely on it.
func (e *Exporter) WriteReport(w io.Writer, reg *model.Register) error {
	stats := register.Statistics(reg.Items)

	data := reportData{
		ProjectName:       reg.ProjectName,
		GeneratedAt:       e.now().UTC().Format("2006-01-02 15:04:05 UTC"),
		Stats:             stats,
		UnacceptableCount: stats.ByRiskLevel[types.RiskLevelUnacceptable.String()],
		UndesirableCount:  stats.ByRiskLevel[types.RiskLevelUndesirable.String()],
	}

	// Level rows in descending order so the worst bucket leads
	levels := types.AllRiskLevels()
	for i := len(levels) - 1; i >= 0; i-- {
		data.LevelRows = append(data.LevelRows, reportLevelRow{
			Level: levels[i].String(),
			Count: stats.ByRiskLevel[levels[i].String()],
		})
	}

	for _, item := range register.SortByPriority(reg.Items) {
		data.Items = append(data.Items, reportItem{
			Item:     item,
			Score:    scoreOf(item),
			Enhanced: item.Enhanced(),
		})
	}

	if err := reportTmpl.Execute(w, data); err != nil {
		return goerr.Wrap(err, "failed to render report")
	}
	return nil
}
