package main

import (
	"html/template"
	"io"

	"github.com/ja7ad/offload/pkg/scenario"
)

func writeHTML(w io.Writer, ds []scenario.Decision, sum scenario.Summary, rejected int) error {
	type view struct {
		Rows     []scenario.Decision
		Summary  scenario.Summary
		Rejected int
	}
	return tpl.Execute(w, view{Rows: ds, Summary: sum, Rejected: rejected})
}

var tpl = template.Must(template.New("rep").Funcs(template.FuncMap{
	"mbps": func(bps float64) float64 { return bps / 1e6 },
}).Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Offload Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
.small{color:#555}
.yes{color:#0a6b2d}
.no{color:#9b1c1c}
</style>

<h1>Offload Report</h1>

<p class="small">
Scenarios: {{.Summary.Count}} &nbsp;|&nbsp;
Rejected: {{.Rejected}} &nbsp;|&nbsp;
Offloaded: {{.Summary.Offloaded}}/{{.Summary.Count}}
</p>

<h2>Summary</h2>
<ul>
<li>Mean score: {{printf "%.4f" .Summary.MeanScore}}</li>
<li>Mean local: {{printf "%.4f" .Summary.MeanLocalTimeS}} s, {{printf "%.4f" .Summary.MeanLocalEnergyJ}} J</li>
<li>Mean offload: {{printf "%.4f" .Summary.MeanOffloadTimeS}} s, {{printf "%.4f" .Summary.MeanOffloadEnergyJ}} J</li>
<li>Best: {{.Summary.Best}}</li>
</ul>

<h2>Decisions</h2>
<table>
<thead>
<tr>
<th>name</th><th>data</th>
<th>T_local(s)</th><th>E_local(J)</th><th>f*(Hz)</th>
<th>P_tx(W)</th><th>rate(Mb/s)</th><th>T_off(s)</th><th>E_off(J)</th>
<th>score</th><th>offload</th>
</tr>
</thead>
<tbody>
{{range .Rows}}
<tr>
<td>{{.Name}}</td>
<td>{{.DataBits.Humanized}}</td>
<td>{{printf "%.4f" .LocalTimeS}}</td>
<td>{{printf "%.4f" .LocalEnergyJ}}</td>
<td>{{printf "%.3g" .OptimalFreqHz}}</td>
<td>{{printf "%.4g" .TxPowerW}}</td>
<td>{{printf "%.3f" (mbps .RateBps)}}</td>
<td>{{printf "%.4f" .OffloadTimeS}}</td>
<td>{{printf "%.4f" .OffloadEnergyJ}}</td>
<td>{{printf "%.4f" .Score}}</td>
<td>{{if .Offload}}<span class="yes">yes</span>{{else}}<span class="no">no</span>{{end}}</td>
</tr>
{{end}}
</tbody>
</table>
</html>`))
