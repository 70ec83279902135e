// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package output

const dashboardCSS = `:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --hover: #e9ecef; --muted: #6c757d;
  --high: #dc3545; --medium: #fd7e14; --low: #28a745;
  --accent: #0d6efd; --info-bg: #e7f1ff; --ok-bg: #e6f4ea; --warn-bg: #fdecea;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --table-alt: #0f3460; --hover: #1a1a4e; --muted: #adb5bd;
    --high: #f55; --medium: #fd7e14; --low: #4caf50;
    --accent: #5b9aff; --info-bg: #14284b; --ok-bg: #173a24; --warn-bg: #4a1c1c;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
.muted { color: var(--muted); font-size: .8125rem; margin-bottom: .25rem; }
section { margin-bottom: 1.5rem; }
h2 { font-size: 1.125rem; margin-bottom: .5rem; }
.banner { padding: .5rem .75rem; border-radius: 6px; font-size: .875rem; margin-bottom: 1rem; }
.banner-ok { background: var(--ok-bg); }
.banner-info { background: var(--info-bg); }
.banner-warn { background: var(--warn-bg); }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: .75rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.card .value { font-size: 1.5rem; font-weight: 700; }
.card .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.card-high .value { color: var(--high); }
.charts { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; }
@media (max-width: 768px) { .charts { grid-template-columns: 1fr; } }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.chart-box h3 { font-size: .875rem; margin-bottom: .5rem; }
.chart-wide { grid-column: 1 / -1; }
.filters { display: flex; flex-wrap: wrap; gap: .75rem; align-items: center; }
.filters label { font-size: .8125rem; color: var(--muted); }
.filters select { padding: .375rem .5rem; border: 1px solid var(--border); border-radius: 4px; background: var(--card-bg); color: var(--fg); font-size: .8125rem; }
.table-wrap { max-height: 420px; overflow: auto; border: 1px solid var(--border); border-radius: 6px; }
table { width: 100%; border-collapse: collapse; font-size: .8125rem; }
thead { position: sticky; top: 0; background: var(--card-bg); }
th, td { padding: .5rem .625rem; text-align: left; border-bottom: 1px solid var(--border); }
td.num, th.num { text-align: right; }
tr:nth-child(even) { background: var(--table-alt); }
tr:hover { background: var(--hover); }
.level { font-weight: 700; }
.level-High { color: var(--high); }
.level-Medium { color: var(--medium); }
.level-Low { color: var(--low); }
ul.districts, ol.actions { margin: .5rem 0 .5rem 1.5rem; font-size: .875rem; }
a.download { display: inline-block; padding: .5rem .875rem; border-radius: 6px; background: var(--accent); color: #fff; text-decoration: none; font-size: .875rem; }
footer { color: var(--muted); font-size: .75rem; }
`

const dashboardJS = `function svgEl(tag, attrs) {
  var el = document.createElementNS("http://www.w3.org/2000/svg", tag);
  for (var k in attrs) el.setAttribute(k, attrs[k]);
  return el;
}

function num(v) { return (typeof v === "number" && isFinite(v)) ? v : 0; }

var palette = ["#0d6efd","#6f42c1","#20c997","#e83e8c","#17a2b8","#6c757d"];
var levelColors = {High:"var(--high)", Medium:"var(--medium)", Low:"var(--low)"};
function levelColor(level, i) { return levelColors[level] || palette[i % palette.length]; }

function renderDoughnut(id, labels, counts, percents, hole) {
  var c = document.getElementById(id); if (!c) return;
  var total = counts.reduce(function(a,b){return a+b},0);
  if (!total) return;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 360 180"});
  var cx=90, cy=90, r=80, ir=r*hole, angle=-Math.PI/2;
  for (var i = 0; i < counts.length; i++) {
    if (counts[i] === 0) continue;
    var slice = (counts[i]/total)*Math.PI*2;
    var color = levelColor(labels[i], i);
    if (counts[i] === total) {
      svg.appendChild(svgEl("circle", {cx:cx, cy:cy, r:(r+ir)/2, fill:"none", stroke:color, "stroke-width":r-ir}));
    } else {
      var a0 = angle, a1 = angle + slice, large = slice > Math.PI ? 1 : 0;
      var d = "M"+(cx+r*Math.cos(a0))+","+(cy+r*Math.sin(a0))+
        " A"+r+","+r+" 0 "+large+",1 "+(cx+r*Math.cos(a1))+","+(cy+r*Math.sin(a1))+
        " L"+(cx+ir*Math.cos(a1))+","+(cy+ir*Math.sin(a1))+
        " A"+ir+","+ir+" 0 "+large+",0 "+(cx+ir*Math.cos(a0))+","+(cy+ir*Math.sin(a0))+" Z";
      svg.appendChild(svgEl("path", {d:d, fill:color}));
    }
    if (slice > 0.35) {
      var mid = angle + slice/2, lr = (r+ir)/2;
      var pt = svgEl("text", {x:cx+lr*Math.cos(mid), y:cy+lr*Math.sin(mid)+4, "text-anchor":"middle", fill:"#fff", "font-size":"11"});
      pt.textContent = percents[i].toFixed(1)+"%";
      svg.appendChild(pt);
    }
    angle += slice;
  }
  for (var j = 0; j < labels.length; j++) {
    var ly = 20 + j*20;
    svg.appendChild(svgEl("rect", {x:195, y:ly-9, width:11, height:11, fill:levelColor(labels[j], j), rx:2}));
    var lt = svgEl("text", {x:212, y:ly+1, fill:"currentColor", "font-size":"12"});
    lt.textContent = labels[j]+": "+counts[j]+" ("+percents[j].toFixed(1)+"%)";
    svg.appendChild(lt);
  }
  c.appendChild(svg);
}

function renderHBar(id, labels, values, color) {
  var c = document.getElementById(id); if (!c) return;
  var vals = values.map(num);
  var max = Math.max.apply(null, vals) || 1;
  var h = labels.length * 24 + 4;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 460 "+h});
  for (var i = 0; i < labels.length; i++) {
    var w = (vals[i]/max)*300, y = i*24+2;
    svg.appendChild(svgEl("rect", {x:120, y:y, width:Math.max(w,2), height:18, fill:color, rx:3}));
    var txt = svgEl("text", {x:115, y:y+13, "text-anchor":"end", fill:"currentColor", "font-size":"11"});
    txt.textContent = labels[i].length > 18 ? labels[i].slice(0,16)+"..." : labels[i];
    svg.appendChild(txt);
    var val = svgEl("text", {x:125+w, y:y+13, fill:"currentColor", "font-size":"11"});
    val.textContent = values[i] === null ? "NaN" : vals[i].toFixed(2);
    svg.appendChild(val);
  }
  c.appendChild(svg);
}

function renderVBar(id, labels, values, levels) {
  var c = document.getElementById(id); if (!c) return;
  var vals = values.map(num);
  var max = Math.max.apply(null, vals) || 1;
  var step = 34, plotH = 200, labelH = 120, left = 10;
  var width = left + labels.length*step + 10;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 "+width+" "+(plotH+labelH)});
  for (var i = 0; i < labels.length; i++) {
    var bh = (vals[i]/max)*(plotH-20), x = left + i*step;
    svg.appendChild(svgEl("rect", {x:x+4, y:plotH-bh, width:step-8, height:Math.max(bh,1), fill:levelColor(levels[i], i), rx:2}));
    var val = svgEl("text", {x:x+step/2, y:plotH-bh-4, "text-anchor":"middle", fill:"currentColor", "font-size":"9"});
    val.textContent = values[i] === null ? "NaN" : vals[i].toFixed(2);
    svg.appendChild(val);
    var lx = x+step/2, ly = plotH+8;
    var lt = svgEl("text", {x:lx, y:ly, "text-anchor":"end", fill:"currentColor", "font-size":"10", transform:"rotate(-80 "+lx+" "+ly+")"});
    lt.textContent = labels[i].length > 20 ? labels[i].slice(0,18)+"..." : labels[i];
    svg.appendChild(lt);
  }
  c.appendChild(svg);
}

(function(){
  if (typeof chartData === "undefined") return;
  renderDoughnut("chart-distribution", chartData.levelLabels, chartData.levelCounts, chartData.levelPercents, chartData.hole);
  if (chartData.highLabels) renderHBar("chart-high", chartData.highLabels, chartData.highValues, "var(--high)");
  if (chartData.topLabels) renderVBar("chart-top", chartData.topLabels, chartData.topValues, chartData.topLevels);
})();
`

const htmlPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{if .InlineCSS}}<style>{{.InlineCSS}}</style>{{else}}<link rel="stylesheet" href="assets/dashboard.css">{{end}}
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p>Generated {{.GeneratedAt}}</p>
</header>
{{if .Source}}<div class="banner banner-ok" id="source">Loaded: {{.Source}}</div>{{end}}

<section id="preview">
  <h2>Dataset Preview</h2>
  <p class="muted">{{len .Preview}} of {{.TableRows}} rows</p>
  {{template "rows" .Preview}}
</section>

<section id="filters">
  <h2>Filters</h2>
  {{if .Interactive}}
  <form class="filters" method="get" action="">
    <label for="filter-state">State</label>
    <select id="filter-state" name="state" onchange="this.form.submit()">
      {{range .Options.States}}<option value="{{.}}"{{if eq . $.Filter.State}} selected{{end}}>{{.}}</option>{{end}}
    </select>
    <label for="filter-level">AISI Level</label>
    <select id="filter-level" name="level" onchange="this.form.submit()">
      {{range .Options.Levels}}<option value="{{.}}"{{if eq . $.Filter.Level}} selected{{end}}>{{.}}</option>{{end}}
    </select>
    <noscript><button type="submit">Apply</button></noscript>
  </form>
  {{else}}
  <p class="filters">State: <strong>{{.Filter.State}}</strong> &middot; AISI Level: <strong>{{.Filter.Level}}</strong></p>
  {{end}}
</section>

<section id="filtered">
  <h2>Filtered Results</h2>
  {{if .Rows}}{{template "rows" .Rows}}{{else}}<div class="banner banner-info">No rows match the selected filters.</div>{{end}}
</section>

<section id="metrics">
  <h2>Key Metrics</h2>
  <div class="cards">
    <div class="card"><div class="value">{{.Metrics.TotalDistricts}}</div><div class="label">Total Districts</div></div>
    <div class="card card-high"><div class="value">{{.Metrics.HighStressDistricts}}</div><div class="label">High Stress Districts</div></div>
    <div class="card"><div class="value">{{.Metrics.AvgChildRatio}}</div><div class="label">Avg Child Ratio</div></div>
  </div>
</section>

{{with .StateSummary}}
<section id="state-summary">
  <h2>State Summary: {{.State}}</h2>
  <div class="cards">
    <div class="card"><div class="value">{{.TotalDistricts}}</div><div class="label">Total Districts</div></div>
    <div class="card card-high"><div class="value">{{.HighStressDistricts}}</div><div class="label">High Stress</div></div>
    <div class="card"><div class="value">{{.LowStressDistricts}}</div><div class="label">Low Stress</div></div>
  </div>
  {{with .WorstDistrict}}<div class="banner banner-warn">Worst District: <strong>{{.District}}</strong> (child_ratio {{.ChildRatio}})</div>{{end}}
</section>
{{end}}

<section class="charts" id="charts">
  <div class="chart-box"><h3>AISI Level Distribution (all districts)</h3><div id="chart-distribution"></div></div>
  <div class="chart-box"><h3>Top {{.HighLimit}} High-Stress Districts</h3>
    {{if .HighStress.Empty}}<div class="banner banner-info">{{.HighStress.Message}}</div>{{else}}<div id="chart-high"></div>{{end}}
  </div>
  <div class="chart-box chart-wide"><h3>Top {{.TopLimit}} Districts by Child Ratio</h3><div id="chart-top"></div></div>
</section>

{{with .Diagnosis}}
<section id="diagnosis">
  <h2>Diagnosis: {{.State}}</h2>
  {{if .Healthy}}
  <div class="banner banner-ok">{{.Message}}</div>
  {{else}}
  <div class="banner banner-warn">{{.Message}}</div>
  <ul class="districts">{{range .HighDistricts}}<li>{{.District}} (child_ratio {{.ChildRatio}})</li>{{end}}</ul>
  <h3>Recommended Actions</h3>
  <ol class="actions">{{range .Recommendations}}<li>{{.}}</li>{{end}}</ol>
  {{end}}
</section>
{{end}}

<section id="download">
  <a class="download" href="{{.DownloadHref}}" download="{{.ExportFileName}}">Download filtered data ({{.ExportFileName}})</a>
</section>

<footer>{{len .Rows}} filtered rows &middot; {{.TableRows}} total</footer>

<script>
var chartData = {{json .ChartData}};
</script>
{{if .InlineJS}}<script>{{.InlineJS}}</script>{{else}}<script src="assets/dashboard.js"></script>{{end}}
</body>
</html>
{{define "rows"}}<div class="table-wrap"><table>
<thead><tr><th>State</th><th>District</th><th>AISI_level</th><th class="num">child_ratio</th></tr></thead>
<tbody>
{{range .}}<tr><td>{{.State}}</td><td>{{.District}}</td><td><span class="level level-{{.Level}}">{{.Level}}</span></td><td class="num">{{.ChildRatio}}</td></tr>
{{end}}</tbody>
</table></div>{{end}}`

const htmlErrorTemplate = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title><style>{{.CSS}}</style></head>
<body>
<header><h1>{{.Title}}</h1></header>
<div class="banner banner-warn" id="error">{{.Message}}</div>
</body>
</html>`
