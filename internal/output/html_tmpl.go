package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --muted: #6c757d; --accent: #0d6efd; --popup-bg: #fff; --popup-shadow: rgba(0,0,0,.18);
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p, p.source { color: var(--muted); font-size: .875rem; }
section.ikpa-table { margin-bottom: 2rem; }
section.ikpa-table h2 { font-size: 1.125rem; }
.scroll { overflow-x: auto; border: 1px solid var(--border); border-radius: 6px; margin-top: .5rem; }
table { border-collapse: separate; border-spacing: 0; font-size: .8125rem; width: max-content; min-width: 100%; }
th, td { padding: .375rem .625rem; text-align: left; border-bottom: 1px solid var(--border); white-space: nowrap; }
th { background: var(--card-bg); vertical-align: bottom; }
td.num { text-align: right; font-variant-numeric: tabular-nums; }
th.pinned, td.pinned { position: sticky; z-index: 1; overflow: hidden; text-overflow: ellipsis; }
td.pinned { background-color: inherit; }
th.pinned { z-index: 2; }
tr.filters th { padding-top: 0; }
tr.filters input { width: 100%; min-width: 4rem; padding: .125rem .25rem; border: 1px solid var(--border); border-radius: 3px; font-size: .75rem; }
[data-annotated] { cursor: help; }
th[data-annotated] .label { text-decoration: underline dotted; }
.info { color: var(--accent); margin-left: .25rem; }
button.sort { border: 0; background: none; color: var(--muted); cursor: pointer; margin-left: .25rem; font-size: .75rem; }
tr.hidden { display: none; }
.ikpa-popup { position: fixed; z-index: 10; max-width: min(420px, calc(100vw - 16px)); max-height: calc(100vh - 16px); overflow: auto; background: var(--popup-bg); color: var(--fg); border: 1px solid var(--border); border-radius: 6px; box-shadow: 0 4px 16px var(--popup-shadow); padding: .75rem 1rem; font-size: .8125rem; white-space: normal; }
.ikpa-popup h3 { font-size: .9375rem; margin-bottom: .375rem; }
.ikpa-popup p { margin-bottom: .375rem; }
.ikpa-popup table { font-size: .75rem; width: auto; min-width: 0; }
.ikpa-popup td, .ikpa-popup th { padding: .125rem .375rem; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p>Dibuat {{.GeneratedAt}} &middot; {{.TotalRows}} baris dalam {{len .Tables}} tabel</p>
</header>

{{range .Tables}}
<section class="ikpa-table" id="{{.ID}}">
<h2>{{.Title}}</h2>
{{if .Source}}<p class="source">{{.Source}}</p>{{end}}
<div class="scroll">
<table>
<thead>
<tr>
{{range $i, $h := .Headers}}<th data-col="{{$i}}" class="{{if .Pinned}}pinned{{end}}"{{if .Style}} style="{{.Style}}"{{end}}{{if .Annotated}} data-annotated="true" data-explain="{{.Explain}}"{{end}} title="{{.Name}}"><span class="label">{{.Label}}</span>{{if .Annotated}}<span class="info">&#9432;</span>{{end}}{{if .Sortable}}<button type="button" class="sort" data-col="{{$i}}" title="Urutkan">&#8693;</button>{{end}}</th>
{{end}}</tr>
<tr class="filters">
{{range $i, $h := .Headers}}<th class="{{if .Pinned}}pinned{{end}}"{{if .Style}} style="{{.Style}}"{{end}}>{{if .Filterable}}<input type="text" data-col="{{$i}}" placeholder="Saring" aria-label="Saring {{.Label}}">{{end}}</th>
{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr data-seq="{{.Seq}}" style="{{.Style}}">{{range .Cells}}<td class="{{if .Pinned}}pinned{{end}}{{if .Numeric}} num{{end}}"{{if .Style}} style="{{.Style}}"{{end}}{{if .SortKey}} data-sort="{{.SortKey}}"{{end}}{{if .Annotated}} data-annotated="true" data-explain="{{.Explain}}"{{end}}>{{.Text}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</div>
</section>
{{end}}

<script>
var ikpaExplanations = {{json .Explanations}};
var ikpaFallback = {{json .Fallback}};
var ikpaState = {{json .State}};

(function(){
  var popup = null;
  var margin = 8;

  function closePopup() {
    if (popup) { popup.remove(); popup = null; }
  }

  function openPopup(el, x, y) {
    var key = el.getAttribute("data-explain");
    var entry = key ? ikpaExplanations[key] : null;
    popup = document.createElement("div");
    popup.className = "ikpa-popup";
    popup.setAttribute("role", "dialog");
    if (entry) {
      var h = document.createElement("h3");
      h.textContent = entry.title;
      popup.appendChild(h);
      var body = document.createElement("div");
      body.innerHTML = entry.html;
      popup.appendChild(body);
    } else {
      var p = document.createElement("p");
      p.textContent = ikpaFallback;
      popup.appendChild(p);
    }
    popup.style.left = "0px";
    popup.style.top = "0px";
    document.body.appendChild(popup);

    var r = popup.getBoundingClientRect();
    var vw = document.documentElement.clientWidth, vh = document.documentElement.clientHeight;
    var left = Math.min(x + 12, vw - r.width - margin);
    var top = Math.min(y + 12, vh - r.height - margin);
    popup.style.left = Math.max(margin, left) + "px";
    popup.style.top = Math.max(margin, top) + "px";
  }

  document.addEventListener("click", function(ev) {
    if (popup && popup.contains(ev.target)) return;
    closePopup();
    if (ev.target.closest("button.sort, input")) return;
    var el = ev.target.closest("[data-annotated]");
    if (el) openPopup(el, ev.clientX, ev.clientY);
  });
  document.addEventListener("keydown", function(ev) {
    if (ev.key === "Escape") closePopup();
  });
  window.addEventListener("resize", closePopup);
})();

(function(){
  var stripes = {};
  ikpaState.forEach(function(s) { stripes[s.id] = s.stripes; });

  // Row colours follow displayed position, so they are reapplied after
  // every sort and filter pass.
  function restripe(section) {
    var st = stripes[section.id];
    if (!st) return;
    var i = 0;
    section.querySelectorAll("tbody tr").forEach(function(r) {
      if (r.classList.contains("hidden")) return;
      var style = i % 2 === 0 ? st.even : st.odd;
      r.style.backgroundColor = style.background;
      r.style.color = style.foreground;
      i++;
    });
  }

  function cellValue(row, ci) {
    var td = row.children[ci];
    if (!td) return "";
    return td.dataset.sort !== undefined ? parseFloat(td.dataset.sort) : td.textContent;
  }

  document.querySelectorAll("section.ikpa-table").forEach(function(section) {
    var tbody = section.querySelector("tbody");
    var sortCol = -1, sortAsc = true;

    section.querySelectorAll("button.sort").forEach(function(btn) {
      btn.addEventListener("click", function() {
        var ci = parseInt(btn.dataset.col, 10);
        if (sortCol === ci) sortAsc = !sortAsc; else { sortCol = ci; sortAsc = true; }
        var rows = Array.prototype.slice.call(tbody.querySelectorAll("tr"));
        rows.sort(function(a, b) {
          var av = cellValue(a, ci), bv = cellValue(b, ci);
          if (typeof av === "number" && typeof bv === "number") return sortAsc ? av - bv : bv - av;
          if (typeof av === "number") return -1;
          if (typeof bv === "number") return 1;
          return sortAsc ? String(av).localeCompare(bv) : String(bv).localeCompare(av);
        });
        rows.forEach(function(r) { tbody.appendChild(r); });
        restripe(section);
        section.querySelectorAll("button.sort").forEach(function(b) { b.textContent = "⇅"; });
        btn.textContent = sortAsc ? "▲" : "▼";
      });
    });

    var inputs = section.querySelectorAll("tr.filters input");
    inputs.forEach(function(input) {
      input.addEventListener("input", function() {
        var terms = [];
        inputs.forEach(function(i) {
          if (i.value) terms.push([parseInt(i.dataset.col, 10), i.value.toLowerCase()]);
        });
        tbody.querySelectorAll("tr").forEach(function(r) {
          var show = terms.every(function(t) {
            var td = r.children[t[0]];
            return td && td.textContent.toLowerCase().indexOf(t[1]) !== -1;
          });
          r.classList.toggle("hidden", !show);
        });
        restripe(section);
      });
    });
  });
})();
</script>
</body>
</html>`
