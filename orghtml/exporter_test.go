package orghtml

import (
	"strings"
	"testing"

	"github.com/musicionary/organice/model"
	"github.com/musicionary/organice/parse"
)

const exportFixture = "#+TITLE: Weekly Notes\n" +
	"#+TODO: TODO | DONE\n" +
	"\n" +
	"Intro paragraph before any heading.\n" +
	"\n" +
	"* TODO Ship the exporter :work:urgent:\n" +
	"  SCHEDULED: <2024-01-15 Mon>\n" +
	"  :PROPERTIES:\n" +
	"  :OWNER: ana\n" +
	"  :END:\n" +
	"Body paragraph one.\n" +
	"\n" +
	"See [[https://example.com][the site]] and www.example.org for details.\n" +
	"\n" +
	"- [X] reviewed\n" +
	"- [ ] deployed\n" +
	"\n" +
	"| name | qty |\n" +
	"|------+-----|\n" +
	"| bolt | 12  |\n" +
	"** DONE Archive the results\n" +
	"Archived on Monday.\n" +
	"* Log\n" +
	"  :LOGBOOK:\n" +
	"  CLOCK: [2024-01-15 Mon 09:00]--[2024-01-15 Mon 10:30] => 1:30\n" +
	"  :END:\n"

func exportFragment(t *testing.T, exporter *Exporter, text string) string {
	t.Helper()
	out, err := exporter.ExportString(parse.Parse(text))
	if err != nil {
		t.Fatalf("ExportString failed: %v", err)
	}
	return out
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.FullDocument {
		t.Error("Expected fragment export by default")
	}
	if config.ClassPrefix != "org-" {
		t.Errorf("Expected org- class prefix, got %q", config.ClassPrefix)
	}
}

func TestDocumentConfig(t *testing.T) {
	config := DocumentConfig()

	if !config.FullDocument {
		t.Error("Expected full document export")
	}
	if config.ClassPrefix != "org-" {
		t.Errorf("Expected org- class prefix, got %q", config.ClassPrefix)
	}
}

func TestExportHeadings(t *testing.T) {
	out := exportFragment(t, NewExporter(), exportFixture)

	for _, want := range []string{
		"<h1>",
		"<h2>",
		`<span class="org-todo">TODO</span> Ship the exporter`,
		`<span class="org-done">DONE</span> Archive the results`,
		`<span class="org-tag">work</span>`,
		`<span class="org-tag">urgent</span>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestExportHeadingLevelCap(t *testing.T) {
	out := exportFragment(t, NewExporter(), "******* Deep\n")

	if !strings.Contains(out, "<h6>Deep</h6>") {
		t.Errorf("Expected level 7 heading capped at h6, got:\n%s", out)
	}
}

func TestExportPlanning(t *testing.T) {
	out := exportFragment(t, NewExporter(), exportFixture)

	if !strings.Contains(out, `<span class="org-planning-keyword">SCHEDULED:</span>`) {
		t.Errorf("Output missing planning keyword:\n%s", out)
	}
	if !strings.Contains(out, `<span class="org-timestamp">&lt;2024-01-15 Mon&gt;</span>`) {
		t.Errorf("Output missing planning timestamp:\n%s", out)
	}
}

func TestExportPlanningFilter(t *testing.T) {
	text := "* Trip\nLeaving <2024-03-01 Fri> at dawn.\n"

	out := exportFragment(t, NewExporter(), text)
	if strings.Contains(out, "TIMESTAMP:") {
		t.Errorf("Default filter leaked a derived planning item:\n%s", out)
	}

	config := DefaultConfig()
	config.Planning = func(model.PlanningItem) bool { return true }
	out = exportFragment(t, NewExporterWithConfig(config), text)
	if !strings.Contains(out, "TIMESTAMP:") {
		t.Errorf("Permissive filter dropped a derived planning item:\n%s", out)
	}
}

func TestExportProperties(t *testing.T) {
	out := exportFragment(t, NewExporter(), exportFixture)

	if !strings.Contains(out, `<dl class="org-properties">`) {
		t.Errorf("Output missing property list:\n%s", out)
	}
	if !strings.Contains(out, "<dt>OWNER</dt>") || !strings.Contains(out, "<dd>ana</dd>") {
		t.Errorf("Output missing property entry:\n%s", out)
	}
}

func TestExportLogBook(t *testing.T) {
	out := exportFragment(t, NewExporter(), exportFixture)

	if !strings.Contains(out, `<ul class="org-logbook">`) {
		t.Errorf("Output missing logbook list:\n%s", out)
	}
	want := "CLOCK: [2024-01-15 Mon 09:00]--[2024-01-15 Mon 10:30] =&gt; 1:30"
	if !strings.Contains(out, want) {
		t.Errorf("Output missing clock entry %q:\n%s", want, out)
	}
}

func TestExportBodyParagraphs(t *testing.T) {
	out := exportFragment(t, NewExporter(), "* T\nFirst paragraph.\n\nSecond paragraph.\n")

	if !strings.Contains(out, "<p>First paragraph.</p>") {
		t.Errorf("Output missing first paragraph:\n%s", out)
	}
	if !strings.Contains(out, "<p>Second paragraph.</p>") {
		t.Errorf("Output missing second paragraph:\n%s", out)
	}
}

func TestExportLinks(t *testing.T) {
	out := exportFragment(t, NewExporter(), exportFixture)

	for _, want := range []string{
		`<a href="https://example.com">the site</a>`,
		`<a href="https://www.example.org">www.example.org</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestExportBareLinkKinds(t *testing.T) {
	out := exportFragment(t, NewExporter(),
		"* T\nWrite to ana@example.com or visit [[file.org]] today.\n")

	if !strings.Contains(out, `<a href="mailto:ana@example.com">ana@example.com</a>`) {
		t.Errorf("Output missing mailto link:\n%s", out)
	}
	if !strings.Contains(out, `<a href="file.org">file.org</a>`) {
		t.Errorf("Expected title-less link to reuse its URI, got:\n%s", out)
	}
}

func TestExportList(t *testing.T) {
	out := exportFragment(t, NewExporter(), exportFixture)

	if !strings.Contains(out, "<ul>") {
		t.Errorf("Output missing unordered list:\n%s", out)
	}
	if !strings.Contains(out, `<input type="checkbox" disabled="" checked=""`) {
		t.Errorf("Output missing checked checkbox:\n%s", out)
	}
	if strings.Count(out, `<input type="checkbox" disabled=""`) != 2 {
		t.Errorf("Expected 2 checkboxes, got:\n%s", out)
	}
}

func TestExportOrderedList(t *testing.T) {
	out := exportFragment(t, NewExporter(), "* T\n1. one\n5. [@5] five\n6. six\n")

	if !strings.Contains(out, "<ol>") {
		t.Errorf("Output missing ordered list:\n%s", out)
	}
	if !strings.Contains(out, `<li value="5">`) {
		t.Errorf("Output missing forced numbering:\n%s", out)
	}
}

func TestExportNestedListContents(t *testing.T) {
	out := exportFragment(t, NewExporter(), "* T\n- outer\n  - inner\n")

	if strings.Count(out, "<ul>") != 2 {
		t.Errorf("Expected nested list to produce 2 ul elements, got:\n%s", out)
	}
	if !strings.Contains(out, "<li>inner</li>") {
		t.Errorf("Output missing inner item:\n%s", out)
	}
}

func TestExportTable(t *testing.T) {
	out := exportFragment(t, NewExporter(), exportFixture)

	for _, want := range []string{"<table>", "<tbody>", "<td>name</td>", "<td>bolt</td>", "<td>12</td>"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestExportCookies(t *testing.T) {
	out := exportFragment(t, NewExporter(), "* Tasks [1/2] and [50%]\n")

	if !strings.Contains(out, `<span class="org-cookie">[1/2]</span>`) {
		t.Errorf("Output missing fraction cookie:\n%s", out)
	}
	if !strings.Contains(out, `<span class="org-cookie">[50%]</span>`) {
		t.Errorf("Output missing percentage cookie:\n%s", out)
	}
}

func TestExportPreamble(t *testing.T) {
	out := exportFragment(t, NewExporter(), exportFixture)

	if !strings.Contains(out, "<p>Intro paragraph before any heading.</p>") {
		t.Errorf("Output missing preamble paragraph:\n%s", out)
	}
	if strings.Contains(out, "#+TITLE") {
		t.Errorf("Config lines should not appear in the output:\n%s", out)
	}
}

func TestExportEscaping(t *testing.T) {
	out := exportFragment(t, NewExporter(), "* T\nCompare a < b & c.\n")

	if !strings.Contains(out, "a &lt; b &amp; c.") {
		t.Errorf("Expected escaped body text, got:\n%s", out)
	}
}

func TestExportFragmentHasNoShell(t *testing.T) {
	out := exportFragment(t, NewExporter(), exportFixture)

	if strings.Contains(out, "<html>") || strings.Contains(out, "<!DOCTYPE") {
		t.Errorf("Fragment export should not emit a document shell:\n%s", out)
	}
	if !strings.HasPrefix(out, `<div class="org-document">`) {
		t.Errorf("Expected fragment wrapped in a document div, got:\n%s", out)
	}
}

func TestExportFullDocument(t *testing.T) {
	out := exportFragment(t, NewExporterWithConfig(DocumentConfig()), exportFixture)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<html>",
		`<meta charset="utf-8"`,
		"<title>Weekly Notes</title>",
		"<body>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestExportTitleOverride(t *testing.T) {
	config := DocumentConfig()
	config.Title = "Quarterly Report"
	out := exportFragment(t, NewExporterWithConfig(config), exportFixture)

	if !strings.Contains(out, "<title>Quarterly Report</title>") {
		t.Errorf("Expected configured title to win, got:\n%s", out)
	}
}

func TestExportClassPrefix(t *testing.T) {
	config := DefaultConfig()
	config.ClassPrefix = "note-"
	out := exportFragment(t, NewExporterWithConfig(config), exportFixture)

	if !strings.Contains(out, `<span class="note-todo">`) {
		t.Errorf("Expected custom class prefix, got:\n%s", out)
	}
	if strings.Contains(out, "org-todo") {
		t.Errorf("Default prefix leaked into output:\n%s", out)
	}
}
