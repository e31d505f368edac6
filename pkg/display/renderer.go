package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/azlands/daoscan/pkg/erf"
	"github.com/azlands/daoscan/pkg/types"
)

// authoritativeMark flags the path most likely to win at load time:
// the last element of the sorted list. Display hint only.
const authoritativeMark = "★"

// Renderer writes scan results and archive listings to out in the
// given format. FormatAuto must be resolved before construction.
type Renderer struct {
	out    io.Writer
	format Format
}

// NewRenderer creates a renderer for the given writer and format.
func NewRenderer(out io.Writer, format Format) *Renderer {
	return &Renderer{out: out, format: format}
}

// timeRounding keeps elapsed times readable in summaries.
const timeRounding = time.Millisecond

// scanPayload is the JSON shape for scan results.
type scanPayload struct {
	Conflicts      []types.Group `json:"conflicts"`
	Ignored        []types.Group `json:"ignored,omitempty"`
	Warnings       []string      `json:"warnings,omitempty"`
	FilesSeen      int           `json:"files_seen"`
	ArchivesParsed int           `json:"archives_parsed"`
	ElapsedMs      int64         `json:"elapsed_ms"`
}

// RenderScan writes the outcome of a scan: active conflict groups,
// optionally the ignored ones, and any skipped-archive warnings.
func (r *Renderer) RenderScan(report *types.ScanReport, active, ignored []types.Group, showIgnored bool) error {
	if r.format == FormatJSON {
		payload := scanPayload{
			Conflicts:      active,
			FilesSeen:      report.FilesSeen,
			ArchivesParsed: report.ArchivesParsed,
			ElapsedMs:      report.Elapsed.Milliseconds(),
		}
		if showIgnored {
			payload.Ignored = ignored
		}
		for _, w := range report.Warnings {
			payload.Warnings = append(payload.Warnings, w.Message())
		}
		return r.renderJSON(payload)
	}

	summary := fmt.Sprintf("%d conflict(s) across %d file(s), %d archive(s) parsed in %s",
		len(active), report.FilesSeen, report.ArchivesParsed, report.Elapsed.Round(timeRounding))
	r.line(r.styled("Header", summary))

	for _, group := range active {
		r.renderGroup(group)
	}

	if showIgnored && len(ignored) > 0 {
		r.line("")
		r.line(r.styled("Muted", fmt.Sprintf("%d ignored group(s):", len(ignored))))
		for _, group := range ignored {
			r.renderGroup(group)
		}
	} else if len(ignored) > 0 {
		r.line(r.styled("Muted", fmt.Sprintf("(%d ignored group(s) hidden, use --all to show)", len(ignored))))
	}

	r.RenderWarnings(report.Warnings)
	return nil
}

// renderGroup writes one conflict key and its contending paths. The
// last (sorted) path carries the authoritative mark.
func (r *Renderer) renderGroup(group types.Group) {
	r.line("")
	r.line(r.styled("Key", group.Key) + " " + r.styled("Count", "("+strconv.Itoa(len(group.Paths))+")"))
	for i, path := range group.Paths {
		if i == len(group.Paths)-1 {
			r.line(r.styled("Authoritative", authoritativeMark+" "+path))
		} else {
			r.line(r.styled("Path", "  "+path))
		}
	}
}

// RenderWarnings lists archives skipped during the scan.
func (r *Renderer) RenderWarnings(warnings []types.Warning) {
	if len(warnings) == 0 {
		return
	}

	r.line("")
	r.line(r.styled("Warning", fmt.Sprintf("%d archive(s) skipped:", len(warnings))))

	if r.format == FormatTerminal {
		items := make([]pterm.BulletListItem, 0, len(warnings))
		for _, w := range warnings {
			items = append(items, pterm.BulletListItem{Level: 0, Text: w.Message()})
		}
		_ = pterm.DefaultBulletList.WithItems(items).WithWriter(r.out).Render()
		return
	}
	for _, w := range warnings {
		r.line("  " + w.Message())
	}
}

// archiveInfoPayload is the JSON shape for archive info.
type archiveInfoPayload struct {
	Path     string `json:"path"`
	Version  string `json:"version"`
	Year     uint32 `json:"year"`
	Day      uint32 `json:"day"`
	ModuleID uint32 `json:"module_id"`
	Entries  int    `json:"entries"`
}

// RenderArchiveInfo writes an archive's header summary.
func (r *Renderer) RenderArchiveInfo(a *erf.File) error {
	if r.format == FormatJSON {
		return r.renderJSON(archiveInfoPayload{
			Path:     a.Path(),
			Version:  a.Version().String(),
			Year:     a.Year(),
			Day:      a.Day(),
			ModuleID: a.ModuleID(),
			Entries:  len(a.Toc()),
		})
	}

	r.line(r.styled("Header", a.Path()))
	r.line(fmt.Sprintf("  version:   %s", a.Version()))
	r.line(fmt.Sprintf("  created:   year %d, day %d", a.Year(), a.Day()))
	if a.Version() == erf.V22 {
		r.line(fmt.Sprintf("  module id: %d", a.ModuleID()))
	}
	r.line(fmt.Sprintf("  entries:   %d", len(a.Toc())))
	return nil
}

// archiveEntryPayload is the JSON shape for one TOC entry.
type archiveEntryPayload struct {
	Name         string `json:"name"`
	Offset       uint32 `json:"offset"`
	PackedLength uint32 `json:"packed_length"`
	Length       uint32 `json:"length"`
}

// RenderArchiveList writes an archive's table of contents. With long
// set, offsets and both length fields are included.
func (r *Renderer) RenderArchiveList(a *erf.File, long bool) error {
	toc := a.Toc()

	if r.format == FormatJSON {
		entries := make([]archiveEntryPayload, 0, len(toc))
		for _, e := range toc {
			entries = append(entries, archiveEntryPayload{
				Name:         e.Name,
				Offset:       e.Offset,
				PackedLength: e.PackedLength,
				Length:       e.Length,
			})
		}
		return r.renderJSON(entries)
	}

	for _, e := range toc {
		if long {
			r.line(fmt.Sprintf("%-44s %10d %10s %10s",
				e.Name, e.Offset,
				humanize.Bytes(uint64(e.PackedLength)),
				humanize.Bytes(uint64(e.Length))))
		} else {
			r.line(fmt.Sprintf("%-44s %10s", e.Name, humanize.Bytes(uint64(e.Length))))
		}
	}
	return nil
}

// RenderAddins writes the installed-addin registry as a table.
func (r *Renderer) RenderAddins(addins []types.Addin) error {
	if r.format == FormatJSON {
		return r.renderJSON(addins)
	}

	if len(addins) == 0 {
		r.line(r.styled("Muted", "No addins installed."))
		return nil
	}

	if r.format == FormatTerminal {
		data := pterm.TableData{{"UID", "Name", "Priority", "Enabled"}}
		for _, a := range addins {
			data = append(data, []string{a.UID, a.Name, strconv.Itoa(a.Priority), enabledMark(a.Enabled)})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(r.out).Render()
	}

	for _, a := range addins {
		r.line(fmt.Sprintf("%-32s %-36s %8d %s", a.UID, a.Name, a.Priority, enabledMark(a.Enabled)))
	}
	return nil
}

func enabledMark(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

// renderJSON writes v as indented JSON.
func (r *Renderer) renderJSON(v interface{}) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// styled applies a registry style for terminal output; plain text
// passes through unchanged.
func (r *Renderer) styled(name, s string) string {
	if r.format != FormatTerminal {
		return s
	}
	return GetStyle(name).Render(s)
}

// line writes one output line.
func (r *Renderer) line(s string) {
	fmt.Fprintln(r.out, s)
}
