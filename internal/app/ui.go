package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"labelpress/labels"
)

const logDebounceInterval = 150 * time.Millisecond

type tableColumn struct {
	Title  string
	Width  float32
	Render func(labels.LabelRecord) string
}

type uiState struct {
	service *Service
	cfg     labels.Config

	w            fyne.Window
	files        []SourceFile
	fileList     *widget.List
	status       *widget.Label
	stats        *widget.Label
	previewNote  *widget.Label
	progress     *widget.ProgressBarInfinite
	log          *widget.Entry
	templateSel  *widget.RadioGroup
	templateDesc *widget.Label
	recTbl       *widget.Table
	columns      []tableColumn
	records      []labels.LabelRecord

	statusBind  binding.String
	logBind     binding.String
	logLines    []string
	logMu       sync.Mutex
	logUpdateCh chan struct{}

	addBtn     *widget.Button
	processBtn *widget.Button
	exportBtn  *widget.Button
	resetBtn   *widget.Button
}

func buildUI(a fyne.App, svc *Service) *uiState {
	u := &uiState{service: svc}
	u.cfg = svc.Config()
	u.w = a.NewWindow("Labelpress - Mailing Labels")

	u.statusBind = binding.NewString()
	_ = u.statusBind.Set("Ready")
	u.logBind = binding.NewString()
	u.startLogUpdater()

	u.log = widget.NewEntryWithData(u.logBind)
	u.log.MultiLine = true
	u.log.Wrapping = fyne.TextWrapWord
	u.log.SetPlaceHolder("Processing log")
	u.log.Disable()

	u.status = widget.NewLabelWithData(u.statusBind)
	u.stats = widget.NewLabel("")
	u.previewNote = widget.NewLabel("")
	u.progress = widget.NewProgressBarInfinite()
	u.progress.Hide()

	u.fileList = widget.NewList(
		func() int { return len(u.files) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(u.files) {
				obj.(*widget.Label).SetText(u.files[id].Name)
			}
		},
	)

	u.addBtn = widget.NewButtonWithIcon("Add File", theme.FolderOpenIcon(), func() { u.onAddFile() })
	u.processBtn = widget.NewButtonWithIcon("Clean & Generate", theme.ConfirmIcon(), func() { u.onProcess() })
	u.exportBtn = widget.NewButtonWithIcon("Export PDF", theme.DocumentSaveIcon(), func() { u.onExport() })
	u.resetBtn = widget.NewButtonWithIcon("Start Over", theme.ViewRefreshIcon(), func() { u.onReset() })

	u.templateDesc = widget.NewLabel("")
	u.templateDesc.Wrapping = fyne.TextWrapWord
	u.templateSel = widget.NewRadioGroup(templateChoices(), func(choice string) {
		id := templateIDForChoice(choice)
		if id == "" {
			return
		}
		cfg := u.service.Config()
		cfg.TemplateID = id
		u.cfg = u.service.UpdateConfig(cfg)
		if t, ok := labels.TemplateByID(id); ok {
			u.templateDesc.SetText(t.Description)
		}
		u.refreshPreview()
		u.appendLog(fmt.Sprintf("template set to %s", id))
	})

	u.columns = recordColumns()
	u.recTbl = widget.NewTable(
		func() (int, int) { return u.previewCount() + 1, len(u.columns) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			lbl := obj.(*widget.Label)
			if id.Row == 0 {
				lbl.SetText(u.columns[id.Col].Title)
				lbl.Alignment = fyne.TextAlignCenter
				lbl.TextStyle = fyne.TextStyle{Bold: true}
				return
			}
			lbl.TextStyle = fyne.TextStyle{}
			lbl.Alignment = fyne.TextAlignLeading
			rowIdx := id.Row - 1
			if rowIdx >= u.previewCount() {
				lbl.SetText("")
				return
			}
			lbl.SetText(u.columns[id.Col].Render(u.records[rowIdx]))
		},
	)
	for i, col := range u.columns {
		u.recTbl.SetColumnWidth(i, col.Width)
	}
	u.templateSel.SetSelected(choiceForTemplateID(u.cfg.TemplateID))

	controlRow1 := container.NewGridWithColumns(2, u.addBtn, u.processBtn)
	controlRow2 := container.NewGridWithColumns(2, u.exportBtn, u.resetBtn)
	left := container.NewVBox(
		widget.NewLabelWithStyle("Input Files", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWrap(fyne.NewSize(360, 120), u.fileList),
		controlRow1,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Label Format", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		u.templateSel,
		u.templateDesc,
		controlRow2,
		widget.NewSeparator(),
		u.stats,
		u.status,
		u.progress,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Log", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWrap(fyne.NewSize(360, 160), u.log),
	)

	right := container.NewBorder(u.previewNote, nil, nil, nil, u.recTbl)
	split := container.NewHSplit(left, right)
	split.Offset = 0.32

	u.w.SetContent(split)
	u.w.Resize(fyne.NewSize(1180, 760))
	return u
}

func recordColumns() []tableColumn {
	return []tableColumn{
		{Title: "Name", Width: 200, Render: func(r labels.LabelRecord) string { return r.Name }},
		{Title: "Address", Width: 260, Render: func(r labels.LabelRecord) string { return r.Address1 }},
		{Title: "City", Width: 160, Render: func(r labels.LabelRecord) string { return r.City }},
		{Title: "State", Width: 70, Render: func(r labels.LabelRecord) string { return r.State }},
		{Title: "Zip", Width: 110, Render: func(r labels.LabelRecord) string { return r.Zip }},
	}
}

func templateChoices() []string {
	ts := labels.Templates()
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = fmt.Sprintf("%s (%dx%d)", t.Name, t.Rows, t.Cols)
	}
	return out
}

func choiceForTemplateID(id string) string {
	for i, t := range labels.Templates() {
		if t.ID == id {
			return templateChoices()[i]
		}
	}
	return ""
}

func templateIDForChoice(choice string) string {
	for i, c := range templateChoices() {
		if c == choice {
			return labels.Templates()[i].ID
		}
	}
	return ""
}

// previewCount caps the table at one printed page of the selected template;
// the stats panel still reports the full count.
func (u *uiState) previewCount() int {
	n := len(u.records)
	if t, ok := labels.TemplateByID(u.cfg.TemplateID); ok && n > t.LabelsPerPage() {
		n = t.LabelsPerPage()
	}
	return n
}

func (u *uiState) refreshPreview() {
	if u.recTbl == nil {
		return
	}
	u.recTbl.Refresh()
	shown := u.previewCount()
	if shown < len(u.records) {
		u.previewNote.SetText(fmt.Sprintf("Previewing the first page (%d of %d labels)", shown, len(u.records)))
	} else {
		u.previewNote.SetText("")
	}
}

func (u *uiState) setBusy(b bool) {
	fyne.Do(func() {
		if b {
			u.progress.Show()
			u.addBtn.Disable()
			u.processBtn.Disable()
			u.exportBtn.Disable()
			u.resetBtn.Disable()
		} else {
			u.progress.Hide()
			u.addBtn.Enable()
			u.processBtn.Enable()
			u.exportBtn.Enable()
			u.resetBtn.Enable()
		}
	})
}

func (u *uiState) appendLog(msg string) {
	now := time.Now().Format("15:04:05")
	line := fmt.Sprintf("[%s] %s", now, msg)

	u.logMu.Lock()
	u.logLines = append(u.logLines, line)
	if len(u.logLines) > 200 {
		u.logLines = u.logLines[len(u.logLines)-200:]
	}
	u.logMu.Unlock()

	if u.logUpdateCh == nil {
		u.flushLog()
		return
	}
	select {
	case u.logUpdateCh <- struct{}{}:
	default:
	}
}

func (u *uiState) startLogUpdater() {
	if u.logUpdateCh != nil {
		return
	}
	u.logUpdateCh = make(chan struct{}, 1)
	go u.logUpdateLoop()
}

func (u *uiState) logUpdateLoop() {
	timer := time.NewTimer(logDebounceInterval)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-u.logUpdateCh:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(logDebounceInterval)
		case <-timer.C:
			u.flushLog()
		}
	}
}

func (u *uiState) flushLog() {
	u.logMu.Lock()
	text := strings.Join(u.logLines, "\n")
	u.logMu.Unlock()
	_ = u.logBind.Set(text)
}

func (u *uiState) setStatus(text string) {
	_ = u.statusBind.Set(text)
}

func (u *uiState) updateStats(stats labels.CleanStats) {
	fyne.Do(func() {
		if stats.Input == 0 {
			u.stats.SetText("")
			return
		}
		u.stats.SetText(fmt.Sprintf("%d labels ready\nduplicates removed: %d\nrows rejected: %d",
			stats.Kept, stats.Duplicates, stats.Rejected))
	})
}

func (u *uiState) onAddFile() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			dialog.ShowError(err, u.w)
			return
		}
		name := filepath.Base(rc.URI().Path())
		u.files = append(u.files, SourceFile{Name: name, Data: data})
		u.fileList.Refresh()
		u.appendLog(fmt.Sprintf("loaded %s (%d bytes)", name, len(data)))
	}, u.w)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".tsv", ".xlsx"}))
	fd.Show()
}

func (u *uiState) onProcess() {
	if len(u.files) == 0 {
		dialog.ShowInformation("Info", "Add at least one CSV, TSV or XLSX file first", u.w)
		return
	}
	u.setBusy(true)
	u.setStatus("Processing...")
	files := append([]SourceFile(nil), u.files...)
	start := time.Now()

	go func() {
		stats, err := u.service.Process(files)
		u.setBusy(false)
		if err != nil {
			fyne.Do(func() {
				dialog.ShowError(err, u.w)
			})
			u.setStatus("Error")
			u.appendLog(fmt.Sprintf("error: %v", err))
			return
		}
		fyne.Do(func() {
			u.records = u.service.Records()
			u.refreshPreview()
		})
		u.updateStats(stats)
		u.setStatus(fmt.Sprintf("Done: %d labels (%.1fs)", stats.Kept, time.Since(start).Seconds()))
		u.appendLog(fmt.Sprintf("cleaned %d rows into %d labels", stats.Input, stats.Kept))
	}()
}

func (u *uiState) onExport() {
	if len(u.records) == 0 {
		dialog.ShowInformation("Info", "No labels to export; process a file first", u.w)
		return
	}
	t, ok := labels.TemplateByID(u.cfg.TemplateID)
	if !ok {
		dialog.ShowError(fmt.Errorf("unknown template %q", u.cfg.TemplateID), u.w)
		return
	}
	fd := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil || uc == nil {
			return
		}
		defer uc.Close()
		pages, err := u.service.Export(t.ID, uc)
		if err != nil {
			dialog.ShowError(err, u.w)
			u.appendLog(fmt.Sprintf("export failed: %v", err))
			return
		}
		u.appendLog(fmt.Sprintf("exported %d labels on %d pages", len(u.records), pages))
		u.setStatus(fmt.Sprintf("Exported %d pages", pages))
	}, u.w)
	fd.SetFileName(labels.ExportFilename(t, time.Now()))
	fd.Show()
}

func (u *uiState) onReset() {
	u.service.Reset()
	u.files = nil
	u.records = nil
	u.fileList.Refresh()
	u.refreshPreview()
	u.updateStats(labels.CleanStats{})
	u.setStatus("Ready")
	u.appendLog("cleared input files and records")
}
