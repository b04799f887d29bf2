package views

import (
	"fingerprint-matcher/internal/models"
	"fingerprint-matcher/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// ImageExtensions lists the file types offered by the open dialogs.
var ImageExtensions = []string{".png", ".jpg", ".jpeg"}

// MainView is the fingerprint matcher window.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	selectionLabels [2]*widget.Label
	browseButtons   [2]*widget.Button
	compareButton   *widget.Button
	resultLabel     *widget.Label
	statusBar       *components.StatusBar

	// Event handlers - connected to controller
	selectHandler  func(slot int, path string)
	compareHandler func()
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.selectionLabels[0] = widget.NewLabel("Select the first fingerprint image:")
	mv.selectionLabels[1] = widget.NewLabel("Select the second fingerprint image:")
	for i := range mv.selectionLabels {
		mv.selectionLabels[i].TextStyle = fyne.TextStyle{Bold: true}
	}

	mv.browseButtons[0] = widget.NewButton("Browse Image 1", func() { mv.browse(1) })
	mv.browseButtons[1] = widget.NewButton("Browse Image 2", func() { mv.browse(2) })

	mv.compareButton = widget.NewButton("Compare", mv.onCompare)
	mv.compareButton.Importance = widget.HighImportance

	mv.resultLabel = widget.NewLabel("")
	mv.resultLabel.TextStyle = fyne.TextStyle{Bold: true}
	mv.resultLabel.Alignment = fyne.TextAlignCenter

	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	content := container.NewVBox(
		mv.selectionLabels[0],
		mv.browseButtons[0],
		mv.selectionLabels[1],
		mv.browseButtons[1],
		widget.NewSeparator(),
		mv.compareButton,
		mv.resultLabel,
	)

	mv.mainContainer = container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		container.NewPadded(content),
	)

	mv.window.SetContent(mv.mainContainer)
}

// browse opens a file dialog for slot and forwards the chosen path. A
// cancelled dialog forwards an empty path.
func (mv *MainView) browse(slot int) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mv.window)
			return
		}

		path := ""
		if reader != nil {
			path = reader.URI().Path()
			reader.Close()
		}
		if mv.selectHandler != nil {
			mv.selectHandler(slot, path)
		}
	}, mv.window)
	fd.SetFilter(storage.NewExtensionFileFilter(ImageExtensions))
	fd.Show()
}

func (mv *MainView) onCompare() {
	if mv.compareHandler != nil {
		mv.compareHandler()
	}
}

// SetSelectHandler sets the handler for image selections
func (mv *MainView) SetSelectHandler(handler func(slot int, path string)) {
	mv.selectHandler = handler
}

// SetCompareHandler sets the handler for compare requests
func (mv *MainView) SetCompareHandler(handler func()) {
	mv.compareHandler = handler
}

// SetSelectionLabel shows the selection state of slot 1 or 2.
func (mv *MainView) SetSelectionLabel(slot int, text string, selected bool) {
	if slot < 1 || slot > len(mv.selectionLabels) {
		return
	}
	label := mv.selectionLabels[slot-1]
	if selected {
		label.Importance = widget.SuccessImportance
	} else {
		label.Importance = widget.DangerImportance
	}
	label.SetText(text)
}

// SetComparing disables the buttons while a comparison runs.
func (mv *MainView) SetComparing(active bool) {
	buttons := []*widget.Button{mv.compareButton, mv.browseButtons[0], mv.browseButtons[1]}
	for _, button := range buttons {
		if active {
			button.Disable()
		} else {
			button.Enable()
		}
	}

	if active {
		mv.statusBar.SetStatus("Comparing...")
	} else {
		mv.statusBar.SetStatus("Ready")
	}
}

// ShowResult renders the match decision.
func (mv *MainView) ShowResult(result models.Result) {
	if result.Match {
		mv.resultLabel.Importance = widget.SuccessImportance
	} else {
		mv.resultLabel.Importance = widget.DangerImportance
	}
	mv.resultLabel.SetText(result.Message())
	mv.statusBar.SetScore(result.Score, result.Threshold)
}

// ShowWarning displays an information dialog
func (mv *MainView) ShowWarning(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowError displays an error dialog and clears the previous decision.
func (mv *MainView) ShowError(err error) {
	mv.resultLabel.SetText("")
	mv.statusBar.Reset()
	dialog.ShowError(err, mv.window)
}

// ResultText returns the current decision message
func (mv *MainView) ResultText() string {
	return mv.resultLabel.Text
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}
