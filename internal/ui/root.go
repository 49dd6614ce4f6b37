package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gapline/internal/config"
	"github.com/ytget/gapline/internal/model"
	"github.com/ytget/gapline/internal/ranges"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	store        ranges.Keeper
	settings     *config.Settings
	threshold    *config.Threshold
	localization *Localization

	// Entry form
	startLabel     *widget.Label
	startEntry     *widget.Entry
	endLabel       *widget.Label
	endEntry       *widget.Entry
	addBtn         *widget.Button
	maxGapLabel    *widget.Label
	thresholdEntry *widget.Entry
	copyBtn        *widget.Button
	clearBtn       *widget.Button

	// Range table
	headerLabels []*widget.Label
	rangeList    *widget.List
	rows         []ranges.Row

	timeline     *Timeline
	summaryLabel *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, store ranges.Keeper) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		store:        store,
		settings:     settings,
		threshold:    settings.Threshold(),
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.startLabel = widget.NewLabel("")
	ui.startLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.startEntry = ui.newDateEntry()

	ui.endLabel = widget.NewLabel("")
	ui.endLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.endEntry = ui.newDateEntry()

	ui.addBtn = widget.NewButton("", ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance

	ui.maxGapLabel = widget.NewLabel("")
	ui.thresholdEntry = widget.NewEntry()
	ui.thresholdEntry.SetText(strconv.Itoa(ui.threshold.Get()))
	ui.thresholdEntry.OnChanged = ui.onThresholdChanged

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.copyBtn = widget.NewButton("", ui.onCopyReport)
	ui.clearBtn = widget.NewButton("", ui.onClear)
	ui.clearBtn.Importance = widget.DangerImportance

	form := container.NewGridWithColumns(4,
		container.NewBorder(nil, nil, ui.startLabel, nil, ui.startEntry),
		container.NewBorder(nil, nil, ui.endLabel, nil, ui.endEntry),
		container.NewBorder(nil, nil, ui.maxGapLabel, nil, ui.thresholdEntry),
		ui.addBtn,
	)

	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}
	topPanel := container.NewBorder(nil, nil, left, container.NewHBox(ui.copyBtn, ui.clearBtn), form)

	// Notification panel under the form (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.summaryLabel = widget.NewLabel("")

	// Table header + rows
	header := container.NewGridWithColumns(RangeRowColumns)
	ui.headerLabels = nil
	for i := 0; i < RangeRowColumns-1; i++ {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		ui.headerLabels = append(ui.headerLabels, label)
		header.Add(label)
	}
	header.Add(widget.NewLabel(""))

	ui.rangeList = widget.NewList(
		func() int {
			return len(ui.rows)
		},
		func() fyne.CanvasObject {
			row := NewRangeRow(ui.localization)
			row.SetOnRemove(ui.onRemoveRange)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(ui.rows) {
				return
			}
			obj.(*RangeRow).Update(ui.rows[id])
		},
	)
	table := container.NewBorder(header, nil, nil, nil, ui.rangeList)

	ui.timeline = NewTimeline(ui.localization)

	split := container.NewHSplit(ui.timeline.Container(), table)
	split.Offset = TimelineSplitOffset

	top := container.NewVBox(topPanel, ui.notificationContainer, ui.summaryLabel)
	content := container.NewBorder(top, nil, nil, nil, split)
	ui.window.SetContent(content)

	ui.refreshUITexts()
	log.Printf("UI setup completed successfully")
}

func (ui *RootUI) newDateEntry() *widget.Entry {
	entry := widget.NewEntry()
	entry.Validator = ui.validateDate
	entry.OnSubmitted = func(string) {
		ui.onAddClick()
	}
	return entry
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.startLabel.SetText(l.GetText(KeyStartDate) + ":")
	ui.endLabel.SetText(l.GetText(KeyEndDate) + ":")
	ui.startEntry.SetPlaceHolder(l.GetText(KeyDatePlaceholder))
	ui.endEntry.SetPlaceHolder(l.GetText(KeyDatePlaceholder))
	ui.addBtn.SetText(l.GetText(KeyAddDates))
	ui.maxGapLabel.SetText(l.GetText(KeyMaxGap) + ":")
	ui.copyBtn.SetText(IconCopy + " " + l.GetText(KeyCopyReport))
	ui.clearBtn.SetText(l.GetText(KeyClear))

	for i, key := range []string{KeyStartDate, KeyEndDate, KeyDuration, KeyGap} {
		ui.headerLabels[i].SetText(l.GetText(key))
	}

	ui.refreshRanges()
}

// validateDate accepts empty text (nothing typed yet) or any supported layout
func (ui *RootUI) validateDate(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	_, err := model.ParseDate(input)
	return err
}

// onAddClick handles the "Add Dates" button
func (ui *RootUI) onAddClick() {
	startText := strings.TrimSpace(ui.startEntry.Text)
	endText := strings.TrimSpace(ui.endEntry.Text)
	if startText == "" || endText == "" {
		ui.showNotification(ui.localization.GetText(KeyMissingDates))
		return
	}

	start, err := model.ParseDate(startText)
	if err != nil {
		ui.showNotification(fmt.Sprintf("%s: %s", ui.localization.GetText(KeyInvalidDate), startText))
		return
	}
	end, err := model.ParseDate(endText)
	if err != nil {
		ui.showNotification(fmt.Sprintf("%s: %s", ui.localization.GetText(KeyInvalidDate), endText))
		return
	}

	r, ok := ui.store.Append(start, end)
	if !ok {
		return
	}
	log.Printf("Range added: %s", r)

	ui.startEntry.SetText("")
	ui.endEntry.SetText("")
	ui.hideNotification()
	ui.refreshRanges()
}

// onRemoveRange handles the delete button of a table row
func (ui *RootUI) onRemoveRange(index int) {
	if index < 0 || index >= ui.store.Len() {
		log.Printf("Ignoring remove for stale row index %d", index)
		return
	}
	ui.store.RemoveAt(index)
	ui.refreshRanges()
}

// onClear removes every range
func (ui *RootUI) onClear() {
	ui.store.Clear()
	ui.refreshRanges()
}

// onCopyReport places the table as tab-separated text on the clipboard
func (ui *RootUI) onCopyReport() {
	fyne.CurrentApp().Clipboard().SetContent(FormatReport(ui.rows, ui.localization))
	ui.showNotification(ui.localization.GetText(KeyReportCopied))
}

// onThresholdChanged applies every edit of the threshold field immediately
func (ui *RootUI) onThresholdChanged(text string) {
	ui.threshold.Set(text)
	ui.refreshRanges()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved re-reads values the dialog may have changed
func (ui *RootUI) onSettingsSaved() {
	ui.syncThresholdEntry()
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// syncThresholdEntry shows the current threshold without re-saving it
func (ui *RootUI) syncThresholdEntry() {
	text := strconv.Itoa(ui.threshold.Get())
	if ui.thresholdEntry.Text == text {
		return
	}
	onChanged := ui.thresholdEntry.OnChanged
	ui.thresholdEntry.OnChanged = nil
	ui.thresholdEntry.SetText(text)
	ui.thresholdEntry.OnChanged = onChanged
}

// refreshRanges recomputes rows and redraws table, timeline and summary
func (ui *RootUI) refreshRanges() {
	ui.rows = ui.store.Rows(ui.threshold)
	ui.rangeList.Refresh()
	ui.timeline.SetRows(ui.rows)

	sum := ui.store.Summary(ui.threshold)
	ui.summaryLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeySummaryFormat),
		sum.Count, sum.TotalDuration, sum.ExceededGaps))
	if sum.ExceededGaps > 0 {
		ui.summaryLabel.Importance = widget.DangerImportance
	} else {
		ui.summaryLabel.Importance = widget.MediumImportance
	}
	ui.summaryLabel.Refresh()

	if sum.Count == 0 {
		ui.copyBtn.Disable()
		ui.clearBtn.Disable()
	} else {
		ui.copyBtn.Enable()
		ui.clearBtn.Enable()
	}
}

// showNotification displays a message in the panel under the form
func (ui *RootUI) showNotification(message string) {
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationLabel.SetText("")
	ui.notificationContainer.Hide()
}
