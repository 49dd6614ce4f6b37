package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyStartDate       = "start_date"
	KeyEndDate         = "end_date"
	KeyAddDates        = "add_dates"
	KeyDuration        = "duration"
	KeyGap             = "gap"
	KeyDaysFormat      = "days_format"
	KeyMaxGap          = "max_gap"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeyFile            = "file"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyClear           = "clear"
	KeyCopyReport      = "copy_report"
	KeyReportCopied    = "report_copied"
	KeyNoRanges        = "no_ranges"
	KeyInvalidDate     = "invalid_date"
	KeyMissingDates    = "missing_dates"
	KeySettingsSaved   = "settings_saved"
	KeySummaryFormat   = "summary_format"
	KeyDatePlaceholder = "date_placeholder"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Days renders a day count with the localized unit
func (l *Localization) Days(n int) string {
	return fmt.Sprintf(l.GetText(KeyDaysFormat), n)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Gapline",
		KeyStartDate:       "Start Date",
		KeyEndDate:         "End Date",
		KeyAddDates:        "Add Dates",
		KeyDuration:        "Duration",
		KeyGap:             "Gap",
		KeyDaysFormat:      "%d days",
		KeyMaxGap:          "Max gap (days)",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeyFile:            "File",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyClear:           "Clear",
		KeyCopyReport:      "Copy report",
		KeyReportCopied:    "Report copied to clipboard",
		KeyNoRanges:        "No dates yet",
		KeyInvalidDate:     "Invalid date",
		KeyMissingDates:    "Please enter both dates",
		KeySettingsSaved:   "Settings saved successfully!",
		KeySummaryFormat:   "%d ranges · %d days covered · %d gaps over limit",
		KeyDatePlaceholder: "MM-DD-YYYY",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Gapline",
		KeyStartDate:       "Дата начала",
		KeyEndDate:         "Дата окончания",
		KeyAddDates:        "Добавить даты",
		KeyDuration:        "Длительность",
		KeyGap:             "Перерыв",
		KeyDaysFormat:      "%d дн.",
		KeyMaxGap:          "Макс. перерыв (дни)",
		KeySettings:        "Настройки",
		KeyLanguage:        "Язык",
		KeyFile:            "Файл",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyClear:           "Очистить",
		KeyCopyReport:      "Копировать отчёт",
		KeyReportCopied:    "Отчёт скопирован в буфер обмена",
		KeyNoRanges:        "Дат пока нет",
		KeyInvalidDate:     "Неверная дата",
		KeyMissingDates:    "Пожалуйста, введите обе даты",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeySummaryFormat:   "Интервалов: %d · дней: %d · перерывов сверх нормы: %d",
		KeyDatePlaceholder: "ММ-ДД-ГГГГ",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Gapline",
		KeyStartDate:       "Data de início",
		KeyEndDate:         "Data de fim",
		KeyAddDates:        "Adicionar datas",
		KeyDuration:        "Duração",
		KeyGap:             "Intervalo",
		KeyDaysFormat:      "%d dias",
		KeyMaxGap:          "Intervalo máx. (dias)",
		KeySettings:        "Configurações",
		KeyLanguage:        "Idioma",
		KeyFile:            "Arquivo",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyClear:           "Limpar",
		KeyCopyReport:      "Copiar relatório",
		KeyReportCopied:    "Relatório copiado",
		KeyNoRanges:        "Nenhuma data ainda",
		KeyInvalidDate:     "Data inválida",
		KeyMissingDates:    "Por favor, informe as duas datas",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeySummaryFormat:   "%d períodos · %d dias · %d intervalos acima do limite",
		KeyDatePlaceholder: "MM-DD-AAAA",
	}
}
