package ui

import (
	"fmt"

	"github.com/ytget/habit-tracker/internal/stats"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySubtitle          = "subtitle"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyLoadCSV           = "load_csv"
	KeySaveCSV           = "save_csv"
	KeyOpenCSV           = "open_csv"
	KeyReset             = "reset"
	KeyResetConfirm      = "reset_confirm"
	KeySpreadsheet       = "spreadsheet"
	KeyConnect           = "connect"
	KeyPull              = "pull"
	KeyPush              = "push"
	KeyAutoSave          = "auto_save"
	KeyDashboard         = "dashboard"
	KeyCurrentStreak     = "current_streak"
	KeyLongestFormat     = "longest_format"
	KeyCompletion        = "completion"
	KeyPostsFormat       = "posts_format"
	KeyPerfectDays       = "perfect_days"
	KeyAllPlatforms      = "all_platforms"
	KeyDailyAverage      = "daily_average"
	KeyPerDay            = "per_day"
	KeyOverallProgress   = "overall_progress"
	KeyHabitGrid         = "habit_grid"
	KeyCompactGrid       = "compact_grid"
	KeyDetailedChecklist = "detailed_checklist"
	KeyFilterDays        = "filter_days"
	KeyFilterAll         = "filter_all"
	KeyFilterIncomplete  = "filter_incomplete"
	KeyFilterPerfect     = "filter_perfect"
	KeyFilterThisWeek    = "filter_this_week"
	KeyDayFormat         = "day_format"
	KeyPlatformsFormat   = "platforms_format"
	KeyPerfectDayNote    = "perfect_day_note"
	KeyEmptyDayNote      = "empty_day_note"
	KeyInsights          = "insights"
	KeyMostConsistent    = "most_consistent"
	KeyNeedsAttention    = "needs_attention"
	KeyInsightFormat     = "insight_format"
	KeyTierFirstStep     = "tier_first_step"
	KeyTierMomentum      = "tier_momentum"
	KeyTierHalfway       = "tier_halfway"
	KeyTierCrushing      = "tier_crushing"
	KeyTierChampion      = "tier_champion"
	KeyConnected         = "connected"
	KeyDisconnected      = "disconnected"
	KeyLastSyncFormat    = "last_sync_format"
	KeyNeverSynced       = "never_synced"
	KeyChallengeDay      = "challenge_day"
	KeyChallengeFinished = "challenge_finished"
	KeyImported          = "imported"
	KeyExportedFormat    = "exported_format"
	KeyImportFailed      = "import_failed"
	KeyExportFailed      = "export_failed"
	KeyConnecting        = "connecting"
	KeyConnectOK         = "connect_ok"
	KeyConnectFailed     = "connect_failed"
	KeyPullOK            = "pull_ok"
	KeyPullFailed        = "pull_failed"
	KeyPushOK            = "push_ok"
	KeyPushFailed        = "push_failed"
	KeyAutoSaveFailed    = "auto_save_failed"
	KeyStartDate         = "start_date"
	KeySpreadsheetID     = "spreadsheet_id"
	KeySheetName         = "sheet_name"
	KeyCredentialsFile   = "credentials_file"
	KeyExportDirectory   = "export_directory"
	KeyRevealExport      = "reveal_export"
	KeyChallengeSettings = "challenge_settings"
	KeySyncSettings      = "sync_settings"
	KeyInterfaceSettings = "interface_settings"
	KeyInvalidDate       = "invalid_date"
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

// Textf formats the localized text for key with args
func (l *Localization) Textf(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// TierMessage returns the motivational footer for a tier
func (l *Localization) TierMessage(tier stats.Tier) string {
	switch tier {
	case stats.TierChampion:
		return l.GetText(KeyTierChampion)
	case stats.TierCrushing:
		return l.GetText(KeyTierCrushing)
	case stats.TierHalfway:
		return l.GetText(KeyTierHalfway)
	case stats.TierMomentum:
		return l.GetText(KeyTierMomentum)
	default:
		return l.GetText(KeyTierFirstStep)
	}
}

// FilterLabel returns the localized menu label of a checklist filter
func (l *Localization) FilterLabel(f stats.Filter) string {
	switch f {
	case stats.FilterIncomplete:
		return l.GetText(KeyFilterIncomplete)
	case stats.FilterPerfect:
		return l.GetText(KeyFilterPerfect)
	case stats.FilterThisWeek:
		return l.GetText(KeyFilterThisWeek)
	default:
		return l.GetText(KeyFilterAll)
	}
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
		KeyAppTitle:          "30-Day Social Media Challenge",
		KeySubtitle:          "Build your consistency habit across 10 platforms",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyLoadCSV:           "Load Progress (CSV)...",
		KeySaveCSV:           "Save Progress (CSV)",
		KeyOpenCSV:           "Open in Spreadsheet App",
		KeyReset:             "Reset Challenge",
		KeyResetConfirm:      "Clear every check-in and restart the challenge today?",
		KeySpreadsheet:       "Spreadsheet",
		KeyConnect:           "Connect...",
		KeyPull:              "Load from Spreadsheet",
		KeyPush:              "Save to Spreadsheet",
		KeyAutoSave:          "Auto-save",
		KeyDashboard:         "Your Progress Dashboard",
		KeyCurrentStreak:     "Current Streak",
		KeyLongestFormat:     "Longest: %d days",
		KeyCompletion:        "Completion",
		KeyPostsFormat:       "%d / %d posts",
		KeyPerfectDays:       "Perfect Days",
		KeyAllPlatforms:      "All 10 platforms",
		KeyDailyAverage:      "Daily Average",
		KeyPerDay:            "platforms per day",
		KeyOverallProgress:   "Overall Progress",
		KeyHabitGrid:         "30-Day Habit Grid",
		KeyCompactGrid:       "Compact Grid",
		KeyDetailedChecklist: "Detailed Checklist",
		KeyFilterDays:        "Filter days:",
		KeyFilterAll:         "All Days",
		KeyFilterIncomplete:  "Incomplete Only",
		KeyFilterPerfect:     "Perfect Days",
		KeyFilterThisWeek:    "This Week",
		KeyDayFormat:         "Day %d",
		KeyPlatformsFormat:   "%d/10 platforms",
		KeyPerfectDayNote:    "🎉 Perfect day! All platforms completed!",
		KeyEmptyDayNote:      "⚠️ No posts yet today. Start building your habit!",
		KeyInsights:          "Platform Insights",
		KeyMostConsistent:    "Most Consistent Platforms",
		KeyNeedsAttention:    "Need More Attention",
		KeyInsightFormat:     "%s: %d/30 days (%.0f%%)",
		KeyTierFirstStep:     "🚀 Every journey starts with a single step. You've got this!",
		KeyTierMomentum:      "📈 Nice start! Build that momentum!",
		KeyTierHalfway:       "💪 Great progress! You're halfway there!",
		KeyTierCrushing:      "🔥 You're crushing it! Keep up the amazing work!",
		KeyTierChampion:      "🎊 INCREDIBLE! You've completed the entire 30-day challenge! You're a social media champion! 🏆",
		KeyConnected:         "Connected",
		KeyDisconnected:      "Not connected",
		KeyLastSyncFormat:    "last sync %s",
		KeyNeverSynced:       "never synced",
		KeyChallengeDay:      "Day %d of 30",
		KeyChallengeFinished: "Challenge finished",
		KeyImported:          "Progress loaded",
		KeyExportedFormat:    "Progress saved to %s",
		KeyImportFailed:      "Could not load file",
		KeyExportFailed:      "Could not save file",
		KeyConnecting:        "Connecting to spreadsheet...",
		KeyConnectOK:         "Connected to spreadsheet",
		KeyConnectFailed:     "Could not connect to spreadsheet",
		KeyPullOK:            "Loaded from spreadsheet",
		KeyPullFailed:        "Could not load from spreadsheet",
		KeyPushOK:            "Saved to spreadsheet",
		KeyPushFailed:        "Could not save to spreadsheet",
		KeyAutoSaveFailed:    "Auto-save failed, spreadsheet is out of date",
		KeyStartDate:         "Challenge Start Date",
		KeySpreadsheetID:     "Spreadsheet ID",
		KeySheetName:         "Sheet Name",
		KeyCredentialsFile:   "Service Account Key",
		KeyExportDirectory:   "Export Directory",
		KeyRevealExport:      "Reveal file after saving",
		KeyChallengeSettings: "Challenge",
		KeySyncSettings:      "Spreadsheet Sync",
		KeyInterfaceSettings: "Interface",
		KeyInvalidDate:       "Use the YYYY-MM-DD format",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "30-дневный челлендж в соцсетях",
		KeySubtitle:          "Вырабатывайте привычку публиковаться на 10 платформах",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyLoadCSV:           "Загрузить прогресс (CSV)...",
		KeySaveCSV:           "Сохранить прогресс (CSV)",
		KeyOpenCSV:           "Открыть в редакторе таблиц",
		KeyReset:             "Начать заново",
		KeyResetConfirm:      "Удалить все отметки и начать челлендж сегодня?",
		KeySpreadsheet:       "Таблица",
		KeyConnect:           "Подключить...",
		KeyPull:              "Загрузить из таблицы",
		KeyPush:              "Сохранить в таблицу",
		KeyAutoSave:          "Автосохранение",
		KeyDashboard:         "Ваш прогресс",
		KeyCurrentStreak:     "Текущая серия",
		KeyLongestFormat:     "Лучшая: %d дн.",
		KeyCompletion:        "Выполнено",
		KeyPostsFormat:       "%d / %d публикаций",
		KeyPerfectDays:       "Идеальные дни",
		KeyAllPlatforms:      "Все 10 платформ",
		KeyDailyAverage:      "В среднем за день",
		KeyPerDay:            "платформ в день",
		KeyOverallProgress:   "Общий прогресс",
		KeyHabitGrid:         "Сетка на 30 дней",
		KeyCompactGrid:       "Компактная сетка",
		KeyDetailedChecklist: "Подробный список",
		KeyFilterDays:        "Показать дни:",
		KeyFilterAll:         "Все дни",
		KeyFilterIncomplete:  "Только незавершённые",
		KeyFilterPerfect:     "Идеальные дни",
		KeyFilterThisWeek:    "Эта неделя",
		KeyDayFormat:         "День %d",
		KeyPlatformsFormat:   "%d/10 платформ",
		KeyPerfectDayNote:    "🎉 Идеальный день! Все платформы выполнены!",
		KeyEmptyDayNote:      "⚠️ Сегодня ещё нет публикаций. Начните вырабатывать привычку!",
		KeyInsights:          "Статистика по платформам",
		KeyMostConsistent:    "Самые стабильные платформы",
		KeyNeedsAttention:    "Требуют внимания",
		KeyInsightFormat:     "%s: %d/30 дн. (%.0f%%)",
		KeyTierFirstStep:     "🚀 Любой путь начинается с первого шага. У вас получится!",
		KeyTierMomentum:      "📈 Хорошее начало! Набирайте темп!",
		KeyTierHalfway:       "💪 Отличный прогресс! Половина пути пройдена!",
		KeyTierCrushing:      "🔥 Вы великолепны! Так держать!",
		KeyTierChampion:      "🎊 НЕВЕРОЯТНО! Вы прошли весь 30-дневный челлендж! Вы чемпион соцсетей! 🏆",
		KeyConnected:         "Подключено",
		KeyDisconnected:      "Не подключено",
		KeyLastSyncFormat:    "синхронизация %s",
		KeyNeverSynced:       "ещё не синхронизировано",
		KeyChallengeDay:      "День %d из 30",
		KeyChallengeFinished: "Челлендж завершён",
		KeyImported:          "Прогресс загружен",
		KeyExportedFormat:    "Прогресс сохранён в %s",
		KeyImportFailed:      "Не удалось загрузить файл",
		KeyExportFailed:      "Не удалось сохранить файл",
		KeyConnecting:        "Подключение к таблице...",
		KeyConnectOK:         "Таблица подключена",
		KeyConnectFailed:     "Не удалось подключиться к таблице",
		KeyPullOK:            "Загружено из таблицы",
		KeyPullFailed:        "Не удалось загрузить из таблицы",
		KeyPushOK:            "Сохранено в таблицу",
		KeyPushFailed:        "Не удалось сохранить в таблицу",
		KeyAutoSaveFailed:    "Автосохранение не удалось, таблица устарела",
		KeyStartDate:         "Дата начала челленджа",
		KeySpreadsheetID:     "ID таблицы",
		KeySheetName:         "Имя листа",
		KeyCredentialsFile:   "Ключ сервисного аккаунта",
		KeyExportDirectory:   "Папка экспорта",
		KeyRevealExport:      "Показать файл после сохранения",
		KeyChallengeSettings: "Челлендж",
		KeySyncSettings:      "Синхронизация с таблицей",
		KeyInterfaceSettings: "Интерфейс",
		KeyInvalidDate:       "Используйте формат ГГГГ-ММ-ДД",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Desafio de 30 Dias nas Redes Sociais",
		KeySubtitle:          "Crie o hábito da consistência em 10 plataformas",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyLoadCSV:           "Carregar Progresso (CSV)...",
		KeySaveCSV:           "Salvar Progresso (CSV)",
		KeyOpenCSV:           "Abrir no Editor de Planilhas",
		KeyReset:             "Reiniciar Desafio",
		KeyResetConfirm:      "Apagar todas as marcações e reiniciar o desafio hoje?",
		KeySpreadsheet:       "Planilha",
		KeyConnect:           "Conectar...",
		KeyPull:              "Carregar da Planilha",
		KeyPush:              "Salvar na Planilha",
		KeyAutoSave:          "Salvamento automático",
		KeyDashboard:         "Seu Painel de Progresso",
		KeyCurrentStreak:     "Sequência Atual",
		KeyLongestFormat:     "Maior: %d dias",
		KeyCompletion:        "Conclusão",
		KeyPostsFormat:       "%d / %d posts",
		KeyPerfectDays:       "Dias Perfeitos",
		KeyAllPlatforms:      "Todas as 10 plataformas",
		KeyDailyAverage:      "Média Diária",
		KeyPerDay:            "plataformas por dia",
		KeyOverallProgress:   "Progresso Geral",
		KeyHabitGrid:         "Grade de Hábitos de 30 Dias",
		KeyCompactGrid:       "Grade Compacta",
		KeyDetailedChecklist: "Lista Detalhada",
		KeyFilterDays:        "Filtrar dias:",
		KeyFilterAll:         "Todos os Dias",
		KeyFilterIncomplete:  "Somente Incompletos",
		KeyFilterPerfect:     "Dias Perfeitos",
		KeyFilterThisWeek:    "Esta Semana",
		KeyDayFormat:         "Dia %d",
		KeyPlatformsFormat:   "%d/10 plataformas",
		KeyPerfectDayNote:    "🎉 Dia perfeito! Todas as plataformas concluídas!",
		KeyEmptyDayNote:      "⚠️ Nenhum post hoje ainda. Comece a construir seu hábito!",
		KeyInsights:          "Análise por Plataforma",
		KeyMostConsistent:    "Plataformas Mais Consistentes",
		KeyNeedsAttention:    "Precisam de Mais Atenção",
		KeyInsightFormat:     "%s: %d/30 dias (%.0f%%)",
		KeyTierFirstStep:     "🚀 Toda jornada começa com um único passo. Você consegue!",
		KeyTierMomentum:      "📈 Bom começo! Ganhe ritmo!",
		KeyTierHalfway:       "💪 Ótimo progresso! Você está na metade!",
		KeyTierCrushing:      "🔥 Você está arrasando! Continue assim!",
		KeyTierChampion:      "🎊 INCRÍVEL! Você completou todo o desafio de 30 dias! Você é um campeão das redes sociais! 🏆",
		KeyConnected:         "Conectado",
		KeyDisconnected:      "Não conectado",
		KeyLastSyncFormat:    "última sincronização %s",
		KeyNeverSynced:       "nunca sincronizado",
		KeyChallengeDay:      "Dia %d de 30",
		KeyChallengeFinished: "Desafio concluído",
		KeyImported:          "Progresso carregado",
		KeyExportedFormat:    "Progresso salvo em %s",
		KeyImportFailed:      "Não foi possível carregar o arquivo",
		KeyExportFailed:      "Não foi possível salvar o arquivo",
		KeyConnecting:        "Conectando à planilha...",
		KeyConnectOK:         "Planilha conectada",
		KeyConnectFailed:     "Não foi possível conectar à planilha",
		KeyPullOK:            "Carregado da planilha",
		KeyPullFailed:        "Não foi possível carregar da planilha",
		KeyPushOK:            "Salvo na planilha",
		KeyPushFailed:        "Não foi possível salvar na planilha",
		KeyAutoSaveFailed:    "Falha no salvamento automático, a planilha está desatualizada",
		KeyStartDate:         "Data de Início do Desafio",
		KeySpreadsheetID:     "ID da Planilha",
		KeySheetName:         "Nome da Aba",
		KeyCredentialsFile:   "Chave da Conta de Serviço",
		KeyExportDirectory:   "Diretório de Exportação",
		KeyRevealExport:      "Mostrar arquivo após salvar",
		KeyChallengeSettings: "Desafio",
		KeySyncSettings:      "Sincronização com Planilha",
		KeyInterfaceSettings: "Interface",
		KeyInvalidDate:       "Use o formato AAAA-MM-DD",
	}
}
