package ui

// Package ui provides user interface components

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyDownload          = "download"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyTabDownload       = "tab_download"
	KeyTabHistory        = "tab_history"
	KeyTabTools          = "tab_tools"
	KeyEnterURL          = "enter_url"
	KeyFormat            = "format"
	KeyResolution        = "resolution"
	KeyBitrate           = "bitrate"
	KeyUseCustomDir      = "use_custom_dir"
	KeyCustomDirHint     = "custom_dir_hint"
	KeyStatus            = "status"
	KeyShowHistory       = "show_history"
	KeyHistoryTitle      = "history_title"
	KeyNoDownloads       = "no_downloads"
	KeyHistoryFailed     = "history_failed"
	KeyVerifyFFmpeg      = "verify_ffmpeg"
	KeyFFmpeg            = "ffmpeg"
	KeyPreviewPlaylist   = "preview_playlist"
	KeyPreviewLoading    = "preview_loading"
	KeyPreviewFailed     = "preview_failed"
	KeyPlaylistVideos    = "playlist_videos"
	KeyServerURL         = "server_url"
	KeyPollInterval      = "poll_interval"
	KeyRequestTimeout    = "request_timeout"
	KeyDefaultFormat     = "default_format"
	KeyStrictFields      = "strict_fields"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyDownloadInFlight  = "download_in_flight"
	KeyConnectionChanged = "connection_changed"
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

// initializeTexts initializes all text translations.
// Messages coming from the controller and the backend are not translated.
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YT Remote",
		KeyDownload:          "Download",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyTabDownload:       "Download",
		KeyTabHistory:        "History",
		KeyTabTools:          "Tools",
		KeyEnterURL:          "Enter YouTube URL (https://youtube.com/watch?v=...)",
		KeyFormat:            "Format",
		KeyResolution:        "Resolution",
		KeyBitrate:           "Bitrate",
		KeyUseCustomDir:      "Save to a custom directory",
		KeyCustomDirHint:     "Directory on the server",
		KeyStatus:            "Status",
		KeyShowHistory:       "Show history",
		KeyHistoryTitle:      "Title",
		KeyNoDownloads:       "No downloads yet",
		KeyHistoryFailed:     "Could not load history",
		KeyVerifyFFmpeg:      "Verify",
		KeyFFmpeg:            "ffmpeg",
		KeyPreviewPlaylist:   "Preview playlist",
		KeyPreviewLoading:    "Loading playlist...",
		KeyPreviewFailed:     "Could not load playlist",
		KeyPlaylistVideos:    "videos",
		KeyServerURL:         "Server URL",
		KeyPollInterval:      "Status interval (ms)",
		KeyRequestTimeout:    "Request timeout (s)",
		KeyDefaultFormat:     "Default format",
		KeyStrictFields:      "Send options only for matching formats",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyDownloadInFlight:  "A download is already in progress",
		KeyConnectionChanged: "Connection settings apply after restart",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YT Remote",
		KeyDownload:          "Скачать",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyTabDownload:       "Загрузка",
		KeyTabHistory:        "История",
		KeyTabTools:          "Инструменты",
		KeyEnterURL:          "Введите URL YouTube (https://youtube.com/watch?v=...)",
		KeyFormat:            "Формат",
		KeyResolution:        "Разрешение",
		KeyBitrate:           "Битрейт",
		KeyUseCustomDir:      "Сохранить в свою папку",
		KeyCustomDirHint:     "Папка на сервере",
		KeyStatus:            "Статус",
		KeyShowHistory:       "Показать историю",
		KeyHistoryTitle:      "Название",
		KeyNoDownloads:       "Загрузок пока нет",
		KeyHistoryFailed:     "Не удалось загрузить историю",
		KeyVerifyFFmpeg:      "Проверить",
		KeyFFmpeg:            "ffmpeg",
		KeyPreviewPlaylist:   "Просмотр плейлиста",
		KeyPreviewLoading:    "Загрузка плейлиста...",
		KeyPreviewFailed:     "Не удалось загрузить плейлист",
		KeyPlaylistVideos:    "видео",
		KeyServerURL:         "URL сервера",
		KeyPollInterval:      "Интервал статуса (мс)",
		KeyRequestTimeout:    "Таймаут запроса (с)",
		KeyDefaultFormat:     "Формат по умолчанию",
		KeyStrictFields:      "Отправлять параметры только для своего формата",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyDownloadInFlight:  "Загрузка уже выполняется",
		KeyConnectionChanged: "Настройки подключения применятся после перезапуска",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YT Remote",
		KeyDownload:          "Baixar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyTabDownload:       "Download",
		KeyTabHistory:        "Histórico",
		KeyTabTools:          "Ferramentas",
		KeyEnterURL:          "Digite URL do YouTube (https://youtube.com/watch?v=...)",
		KeyFormat:            "Formato",
		KeyResolution:        "Resolução",
		KeyBitrate:           "Taxa de bits",
		KeyUseCustomDir:      "Salvar em um diretório personalizado",
		KeyCustomDirHint:     "Diretório no servidor",
		KeyStatus:            "Status",
		KeyShowHistory:       "Mostrar histórico",
		KeyHistoryTitle:      "Título",
		KeyNoDownloads:       "Nenhum download ainda",
		KeyHistoryFailed:     "Não foi possível carregar o histórico",
		KeyVerifyFFmpeg:      "Verificar",
		KeyFFmpeg:            "ffmpeg",
		KeyPreviewPlaylist:   "Visualizar playlist",
		KeyPreviewLoading:    "Carregando playlist...",
		KeyPreviewFailed:     "Não foi possível carregar a playlist",
		KeyPlaylistVideos:    "vídeos",
		KeyServerURL:         "URL do servidor",
		KeyPollInterval:      "Intervalo de status (ms)",
		KeyRequestTimeout:    "Tempo limite da requisição (s)",
		KeyDefaultFormat:     "Formato padrão",
		KeyStrictFields:      "Enviar opções só para o formato correspondente",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyDownloadInFlight:  "Um download já está em andamento",
		KeyConnectionChanged: "As configurações de conexão valem após reiniciar",
	}
}
