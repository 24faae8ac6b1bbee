package ui

import "testing"

func TestLocalization(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}

	tests := []struct {
		lang     string
		key      string
		expected string
	}{
		{"en", KeyNoDownloads, "No downloads yet"},
		{"ru", KeyDownload, "Скачать"},
		{"pt", KeyDownload, "Baixar"},
		{"system", KeyDownload, "Download"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			l.SetLanguage(tt.lang)
			if got := l.GetText(tt.key); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected unknown language to be ignored, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key itself for unknown key, got %q", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("Missing texts for %s", lang)
			continue
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
