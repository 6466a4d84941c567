// Package hyperlink собирает markdown-ссылку из исходного и короткого URL.
package hyperlink

import (
	"net/url"
	"strings"
)

var labelEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)

// Label возвращает подпись ссылки: адрес назначения без схемы
func Label(original string) string {
	u, err := url.Parse(original)
	if err != nil || u.Host == "" {
		return labelEscaper.Replace(original)
	}
	label := u.Host + strings.TrimSuffix(u.EscapedPath(), "/")
	if u.RawQuery != "" {
		label += "?" + u.RawQuery
	}
	return labelEscaper.Replace(label)
}

// Format возвращает "[<label>](<shortURL>)", shortURL вставляется без изменений
func Format(original, shortURL string) string {
	return "[" + Label(original) + "](" + shortURL + ")"
}
