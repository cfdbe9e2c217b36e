// Package sl — помощники для структурированных полей slog.
package sl

import "log/slog"

// Err возвращает атрибут с ключом "error" и текстом ошибки.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
