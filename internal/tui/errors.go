// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-library-sync/internal/adapter"
)

func humanizeHostError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrHostUnreachable):
		return "Отсутствует сеть или сервер библиотеки недоступен"
	case errors.Is(err, adapter.ErrNotFound):
		return "Файл не найден на сервере библиотеки"
	case errors.Is(err, adapter.ErrInvalidManifest):
		return "Сервер вернул некорректный список книг"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или сервер библиотеки недоступен"
	}

	return err.Error()
}
