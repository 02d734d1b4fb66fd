package driver

import (
	"xdoc/internal/config"
	"xdoc/internal/lexer"
	"xdoc/internal/observ"
	"xdoc/internal/parser"
	"xdoc/internal/xmldoc"
)

// Options управляет загрузкой и разбором файлов.
type Options struct {
	MaxDiagnostics int
	// Extensions фильтрует файлы при обходе директории (".cs").
	Extensions   []string
	NameElements []string
	NoVerbatim   bool
	NormalizeNFC bool
	// Jobs ограничивает число параллельных файлов; <= 0 — GOMAXPROCS.
	Jobs int
	// Cache, если задан, хранит сводки по хешу содержимого.
	Cache *DiskCache
	// NeedDocs заставляет разбирать файл даже при попадании в кэш,
	// чтобы FileResult.Docs был заполнен; кэш при этом только пополняется.
	NeedDocs bool
	// Timer, если задан, получает фазы list/load/scan.
	Timer *observ.Timer
}

// OptionsFromConfig переносит настройки xdoc.toml в Options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		MaxDiagnostics: cfg.Diagnostics.Max,
		Extensions:     cfg.Scan.Extensions,
		NameElements:   cfg.Scan.NameElements,
		NormalizeNFC:   cfg.Scan.Normalize,
	}
}

func (o Options) xmldocOptions() xmldoc.Options {
	return xmldoc.Options{
		NameElements: o.NameElements,
		Parser:       parser.Options{Lexer: lexer.Options{NoVerbatim: o.NoVerbatim}},
	}
}
