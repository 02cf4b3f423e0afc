// Package driver wires the pipeline ends together: load a file, tokenize it,
// render it faithfully, verify round-trips, and save/load token-stream files.
//
// Назначение: оркестрация file → tokens → text для CLI и встраивающих тулов.
// Не делает: форматирования диагностик (internal/diagfmt) и самого рендера
// (internal/render).
package driver
