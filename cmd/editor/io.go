package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.design/x/clipboard"

	"github.com/tcarls/brickbreaker/level"
)

// exportLevel writes the current document as pretty JSON under the levels
// directory, named from the sanitized level name, and mirrors it to the
// system clipboard when available.
func (a *App) exportLevel() error {
	doc := a.engine.Document().Clone()
	doc.Clean()

	data, err := level.Encode(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.cfg.LevelsDir, 0755); err != nil {
		return fmt.Errorf("editor: export: %w", err)
	}
	path := filepath.Join(a.cfg.LevelsDir, level.SanitizeName(doc.Name)+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("editor: export %s: %w", path, err)
	}

	if a.clipboardOK {
		clipboard.Write(clipboard.FmtText, data)
	}

	a.status = "exported " + path
	return nil
}

// importLevel replaces the document wholesale with the parsed file. On any
// parse error the current document is left untouched and a single failure
// is reported.
func (a *App) importLevel(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		a.status = "invalid level file"
		return fmt.Errorf("editor: import %s: %w", path, err)
	}
	doc, err := level.Decode(data)
	if err != nil {
		a.status = "invalid level file"
		return fmt.Errorf("editor: import %s: %w", path, err)
	}
	doc.Clean()

	a.history.Commit(doc)
	a.engine.SetDocument(a.history.Present())
	a.st.Save(a.history.Present())
	a.clearSelection()
	a.status = "imported " + path
	return nil
}
