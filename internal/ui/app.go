package ui

import (
	"context"
	"log"

	"LocalSketch/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

// RunApp opens the drawing window and blocks until it is closed. When
// configPath is not empty, brush changes written to that file are applied
// while the app runs.
func RunApp(cfg config.Config, configPath string) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Local Sketch")
	myWindow.Resize(fyne.NewSize(1024, 768))

	board := NewBoardWidget(cfg)
	toolbar := NewToolbar(board, cfg, myWindow)

	content := container.NewBorder(toolbar.Content(), board.Status(), nil, nil, container.NewScroll(board))
	myWindow.SetContent(content)
	addShortcuts(myWindow.Canvas(), board)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if configPath != "" {
		err := config.Watch(ctx, configPath, func(c config.Config) {
			fyne.Do(func() {
				toolbar.ApplyBrush(c.Brush)
			})
		})
		if err != nil {
			log.Printf("[CONFIG] Not watching %s: %v", configPath, err)
		}
	}

	myWindow.ShowAndRun()
}

func addShortcuts(c fyne.Canvas, board *BoardWidget) {
	undo := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	redo := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}
	redoAlt := &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}

	c.AddShortcut(undo, func(fyne.Shortcut) { board.Undo() })
	c.AddShortcut(redo, func(fyne.Shortcut) { board.Redo() })
	c.AddShortcut(redoAlt, func(fyne.Shortcut) { board.Redo() })
}
