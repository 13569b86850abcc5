package app

import (
	"fmt"
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"labelpress/labels"
)

const fyneAppID = "labelpress.desktop"

// Run loads the saved configuration and starts the desktop UI.
func Run() error {
	cfg, err := labels.LoadConfig("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	svc := NewService(cfg, logger)

	a := fyneapp.NewWithID(fyneAppID)
	u := buildUI(a, svc)
	u.w.ShowAndRun()

	if err := labels.SaveConfig("", svc.Config()); err != nil {
		logger.Printf("save config: %v", err)
	}
	return nil
}
