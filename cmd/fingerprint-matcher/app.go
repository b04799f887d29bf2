package main

import (
	"context"
	"runtime"

	"fingerprint-matcher/internal/controllers"
	"fingerprint-matcher/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName = "Fingerprint Matcher"
	AppID   = "com.fingerprint.matcher"
)

// Application is the desktop front end around the comparator.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	deps    *dependencies

	controller *controllers.MainController
	view       *views.MainView
}

// NewApplication creates the window and wires the view to the controller.
func NewApplication(ctx context.Context, deps *dependencies) *Application {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: getVersion(),
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(380, 320))
	window.CenterOnScreen()

	mainView := views.NewMainView(window)
	mainController := controllers.NewMainController(ctx, deps.comparator, deps.log)
	mainController.SetMainView(mainView)

	mainView.SetSelectHandler(func(slot int, path string) {
		if err := mainController.SelectImage(slot, path); err != nil {
			deps.log.Error("Application", err, map[string]interface{}{"slot": slot})
		}
	})
	mainView.SetCompareHandler(mainController.OnCompare)

	deps.log.Info("Application", "application initialized", map[string]interface{}{
		"version":   getVersion(),
		"backend":   deps.cfg.Backend,
		"threshold": deps.comparator.Threshold(),
		"go":        runtime.Version(),
	})

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		deps:       deps,
		controller: mainController,
		view:       mainView,
	}
}

// Run shows the window and blocks until it is closed or ctx is cancelled.
func (a *Application) Run(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			a.deps.log.Info("Application", "shutdown requested", nil)
			fyne.Do(a.fyneApp.Quit)
		case <-done:
		}
	}()

	a.view.Show()
	a.fyneApp.Run()
	close(done)

	a.deps.log.Info("Application", "application terminated", nil)
}

func runGUI(ctx context.Context, deps *dependencies) error {
	NewApplication(ctx, deps).Run(ctx)
	return nil
}
