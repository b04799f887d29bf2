package controllers

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"fingerprint-matcher/internal/models"
	"fingerprint-matcher/internal/pipeline"

	"fyne.io/fyne/v2"
)

// ErrIncompleteSelection is returned when compare is requested before both
// images were chosen.
var ErrIncompleteSelection = errors.New("please select both images")

// Comparer is the core comparison boundary.
type Comparer interface {
	Compare(ctx context.Context, path1, path2 string) (models.Result, error)
}

// View is what the controller needs from the window.
type View interface {
	SetSelectionLabel(slot int, text string, selected bool)
	SetComparing(active bool)
	ShowResult(result models.Result)
	ShowWarning(title, message string)
	ShowError(err error)
}

// Selection holds the two optional image paths chosen by the user.
type Selection struct {
	Path1 string
	Path2 string
}

// Complete reports whether both paths are set.
func (s Selection) Complete() bool {
	return s.Path1 != "" && s.Path2 != ""
}

// MainController connects the view's events to the comparator.
type MainController struct {
	comparer Comparer
	view     View
	logger   pipeline.Logger

	mu        sync.RWMutex
	selection Selection
	ctx       context.Context

	// run executes background work, post returns to the UI goroutine.
	run  func(func())
	post func(func())
}

// Option configures a MainController.
type Option func(*MainController)

// WithExecutors replaces the background runner and UI poster, mainly so
// tests can run handlers synchronously.
func WithExecutors(run, post func(func())) Option {
	return func(mc *MainController) {
		mc.run = run
		mc.post = post
	}
}

// NewMainController creates a controller bound to ctx for its lifetime.
func NewMainController(ctx context.Context, comparer Comparer, logger pipeline.Logger, opts ...Option) *MainController {
	mc := &MainController{
		comparer: comparer,
		logger:   logger,
		ctx:      ctx,
		run:      func(task func()) { go task() },
		post:     fyne.Do,
	}
	for _, opt := range opts {
		opt(mc)
	}
	return mc
}

// SetMainView associates the view with this controller.
func (mc *MainController) SetMainView(view View) {
	mc.view = view
}

// Selection returns a copy of the current selection.
func (mc *MainController) Selection() Selection {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.selection
}

// SelectImage records the path chosen for slot 1 or 2. An empty path clears
// the slot, as when the file dialog is cancelled.
func (mc *MainController) SelectImage(slot int, path string) error {
	mc.mu.Lock()
	switch slot {
	case 1:
		mc.selection.Path1 = path
	case 2:
		mc.selection.Path2 = path
	default:
		mc.mu.Unlock()
		return fmt.Errorf("invalid image slot %d", slot)
	}
	mc.mu.Unlock()

	if path == "" {
		mc.view.SetSelectionLabel(slot, fmt.Sprintf("No Image %d Selected", slot), false)
		return nil
	}

	mc.logger.Debug("MainController", "image selected", map[string]interface{}{
		"slot": slot,
		"path": path,
	})
	mc.view.SetSelectionLabel(slot, fmt.Sprintf("Selected Image %d: %s", slot, filepath.Base(path)), true)
	return nil
}

// Compare runs a comparison of the current selection synchronously.
func (mc *MainController) Compare(ctx context.Context) (models.Result, error) {
	selection := mc.Selection()
	if !selection.Complete() {
		return models.Result{}, ErrIncompleteSelection
	}
	return mc.comparer.Compare(ctx, selection.Path1, selection.Path2)
}

// OnCompare is the compare button handler. It warns when a path is missing,
// otherwise compares off the UI goroutine and reports back to the view.
func (mc *MainController) OnCompare() {
	if !mc.Selection().Complete() {
		mc.view.ShowWarning("Warning", "Please select both images.")
		return
	}

	mc.view.SetComparing(true)
	mc.run(func() {
		result, err := mc.Compare(mc.ctx)
		mc.post(func() {
			mc.view.SetComparing(false)
			if err != nil {
				mc.logger.Error("MainController", err, nil)
				mc.view.ShowError(err)
				return
			}
			mc.view.ShowResult(result)
		})
	})
}
