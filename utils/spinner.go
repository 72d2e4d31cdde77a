package utils

import (
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

var (
	spinnerMu sync.Mutex
	active    *spinner.Spinner
)

// StartSpinner shows a progress spinner on stderr until StopSpinner is called.
func StartSpinner(suffix string) {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if active != nil {
		return
	}

	active = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	active.Suffix = " " + suffix
	active.Start()
}

// StopSpinner is a no-op when no spinner is running.
func StopSpinner() {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if active == nil {
		return
	}

	active.Stop()
	active = nil
}
