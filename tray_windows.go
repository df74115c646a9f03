package main

import (
	"fyne.io/systray"
	"fyne.io/systray/example/icon"
)

func onReady() {
	systray.SetIcon(icon.Data)
	systray.SetTitle("Touch Monitor")
	systray.SetTooltip("Touch Monitor (" + touchSystem.API().String() + " input)")

	mLogEvents := systray.AddMenuItem(logEventsTitle(logEvents.Load()), "print every decoded pointer event")
	mRecalibrate := systray.AddMenuItem("Recalibrate Displays", "recompute scaling after a resolution or fullscreen change")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Quit the whole app")
	go func() {
		for {
			select {
			case <-mLogEvents.ClickedCh:
				enabled := !logEvents.Load()
				logEvents.Store(enabled)
				mLogEvents.SetTitle(logEventsTitle(enabled))
			case <-mRecalibrate.ClickedCh:
				postRecalibrate()
			case <-mQuit.ClickedCh:
				systray.Quit()
			}
		}
	}()
}

func logEventsTitle(enabled bool) string {
	if enabled {
		return "✓ Event Logging Enabled"
	}
	return "✘ Event Logging Disabled"
}
