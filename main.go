//go:build windows

package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"

	"fyne.io/systray"
	"github.com/AllenDang/w32"

	"wintouch/internal/config"
	"wintouch/internal/touch"
)

var (
	cfg          *config.Config
	touchSystem  *touch.System
	hostWindows  []w32.HWND
	logEvents    atomic.Bool
	signals      = make(chan os.Signal, 1)
	shutdownOnce atomic.Bool
)

func main() {
	// Windows, hooks and the System all live on this thread.
	runtime.LockOSThread()

	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	var err error
	cfg, err = loadConfig(*configPath)
	if err != nil {
		slog.Error("[host] config", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg)
	logEvents.Store(cfg.LogEvents)

	api, err := touch.ParseAPI(cfg.API)
	if err != nil {
		slog.Error("[host] config", "error", err)
		os.Exit(1)
	}

	platform := touch.NewWindowsPlatform()
	touchSystem, err = touch.New(platform, touch.Options{
		API:         api,
		WindowClass: cfg.WindowClass,
		Handler:     onPointerEvent,
		Logger:      slog.Default(),
		Debug:       cfg.Debug,
	})
	if err != nil {
		slog.Error("[host] touch init failed", "error", err)
		os.Exit(1)
	}
	slog.Info("[host] touch input initialized", "api", touchSystem.API())

	instance := w32.GetModuleHandle("")
	if err := registerWindowClass(cfg.WindowClass, instance); err != nil {
		slog.Error("[host] window class", "error", err)
		os.Exit(1)
	}

	// Each window is activated before the next is created so the class
	// search can only pick the new one.
	for _, d := range cfg.Displays {
		hwnd, err := createDisplayWindow(cfg.WindowClass, d, instance)
		if err != nil {
			slog.Error("[host] create window", "display", d.Index, "error", err)
			continue
		}
		hostWindows = append(hostWindows, hwnd)
		if err := touchSystem.ActivateDisplay(d.Index, d.Width, d.Height); err != nil {
			slog.Warn("[host] activate display failed", "display", d.Index, "error", err)
			continue
		}
		slog.Info("[host] display active", "display", d.Index, "width", d.Width, "height", d.Height)
	}
	for name, value := range cfg.WindowProperties {
		touchSystem.SetWindowProperty(name, uintptr(value))
	}

	signal.Notify(signals, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	go signalHandler()

	systray.Run(onReady, onExit)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	return config.LoadFromPath(path)
}

func setupLogging(cfg *config.Config) {
	level, _ := cfg.SlogLevel()
	if cfg.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func onPointerEvent(ev touch.PointerEvent) {
	if !logEvents.Load() {
		return
	}
	slog.Info("[host] pointer",
		"display", ev.DisplayIndex,
		"id", ev.PointerID,
		"kind", ev.Kind,
		"device", ev.Device,
		"x", ev.Position.X,
		"y", ev.Position.Y,
		"pressure", ev.Payload.Pressure,
		"changed", ev.Payload.ChangedButtons,
	)
}

func signalHandler() {
	sig := <-signals
	slog.Info("[host] received signal", "signal", sig)
	systray.Quit()
}

func onExit() {
	housekeeping()
}

func housekeeping() {
	if !shutdownOnce.CompareAndSwap(false, true) {
		return
	}
	for name := range cfg.WindowProperties {
		touchSystem.RemoveWindowProperty(name)
	}
	touchSystem.Dispose()
	for _, hwnd := range hostWindows {
		w32.DestroyWindow(hwnd)
	}
	slog.Info("[host] touch input disposed")
	os.Exit(0)
}
