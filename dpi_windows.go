//go:build windows

package main

import "golang.org/x/sys/windows"

// enableDPIAwareness must run before any window is created, otherwise screen
// captures and the Tk window are scaled by the system.
func enableDPIAwareness() {
	user32 := windows.NewLazySystemDLL("user32.dll")

	ctx := user32.NewProc("SetProcessDpiAwarenessContext")
	if ctx.Find() == nil {
		// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2, then V1.
		if r, _, _ := ctx.Call(^uintptr(3)); r != 0 {
			return
		}
		if r, _, _ := ctx.Call(^uintptr(2)); r != 0 {
			return
		}
	}

	shcore := windows.NewLazySystemDLL("shcore.dll")
	awareness := shcore.NewProc("SetProcessDpiAwareness")
	if awareness.Find() == nil {
		if r, _, _ := awareness.Call(2); r == 0 { // PROCESS_PER_MONITOR_DPI_AWARE
			return
		}
		_, _, _ = awareness.Call(1)
		return
	}

	_, _, _ = user32.NewProc("SetProcessDPIAware").Call()
}
