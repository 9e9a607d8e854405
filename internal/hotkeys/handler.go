// Package hotkeys registers the daemon's global move hotkeys on the X root
// window.
package hotkeys

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/monshift/internal/topology"
	"github.com/1broseidon/monshift/internal/x11"
)

// Handler manages the global keyboard shortcuts for daemon mode.
type Handler struct {
	xu     *xgbutil.XUtil
	root   xproto.Window
	logger *slog.Logger
}

var ignoreModsOnce sync.Once

// NewHandler creates a hotkey handler on an existing connection.
func NewHandler(conn *x11.Connection, logger *slog.Logger) *Handler {
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(conn.XUtil)
	})

	return &Handler{
		xu:     conn.XUtil,
		root:   conn.Root,
		logger: logger,
	}
}

// RegisterMoves binds one hotkey per configured direction. bindings maps a
// direction keyword to a keybind sequence ("Mod4-Shift-Left"); onMove fires
// on the X event loop goroutine.
func (h *Handler) RegisterMoves(bindings map[string]string, onMove func(topology.Direction)) error {
	for dirName, seq := range bindings {
		dir, err := topology.ParseDirection(dirName)
		if err != nil {
			return err
		}
		if err := h.registerFunc(seq, func() {
			h.logger.Debug("hotkey triggered", "direction", dir, "sequence", seq)
			onMove(dir)
		}); err != nil {
			return fmt.Errorf("failed to register hotkey %s for %s: %w", seq, dir, err)
		}
	}
	return nil
}

func (h *Handler) registerFunc(keySequence string, callback func()) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(h.xu, h.root, keySequence, true)
}

// configureIgnoreMods makes registered hotkeys fire regardless of the lock
// modifiers (CapsLock, NumLock, ScrollLock) by listing every subset of their
// masks.
func configureIgnoreMods(xu *xgbutil.XUtil) {
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
