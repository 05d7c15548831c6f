//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/amorgan/folio/internal/form"
)

func consoleLog(args ...any)   { js.Global().Get("console").Call("log", args...) }
func consoleError(args ...any) { js.Global().Get("console").Call("error", args...) }

func addClass(el js.Value, name string)    { el.Get("classList").Call("add", name) }
func removeClass(el js.Value, name string) { el.Get("classList").Call("remove", name) }
func setText(el js.Value, s string)        { el.Set("textContent", s) }

// browserStorage returns window.localStorage as a form.Storage, or nil when
// the browser exposes none (private mode in some engines).
func browserStorage() form.Storage {
	s := js.Global().Get("localStorage")
	if !s.Truthy() {
		return nil
	}
	return &localStorage{store: s}
}

type localStorage struct {
	store js.Value
}

// SetItem writes through to localStorage. setItem throws when the quota is
// exhausted; the recover turns that into an error the controller swallows.
func (s *localStorage) SetItem(key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage setItem: %v", r)
		}
	}()
	s.store.Call("setItem", key, value)
	return nil
}
