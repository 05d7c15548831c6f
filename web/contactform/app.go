//go:build js && wasm

// The contact form wasm client. It mounts an interactive form into the
// hybrid contact page's placeholder element and drives it with the state
// machine from internal/form; this package is only DOM glue. Build with
// GOOS=js GOARCH=wasm and serve alongside the loader produced from
// loader.js (see that file for the bundle recipe).
package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/amorgan/folio/internal/form"
)

const placeholderID = "contact-form-placeholder"

func main() {
	a := newApp()
	if err := a.mount(placeholderID); err != nil {
		consoleError("❌ Failed to mount contact form: " + err.Error())
		return
	}
	consoleLog("✅ Interactive contact form created")

	// Block forever; the program only acts through event callbacks now.
	select {}
}

// app wires the form controller to the document. The js.Func handlers are
// created once and reattached after every re-render; they are never
// released because the program never exits.
type app struct {
	doc  js.Value
	root js.Value
	ctrl *form.Controller

	submitFn  js.Func
	resetFn   js.Func
	anotherFn js.Func
	inputFns  map[form.Field]js.Func
	blurFns   map[form.Field]js.Func
}

func newApp() *app {
	return &app{
		doc:  js.Global().Get("document"),
		ctrl: &form.Controller{Storage: browserStorage()},
	}
}

func (a *app) mount(id string) error {
	a.root = a.doc.Call("getElementById", id)
	if !a.root.Truthy() {
		return fmt.Errorf("placeholder %q not found", id)
	}
	a.makeFuncs()
	a.renderForm()
	return nil
}

func (a *app) makeFuncs() {
	a.submitFn = js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		a.handleSubmit()
		return nil
	})
	a.resetFn = js.FuncOf(func(this js.Value, args []js.Value) any {
		a.handleReset()
		return nil
	})
	a.anotherFn = js.FuncOf(func(this js.Value, args []js.Value) any {
		a.ctrl.Reset()
		a.renderForm()
		return nil
	})

	a.inputFns = make(map[form.Field]js.Func, len(form.Fields))
	a.blurFns = make(map[form.Field]js.Func, len(form.Fields))
	for _, f := range form.Fields {
		a.inputFns[f] = js.FuncOf(func(this js.Value, args []js.Value) any {
			a.syncField(f)
			a.updateSubmitState()
			return nil
		})
		a.blurFns[f] = js.FuncOf(func(this js.Value, args []js.Value) any {
			a.syncField(f)
			a.flagField(f)
			return nil
		})
	}
}

// renderForm replaces the placeholder contents with a fresh, empty form and
// attaches the handlers. Called on mount and again after "Send Another
// Message".
func (a *app) renderForm() {
	a.root.Set("innerHTML", formHTML)

	formEl := a.byID("contact-form")
	formEl.Call("addEventListener", "submit", a.submitFn)
	a.byID("reset-btn").Call("addEventListener", "click", a.resetFn)
	for _, f := range form.Fields {
		input := a.fieldInput(f)
		input.Call("addEventListener", "input", a.inputFns[f])
		input.Call("addEventListener", "blur", a.blurFns[f])
	}
	a.updateSubmitState()
}

// renderSubmitted swaps the form for a summary of the captured submission.
func (a *app) renderSubmitted(data form.Data) {
	a.root.Set("innerHTML", submittedHTML(data))
	a.byID("another-btn").Call("addEventListener", "click", a.anotherFn)
}

func (a *app) handleSubmit() {
	// Re-read every input so autofilled values that never fired an input
	// event still count.
	for _, f := range form.Fields {
		a.syncField(f)
	}
	for _, f := range form.Fields {
		a.flagField(f)
	}

	a.ctrl.Submit()
	switch a.ctrl.State() {
	case form.StateError:
		a.showErrors(a.ctrl.ValidationErrors())
		a.setStatus(a.ctrl.ErrorBanner(), "error")
	case form.StateSubmitted:
		data, _ := a.ctrl.Submitted()
		if b, err := json.Marshal(data); err == nil {
			consoleLog("📧 Form submitted: " + string(b))
		}
		a.renderSubmitted(data)
	}
}

func (a *app) handleReset() {
	a.ctrl.Reset()
	for _, f := range form.Fields {
		input := a.fieldInput(f)
		input.Set("value", "")
		removeClass(input, "error")
		setText(a.byID(f.String()+"-error"), "")
	}
	a.hideErrors()
	a.clearStatus()
	a.updateSubmitState()
	consoleLog("🔄 Form reset")
}

// syncField copies the current DOM value of a field into the controller.
func (a *app) syncField(f form.Field) {
	a.ctrl.SetField(f, a.fieldInput(f).Get("value").String())
}

// flagField marks a single input as valid or invalid, with the short
// per-field message next to it.
func (a *app) flagField(f form.Field) {
	input := a.fieldInput(f)
	errDiv := a.byID(f.String() + "-error")
	if a.ctrl.FieldValid(f) {
		removeClass(input, "error")
		setText(errDiv, "")
		return
	}
	addClass(input, "error")
	setText(errDiv, blurMessage(f))
}

func blurMessage(f form.Field) string {
	switch f {
	case form.FieldName:
		return "Name is required"
	case form.FieldEmail:
		return "Valid email is required"
	case form.FieldSubject:
		return "Subject is required"
	case form.FieldMessage:
		return "Message is required"
	}
	return "This field is required"
}

// showErrors fills the aggregated error list above the fields.
func (a *app) showErrors(msgs []string) {
	list := a.byID("validation-errors-list")
	list.Set("innerHTML", "")
	for _, msg := range msgs {
		li := a.doc.Call("createElement", "li")
		setText(li, msg)
		list.Call("appendChild", li)
	}
	a.byID("validation-errors").Get("style").Set("display", "block")
}

func (a *app) hideErrors() {
	a.byID("validation-errors-list").Set("innerHTML", "")
	a.byID("validation-errors").Get("style").Set("display", "none")
}

// setStatus writes the status line under the form. The message is assigned
// as text, never markup.
func (a *app) setStatus(msg, kind string) {
	status := a.byID("form-status")
	setText(status, msg)
	removeClass(status, "success")
	removeClass(status, "error")
	addClass(status, kind)
}

func (a *app) clearStatus() {
	status := a.byID("form-status")
	setText(status, "")
	removeClass(status, "success")
	removeClass(status, "error")
}

func (a *app) updateSubmitState() {
	a.byID("submit-btn").Set("disabled", !a.ctrl.IsValid())
}

func (a *app) byID(id string) js.Value {
	return a.doc.Call("getElementById", id)
}

func (a *app) fieldInput(f form.Field) js.Value {
	return a.byID("contact-" + f.String())
}
