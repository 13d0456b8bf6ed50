package autoresolve

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// Test abstractions and implementations
type IWidget interface {
	Spin()
}

type Widget struct{}

func (w *Widget) Spin() {}

type IGadget interface {
	Tinker()
}

type Gadget struct{}

func (g *Gadget) Tinker() {}

type Widget2 struct{}

type IAuditor interface {
	Audit()
}

type AuditedGadget struct{}

func (a *AuditedGadget) Tinker() {}
func (a *AuditedGadget) Audit()  {}

var (
	widgetType        = reflect.TypeOf((**Widget)(nil)).Elem()
	widgetIface       = reflect.TypeOf((*IWidget)(nil)).Elem()
	gadgetType        = reflect.TypeOf((**Gadget)(nil)).Elem()
	gadgetIface       = reflect.TypeOf((*IGadget)(nil)).Elem()
	widget2Type       = reflect.TypeOf((**Widget2)(nil)).Elem()
	auditedGadgetType = reflect.TypeOf((**AuditedGadget)(nil)).Elem()
	auditorIface      = reflect.TypeOf((*IAuditor)(nil)).Elem()
)

// widgetInfo: {IWidget, ISingleton}
func widgetInfo() TypeInfo {
	return Describe[*Widget](Interface[IWidget](), ResolveAsSingleton)
}

// gadgetInfo: {IGadget, ISingleton, IAsSelf}
func gadgetInfo() TypeInfo {
	return Describe[*Gadget](Interface[IGadget](), ResolveAsSingleton, ResolveAsSelf)
}

// widget2Info: {IScoped, ITransient}
func widget2Info() TypeInfo {
	return Describe[*Widget2](ResolveAsScoped, ResolveAsTransient)
}

// dump renders values for failure messages.
func dump(t *testing.T, v ...interface{}) string {
	t.Helper()
	return spew.Sdump(v...)
}
