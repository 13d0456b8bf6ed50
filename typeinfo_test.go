package autoresolve

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbstraction_Identity(t *testing.T) {
	assert.Equal(t, Interface[IWidget](), TypeOf(widgetIface))
	assert.True(t, Interface[IWidget]() == TypeOf(widgetIface))
	assert.False(t, Interface[IWidget]() == Interface[IGadget]())
	assert.True(t, ResolveAsScoped == MarkerScoped.Abstraction())
	assert.False(t, ResolveAsScoped == ResolveAsTransient)
}

func TestAbstraction_Accessors(t *testing.T) {
	m, ok := ResolveAsSingleton.Marker()
	assert.True(t, ok)
	assert.Equal(t, MarkerSingleton, m)
	assert.Nil(t, ResolveAsSingleton.Type())

	_, ok = Interface[IWidget]().Marker()
	assert.False(t, ok)
	assert.Equal(t, widgetIface, Interface[IWidget]().Type())
}

func TestAbstraction_String(t *testing.T) {
	assert.Equal(t, "ResolveAsScoped", ResolveAsScoped.String())
	assert.Equal(t, "ResolveAsTransient", ResolveAsTransient.String())
	assert.Equal(t, "ResolveAsSingleton", ResolveAsSingleton.String())
	assert.Equal(t, "ResolveAsSelf", ResolveAsSelf.String())
	assert.Equal(t, "ResolveAsMarker(42)", Marker(42).Abstraction().String())
	assert.Equal(t, "autoresolve.IWidget", Interface[IWidget]().String())
	assert.Equal(t, "<nil>", Abstraction{}.String())
}

func TestDescribe(t *testing.T) {
	info := widgetInfo()

	assert.Equal(t, widgetType, info.Type())
	assert.True(t, info.IsConcrete())
	assert.Equal(t, []Abstraction{Interface[IWidget](), ResolveAsSingleton}, info.Abstractions())
	assert.True(t, info.Declares(Interface[IWidget]()))
	assert.False(t, info.Declares(Interface[IGadget]()))
	assert.True(t, info.HasCapability(MarkerSingleton))
	assert.False(t, info.HasCapability(MarkerScoped))
	assert.Equal(t, "*autoresolve.Widget", info.String())
}

func TestDescribe_InterfaceIsNotConcrete(t *testing.T) {
	info := Describe[IWidget](ResolveAsSingleton)
	assert.False(t, info.IsConcrete())

	assert.False(t, DescribeType(nil).IsConcrete())
	assert.Equal(t, "<nil>", DescribeType(nil).String())
}

func TestDescribe_CopiesDeclarations(t *testing.T) {
	declared := []Abstraction{Interface[IWidget](), ResolveAsSingleton}
	info := DescribeType(widgetType, declared...)

	declared[0] = ResolveAsSelf
	assert.Equal(t, Interface[IWidget](), info.Abstractions()[0])

	got := info.Abstractions()
	got[1] = ResolveAsScoped
	assert.True(t, info.HasCapability(MarkerSingleton))
}

func TestEntry_String(t *testing.T) {
	e := Entry{
		ServiceType:        widgetIface,
		ImplementationType: widgetType,
		Lifetime:           LifetimeSingleton,
	}
	assert.Equal(t, "autoresolve.IWidget -> *autoresolve.Widget (singleton)", e.String())
	assert.Equal(t, reflect.TypeOf((*IWidget)(nil)).Elem(), e.ServiceType)
}
