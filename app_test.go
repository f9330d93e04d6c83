package stilllife

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func TestApp_AddResources(t *testing.T) {
	app := NewApp()

	resource1 := &MockResource1{name: "Resource1"}
	app.AddResources(resource1)

	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	// Adding the same type again must panic
	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.AddResources(resource1)
	})

	resource2 := &MockResource2{name: "Resource2"}
	app.AddResources(resource2)

	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")
}

func TestGetResource(t *testing.T) {
	app := NewApp()

	assert.Nil(t, GetResource[MockResource1](app))

	resource := &MockResource1{name: "Resource1"}
	app.AddResources(resource)

	got := GetResource[MockResource1](app)
	require.NotNil(t, got)
	assert.Equal(t, "Resource1", got.name)
}

type recordingModule struct {
	installed *bool
}

func (m recordingModule) Install(app *App) {
	*m.installed = true
	app.AddResources(&MockResource1{name: "from module"})
}

func TestApp_UseModules(t *testing.T) {
	app := NewApp()
	installed := false

	app.UseModules(recordingModule{installed: &installed})

	assert.True(t, installed)
	require.NotNil(t, GetResource[MockResource1](app))
}

func TestApp_SystemInjection(t *testing.T) {
	app := NewApp()
	app.AddResources(&MockResource1{name: "injected"})

	var gotName string
	var gotApp *App
	app.UseSystem(System(func(a *App, r *MockResource1) {
		gotApp = a
		gotName = r.name
	}).InStage(Update))

	app.callStage(Update)

	assert.Equal(t, "injected", gotName)
	assert.Same(t, app, gotApp)
}

func TestApp_SystemInjection_MissingResourcePanics(t *testing.T) {
	app := NewApp()
	app.UseSystem(System(func(r *MockResource2) {}).InStage(Update))

	assert.Panics(t, func() {
		app.callStage(Update)
	})
}

func TestApp_RunStageOrder(t *testing.T) {
	app := NewApp()

	var order []string
	note := func(name string) func(a *App) {
		return func(a *App) {
			order = append(order, name)
		}
	}

	app.UseSystem(System(note("startup")).InStage(Startup))
	app.UseSystem(System(note("prelude")).InStage(Prelude))
	app.UseSystem(System(note("render")).InStage(Render))
	app.UseSystem(System(func(a *App) {
		order = append(order, "update")
		a.Quit()
	}).InStage(Update))
	app.UseSystem(System(note("finale")).InStage(Finale))

	app.Run()

	assert.Equal(t, []string{"startup", "prelude", "update", "render", "finale"}, order)
}

func TestApp_UseStage(t *testing.T) {
	app := NewApp()
	beforeRender := Stage{Name: "BeforeRender"}
	app.UseStage(beforeRender, BeforeStage(Render))

	var order []string
	app.UseSystem(System(func(a *App) {
		order = append(order, "update")
		a.Quit()
	}).InStage(Update))
	app.UseSystem(System(func(a *App) {
		order = append(order, "custom")
	}).InStage(beforeRender))
	app.UseSystem(System(func(a *App) {
		order = append(order, "render")
	}).InStage(Render))

	app.Run()

	assert.Equal(t, []string{"update", "custom", "render"}, order)
}

func TestApp_UseStage_UnknownTargetPanics(t *testing.T) {
	app := NewApp()

	assert.Panics(t, func() {
		app.UseStage(Stage{Name: "Extra"}, AfterStage(Stage{Name: "Nope"}))
	})
}

func TestApp_UseSystem_UnknownStagePanics(t *testing.T) {
	app := NewApp()

	assert.Panics(t, func() {
		app.UseSystem(System(func(a *App) {}).InStage(Stage{Name: "Nope"}))
	})
}
