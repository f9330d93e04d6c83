package stilllife

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// App owns the shared resources and the staged systems that make up the
// program. Control flow is linear: Startup systems run once, the frame
// stages repeat until Quit is requested, Finale systems run once on the
// way out.
type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	modules   []Module
	quitting  bool
}

// Module installs resources and systems into an App.
type Module interface {
	Install(app *App)
}

func NewApp() *App {
	app := &App{
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
	}
	for _, stage := range []Stage{Startup, Prelude, Update, Render, Finale} {
		app.useStage(stage)
	}
	return app
}

// UseModules installs modules in order. Installation order matters for
// modules that read resources provided by earlier modules.
func (app *App) UseModules(modules ...Module) *App {
	for _, module := range modules {
		app.modules = append(app.modules, module)
		module.Install(app)
	}
	return app
}

// AddResources registers resources, keyed by their concrete type. Each
// resource must be a pointer and each type may only be added once.
func (app *App) AddResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// GetResource returns the resource of type T, or nil if none was added.
func GetResource[T any](app *App) *T {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if r, ok := app.resources[t]; ok {
		return r.(*T)
	}
	return nil
}

// Quit asks the frame loop to stop after the current frame.
func (app *App) Quit() {
	app.quitting = true
}

func (app *App) Run() {
	app.callStage(Startup)

	for !app.quitting {
		for _, stage := range app.stages {
			if stage.Name == Startup.Name || stage.Name == Finale.Name {
				continue
			}
			app.callStage(stage)
		}
	}

	app.callStage(Finale)
}

func (app *App) callStage(stage Stage) {
	for _, system := range app.systems[stage.Name] {
		app.callSystem(system)
	}
}

var typeOfApp = reflect.TypeOf(App{})

// callSystem invokes a system, resolving each pointer parameter either
// to the App itself or to a registered resource of that type.
func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		underlyingType := argType.Elem()

		if underlyingType == typeOfApp {
			args[i] = reflect.ValueOf(app)
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}
	systemValue.Call(args)
}
