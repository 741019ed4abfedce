// Package radial is a headless engine for radial gesture menus: press, drag
// outward from an anchor and release to choose.
//
// The angle of the pointer around the anchor picks a category (a wedge of
// the circle) and its distance picks one of the category's options (a band
// of radii). A dead zone around the anchor selects nothing, so releasing
// there cancels. Rendering and input polling belong to the host; the
// [ebitenin] package adapts Ebitengine pointer input and [feedback] turns
// hover changes into eased highlight values.
//
// # Geometry
//
// A [Partition] is an immutable set of categories built and validated by
// [NewPartition]. Ranges are half-open [start, end) in degrees and may wrap
// through 0:
//
//	p, err := radial.NewPartition(radial.PartitionConfig{
//		HitConfig: radial.HitConfig{DeadZoneRadius: 30, OptionRevealRadius: 60},
//		BandStep:  30,
//		Categories: []radial.CategoryConfig{
//			{ID: "days", Start: 315, End: 45, Options: []radial.OptionConfig{{Label: "1"}, {Label: "2"}}},
//			{ID: "weeks", Start: 45, End: 135, Options: []radial.OptionConfig{{Label: "1"}, {Label: "2"}}},
//		},
//	})
//
// [ToPolar] maps a pointer to a [PolarSample] and [Resolve] hit tests it.
// Both are pure and total over finite input.
//
// # Menus
//
// A [Session] follows one press-drag-release and ends committed or
// cancelled. Two controllers run sessions for the host:
//
//   - [Wizard] reuses one partition for an ordered list of fields, storing one
//     decoded value per committed session in a [Composite]. When every
//     required field is set a tap in the dead zone finalizes it.
//   - [Navigator] walks nested partitions. Committing a category with a child
//     opens the child; committing a terminal category fires [ActionContext]
//     callbacks and closes the menu.
//
// Feed controllers one [PointerEvent] at a time from the host's frame loop
// and subscribe with the On* methods:
//
//	nav, _ := radial.NewNavigator(radial.NavigatorConfig{Root: p})
//	nav.OnAction(func(ctx radial.ActionContext) {
//		fmt.Println(strings.Join(ctx.Path, "/"))
//	})
//	err := nav.HandlePointer(radial.PointerEvent{Phase: radial.PointerDown, Pos: pos, Anchor: anchor})
//
// Controllers are single-threaded. Call them from the goroutine that owns
// the frame loop.
//
// # Configuration and replay
//
// [LoadMenu] reads a complete menu (geometry, wizard fields and vocabulary,
// cancel policy) from YAML. [Injector] and [ScriptRunner] drive a controller
// with synthetic gestures for tests and for the radialsim command.
//
// [ebitenin]: https://pkg.go.dev/github.com/phanxgames/radial/ebitenin
// [feedback]: https://pkg.go.dev/github.com/phanxgames/radial/feedback
package radial
