// Package gavui is a small retained-mode widget toolkit: buttons, draggable
// panels, dropdowns, paginated scroll lists, toggles, cycles and sliders,
// composed into a tree and driven by a host that supplies pointer input and a
// drawing surface.
//
// # Quick start
//
// Build widgets through the tree owned by a [Screen], add the roots and let
// a host drive it. The [ebitenhost] package opens a window:
//
//	screen := gavui.NewScreen("Demo", nil)
//	t := screen.Tree()
//	list := t.BuildScroll(gavui.Config{
//		TopLeft: gavui.Pt(10, 10), Title: "Render", IsParent: true, Draggable: true,
//	})
//	list.AddElement(t.BuildToggle(gavui.Config{Title: "Fullbright"}))
//	screen.Add(list)
//	ebitenhost.Run(screen, ebitenhost.RunConfig{Width: 640, Height: 480})
//
// # Widget tree
//
// Every widget is a [Widget] owned by a [Tree]. Widgets reference their
// parent and children by [Handle], so the tree never holds pointer cycles.
// [Widget.Kind] selects behaviour; the capability fields ([Widget.Click],
// [Widget.Drag], [Widget.Menu], [Widget.Pages]) carry the state of each
// capability and are nil when the widget lacks it.
//
// Children render in list order and are hit-tested in reverse, so the last
// added child is on top. Hiding a widget hides its descendants and showing
// it shows them all again.
//
// # Input routing
//
// Input flows through [Screen.MouseClicked], [Screen.MouseDragged],
// [Screen.MouseScrolled] and [Screen.MouseReleased]. The deepest widget gets
// the first chance to consume an event. A [Routing] value, one per screen,
// tracks which widget holds drag capture so a slider keeps following the
// pointer after it leaves the track.
//
// # Theme
//
// Colors and switches come from a [Theme]. [DefaultTheme] is an in-memory
// palette; the settings package provides one backed by viper.
//
// # Scripted input
//
// [Screen.InjectClick], [Screen.InjectDrag] and friends queue synthetic
// events that [Screen.Update] delivers one per frame. [LoadTestScript] reads
// a YAML list of such steps for automated UI checks.
//
// [ebitenhost]: https://pkg.go.dev/github.com/phanxgames/gavui/ebitenhost
package gavui
