// Package core provides the visibility model shared by every scene widget.
//
// A widget embeds one of three element types:
//
//   - [Object] holds a single visibility flag with Show and Hide.
//   - [InContainer] adds the visibility of the container that owns the
//     widget. Its effective visibility is the AND of both flags.
//   - [DelayedHiding] is an Object that hides itself after a duration of
//     frame time, using a [frame.Timer].
//
// Widgets render to [render.Node] values through the [Widget] interface; a
// [Scene] collects top-level widgets under stable keys the way a host
// renderer registration would.
package core
