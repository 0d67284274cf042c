// Package scene drives the orrery one frame at a time.
//
// A [Scene] owns the bodies, the asteroid belt and the starfield, all built
// from an explicit [Config]. Front ends call [Scene.Tick] once per rendered
// frame and read positions back through [Scene.Snapshot]; nothing here touches
// a window or a terminal.
//
// # Frame Order
//
// Each tick advances every planet, then the moon (which circles Earth's new
// position), then every asteroid. The sun never moves.
//
// # Thread Safety
//
// A Scene is owned by a single frame driver and is NOT safe for concurrent use.
// Snapshots are copies and may be handed to other goroutines.
package scene
