// Package orbit provides the closed-form kinematics behind the orrery.
//
// Everything here is a pure function over plain values:
//
//   - [Advance]: per-frame angle increment with the reset-to-zero wrap
//   - [Project]: ellipse parameter to screen coordinates
//   - [AdvanceAsteroid]: radial clamp into a [Band] followed by a rotation
//
// # Angle Wrap
//
// Angles are kept in degrees. Once an advanced angle exceeds 360 it restarts at
// exactly 0; the overshoot is dropped rather than carried over. Renderers and
// recordings depend on this motion, so it must not be replaced with a modulo.
//
//	o := orbit.New(100, 0)
//	o.Advance(0.45)
//	p := orbit.Project(o, orbit.Point{X: 400, Y: 300})
package orbit
