package canvas

import "math"

// RotationSnap is the snapped increment, in degrees, applied when the
// snap modifier is held during a rotate gesture.
const RotationSnap = 15.0

// PointerAngle returns the angle in degrees of the pointer around the
// element center, both in screen space. Screen space is the right frame
// for this: the user drags around the element as rendered, so the angle
// must be measured after the full viewport transform.
func PointerAngle(pointer, center Point) float64 {
	return math.Atan2(pointer.Y-center.Y, pointer.X-center.X) * 180 / math.Pi
}

// ApplyRotation computes the committed rotation for a rotate gesture:
// the rotation captured at gesture start plus the angle swept since,
// optionally snapped to RotationSnap increments, normalized to [0,360).
//
// A background element rejects any delta and always re-asserts its
// initial rotation.
func ApplyRotation(initial, startAngle, currentAngle float64, snap, isBackground bool) float64 {
	if isBackground {
		return NormalizeAngle(initial)
	}
	rotation := initial + (currentAngle - startAngle)
	if snap {
		rotation = math.Round(rotation/RotationSnap) * RotationSnap
	}
	return NormalizeAngle(rotation)
}
