package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Viewport converts world points to screen pixels for a fixed camera pose.
type Viewport struct {
	viewProj      mgl64.Mat4
	width, height float64
}

// NewViewport builds a perspective viewport looking from eye along forward.
func NewViewport(eye, forward mgl64.Vec3, fovDeg, near, far float64, width, height int) Viewport {
	aspect := float64(width) / float64(height)
	proj := mgl64.Perspective(mgl64.DegToRad(fovDeg), aspect, near, far)
	view := mgl64.LookAtV(eye, eye.Add(forward), Up)
	return Viewport{
		viewProj: proj.Mul4(view),
		width:    float64(width),
		height:   float64(height),
	}
}

// Project returns the screen position of p. ok is false for points behind the camera.
func (v Viewport) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	clip := v.viewProj.Mul4x1(p.Vec4(1))
	if clip.W() <= minW {
		return 0, 0, false
	}
	x, y = v.toScreen(clip)
	return x, y, true
}

// ProjectSegment projects the segment a-b, cutting off any part behind the
// camera. ok is false when nothing is left.
func (v Viewport) ProjectSegment(a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	ca := v.viewProj.Mul4x1(a.Vec4(1))
	cb := v.viewProj.Mul4x1(b.Vec4(1))
	wa, wb := ca.W(), cb.W()
	switch {
	case wa <= minW && wb <= minW:
		return 0, 0, 0, 0, false
	case wa <= minW:
		ca = ca.Add(cb.Sub(ca).Mul((minW - wa) / (wb - wa)))
	case wb <= minW:
		cb = cb.Add(ca.Sub(cb).Mul((minW - wb) / (wa - wb)))
	}
	x0, y0 = v.toScreen(ca)
	x1, y1 = v.toScreen(cb)
	return x0, y0, x1, y1, true
}

// Smallest clip-space w still treated as in front of the camera
const minW = 1e-3

func (v Viewport) toScreen(clip mgl64.Vec4) (x, y float64) {
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) * 0.5 * v.width
	y = (1 - ndc.Y()) * 0.5 * v.height
	return x, y
}
