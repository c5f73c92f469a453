// pkg/platform/frame.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import gomath "math"

// NewFrame must be called once per frame, after the renderer's NewFrame
// and before the UI library's.
func (b *Backend) NewFrame() {
	b.mustBeAttached("NewFrame")
	io := b.io

	// Display size is set every frame to accommodate window resizing.
	w, h := b.window.W(), b.window.H()
	io.SetDisplaySize(float32(w), float32(h))
	if w > 0 && h > 0 {
		io.SetDisplayFramebufferScale(float32(b.window.PixelW())/float32(w),
			float32(b.window.PixelH())/float32(h))
	}

	now := b.toolkit.Now()
	dt := b.config.nominalDeltaTime()
	if b.haveFrameTime {
		// Equal samples happen with coarse clocks; the UI library needs a
		// positive delta, so keep the nominal one in that case.
		if elapsed := now.Sub(b.lastFrameTime).Seconds(); elapsed > 0 {
			dt = float32(elapsed)
		}
	}
	io.SetDeltaTime(dt)
	b.lastFrameTime, b.haveFrameTime = now, true

	if b.pendingLeaveFrame != 0 && io.FrameCount() >= b.pendingLeaveFrame && b.mouseButtonsDown == 0 {
		b.pendingLeaveFrame = 0
		io.AddMousePosEvent(-gomath.MaxFloat32, -gomath.MaxFloat32)
	}

	b.updateMouseCursor()
}
