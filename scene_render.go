package stilllife

import "github.com/go-gl/mathgl/mgl32"

// RenderScene issues the full draw sequence for the still life: the
// table surface, a flashlight standing on end, a playing card box with
// a star logo, a card wallet, and a wristwatch. Every draw is the same
// five-step pattern: transform, color or texture, UV scale, material,
// draw.
func (s *SceneManager) RenderScene() {
	// table surface
	s.SetTransformations(mgl32.Vec3{25.0, 5.0, 20.0}, 0, 0, 0, mgl32.Vec3{-7.0, 0.0, -7.0})
	s.SetShaderColor(1, 0.540, 0.540, 0.540)
	s.SetShaderTexture("wood")
	s.SetTextureUVScale(1.0, 1.0)
	s.SetShaderMaterial("wood")
	s.shapes.DrawPlaneMesh()

	// flashlight head
	s.SetTransformations(mgl32.Vec3{1.0, 4.0, 1.0}, 0, 0, 0, mgl32.Vec3{0.0, 0.0, 0.0})
	s.SetShaderColor(0.184, 0.310, 0.310, 1)
	s.SetShaderTexture("plastic")
	s.SetTextureUVScale(1.0, 1.0)
	s.SetShaderMaterial("metal")
	s.shapes.DrawCylinderMesh()

	// flashlight grip
	s.SetTransformations(mgl32.Vec3{1.0, 2.0, 1.0}, 0, 0, 0, mgl32.Vec3{0.0, 4.0, 0.0})
	s.SetShaderColor(0.502, 0.502, 0.502, 1)
	s.SetShaderTexture("grip")
	s.SetTextureUVScale(0.5, 0.5)
	s.SetShaderMaterial("wood")
	s.shapes.DrawCylinderMesh()

	// body section above the grip
	s.SetTransformations(mgl32.Vec3{1.0, 1.0, 1.0}, 0, 0, 0, mgl32.Vec3{0.0, 6.0, 0.0})
	s.SetShaderColor(0.184, 0.310, 0.310, 1)
	s.SetShaderTexture("plastic")
	s.SetTextureUVScale(1.0, 1.0)
	s.SetShaderMaterial("metal")
	s.shapes.DrawCylinderMesh()

	// narrowed body section
	s.SetTransformations(mgl32.Vec3{0.8, 3.0, 1.0}, 0, 0, 0, mgl32.Vec3{0.0, 7.0, 0.0})
	s.SetShaderColor(0.184, 0.310, 0.310, 1)
	s.SetShaderTexture("plastic")
	s.SetTextureUVScale(1.0, 1.0)
	s.SetShaderMaterial("metal")
	s.shapes.DrawCylinderMesh()

	// battery compartment
	s.SetTransformations(mgl32.Vec3{1.0, 1.7, 1.0}, 0, 0, 0, mgl32.Vec3{0.0, 10.0, 0.0})
	s.SetShaderColor(0.184, 0.310, 0.310, 1)
	s.SetShaderTexture("plastic")
	s.SetTextureUVScale(1.0, 1.0)
	s.SetShaderMaterial("metal")
	s.shapes.DrawCylinderMesh()

	// power button
	s.SetTransformations(mgl32.Vec3{0.7, 0.3, 1.0}, 0, 0, 0, mgl32.Vec3{0.0, 11.6, 0.0})
	s.SetShaderTexture("red")
	s.SetTextureUVScale(2.0, 2.0)
	s.SetShaderMaterial("wood")
	s.shapes.DrawCylinderMesh()

	// belt clip mount
	s.SetTransformations(mgl32.Vec3{0.8, 0.1, 1.0}, 0, 0, 0, mgl32.Vec3{1.3, 11.0, 0.0})
	s.SetShaderTexture("plastic")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("wood")
	s.shapes.DrawBoxMesh()

	// belt clip arm
	s.SetTransformations(mgl32.Vec3{0.3, 4.0, 0.5}, 0, 0, 0, mgl32.Vec3{1.5, 9.0, 0.0})
	s.SetShaderTexture("plastic")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("wood")
	s.shapes.DrawBoxMesh()

	// card box
	s.SetTransformations(mgl32.Vec3{12.0, 14.0, 10.0}, 0, 0, 0, mgl32.Vec3{-12.0, 7.2, -12.0})
	s.SetShaderTexture("blue")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("plastic")
	s.shapes.DrawBoxMesh()

	// star logo, five cone points
	s.SetTransformations(mgl32.Vec3{1.5, 2.9, 0.1}, 0, 0, 0, mgl32.Vec3{-12.0, 9.8, -7.0})
	s.SetShaderTexture("silver")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("wood")
	s.shapes.DrawConeMesh()

	s.SetTransformations(mgl32.Vec3{1.5, 2.9, 0.1}, 0, 0, 60.0, mgl32.Vec3{-14.0, 9.0, -7.0})
	s.SetShaderTexture("silver")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("wood")
	s.shapes.DrawConeMesh()

	s.SetTransformations(mgl32.Vec3{1.5, 2.9, 0.1}, 0, 0, -60.0, mgl32.Vec3{-10.6, 9.0, -7.0})
	s.SetShaderTexture("silver")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("wood")
	s.shapes.DrawConeMesh()

	s.SetTransformations(mgl32.Vec3{1.5, 2.9, 0.1}, 0, 0, -150.0, mgl32.Vec3{-11.2, 7.4, -7.0})
	s.SetShaderTexture("silver")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("wood")
	s.shapes.DrawConeMesh()

	s.SetTransformations(mgl32.Vec3{1.5, 2.9, 0.1}, 0, 0, 150.0, mgl32.Vec3{-13.3, 7.4, -7.0})
	s.SetShaderTexture("silver")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("wood")
	s.shapes.DrawConeMesh()

	// star logo center disc
	s.SetTransformations(mgl32.Vec3{2.5, 0.3, 2.5}, 0, 90.0, 90.0, mgl32.Vec3{-12.3, 8.4, -7.2})
	s.SetShaderTexture("silver")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("wood")
	s.shapes.DrawCylinderMesh()

	// wallet bottom shell
	s.SetTransformations(mgl32.Vec3{8.0, 0.4, 10.0}, 0, 0, 0, mgl32.Vec3{6.0, 0.6, -13.0})
	s.SetShaderTexture("metal2")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("wood")
	s.shapes.DrawBoxMesh()

	// stacked cards between the shells
	s.SetTransformations(mgl32.Vec3{8.0, 0.2, 10.0}, 0, 0, 0, mgl32.Vec3{6.0, 0.9, -13.0})
	s.SetShaderTexture("red")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("plastic")
	s.shapes.DrawBoxMesh()

	s.SetTransformations(mgl32.Vec3{8.0, 0.2, 10.0}, 0, 0, 0, mgl32.Vec3{6.0, 1.1, -13.0})
	s.SetShaderTexture("blue")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("plastic")
	s.shapes.DrawBoxMesh()

	s.SetTransformations(mgl32.Vec3{8.0, 0.2, 10.0}, 0, 0, 0, mgl32.Vec3{6.0, 1.3, -13.0})
	s.SetShaderTexture("yellow")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("plastic")
	s.shapes.DrawBoxMesh()

	// wallet top shell
	s.SetTransformations(mgl32.Vec3{8.0, 0.4, 10.0}, 0, 0, 0, mgl32.Vec3{6.0, 1.6, -13.0})
	s.SetShaderTexture("metal2")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("metal")
	s.shapes.DrawBoxMesh()

	// elastic bands around the wallet
	s.SetTransformations(mgl32.Vec3{1.4, 4.4, 0.1}, 0, 0, 90.0, mgl32.Vec3{6.0, 1.15, -7.8})
	s.SetShaderTexture("plastic")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("wood")
	s.shapes.DrawBoxMesh()

	s.SetTransformations(mgl32.Vec3{1.4, 4.4, 0.1}, 0, 0, 90.0, mgl32.Vec3{6.0, 1.15, -18.1})
	s.SetShaderTexture("plastic")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("wood")
	s.shapes.DrawBoxMesh()

	s.SetTransformations(mgl32.Vec3{1.4, 3.0, 0.1}, 0, 90.0, 90.0, mgl32.Vec3{2.0, 1.15, -13.1})
	s.SetShaderTexture("plastic")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("wood")
	s.shapes.DrawBoxMesh()

	s.SetTransformations(mgl32.Vec3{1.4, 3.0, 0.1}, 0, 90.0, 90.0, mgl32.Vec3{10.0, 1.15, -13.1})
	s.SetShaderTexture("plastic")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("wood")
	s.shapes.DrawBoxMesh()

	// wallet logo disc
	s.SetTransformations(mgl32.Vec3{1.0, 0.1, 1.0}, 0, 0, 0, mgl32.Vec3{8.4, 1.8, -9.5})
	s.SetShaderTexture("silver")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("metal")
	s.shapes.DrawCylinderMesh()

	// watch face
	s.SetTransformations(mgl32.Vec3{1.7, 0.3, 1.7}, 0, 0, 0, mgl32.Vec3{-13.0, 0.5, 2.0})
	s.SetShaderTexture("silver")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("metal")
	s.shapes.DrawCylinderMesh()

	// watch face border, slightly wider and lower
	s.SetTransformations(mgl32.Vec3{1.8, 0.3, 1.8}, 0, 0, 0, mgl32.Vec3{-13.0, 0.4, 2.0})
	s.SetShaderTexture("metal2")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("metal")
	s.shapes.DrawCylinderMesh()

	// crown button on the side
	s.SetTransformations(mgl32.Vec3{0.2, 0.1, 0.2}, 0, 90.0, 90.0, mgl32.Vec3{-12.85, 0.54, 3.8})
	s.SetShaderTexture("plastic")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("plastic")
	s.shapes.DrawSphereMesh()

	// band links either side of the face
	s.SetTransformations(mgl32.Vec3{1.2, 0.3, 2.2}, 0, 0, 0, mgl32.Vec3{-15.0, 0.52, 2.0})
	s.SetShaderTexture("silver")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("metal")
	s.shapes.DrawBoxMesh()

	s.SetTransformations(mgl32.Vec3{1.2, 0.3, 2.2}, 0, 0, 0, mgl32.Vec3{-11.0, 0.52, 2.0})
	s.SetShaderTexture("silver")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("metal")
	s.shapes.DrawBoxMesh()

	// band laid flat across the table
	s.SetTransformations(mgl32.Vec3{10.5, 0.3, 1.8}, 0, 0, 0, mgl32.Vec3{-13.0, 0.2, 2.0})
	s.SetShaderTexture("silver")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("metal")
	s.shapes.DrawBoxMesh()

	// minute hand
	s.SetTransformations(mgl32.Vec3{0.1, 0.1, 1.2}, 0, 30.0, 0, mgl32.Vec3{-13.2, 0.9, 1.8})
	s.SetShaderTexture("plastic")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("plastic")
	s.shapes.DrawBoxMesh()

	// hour hand
	s.SetTransformations(mgl32.Vec3{0.1, 0.1, 0.7}, 0, 0, 0, mgl32.Vec3{-12.9, 0.9, 1.9})
	s.SetShaderTexture("plastic")
	s.SetTextureUVScale(0.1, 0.1)
	s.SetShaderMaterial("plastic")
	s.shapes.DrawBoxMesh()
}
