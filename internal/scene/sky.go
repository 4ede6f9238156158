package scene

import rl "github.com/gen2brain/raylib-go/raylib"

const skyboxScale = 1000

// sky is the GPU side of the skybox: a unit cube textured with a cubemap, drawn around the camera.
type sky struct {
	tex    rl.Texture2D
	mesh   rl.Mesh
	mtl    rl.Material
	ready  bool // mesh and material exist
	loaded bool // a cubemap is bound
}

// replace binds tex, unloading the previous cubemap. The mesh and material are created on first use.
func (k *sky) replace(tex rl.Texture2D) {
	if !k.ready {
		k.mesh = rl.GenMeshCube(1, 1, 1)
		k.mtl = rl.LoadMaterialDefault()
		k.ready = true
	}
	if k.loaded {
		rl.UnloadTexture(k.tex)
	}
	k.tex = tex
	rl.SetMaterialTexture(&k.mtl, rl.MapCubemap, k.tex)
	k.loaded = true
}

// draw renders the cube centred on pos with depth writes and culling off so it stays behind everything.
func (k *sky) draw(pos rl.Vector3) {
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	scale := rl.MatrixScale(skyboxScale, skyboxScale, skyboxScale)
	trans := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)
	rl.DrawMesh(k.mesh, k.mtl, rl.MatrixMultiply(scale, trans))
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

func (k *sky) unload() {
	if k.loaded {
		rl.UnloadTexture(k.tex)
		k.loaded = false
	}
	if k.ready {
		rl.UnloadMesh(&k.mesh)
		k.ready = false
	}
}
