package scenes

import (
	"embed"
	"image/color"
	"io/fs"
	"os"
)

//go:embed shaders/*.vs shaders/*.fs
var shaderFiles embed.FS

//go:embed textures/*.png
var textureFiles embed.FS

var (
	placeholderA = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	placeholderB = color.RGBA{R: 32, G: 32, B: 32, A: 255}
)

// ShaderFS returns the shader sources. A non-empty dir replaces the embedded
// copies with the files on disk.
func ShaderFS(dir string) fs.FS {
	return assetFS(shaderFiles, "shaders", dir)
}

// TextureFS returns the texture images, from dir when it is set.
func TextureFS(dir string) fs.FS {
	return assetFS(textureFiles, "textures", dir)
}

func assetFS(embedded embed.FS, root, dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(embedded, root)
	if err != nil {
		// root is a literal matching the embed pattern
		panic(err)
	}
	return sub
}
