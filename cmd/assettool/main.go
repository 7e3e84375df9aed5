// assettool is a CLI utility for the shader and texture assets built into
// learnopengl.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Faultbox/learnopengl/internal/engine/texture"
	"github.com/Faultbox/learnopengl/internal/scenes"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "list", "ls":
		cmdList(args)
	case "info":
		cmdInfo(args)
	case "extract", "x":
		cmdExtract(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`assettool - learnopengl asset utility

Usage:
  assettool <command> [options]

Commands:
  list [pattern]             List built-in assets (optional glob pattern)
  info <image>               Decode an image and show its size
  extract [pattern] [output] Write built-in assets to a directory

Examples:
  assettool list "*.fs"
  assettool info textures/container.png
  assettool extract "*" ./assets
  learnopengl -shaders ./assets/shaders`)
}

// asset is one built-in file, named "shaders/<file>" or "textures/<file>".
type asset struct {
	name string
	fsys fs.FS
	path string
}

func assets() ([]asset, error) {
	roots := []struct {
		prefix string
		fsys   fs.FS
	}{
		{"shaders", scenes.ShaderFS("")},
		{"textures", scenes.TextureFS("")},
	}

	var out []asset
	for _, r := range roots {
		err := fs.WalkDir(r.fsys, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			out = append(out, asset{name: path.Join(r.prefix, p), fsys: r.fsys, path: p})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}

func match(pattern, name string) bool {
	if pattern == "" {
		return true
	}
	pattern = strings.ToLower(pattern)
	matched, _ := filepath.Match(pattern, strings.ToLower(path.Base(name)))
	return matched || strings.Contains(strings.ToLower(name), pattern)
}

func mustAssets() []asset {
	list, err := assets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return list
}

func cmdList(args []string) {
	fset := flag.NewFlagSet("list", flag.ExitOnError)
	fset.Parse(args)

	pattern := fset.Arg(0)
	count := 0
	for _, a := range mustAssets() {
		if !match(pattern, a.name) {
			continue
		}
		info, err := fs.Stat(a.fsys, a.path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		fmt.Printf("%-28s %8d bytes\n", a.name, info.Size())
		count++
	}

	if pattern != "" {
		fmt.Fprintf(os.Stderr, "\n(%d files matched)\n", count)
	}
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: assettool info <image>")
		os.Exit(1)
	}
	name := args[0]

	// Built-in assets take precedence over files on disk
	data, err := readBuiltin(name)
	if err != nil {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := texture.DefaultOptions()
	img, err := texture.Decode(data, name, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := img.Bounds()
	opaque := img.Opaque()
	fmt.Printf("Image:  %s\n", name)
	fmt.Printf("Size:   %dx%d\n", b.Dx(), b.Dy())
	fmt.Printf("Bytes:  %d encoded, %d as RGBA\n", len(data), len(img.Pix))
	fmt.Printf("Opaque: %v\n", opaque)
}

func readBuiltin(name string) ([]byte, error) {
	for _, a := range mustAssets() {
		if a.name == name {
			return fs.ReadFile(a.fsys, a.path)
		}
	}
	return nil, fs.ErrNotExist
}

func cmdExtract(args []string) {
	fset := flag.NewFlagSet("extract", flag.ExitOnError)
	fset.Parse(args)

	pattern := "*"
	if fset.NArg() > 0 {
		pattern = fset.Arg(0)
	}
	outputDir := "."
	if fset.NArg() > 1 {
		outputDir = fset.Arg(1)
	}

	extracted := 0
	for _, a := range mustAssets() {
		if !match(pattern, a.name) {
			continue
		}

		data, err := fs.ReadFile(a.fsys, a.path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", a.name, err)
			continue
		}

		// Preserve the shaders/ and textures/ layout
		outputPath := filepath.Join(outputDir, filepath.FromSlash(a.name))
		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
			continue
		}

		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outputPath, err)
			continue
		}

		fmt.Printf("Extracted: %s (%d bytes)\n", outputPath, len(data))
		extracted++
	}

	fmt.Fprintf(os.Stderr, "\nExtracted %d files\n", extracted)
}
