// Command suggestive subdivides triangle meshes and reports which vertices
// lie on suggestive contours for a given eye position.
package main

import (
	"log/slog"

	"cogentcore.org/core/cli"
	suggestive "github.com/frippiat/SuggestiveContours"
)

func main() {
	suggestive.SetLogger(slog.Default())

	opts := cli.DefaultOptions("suggestive", "Suggestive analyzes triangle meshes for suggestive contours.")
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{
			Func: Analyze,
			Name: "analyze",
			Doc:  "analyze loads a mesh, subdivides it and reports its curvature and suggestive contour vertices.",
			Root: true,
		},
		&cli.Cmd[*Config]{
			Func: Subdivide,
			Name: "subdivide",
			Doc:  "subdivide applies Loop subdivision to a mesh and saves the result.",
		},
		&cli.Cmd[*Config]{
			Func: Watch,
			Name: "watch",
			Doc:  "watch runs analyze again every time the mesh file changes.",
		},
	)
}
