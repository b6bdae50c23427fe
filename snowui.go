package snowui

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/snowui/element"
	"github.com/dshills/snowui/internal/config"
	"github.com/dshills/snowui/internal/dump"
	"github.com/dshills/snowui/internal/log"
)

var logger = log.Logger("snowui")

// World is the top-level element tree handed to Launch.
type World struct {
	// Root is the tree root. Nil renders as a default Board.
	Root element.Object
}

// output receives the launch banner and tree dump.
var output io.Writer = os.Stdout

// Launch loads configuration, builds the world and prints its tree.
//
// The configured log level applies process-wide before the builder runs,
// so elements finalized inside it already log at that level. The dump
// options shape the printed tree.
func Launch(build func() World) {
	cfg := config.Get()
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		logger.Warn("ignoring configured log level", "level", cfg.Log.Level, "err", err)
	}

	var world World
	if build != nil {
		world = build()
	}
	root := world.Root
	if root == nil {
		root = element.Board{}
	}

	opts := dump.Options{
		Color:    cfg.Dump.Color,
		MaxDepth: cfg.Dump.MaxDepth,
	}
	fmt.Fprintln(output, "Launching snowui with world:")
	fmt.Fprint(output, dump.Render(root, opts))
}
