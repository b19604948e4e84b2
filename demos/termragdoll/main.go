// Termragdoll runs the stickman in a terminal. Drag joints with the mouse;
// press q or Esc to quit. Pass -rope to hang the social chain instead.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/tether"
	"github.com/phanxgames/tether/termview"
)

func main() {
	rope := flag.Bool("rope", false, "show the rope chain instead of the ragdoll")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var sim tether.Simulation
	w, h := tether.RagdollWidth, tether.RagdollHeight
	if *rope {
		sim = tether.NewRopeChain(tether.DefaultRopeConfig())
		w, h = 400, tether.RopeContainerHeight
	} else {
		sim = tether.NewRagdoll(tether.DefaultRagdollConfig())
	}

	if err := termview.Run(ctx, screen, sim, w, h); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}
