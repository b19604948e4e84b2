// Trace replays an input script against the ragdoll without a window and
// plots the hip height over time as an ASCII chart. Useful for tuning the
// posture controller: the curve should settle back to standing height after
// each drop.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/guptarohit/asciigraph"

	"github.com/phanxgames/tether"
)

const defaultScript = `{"steps": [
	{"action": "wait", "frames": 60},
	{"action": "drag", "fromX": 400, "fromY": 340, "toX": 400, "toY": 60, "frames": 30},
	{"action": "wait", "frames": 240},
	{"action": "drag", "fromX": 400, "fromY": 420, "toX": 700, "toY": 200, "frames": 12},
	{"action": "wait", "frames": 360}
]}`

func main() {
	scriptPath := flag.String("script", "", "JSON input script (defaults to a lift-and-fling)")
	height := flag.Int("height", 12, "chart height in rows")
	width := flag.Int("width", 100, "chart width in columns")
	flag.Parse()

	data := []byte(defaultScript)
	if *scriptPath != "" {
		var err error
		if data, err = os.ReadFile(*scriptPath); err != nil {
			log.Fatal(err)
		}
	}
	runner, err := tether.LoadScript(data)
	if err != nil {
		log.Fatal(err)
	}

	cfg := tether.DefaultRagdollConfig()
	doll := tether.NewRagdoll(cfg)

	var hips, idle []float64
	var drops int
	doll.SetEventSink(tether.EventSinkFunc(func(e tether.Event) {
		if e.Type == tether.EventRelease {
			drops++
		}
	}))

	sched := tether.NewScheduler(doll, tether.RendererFunc(func(f *tether.Frame) {
		// Plot height above ground so the chart reads upwards.
		hips = append(hips, cfg.Ground-f.Nodes[tether.JointHips].Pos.Y)
		v := 0.0
		if doll.Posture() == tether.PostureIdle {
			v = cfg.Posture.StandClearance
		}
		idle = append(idle, v)
	}))
	sched.SetScript(runner)

	for !runner.Done() {
		if err := sched.Tick(tether.DefaultFrameInterval.Seconds()); err != nil {
			log.Fatal(err)
		}
	}

	chart := asciigraph.PlotMany([][]float64{hips, idle},
		asciigraph.Height(*height),
		asciigraph.Width(*width),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.DarkGray),
		asciigraph.Caption("hip height (green) / idle posture (grey)"),
	)
	fmt.Println(chart)
	fmt.Printf("frames: %d  releases: %d  final hip height: %.1f\n", len(hips), drops, hips[len(hips)-1])
}
