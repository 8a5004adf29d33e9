// Command canvasdemo builds a small sample composition, exercises the
// editing pipeline (insert, drag, reorder, undo) and writes the result
// as an exported image plus a saved project record.
package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/creatorkit/canvas"
	"github.com/creatorkit/canvas/export"
	"github.com/creatorkit/canvas/gesture"
	"github.com/creatorkit/canvas/history"
	"github.com/creatorkit/canvas/project"
)

type config struct {
	StorePath string  `env:"CANVAS_STORE_PATH" envDefault:"projects.db"`
	Scale     float64 `env:"CANVAS_EXPORT_SCALE" envDefault:"1"`
	Format    string  `env:"CANVAS_EXPORT_FORMAT" envDefault:"png"`
}

func main() {
	var (
		output = flag.String("output", "composition.png", "exported image file")
		title  = flag.String("title", "Demo Composition", "project title")
	)
	flag.Parse()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	store := canvas.NewStore()
	hist := history.NewEngine(store)
	view := canvas.NewViewport(canvas.Size{Width: 1280, Height: 800})
	ctrl := gesture.NewController(store, hist, &view)

	// Compose: a background, a photo placeholder and a caption.
	bg := ctrl.InsertBackground("bg-gradient")
	photo := ctrl.InsertAsset("photo-hero")
	caption := ctrl.InsertText("Summer Campaign")

	// Move the photo with a simulated drag, then nudge the caption into
	// place below it.
	ctrl.PointerDown(gesture.Hit{Kind: gesture.HitElement, ElementID: photo.ID},
		view.CanvasToScreen(canvas.Pt(photo.X+10, photo.Y+10)), gesture.Modifiers{})
	ctrl.PointerMove(view.CanvasToScreen(canvas.Pt(210, 110)), gesture.Modifiers{})
	ctrl.PointerUp(view.CanvasToScreen(canvas.Pt(210, 110)), gesture.Modifiers{})

	store.Update(caption.ID, canvas.PositionPatch(canvas.Pt(220, 420)))

	// One reorder and one undone edit, to show history in action.
	ctrl.ReorderLayer(photo.ID, 2)
	ctrl.Flip(photo.ID, true)
	hist.Undo()

	log.Printf("composed %d elements (background %s), undo available %v",
		store.Len(), bg.ID, hist.CanUndo())

	// Export with placeholder pixels for the assets.
	assets := map[string]image.Image{
		"bg-gradient": solid(8, 6, color.NRGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}),
		"photo-hero":  solid(8, 6, color.NRGBA{R: 0xf4, G: 0xa2, B: 0x61, A: 0xff}),
	}
	data, err := export.Render(context.Background(), store.All(), assets, export.Options{
		Format: export.Format(cfg.Format),
		Scale:  cfg.Scale,
		Progress: func(done, total int) {
			log.Printf("export %d/%d", done, total)
		},
	})
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *output, err)
	}
	log.Printf("exported %s (%d bytes)", *output, len(data))

	// Persist the project.
	db, err := project.Open(cfg.StorePath)
	if err != nil {
		log.Fatalf("open project store: %v", err)
	}
	defer func() { _ = db.Close() }()

	p := project.New(*title, "Summer Campaign")
	p.Snapshot(store)
	if err := db.Save(context.Background(), &p); err != nil {
		log.Fatalf("save project: %v", err)
	}
	log.Printf("saved project %s to %s", p.ID, cfg.StorePath)
}

func solid(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}
