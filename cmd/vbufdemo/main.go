// Command vbufdemo fills a vertex buffer with a colored polygon and prints
// its device layout and contents.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/vbuf"
	"golang.org/x/image/math/f32"
)

func main() {
	var (
		sides   = flag.Int("sides", 3, "number of polygon vertices")
		packed  = flag.Bool("packed", false, "store each attribute in its own region")
		verbose = flag.Bool("v", false, "log buffer locking at debug level")
	)
	flag.Parse()

	if *verbose {
		vbuf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	format, err := vbuf.NewFormat(*sides, !*packed,
		vbuf.Attribute{Name: "POSITION", NumComponents: 3, Type: vbuf.Float32},
		vbuf.Attribute{Name: "COLOR", NumComponents: 4, Type: vbuf.Uint8, Normalize: true},
	)
	if err != nil {
		log.Fatalf("Failed to build format: %v", err)
	}
	vb, err := vbuf.NewBuffer(format, vbuf.WithLabel("polygon"))
	if err != nil {
		log.Fatalf("Failed to create buffer: %v", err)
	}

	// Positions one vertex at a time, colors in one bulk copy.
	err = vbuf.Edit(vb, func(it *vbuf.Iterator) error {
		pos := it.Element("POSITION")
		for ; !it.Done(); it.Next() {
			angle := 2 * math.Pi * float64(it.Vertex()) / float64(*sides)
			pos.SetVec3(f32.Vec3{float32(0.9 * math.Cos(angle)), float32(0.9 * math.Sin(angle)), 0})
		}
		colors := make([]uint8, 0, *sides*4)
		for i := range *sides {
			colors = append(colors, palette[i%len(palette)][:]...)
		}
		return vbuf.WriteData(it, "COLOR", colors, *sides)
	})
	if err != nil {
		log.Fatalf("Failed to fill buffer: %v", err)
	}

	printLayouts(format)

	data, err := vb.Bytes()
	if err != nil {
		log.Fatalf("Failed to read buffer: %v", err)
	}
	fmt.Printf("%s: %d bytes, version %d\n", vb.Label(), vb.Size(), vb.Version())
	fmt.Print(hex.Dump(data))
}

var palette = [][4]uint8{
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 255, 0, 255},
}

func printLayouts(format *vbuf.VertexFormat) {
	offsets := format.BufferOffsets()
	for i, l := range format.BufferLayouts() {
		fmt.Printf("slot %d: offset %d stride %d\n", i, offsets[i], l.ArrayStride)
		for _, a := range l.Attributes {
			fmt.Printf("  @location(%d) %v at +%d\n", a.ShaderLocation, a.Format, a.Offset)
		}
	}
}
