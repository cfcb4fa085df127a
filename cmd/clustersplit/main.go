// Command clustersplit splits a plant image into one image per contour cluster.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	cimage "cluster-splitter/internal/image"
	"cluster-splitter/internal/mask"
	"cluster-splitter/internal/project"
	"cluster-splitter/internal/split"
	"cluster-splitter/internal/version"

	"github.com/davecgh/go-spew/spew"
)

func main() {
	clustersPath := flag.String("clusters", "", "Path to cluster JSON (contours and groups)")
	imagePath := flag.String("image", "", "Source image (overrides the image in the cluster file)")
	outDir := flag.String("outdir", "", "Directory for cluster images; empty only plans the paths")
	base := flag.String("base", "", "Base name for outputs, used as given (default: source image file name without extension)")
	timestamp := flag.Bool("timestamp", false, "Use the current time as base name")
	namesPath := flag.String("names", "", "Text file with one name per line, top-to-bottom left-to-right")
	debug := flag.String("debug", "none", "Debug output: none, print or plot")
	debugDir := flag.String("debugdir", "", "Directory for debug print images")
	fill := flag.String("fill", "white", "Background for masked-out pixels: white or black")
	step := flag.Int("step", 0, "Initial pipeline step counter")
	dump := flag.Bool("dump", false, "Dump the full result")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if *clustersPath == "" {
		fmt.Println("Usage: clustersplit -clusters <file.json> [-image <path>] [-outdir <dir>] [-names <file>] [-debug none|print|plot]")
		os.Exit(1)
	}

	debugMode, err := split.ParseDebugMode(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fillMode, err := mask.ParseFill(*fill)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	clusters, err := project.Load(*clustersPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load clusters: %v\n", err)
		os.Exit(1)
	}

	src := *imagePath
	if src == "" {
		src = clusters.GetImagePath(*clustersPath)
	}
	if src == "" {
		fmt.Fprintln(os.Stderr, "No source image: pass -image or set \"image\" in the cluster file")
		os.Exit(1)
	}

	baseName, err := resolveBaseName(*base, *timestamp, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	img, err := cimage.Load(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	defer img.Close()

	log.Printf("Loaded %s: %dx%d pixels, %d contours in %d clusters",
		src, img.Cols(), img.Rows(), len(clusters.Contours), len(clusters.Groups))

	splitter := split.New()
	splitter.Writer = cimage.FileWriter{MakeDirs: true}

	result, err := splitter.Split(*step, img, clusters.Groups, clusters.Contours, split.Options{
		OutputDir: *outDir,
		BaseName:  baseName,
		NameFile:  *namesPath,
		Debug:     debugMode,
		DebugDir:  *debugDir,
		Fill:      fillMode,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Split failed: %v\n", err)
		os.Exit(1)
	}

	if *dump {
		spew.Dump(result)
	}

	for _, p := range result.Paths {
		fmt.Println(p)
	}
	log.Printf("%d of %d clusters emitted, step %d", len(result.Paths), len(result.Names), result.Step)
}
