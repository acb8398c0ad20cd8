// Command ink is a headless driver for the ink engine. It replays one of
// the library's canonical scenarios against a fresh Engine and reports the
// resulting state, or in -batch mode replays the same scenario across many
// independent engines concurrently — useful as a smoke test and as a
// throughput benchmark for the stroke pipeline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/inkstream/ink"
	"github.com/inkstream/ink/utils"
)

const helpBanner = `
┬┌┐┌┬┌─
││││├┴┐
┴┘└┘┴ ┴

A variable-width ink stroke engine.

`

// maxWorkers bounds concurrent batch replay, mirroring the library's
// general aversion to unbounded goroutine fan-out.
const maxWorkers = 20

var (
	scenario  = flag.Int("scenario", 1, "canonical scenario to run (1-6)")
	batch     = flag.Bool("batch", false, "replay the scenario across many engines concurrently")
	count     = flag.Int("n", 100, "number of engines to replay in -batch mode")
	workers   = flag.Int("conc", runtime.NumCPU(), "number of concurrent workers in -batch mode")
	loadURL   = flag.String("load-url", "", "fetch a saved document from a URL and report its state instead of running a scenario")
	colorFlag = flag.Bool("color", isTerminal(), "colorize status output")
	penColor  = flag.String("pen-color", "#000000ff", "hex color (#rrggbbaa) for the pen brush used by scenarios 1, 2 and 5")
)

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpBanner)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *loadURL != "" {
		runLoadURL(*loadURL)
		return
	}

	if *batch {
		runBatch(*scenario, *count, *workers)
		return
	}

	e := ink.NewEngine(1920, 1080)
	if err := runScenario(e, *scenario); err != nil {
		log.Fatal(decorate(fmt.Sprintf("scenario %d failed: %v", *scenario, err), utils.ErrorMessage))
	}

	state := e.State()
	fmt.Println(decorate(fmt.Sprintf("⚡ INK ⇢ scenario %d complete ✔", *scenario), utils.SuccessMessage))
	fmt.Printf("strokes=%d can_undo=%v can_redo=%v layers=%d history=%d\n",
		state.StrokeCount, state.CanUndo, state.CanRedo, state.LayerCount, state.HistorySize)
}

// penBrush builds a pen brush whose color comes from -pen-color, parsed the
// way the library's CLI chrome parses any other hex color.
func penBrush() ink.Brush {
	c := utils.HexToRGBA(*penColor)
	b := ink.PenBrush()
	b.Color = ink.Color{
		R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255, A: float32(c.A) / 255,
	}
	return b
}

func decorate(s string, t utils.MessageType) string {
	if !*colorFlag {
		return s
	}
	return utils.DecorateText(s, t)
}

// runScenario replays one of the six canonical sessions against e.
func runScenario(e *ink.Engine, n int) error {
	switch n {
	case 1:
		e.SetBrush(penBrush())
		e.BeginStroke(100, 100, 0.5, 0)
		e.AddPoint(110, 105, 0.6, .016)
		e.AddPoint(120, 110, 0.7, .032)
		e.AddPoint(130, 108, 0.6, .048)
		e.EndStroke()
	case 2:
		if err := runScenario(e, 1); err != nil {
			return err
		}
		e.Undo()
		e.Redo()
	case 3:
		e.SetBrush(ink.PenBrush())
		e.BeginStroke(10, 10, 0.5, 0)
		e.AddPoint(20, 10, 0.5, .05)
		e.AddPoint(30, 10, 0.5, .1)
		e.EndStroke()
		e.SetBrush(ink.EraserBrush(20))
		e.BeginStroke(15, 10, 0.5, 0.1)
		e.AddPoint(25, 10, 0.5, 0.116)
		e.EndStroke()
	case 4:
		e.Zoom(2.0, 960, 540)
	case 5:
		if err := runScenario(e, 1); err != nil {
			return err
		}
		data, err := e.Save()
		if err != nil {
			return err
		}
		*e = *ink.NewEngine(800, 600)
		if err := e.Load(data); err != nil {
			return err
		}
	case 6:
		e.SetHistoryLimit(3)
		e.SetBrush(ink.PenBrush())
		for i := 0; i < 5; i++ {
			x := float64(10 * i)
			e.BeginStroke(x, 10, 0.5, float64(i))
			e.AddPoint(x+5, 15, 0.5, float64(i)+0.5)
			e.EndStroke()
		}
	default:
		return fmt.Errorf("unknown scenario %d", n)
	}
	return nil
}

// runBatch replays scenario n across count independent engines using a
// bounded worker pool, in the shape of the library's directory-walking
// concurrent file processor.
func runBatch(n, count, workerCount int) {
	if workerCount <= 0 || workerCount > maxWorkers {
		workerCount = utils.Min(runtime.NumCPU(), maxWorkers)
	}

	msg := fmt.Sprintf("%s %s",
		decorate("⚡ INK", utils.StatusMessage),
		decorate(fmt.Sprintf("⇢ replaying scenario %d across %d engines...", n, count), utils.DefaultMessage),
	)
	spinner := utils.NewSpinner(msg, time.Millisecond*80, *colorFlag)
	spinner.Start()

	jobs := make(chan int)
	type result struct {
		strokes int
		err     error
	}
	results := make(chan result)

	var wg sync.WaitGroup
	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func() {
			defer wg.Done()
			for range jobs {
				e := ink.NewEngine(1920, 1080)
				err := runScenario(e, n)
				results <- result{strokes: e.State().StrokeCount, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < count; i++ {
			jobs <- i
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	start := time.Now()
	total, failed := 0, 0
	for res := range results {
		total++
		if res.err != nil {
			failed++
		}
	}

	if failed == 0 {
		spinner.StopMsg = fmt.Sprintf("%s %s\n", decorate("⚡ INK", utils.StatusMessage), decorate("⇢ batch complete ✔", utils.SuccessMessage))
	} else {
		spinner.StopMsg = fmt.Sprintf("%s %s\n", decorate("⚡ INK", utils.StatusMessage), decorate(fmt.Sprintf("⇢ %d of %d replays failed ✘", failed, total), utils.ErrorMessage))
	}
	spinner.Stop()

	fmt.Printf("replayed %d engines with %d workers in %s (%d failed)\n",
		total, workerCount, utils.FormatTime(time.Since(start)), failed)
}

// runLoadURL fetches a saved document from a URL and reports its state,
// exercising utils.FetchDocument without touching the filesystem.
func runLoadURL(uri string) {
	if !utils.IsValidURL(uri) {
		log.Fatal(decorate(fmt.Sprintf("not a valid URL: %s", uri), utils.ErrorMessage))
	}

	data, err := utils.FetchDocument(uri)
	if err != nil {
		log.Fatal(decorate(fmt.Sprintf("failed to fetch document: %v", err), utils.ErrorMessage))
	}

	e := ink.NewEngine(0, 0)
	if err := e.Load(string(data)); err != nil {
		log.Fatal(decorate(fmt.Sprintf("failed to load document: %v", err), utils.ErrorMessage))
	}

	state := e.State()
	fmt.Println(decorate("⚡ INK ⇢ document loaded ✔", utils.SuccessMessage))
	fmt.Printf("canvas=%gx%g strokes=%d layers=%d\n", e.Width, e.Height, state.StrokeCount, state.LayerCount)
}
