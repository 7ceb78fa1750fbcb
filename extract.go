package supaplex

import (
	"context"
	"errors"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// PaletteFilename is the name of the shared palette resource looked for
// alongside the graphics files.
const PaletteFilename = "PALETTES.DAT"

const extractWorkers = 4

// Status classifies the outcome of one file in a batch extraction.
type Status int

const (
	// StatusExtracted means the resource was decoded and written out.
	StatusExtracted Status = iota

	// StatusSkipped means the filename is not a known resource.
	StatusSkipped

	// StatusFailed means the resource could not be decoded or written.
	StatusFailed
)

// Result records the outcome for a single .DAT file. Err is set only for
// StatusFailed and Output only for StatusExtracted.
type Result struct {
	Name   string
	Output string
	Status Status
	Err    error
}

func (s *Supaplex) findFiles(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			// The biggest known resource is under 128 KB
			if info.Size() > 1<<20 {
				return nil
			}

			if !strings.EqualFold(filepath.Ext(file), ".dat") {
				return nil
			}

			// The shared palette file is an input, not a resource
			if strings.EqualFold(filepath.Base(file), PaletteFilename) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (s *Supaplex) extractFile(file string, palettes []byte, outDir string) Result {
	name := strings.ToUpper(filepath.Base(file))

	if _, err := LookupSpec(name); err != nil {
		s.logger.Printf("Skipping unknown resource \"%s\"\n", file)
		return Result{Name: name, Status: StatusSkipped}
	}

	f, err := os.Open(file)
	if err != nil {
		return Result{Name: name, Status: StatusFailed, Err: err}
	}

	m, err := Decode(name, f, palettes)
	f.Close()
	if err != nil {
		s.logger.Printf("Failed to decode \"%s\": %v\n", file, err)
		return Result{Name: name, Status: StatusFailed, Err: err}
	}

	output := filepath.Join(outDir, strings.ToLower(strings.TrimSuffix(name, ".DAT"))+".png")

	g, err := os.Create(output)
	if err != nil {
		return Result{Name: name, Status: StatusFailed, Err: err}
	}

	if err := png.Encode(g, m); err != nil {
		g.Close()
		return Result{Name: name, Status: StatusFailed, Err: err}
	}

	if err := g.Close(); err != nil {
		return Result{Name: name, Status: StatusFailed, Err: err}
	}

	return Result{Name: name, Output: output, Status: StatusExtracted}
}

func (s *Supaplex) readPalettes(dir, file string) ([]byte, error) {
	if file == "" {
		file = filepath.Join(dir, PaletteFilename)
		if _, err := os.Stat(file); err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, err
		}
	}
	return ioutil.ReadFile(file)
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Extract decodes every known .DAT resource beneath dir and writes each one
// as a PNG sprite sheet into outDir, which is created if necessary.
// palettesFile overrides the PALETTES.DAT otherwise looked for in dir; with
// neither present the fallback palettes are used. Failures are local to one
// resource and reported in the returned results, sorted by name; only setup
// and filesystem walk problems abort the whole batch.
func (s *Supaplex) Extract(dir, palettesFile, outDir string) ([]Result, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	palettes, err := s.readPalettes(dir, palettesFile)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	files, errc, err := s.findFiles(ctx, dir)
	if err != nil {
		return nil, err
	}

	results := make(chan Result)

	var wg sync.WaitGroup
	wg.Add(extractWorkers)
	for i := 0; i < extractWorkers; i++ {
		go func() {
			defer wg.Done()
			for file := range files {
				select {
				case results <- s.extractFile(file, palettes, outDir):
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []Result
	for r := range results {
		all = append(all, r)
	}

	if err := waitForPipeline(errc); err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	return all, nil
}
