package commands

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gingerrexayers/pngme-go/internal/pngme/lib"
	"github.com/gingerrexayers/pngme-go/internal/pngme/png"
	"github.com/gingerrexayers/pngme-go/internal/pngme/types"
	"github.com/rs/zerolog/log"
)

// ScanOptions holds the configuration for the scan command.
type ScanOptions struct {
	JSON bool
}

// fileScanResult is the outcome of checking a single file in a worker.
type fileScanResult struct {
	FilePath string
	Count    int
	Payload  uint64
	Err      error
}

// findPNGFiles walks the directory tree and returns every .png file that is
// not excluded by the ignore rules.
func findPNGFiles(ig *lib.Ignorer) ([]string, error) {
	var files []string
	rootDir := ig.Root()

	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == rootDir {
			return nil
		}
		if ig.Ignored(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && strings.EqualFold(filepath.Ext(path), lib.PNGExtension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// scanFilesConcurrently parses files on a pool of goroutines and counts the
// chunks of chunkType in each.
func scanFilesConcurrently(files []string, chunkType string) []fileScanResult {
	jobs := make(chan string, len(files))
	results := make(chan fileScanResult, len(files))

	var wg sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for filePath := range jobs {
				p, err := lib.ReadPNG(filePath)
				if err != nil {
					results <- fileScanResult{FilePath: filePath, Err: err}
					continue
				}
				res := fileScanResult{FilePath: filePath}
				for _, c := range p.ChunksByType(chunkType) {
					res.Count++
					res.Payload += uint64(c.Length())
				}
				results <- res
			}
		}()
	}

	for _, file := range files {
		jobs <- file
	}
	close(jobs)

	wg.Wait()
	close(results)

	var collected []fileScanResult
	for res := range results {
		collected = append(collected, res)
	}
	return collected
}

// ScanDirectory reports which PNG files under directory carry chunks of
// chunkType. Files that fail to parse are listed as failures rather than
// stopping the scan.
func ScanDirectory(directory, chunkType string) (*types.ScanReport, error) {
	if _, err := png.ParseChunkType(chunkType); err != nil {
		return nil, fmt.Errorf("invalid chunk type: %w", err)
	}
	absDir, err := filepath.Abs(directory)
	if err != nil {
		return nil, fmt.Errorf("could not resolve absolute path for %s: %w", directory, err)
	}
	if _, err := os.Stat(absDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("target directory does not exist: %s", absDir)
	}

	ig := lib.NewIgnorer(absDir)
	files, err := findPNGFiles(ig)
	if err != nil {
		return nil, fmt.Errorf("error finding files: %w", err)
	}
	log.Debug().Str("root", ig.Root()).Int("files", len(files)).Msg("scanning")

	report := &types.ScanReport{
		Root:      ig.Root(),
		ChunkType: chunkType,
		Scanned:   len(files),
		Matches:   []types.ScanMatch{},
	}
	for _, res := range scanFilesConcurrently(files, chunkType) {
		rel, err := filepath.Rel(ig.Root(), res.FilePath)
		if err != nil {
			rel = res.FilePath
		}
		rel = filepath.ToSlash(rel)

		if res.Err != nil {
			log.Debug().Err(res.Err).Str("path", rel).Msg("skipping unreadable file")
			report.Failures = append(report.Failures, types.ScanFailure{Path: rel, Error: res.Err.Error()})
			continue
		}
		if res.Count > 0 {
			report.Matches = append(report.Matches, types.ScanMatch{Path: rel, Count: res.Count, Payload: res.Payload})
		}
	}

	sort.Slice(report.Matches, func(i, j int) bool { return report.Matches[i].Path < report.Matches[j].Path })
	sort.Slice(report.Failures, func(i, j int) bool { return report.Failures[i].Path < report.Failures[j].Path })
	return report, nil
}

// Scan is the main function for the 'scan' command.
func Scan(directory, chunkType string, opts ScanOptions) error {
	report, err := ScanDirectory(directory, chunkType)
	if err != nil {
		return err
	}

	if opts.JSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if len(report.Matches) == 0 {
		fmt.Printf("No %s chunks found in %d file(s) under \"%s\".\n", chunkType, report.Scanned, report.Root)
	} else {
		fmt.Printf("Files under \"%s\" with %s chunks:\n", report.Root, chunkType)
		fmt.Printf("%-8s %-12s %s\n", "CHUNKS", "PAYLOAD", "PATH")
		fmt.Printf("%-8s %-12s %s\n", "======", "=======", "====")
		for _, m := range report.Matches {
			fmt.Printf("%-8d %-12s %s\n", m.Count, humanize.Bytes(m.Payload), m.Path)
		}
	}
	for _, f := range report.Failures {
		fmt.Fprintf(os.Stderr, "Warning: could not read %s: %s\n", f.Path, f.Error)
	}
	return nil
}
