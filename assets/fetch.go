package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/matanlurey/swu/api"
	"github.com/matanlurey/swu/log"
)

// DefaultWorkers is how many downloads run at once unless configured
// otherwise.
const DefaultWorkers = 16

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

// Summary tallies one download run.
type Summary struct {
	Fetched int
	Skipped int
	Failed  int
	Errors  []error
}

// Fetch downloads every asset under root using the given number of
// concurrent workers. Files already on disk are left alone. A failed
// download doesn't stop the others; failures are tallied in the summary and
// the caller decides whether they sink the run.
func Fetch(ctx context.Context, client *http.Client, root string, assets []Asset, workers int) Summary {
	if workers < 1 {
		workers = 1
	}

	type result struct {
		asset   Asset
		skipped bool
		err     error
	}

	jobs := make(chan Asset)
	results := make(chan result, len(assets))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for asset := range jobs {
				skipped, err := fetchOne(ctx, client, root, asset)
				results <- result{asset: asset, skipped: skipped, err: err}
			}
		}()
	}

	go func() {
		for _, asset := range assets {
			jobs <- asset
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var summary Summary
	done := 0
	for r := range results {
		done++
		switch {
		case r.err != nil:
			summary.Failed++
			summary.Errors = append(summary.Errors, fmt.Errorf("%s: %w", r.asset.Path, r.err))
			log.Errorf("Couldn't fetch %s: %s", r.asset.URL, r.err)
		case r.skipped:
			summary.Skipped++
			log.Debugf("File %s already exists, keeping it", r.asset.Path)
		default:
			summary.Fetched++
			log.Infof("Fetched %s (%d/%d)", r.asset.Path, done, len(assets))
		}
	}

	return summary
}

func fetchOne(ctx context.Context, client *http.Client, root string, asset Asset) (skipped bool, err error) {
	target := filepath.Join(root, asset.Path)

	if _, err = os.Stat(target); err == nil {
		return true, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset.URL, nil)
	if err != nil {
		return false, fmt.Errorf("couldn't create request for %s: %w", asset.URL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("couldn't query %s: %w", asset.URL, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return false, api.StatusError{URL: asset.URL, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("couldn't read %s: %w", asset.URL, err)
	}

	if err = os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, fmt.Errorf("couldn't create %s: %w", filepath.Dir(target), err)
	}

	return false, writePNG(target, body)
}

// writePNG stores body at target, re-encoding to PNG first when the server
// sent some other image format.
func writePNG(target string, body []byte) error {
	if bytes.HasPrefix(body, pngHeader) {
		if err := os.WriteFile(target, body, 0o644); err != nil {
			return fmt.Errorf("couldn't write %s: %w", target, err)
		}
		return nil
	}

	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	if err := imaging.Save(img, target); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
