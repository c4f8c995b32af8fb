package datastore

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/EngineerKamesh/crisprview/shared/charts"
)

// FilesystemDatastore indexes the chart images found directly inside an
// assets directory.
type FilesystemDatastore struct {
	dir string

	mu      sync.RWMutex
	samples []string
	crisprs []string
	images  map[string][]charts.Image
}

func NewFilesystemDatastore(dir string) (*FilesystemDatastore, error) {
	fs := &FilesystemDatastore{dir: dir}
	if err := fs.Refresh(); err != nil {
		return nil, err
	}
	return fs, nil
}

func imageKey(sample, crisprName string) string {
	return sample + "\x00" + crisprName
}

// Refresh rescans the assets directory.
func (fs *FilesystemDatastore) Refresh() error {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return fmt.Errorf("read assets directory %s: %w", fs.dir, err)
	}

	sampleSet := make(map[string]struct{})
	crisprSet := make(map[string]struct{})
	images := make(map[string][]charts.Image)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		img, ok := charts.ParseImageName(entry.Name())
		if !ok {
			continue
		}
		sampleSet[img.Sample] = struct{}{}
		crisprSet[img.CrisprName] = struct{}{}
		key := imageKey(img.Sample, img.CrisprName)
		images[key] = append(images[key], img)
	}

	samples := sortedKeys(sampleSet)
	crisprs := sortedKeys(crisprSet)

	fs.mu.Lock()
	fs.samples = samples
	fs.crisprs = crisprs
	fs.images = images
	fs.mu.Unlock()

	slog.Debug("indexed chart images", "dir", fs.dir, "samples", len(samples), "crispr_names", len(crisprs))
	return nil
}

func (fs *FilesystemDatastore) Samples() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return append([]string(nil), fs.samples...)
}

func (fs *FilesystemDatastore) CrisprNames() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return append([]string(nil), fs.crisprs...)
}

func (fs *FilesystemDatastore) HasCrisprName(crisprName string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	i := sort.SearchStrings(fs.crisprs, crisprName)
	return i < len(fs.crisprs) && fs.crisprs[i] == crisprName
}

// SamplesWithCharts returns the sorted samples that have at least one chart
// for crisprName.
func (fs *FilesystemDatastore) SamplesWithCharts(crisprName string) []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	var samples []string
	for _, sample := range fs.samples {
		if len(fs.images[imageKey(sample, crisprName)]) > 0 {
			samples = append(samples, sample)
		}
	}
	return samples
}

// Charts returns the images of one sample and CRISPR target, ordered by
// kind and then extension.
func (fs *FilesystemDatastore) Charts(sample, crisprName string) []charts.Image {
	fs.mu.RLock()
	found := append([]charts.Image(nil), fs.images[imageKey(sample, crisprName)]...)
	fs.mu.RUnlock()

	rank := make(map[charts.Kind]int, len(charts.AllKinds))
	for i, k := range charts.AllKinds {
		rank[k] = i
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].Kind != found[j].Kind {
			return rank[found[i].Kind] < rank[found[j].Kind]
		}
		return found[i].Extension < found[j].Extension
	})
	return found
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
