package catalog

import (
	"errors"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/tokoaplikasi/avatar-api/internal/config"
	"github.com/tokoaplikasi/avatar-api/internal/model/avatar"
)

var (
	ErrInvalidSkip  = errors.New("skip must be zero or greater")
	ErrInvalidLimit = errors.New("limit out of range")
	ErrInvalidCount = errors.New("count must be at least 1")
	ErrNotFound     = errors.New("avatar not found")
)

// maxSampleSize caps how many records a single random request may draw.
const maxSampleSize = 50

// Record is the response shape of a catalog entry wherever one is emitted.
type Record struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageurl"`
	Filename string `json:"filename"`
}

// SampleAvatar is the abbreviated record embedded in Stats.
type SampleAvatar struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Stats aggregates collection-level information.
type Stats struct {
	TotalAvatars  int            `json:"total_avatars"`
	BaseURL       string         `json:"base_url"`
	FileTypes     []string       `json:"file_types"`
	SampleAvatars []SampleAvatar `json:"sample_avatars"`
}

// Service answers read-only queries over the avatar catalog.
type Service struct {
	store avatar.Store
	list  config.ListConfig
}

// NewService wires the query service to the catalog store.
func NewService(store avatar.Store, list config.ListConfig) *Service {
	return &Service{store: store, list: list}
}

// DefaultLimit reports the page size used when a request names none.
func (s *Service) DefaultLimit() int {
	return s.list.DefaultLimit
}

// List returns the slice [skip, skip+limit) of the catalog, optionally
// filtered beforehand to names containing search (case-insensitive,
// original order preserved). Requests past the end yield an empty list.
func (s *Service) List(skip, limit int, search string) ([]Record, error) {
	if skip < 0 {
		return nil, ErrInvalidSkip
	}
	if limit < 1 || limit > s.list.MaxLimit {
		return nil, ErrInvalidLimit
	}

	avatars := s.store.All()
	if search != "" {
		needle := strings.ToLower(search)
		filtered := avatars[:0]
		for _, a := range avatars {
			if strings.Contains(strings.ToLower(a.Name), needle) {
				filtered = append(filtered, a)
			}
		}
		avatars = filtered
	}

	if skip > len(avatars) {
		skip = len(avatars)
	}
	end := skip + limit
	if end > len(avatars) {
		end = len(avatars)
	}

	return newRecords(avatars[skip:end]), nil
}

// GetByName resolves a name by case-insensitive exact match first, then by
// the first catalog-order partial match. Neither matching yields ErrNotFound.
func (s *Service) GetByName(name string) (Record, error) {
	if a, ok := s.store.FindByName(name); ok {
		return newRecord(a), nil
	}

	needle := strings.ToLower(name)
	for _, a := range s.store.All() {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			return newRecord(a), nil
		}
	}

	return Record{}, ErrNotFound
}

// RandomSample draws min(count, catalog size) distinct records uniformly
// without replacement, in random order. Counts above 50 are clamped; counts
// below 1 are rejected.
func (s *Service) RandomSample(count int) ([]Record, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if count > maxSampleSize {
		count = maxSampleSize
	}

	avatars := s.store.All()
	if count > len(avatars) {
		count = len(avatars)
	}

	selected := make([]avatar.Avatar, 0, count)
	for _, idx := range rand.Perm(len(avatars))[:count] {
		selected = append(selected, avatars[idx])
	}
	return newRecords(selected), nil
}

// Stats summarizes the catalog: size, base URL, the distinct file extensions
// present, and the first five records as a representative sample.
func (s *Service) Stats() Stats {
	avatars := s.store.All()

	seen := make(map[string]struct{})
	fileTypes := make([]string, 0, 1)
	for _, a := range avatars {
		ext := a.Extension()
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		fileTypes = append(fileTypes, ext)
	}
	sort.Strings(fileTypes)

	sampleSize := 5
	if sampleSize > len(avatars) {
		sampleSize = len(avatars)
	}
	samples := make([]SampleAvatar, 0, sampleSize)
	for _, a := range avatars[:sampleSize] {
		samples = append(samples, SampleAvatar{Name: a.Name, URL: a.ImageURL})
	}

	return Stats{
		TotalAvatars:  len(avatars),
		BaseURL:       avatar.BaseURL,
		FileTypes:     fileTypes,
		SampleAvatars: samples,
	}
}

func newRecord(a avatar.Avatar) Record {
	return Record{Name: a.Name, ImageURL: a.ImageURL, Filename: a.Filename()}
}

func newRecords(avatars []avatar.Avatar) []Record {
	records := make([]Record, 0, len(avatars))
	for _, a := range avatars {
		records = append(records, newRecord(a))
	}
	return records
}
