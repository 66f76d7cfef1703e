package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/mrmohdriyas/digital-wellness/internal"
)

// FileStorage is a document store backed by a single JSON file, keyed by
// collection name. Writes are debounced to disk by a background worker and
// flushed synchronously on Close.
type FileStorage struct {
	collections map[string][]*internal.SubmissionDocument
	mu          sync.RWMutex
	dataFile    string
	saveChan    chan struct{}
	shutdownCh  chan struct{}
	saveDelay   time.Duration
	logger      internal.Logger
}

func NewFileStorage(dataFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		collections: make(map[string][]*internal.SubmissionDocument),
		dataFile:    dataFile,
		saveChan:    make(chan struct{}, 1),
		shutdownCh:  make(chan struct{}),
		saveDelay:   500 * time.Millisecond,
		logger:      logger,
	}

	if err := s.load(); err != nil {
		logger.Errorf("storage: failed to load documents: %v", err)
		return nil, err
	}

	go s.saveWorker()

	return s, nil
}

func (s *FileStorage) load() error {
	file, err := os.Open(s.dataFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var collections map[string][]*internal.SubmissionDocument
	if err := json.NewDecoder(file).Decode(&collections); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for name, docs := range collections {
		s.collections[name] = docs
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) save() error {
	s.mu.RLock()
	collections := make(map[string][]*internal.SubmissionDocument, len(s.collections))
	for name, docs := range s.collections {
		collections[name] = append([]*internal.SubmissionDocument(nil), docs...)
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.dataFile, collections)
}

func (s *FileStorage) saveWorker() {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveChan:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := s.save(); err != nil {
				s.logger.Errorf("storage: error saving documents: %v", err)
			}
		case <-s.shutdownCh:
			return
		}
	}
}

func (s *FileStorage) Close() error {
	close(s.shutdownCh)

	// Flush pending data synchronously on shutdown
	return s.save()
}

// --- CollectionLister ---
func (s *FileStorage) ListCollections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return filterReserved(names), nil
}

// --- DocumentInserter ---
func (s *FileStorage) InsertDocument(ctx context.Context, collection string, doc *internal.SubmissionDocument) error {
	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], doc)
	s.mu.Unlock()

	select {
	case s.saveChan <- struct{}{}:
	default:
	}
	return nil
}

// --- Compile-time assertions ---
var _ CollectionLister = (*FileStorage)(nil)
var _ DocumentInserter = (*FileStorage)(nil)
