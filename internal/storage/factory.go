package storage

import "github.com/mrmohdriyas/digital-wellness/internal"

func NewMongoRepositories(uri, database string, logger internal.Logger) (CollectionLister, DocumentInserter, error) {
	storage, err := NewMongoStorage(uri, database, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}

func NewPostgresRepositories(dsn string, logger internal.Logger) (CollectionLister, DocumentInserter, error) {
	storage, err := NewPostgresStorage(dsn, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}

func NewFileRepositories(dataFile string, logger internal.Logger) (CollectionLister, DocumentInserter, error) {
	storage, err := NewFileStorage(dataFile, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}
