package session

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// FileStore persists the session snapshot as JSON at the supplied URL so a
// login survives process restarts. URLs are resolved with afs, so any scheme
// it understands (file, mem, ...) works.
type FileStore struct {
	mu    sync.RWMutex
	fs    afs.Service
	URL   string
	state snapshot
}

// NewFileStore creates a Store persisted at the given URL. A missing or
// unreadable snapshot starts the session empty.
func NewFileStore(URL string) *FileStore {
	ret := &FileStore{fs: afs.New(), URL: URL}
	_ = ret.load()
	return ret
}

func (f *FileStore) Token() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state.Token
}

func (f *FileStore) Role() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state.Role
}

func (f *FileStore) Username() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state.Username
}

func (f *FileStore) FullName() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.state.FullName != "" {
		return f.state.FullName
	}
	return f.state.Username
}

func (f *FileStore) InstructorID() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state.InstructorID
}

func (f *FileStore) UserID() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state.UserID
}

func (f *FileStore) Authenticated() bool {
	return f.Token() != ""
}

func (f *FileStore) SetAuth(auth Auth) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.merge(auth)
	return f.save()
}

func (f *FileStore) ClearAuth() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = snapshot{}
	ctx := context.Background()
	if ok, _ := f.fs.Exists(ctx, f.URL); !ok {
		return nil
	}
	return f.fs.Delete(ctx, f.URL)
}

func (f *FileStore) load() error {
	data, err := f.fs.DownloadWithURL(context.Background(), f.URL)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &f.state)
}

func (f *FileStore) save() error {
	data, err := json.Marshal(f.state)
	if err != nil {
		return err
	}
	return f.fs.Upload(context.Background(), f.URL, file.DefaultFileOsMode, bytes.NewReader(data))
}
