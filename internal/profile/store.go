package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"
)

const storeVersion = "1.0.0"

// storeFile is the on-disk shape: an ordered list of profiles, exactly
// one of which carries isDefault. The external profile editor reads and
// writes the same JSON.
type storeFile struct {
	Version  string          `json:"version"`
	Profiles []*StyleProfile `json:"profiles"`
}

// Store persists style profiles as a JSON list on disk.
type Store struct {
	filePath string
	mutex    sync.RWMutex
	data     *storeFile
	logger   *zap.Logger
}

// NewStore loads the profile list at filePath, creating it with the
// built-in default profile when missing.
func NewStore(filePath string, logger *zap.Logger) (*Store, error) {
	s := &Store{
		filePath: filePath,
		logger:   logger,
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile directory: %w", err)
	}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to load profile store: %w", err)
	}

	return s, nil
}

func (s *Store) load() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		s.data = &storeFile{
			Version:  storeVersion,
			Profiles: []*StyleProfile{DefaultProfile()},
		}
		return s.saveUnsafe()
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read profile store: %w", err)
	}

	var sf storeFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("failed to parse profile store: %w", err)
	}

	// 确保默认规范始终存在
	hasDefault := false
	for _, p := range sf.Profiles {
		if p.IsDefault {
			hasDefault = true
			break
		}
	}
	if !hasDefault {
		sf.Profiles = append([]*StyleProfile{DefaultProfile()}, sf.Profiles...)
		s.logger.Warn("profile store had no default profile, restored built-in")
	}

	s.data = &sf
	return nil
}

func (s *Store) saveUnsafe() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile store: %w", err)
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile store: %w", err)
	}
	return os.Rename(tmpPath, s.filePath)
}

// List returns all profiles in store order.
func (s *Store) List() []*StyleProfile {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]*StyleProfile, len(s.data.Profiles))
	copy(out, s.data.Profiles)
	return out
}

// Get returns the profile with the given id.
func (s *Store) Get(id string) (*StyleProfile, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, p := range s.data.Profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("profile %q not found", id)
}

// Find resolves query against the store: exact id first, then exact
// name, then the best fuzzy name match.
func (s *Store) Find(query string) (*StyleProfile, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, p := range s.data.Profiles {
		if p.ID == query {
			return p, nil
		}
	}
	for _, p := range s.data.Profiles {
		if p.Name == query {
			return p, nil
		}
	}

	names := make([]string, len(s.data.Profiles))
	for i, p := range s.data.Profiles {
		names[i] = p.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) > 0 {
		best := ranks[0]
		for _, r := range ranks[1:] {
			if r.Distance < best.Distance {
				best = r
			}
		}
		return s.data.Profiles[best.OriginalIndex], nil
	}

	return nil, fmt.Errorf("no profile matches %q", query)
}

// Create validates and persists a new profile. An empty id is filled
// with a fresh UUID; isDefault on user profiles is rejected.
func (s *Store) Create(p *StyleProfile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.IsDefault {
		return fmt.Errorf("only the built-in profile may be marked default")
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := p.Validate(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, existing := range s.data.Profiles {
		if existing.ID == p.ID {
			return fmt.Errorf("profile %q already exists", p.ID)
		}
	}

	s.data.Profiles = append(s.data.Profiles, p)
	if err := s.saveUnsafe(); err != nil {
		return err
	}

	s.logger.Info("profile created",
		zap.String("id", p.ID),
		zap.String("name", p.Name))
	return nil
}

// Update replaces a stored profile. The default profile is immutable.
func (s *Store) Update(p *StyleProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i, existing := range s.data.Profiles {
		if existing.ID != p.ID {
			continue
		}
		if existing.IsDefault {
			return fmt.Errorf("the default profile cannot be modified")
		}
		p.CreatedAt = existing.CreatedAt
		p.UpdatedAt = time.Now()
		s.data.Profiles[i] = p
		return s.saveUnsafe()
	}
	return fmt.Errorf("profile %q not found", p.ID)
}

// Delete removes a profile by id. The default profile is non-deletable.
func (s *Store) Delete(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i, existing := range s.data.Profiles {
		if existing.ID != id {
			continue
		}
		if existing.IsDefault {
			return fmt.Errorf("the default profile cannot be deleted")
		}
		s.data.Profiles = append(s.data.Profiles[:i], s.data.Profiles[i+1:]...)
		if err := s.saveUnsafe(); err != nil {
			return err
		}
		s.logger.Info("profile deleted", zap.String("id", id))
		return nil
	}
	return fmt.Errorf("profile %q not found", id)
}
