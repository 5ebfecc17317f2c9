package session

import (
	"log"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage keys used across the app. Each value is an opaque string or a
// JSON-serialized snapshot written by the auth stores.
const (
	KeyAdminToken   = "coin_token"
	KeyAdminAuth    = "coin_auth"
	KeyStudentToken = "student_token"
	KeyStudentUser  = "student_user"
)

// Storage is the durable client-side key-value store backing session state.
// A missing or unreadable key is absence, never an error.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

type Entry struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string
}

// SQLiteStorage persists entries to a local sqlite file so sessions survive
// process restarts.
type SQLiteStorage struct {
	db *gorm.DB
}

func Open(path string) (*SQLiteStorage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Get(key string) (string, bool) {
	var e Entry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		return "", false
	}
	return e.Value, true
}

func (s *SQLiteStorage) Set(key, value string) {
	e := Entry{Key: key, Value: value}
	if err := s.db.Save(&e).Error; err != nil {
		log.Printf("session: write %q failed: %v", key, err)
	}
}

func (s *SQLiteStorage) Delete(key string) {
	s.db.Delete(&Entry{}, "key = ?", key)
}

// MemoryStorage is an in-process Storage used by tests.
type MemoryStorage struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemory() *MemoryStorage {
	return &MemoryStorage{entries: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}

func (s *MemoryStorage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}
