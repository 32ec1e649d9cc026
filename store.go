package fundpool

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/etnz/fundpool/date"
)

// Store is the mutation boundary of the pool. Every write is a whole
// mutation of the persisted record set; readers always see a consistent
// snapshot. Concurrent writers are last-write-wins, there is no lock.
type Store interface {
	Load() (*Records, error)
	AddPartner(name string) error
	AddContribution(c Contribution) error
	DeleteContribution(id string) error
	CorrectIssuePrice(id string, price Money) error
	AddTrade(t Trade) error
	DeleteTrade(id string) error
	SetPrices(p PriceOverrides) error
	AppendSnapshot(s AssetSnapshot) error
	ClearSnapshots() error
	// Subscribe registers a callback fired after every successful
	// mutation touching the given record type. The returned func
	// cancels the subscription.
	Subscribe(rec RecordType, onChange func()) (cancel func())
}

// FileStore persists the whole record set in a single JSONL file,
// human-readable and git-friendly. Each mutation rewrites the file
// through a temp file and rename, so a failed write leaves the previous
// state intact.
type FileStore struct {
	path string

	mu   sync.Mutex
	subs map[RecordType]map[int]func()
	next int
}

// NewFileStore opens a store over the given file. The file may not
// exist yet; it is created on the first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, subs: make(map[RecordType]map[int]func())}
}

// Load reads the record set, an empty one when the file does not exist.
func (s *FileStore) Load() (*Records, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return &Records{Prices: make(PriceOverrides)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", s.path, err)
	}
	defer f.Close()
	records, err := DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", s.path, err)
	}
	return records, nil
}

// mutate loads, applies fn and writes the result back atomically.
func (s *FileStore) mutate(rec RecordType, fn func(*Records) error) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(records); err != nil {
		return err
	}
	if err := s.save(records); err != nil {
		return err
	}
	s.notify(rec)
	return nil
}

func (s *FileStore) save(records *Records) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("cannot create temp file: %w", err)
	}
	if err := EncodeRecords(tmp, records); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot replace %q: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) AddPartner(name string) error {
	if name == "" {
		return fmt.Errorf("partner name is required")
	}
	return s.mutate(RecPartner, func(r *Records) error {
		for _, p := range r.Partners {
			if p == name {
				return fmt.Errorf("partner %q already declared", name)
			}
		}
		r.Partners = append(r.Partners, name)
		return nil
	})
}

func (s *FileStore) AddContribution(c Contribution) error {
	if c.Partner == "" {
		return fmt.Errorf("contribution needs a partner")
	}
	if !c.Amount.IsPositive() {
		return fmt.Errorf("contribution amount must be positive, got %v", c.Amount)
	}
	if c.Date.IsZero() {
		c.Date = date.Today()
	}
	return s.mutate(RecContribute, func(r *Records) error {
		r.Contributions = append(r.Contributions, c)
		return nil
	})
}

func (s *FileStore) DeleteContribution(id string) error {
	return s.mutate(RecContribute, func(r *Records) error {
		for i, c := range r.Contributions {
			if c.ID == id {
				r.Contributions = append(r.Contributions[:i], r.Contributions[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("no contribution with id %q", id)
	})
}

// CorrectIssuePrice is the one sanctioned edit of a contribution after
// the fact: an admin pinning the NAV-per-unit it was issued at. Any
// previously recorded unit count is dropped so it re-derives from the
// corrected price.
func (s *FileStore) CorrectIssuePrice(id string, price Money) error {
	if !price.IsPositive() {
		return fmt.Errorf("issue price must be positive, got %v", price)
	}
	return s.mutate(RecContribute, func(r *Records) error {
		for i := range r.Contributions {
			if r.Contributions[i].ID == id {
				r.Contributions[i].IssuePrice = price
				r.Contributions[i].Units = Quantity{}
				return nil
			}
		}
		return fmt.Errorf("no contribution with id %q", id)
	})
}

func (s *FileStore) AddTrade(t Trade) error {
	if t.Symbol == "" {
		return fmt.Errorf("trade needs a symbol")
	}
	if t.Symbol == FXTicker {
		return fmt.Errorf("%s is the exchange rate, not a tradable symbol", FXTicker)
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("trade quantity must be positive, got %v", t.Quantity)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("trade price cannot be negative, got %v", t.Price)
	}
	if t.Date.IsZero() {
		t.Date = date.Today()
	}
	return s.mutate(RecTrade, func(r *Records) error {
		r.Trades = append(r.Trades, t)
		return nil
	})
}

func (s *FileStore) DeleteTrade(id string) error {
	return s.mutate(RecTrade, func(r *Records) error {
		for i, t := range r.Trades {
			if t.ID == id {
				r.Trades = append(r.Trades[:i], r.Trades[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("no trade with id %q", id)
	})
}

// SetPrices merges the given overrides into the stored ones. The
// FXTicker pseudo-symbol updates the exchange rate.
func (s *FileStore) SetPrices(p PriceOverrides) error {
	return s.mutate(RecPrice, func(r *Records) error {
		if r.Prices == nil {
			r.Prices = make(PriceOverrides)
		}
		r.Prices = r.Prices.Merge(p)
		return nil
	})
}

func (s *FileStore) AppendSnapshot(snapshot AssetSnapshot) error {
	return s.mutate(RecSnapshot, func(r *Records) error {
		r.History = append(r.History, snapshot)
		return nil
	})
}

func (s *FileStore) ClearSnapshots() error {
	return s.mutate(RecSnapshot, func(r *Records) error {
		r.History = nil
		return nil
	})
}

func (s *FileStore) Subscribe(rec RecordType, onChange func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs[rec] == nil {
		s.subs[rec] = make(map[int]func())
	}
	id := s.next
	s.next++
	s.subs[rec][id] = onChange
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[rec], id)
	}
}

func (s *FileStore) notify(rec RecordType) {
	s.mu.Lock()
	callbacks := make([]func(), 0, len(s.subs[rec]))
	for _, fn := range s.subs[rec] {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
}
