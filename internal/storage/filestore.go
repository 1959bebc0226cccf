package storage

import (
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/shihankaari/coffee-ordering/internal/model"
	"github.com/shihankaari/coffee-ordering/internal/receipt"
)

const logName = "Orders.txt"

// FileStore persists checkouts under a directory: one new receipt file per
// completed order plus a shared append-only order log. Failures come back
// as *model.PersistenceError.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) WriteReceipt(r *model.Receipt) error {
	name := receipt.Filename(r.FirstName, r.LastName, r.IssuedAt)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, []byte(receipt.Format(r)), 0o644); err != nil {
		return &model.PersistenceError{Op: "write receipt", Err: err}
	}
	return nil
}

func (s *FileStore) AppendLog(o *model.Order, subtotal decimal.Decimal) error {
	path := filepath.Join(s.dir, logName)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &model.PersistenceError{Op: "open order log", Err: err}
	}
	defer f.Close()

	if _, err := f.WriteString(receipt.FormatLogEntry(o, subtotal)); err != nil {
		return &model.PersistenceError{Op: "append order log", Err: err}
	}
	return nil
}
