package menustore

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/talkincode/fudofusion/internal/domain"
	"go.uber.org/zap"
)

// DefaultFilename is the backing file used when nothing else is configured
const DefaultFilename = "menu_items.csv"

// Header is the column row written at the top of the backing file
var Header = []string{"Item ID", "Name", "Category", "Price", "Description"}

var (
	ErrMenuNotFound = errors.New("menu file not found")
	ErrDuplicateID  = errors.New("duplicate item id")
)

// menuRow is the on-disk shape of a menu item. Id and price stay text so a
// blank cell is an error and prices round-trip exactly as written.
type menuRow struct {
	ID          string `csv:"Item ID"`
	Name        string `csv:"Name"`
	Category    string `csv:"Category"`
	Price       string `csv:"Price"`
	Description string `csv:"Description"`
}

// CSVStore keeps the menu in a comma separated file
type CSVStore struct {
	path string
}

// NewCSVStore creates a store backed by the file at path
func NewCSVStore(path string) *CSVStore {
	if path == "" {
		path = DefaultFilename
	}
	return &CSVStore{path: path}
}

func (s *CSVStore) Path() string {
	return s.path
}

// Load reads all rows. A zero-byte or header-only file yields an empty menu;
// a missing file yields ErrMenuNotFound. Any malformed row fails the whole load.
func (s *CSVStore) Load(ctx context.Context) ([]domain.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(ErrMenuNotFound, "load %s", s.path)
		}
		return nil, errors.Wrapf(err, "load %s", s.path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		zap.L().Info("menu file is empty", zap.String("path", s.path))
		return []domain.MenuItem{}, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	var rows []*menuRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, errors.Wrapf(err, "parse %s", s.path)
	}

	items := make([]domain.MenuItem, 0, len(rows))
	for i, row := range rows {
		item, err := row.toItem()
		if err != nil {
			// +2: header line and 1-based numbering
			return nil, errors.Wrapf(err, "parse %s line %d", s.path, i+2)
		}
		items = append(items, item)
	}

	zap.L().Info("menu loaded", zap.String("path", s.path), zap.Int("items", len(items)))
	return items, nil
}

// LoadByCategory is Load followed by grouping on the upper-cased category.
// Order lines are keyed by id, so two rows sharing an id fail the load here.
func (s *CSVStore) LoadByCategory(ctx context.Context) (*domain.CategoryMenu, error) {
	items, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[int64]int, len(items))
	for i, item := range items {
		if first, ok := seen[item.ID]; ok {
			return nil, errors.Wrapf(ErrDuplicateID, "load %s: id %d on lines %d and %d", s.path, item.ID, first+2, i+2)
		}
		seen[item.ID] = i
	}
	return domain.NewCategoryMenu(items), nil
}

// Save truncates the file and writes the header plus one row per item.
// The write is not atomic: a crash mid-write can leave a partial file.
func (s *CSVStore) Save(ctx context.Context, items []domain.MenuItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "save %s", s.path)
		}
	}

	file, err := os.Create(s.path)
	if err != nil {
		return errors.Wrapf(err, "save %s", s.path)
	}
	defer file.Close()

	writer := gocsv.NewSafeCSVWriter(csv.NewWriter(file))
	if len(items) == 0 {
		if err := writer.Write(Header); err != nil {
			return errors.Wrapf(err, "save %s", s.path)
		}
	} else {
		rows := make([]*menuRow, 0, len(items))
		for _, item := range items {
			rows = append(rows, fromItem(item))
		}
		if err := gocsv.MarshalCSV(&rows, writer); err != nil {
			return errors.Wrapf(err, "save %s", s.path)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrapf(err, "save %s", s.path)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "save %s", s.path)
	}

	zap.L().Info("menu saved", zap.String("path", s.path), zap.Int("items", len(items)))
	return nil
}

func (r *menuRow) toItem() (domain.MenuItem, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.ID), 10, 64)
	if err != nil {
		return domain.MenuItem{}, errors.Wrapf(err, "invalid item id %q", r.ID)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(r.Price))
	if err != nil {
		return domain.MenuItem{}, errors.Wrapf(err, "invalid price %q", r.Price)
	}
	item := domain.MenuItem{
		ID:          id,
		Name:        r.Name,
		Category:    r.Category,
		Price:       price,
		Description: r.Description,
	}
	if err := item.Validate(); err != nil {
		return domain.MenuItem{}, err
	}
	return item, nil
}

func fromItem(item domain.MenuItem) *menuRow {
	return &menuRow{
		ID:          strconv.FormatInt(item.ID, 10),
		Name:        item.Name,
		Category:    item.Category,
		Price:       item.Price.String(),
		Description: item.Description,
	}
}
