package repository

import (
	"database/sql"
	"strings"

	"github.com/primeestate/primeestate/internal/domain"
)

const propertyColumns = `id, title, description, price, location, type, status,
	bedrooms, bathrooms, square_feet, garage, is_featured, image`

// PropertyRepository handles property persistence
type PropertyRepository struct {
	db *DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create inserts a property and assigns its id
func (r *PropertyRepository) Create(p *domain.Property) error {
	res, err := r.db.Exec(`
		INSERT INTO properties (title, description, price, location, type, status,
			bedrooms, bathrooms, square_feet, garage, is_featured, image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Title, p.Description, p.Price, p.Location, p.Type, p.Status,
		p.Bedrooms, p.Bathrooms, p.SquareFeet, p.Garage, p.IsFeatured, p.Image)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	return err
}

// Get retrieves a property by ID. Returns nil when not found.
func (r *PropertyRepository) Get(id int64) (*domain.Property, error) {
	row := r.db.QueryRow(`SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id)
	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List retrieves all properties
func (r *PropertyRepository) List() ([]domain.Property, error) {
	return r.query(`SELECT ` + propertyColumns + ` FROM properties ORDER BY id`)
}

// ListFeatured retrieves featured properties
func (r *PropertyRepository) ListFeatured() ([]domain.Property, error) {
	return r.query(`SELECT ` + propertyColumns + ` FROM properties WHERE is_featured = 1 ORDER BY id`)
}

// ListByType retrieves properties of the given type, case-insensitively
func (r *PropertyRepository) ListByType(propertyType string) ([]domain.Property, error) {
	return r.query(`SELECT `+propertyColumns+` FROM properties WHERE type = ? COLLATE NOCASE ORDER BY id`,
		propertyType)
}

// ListByLocation retrieves properties whose location contains the given
// fragment, case-insensitively
func (r *PropertyRepository) ListByLocation(location string) ([]domain.Property, error) {
	pattern := "%" + strings.ToLower(location) + "%"
	return r.query(`SELECT `+propertyColumns+` FROM properties WHERE LOWER(location) LIKE ? ORDER BY id`,
		pattern)
}

// ListByPriceRange retrieves properties priced within [min, max].
// A max of 0 means unbounded.
func (r *PropertyRepository) ListByPriceRange(min, max int64) ([]domain.Property, error) {
	if max <= 0 {
		return r.query(`SELECT `+propertyColumns+` FROM properties WHERE price >= ? ORDER BY price`, min)
	}
	return r.query(`SELECT `+propertyColumns+` FROM properties WHERE price >= ? AND price <= ? ORDER BY price`,
		min, max)
}

// ListBySize retrieves properties whose square footage falls in [min, max].
// A max of 0 means unbounded.
func (r *PropertyRepository) ListBySize(min, max int) ([]domain.Property, error) {
	if max <= 0 {
		return r.query(`SELECT `+propertyColumns+` FROM properties WHERE square_feet >= ? ORDER BY square_feet`, min)
	}
	return r.query(`SELECT `+propertyColumns+` FROM properties WHERE square_feet >= ? AND square_feet <= ? ORDER BY square_feet`,
		min, max)
}

// Count returns the number of properties
func (r *PropertyRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM properties`).Scan(&count)
	return count, err
}

func (r *PropertyRepository) query(q string, args ...any) ([]domain.Property, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *p)
	}
	return properties, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (*domain.Property, error) {
	p := &domain.Property{}
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Location,
		&p.Type, &p.Status, &p.Bedrooms, &p.Bathrooms, &p.SquareFeet,
		&p.Garage, &p.IsFeatured, &p.Image)
	if err != nil {
		return nil, err
	}
	return p, nil
}
