package repository

import (
	"database/sql"

	"github.com/primeestate/primeestate/internal/domain"
)

const projectColumns = `id, title, description, location, units, starting_price,
	completion_date, status, progress_percentage, image`

// ProjectRepository handles project persistence
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project and assigns its id
func (r *ProjectRepository) Create(p *domain.Project) error {
	res, err := r.db.Exec(`
		INSERT INTO projects (title, description, location, units, starting_price,
			completion_date, status, progress_percentage, image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Title, p.Description, p.Location, p.Units, p.StartingPrice,
		p.CompletionDate, p.Status, p.ProgressPercentage, p.Image)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	return err
}

// Get retrieves a project by ID. Returns nil when not found.
func (r *ProjectRepository) Get(id int64) (*domain.Project, error) {
	p := &domain.Project{}
	err := r.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id).
		Scan(&p.ID, &p.Title, &p.Description, &p.Location, &p.Units,
			&p.StartingPrice, &p.CompletionDate, &p.Status,
			&p.ProgressPercentage, &p.Image)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List retrieves all projects
func (r *ProjectRepository) List() ([]domain.Project, error) {
	rows, err := r.db.Query(`SELECT ` + projectColumns + ` FROM projects ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p := domain.Project{}
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Location,
			&p.Units, &p.StartingPrice, &p.CompletionDate, &p.Status,
			&p.ProgressPercentage, &p.Image); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Count returns the number of projects
func (r *ProjectRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count)
	return count, err
}
