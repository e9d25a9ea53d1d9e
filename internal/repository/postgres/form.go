package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgarciab/formspace/internal/domain"
	"github.com/jackc/pgx/v5"
)

// FormRepository persists the form aggregate across four tables: forms,
// form_sections, questions and question_options. Save reconciles the whole
// tree; FindByID loads it back ordered by display order.
type FormRepository struct {
	db *DB
}

// NewFormRepository creates a new form repository
func NewFormRepository(db *DB) *FormRepository {
	return &FormRepository{db: db}
}

const formColumns = `id, workspace_id, title, description, status, published_at, created_at, updated_at`

// FindByID retrieves a form with its full section, question and option tree
func (r *FormRepository) FindByID(ctx context.Context, id int64) (*domain.Form, error) {
	query := `SELECT ` + formColumns + ` FROM forms WHERE id = $1`

	var form domain.Form
	err := r.db.conn(ctx).QueryRow(ctx, query, id).Scan(
		&form.ID,
		&form.WorkspaceID,
		&form.Title,
		&form.Description,
		&form.Status,
		&form.PublishedAt,
		&form.CreatedAt,
		&form.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	if err := r.loadTree(ctx, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

// FindByWorkspaceID retrieves the form roots of a workspace. Section trees
// are loaded per form through FindByID.
func (r *FormRepository) FindByWorkspaceID(ctx context.Context, workspaceID int64) ([]domain.Form, error) {
	query := `SELECT ` + formColumns + ` FROM forms WHERE workspace_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.conn(ctx).Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}
	defer rows.Close()

	var forms []domain.Form
	for rows.Next() {
		var form domain.Form
		if err := rows.Scan(
			&form.ID,
			&form.WorkspaceID,
			&form.Title,
			&form.Description,
			&form.Status,
			&form.PublishedAt,
			&form.CreatedAt,
			&form.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan form: %w", err)
		}
		form.Sections = []domain.FormSection{}
		forms = append(forms, form)
	}
	return forms, rows.Err()
}

func (r *FormRepository) loadTree(ctx context.Context, form *domain.Form) error {
	conn := r.db.conn(ctx)
	form.Sections = []domain.FormSection{}

	sectionQuery := `
		SELECT id, form_id, title, description, display_order, created_at, updated_at
		FROM form_sections
		WHERE form_id = $1
		ORDER BY display_order, id
	`
	rows, err := conn.Query(ctx, sectionQuery, form.ID)
	if err != nil {
		return fmt.Errorf("failed to load sections: %w", err)
	}
	sectionIndex := make(map[int64]int)
	for rows.Next() {
		var section domain.FormSection
		if err := rows.Scan(
			&section.ID,
			&section.FormID,
			&section.Title,
			&section.Description,
			&section.DisplayOrder,
			&section.CreatedAt,
			&section.UpdatedAt,
		); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan section: %w", err)
		}
		section.Questions = []domain.Question{}
		form.Sections = append(form.Sections, section)
		sectionIndex[section.ID] = len(form.Sections) - 1
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to load sections: %w", err)
	}

	questionQuery := `
		SELECT q.id, q.section_id, q.text, q.description, q.type, q.display_order, q.required,
		       q.placeholder, q.help_text, q.validation_pattern, q.validation_message,
		       q.min_length, q.max_length, q.min_value, q.max_value, q.default_value,
		       q.created_at, q.updated_at
		FROM questions q
		INNER JOIN form_sections s ON q.section_id = s.id
		WHERE s.form_id = $1
		ORDER BY q.display_order, q.id
	`
	rows, err = conn.Query(ctx, questionQuery, form.ID)
	if err != nil {
		return fmt.Errorf("failed to load questions: %w", err)
	}
	questionLoc := make(map[int64][2]int)
	for rows.Next() {
		var question domain.Question
		if err := rows.Scan(
			&question.ID,
			&question.SectionID,
			&question.Text,
			&question.Description,
			&question.Type,
			&question.DisplayOrder,
			&question.Required,
			&question.Placeholder,
			&question.HelpText,
			&question.ValidationPattern,
			&question.ValidationMessage,
			&question.MinLength,
			&question.MaxLength,
			&question.MinValue,
			&question.MaxValue,
			&question.DefaultValue,
			&question.CreatedAt,
			&question.UpdatedAt,
		); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan question: %w", err)
		}
		question.Options = nil
		si, ok := sectionIndex[question.SectionID]
		if !ok {
			continue
		}
		form.Sections[si].Questions = append(form.Sections[si].Questions, question)
		questionLoc[question.ID] = [2]int{si, len(form.Sections[si].Questions) - 1}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to load questions: %w", err)
	}

	optionQuery := `
		SELECT o.id, o.question_id, o.label, o.value, o.weight, o.display_order, o.metadata
		FROM question_options o
		INNER JOIN questions q ON o.question_id = q.id
		INNER JOIN form_sections s ON q.section_id = s.id
		WHERE s.form_id = $1
		ORDER BY o.display_order, o.id
	`
	rows, err = conn.Query(ctx, optionQuery, form.ID)
	if err != nil {
		return fmt.Errorf("failed to load options: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var option domain.QuestionOption
		if err := rows.Scan(
			&option.ID,
			&option.QuestionID,
			&option.Label,
			&option.Value,
			&option.Weight,
			&option.DisplayOrder,
			&option.Metadata,
		); err != nil {
			return fmt.Errorf("failed to scan option: %w", err)
		}
		loc, ok := questionLoc[option.QuestionID]
		if !ok {
			continue
		}
		question := &form.Sections[loc[0]].Questions[loc[1]]
		question.Options = append(question.Options, option)
	}
	return rows.Err()
}

// Save writes the root row and reconciles the child tables against the
// in-memory tree: new children are inserted, surviving ones updated, rows
// absent from the aggregate deleted. Generated IDs are written back.
func (r *FormRepository) Save(ctx context.Context, form *domain.Form) error {
	conn := r.db.conn(ctx)

	if form.ID == 0 {
		query := `
			INSERT INTO forms (workspace_id, title, description, status, published_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`
		err := conn.QueryRow(ctx, query,
			form.WorkspaceID,
			form.Title,
			form.Description,
			form.Status,
			form.PublishedAt,
			form.CreatedAt,
			form.UpdatedAt,
		).Scan(&form.ID)
		if err != nil {
			return fmt.Errorf("failed to insert form: %w", err)
		}
	} else {
		query := `
			UPDATE forms
			SET title = $2, description = $3, status = $4, published_at = $5, updated_at = $6
			WHERE id = $1
		`
		_, err := conn.Exec(ctx, query,
			form.ID,
			form.Title,
			form.Description,
			form.Status,
			form.PublishedAt,
			form.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to update form: %w", err)
		}
	}

	return r.saveTree(ctx, form)
}

func (r *FormRepository) saveTree(ctx context.Context, form *domain.Form) error {
	conn := r.db.conn(ctx)

	keptSections := make([]int64, 0, len(form.Sections))
	for si := range form.Sections {
		section := &form.Sections[si]
		section.FormID = form.ID

		if section.ID == 0 {
			query := `
				INSERT INTO form_sections (form_id, title, description, display_order, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id
			`
			err := conn.QueryRow(ctx, query,
				section.FormID,
				section.Title,
				section.Description,
				section.DisplayOrder,
				section.CreatedAt,
				section.UpdatedAt,
			).Scan(&section.ID)
			if err != nil {
				return fmt.Errorf("failed to insert section: %w", err)
			}
		} else {
			query := `
				UPDATE form_sections
				SET title = $2, description = $3, display_order = $4, updated_at = $5
				WHERE id = $1
			`
			_, err := conn.Exec(ctx, query,
				section.ID,
				section.Title,
				section.Description,
				section.DisplayOrder,
				section.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to update section: %w", err)
			}
		}
		keptSections = append(keptSections, section.ID)

		if err := r.saveQuestions(ctx, section); err != nil {
			return err
		}
	}

	// questions and options cascade through their foreign keys
	query := `DELETE FROM form_sections WHERE form_id = $1 AND NOT (id = ANY($2))`
	if _, err := conn.Exec(ctx, query, form.ID, keptSections); err != nil {
		return fmt.Errorf("failed to prune sections: %w", err)
	}
	return nil
}

func (r *FormRepository) saveQuestions(ctx context.Context, section *domain.FormSection) error {
	conn := r.db.conn(ctx)

	keptQuestions := make([]int64, 0, len(section.Questions))
	for qi := range section.Questions {
		question := &section.Questions[qi]
		question.SectionID = section.ID

		if question.ID == 0 {
			query := `
				INSERT INTO questions (section_id, text, description, type, display_order, required,
					placeholder, help_text, validation_pattern, validation_message,
					min_length, max_length, min_value, max_value, default_value,
					created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
				RETURNING id
			`
			err := conn.QueryRow(ctx, query,
				question.SectionID,
				question.Text,
				question.Description,
				question.Type,
				question.DisplayOrder,
				question.Required,
				question.Placeholder,
				question.HelpText,
				question.ValidationPattern,
				question.ValidationMessage,
				question.MinLength,
				question.MaxLength,
				question.MinValue,
				question.MaxValue,
				question.DefaultValue,
				question.CreatedAt,
				question.UpdatedAt,
			).Scan(&question.ID)
			if err != nil {
				return fmt.Errorf("failed to insert question: %w", err)
			}
		} else {
			query := `
				UPDATE questions
				SET text = $2, description = $3, type = $4, display_order = $5, required = $6,
					placeholder = $7, help_text = $8, validation_pattern = $9, validation_message = $10,
					min_length = $11, max_length = $12, min_value = $13, max_value = $14,
					default_value = $15, updated_at = $16
				WHERE id = $1
			`
			_, err := conn.Exec(ctx, query,
				question.ID,
				question.Text,
				question.Description,
				question.Type,
				question.DisplayOrder,
				question.Required,
				question.Placeholder,
				question.HelpText,
				question.ValidationPattern,
				question.ValidationMessage,
				question.MinLength,
				question.MaxLength,
				question.MinValue,
				question.MaxValue,
				question.DefaultValue,
				question.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to update question: %w", err)
			}
		}
		keptQuestions = append(keptQuestions, question.ID)

		if err := r.saveOptions(ctx, question); err != nil {
			return err
		}
	}

	query := `DELETE FROM questions WHERE section_id = $1 AND NOT (id = ANY($2))`
	if _, err := conn.Exec(ctx, query, section.ID, keptQuestions); err != nil {
		return fmt.Errorf("failed to prune questions: %w", err)
	}
	return nil
}

func (r *FormRepository) saveOptions(ctx context.Context, question *domain.Question) error {
	conn := r.db.conn(ctx)

	keptOptions := make([]int64, 0, len(question.Options))
	for oi := range question.Options {
		option := &question.Options[oi]
		option.QuestionID = question.ID

		if option.ID == 0 {
			query := `
				INSERT INTO question_options (question_id, label, value, weight, display_order, metadata)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id
			`
			err := conn.QueryRow(ctx, query,
				option.QuestionID,
				option.Label,
				option.Value,
				option.Weight,
				option.DisplayOrder,
				option.Metadata,
			).Scan(&option.ID)
			if err != nil {
				return fmt.Errorf("failed to insert option: %w", err)
			}
		} else {
			query := `
				UPDATE question_options
				SET label = $2, value = $3, weight = $4, display_order = $5, metadata = $6
				WHERE id = $1
			`
			_, err := conn.Exec(ctx, query,
				option.ID,
				option.Label,
				option.Value,
				option.Weight,
				option.DisplayOrder,
				option.Metadata,
			)
			if err != nil {
				return fmt.Errorf("failed to update option: %w", err)
			}
		}
		keptOptions = append(keptOptions, option.ID)
	}

	query := `DELETE FROM question_options WHERE question_id = $1 AND NOT (id = ANY($2))`
	if _, err := conn.Exec(ctx, query, question.ID, keptOptions); err != nil {
		return fmt.Errorf("failed to prune options: %w", err)
	}
	return nil
}

// Delete removes a form and, through cascading foreign keys, its tree
func (r *FormRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM forms WHERE id = $1`

	if _, err := r.db.conn(ctx).Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete form: %w", err)
	}
	return nil
}
