package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"garmentsync/internal/domain"
	"garmentsync/internal/errors"
)

// Updates and comments share a row shape but live in separate tables and
// list in opposite directions.

type noteRow struct {
	id, orderID, message, authorName, authorRole string
	createdAt                                    int64
}

func scanNote(row rowScanner) (noteRow, error) {
	var n noteRow
	err := row.Scan(&n.id, &n.orderID, &n.message, &n.authorName, &n.authorRole, &n.createdAt)
	return n, err
}

func (n noteRow) toUpdate() domain.Update {
	return domain.Update{
		ID:         n.id,
		OrderID:    n.orderID,
		Message:    n.message,
		AuthorName: n.authorName,
		AuthorRole: domain.AuthorRole(n.authorRole),
		CreatedAt:  fromNanos(n.createdAt),
	}
}

func (n noteRow) toComment() domain.Comment {
	return domain.Comment{
		ID:         n.id,
		OrderID:    n.orderID,
		Message:    n.message,
		AuthorName: n.authorName,
		AuthorRole: domain.AuthorRole(n.authorRole),
		CreatedAt:  fromNanos(n.createdAt),
	}
}

func (s *Store) insertNote(ctx context.Context, table string, n noteRow) error {
	query := `INSERT INTO ` + table + ` (id, order_id, message, author_name, author_role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, n.id, n.orderID, n.message, n.authorName, n.authorRole, n.createdAt)
	return err
}

func (s *Store) findNote(ctx context.Context, table, id string) (noteRow, error) {
	query := `SELECT id, order_id, message, author_name, author_role, created_at FROM ` + table + ` WHERE id = ?`
	return scanNote(s.db.QueryRowContext(ctx, query, id))
}

func (s *Store) listNotes(ctx context.Context, table, orderID, direction string) ([]noteRow, error) {
	query := `SELECT id, order_id, message, author_name, author_role, created_at
		FROM ` + table + `
		WHERE order_id = ?
		ORDER BY created_at ` + direction + `, id ASC`

	rows, err := s.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	var notes []noteRow
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", table, err)
	}
	return notes, nil
}

func (s *Store) CreateUpdate(ctx context.Context, update domain.Update) (*domain.Update, error) {
	update.ID = s.newID()
	update.CreatedAt = s.now()

	err := s.insertNote(ctx, "order_updates", noteRow{
		id: update.ID, orderID: update.OrderID, message: update.Message,
		authorName: update.AuthorName, authorRole: string(update.AuthorRole),
		createdAt: toNanos(update.CreatedAt),
	})
	if err != nil {
		return nil, fmt.Errorf("inserting update: %w", err)
	}
	return &update, nil
}

func (s *Store) FindUpdateByID(ctx context.Context, id string) (*domain.Update, error) {
	n, err := s.findNote(ctx, "order_updates", id)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("update with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying update by id: %w", err)
	}
	update := n.toUpdate()
	return &update, nil
}

func (s *Store) ListUpdatesByOrder(ctx context.Context, orderID string) ([]domain.Update, error) {
	notes, err := s.listNotes(ctx, "order_updates", orderID, "DESC")
	if err != nil {
		return nil, err
	}
	updates := make([]domain.Update, 0, len(notes))
	for _, n := range notes {
		updates = append(updates, n.toUpdate())
	}
	return updates, nil
}

func (s *Store) CreateComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	comment.ID = s.newID()
	comment.CreatedAt = s.now()

	err := s.insertNote(ctx, "order_comments", noteRow{
		id: comment.ID, orderID: comment.OrderID, message: comment.Message,
		authorName: comment.AuthorName, authorRole: string(comment.AuthorRole),
		createdAt: toNanos(comment.CreatedAt),
	})
	if err != nil {
		return nil, fmt.Errorf("inserting comment: %w", err)
	}
	return &comment, nil
}

func (s *Store) FindCommentByID(ctx context.Context, id string) (*domain.Comment, error) {
	n, err := s.findNote(ctx, "order_comments", id)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("comment with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying comment by id: %w", err)
	}
	comment := n.toComment()
	return &comment, nil
}

func (s *Store) ListCommentsByOrder(ctx context.Context, orderID string) ([]domain.Comment, error) {
	notes, err := s.listNotes(ctx, "order_comments", orderID, "ASC")
	if err != nil {
		return nil, err
	}
	comments := make([]domain.Comment, 0, len(notes))
	for _, n := range notes {
		comments = append(comments, n.toComment())
	}
	return comments, nil
}
