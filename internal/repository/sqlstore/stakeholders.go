package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"garmentsync/internal/domain"
	"garmentsync/internal/errors"
)

const stakeholderColumns = `id, order_id, name, email, role, permissions, created_at, updated_at`

func scanStakeholder(row rowScanner) (domain.Stakeholder, error) {
	var (
		st                domain.Stakeholder
		role, permissions string
		created, updated  int64
	)
	err := row.Scan(&st.ID, &st.OrderID, &st.Name, &st.Email, &role, &permissions, &created, &updated)
	if err != nil {
		return domain.Stakeholder{}, err
	}
	st.Role = domain.StakeholderRole(role)
	st.Permissions = domain.Permission(permissions)
	st.CreatedAt = fromNanos(created)
	st.UpdatedAt = fromNanos(updated)
	return st, nil
}

func (s *Store) CreateStakeholder(ctx context.Context, stakeholder domain.Stakeholder) (*domain.Stakeholder, error) {
	stakeholder = stakeholder.WithDefaults()
	stakeholder.ID = s.newID()
	stakeholder.CreatedAt = s.now()
	stakeholder.UpdatedAt = stakeholder.CreatedAt

	query := `INSERT INTO stakeholders (` + stakeholderColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		stakeholder.ID, stakeholder.OrderID, stakeholder.Name, stakeholder.Email,
		string(stakeholder.Role), string(stakeholder.Permissions),
		toNanos(stakeholder.CreatedAt), toNanos(stakeholder.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting stakeholder: %w", err)
	}

	return &stakeholder, nil
}

func (s *Store) FindStakeholderByID(ctx context.Context, id string) (*domain.Stakeholder, error) {
	query := `SELECT ` + stakeholderColumns + ` FROM stakeholders WHERE id = ?`

	st, err := scanStakeholder(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("stakeholder with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying stakeholder by id: %w", err)
	}

	return &st, nil
}

func (s *Store) ListStakeholdersByOrder(ctx context.Context, orderID string) ([]domain.Stakeholder, error) {
	query := `SELECT ` + stakeholderColumns + `
		FROM stakeholders
		WHERE order_id = ?
		ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying stakeholders: %w", err)
	}
	defer rows.Close()

	stakeholders := []domain.Stakeholder{}
	for rows.Next() {
		st, err := scanStakeholder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning stakeholder row: %w", err)
		}
		stakeholders = append(stakeholders, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stakeholder rows: %w", err)
	}

	return stakeholders, nil
}

func (s *Store) UpdateStakeholderPermissions(ctx context.Context, id string, permissions domain.Permission) (*domain.Stakeholder, error) {
	query := `UPDATE stakeholders SET permissions = ?, updated_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, string(permissions), toNanos(s.now()), id)
	if err != nil {
		return nil, fmt.Errorf("updating stakeholder permissions: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("stakeholder with id %s not found", id))
	}

	return s.FindStakeholderByID(ctx, id)
}

func (s *Store) DeleteStakeholder(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM stakeholders WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting stakeholder: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
