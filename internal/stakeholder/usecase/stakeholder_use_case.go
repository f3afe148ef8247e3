package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"garmentsync/internal/domain"
	"garmentsync/internal/dto"
	"garmentsync/internal/events"
	"garmentsync/internal/notification"
	"garmentsync/internal/repository"
	"garmentsync/internal/validation"
)

type StakeholderRepository interface {
	repository.StakeholderRepository
	FindOrderByID(ctx context.Context, id string) (*domain.Order, error)
}

type InvitationSender interface {
	Send(ctx context.Context, to string, content notification.Content) error
}

type ActivityRecorder interface {
	Record(ctx context.Context, eventType events.Type, orderID string, payload interface{})
}

// InviteOptions are shared by single and bulk invites.
type InviteOptions struct {
	Role        domain.StakeholderRole
	Permissions domain.Permission
	Message     string
}

type StakeholderUseCase struct {
	repo      StakeholderRepository
	sender    InvitationSender
	activity  ActivityRecorder
	templates notification.Templates
	logger    *zap.Logger
}

func NewStakeholderUseCase(
	repo StakeholderRepository,
	sender InvitationSender,
	activity ActivityRecorder,
	templates notification.Templates,
	logger *zap.Logger,
) *StakeholderUseCase {
	return &StakeholderUseCase{
		repo:      repo,
		sender:    sender,
		activity:  activity,
		templates: templates,
		logger:    logger,
	}
}

// Invite adds one stakeholder and emails the invitation. A failed delivery
// leaves the stakeholder in place and is reported through InvitationSent.
func (uc *StakeholderUseCase) Invite(ctx context.Context, orderID, name, email string, opts InviteOptions) (*dto.InviteResponse, error) {
	order, err := uc.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	created, err := uc.add(ctx, order, name, email, opts)
	if err != nil {
		return nil, err
	}
	sendErr := uc.sendInvitation(ctx, order, created, opts.Message)
	return &dto.InviteResponse{Stakeholder: created, InvitationSent: sendErr == nil}, nil
}

// BulkInvite processes raw, a list of addresses separated by commas or
// newlines, one entry at a time and in input order. Nothing is rolled back:
// an entry that was stored but not notified stays stored.
func (uc *StakeholderUseCase) BulkInvite(ctx context.Context, orderID, raw string, opts InviteOptions) (*dto.BulkInviteResult, error) {
	order, err := uc.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	result := &dto.BulkInviteResult{Results: []dto.BulkInviteEntry{}}
	for _, address := range SplitAddresses(raw) {
		entry := dto.BulkInviteEntry{Email: address}

		if !validation.IsEmail(address) {
			entry.Status = dto.BulkInviteInvalid
			entry.Reason = "invalid email address"
			result.Results = append(result.Results, entry)
			continue
		}

		exists, err := uc.hasStakeholder(ctx, orderID, address)
		if err != nil {
			return nil, err
		}
		if exists {
			entry.Status = dto.BulkInviteExists
			entry.Reason = "already a stakeholder on this order"
			result.Results = append(result.Results, entry)
			continue
		}

		created, err := uc.add(ctx, order, domain.DisplayNameFromEmail(address), address, opts)
		if err != nil {
			entry.Status = dto.BulkInviteError
			entry.Reason = "could not save stakeholder"
			uc.logger.Error("bulk invite: storing stakeholder failed", zap.String("orderId", orderID), zap.Error(err))
			result.Results = append(result.Results, entry)
			continue
		}

		result.Added++
		entry.Stakeholder = created
		if sendErr := uc.sendInvitation(ctx, order, created, opts.Message); sendErr != nil {
			entry.Status = dto.BulkInviteError
			entry.Reason = sendErr.Error()
		} else {
			entry.Status = dto.BulkInviteSuccess
			result.Notified++
		}
		result.Results = append(result.Results, entry)
	}

	result.Total = len(result.Results)
	uc.logger.Info("bulk invite finished",
		zap.String("orderId", orderID),
		zap.Int("total", result.Total),
		zap.Int("added", result.Added),
		zap.Int("notified", result.Notified),
	)
	return result, nil
}

func (uc *StakeholderUseCase) List(ctx context.Context, orderID string) ([]domain.Stakeholder, error) {
	if _, err := uc.repo.FindOrderByID(ctx, orderID); err != nil {
		return nil, err
	}
	return uc.repo.ListStakeholdersByOrder(ctx, orderID)
}

// Remove deletes a stakeholder and reports whether it existed.
func (uc *StakeholderUseCase) Remove(ctx context.Context, id string) (bool, error) {
	existing, err := uc.repo.FindStakeholderByID(ctx, id)
	if err != nil {
		return false, err
	}

	deleted, err := uc.repo.DeleteStakeholder(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	uc.activity.Record(ctx, events.StakeholderRemoved, existing.OrderID, existing)
	return true, nil
}

func (uc *StakeholderUseCase) UpdatePermissions(ctx context.Context, id string, permissions domain.Permission) (*domain.Stakeholder, error) {
	updated, err := uc.repo.UpdateStakeholderPermissions(ctx, id, permissions)
	if err != nil {
		return nil, err
	}

	uc.activity.Record(ctx, events.StakeholderPermissionsChanged, updated.OrderID, updated)
	return updated, nil
}

func (uc *StakeholderUseCase) add(ctx context.Context, order *domain.Order, name, email string, opts InviteOptions) (*domain.Stakeholder, error) {
	created, err := uc.repo.CreateStakeholder(ctx, domain.Stakeholder{
		OrderID:     order.ID,
		Name:        name,
		Email:       email,
		Role:        opts.Role,
		Permissions: opts.Permissions,
	})
	if err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, events.StakeholderInvited, order.ID, created)
	return created, nil
}

func (uc *StakeholderUseCase) sendInvitation(ctx context.Context, order *domain.Order, st *domain.Stakeholder, message string) error {
	err := uc.sender.Send(ctx, st.Email, uc.templates.Invitation(*order, *st, message))
	if err != nil {
		uc.logger.Warn("invitation not delivered",
			zap.String("orderId", order.ID),
			zap.String("stakeholderId", st.ID),
			zap.Error(err),
		)
	}
	return err
}

// hasStakeholder compares addresses exactly, without case folding.
func (uc *StakeholderUseCase) hasStakeholder(ctx context.Context, orderID, email string) (bool, error) {
	existing, err := uc.repo.ListStakeholdersByOrder(ctx, orderID)
	if err != nil {
		return false, err
	}
	for _, st := range existing {
		if st.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// SplitAddresses splits raw on commas and line breaks, trims each entry and
// drops empty ones.
func SplitAddresses(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
