package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/localwork/marketplace/internal/dto"
	"github.com/localwork/marketplace/internal/model"
	"github.com/localwork/marketplace/internal/repository"
)

type ContactUsecase struct {
	contacts repository.ContactSubmissionRepository
	Now      func() time.Time
}

func NewContactUsecase(repos *repository.Repositories) *ContactUsecase {
	return &ContactUsecase{contacts: repos.Contacts, Now: time.Now}
}

func (uc *ContactUsecase) Submit(ctx context.Context, form dto.ContactForm) (*model.ContactSubmission, error) {
	if ferr := form.Validate(); ferr != nil {
		return nil, ferr
	}
	now := uc.Now()
	submission := &model.ContactSubmission{
		ID:                 uuid.New(),
		SenderName:         form.SenderName,
		SenderEmail:        form.SenderEmail,
		Subject:            form.Subject,
		MessageContent:     form.MessageContent,
		SubmissionDateTime: &now,
		Status:             model.ContactStatusNew,
	}
	if err := uc.contacts.Create(ctx, submission); err != nil {
		return nil, err
	}
	slog.Info("contact submission created", "id", submission.ID)
	return submission, nil
}
