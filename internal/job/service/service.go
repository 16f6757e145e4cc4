package service

import (
	"context"

	"github.com/google/uuid"

	accountRepo "freelance-job-tracker/internal/account/repository"
	"freelance-job-tracker/internal/job/model"
	"freelance-job-tracker/internal/job/repository"
	"freelance-job-tracker/internal/job/validator"
	appErrors "freelance-job-tracker/pkg/errors"
)

type JobService struct {
	repo     *repository.JobRepository
	accounts *accountRepo.AccountRepository
}

func NewService(repo *repository.JobRepository, accounts *accountRepo.AccountRepository) *JobService {
	return &JobService{
		repo:     repo,
		accounts: accounts,
	}
}

// Create verifies the caller owns the target account before persisting.
func (s *JobService) Create(ctx context.Context, accountID, userID uint, request *model.CreateJobRequest) (*model.Job, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	account, err := s.accounts.GetByID(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}

	job := &model.Job{
		ClientName:                request.ClientName,
		ClientCountry:             request.ClientCountry,
		ClientRating:              request.ClientRating,
		JobDescription:            request.JobDescription,
		PaymentVerificationStatus: model.PaymentStatus(request.PaymentVerificationStatus),
		ProposalWriting:           request.ProposalWriting,
		Attachments:               withAttachmentIDs(request.Attachments),
		HasReply:                  request.HasReply,
		ReplyDate:                 request.ReplyDate,
		ReplyMessage:              request.ReplyMessage,
		AccountID:                 account.ID,
	}

	if err := s.repo.CreateJob(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

func (s *JobService) List(ctx context.Context, accountID, userID uint) ([]model.Job, error) {
	// Account access is verified first; an unowned account fails NotFound
	// before any job row is touched.
	if _, err := s.accounts.GetByID(ctx, accountID, userID); err != nil {
		return nil, err
	}

	return s.repo.ListByAccount(ctx, accountID)
}

func (s *JobService) Get(ctx context.Context, jobID, userID uint) (*model.Job, error) {
	return s.repo.GetByID(ctx, jobID, userID)
}

// Update re-resolves the two-hop ownership chain, then merges only the
// fields present in the patch.
func (s *JobService) Update(ctx context.Context, jobID, userID uint, request *model.UpdateJobRequest) (*model.Job, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	job, err := s.repo.GetByID(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}

	if request.ClientName != nil {
		job.ClientName = *request.ClientName
	}
	if request.ClientCountry != nil {
		job.ClientCountry = *request.ClientCountry
	}
	if request.ClientRating != nil {
		job.ClientRating = *request.ClientRating
	}
	if request.JobDescription != nil {
		job.JobDescription = *request.JobDescription
	}
	if request.PaymentVerificationStatus != nil {
		job.PaymentVerificationStatus = model.PaymentStatus(*request.PaymentVerificationStatus)
	}
	if request.ProposalWriting != nil {
		job.ProposalWriting = *request.ProposalWriting
	}
	if request.Attachments != nil {
		job.Attachments = withAttachmentIDs(*request.Attachments)
	}
	if request.HasReply != nil {
		job.HasReply = request.HasReply
	}
	if request.ReplyDate != nil {
		job.ReplyDate = request.ReplyDate
	}
	if request.ReplyMessage != nil {
		job.ReplyMessage = request.ReplyMessage
	}

	if err := s.repo.UpdateJob(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

func (s *JobService) Delete(ctx context.Context, jobID, userID uint) error {
	job, err := s.repo.GetByID(ctx, jobID, userID)
	if err != nil {
		return err
	}

	return s.repo.DeleteJob(ctx, job)
}

func withAttachmentIDs(attachments []model.Attachment) []model.Attachment {
	for i := range attachments {
		if attachments[i].ID == "" {
			attachments[i].ID = uuid.New().String()
		}
	}
	return attachments
}
