package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"freelance-job-tracker/internal/database"
	"freelance-job-tracker/internal/job/model"
	appErrors "freelance-job-tracker/pkg/errors"
)

type JobRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) CreateJob(ctx context.Context, job *model.Job) error {
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

func (r *JobRepository) ListByAccount(ctx context.Context, accountID uint) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.DB.WithContext(ctx).
		Where("account_id = ?", accountID).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// GetByID resolves ownership two-hop through the owning account with an
// explicit join, never a denormalized user id on the job row. Absent and
// not-owned fail identically.
func (r *JobRepository) GetByID(ctx context.Context, jobID, userID uint) (*model.Job, error) {
	var job model.Job
	err := r.db.DB.WithContext(ctx).
		Joins("JOIN accounts ON accounts.id = jobs.account_id").
		Where("jobs.id = ? AND accounts.user_id = ?", jobID, userID).
		First(&job).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

func (r *JobRepository) UpdateJob(ctx context.Context, job *model.Job) error {
	job.UpdatedAt = time.Now()

	// Save rewrites the whole row; ownership has already been re-resolved by
	// the service through GetByID.
	if err := r.db.DB.WithContext(ctx).Save(job).Error; err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

func (r *JobRepository) DeleteJob(ctx context.Context, job *model.Job) error {
	result := r.db.DB.WithContext(ctx).Delete(&model.Job{}, job.ID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrJobNotFound
	}
	return nil
}
