package model

import (
	"time"

	account "freelance-job-tracker/internal/account/model"
)

// Attachment is stored inline inside the job row's JSON column; Data holds
// the base64-encoded file payload.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// Job is a proposal sent to a client, owned by exactly one account. The
// owning user is resolved through the account (two-hop), never denormalized
// onto the job row.
type Job struct {
	ID                        uint          `json:"id" gorm:"primaryKey"`
	ClientName                string        `json:"clientName" gorm:"not null"`
	ClientCountry             string        `json:"clientCountry" gorm:"not null"`
	ClientRating              float64       `json:"clientRating" gorm:"not null"`
	JobDescription            string        `json:"jobDescription" gorm:"type:text;not null"`
	PaymentVerificationStatus PaymentStatus `json:"paymentVerificationStatus" gorm:"not null"`
	ProposalWriting           string        `json:"proposalWriting" gorm:"type:text;not null"`

	Attachments []Attachment `json:"attachments,omitempty" gorm:"serializer:json"`

	HasReply     *bool   `json:"hasReply,omitempty"`
	ReplyDate    *string `json:"replyDate,omitempty"`
	ReplyMessage *string `json:"replyMessage,omitempty"`

	AccountID uint `json:"account_id" gorm:"not null;index"`

	Account *account.Account `json:"-" gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
