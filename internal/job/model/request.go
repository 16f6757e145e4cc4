package model

type CreateJobRequest struct {
	ClientName                string       `json:"clientName" validate:"required,min=1,max=255"`
	ClientCountry             string       `json:"clientCountry" validate:"required,min=1,max=255"`
	ClientRating              float64      `json:"clientRating" validate:"min=0,max=5"`
	JobDescription            string       `json:"jobDescription" validate:"required"`
	PaymentVerificationStatus string       `json:"paymentVerificationStatus" validate:"required,payment_status"`
	ProposalWriting           string       `json:"proposalWriting" validate:"required"`
	Attachments               []Attachment `json:"attachments" validate:"omitempty,dive"`
	HasReply                  *bool        `json:"hasReply"`
	ReplyDate                 *string      `json:"replyDate"`
	ReplyMessage              *string      `json:"replyMessage"`
}

// UpdateJobRequest carries a partial patch; nil fields are left untouched.
type UpdateJobRequest struct {
	ClientName                *string       `json:"clientName" validate:"omitempty,min=1,max=255"`
	ClientCountry             *string       `json:"clientCountry" validate:"omitempty,min=1,max=255"`
	ClientRating              *float64      `json:"clientRating" validate:"omitempty,min=0,max=5"`
	JobDescription            *string       `json:"jobDescription" validate:"omitempty"`
	PaymentVerificationStatus *string       `json:"paymentVerificationStatus" validate:"omitempty,payment_status"`
	ProposalWriting           *string       `json:"proposalWriting" validate:"omitempty"`
	Attachments               *[]Attachment `json:"attachments" validate:"omitempty,dive"`
	HasReply                  *bool         `json:"hasReply"`
	ReplyDate                 *string       `json:"replyDate"`
	ReplyMessage              *string       `json:"replyMessage"`
}
