package dto

import (
	"time"

	"github.com/tradepost/backend/internal/validation"
)

// CreatePostRequest is the payload for POST /api/v1/posts.
//
// PublishAt is optional RFC3339; a draft with a publish time in the past
// (or one that passes later) is published by the scheduler.
type CreatePostRequest struct {
	AuthorID  string     `json:"author_id" validate:"required,uuid"`
	Title     string     `json:"title" validate:"required,min=1,max=200"`
	Body      string     `json:"body" validate:"omitempty,max=50000"`
	Status    string     `json:"status" validate:"omitempty,oneof=draft published archived"`
	PublishAt *time.Time `json:"publish_at"`
}

func (r *CreatePostRequest) Validate() error {
	return validate.Struct(r)
}

// GetPostRequest identifies a post by path id.
type GetPostRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *GetPostRequest) Validate() error {
	return validate.Struct(r)
}

// ListPostsRequest carries the paging and filter query params for
// GET /api/v1/posts.
type ListPostsRequest struct {
	Limit  int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset int    `query:"offset" validate:"omitempty,gte=0"`
	Status string `query:"status" validate:"omitempty,oneof=draft published archived"`
}

func (r *ListPostsRequest) Validate() error {
	return validate.Struct(r)
}

// UpdatePostRequest is the partial-update payload for PATCH
// /api/v1/posts/:id. Nil fields are left unchanged.
type UpdatePostRequest struct {
	ID        string     `param:"id" validate:"required,uuid"`
	Title     *string    `json:"title" validate:"omitempty,max=200"`
	Body      *string    `json:"body" validate:"omitempty,max=50000"`
	Status    *string    `json:"status" validate:"omitempty,oneof=draft published archived"`
	PublishAt *time.Time `json:"publish_at"`
}

func (r *UpdatePostRequest) Validate() error {
	if r.Title == nil && r.Body == nil && r.Status == nil && r.PublishAt == nil {
		return validation.CustomValidationErrors{
			{Field: "body", Message: "at least one field must be provided"},
		}
	}

	if err := validate.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	notBlank("title", r.Title, &errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeletePostRequest identifies a post by path id.
type DeletePostRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *DeletePostRequest) Validate() error {
	return validate.Struct(r)
}
