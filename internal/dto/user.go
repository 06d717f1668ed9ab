package dto

import (
	"github.com/tradepost/backend/internal/validation"
)

// CreateUserRequest is the payload for POST /api/v1/users.
type CreateUserRequest struct {
	Email  string `json:"email" validate:"required,email,max=320"`
	Name   string `json:"name" validate:"required,min=1,max=120"`
	Status string `json:"status" validate:"omitempty,oneof=active suspended deactivated"`
}

func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// GetUserRequest identifies a user by path id.
type GetUserRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *GetUserRequest) Validate() error {
	return validate.Struct(r)
}

// ListUsersRequest carries the paging and filter query params for
// GET /api/v1/users. A zero limit means "use the default page size".
type ListUsersRequest struct {
	Limit  int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset int    `query:"offset" validate:"omitempty,gte=0"`
	Status string `query:"status" validate:"omitempty,oneof=active suspended deactivated"`
}

func (r *ListUsersRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateUserRequest is the partial-update payload for PATCH
// /api/v1/users/:id. Nil fields are left unchanged.
type UpdateUserRequest struct {
	ID     string  `param:"id" validate:"required,uuid"`
	Email  *string `json:"email" validate:"omitempty,email,max=320"`
	Name   *string `json:"name" validate:"omitempty,max=120"`
	Status *string `json:"status" validate:"omitempty,oneof=active suspended deactivated"`
}

func (r *UpdateUserRequest) Validate() error {
	if r.Email == nil && r.Name == nil && r.Status == nil {
		return validation.CustomValidationErrors{
			{Field: "body", Message: "at least one field must be provided"},
		}
	}

	if err := validate.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	notBlank("email", r.Email, &errs)
	notBlank("name", r.Name, &errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteUserRequest identifies a user by path id.
type DeleteUserRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *DeleteUserRequest) Validate() error {
	return validate.Struct(r)
}

// ListUserPostsRequest carries the path id and paging params for
// GET /api/v1/users/:id/posts.
type ListUserPostsRequest struct {
	ID     string `param:"id" validate:"required,uuid"`
	Limit  int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset int    `query:"offset" validate:"omitempty,gte=0"`
}

func (r *ListUserPostsRequest) Validate() error {
	return validate.Struct(r)
}
