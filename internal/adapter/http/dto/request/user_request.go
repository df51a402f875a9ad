package request

import (
	"strings"

	"logistica_cotizaciones/internal/domain/entities"
)

// CreateUserRequest is an admin-created account.
type CreateUserRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

func (r CreateUserRequest) ToNewAccount() entities.NewAccount {
	return entities.NewAccount{
		Email:    r.Email,
		Password: r.Password,
		Profile: entities.UserProfile{
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			CompanyName: r.CompanyName,
			Phone:       r.Phone,
		},
	}
}

// UpdateUserRequest edits contact fields; omitted fields are kept.
type UpdateUserRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	CompanyName *string `json:"company_name"`
	Phone       *string `json:"phone"`
}

func (r UpdateUserRequest) ToUpdate() entities.UserProfileUpdate {
	return entities.UserProfileUpdate{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		CompanyName: r.CompanyName,
		Phone:       r.Phone,
	}
}

// UserListQuery are the admin user listing query parameters.
type UserListQuery struct {
	Search string `form:"search"`
	Role   string `form:"role"`
}

// ToFilter maps "all" or an empty role to no role filter.
func (q UserListQuery) ToFilter() entities.UserFilter {
	filter := entities.UserFilter{Search: strings.TrimSpace(q.Search)}
	role := strings.TrimSpace(q.Role)
	if role != "" && !strings.EqualFold(role, StatusAll) {
		filter.Role = entities.Role(role)
	}
	return filter
}
