package handler

import (
	"github.com/userhub/user-management-api/internal/core/domain"
	"github.com/userhub/user-management-api/internal/core/ports"
)

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Age:         u.Age,
		AgeCategory: u.AgeCategory(),
		CreatedAt:   u.CreatedAt.UTC(),
		UpdatedAt:   u.UpdatedAt.UTC(),
	}
}

func toUserSummaries(users []*domain.User) []userSummaryResponse {
	out := make([]userSummaryResponse, len(users))
	for i, u := range users {
		out[i] = userSummaryResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Age:       u.Age,
			CreatedAt: u.CreatedAt.UTC(),
			UpdatedAt: u.UpdatedAt.UTC(),
		}
	}
	return out
}

func toListFilters(in ports.ListUsersInput) listFiltersResponse {
	return listFiltersResponse{
		AgeMin:    in.AgeMin,
		AgeMax:    in.AgeMax,
		Search:    in.Search,
		SortBy:    in.SortBy,
		SortOrder: in.SortOrder,
	}
}
