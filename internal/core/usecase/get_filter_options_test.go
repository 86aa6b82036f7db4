package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/srinugalla/the-slice-x/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetFilterOptions_DropsDistrictWithoutState(t *testing.T) {
	repo := new(MockFilterRepository)
	repo.On("GetFilterOptions", mock.Anything, "", "").
		Return(&domain.FilterOptions{States: []string{"Andhra Pradesh", "Telangana"}}, nil)

	options, err := NewGetFilterOptionsUseCase(repo).Execute(context.Background(), " ", "Guntur")

	require.NoError(t, err)
	assert.Equal(t, []string{"Andhra Pradesh", "Telangana"}, options.States)
	assert.NotNil(t, options.Districts)
	assert.NotNil(t, options.Mandals)
	repo.AssertExpectations(t)
}

func TestGetFilterOptions_RepositoryError(t *testing.T) {
	repo := new(MockFilterRepository)
	repo.On("GetFilterOptions", mock.Anything, "Telangana", "").Return(nil, errors.New("timeout"))

	_, err := NewGetFilterOptionsUseCase(repo).Execute(context.Background(), "Telangana", "")

	assert.Error(t, err)
}
