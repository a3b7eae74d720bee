package service

import (
	"context"
	"testing"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLifecycle(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "alice")
	ctx := context.Background()

	project, err := f.projects.CreateProject(ctx, user.ID, &models.ProjectRequest{Title: "Thesis"})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusNotStarted, project.Status)

	_, err = f.projects.UpdateProject(ctx, user.ID, project.ID, &models.ProjectRequest{Title: "Thesis", Status: "PAUSED"})
	assert.ErrorIs(t, err, ErrInvalidProjectStatus)

	updated, err := f.projects.UpdateProject(ctx, user.ID, project.ID, &models.ProjectRequest{Title: "Thesis", Status: "IN_PROGRESS"})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusInProgress, updated.Status)

	page, err := f.projects.GetProjects(ctx, user.ID, "IN_PROGRESS", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)

	page, err = f.projects.GetProjects(ctx, user.ID, "COMPLETED", 1, 20)
	require.NoError(t, err)
	assert.Zero(t, page.Total)

	require.NoError(t, f.projects.DeleteProject(ctx, user.ID, project.ID))
	_, err = f.projects.GetProject(ctx, user.ID, project.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
